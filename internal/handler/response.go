package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finvoice/dashboard-api/internal/apperr"
	"github.com/finvoice/dashboard-api/internal/model"
)

// Common error messages
const (
	ErrInvalidInput       = "Invalid input format"
	ErrResourceNotFound   = "Resource not found"
	ErrInvalidQueryParams = "Invalid query parameters"
)

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, message string, details ...model.ErrorDetail) {
	response := model.ErrorResponse{
		Status:  http.StatusText(statusCode),
		Message: message,
		Details: details,
	}
	c.JSON(statusCode, response)
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...model.ErrorDetail) {
	respondWithError(c, http.StatusBadRequest, message, details...)
}

// respondNotFound sends a 404 Not Found response
func respondNotFound(c *gin.Context, message string) {
	respondWithError(c, http.StatusNotFound, message)
}

// respondOK sends a 200 OK response with data
func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// respondCreated sends a 201 Created response with data
func respondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// respondTaxonomyError maps the data layer's error taxonomy onto HTTP
// statuses. Validation failures carry field details; everything else is a
// category message with no internal detail.
func respondTaxonomyError(c *gin.Context, err error) {
	switch {
	case apperr.IsValidation(err):
		var verr *apperr.ValidationError
		if errors.As(err, &verr) {
			respondWithError(c, http.StatusUnprocessableEntity, "Validation failed", fieldDetails(verr)...)
			return
		}
		respondWithError(c, http.StatusUnprocessableEntity, "Validation failed")
	case apperr.IsNotFound(err):
		respondNotFound(c, err.Error())
	case apperr.IsTimeout(err):
		respondWithError(c, http.StatusGatewayTimeout, err.Error())
	default:
		respondWithError(c, http.StatusInternalServerError, err.Error())
	}
}

// fieldDetails flattens a ValidationError's field map into response details.
func fieldDetails(verr *apperr.ValidationError) []model.ErrorDetail {
	details := make([]model.ErrorDetail, 0, len(verr.Fields))
	for field, message := range verr.Fields {
		details = append(details, model.ErrorDetail{Field: field, Message: message})
	}
	return details
}
