package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/finvoice/dashboard-api/internal/config"
	"github.com/finvoice/dashboard-api/internal/handler"
	"github.com/finvoice/dashboard-api/internal/middleware"
)

// Server represents the HTTP server for the dashboard data service
type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	config     *config.Config
	log        zerolog.Logger
}

// Handlers groups everything the router needs
type Handlers struct {
	Dashboard *handler.DashboardHandler
	Invoices  *handler.InvoiceHandler
	Customers *handler.CustomerHandler
}

// NewServer creates and configures a new server instance
func NewServer(cfg *config.Config, log zerolog.Logger, handlers Handlers) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestLogger(log))

	server := &Server{
		router: router,
		config: cfg,
		log:    log,
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}

	server.setupRoutes(handlers)

	return server
}

// GetRouter returns the gin router instance
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// setupRoutes configures all application routes
func (s *Server) setupRoutes(h Handlers) {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := s.router.Group("/v1")

	dashboard := v1.Group("/dashboard")
	dashboard.GET("/revenue", h.Dashboard.Revenue)
	dashboard.GET("/latest-invoices", h.Dashboard.LatestInvoices)
	dashboard.GET("/cards", h.Dashboard.Cards)

	invoices := v1.Group("/invoices")
	invoices.GET("", h.Invoices.List)
	invoices.GET("/pages", h.Invoices.Pages)
	invoices.GET("/:id", h.Invoices.GetByID)
	invoices.POST("", h.Invoices.Create)
	invoices.PUT("/:id", h.Invoices.Update)
	invoices.DELETE("/:id", h.Invoices.Delete)

	customers := v1.Group("/customers")
	customers.GET("", h.Customers.List)
	customers.GET("/filtered", h.Customers.Filtered)
}

// Start begins listening for requests and handles graceful shutdown
func (s *Server) Start() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		s.log.Info().Int("port", s.config.Port).Msg("server listening")
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-quit
	s.log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	s.log.Info().Msg("server exited gracefully")
	return nil
}
