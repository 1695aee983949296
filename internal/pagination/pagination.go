// Package pagination holds the offset/limit arithmetic for paginated reads.
package pagination

import "math"

// DefaultPageSize is the number of rows per page unless configured otherwise.
const DefaultPageSize = 6

// Page is a request-scoped pagination window. Number is 1-indexed; numbers
// below 1 are clamped to the first page.
type Page struct {
	Number int
	Size   int
}

// NewPage builds a Page from a 1-indexed page number and a page size,
// clamping out-of-range values to sane defaults.
func NewPage(number, size int) Page {
	if number < 1 {
		number = 1
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	return Page{Number: number, Size: size}
}

// Offset returns the number of rows to skip for this page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// TotalPages returns how many pages of the given size are needed for
// rowCount rows. Zero rows means zero pages.
func TotalPages(rowCount, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	if rowCount <= 0 {
		return 0
	}
	return int(math.Ceil(float64(rowCount) / float64(size)))
}
