package pagination

import (
	"net/http"
	"strconv"
)

// Default pagination values
const (
	DefaultPage = 1
	// PageSize is fixed; callers cannot request a different page length.
	PageSize = 10
)

// Params represents pagination query parameters
type Params struct {
	Page  int `json:"page"`  // Current page number (1-based)
	Limit int `json:"limit"` // Number of items per page
}

// Meta contains pagination metadata for responses
type Meta struct {
	CurrentPage  int  `json:"current_page"`
	PerPage      int  `json:"per_page"`
	TotalPages   int  `json:"total_pages"`
	TotalRecords int  `json:"total_records"`
	HasNext      bool `json:"has_next"`
	HasPrevious  bool `json:"has_previous"`
}

// NewParams returns params for the given page with the fixed page size.
func NewParams(page int) Params {
	p := Params{Page: page, Limit: PageSize}
	p.Validate()
	return p
}

// ParseParams extracts the page parameter from an HTTP request
func ParseParams(r *http.Request) Params {
	page := DefaultPage

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}

	return NewParams(page)
}

// Validate ensures pagination parameters are valid and sets defaults if needed
func (p *Params) Validate() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = PageSize
	}
}

// CalculateOffset returns the index of the first item on the current page
func (p *Params) CalculateOffset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages returns ceil(totalRecords / limit). An empty collection has zero pages.
func (p *Params) TotalPages(totalRecords int) int {
	if totalRecords <= 0 {
		return 0
	}
	return (totalRecords + p.Limit - 1) / p.Limit // Ceiling division
}

// Window returns the half-open [start, end) bounds of the current page within
// a collection of totalRecords items, clipped to the available length.
// A page past the end yields an empty window.
func (p *Params) Window(totalRecords int) (start, end int) {
	// Checked before multiplying so huge page numbers cannot overflow the offset.
	if p.Page > p.TotalPages(totalRecords) {
		return totalRecords, totalRecords
	}
	start = p.CalculateOffset()
	return start, min(start+p.Limit, totalRecords)
}

// CalculateMeta creates pagination metadata based on total records
func (p *Params) CalculateMeta(totalRecords int) Meta {
	totalPages := p.TotalPages(totalRecords)

	return Meta{
		CurrentPage:  p.Page,
		PerPage:      p.Limit,
		TotalPages:   totalPages,
		TotalRecords: totalRecords,
		HasNext:      p.Page < totalPages,
		HasPrevious:  p.Page > 1,
	}
}

// Slice returns the current page of items as a fresh slice.
func Slice[T any](items []T, p Params) []T {
	start, end := p.Window(len(items))
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}
