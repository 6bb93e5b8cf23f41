package domain

const (
	// DefaultPageSize is used when a page request carries no size.
	DefaultPageSize = 10
	// MaxPageSize caps the number of items returned in one page.
	MaxPageSize = 100
	// MaxPage bounds the page index so Offset stays far from overflow.
	MaxPage = 1_000_000
)

// PageRequest describes a 0-based page of results.
type PageRequest struct {
	Page int
	Size int
}

// Normalize clamps the request to valid bounds.
func (r PageRequest) Normalize() PageRequest {
	if r.Page < 0 {
		r.Page = 0
	}
	if r.Page > MaxPage {
		r.Page = MaxPage
	}
	if r.Size <= 0 {
		r.Size = DefaultPageSize
	}
	if r.Size > MaxPageSize {
		r.Size = MaxPageSize
	}
	return r
}

// Offset returns the number of rows to skip.
func (r PageRequest) Offset() int {
	return r.Page * r.Size
}

// Page is one page of results plus totals.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int   `json:"totalPages"`
}

// NewPage builds a page and derives the total page count.
func NewPage[T any](items []T, req PageRequest, total int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	pages := 0
	if req.Size > 0 {
		pages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}
	return Page[T]{
		Items:      items,
		Page:       req.Page,
		Size:       req.Size,
		TotalItems: total,
		TotalPages: pages,
	}
}

// HasContent reports whether the page holds any items.
func (p Page[T]) HasContent() bool {
	return len(p.Items) > 0
}
