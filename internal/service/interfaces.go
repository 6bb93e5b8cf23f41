package service

import (
	"context"

	"github.com/chadm2c/xml-importer/internal/domain"
)

// StreamWriter interface for streaming export data.
type StreamWriter interface {
	Write(data []byte) error
	Flush()
}

// ImportServiceInterface defines the interface for import operations.
// Used for dependency injection and mocking in tests.
type ImportServiceInterface interface {
	// Import runs one XML document through the import pipeline. It never fails:
	// every problem is reported inside the returned outcome.
	Import(ctx context.Context, req ImportRequest) domain.ImportOutcome
	// GetImportJob retrieves a recorded import by ID.
	GetImportJob(ctx context.Context, id string) (*domain.ImportJob, error)
}

// ProductServiceInterface defines the interface for catalog reads.
// Used for dependency injection and mocking in tests.
type ProductServiceInterface interface {
	// ListProducts returns one page of products, filtered when search is not blank.
	ListProducts(ctx context.Context, search string, req domain.PageRequest) (domain.Page[domain.Product], error)
	// GetProduct returns domain.ErrNotFound when the product does not exist.
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	// StreamProducts streams the whole catalog to the writer.
	StreamProducts(ctx context.Context, format string, writer StreamWriter) (int, error)
}

// ProductListCache caches product list pages.
type ProductListCache interface {
	GetPage(ctx context.Context, search string, req domain.PageRequest) (domain.Page[domain.Product], bool)
	SetPage(ctx context.Context, search string, req domain.PageRequest, page domain.Page[domain.Product])
	Invalidate(ctx context.Context) error
}
