package repository

import (
	"context"

	"github.com/chadm2c/xml-importer/internal/domain"
)

// ProductRepository defines methods for product data access.
type ProductRepository interface {
	// InsertAll stores products in one transaction and returns them with
	// storage-assigned IDs and timestamps. Either all rows are stored or none.
	InsertAll(ctx context.Context, products []domain.Product) ([]domain.Product, error)
	ExistsBySKU(ctx context.Context, sku string) (bool, error)
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	FindPage(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Product], error)
	// SearchPage matches query case-insensitively against name, brand and description.
	SearchPage(ctx context.Context, query string, req domain.PageRequest) (domain.Page[domain.Product], error)
	StreamAll(ctx context.Context, callback func(domain.Product) error) error
}

// ImportJobRepository defines methods for import audit records.
type ImportJobRepository interface {
	CreateImportJob(ctx context.Context, job *domain.ImportJob) error
	GetImportJob(ctx context.Context, id string) (*domain.ImportJob, error)
}
