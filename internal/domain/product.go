package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// MaxNameLength is the maximum number of characters allowed in a product name.
const MaxNameLength = 200

var (
	// ErrNotFound is returned when a requested product does not exist.
	ErrNotFound = errors.New("product not found")
	// ErrDuplicateSKU is returned when storage rejects a product because its SKU is taken.
	ErrDuplicateSKU = errors.New("duplicate sku")
)

// Product is a validated catalog record.
// Values are only built by the product validator, so every Product that
// leaves the import pipeline already satisfies all field and business rules.
// ID, CreatedAt and UpdatedAt are assigned by storage.
type Product struct {
	ID              int64           `json:"id,omitempty"`
	Name            string          `json:"name"`
	Description     *string         `json:"description,omitempty"`
	Brand           string          `json:"brand"`
	StorageDate     time.Time       `json:"storageDate"`
	Price           decimal.Decimal `json:"price"`
	Category        *string         `json:"category,omitempty"`
	SKU             *string         `json:"sku,omitempty"`
	QuantityInStock int             `json:"quantityInStock"`
	CreatedAt       time.Time       `json:"createdAt,omitempty"`
	UpdatedAt       time.Time       `json:"updatedAt,omitempty"`
}

// DateLayout is the canonical calendar date layout used for storage dates.
const DateLayout = time.DateOnly

// SKUValue returns the SKU or an empty string when the product has none.
func (p Product) SKUValue() string {
	if p.SKU == nil {
		return ""
	}
	return *p.SKU
}
