package validator

import (
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"

	"github.com/chadm2c/xml-importer/internal/coerce"
	"github.com/chadm2c/xml-importer/internal/domain"
)

// Child element names of a product element.
const (
	FieldName            = "name"
	FieldDescription     = "description"
	FieldBrand           = "brand"
	FieldPrice           = "price"
	FieldStorageDate     = "storageDate"
	FieldCategory        = "category"
	FieldSKU             = "sku"
	FieldQuantityInStock = "quantityInStock"
)

var (
	errNameRequired        = validation.NewError("name_required", "Product name is required")
	errNameTooLong         = validation.NewError("name_too_long", "Product name exceeds maximum length of 200 characters")
	errBrandRequired       = validation.NewError("brand_required", "Brand is required")
	errPriceRequired       = validation.NewError("price_required", "Price is required")
	errPriceNotPositive    = validation.NewError("price_not_positive", "Price must be greater than zero")
	errStorageDateRequired = validation.NewError("storage_date_required", "Storage date is required")
	errStorageDateFuture   = validation.NewError("storage_date_future", "Storage date cannot be in the future")
)

// FieldSource gives read access to the child fields of one product element.
// Text returns the trimmed text of the first element with the given tag and
// false when no such element exists.
type FieldSource interface {
	Text(field string) (string, bool)
}

// ProductValidator turns raw product elements into validated products.
// It holds no mutable state and is safe for concurrent use.
type ProductValidator struct {
	now func() time.Time
}

// NewProductValidator creates a validator. now supplies the current time for
// the storage date check; nil means time.Now.
func NewProductValidator(now func() time.Time) *ProductValidator {
	if now == nil {
		now = time.Now
	}
	return &ProductValidator{now: now}
}

// Validate extracts and checks every field of item. On failure it returns a
// *domain.ItemFailure carrying position and the first rule that failed.
func (v *ProductValidator) Validate(item FieldSource, position int) (domain.Product, error) {
	product, err := v.build(item)
	if err != nil {
		return domain.Product{}, &domain.ItemFailure{Position: position, Reason: err.Error()}
	}
	return product, nil
}

func (v *ProductValidator) build(item FieldSource) (domain.Product, error) {
	name, _ := item.Text(FieldName)
	if err := validation.Validate(name,
		validation.Required.ErrorObject(errNameRequired),
		validation.RuneLength(0, domain.MaxNameLength).ErrorObject(errNameTooLong),
	); err != nil {
		return domain.Product{}, err
	}

	brand, _ := item.Text(FieldBrand)
	if err := validation.Validate(brand,
		validation.Required.ErrorObject(errBrandRequired),
	); err != nil {
		return domain.Product{}, err
	}

	price, err := v.price(item)
	if err != nil {
		return domain.Product{}, err
	}

	storageDate, err := v.storageDate(item)
	if err != nil {
		return domain.Product{}, err
	}

	return domain.Product{
		Name:            name,
		Description:     optional(item, FieldDescription),
		Brand:           brand,
		StorageDate:     storageDate,
		Price:           price,
		Category:        optional(item, FieldCategory),
		SKU:             optional(item, FieldSKU),
		QuantityInStock: quantity(item),
	}, nil
}

func (v *ProductValidator) price(item FieldSource) (decimal.Decimal, error) {
	raw, ok := item.Text(FieldPrice)
	if !ok {
		return decimal.Zero, errPriceRequired
	}

	price, ok := coerce.ParsePrice(raw)
	if !ok {
		return decimal.Zero, validation.NewError("invalid_price_format", "Invalid price format: "+raw)
	}

	if err := validation.Validate(price, validation.By(positive)); err != nil {
		return decimal.Zero, err
	}
	return price, nil
}

func (v *ProductValidator) storageDate(item FieldSource) (time.Time, error) {
	raw, ok := item.Text(FieldStorageDate)
	if !ok {
		return time.Time{}, errStorageDateRequired
	}

	date, ok := coerce.ParseDate(raw)
	if !ok {
		return time.Time{}, validation.NewError("invalid_date_format", "Invalid date format: "+raw)
	}

	if date.After(coerce.Today(v.now())) {
		return time.Time{}, errStorageDateFuture
	}
	return date, nil
}

// positive is an ozzo rule for decimal values strictly above zero.
func positive(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok || !d.IsPositive() {
		return errPriceNotPositive
	}
	return nil
}

// optional returns a pointer to the trimmed field text, or nil when the
// element is absent.
func optional(item FieldSource, field string) *string {
	text, ok := item.Text(field)
	if !ok {
		return nil
	}
	return &text
}

// quantity parses the stock level. Absent, unparseable or negative values
// fall back to zero rather than failing the product.
func quantity(item FieldSource) int {
	text, ok := item.Text(FieldQuantityInStock)
	if !ok {
		return 0
	}
	n, err := strconv.ParseInt(text, 10, 32)
	if err != nil || n < 0 {
		return 0
	}
	return int(n)
}
