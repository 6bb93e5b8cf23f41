// Package xmlparser turns a products XML document into validated products
// and per-item error messages.
package xmlparser

import (
	"bytes"
	"errors"
	"fmt"
	"iter"

	"github.com/chadm2c/xml-importer/internal/domain"
	"github.com/chadm2c/xml-importer/internal/validator"
)

const (
	// MaxFileSize is the largest document accepted, checked before parsing.
	MaxFileSize = 10 * 1024 * 1024

	// RootElement is the only accepted document element.
	RootElement = "products"
	// ItemElement is the element describing one product.
	ItemElement = "product"
)

// Error messages for document-level failures.
const (
	MsgFileTooLarge    = "File size exceeds maximum limit of 10MB"
	MsgFileEmpty       = "File is empty"
	MsgNoProducts      = "No product elements found in XML file"
	msgParseFailed     = "Error parsing XML file: %s"
	msgInvalidRootElem = "Invalid XML structure: root element must be '%s'"
)

// Parser validates product documents. It keeps no per-call state, so one
// Parser can serve concurrent imports.
type Parser struct {
	validator *validator.ProductValidator
}

// NewParser creates a Parser that validates items with v.
func NewParser(v *validator.ProductValidator) *Parser {
	return &Parser{validator: v}
}

// Parse checks size and structure of content and validates every product
// element. It never fails: every problem becomes an entry in the result's
// error list.
func (p *Parser) Parse(content []byte, declaredSize int64) domain.ParseResult {
	if declaredSize > MaxFileSize {
		return rejected(MsgFileTooLarge)
	}
	if declaredSize == 0 {
		return rejected(MsgFileEmpty)
	}

	root, err := ParseDocument(bytes.NewReader(content))
	if err != nil {
		return rejected(fmt.Sprintf(msgParseFailed, err.Error()))
	}

	if root.Name != RootElement {
		return rejected(fmt.Sprintf(msgInvalidRootElem, RootElement))
	}

	items := root.Descendants(ItemElement)
	if len(items) == 0 {
		return rejected(MsgNoProducts)
	}

	result := domain.ParseResult{
		Products:       make([]domain.Product, 0, len(items)),
		Errors:         []string{},
		TotalProcessed: len(items),
	}
	for outcome := range p.Outcomes(items) {
		if outcome.Failure != nil {
			result.Errors = append(result.Errors, outcome.Failure.Error())
			continue
		}
		result.Products = append(result.Products, *outcome.Product)
	}

	return result
}

// Outcomes validates items lazily in document order, yielding one outcome
// per element with its 1-based position.
func (p *Parser) Outcomes(items []*Element) iter.Seq[domain.ItemOutcome] {
	return func(yield func(domain.ItemOutcome) bool) {
		for i, item := range items {
			position := i + 1
			outcome := domain.ItemOutcome{Position: position}

			product, err := p.validator.Validate(item, position)
			if err != nil {
				outcome.Failure = asFailure(err, position)
			} else {
				outcome.Product = &product
			}

			if !yield(outcome) {
				return
			}
		}
	}
}

func asFailure(err error, position int) *domain.ItemFailure {
	var f *domain.ItemFailure
	if errors.As(err, &f) {
		return f
	}
	return &domain.ItemFailure{Position: position, Reason: err.Error()}
}

func rejected(msg string) domain.ParseResult {
	return domain.ParseResult{
		Products: []domain.Product{},
		Errors:   []string{msg},
	}
}
