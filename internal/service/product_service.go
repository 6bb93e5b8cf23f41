package service

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/chadm2c/xml-importer/internal/domain"
	"github.com/chadm2c/xml-importer/internal/logger"
	"github.com/chadm2c/xml-importer/internal/metrics"
	"github.com/chadm2c/xml-importer/internal/repository"
)

// ErrUnsupportedFormat is returned for export formats other than ValidExportFormats.
var ErrUnsupportedFormat = fmt.Errorf("unsupported export format, must be one of: %s",
	strings.Join(domain.ValidExportFormats, ", "))

var csvHeader = []string{
	"id", "name", "description", "brand", "storageDate", "price",
	"category", "sku", "quantityInStock", "createdAt",
}

// ProductService serves catalog reads and streaming exports.
type ProductService struct {
	products repository.ProductRepository
	cache    ProductListCache
}

// NewProductService creates a new ProductService. cache may be nil.
func NewProductService(products repository.ProductRepository, cache ProductListCache) *ProductService {
	return &ProductService{products: products, cache: cache}
}

// ListProducts returns one page of products, newest first.
func (s *ProductService) ListProducts(ctx context.Context, search string, req domain.PageRequest) (domain.Page[domain.Product], error) {
	req = req.Normalize()
	search = strings.TrimSpace(search)

	if s.cache != nil {
		page, ok := s.cache.GetPage(ctx, search, req)
		metrics.ObserveCacheLookup(ok)
		if ok {
			return page, nil
		}
	}

	var (
		page domain.Page[domain.Product]
		err  error
	)
	if search == "" {
		page, err = s.products.FindPage(ctx, req)
	} else {
		page, err = s.products.SearchPage(ctx, search, req)
	}
	if err != nil {
		return domain.Page[domain.Product]{}, fmt.Errorf("list products: %w", err)
	}

	if s.cache != nil {
		s.cache.SetPage(ctx, search, req, page)
	}
	return page, nil
}

// GetProduct returns the product with id.
func (s *ProductService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// StreamProducts writes every product in the given format and returns the count.
func (s *ProductService) StreamProducts(ctx context.Context, format string, writer StreamWriter) (count int, err error) {
	if !domain.IsValidExportFormat(format) {
		return 0, ErrUnsupportedFormat
	}

	metrics.StartStreamingExport()
	timer := time.Now()
	defer func() {
		result := "success"
		if err != nil {
			result = "error"
		}
		metrics.EndStreamingExport(format, result, time.Since(timer).Seconds(), count)
	}()

	var enc productEncoder
	switch format {
	case "csv":
		enc = newCSVEncoder(writer)
	case "ndjson":
		enc = newNDJSONEncoder(writer)
	default:
		enc = newXMLEncoder(writer)
	}

	if err := enc.begin(); err != nil {
		return 0, fmt.Errorf("write header: %w", err)
	}

	err = s.products.StreamAll(ctx, func(p domain.Product) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := enc.encode(p); err != nil {
			return err
		}
		count++
		if count%100 == 0 {
			writer.Flush()
		}
		return nil
	})
	if err != nil {
		logger.Warn("Streaming export aborted",
			slog.String("format", format),
			slog.Int("count", count),
			slog.String("error", err.Error()))
		return count, fmt.Errorf("stream products: %w", err)
	}

	if err := enc.end(); err != nil {
		return count, fmt.Errorf("write footer: %w", err)
	}
	writer.Flush()

	return count, nil
}

type productEncoder interface {
	begin() error
	encode(p domain.Product) error
	end() error
}

// streamAdapter exposes a StreamWriter as an io.Writer.
type streamAdapter struct {
	w StreamWriter
}

func (a streamAdapter) Write(p []byte) (int, error) {
	if err := a.w.Write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

type csvEncoder struct {
	w *csv.Writer
}

func newCSVEncoder(w StreamWriter) *csvEncoder {
	return &csvEncoder{w: csv.NewWriter(streamAdapter{w: w})}
}

func (e *csvEncoder) begin() error {
	return e.write(csvHeader)
}

func (e *csvEncoder) encode(p domain.Product) error {
	return e.write([]string{
		strconv.FormatInt(p.ID, 10),
		p.Name,
		deref(p.Description),
		p.Brand,
		p.StorageDate.Format(domain.DateLayout),
		p.Price.StringFixed(2),
		deref(p.Category),
		deref(p.SKU),
		strconv.Itoa(p.QuantityInStock),
		p.CreatedAt.Format(time.RFC3339),
	})
}

func (e *csvEncoder) end() error {
	e.w.Flush()
	return e.w.Error()
}

func (e *csvEncoder) write(record []string) error {
	if err := e.w.Write(record); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	e.w.Flush()
	return e.w.Error()
}

type ndjsonEncoder struct {
	enc *json.Encoder
}

func newNDJSONEncoder(w StreamWriter) *ndjsonEncoder {
	return &ndjsonEncoder{enc: json.NewEncoder(streamAdapter{w: w})}
}

func (e *ndjsonEncoder) begin() error { return nil }
func (e *ndjsonEncoder) end() error   { return nil }

func (e *ndjsonEncoder) encode(p domain.Product) error {
	if err := e.enc.Encode(p); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// xmlProduct is the element layout accepted by the importer, so an export
// can be imported again.
type xmlProduct struct {
	XMLName         xml.Name `xml:"product"`
	Name            string   `xml:"name"`
	Description     *string  `xml:"description,omitempty"`
	Brand           string   `xml:"brand"`
	Price           string   `xml:"price"`
	StorageDate     string   `xml:"storageDate"`
	Category        *string  `xml:"category,omitempty"`
	SKU             *string  `xml:"sku,omitempty"`
	QuantityInStock int      `xml:"quantityInStock"`
}

type xmlEncoder struct {
	w   StreamWriter
	enc *xml.Encoder
}

func newXMLEncoder(w StreamWriter) *xmlEncoder {
	enc := xml.NewEncoder(streamAdapter{w: w})
	enc.Indent("  ", "  ")
	return &xmlEncoder{w: w, enc: enc}
}

func (e *xmlEncoder) begin() error {
	return e.w.Write([]byte(xml.Header + "<products>\n"))
}

func (e *xmlEncoder) encode(p domain.Product) error {
	err := e.enc.Encode(xmlProduct{
		Name:            p.Name,
		Description:     p.Description,
		Brand:           p.Brand,
		Price:           p.Price.String(),
		StorageDate:     p.StorageDate.Format(domain.DateLayout),
		Category:        p.Category,
		SKU:             p.SKU,
		QuantityInStock: p.QuantityInStock,
	})
	if err != nil {
		return fmt.Errorf("write xml: %w", err)
	}
	return nil
}

func (e *xmlEncoder) end() error {
	return e.w.Write([]byte("\n</products>\n"))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
