package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/chadm2c/xml-importer/internal/domain"
	"github.com/chadm2c/xml-importer/internal/logger"
	"github.com/chadm2c/xml-importer/internal/metrics"
	"github.com/chadm2c/xml-importer/internal/repository"
	"github.com/chadm2c/xml-importer/internal/xmlparser"
)

// Outcome messages.
const (
	MsgInvalidFileType = "Invalid file type. Please upload an XML file."
	ErrInvalidFileType = "File must be an XML file with .xml extension"
	MsgNoValidProducts = "No valid products found in XML file"
	ErrNoValidProducts = "The XML file doesn't contain any valid product data"

	msgDuplicateSKUs   = "Duplicate SKUs found: %s"
	msgSystemFailure   = "Error processing file: %s"
	errSystemFailure   = "System error: %s"
	msgPartialSuccess  = "Partially successful: Imported %d of %d products. %d error(s) occurred."
	msgImportFailed    = "Import failed: %d error(s) occurred. No products imported."
	msgRejected        = "Import failed: %s"
	msgImportSucceeded = "Successfully imported %d products"

	// RecordTimeout bounds the audit write, which runs after the import itself.
	RecordTimeout = 5 * time.Second
)

// ImportRequest is one uploaded document with the hints supplied by the client.
type ImportRequest struct {
	Content     []byte
	Size        int64
	Filename    string
	ContentType string
	RequestID   string
}

// ImportService runs the XML import pipeline: type guard, parse, duplicate
// detection, persistence and classification.
type ImportService struct {
	parser   *xmlparser.Parser
	products repository.ProductRepository
	jobs     repository.ImportJobRepository
	cache    ProductListCache
	now      func() time.Time
}

// NewImportService creates a new ImportService. jobs and cache are optional;
// without jobs imports are not recorded and without cache nothing is invalidated.
func NewImportService(
	parser *xmlparser.Parser,
	products repository.ProductRepository,
	jobs repository.ImportJobRepository,
	cache ProductListCache,
) *ImportService {
	return &ImportService{
		parser:   parser,
		products: products,
		jobs:     jobs,
		cache:    cache,
		now:      time.Now,
	}
}

// Import processes one document. Panics raised below this point are turned
// into a system failure outcome.
func (s *ImportService) Import(ctx context.Context, req ImportRequest) (outcome domain.ImportOutcome) {
	started := s.now()
	log := logger.WithFields(
		slog.String("request_id", req.RequestID),
		slog.String("filename", req.Filename),
	)

	metrics.StartImport()
	defer func() {
		if r := recover(); r != nil {
			log.Error("Import panicked", slog.Any("panic", r))
			outcome = systemFailure(fmt.Sprint(r))
		}
		metrics.EndImport()
		s.finish(ctx, log, req, started, &outcome)
	}()

	return s.run(ctx, req)
}

func (s *ImportService) run(ctx context.Context, req ImportRequest) domain.ImportOutcome {
	if !isXMLFile(req.Filename, req.ContentType) {
		return domain.ImportOutcome{
			Message: MsgInvalidFileType,
			Errors:  []string{ErrInvalidFileType},
		}
	}

	result := s.parser.Parse(req.Content, req.Size)

	if len(result.Products) == 0 && len(result.Errors) == 0 {
		return domain.ImportOutcome{
			Message:        MsgNoValidProducts,
			TotalProcessed: result.TotalProcessed,
			Errors:         []string{ErrNoValidProducts},
		}
	}

	// The parser refused the document before reaching any product element.
	if len(result.Products) == 0 && result.TotalProcessed == 0 {
		return domain.ImportOutcome{
			Message: fmt.Sprintf(msgRejected, result.Errors[0]),
			Errors:  result.Errors,
		}
	}

	errs := make([]string, 0, len(result.Errors)+1)
	errs = append(errs, result.Errors...)
	if dups := duplicateSKUs(result.Products); len(dups) > 0 {
		metrics.ObserveDuplicateSKUs(len(dups))
		errs = append(errs, fmt.Sprintf(msgDuplicateSKUs, strings.Join(dups, ", ")))
	}

	imported := 0
	if len(result.Products) > 0 {
		timer := metrics.NewTimer()
		saved, err := s.products.InsertAll(ctx, result.Products)
		timer.ObserveDuration(metrics.InsertDuration)
		if err != nil {
			return systemFailure(err.Error())
		}
		imported = len(saved)
		s.invalidateCache(ctx)
	}

	return summarize(imported, result.TotalProcessed, errs)
}

// GetImportJob retrieves a recorded import by ID.
func (s *ImportService) GetImportJob(ctx context.Context, id string) (*domain.ImportJob, error) {
	if s.jobs == nil {
		return nil, nil
	}
	return s.jobs.GetImportJob(ctx, id)
}

// finish records metrics, the audit job and the completion log line.
func (s *ImportService) finish(ctx context.Context, log *slog.Logger, req ImportRequest, started time.Time, outcome *domain.ImportOutcome) {
	completed := s.now()
	status := outcome.Status()
	metrics.ObserveImport(string(status), completed.Sub(started).Seconds(),
		outcome.ImportedCount, outcome.TotalProcessed-outcome.ImportedCount)

	if s.jobs != nil {
		job := &domain.ImportJob{
			ID:             uuid.New().String(),
			Filename:       req.Filename,
			Status:         status,
			Message:        outcome.Message,
			TotalProcessed: outcome.TotalProcessed,
			ImportedCount:  outcome.ImportedCount,
			Errors:         outcome.Errors,
			CreatedAt:      started,
			CompletedAt:    completed,
		}

		recordCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), RecordTimeout)
		defer cancel()
		if err := s.jobs.CreateImportJob(recordCtx, job); err != nil {
			log.Warn("Failed to record import", slog.String("error", err.Error()))
		} else {
			outcome.ImportID = job.ID
		}
	}

	log.Info("Import finished",
		slog.String("import_id", outcome.ImportID),
		slog.String("status", string(status)),
		slog.Int("total_processed", outcome.TotalProcessed),
		slog.Int("imported", outcome.ImportedCount),
		slog.Int("errors", len(outcome.Errors)),
		slog.Duration("duration", completed.Sub(started)),
	)
}

func (s *ImportService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		logger.Warn("Failed to invalidate product cache", slog.String("error", err.Error()))
	}
}

// isXMLFile accepts the upload when either the content type or the filename says XML.
func isXMLFile(filename, contentType string) bool {
	return strings.Contains(strings.ToLower(contentType), "xml") ||
		strings.HasSuffix(strings.ToLower(filename), ".xml")
}

// duplicateSKUs lists every SKU occurrence after the first, in document order.
func duplicateSKUs(products []domain.Product) []string {
	seen := make(map[string]struct{}, len(products))
	var dups []string
	for _, p := range products {
		sku := p.SKUValue()
		if sku == "" {
			continue
		}
		if _, ok := seen[sku]; ok {
			dups = append(dups, sku)
			continue
		}
		seen[sku] = struct{}{}
	}
	return dups
}

func summarize(imported, total int, errs []string) domain.ImportOutcome {
	outcome := domain.ImportOutcome{
		Success:        len(errs) == 0,
		ImportedCount:  imported,
		TotalProcessed: total,
		Errors:         errs,
	}

	switch {
	case len(errs) > 0 && imported > 0:
		outcome.Message = fmt.Sprintf(msgPartialSuccess, imported, total, len(errs))
	case len(errs) > 0:
		outcome.Message = fmt.Sprintf(msgImportFailed, len(errs))
	default:
		outcome.Message = fmt.Sprintf(msgImportSucceeded, imported)
	}
	return outcome
}

func systemFailure(detail string) domain.ImportOutcome {
	return domain.ImportOutcome{
		Message: fmt.Sprintf(msgSystemFailure, detail),
		Errors:  []string{fmt.Sprintf(errSystemFailure, detail)},
	}
}
