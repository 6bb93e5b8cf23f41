package handler

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/chadm2c/xml-importer/internal/domain"
	"github.com/chadm2c/xml-importer/internal/logger"
	"github.com/chadm2c/xml-importer/internal/middleware"
	"github.com/chadm2c/xml-importer/internal/service"
	"github.com/chadm2c/xml-importer/internal/xmlparser"
)

// ImportHandler handles import-related HTTP requests.
type ImportHandler struct {
	importService service.ImportServiceInterface
	maxUploadSize int64
}

// NewImportHandler creates a new ImportHandler. Uploads larger than
// maxUploadSize are not read into memory.
func NewImportHandler(importService service.ImportServiceInterface, maxUploadSize int64) *ImportHandler {
	if maxUploadSize <= 0 {
		maxUploadSize = xmlparser.MaxFileSize
	}
	return &ImportHandler{
		importService: importService,
		maxUploadSize: maxUploadSize,
	}
}

// ImportJobResponse represents a recorded import in the API response.
type ImportJobResponse struct {
	ID             string   `json:"id"`
	Filename       string   `json:"filename"`
	Status         string   `json:"status"`
	Message        string   `json:"message"`
	TotalProcessed int      `json:"totalProcessed"`
	ImportedCount  int      `json:"importedCount"`
	Errors         []string `json:"errors"`
	CreatedAt      string   `json:"createdAt"`
	CompletedAt    string   `json:"completedAt"`
}

// toImportJobResponse converts a domain.ImportJob to an ImportJobResponse.
func toImportJobResponse(job *domain.ImportJob) ImportJobResponse {
	errs := job.Errors
	if errs == nil {
		errs = []string{}
	}
	return ImportJobResponse{
		ID:             job.ID,
		Filename:       job.Filename,
		Status:         string(job.Status),
		Message:        job.Message,
		TotalProcessed: job.TotalProcessed,
		ImportedCount:  job.ImportedCount,
		Errors:         errs,
		CreatedAt:      job.CreatedAt.Format(TimeFormat),
		CompletedAt:    job.CompletedAt.Format(TimeFormat),
	}
}

// CreateImport handles POST /api/v1/products/import
func (h *ImportHandler) CreateImport(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	defer file.Close()

	requestID := middleware.GetRequestID(c)

	if header.Size > h.maxUploadSize && header.Size <= xmlparser.MaxFileSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file exceeds the configured upload limit"})
		return
	}

	// Oversized documents are passed on unread; the parser rejects them by size alone.
	var content []byte
	if header.Size <= h.maxUploadSize {
		content, err = io.ReadAll(io.LimitReader(file, h.maxUploadSize))
		if err != nil {
			logger.WithRequestID(requestID).Error("Failed to read upload", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read uploaded file"})
			return
		}
	}

	outcome := h.importService.Import(c.Request.Context(), service.ImportRequest{
		Content:     content,
		Size:        header.Size,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		RequestID:   requestID,
	})

	c.JSON(outcomeStatus(outcome), outcome)
}

// outcomeStatus maps failures to 422; full and partial success are 200.
func outcomeStatus(outcome domain.ImportOutcome) int {
	if outcome.Status() == domain.ImportStatusFailed {
		return http.StatusUnprocessableEntity
	}
	return http.StatusOK
}

// GetImport handles GET /api/v1/imports/:id
func (h *ImportHandler) GetImport(c *gin.Context) {
	id := c.Param("id")

	// Validate that the ID is a valid UUID
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	job, err := h.importService.GetImportJob(c.Request.Context(), id)
	if err != nil {
		logger.WithRequestID(middleware.GetRequestID(c)).Error("Failed to get import",
			slog.String("import_id", id),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve import"})
		return
	}

	if job == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "import not found"})
		return
	}

	c.JSON(http.StatusOK, toImportJobResponse(job))
}
