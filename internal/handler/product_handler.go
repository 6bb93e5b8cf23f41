package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/chadm2c/xml-importer/internal/domain"
	"github.com/chadm2c/xml-importer/internal/logger"
	"github.com/chadm2c/xml-importer/internal/middleware"
	"github.com/chadm2c/xml-importer/internal/service"
)

// ProductHandler handles catalog read requests.
type ProductHandler struct {
	productService service.ProductServiceInterface
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService service.ProductServiceInterface) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// ListProductsRequest represents query parameters for listing products.
type ListProductsRequest struct {
	Page   int    `form:"page" binding:"omitempty,min=0,max=1000000"`
	Size   int    `form:"size"`
	Search string `form:"search"`
}

// ProductListResponse is one page of products in the API response.
type ProductListResponse struct {
	Items      []domain.Product `json:"items"`
	Page       int              `json:"page"`
	Size       int              `json:"size"`
	TotalItems int64            `json:"totalItems"`
	TotalPages int              `json:"totalPages"`
	HasContent bool             `json:"hasContent"`
	Search     string           `json:"search"`
}

// ListProducts handles GET /api/v1/products?page=&size=&search=
func (h *ProductHandler) ListProducts(c *gin.Context) {
	var req ListProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	search := strings.TrimSpace(req.Search)
	page, err := h.productService.ListProducts(c.Request.Context(), search,
		domain.PageRequest{Page: req.Page, Size: req.Size})
	if err != nil {
		logger.WithRequestID(middleware.GetRequestID(c)).Error("Failed to list products",
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
		return
	}

	c.JSON(http.StatusOK, ProductListResponse{
		Items:      page.Items,
		Page:       page.Page,
		Size:       page.Size,
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
		HasContent: page.HasContent(),
		Search:     search,
	})
}

// GetProduct handles GET /api/v1/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a positive integer"})
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	if err != nil {
		logger.WithRequestID(middleware.GetRequestID(c)).Error("Failed to get product",
			slog.Int64("product_id", id),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// ginStreamWriter wraps gin.ResponseWriter for streaming.
type ginStreamWriter struct {
	writer gin.ResponseWriter
}

func (w *ginStreamWriter) Write(data []byte) error {
	_, err := w.writer.Write(data)
	return err
}

func (w *ginStreamWriter) Flush() {
	w.writer.Flush()
}

// ExportProducts handles GET /api/v1/products/export?format=xml|csv|ndjson
func (h *ProductHandler) ExportProducts(c *gin.Context) {
	format := strings.ToLower(c.DefaultQuery("format", DefaultExportFormat))
	if !domain.IsValidExportFormat(format) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "format must be one of: " + strings.Join(domain.ValidExportFormats, ", "),
		})
		return
	}

	log := logger.WithRequestID(middleware.GetRequestID(c))
	log.Info("Streaming export started", slog.String("format", format))

	c.Header("Content-Type", exportContentTypes[format])
	c.Header("X-Content-Type-Options", "nosniff")
	c.Header("Content-Disposition", "attachment; filename=\"products."+format+"\"")
	c.Status(http.StatusOK)

	writer := &ginStreamWriter{writer: c.Writer}
	count, err := h.productService.StreamProducts(c.Request.Context(), format, writer)
	if err != nil {
		// Headers are already sent; the truncated body is all the client gets.
		log.Error("Streaming export failed", slog.Int("count", count), slog.String("error", err.Error()))
		return
	}

	log.Info("Streaming export completed", slog.String("format", format), slog.Int("count", count))
}
