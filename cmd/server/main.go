package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/chadm2c/xml-importer/internal/cache"
	"github.com/chadm2c/xml-importer/internal/config"
	"github.com/chadm2c/xml-importer/internal/handler"
	"github.com/chadm2c/xml-importer/internal/infrastructure/database"
	"github.com/chadm2c/xml-importer/internal/logger"
	"github.com/chadm2c/xml-importer/internal/metrics"
	"github.com/chadm2c/xml-importer/internal/middleware"
	"github.com/chadm2c/xml-importer/internal/repository"
	"github.com/chadm2c/xml-importer/internal/service"
	"github.com/chadm2c/xml-importer/internal/validator"
	"github.com/chadm2c/xml-importer/internal/xmlparser"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.Configure(os.Stdout, cfg.LogLevel)

	// Connect to database
	pool, err := database.NewPostgres(context.Background(), cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	checks := map[string]handler.PingFunc{
		"database": func(ctx context.Context) error {
			metrics.LogHealthCheckMetrics(ctx, pool)
			return database.HealthCheck(ctx, pool)
		},
	}

	// Product list cache is optional
	var listCache service.ProductListCache
	if cfg.RedisURL != "" {
		client, err := database.NewRedis(context.Background(), cfg.RedisURL)
		if err != nil {
			logger.Fatal("Failed to connect to redis",
				slog.String("error", err.Error()))
		}
		defer client.Close()

		listCache = cache.NewProductCache(client, cfg.CacheTTL)
		checks["cache"] = func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		}
	} else {
		logger.Info("REDIS_URL not set, product list cache disabled")
	}

	// Initialize repositories
	productRepo := repository.NewPostgresProductRepository(pool, cfg.BatchSize)
	importJobRepo := repository.NewPostgresImportJobRepository(pool)

	// Initialize parser
	parser := xmlparser.NewParser(validator.NewProductValidator(time.Now))

	// Initialize services
	importService := service.NewImportService(parser, productRepo, importJobRepo, listCache)
	productService := service.NewProductService(productRepo, listCache)

	// Initialize handlers
	importHandler := handler.NewImportHandler(importService, cfg.MaxUploadSize)
	productHandler := handler.NewProductHandler(productService)
	healthHandler := handler.NewHealthHandler(checks)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())
	router.MaxMultipartMemory = cfg.MaxUploadSize

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		products := v1.Group("/products")
		{
			products.POST("/import", importHandler.CreateImport)
			products.GET("", productHandler.ListProducts)
			products.GET("/export", productHandler.ExportProducts)
			products.GET("/:id", productHandler.GetProduct)
		}

		v1.GET("/imports/:id", importHandler.GetImport)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// In-flight imports finish inside the shutdown window
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
