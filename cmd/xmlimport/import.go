package main

import (
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/chadm2c/xml-importer/internal/cache"
	"github.com/chadm2c/xml-importer/internal/config"
	"github.com/chadm2c/xml-importer/internal/domain"
	"github.com/chadm2c/xml-importer/internal/infrastructure/database"
	"github.com/chadm2c/xml-importer/internal/logger"
	"github.com/chadm2c/xml-importer/internal/repository"
	"github.com/chadm2c/xml-importer/internal/service"
)

func newImportCmd(opts *rootOptions) *cobra.Command {
	var batchSize int

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Validate a catalog and store its valid products",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := config.LoadFrom(opts.envFile)
			if err != nil {
				return err
			}
			if batchSize > 0 {
				cfg.BatchSize = batchSize
			}

			content, size, err := readDocument(args[0])
			if err != nil {
				return err
			}

			pool, err := database.NewPostgres(ctx, cfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			// Imports through the CLI still invalidate cached listings served by the API.
			var listCache service.ProductListCache
			if cfg.RedisURL != "" {
				client, err := database.NewRedis(ctx, cfg.RedisURL)
				if err != nil {
					logger.Warn("Product list cache unavailable", slog.String("error", err.Error()))
				} else {
					defer client.Close()
					listCache = cache.NewProductCache(client, cfg.CacheTTL)
				}
			}

			importService := service.NewImportService(
				newParser(),
				repository.NewPostgresProductRepository(pool, cfg.BatchSize),
				repository.NewPostgresImportJobRepository(pool),
				listCache,
			)

			outcome := importService.Import(ctx, service.ImportRequest{
				Content:  content,
				Size:     size,
				Filename: filepath.Base(args[0]),
			})

			if err := writeJSON(cmd.OutOrStdout(), outcome); err != nil {
				return err
			}
			if outcome.Status() == domain.ImportStatusFailed {
				return errFindings
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&batchSize, "batch-size", 0, "Rows per INSERT statement (overrides BATCH_SIZE)")
	return cmd
}
