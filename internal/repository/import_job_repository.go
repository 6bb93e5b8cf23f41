package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chadm2c/xml-importer/internal/domain"
)

// PostgresImportJobRepository implements ImportJobRepository using PostgreSQL.
type PostgresImportJobRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresImportJobRepository creates a new PostgresImportJobRepository.
func NewPostgresImportJobRepository(pool *pgxpool.Pool) *PostgresImportJobRepository {
	return &PostgresImportJobRepository{pool: pool}
}

// CreateImportJob records a finished import.
func (r *PostgresImportJobRepository) CreateImportJob(ctx context.Context, job *domain.ImportJob) error {
	errs := job.Errors
	if errs == nil {
		errs = []string{}
	}
	payload, err := json.Marshal(errs)
	if err != nil {
		return fmt.Errorf("marshal errors: %w", err)
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO import_jobs (id, filename, status, message, total_processed,
			imported_count, errors, created_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, job.ID, job.Filename, job.Status, job.Message, job.TotalProcessed,
		job.ImportedCount, payload, job.CreatedAt, job.CompletedAt)
	if err != nil {
		return fmt.Errorf("insert import job: %w", err)
	}

	return nil
}

// GetImportJob retrieves an import job by ID, or nil when it does not exist.
func (r *PostgresImportJobRepository) GetImportJob(ctx context.Context, id string) (*domain.ImportJob, error) {
	var job domain.ImportJob
	var payload []byte

	err := r.pool.QueryRow(ctx, `
		SELECT id::text, filename, status, message, total_processed, imported_count,
			errors, created_at, completed_at
		FROM import_jobs
		WHERE id = $1
	`, id).Scan(&job.ID, &job.Filename, &job.Status, &job.Message, &job.TotalProcessed,
		&job.ImportedCount, &payload, &job.CreatedAt, &job.CompletedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get import job: %w", err)
	}

	if payload != nil {
		if err := json.Unmarshal(payload, &job.Errors); err != nil {
			return nil, fmt.Errorf("unmarshal errors: %w", err)
		}
	}

	return &job, nil
}
