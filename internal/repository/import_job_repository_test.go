package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chadm2c/xml-importer/internal/domain"
	"github.com/chadm2c/xml-importer/internal/repository"
)

func TestPostgresImportJobRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresImportJobRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("create and get import job", func(t *testing.T) {
		testDB.TruncateTables(t, "import_jobs")

		now := time.Now().UTC().Truncate(time.Millisecond)
		job := &domain.ImportJob{
			ID:             uuid.New().String(),
			Filename:       "catalog.xml",
			Status:         domain.ImportStatusCompletedWithErrors,
			Message:        "Partially successful: Imported 2 of 3 products. 1 error(s) occurred.",
			TotalProcessed: 3,
			ImportedCount:  2,
			Errors:         []string{"Failed to parse product at position 2: Price is required"},
			CreatedAt:      now,
			CompletedAt:    now.Add(time.Second),
		}

		require.NoError(t, repo.CreateImportJob(ctx, job))

		retrieved, err := repo.GetImportJob(ctx, job.ID)
		require.NoError(t, err)
		require.NotNil(t, retrieved)

		assert.Equal(t, job.ID, retrieved.ID)
		assert.Equal(t, job.Filename, retrieved.Filename)
		assert.Equal(t, job.Status, retrieved.Status)
		assert.Equal(t, job.ImportedCount, retrieved.ImportedCount)
		assert.Equal(t, job.Errors, retrieved.Errors)
		assert.True(t, job.CompletedAt.Equal(retrieved.CompletedAt))
	})

	t.Run("nil errors stored as empty list", func(t *testing.T) {
		testDB.TruncateTables(t, "import_jobs")

		job := &domain.ImportJob{
			ID:          uuid.New().String(),
			Status:      domain.ImportStatusCompleted,
			Message:     "Successfully imported 1 products",
			CreatedAt:   time.Now(),
			CompletedAt: time.Now(),
		}
		require.NoError(t, repo.CreateImportJob(ctx, job))

		retrieved, err := repo.GetImportJob(ctx, job.ID)
		require.NoError(t, err)
		require.NotNil(t, retrieved)
		assert.Empty(t, retrieved.Errors)
	})

	t.Run("get non-existent job", func(t *testing.T) {
		retrieved, err := repo.GetImportJob(ctx, uuid.New().String())
		require.NoError(t, err)
		assert.Nil(t, retrieved)
	})
}
