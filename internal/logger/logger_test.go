package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/chadm2c/xml-importer/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	testLogger := slog.New(handler)
	logger.SetLogger(testLogger)

	logger.Info("test message",
		slog.String("key", "value"),
		slog.Int("count", 42),
	)

	output := buf.String()
	assert.Contains(t, output, "test message")
	assert.Contains(t, output, "key")
	assert.Contains(t, output, "value")
	assert.Contains(t, output, "count")
	assert.Contains(t, output, "42")
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelError,
	})
	testLogger := slog.New(handler)
	logger.SetLogger(testLogger)

	logger.Error("error occurred",
		slog.String("error", "test error"),
	)

	output := buf.String()
	assert.Contains(t, output, "error occurred")
	assert.Contains(t, output, "test error")
}

func TestLogger_WithRequestID(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	testLogger := slog.New(handler)
	logger.SetLogger(testLogger)

	reqLogger := logger.WithRequestID("req-123")
	reqLogger.Info("processing request")

	output := buf.String()
	assert.Contains(t, output, "processing request")
	assert.Contains(t, output, "request_id")
	assert.Contains(t, output, "req-123")
}

func TestLogger_WithImportID(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	testLogger := slog.New(handler)
	logger.SetLogger(testLogger)

	importLogger := logger.WithImportID("imp-456")
	importLogger.Info("processing import")

	output := buf.String()
	assert.Contains(t, output, "processing import")
	assert.Contains(t, output, "import_id")
	assert.Contains(t, output, "imp-456")
}

func TestLogger_InfoContext(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	testLogger := slog.New(handler)
	logger.SetLogger(testLogger)

	ctx := context.Background()
	logger.InfoContext(ctx, "context message",
		slog.String("key", "value"),
	)

	output := buf.String()
	assert.Contains(t, output, "context message")
	assert.Contains(t, output, "key")
	assert.Contains(t, output, "value")
}

func TestLogger_GetLogger(t *testing.T) {
	lg := logger.GetLogger()
	require.NotNil(t, lg)
}

func TestLogger_Default(t *testing.T) {
	lg := logger.Default()
	require.NotNil(t, lg)
	// Default() should return the same instance as GetLogger()
	assert.Equal(t, logger.GetLogger(), lg)
}

func TestLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	testLogger := slog.New(handler)
	logger.SetLogger(testLogger)

	fieldsLogger := logger.WithFields(
		slog.String("service", "import"),
		slog.Int("batch_size", 1000),
	)
	fieldsLogger.Info("batch processing")

	output := buf.String()
	assert.Contains(t, output, "batch processing")
	assert.Contains(t, output, "service")
	assert.Contains(t, output, "import")
	assert.Contains(t, output, "batch_size")
	assert.Contains(t, output, "1000")
}

func TestLogger_ParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.ParseLevel(tt.input))
		})
	}
}

func TestLogger_Configure(t *testing.T) {
	var buf bytes.Buffer
	logger.Configure(&buf, "warn")

	logger.Info("hidden message")
	logger.Warn("visible message")

	output := buf.String()
	assert.NotContains(t, output, "hidden message")
	assert.Contains(t, output, "visible message")
}
