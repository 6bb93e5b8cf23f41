package database

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chadm2c/xml-importer/internal/config"
)

func TestNewPostgres_Unreachable(t *testing.T) {
	cfg := &config.Config{
		DBHost:     "127.0.0.1",
		DBPort:     1,
		DBUser:     "postgres",
		DBPassword: "p@ss word",
		DBName:     "xml_importer",
		DBSSLMode:  "disable",
		DBMaxConns: 2,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := NewPostgres(ctx, cfg)
	require.Error(t, err)
	assert.Nil(t, pool)
	assert.Contains(t, err.Error(), "ping database xml_importer")
}

func TestNewPoolConfig(t *testing.T) {
	base := config.Config{
		DBHost:    "db.example.com",
		DBPort:    5432,
		DBUser:    "postgres",
		DBName:    "xml_importer",
		DBSSLMode: "disable",
	}

	t.Run("unset values keep pgx defaults", func(t *testing.T) {
		cfg := base
		defaults, err := pgxpool.ParseConfig(cfg.DatabaseURL())
		require.NoError(t, err)

		poolConfig, err := newPoolConfig(&cfg)
		require.NoError(t, err)

		assert.Equal(t, defaults.MaxConns, poolConfig.MaxConns)
		assert.Equal(t, defaults.MinConns, poolConfig.MinConns)
		assert.Equal(t, defaults.MaxConnLifetime, poolConfig.MaxConnLifetime)
		assert.Equal(t, defaults.MaxConnIdleTime, poolConfig.MaxConnIdleTime)
		assert.Equal(t, defaults.HealthCheckPeriod, poolConfig.HealthCheckPeriod)
		assert.Positive(t, poolConfig.HealthCheckPeriod)
	})

	t.Run("configured values override defaults", func(t *testing.T) {
		cfg := base
		cfg.DBMaxConns = 7
		cfg.DBMinConns = 2
		cfg.DBMaxConnLifetime = 10 * time.Minute
		cfg.DBMaxConnIdleTime = 2 * time.Minute
		cfg.DBHealthCheckPeriod = 15 * time.Second

		poolConfig, err := newPoolConfig(&cfg)
		require.NoError(t, err)

		assert.Equal(t, int32(7), poolConfig.MaxConns)
		assert.Equal(t, int32(2), poolConfig.MinConns)
		assert.Equal(t, 10*time.Minute, poolConfig.MaxConnLifetime)
		assert.Equal(t, 2*time.Minute, poolConfig.MaxConnIdleTime)
		assert.Equal(t, 15*time.Second, poolConfig.HealthCheckPeriod)
	})

	t.Run("negative durations are ignored", func(t *testing.T) {
		cfg := base
		cfg.DBHealthCheckPeriod = -time.Second

		poolConfig, err := newPoolConfig(&cfg)
		require.NoError(t, err)
		assert.Positive(t, poolConfig.HealthCheckPeriod)
	})
}

func TestNewRedis(t *testing.T) {
	t.Run("rejects malformed url", func(t *testing.T) {
		client, err := NewRedis(context.Background(), "http://localhost:6379")
		require.Error(t, err)
		assert.Nil(t, client)
		assert.Contains(t, err.Error(), "parse redis url")
	})

	t.Run("fails when server unreachable", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		client, err := NewRedis(ctx, "redis://127.0.0.1:1/0")
		require.Error(t, err)
		assert.Nil(t, client)
		assert.Contains(t, err.Error(), "ping redis")
	})
}
