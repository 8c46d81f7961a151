package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "HTTP_ADDR", "GRPC_ADDR", "POSTGRES_DSN", "CORNERSTORE_DB_CONNECTION_STRING", "MIGRATE_ON_START", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.Development())
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, ":50051", cfg.GRPCAddr)
	assert.Contains(t, cfg.PostgresDSN, "/cornerstore")
	assert.True(t, cfg.MigrateOnStart)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("POSTGRES_DSN", "")
	t.Setenv("CORNERSTORE_DB_CONNECTION_STRING", "postgres://legacy/db")
	t.Setenv("MIGRATE_ON_START", "false")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()
	assert.False(t, cfg.Development())
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "postgres://legacy/db", cfg.PostgresDSN)
	assert.False(t, cfg.MigrateOnStart)
	assert.Equal(t, "debug", cfg.LogLevel)

	t.Setenv("POSTGRES_DSN", "postgres://primary/db")
	assert.Equal(t, "postgres://primary/db", Load().PostgresDSN)
}
