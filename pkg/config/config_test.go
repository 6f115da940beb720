package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"SERVER_PORT", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT", "CORS_ALLOW_ORIGINS",
		"STORE_BACKEND", "DATABASE_URL", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
		"DB_SSLMODE", "DB_MAX_CONNS", "DB_AUTO_MIGRATE", "JWT_SECRET_KEY", "JWT_EXPIRATION_HOURS", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "*", cfg.Server.AllowOrigins)
	assert.Equal(t, BackendPostgres, cfg.Database.Backend)
	assert.Equal(t, "fintrack", cfg.Database.DBName)
	assert.Equal(t, int32(10), cfg.Database.MaxConns)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.False(t, cfg.JWT.Enabled())
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORE_BACKEND", "MEMORY")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("JWT_SECRET_KEY", "s3cret")
	t.Setenv("JWT_EXPIRATION_HOURS", "2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, BackendMemory, cfg.Database.Backend)
	assert.False(t, cfg.Database.AutoMigrate)
	assert.True(t, cfg.JWT.Enabled())
	assert.Equal(t, 2*time.Hour, cfg.JWT.Expiration)
}

func TestLoadRejectsBadNumbers(t *testing.T) {
	t.Setenv("SERVER_READ_TIMEOUT", "soon")

	_, err := Load()
	assert.EqualError(t, err, "invalid SERVER_READ_TIMEOUT 'soon': must be a number")
}

func TestLoadRejectsOversizedPool(t *testing.T) {
	t.Setenv("DB_MAX_CONNS", "4294967297")

	_, err := Load()
	assert.EqualError(t, err, "invalid DB_MAX_CONNS 4294967297: must be at most 2147483647")
}

func TestConfigValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server:   ServerConfig{Port: "8080"},
			Database: DatabaseConfig{Backend: BackendPostgres, MaxConns: 4},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"non-numeric port", func(c *Config) { c.Server.Port = "abc" }, "invalid port 'abc': must be a number"},
		{"port out of range", func(c *Config) { c.Server.Port = "70000" }, "invalid port 70000: must be between 1 and 65535"},
		{"zero pool", func(c *Config) { c.Database.MaxConns = 0 }, "invalid DB_MAX_CONNS 0: must be positive"},
		{"memory ignores pool", func(c *Config) { c.Database.Backend = BackendMemory; c.Database.MaxConns = 0 }, ""},
		{"keyword dsn url", func(c *Config) { c.Database.URL = "host=db dbname=ledger" }, "invalid DATABASE_URL: must be a postgres:// URL"},
		{"postgres url", func(c *Config) { c.Database.URL = "postgres://u:p@db/ledger" }, ""},
		{"unknown backend", func(c *Config) { c.Database.Backend = "sqlite" }, "invalid STORE_BACKEND 'sqlite': must be postgres or memory"},
		{"jwt without expiry", func(c *Config) { c.JWT.SecretKey = "k" }, "invalid JWT expiration 0s: must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestDatabaseURLs(t *testing.T) {
	db := DatabaseConfig{
		Host:     "db",
		Port:     "5432",
		User:     "app",
		Password: "p@ss",
		DBName:   "ledger",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=db port=5432 user=app password=p@ss dbname=ledger sslmode=disable", db.DSN())
	assert.Equal(t, "pgx5://app:p%40ss@db:5432/ledger?sslmode=disable", db.MigrateURL())

	db.URL = "postgres://u:p@neon.tech/main?sslmode=require"
	assert.Equal(t, db.URL, db.DSN())
	assert.Equal(t, "pgx5://u:p@neon.tech/main?sslmode=require", db.MigrateURL())
}
