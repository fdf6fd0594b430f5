package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTOML = `
[server]
http_port = 8090

[database]
host = "db"
port = 5433
user = "hotel"
password = "secret"
dbname = "hotel"

[block_booking]
minimum_rooms = 4
discount_percentage = 12.5

[rate_limit]
enabled = true
requests_per_second = 5
burst = 10
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FromTOML(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(writeConfig(t, sampleTOML))
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Server.HTTPPort)
	assert.Equal(t, 30, cfg.Server.WriteTimeout, "defaults survive partial files")
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 4, cfg.BlockBooking.MinimumRooms)
	assert.Equal(t, 12.5, cfg.BlockBooking.DiscountPercentage)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, "host=db port=5433 user=hotel password=secret dbname=hotel sslmode=disable", cfg.Database.DSN())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOTEL_DATABASE_PASSWORD", "from-env")
	t.Setenv("HOTEL_BLOCK_BOOKING_DISCOUNT_PERCENTAGE", "20")
	t.Setenv("HOTEL_SERVER_HTTP_PORT", "9000")

	cfg, err := Load(writeConfig(t, sampleTOML))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, 20.0, cfg.BlockBooking.DiscountPercentage)
	assert.Equal(t, 9000, cfg.Server.HTTPPort)
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("HOTEL_DATABASE_USER=dotenv-user\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("HOTEL_DATABASE_USER") })

	cfg, err := Load(writeConfig(t, sampleTOML))
	require.NoError(t, err)

	assert.Equal(t, "dotenv-user", cfg.Database.User)
}

func TestLoad_MissingFileUsesDefaultsAndEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOTEL_DATABASE_DBNAME", "hotel")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 5, cfg.BlockBooking.MinimumRooms)
	assert.Equal(t, 15.0, cfg.BlockBooking.DiscountPercentage)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"bad port", func(c *Config) { c.Server.HTTPPort = 0 }},
		{"no db name", func(c *Config) { c.Database.DBName = "" }},
		{"negative minimum rooms", func(c *Config) { c.BlockBooking.MinimumRooms = -1 }},
		{"discount over 100", func(c *Config) { c.BlockBooking.DiscountPercentage = 101 }},
		{"rate limit without burst", func(c *Config) {
			c.RateLimit.Enabled = true
			c.RateLimit.Burst = 0
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Database.DBName = "hotel"
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
