package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_AppliesDefaults(t *testing.T) {
	cfg, err := Parse(`
[database]
dbname = "shareit"
`)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 10, cfg.Pagination.DefaultSize)
}

func TestParse_Validate(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "postgres without dbname",
			data: `[database]
driver = "postgres"`,
		},
		{
			name: "unknown driver",
			data: `[database]
driver = "mysql"`,
		},
		{
			name: "port out of range",
			data: `[server]
http_port = 70000
[database]
driver = "memory"`,
		},
		{
			name: "sampler ratio above one",
			data: `[database]
driver = "memory"
[tracing]
sampler_ratio = 1.5`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data)
			assert.Error(t, err)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db",
		Port:     5433,
		User:     "u",
		Password: "p",
		DBName:   "shareit",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=db port=5433 user=u password=p dbname=shareit sslmode=disable", d.DSN())
	assert.Equal(t, "postgres://u:p@db:5433/shareit?sslmode=disable", d.URL())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[server]
http_port = 8080
[database]
dbname = "from_file"
`), 0o600))

	t.Setenv("SHAREIT_DB_NAME", "from_env")
	t.Setenv("SHAREIT_HTTP_PORT", "8181")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from_env", cfg.Database.DBName)
	assert.Equal(t, 8181, cfg.Server.HTTPPort)
}

func TestLoad_InvalidEnvInteger(t *testing.T) {
	t.Setenv("SHAREIT_DB_DRIVER", "memory")
	t.Setenv("SHAREIT_DB_PORT", "not-a-number")

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
