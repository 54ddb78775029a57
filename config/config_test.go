package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"DATABASE_PATH", "DB_LOG_LEVEL", "PORT", "CORS_ALLOWED_ORIGINS", "REQUEST_TIMEOUT_SECONDS",
		"DIRECTORY_MODE", "RESOURCES_DIRECTORY", "PEOPLE_FILE", "COMPANIES_FILE", "IMPORT_QUEUE_SIZE", "IMPORT_WORKERS",
	} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "paranuara.db", cfg.DatabasePath)
	assert.Equal(t, "warn", cfg.DBLogLevel)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins)
	assert.Equal(t, 60*time.Second, cfg.RequestTimeout)
	assert.Equal(t, DirectoryModeDatabase, cfg.DirectoryMode)
	assert.Equal(t, filepath.Join("resources", "people.json"), cfg.PeopleFile)
	assert.Equal(t, filepath.Join("resources", "companies.json"), cfg.CompaniesFile)
	assert.Equal(t, defaultImportQueueSize, cfg.ImportQueueSize)
	assert.Equal(t, defaultNumImportWorkers, cfg.NumImportWorkers)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_PATH", "/tmp/p.db")
	t.Setenv("DB_LOG_LEVEL", "INFO")
	t.Setenv("PORT", "9000")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "5")
	t.Setenv("DIRECTORY_MODE", "Memory")
	t.Setenv("RESOURCES_DIRECTORY", "data")
	t.Setenv("PEOPLE_FILE", "")
	t.Setenv("COMPANIES_FILE", "/srv/companies.json")
	t.Setenv("IMPORT_QUEUE_SIZE", "10")
	t.Setenv("IMPORT_WORKERS", "2")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/p.db", cfg.DatabasePath)
	assert.Equal(t, "info", cfg.DBLogLevel)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, DirectoryModeMemory, cfg.DirectoryMode)
	assert.Equal(t, filepath.Join("data", "people.json"), cfg.PeopleFile)
	assert.Equal(t, "/srv/companies.json", cfg.CompaniesFile)
	assert.Equal(t, 10, cfg.ImportQueueSize)
	assert.Equal(t, 2, cfg.NumImportWorkers)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	t.Setenv("DIRECTORY_MODE", "")
	t.Setenv("IMPORT_WORKERS", "-3")
	t.Setenv("IMPORT_QUEUE_SIZE", "lots")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, defaultNumImportWorkers, cfg.NumImportWorkers)
	assert.Equal(t, defaultImportQueueSize, cfg.ImportQueueSize)

	t.Setenv("DIRECTORY_MODE", "cache")
	_, err = LoadConfig()
	assert.Error(t, err)
}
