package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// directory modes
const (
	DirectoryModeDatabase = "database"
	DirectoryModeMemory   = "memory"
)

const (
	defaultImportQueueSize    = 200
	defaultNumImportWorkers   = 4
	defaultRequestTimeoutSecs = 60
)

type Config struct {
	// database path
	DatabasePath string
	// GORM logger level: silent, error, warn or info
	DBLogLevel   string

	// http settings
	Port           string
	AllowedOrigins []string
	RequestTimeout time.Duration
	DirectoryMode  string

	// fixture files read by the importer
	PeopleFile    string
	CompaniesFile string

	// worker settings
	ImportQueueSize  int
	NumImportWorkers int
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvIntOrDefault(envVar string, defaultVal int) int {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val <= 0 {
		log.Printf("Warning: Invalid %s '%s'. Using default %d. Error: %v", envVar, valStr, defaultVal, err)
		return defaultVal
	}
	return val
}

// splitList turns a comma-separated value into its trimmed, non-empty parts.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func LoadConfig() (Config, error) {
	dbPath := getEnvOrDefault("DATABASE_PATH", "paranuara.db")

	mode := strings.ToLower(getEnvOrDefault("DIRECTORY_MODE", DirectoryModeDatabase))
	if mode != DirectoryModeDatabase && mode != DirectoryModeMemory {
		return Config{}, fmt.Errorf("invalid DIRECTORY_MODE '%s': expected '%s' or '%s'", mode, DirectoryModeDatabase, DirectoryModeMemory)
	}

	resourcesDir := getEnvOrDefault("RESOURCES_DIRECTORY", "resources")
	peopleFile := getEnvOrDefault("PEOPLE_FILE", filepath.Join(resourcesDir, "people.json"))
	companiesFile := getEnvOrDefault("COMPANIES_FILE", filepath.Join(resourcesDir, "companies.json"))

	timeoutSecs := getEnvIntOrDefault("REQUEST_TIMEOUT_SECONDS", defaultRequestTimeoutSecs)

	cfg := Config{
		DatabasePath:     dbPath,
		DBLogLevel:       strings.ToLower(getEnvOrDefault("DB_LOG_LEVEL", "warn")),
		Port:             getEnvOrDefault("PORT", "8080"),
		AllowedOrigins:   splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
		RequestTimeout:   time.Duration(timeoutSecs) * time.Second,
		DirectoryMode:    mode,
		PeopleFile:       peopleFile,
		CompaniesFile:    companiesFile,
		ImportQueueSize:  getEnvIntOrDefault("IMPORT_QUEUE_SIZE", defaultImportQueueSize),
		NumImportWorkers: getEnvIntOrDefault("IMPORT_WORKERS", defaultNumImportWorkers),
	}

	return cfg, nil
}
