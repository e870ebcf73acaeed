package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store backends.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// StoreConfig selects and parameterises the slot store.
type StoreConfig struct {
	Backend     string // memory, file, sqlite or postgres
	DataDir     string // directory for file and sqlite backends
	DatabaseURL string // postgres connection string
	Passphrase  string // age passphrase for the file backend; empty disables encryption
}

// SQLitePath is the database file used by the sqlite backend.
func (s StoreConfig) SQLitePath() string {
	return filepath.Join(s.DataDir, "finance.db")
}

type Config struct {
	// Server
	Port string
	Env  string // "development", "production"

	// CORS
	AllowedOrigins []string

	Store StoreConfig

	// Bill rollover job
	RolloverEnabled  bool
	RolloverOnStart  bool
	RolloverSchedule string        // Cron expression, 5 fields
	RolloverTimeout  time.Duration // Timeout for one rollover run

	// Display currency for reports
	Currency string
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		// CORS
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:3000"), ","),

		Store: StoreConfig{
			Backend:     strings.ToLower(getEnv("STORE_BACKEND", BackendSQLite)),
			DataDir:     getEnv("DATA_DIR", "data"),
			DatabaseURL: getEnv("DATABASE_URL", "postgres://localhost:5432/finance?sslmode=disable"),
			Passphrase:  os.Getenv("STORE_PASSPHRASE"),
		},

		// Bill rollover
		RolloverEnabled:  getBoolEnv("ROLLOVER_ENABLED", false),
		RolloverOnStart:  getBoolEnv("ROLLOVER_ON_START", false),
		RolloverSchedule: getEnv("ROLLOVER_SCHEDULE", "0 3 1 * *"), // Default: 03:00 on the 1st
		RolloverTimeout:  getDurationEnv("ROLLOVER_TIMEOUT", 30*time.Second),

		Currency: strings.ToUpper(getEnv("CURRENCY", "BRL")),
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
