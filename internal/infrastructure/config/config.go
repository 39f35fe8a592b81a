package config

import (
	"os"
	"strconv"

	usecasecontract "github.com/mikiasgoitom/Vidora/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	AppBaseURL      string
	DefaultPageSize int
	MaxPageSize     int
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() usecasecontract.IConfigProvider {
	return &Config{
		AppBaseURL:      getEnv("APP_BASE_URL", "http://localhost:8080"),
		DefaultPageSize: getEnvAsInt("DEFAULT_PAGE_SIZE", 10),
		MaxPageSize:     getEnvAsInt("MAX_PAGE_SIZE", 100),
	}
}

// GetAppBaseURL returns the base URL of the application.
func (c *Config) GetAppBaseURL() string {
	return c.AppBaseURL
}

// GetDefaultPageSize returns the page size used when none is supplied.
func (c *Config) GetDefaultPageSize() int {
	return c.DefaultPageSize
}

// GetMaxPageSize returns the largest page size a caller may request.
func (c *Config) GetMaxPageSize() int {
	return c.MaxPageSize
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
