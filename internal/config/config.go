// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const defaultSecretKey = "change-this-secret-key-before-production-use"

// Settings is the immutable application configuration, built once at startup
// and passed into every component that needs it. There is no package-level
// instance.
type Settings struct {
	AppName     string `validate:"required"`
	AppVersion  string `validate:"required"`
	Debug       bool
	Environment string `validate:"oneof=development staging production"`

	Host string `validate:"required"`
	Port int    `validate:"gte=1,lte=65535"`

	SecretKey    string   `validate:"required"`
	AllowedHosts []string `validate:"min=1"`

	DatabaseURL string `validate:"required"`

	LogLevel string `validate:"oneof=debug info warn error"`
	JSONLogs bool

	EnableCORS    bool
	EnableMetrics bool

	DefaultPageSize int `validate:"gte=1"`
	MaxPageSize     int `validate:"gte=1,gtefield=DefaultPageSize"`
}

// Load reads configuration from the environment (a .env file is honored when
// present) and validates it. Any invalid value is fatal here, not at first
// use.
func Load() (*Settings, error) {
	_ = godotenv.Load()

	s := &Settings{
		AppName:      getEnv("APP_NAME", "project-hub"),
		AppVersion:   getEnv("APP_VERSION", "0.1.0"),
		Environment:  getEnv("ENVIRONMENT", "development"),
		Host:         getEnv("HOST", "0.0.0.0"),
		SecretKey:    getEnv("SECRET_KEY", defaultSecretKey),
		AllowedHosts: splitHosts(getEnv("ALLOWED_HOSTS", "*")),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		LogLevel:     strings.ToLower(getEnv("LOG_LEVEL", "info")),
	}

	var err error
	if s.Debug, err = getEnvBool("DEBUG", false); err != nil {
		return nil, err
	}
	if s.Port, err = getEnvInt("PORT", 8000); err != nil {
		return nil, err
	}
	if s.JSONLogs, err = getEnvBool("JSON_LOGS", false); err != nil {
		return nil, err
	}
	if s.EnableCORS, err = getEnvBool("ENABLE_CORS", true); err != nil {
		return nil, err
	}
	if s.EnableMetrics, err = getEnvBool("ENABLE_METRICS", false); err != nil {
		return nil, err
	}
	if s.DefaultPageSize, err = getEnvInt("DEFAULT_PAGE_SIZE", 100); err != nil {
		return nil, err
	}
	if s.MaxPageSize, err = getEnvInt("MAX_PAGE_SIZE", 100); err != nil {
		return nil, err
	}

	if err := validator.New().Struct(s); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if s.Environment == "production" {
		if s.SecretKey == defaultSecretKey {
			return nil, fmt.Errorf("SECRET_KEY must be set to a secure value in production")
		}
		if len(s.SecretKey) < 32 {
			return nil, fmt.Errorf("SECRET_KEY must be at least 32 characters in production")
		}
	}
	return s, nil
}

// Addr is the host:port the server listens on.
func (s *Settings) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %q", key, v)
	}
	return b, nil
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	return n, nil
}

func splitHosts(v string) []string {
	hosts := []string{}
	for _, h := range strings.Split(v, ",") {
		if h = strings.TrimSpace(h); h != "" {
			hosts = append(hosts, h)
		}
	}
	return hosts
}
