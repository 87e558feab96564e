package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Storage StorageConfig
	Policy  Policy
}

// AppConfig holds application configuration
type AppConfig struct {
	Env       string
	LogLevel  string
	LogFormat string
}

// StorageConfig names the data directory and the files inside it.
type StorageConfig struct {
	DataDir      string
	EmployeeFile string
	CandidateLog string
	RejectionLog string
	PolicyFile   string
}

// Load reads envFile (".env" when empty) into the process environment, then
// builds the configuration from it. Only the default .env may be absent.
func Load(envFile string) (*Config, error) {
	optional := envFile == ""
	if optional {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !(optional && errors.Is(err, os.ErrNotExist)) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	config := &Config{}

	config.App = AppConfig{
		Env:       getEnv("APP_ENV", "development"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}

	config.Storage = StorageConfig{
		DataDir:      getEnv("TC_DATA_DIR", "."),
		EmployeeFile: getEnv("TC_EMPLOYEE_FILE", "startup.csv"),
		CandidateLog: getEnv("TC_CANDIDATE_LOG", "candidates.csv"),
		RejectionLog: getEnv("TC_REJECTION_LOG", "rejections.csv"),
		PolicyFile:   getEnv("TC_POLICY_FILE", ""),
	}

	policy, err := LoadPolicy(config.Storage.PolicyFile)
	if err != nil {
		return nil, err
	}
	config.Policy = policy

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Storage.DataDir) == "" {
		return fmt.Errorf("TC_DATA_DIR is required")
	}
	if strings.TrimSpace(c.Storage.EmployeeFile) == "" {
		return fmt.Errorf("TC_EMPLOYEE_FILE is required")
	}
	if strings.TrimSpace(c.Storage.CandidateLog) == "" {
		return fmt.Errorf("TC_CANDIDATE_LOG is required")
	}
	if strings.TrimSpace(c.Storage.RejectionLog) == "" {
		return fmt.Errorf("TC_REJECTION_LOG is required")
	}
	switch strings.ToLower(c.App.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.App.LogFormat)
	}
	return c.Policy.Validate()
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
