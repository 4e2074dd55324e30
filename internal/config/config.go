package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// APIBaseURL is the root of the swap coordination REST API
	APIBaseURL string `yaml:"apiBaseURL" validate:"required,url"`
	// SessionFile overrides where role credentials are persisted
	SessionFile string `yaml:"sessionFile,omitempty"`
}

const (
	configFileName = "swapdesk.yaml"

	envAPIBaseURL  = "SWAPDESK_API_BASE_URL"
	envSessionFile = "SWAPDESK_SESSION_FILE"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration. It reads a .env file when one
// is present, then swapdesk.yaml from the current directory or the user's
// home directory, then applies environment overrides. A config file is
// optional as long as the API base URL is set in the environment.
func Load() (*Config, error) {
	// Missing .env is fine; explicit env vars still apply
	_ = godotenv.Load()

	cfg := &Config{}

	configPath, err := findConfigFile()
	if err == nil {
		cfg, err = loadFromPath(configPath)
		if err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	cfg, err := loadFromPath(path)
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(envAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(envSessionFile); v != "" {
		cfg.SessionFile = v
	}
}

// Validate validates the configuration struct
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// findConfigFile searches for swapdesk.yaml in current directory and home directory
func findConfigFile() (string, error) {
	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
