package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string `yaml:"server_address"`
	Environment   string `yaml:"environment"`

	// Model provider configuration
	ProviderBaseURL string `yaml:"provider_base_url"`
	ProviderAPIKey  string `yaml:"provider_api_key"`
	ProviderModel   string `yaml:"provider_model"`
	ProviderTimeout int    `yaml:"provider_timeout_seconds"`

	// Prompt overrides (empty disables the watcher)
	PromptOverridesDir string `yaml:"prompt_overrides_dir"`

	// Logging
	LogLevel string `yaml:"log_level"`

	// Feature flags
	EnableMetrics bool `yaml:"enable_metrics"`
	EnableCORS    bool `yaml:"enable_cors"`

	// CORS
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// LoadConfig loads configuration from environment variables, with an
// optional YAML overlay pointed at by CONFIG_FILE.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),

		ProviderBaseURL: getEnv("PROVIDER_BASE_URL", "https://api.openai.com/v1"),
		ProviderAPIKey:  getEnv("PROVIDER_API_KEY", ""),
		ProviderModel:   getEnv("PROVIDER_MODEL", "gpt-4o-mini"),
		ProviderTimeout: getEnvInt("PROVIDER_TIMEOUT_SECONDS", 60),

		PromptOverridesDir: getEnv("PROMPT_OVERRIDES_DIR", ""),

		LogLevel:      getEnv("LOG_LEVEL", "info"),
		EnableMetrics: getEnvBool("ENABLE_METRICS", true),
		EnableCORS:    getEnvBool("ENABLE_CORS", true),

		AllowedOrigins: []string{"http://localhost:3000"},
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := overlayFile(cfg, path); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// overlayFile merges a YAML file over the env-derived config.
func overlayFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.Environment == "production" {
		if c.ProviderAPIKey == "" {
			return fmt.Errorf("PROVIDER_API_KEY is required in production")
		}
	}
	if c.ProviderTimeout <= 0 {
		return fmt.Errorf("provider timeout must be positive")
	}
	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
