package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ServerConfig represents the formatting service listen address
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// Addr returns the host:port listen address
func (s *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// FormatterConfig represents token URI formatting defaults
type FormatterConfig struct {
	HexIDDigits int    `yaml:"hex_id_digits"`
	URITemplate string `yaml:"uri_template"`
}

// LoggerConfig represents logger configuration
type LoggerConfig struct {
	Development bool `yaml:"development"`
}

// Config represents the main configuration structure
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Formatter FormatterConfig `yaml:"formatter"`
	Logger    LoggerConfig    `yaml:"logger"`
}

// LoadConfig loads configuration from a YAML file and environment variables
func LoadConfig(path string) (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Load YAML config
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply environment variable overrides
	applyEnvOverrides(&cfg)

	// Validate configuration
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	if cfg.Server.Port < 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server port must be in 0-65535, got %d", cfg.Server.Port)
	}
	if cfg.Formatter.HexIDDigits < 0 {
		return fmt.Errorf("hex_id_digits must be >= 0, got %d", cfg.Formatter.HexIDDigits)
	}
	if cfg.Formatter.URITemplate != "" && strings.Count(cfg.Formatter.URITemplate, "%s") != 2 {
		return fmt.Errorf("uri_template must contain exactly two %%s verbs")
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to configuration
func applyEnvOverrides(cfg *Config) {
	// Server configuration
	if host := os.Getenv("FORMATD_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if port := os.Getenv("FORMATD_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
		// If parsing fails, keep the YAML value
	}

	// Formatter configuration
	if digits := os.Getenv("FORMATTER_HEX_ID_DIGITS"); digits != "" {
		if d, err := strconv.Atoi(digits); err == nil {
			cfg.Formatter.HexIDDigits = d
		}
	}
	if template := os.Getenv("FORMATTER_URI_TEMPLATE"); template != "" {
		cfg.Formatter.URITemplate = template
	}

	// Logger configuration
	if loggerDebug := os.Getenv("LOGGER_DEBUG"); loggerDebug != "" {
		if debug, err := strconv.ParseBool(loggerDebug); err == nil {
			cfg.Logger.Development = debug
		}
	}
}
