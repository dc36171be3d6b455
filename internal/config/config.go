// Package config provides configuration loading and validation for the
// portal.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// DefaultEmailDomain is the institute domain logins are gated on.
const DefaultEmailDomain = "iitg.ac.in"

// Config represents the portal configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or environment
// variables.
type Config struct {
	Port               int    `json:"port,omitempty"`                 // HTTP listen port
	StorePath          string `json:"store_path,omitempty"`           // Path to the snapshot database file
	APIKey             string `json:"api_key,omitempty"`              // Gemini API key; empty disables generation
	EmailDomain        string `json:"email_domain,omitempty"`         // Allowed login email domain
	JWTSecret          string `json:"jwt_secret,omitempty"`           // Session token signing secret
	JWTExpirationHours int    `json:"jwt_expiration_hours,omitempty"` // Session token lifetime
}

// LoadConfig loads configuration from a JSON file. Returns an error if the
// file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv fills a Config from environment variables: PORT, STORE_PATH,
// GEMINI_API_KEY, EMAIL_DOMAIN, JWT_SECRET, JWT_EXPIRATION_HOURS.
func FromEnv() Config {
	cfg := Config{
		StorePath:   os.Getenv("STORE_PATH"),
		APIKey:      os.Getenv("GEMINI_API_KEY"),
		EmailDomain: os.Getenv("EMAIL_DOMAIN"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
	}
	if portStr := os.Getenv("PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			cfg.Port = port
		}
	}
	if hoursStr := os.Getenv("JWT_EXPIRATION_HOURS"); hoursStr != "" {
		if hours, err := strconv.Atoi(hoursStr); err == nil {
			cfg.JWTExpirationHours = hours
		}
	}
	return cfg
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults, then from built-in fallbacks.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.StorePath == "" {
		result.StorePath = defaults.StorePath
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.EmailDomain == "" {
		result.EmailDomain = defaults.EmailDomain
	}
	if result.JWTSecret == "" {
		result.JWTSecret = defaults.JWTSecret
	}
	if result.JWTExpirationHours == 0 {
		result.JWTExpirationHours = defaults.JWTExpirationHours
	}

	if result.Port == 0 {
		result.Port = 8080
	}
	if result.StorePath == "" {
		result.StorePath = "portal.db"
	}
	if result.EmailDomain == "" {
		result.EmailDomain = DefaultEmailDomain
	}
	if result.JWTExpirationHours == 0 {
		result.JWTExpirationHours = 24
	}

	return result
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}
	if c.EmailDomain == "" {
		return fmt.Errorf("config error: 'email_domain' cannot be empty")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("config error: 'jwt_secret' is required (set JWT_SECRET)")
	}
	if c.JWTExpirationHours < 1 {
		return fmt.Errorf("config error: 'jwt_expiration_hours' must be at least 1, got: %d", c.JWTExpirationHours)
	}
	return nil
}
