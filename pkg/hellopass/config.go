package hellopass

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// NotificationConfig holds notification-related settings
type NotificationConfig struct {
	Method string `yaml:"method"` // stderr, macos, silent
}

// Config represents the hellopass configuration
type Config struct {
	FreshnessWindow string             `yaml:"freshness_window"` // e.g., "5m"
	Notifications   NotificationConfig `yaml:"notifications"`
}

// LoadConfig loads configuration from ~/.hellopass/config.yml
// Returns default config if file doesn't exist
func LoadConfig() (*Config, error) {
	// Default config
	cfg := &Config{
		FreshnessWindow: "5m",
		Notifications: NotificationConfig{
			Method: "stderr",
		},
	}

	// Try to load from ~/.hellopass/config.yml
	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, nil // Return defaults
	}

	configPath := filepath.Join(home, ".hellopass", "config.yml")
	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, nil // Return defaults if file doesn't exist
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	// HELLOPASS_SILENT keeps stderr clean when another tool drives us
	if os.Getenv("HELLOPASS_SILENT") == "true" {
		cfg.Notifications.Method = "silent"
	}

	return cfg, nil
}

// GetFreshnessWindow parses and returns the freshness window duration
func (c *Config) GetFreshnessWindow() (time.Duration, error) {
	s := c.FreshnessWindow
	if s == "" {
		return DefaultFreshnessWindow, nil
	}

	// Try standard Go duration first
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}

	// Parse custom formats (d, w)
	return parseDuration(s)
}

// parseDuration parses duration strings like "7d", "2w"
func parseDuration(s string) (time.Duration, error) {
	if len(s) < 2 {
		return 0, fmt.Errorf("invalid duration: %s", s)
	}

	// Days
	if s[len(s)-1] == 'd' || s[len(s)-1] == 'D' {
		var days int
		_, err := fmt.Sscanf(s[:len(s)-1], "%d", &days)
		if err != nil {
			return 0, err
		}
		return time.Duration(days) * 24 * time.Hour, nil
	}

	// Weeks
	if s[len(s)-1] == 'w' || s[len(s)-1] == 'W' {
		var weeks int
		_, err := fmt.Sscanf(s[:len(s)-1], "%d", &weeks)
		if err != nil {
			return 0, err
		}
		return time.Duration(weeks) * 7 * 24 * time.Hour, nil
	}

	return 0, fmt.Errorf("invalid duration format: %s", s)
}
