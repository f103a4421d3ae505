// Package config provides configuration management for Arcon.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Version int           `yaml:"version"`
	Home    string        `yaml:"home"`
	App     AppConfig     `yaml:"app"`
	Wallet  WalletConfig  `yaml:"wallet"`
	Beacon  BeaconConfig  `yaml:"beacon"`
	Storage StorageConfig `yaml:"storage"`
	Logging LoggingConfig `yaml:"logging"`
}

// AppConfig identifies the application to wallet providers.
type AppConfig struct {
	Name string `yaml:"name"`
	Slug string `yaml:"slug"`
	Logo string `yaml:"logo,omitempty"`
}

// WalletConfig defines strategy selection and connection settings.
type WalletConfig struct {
	// Priority is the auto-selection order. Entries must be valid
	// strategy kinds.
	Priority []string `yaml:"priority"`

	// Permissions requested from providers on connect.
	Permissions []string `yaml:"permissions"`

	// ConnectTimeoutSeconds bounds how long a connect attempt may take.
	// Zero disables the bound.
	ConnectTimeoutSeconds int `yaml:"connect_timeout_seconds"`

	// ProbeAttempts and ProbeDelayMillis control availability probing
	// during discovery.
	ProbeAttempts    int `yaml:"probe_attempts"`
	ProbeDelayMillis int `yaml:"probe_delay_millis"`
}

// BeaconConfig defines Beacon broker and gateway settings.
type BeaconConfig struct {
	BrokerURL       string `yaml:"broker_url"`
	GatewayHost     string `yaml:"gateway_host"`
	GatewayPort     int    `yaml:"gateway_port"`
	GatewayProtocol string `yaml:"gateway_protocol"`
}

// StorageConfig defines where connection preferences are persisted.
type StorageConfig struct {
	PreferencesFile string `yaml:"preferences_file"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Load reads configuration from the specified file.
func Load(path string) (*Config, error) {
	// #nosec G304 -- config file path is from validated user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes configuration to the specified file.
func Save(cfg *Config, path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o600)
}

// Path returns the default config file path.
func Path(home string) string {
	return filepath.Join(home, "config.yaml")
}

// GetHome returns the arcon home directory path.
func (c *Config) GetHome() string {
	return c.Home
}

// GetLoggingLevel returns the configured logging level.
func (c *Config) GetLoggingLevel() string {
	return c.Logging.Level
}

// GetLoggingFile returns the configured log file path.
func (c *Config) GetLoggingFile() string {
	return c.Logging.File
}

// PreferencesPath resolves the preference store path, defaulting to a
// file under the home directory.
func (c *Config) PreferencesPath() string {
	if c.Storage.PreferencesFile != "" {
		return c.Storage.PreferencesFile
	}
	return filepath.Join(c.Home, "preferences.json")
}

// DefaultHome returns the default arcon home directory.
func DefaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".arcon"
	}
	return filepath.Join(home, ".arcon")
}
