// Package config provides persistent configuration storage for sspsim.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/backkem/sspsim/internal/hci"
)

// Config holds the persistent configuration: the IO-capability defaults a
// host script falls back to when a scenario doesn't supply its own.
type Config struct {
	// IoCapability is the default reply to an IoCapabilityRequest.
	IoCapability hci.IoCapability `json:"io_capability"`
	// OobDataPresent is the default OOB-present field.
	OobDataPresent hci.OobDataPresent `json:"oob_data_present"`
	// AuthenticationRequirements is the default bonding/MITM requirement.
	AuthenticationRequirements hci.AuthenticationRequirements `json:"authentication_requirements"`
}

// Default returns the configuration a freshly installed host uses: display
// capability with Yes/No confirmation and dedicated-bonding MITM protection,
// which selects Numeric Comparison User Confirm against a like-configured
// peer.
func Default() Config {
	return Config{
		IoCapability:               hci.DisplayYesNo,
		OobDataPresent:             hci.NotPresent,
		AuthenticationRequirements: hci.DedicatedBondingMitmProtection,
	}
}

// DefaultConfigDir returns the default configuration directory.
// Returns ~/.sspsim on Unix-like systems, %USERPROFILE%\.sspsim on Windows.
func DefaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, ".sspsim"), nil
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the configuration from the default config file.
// Returns Default() if the file doesn't exist.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration from the specified file path.
// Returns Default() if the file doesn't exist.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// Save writes the configuration to the default config file.
func (c *Config) Save() error {
	path, err := DefaultConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the configuration to the specified file path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Params converts the configured defaults into the parameter triple the
// pairing coordinator consumes.
func (c *Config) Params() (hci.IoCapability, hci.OobDataPresent, hci.AuthenticationRequirements) {
	return c.IoCapability, c.OobDataPresent, c.AuthenticationRequirements
}
