package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the persisted authentication state, written to
// ~/.lagoon/auth.json after a successful login.
type Config struct {
	APIURL string `json:"api_url"`
	Token  string `json:"token"`
}

func configPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(homeDir, ".lagoon", "auth.json"), nil
}

// SaveConfig writes the auth config to disk, creating ~/.lagoon if needed.
// The file is user-readable only since it carries the token.
func SaveConfig(cfg Config) error {
	path, err := configPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling auth config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing auth config: %w", err)
	}
	return nil
}

// LoadConfig reads the saved auth config. A missing file is not an error;
// it returns a zero Config.
func LoadConfig() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading auth config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing auth config: %w", err)
	}
	return cfg, nil
}

// RemoveConfig deletes the saved auth config. Removing a config that does
// not exist is not an error.
func RemoveConfig() error {
	path, err := configPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing auth config: %w", err)
	}
	return nil
}
