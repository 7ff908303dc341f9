// Package project persists application settings.
package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"

	"github.com/piwi3910/anchorage/internal/model"
)

// EnvAPIURL overrides the configured scenario service base URL.
const EnvAPIURL = "ANCHORAGE_API_URL"

// maxRecentScenarios bounds AppConfig.RecentScenario.
const maxRecentScenarios = 10

// DefaultConfigDir returns the default directory for application configuration.
// On all platforms this is ~/.anchorage/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".anchorage")
}

// DefaultConfigPath returns the default path for the application config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// SaveAppConfig persists an AppConfig to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveAppConfig(path string, config model.AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadAppConfig reads an AppConfig from the given path.
// If the file does not exist, it returns DefaultAppConfig with no error.
// Missing fields are filled with defaults and the environment override is
// applied last.
func LoadAppConfig(path string) (model.AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			config := model.DefaultAppConfig()
			ApplyEnv(&config)
			return config, nil
		}
		return model.AppConfig{}, err
	}
	config := model.AppConfig{Layout: model.DefaultLayoutConfig()}
	if err := json.Unmarshal(data, &config); err != nil {
		return model.AppConfig{}, err
	}
	config.Normalize()
	ApplyEnv(&config)
	return config, nil
}

// ApplyEnv applies environment overrides to config.
func ApplyEnv(config *model.AppConfig) {
	if u := os.Getenv(EnvAPIURL); u != "" {
		config.APIBaseURL = u
	}
}

// AddRecentScenario moves path to the front of the recent list, dropping
// duplicates and the oldest entries beyond the limit.
func AddRecentScenario(config *model.AppConfig, path string) {
	recent := slices.DeleteFunc(slices.Clone(config.RecentScenario), func(p string) bool {
		return p == path
	})
	recent = append([]string{path}, recent...)
	if len(recent) > maxRecentScenarios {
		recent = recent[:maxRecentScenarios]
	}
	config.RecentScenario = recent
}
