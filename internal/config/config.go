// Package config loads and saves the CLI's persisted preferences, the way
// the teacher's AppConfig does: a small JSON file in the user's config
// directory, not a project file, and never where a similarity run's hashes
// would be cached across invocations.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// AppConfig is the full set of CLI-exposed knobs a user might want to
// persist between invocations.
type AppConfig struct {
	Directory          string `json:"directory"`
	SecondDirectory    string `json:"second_directory,omitempty"`
	Level              int    `json:"level"`
	Threshold          int    `json:"threshold,omitempty"`
	Recursive          bool   `json:"recursive"`
	FastSameFolderOnly bool   `json:"fast_same_folder_only"`
	TimeWindowSeconds  int    `json:"time_window_seconds,omitempty"`
	ExifWindowSeconds  int    `json:"exif_window_seconds,omitempty"`
	NumThreads         int    `json:"num_threads,omitempty"`
	KeepPolicy         string `json:"keep_policy"`
	WebPort            int    `json:"web_port"`
}

const configFileName = "imgsimfind.json"

// GetConfigPath returns the path imgsimfind reads/writes its config from.
func GetConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Default returns the configuration a fresh install starts with.
func Default() AppConfig {
	return AppConfig{
		Level:      2,
		KeepPolicy: "newer",
		WebPort:    8787,
	}
}

// Load reads the persisted config, falling back to Default() if none exists
// yet.
func Load() (AppConfig, error) {
	path, err := GetConfigPath()
	if err != nil {
		return AppConfig{}, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return AppConfig{}, err
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Save persists cfg, creating the config directory if needed.
func Save(cfg AppConfig) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
