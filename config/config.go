package config

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"aurora/models"
)

const configDirPath = "~/.config/aurora"

// DefaultLandingConfig is the template written on first run and the
// fallback whenever the config file cannot be read. The countdown target
// is far enough out that a fresh install always shows a running timer.
func DefaultLandingConfig() models.LandingConfig {
	return models.LandingConfig{
		CountdownTarget:   "2026-12-31T00:00:00Z",
		SubscribeEndpoint: "",
		OrbCount:          6,
		ParallaxDepths:    []float64{0.02, 0.05, 0.1},
		NavLinks: []models.NavLink{
			{ID: "home", Title: "Home"},
			{ID: "features", Title: "Features"},
			{ID: "early-access", Title: "Early Access"},
		},
	}
}

// LoadLandingConfig reads the landing page configuration, creating the
// config directory and a default landing.json on first run. Any failure
// falls back to the built-in defaults so the page always comes up.
func LoadLandingConfig() models.LandingConfig {
	configLocation, err := verifyConfigFiles()
	if err != nil {
		log.Printf("error verifying config files: %v", err)
		return DefaultLandingConfig()
	}

	file, err := os.Open(configLocation)
	if err != nil {
		log.Printf("error loading landing config: %v", err)
		return DefaultLandingConfig()
	}
	defer file.Close()

	cfg, err := DecodeLandingConfig(file)
	if err != nil {
		log.Printf("error decoding landing config: %v", err)
		return DefaultLandingConfig()
	}

	return cfg
}

// DecodeLandingConfig parses a landing config from a reader and fills in
// defaults for anything the file leaves out, so a partial config never
// produces an empty page.
func DecodeLandingConfig(r io.Reader) (models.LandingConfig, error) {
	byteValues, err := io.ReadAll(r)
	if err != nil {
		return models.LandingConfig{}, fmt.Errorf("reading landing config: %w", err)
	}

	cfg := DefaultLandingConfig()
	if err := json.Unmarshal(byteValues, &cfg); err != nil {
		return models.LandingConfig{}, fmt.Errorf("unmarshalling landing config: %w", err)
	}

	if cfg.OrbCount < 0 {
		cfg.OrbCount = 0
	}
	if len(cfg.ParallaxDepths) == 0 {
		cfg.ParallaxDepths = DefaultLandingConfig().ParallaxDepths
	}

	return cfg, nil
}

// SaveLandingConfig writes the config to ~/.config/aurora/landing.json.
func SaveLandingConfig(cfg models.LandingConfig) error {
	configDir, err := verifyConfigDirectory()
	if err != nil {
		return fmt.Errorf("error verifying config directory: %w", err)
	}

	configFile := filepath.Join(configDir, "landing.json")

	jsonData, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configFile, jsonData, 0644)
}

// ConfigDir returns the expanded config directory path, creating it if
// needed. The log window uses this to find the log file.
func ConfigDir() (string, error) {
	return verifyConfigDirectory()
}

// check config directory exists or create it
func verifyConfigDirectory() (string, error) {
	configDirectory, expandError := ExpandPath(configDirPath)
	if expandError != nil {
		return "", fmt.Errorf("cannot verify local configuration directory: %w", expandError)
	}

	_, err := os.Stat(configDirectory)

	if os.IsNotExist(err) {
		if err := os.MkdirAll(configDirectory, 0755); err != nil {
			return "", fmt.Errorf("error creating directory %s: %w", configDirectory, err)
		}
		log.Printf("Directory %s created successfully.\n", configDirectory)
	} else if err != nil {
		return "", fmt.Errorf("error checking directory %s: %w", configDirectory, err)
	}

	return configDirectory, nil
}

// check config file exists or create the default template
func verifyConfigFiles() (string, error) {
	configDir, err := verifyConfigDirectory()
	if err != nil {
		return "", err
	}

	configFile := filepath.Join(configDir, "landing.json")

	_, err = os.Stat(configFile)

	if os.IsNotExist(err) {
		log.Printf("Landing config not found, creating template at '%s'\n", configFile)

		if saveErr := SaveLandingConfig(DefaultLandingConfig()); saveErr != nil {
			return "", fmt.Errorf("error creating landing config: %w", saveErr)
		}
		log.Printf("File '%s' created successfully.\n", configFile)

	} else if err != nil {
		return "", fmt.Errorf("error checking file existence: %w", err)
	}

	return configFile, nil
}

// ExpandPath expands ~ to the user's home directory, or returns the path as-is
func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(homeDir, path[2:]), nil
	}
	return path, nil
}
