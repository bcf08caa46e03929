package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ProjectConfig represents the casement.toml configuration file
type ProjectConfig struct {
	App   AppConfig   `toml:"app"`
	Build BuildConfig `toml:"build"`
}

type AppConfig struct {
	Name       string `toml:"name"`
	Identifier string `toml:"identifier"`
	Version    string `toml:"version"`
}

type BuildConfig struct {
	// Output directory for builds
	OutputDir string `toml:"output_dir"`
	// SDL2 release to fetch when no system library is used
	SDLVersion string `toml:"sdl_version"`
	// Explicit library path baked into the bundle environment; empty
	// means the cached fetch-sdl copy
	LibraryPath string `toml:"library_path"`
	// Entry point for the application (main.go location)
	EntryPoint string `toml:"entry_point"`
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		App: AppConfig{
			Name:       "MyApp",
			Identifier: "com.example.myapp",
			Version:    "1.0.0",
		},
		Build: BuildConfig{
			OutputDir:  "build",
			SDLVersion: defaultSDLVersion,
			EntryPoint: ".",
		},
	}
}

// LoadConfig loads the project configuration from casement.toml.
// If the file doesn't exist, returns default config.
func LoadConfig() (ProjectConfig, error) {
	config := DefaultConfig()

	configPath := "casement.toml"
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return config, fmt.Errorf("failed to read %s: %w", configPath, err)
	}

	if err := toml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse %s: %w", configPath, err)
	}

	if config.Build.SDLVersion == "" {
		config.Build.SDLVersion = defaultSDLVersion
	}
	if config.Build.OutputDir == "" {
		config.Build.OutputDir = "build"
	}

	return config, nil
}

// SaveConfig saves the configuration to casement.toml
func SaveConfig(config ProjectConfig) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile("casement.toml", data, 0644); err != nil {
		return fmt.Errorf("failed to write casement.toml: %w", err)
	}

	return nil
}

// FindProjectRoot finds the project root by looking for casement.toml or go.mod
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "casement.toml")); err == nil {
			return dir, nil
		}
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a casement project (no casement.toml or go.mod found)")
		}
		dir = parent
	}
}
