package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// Config holds the unified application configuration
type Config struct {
	DataDir string `json:"data_dir"`
}

// Settings represents the config file structure
type Settings struct {
	DataDir string `json:"data_dir,omitempty"`
}

// CLIFlags holds parsed CLI flags
type CLIFlags struct {
	DataDir string
}

// File names of the three persisted blobs inside the data directory.
const (
	EntriesFile = "entries.json"
	StampsFile  = "stamps.json"
	ThemeFile   = "theme.json"
)

// Load loads configuration with priority: CLI flags > env vars > config file > default
func Load(flags CLIFlags) (*Config, error) {
	cfg := &Config{}

	// Try loading config file first for base values
	configPath, err := getConfigPath()
	if err == nil {
		if fileConfig, err := loadConfigFile(configPath); err == nil {
			if fileConfig.DataDir != "" {
				cfg.DataDir = expandPath(fileConfig.DataDir)
			}
		}
	}

	// Priority 2: Environment variable overrides config file
	if envDir := os.Getenv("SUTANPU_DATA"); envDir != "" {
		cfg.DataDir = expandPath(envDir)
	}

	// Priority 1: CLI flags override everything
	if flags.DataDir != "" {
		cfg.DataDir = expandPath(flags.DataDir)
	}

	// Default directory if nothing configured
	if cfg.DataDir == "" {
		defaultDir, err := GetDefaultDataDir()
		if err != nil {
			return nil, err
		}
		cfg.DataDir = defaultDir
	}

	return cfg, nil
}

// GetDefaultDataDir returns the default data directory path
func GetDefaultDataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, "sutanpu"), nil
}

// getConfigPath returns the path to the configuration file
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "sutanpu", "config.json"), nil
}

// loadConfigFile loads configuration from the settings file
func loadConfigFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// EnsureDataDir ensures the data directory exists (creates it if missing)
func (c *Config) EnsureDataDir() error {
	return os.MkdirAll(c.DataDir, 0755)
}

// EntriesPath returns the path of the calendar entries blob
func (c *Config) EntriesPath() string {
	return filepath.Join(c.DataDir, EntriesFile)
}

// StampsPath returns the path of the stamp catalog blob
func (c *Config) StampsPath() string {
	return filepath.Join(c.DataDir, StampsFile)
}

// ThemePath returns the path of the theme preference blob
func (c *Config) ThemePath() string {
	return filepath.Join(c.DataDir, ThemeFile)
}

// EnsureConfigFile creates the config file with defaults if it doesn't exist
func EnsureConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	defaultDir, err := GetDefaultDataDir()
	if err != nil {
		return err
	}

	settings := Settings{
		DataDir: defaultDir,
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
