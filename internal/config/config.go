package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Waterways holds all configuration for the water region tool.
type Waterways struct {
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// Map file (see tilemap.File)
	MapPath string `yaml:"map_path"`

	// Save slot the region cache is restored from and saved to
	SaveSlot    string      `yaml:"save_slot"`
	Persistence Persistence `yaml:"persistence"`

	// Database
	Database DatabaseConfig `yaml:"database"`
}

// Persistence controls whether region flags go to the database.
type Persistence struct {
	Enabled bool `yaml:"enabled"`
	// SaveOnExit writes the flags back after the run.
	SaveOnExit bool `yaml:"save_on_exit"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultWaterways returns Waterways config with sensible defaults.
func DefaultWaterways() Waterways {
	return Waterways{
		LogLevel: "info",
		MapPath:  "maps/default.yaml",
		SaveSlot: "autosave",
		Persistence: Persistence{
			Enabled:    false,
			SaveOnExit: true,
		},
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "waterways",
			Password: "waterways",
			DBName:   "waterways",
			SSLMode:  "disable",
		},
	}
}

// LoadWaterways loads config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadWaterways(path string) (Waterways, error) {
	cfg := DefaultWaterways()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
