// Package config loads viewer settings from an optional .env file and SSV_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"ssv/internal/datafile"
	"ssv/internal/log"
	"ssv/internal/sector"
)

// Prefix is prepended to every environment variable name.
const Prefix = "SSV"

// Default values. The struct tags below must agree with these.
const (
	DefaultEncoding  = "ascii"
	DefaultLogLevel  = "warn"
	DefaultDBPath    = "ssv.db"
	DefaultPrintPath = "ssv_map.png"
)

// Config holds all environment-based settings.
type Config struct {
	// MaxWorlds caps the world list.
	// Env: SSV_MAX_WORLDS (default: 80)
	MaxWorlds int `envconfig:"MAX_WORLDS" default:"80"`

	// MaxRoutes caps the trade route list.
	// Env: SSV_MAX_ROUTES (default: 80)
	MaxRoutes int `envconfig:"MAX_ROUTES" default:"80"`

	// MaxBorders caps each border list.
	// Env: SSV_MAX_BORDERS (default: 160)
	MaxBorders int `envconfig:"MAX_BORDERS" default:"160"`

	// Encoding is the character set of data files: ascii, latin1 or cp437.
	// Env: SSV_ENCODING (default: ascii)
	Encoding string `envconfig:"ENCODING" default:"ascii"`

	// LogFile receives log records instead of stderr when set.
	// Env: SSV_LOG_FILE
	LogFile string `envconfig:"LOG_FILE"`

	// LogLevel is one of debug, info, warn, error.
	// Env: SSV_LOG_LEVEL (default: warn)
	LogLevel string `envconfig:"LOG_LEVEL" default:"warn"`

	// DBPath is the snapshot database used by export.
	// Env: SSV_DB_PATH (default: ssv.db)
	DBPath string `envconfig:"DB_PATH" default:"ssv.db"`

	// PrintPath is where print-only mode and PRINT MAP write the image.
	// Env: SSV_PRINT_PATH (default: ssv_map.png)
	PrintPath string `envconfig:"PRINT_PATH" default:"ssv_map.png"`
}

// ErrInvalidConfig marks a setting that failed validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Load reads envPath (".env" when empty) if it exists, then the environment.
// Variables already set in the environment win over the file.
func Load(envPath string) (Config, error) {
	if err := LoadDotEnv(envPath); err != nil {
		return Config{}, fmt.Errorf("failed to load env file: %w", err)
	}
	return FromEnv()
}

// LoadDotEnv loads a .env file. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

// FromEnv reads SSV_* variables and validates the result.
func FromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks limits, encoding and log level.
func (c Config) Validate() error {
	for name, v := range map[string]int{"max worlds": c.MaxWorlds, "max routes": c.MaxRoutes, "max borders": c.MaxBorders} {
		if v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, name, v)
		}
	}
	if _, err := datafile.Decoder(c.Encoding); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Limits returns the list capacities for a new sector.
func (c Config) Limits() sector.Limits {
	return sector.Limits{Worlds: c.MaxWorlds, Routes: c.MaxRoutes, Borders: c.MaxBorders}
}

// LoadOptions returns the data file options implied by the settings.
func (c Config) LoadOptions() datafile.Options {
	return datafile.Options{Limits: c.Limits(), Encoding: c.Encoding}
}

// ApplyLogging sends logs to LogFile, if set, at LogLevel.
func (c Config) ApplyLogging() error {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	if c.LogFile == "" {
		return nil
	}
	return log.SetFileOutput(c.LogFile)
}
