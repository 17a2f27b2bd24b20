// Package config loads runtime settings from the environment and an optional .env file.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvDataDir  = "DRAUGHTS_DATA_DIR"
	EnvLogLevel = "DRAUGHTS_LOG_LEVEL"
	EnvAutosave = "DRAUGHTS_AUTOSAVE"
)

// Config holds settings shared by the CLI and the desktop board.
type Config struct {
	// DataDir overrides the platform data directory. Empty means default.
	DataDir  string
	LogLevel string
	// Autosave stores the game after every accepted move.
	Autosave bool
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Autosave: true,
	}
}

// Load reads ./.env if present, then the process environment.
// Process environment values win over the file.
func Load() (*Config, error) {
	return LoadFiles(".env")
}

// LoadFiles is Load with explicit dotenv files. Missing files are ignored.
func LoadFiles(files ...string) (*Config, error) {
	fileEnv := map[string]string{}
	for _, f := range files {
		vals, err := godotenv.Read(f)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		for k, v := range vals {
			fileEnv[k] = v
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileEnv[key]
		return v, ok
	}

	cfg := Default()
	if v, ok := lookup(EnvDataDir); ok {
		cfg.DataDir = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup(EnvAutosave); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, &InvalidValueError{Key: EnvAutosave, Value: v, Err: err}
		}
		cfg.Autosave = b
	}

	return cfg, nil
}

// InvalidValueError reports a setting that could not be parsed.
type InvalidValueError struct {
	Key   string
	Value string
	Err   error
}

func (e *InvalidValueError) Error() string {
	return "config: invalid " + e.Key + "=" + strconv.Quote(e.Value) + ": " + e.Err.Error()
}

func (e *InvalidValueError) Unwrap() error {
	return e.Err
}
