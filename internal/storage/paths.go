// Package storage provides persistent storage for saved games and result statistics.
package storage

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/hailam/draughts/internal/log2"
)

const appName = "draughts"

// GetDataDir returns the platform-specific data directory for the application.
// - macOS: ~/Library/Application Support/draughts/
// - Linux: ~/.local/share/draughts/
// - Windows: %APPDATA%/draughts/
func GetDataDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "darwin":
		// macOS: ~/Library/Application Support/
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		baseDir = filepath.Join(homeDir, "Library", "Application Support")

	case "windows":
		// Windows: %APPDATA%
		baseDir = os.Getenv("APPDATA")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, "AppData", "Roaming")
		}

	default:
		// Linux and other Unix-like: ~/.local/share/
		// Check XDG_DATA_HOME first
		baseDir = os.Getenv("XDG_DATA_HOME")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, ".local", "share")
		}
	}

	dataDir := filepath.Join(baseDir, appName)

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	return dataDir, nil
}

// GetDatabaseDir returns the directory for the BadgerDB database under
// dataDir, or under the platform data directory when dataDir is empty.
func GetDatabaseDir(dataDir string) (string, error) {
	if dataDir == "" {
		var err error
		dataDir, err = GetDataDir()
		if err != nil {
			return "", err
		}
	}

	dbDir := filepath.Join(dataDir, "db")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return "", err
	}

	log2.Debugf("database directory: %s", dbDir)

	return dbDir, nil
}
