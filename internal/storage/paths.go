// Package storage persists user preferences and lifetime play statistics.
// It never stores a game in progress.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const appName = "chessview"

// GetDataDir returns the XDG data directory for the application, creating it
// if needed (e.g. ~/.local/share/chessview on Linux).
func GetDataDir() (string, error) {
	dataDir := filepath.Join(xdg.DataHome, appName)
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}
	return dataDir, nil
}

// GetDatabaseDir returns the directory for the BadgerDB files.
func GetDatabaseDir() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}

	dbDir := filepath.Join(dataDir, "db")
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return "", fmt.Errorf("create database dir: %w", err)
	}
	return dbDir, nil
}
