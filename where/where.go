// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/aizenverse/aizen/constant"
	"github.com/aizenverse/aizen/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "AIZEN_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the absolute path to the primary application configuration directory.
// The path can be overridden with the AIZEN_CONFIG_PATH environment variable.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.App))
}

// Cache resolves the absolute path to the application's persistent cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.App))
}

// Responses resolves the directory holding cached API responses.
func Responses() string {
	return ensureDir(filepath.Join(Cache(), "responses"))
}

// Logs resolves the absolute path to the directory used for application logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// History resolves the watch history file.
func History() string {
	return filepath.Join(Config(), "history.json")
}

// Continue resolves the continue-watching file.
func Continue() string {
	return filepath.Join(Config(), "continue_watching.json")
}

// Favorites resolves the favorites set file.
func Favorites() string {
	return filepath.Join(Config(), "favorites.json")
}

// Watchlist resolves the watchlist set file.
func Watchlist() string {
	return filepath.Join(Config(), "watchlist.json")
}

// Preferences resolves the file holding UI preferences such as the theme.
func Preferences() string {
	return filepath.Join(Config(), "preferences.json")
}

// Queries resolves the absolute path to the search query suggestion registry.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}

// Temp resolves a volatile directory for transient application artifacts.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.App))
}
