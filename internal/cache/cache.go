package cache

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/base-agents/base-agents/internal/constants"
	"github.com/base-agents/base-agents/internal/utils"
)

// GetCacheDir returns the cache directory for base-agents.
// BASE_AGENTS_CACHE_DIR overrides the default of <root>/.config/cache.
func GetCacheDir() (string, error) {
	if cacheDir := os.Getenv("BASE_AGENTS_CACHE_DIR"); cacheDir != "" {
		return utils.NormalizePath(cacheDir)
	}

	configDir, err := utils.GetConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine cache directory: %w", err)
	}
	return filepath.Join(configDir, "cache"), nil
}

// GetLocksDir returns the directory holding per-tool install lock files
func GetLocksDir() (string, error) {
	cacheDir, err := GetCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cacheDir, "locks"), nil
}

// GetLockPath returns the lock file guarding a tool's storage directory
func GetLockPath(toolName string) (string, error) {
	locksDir, err := GetLocksDir()
	if err != nil {
		return "", err
	}
	safeName := filepath.Base(filepath.Clean(toolName))
	return filepath.Join(locksDir, safeName+".lock"), nil
}

// GetLogFile returns the path of the rotating log file
func GetLogFile() (string, error) {
	cacheDir, err := GetCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cacheDir, constants.LogFile), nil
}

// EnsureCacheDirs creates all necessary cache directories
func EnsureCacheDirs() error {
	dirs := []func() (string, error){
		GetCacheDir,
		GetLocksDir,
	}

	for _, dirFunc := range dirs {
		dir, err := dirFunc()
		if err != nil {
			return err
		}
		if err := utils.EnsureDir(dir); err != nil {
			return fmt.Errorf("failed to create cache directory %s: %w", dir, err)
		}
	}

	return nil
}
