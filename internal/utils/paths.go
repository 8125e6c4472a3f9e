package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/base-agents/base-agents/internal/constants"
)

// ExpandTilde expands a tilde (~) at the beginning of a path to the user's home directory
func ExpandTilde(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	if path == "~" {
		return homeDir, nil
	}

	if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// ~user style paths are left alone
	return path, nil
}

// NormalizePath normalizes a file path, expanding tilde and cleaning it
func NormalizePath(path string) (string, error) {
	expanded, err := ExpandTilde(path)
	if err != nil {
		return "", err
	}
	return filepath.Clean(expanded), nil
}

// EnsureDir ensures that a directory exists, creating it if necessary
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// GetRootDir returns the base-agents root directory where tool bundles are stored.
// BASE_AGENTS_ROOT overrides the default of ~/.base-agents.
func GetRootDir() (string, error) {
	if root := os.Getenv("BASE_AGENTS_ROOT"); root != "" {
		return NormalizePath(root)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, constants.RootDirName), nil
}

// GetConfigDir returns the directory holding registry, state and config snapshots
func GetConfigDir() (string, error) {
	root, err := GetRootDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, constants.ConfigDirName), nil
}

// GetConfigFile returns the path to a named file inside the config directory
func GetConfigFile(name string) (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, name), nil
}

// GetSSOTDir returns the shared asset tree copied into projects.
// BASE_AGENTS_SSOT overrides the default of ~/Desktop/base-agents.
func GetSSOTDir() (string, error) {
	if dir := os.Getenv("BASE_AGENTS_SSOT"); dir != "" {
		return NormalizePath(dir)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, "Desktop", "base-agents"), nil
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDirectory checks if a path is a directory
func IsDirectory(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
