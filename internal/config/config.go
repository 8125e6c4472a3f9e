package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/base-agents/base-agents/internal/constants"
	"github.com/base-agents/base-agents/internal/utils"
)

// Config is the user configuration document, addressed with dotted keys
// such as "preferences.defaultBranch".
type Config struct {
	path string
	data map[string]any
}

// Defaults returns the configuration used when no config file exists
func Defaults() (map[string]any, error) {
	root, err := utils.GetRootDir()
	if err != nil {
		return nil, err
	}
	configDir, err := utils.GetConfigDir()
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"preferences": map[string]any{
			"defaultBranch":  "main",
			"autoUpdate":     true,
			"updateInterval": "7d",
		},
		"paths": map[string]any{
			"root":  root,
			"cache": filepath.Join(configDir, "cache"),
			"temp":  filepath.Join(os.TempDir(), "base-agents"),
		},
		"git": map[string]any{
			"depth":        float64(1),
			"singleBranch": true,
		},
		"sync": map[string]any{
			"enabled":          true,
			"conflictStrategy": "ask",
		},
	}, nil
}

// Load reads config.json from the config directory, falling back to defaults
func Load() (*Config, error) {
	configFile, err := utils.GetConfigFile(constants.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("failed to get config file path: %w", err)
	}
	return LoadFrom(configFile)
}

// LoadFrom reads the config at path, falling back to defaults when it does not exist
func LoadFrom(path string) (*Config, error) {
	var data map[string]any
	if err := utils.ReadJSON(path, &data); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		data = nil
	}

	if data == nil {
		defaults, err := Defaults()
		if err != nil {
			return nil, err
		}
		data = defaults
	}

	return &Config{path: path, data: data}, nil
}

// Path returns the config file location
func (c *Config) Path() string {
	return c.path
}

// Exists checks if the config file has been written
func (c *Config) Exists() bool {
	return utils.FileExists(c.path)
}

// Save writes the config file
func (c *Config) Save() error {
	if err := utils.WriteJSON(c.path, c.data); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// Reset deletes the config file so defaults apply again
func (c *Config) Reset() error {
	if err := os.Remove(c.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove config file: %w", err)
	}

	defaults, err := Defaults()
	if err != nil {
		return err
	}
	c.data = defaults
	return nil
}

// All returns the whole document
func (c *Config) All() map[string]any {
	return c.data
}

// Get walks a dotted key. An empty key returns the whole document.
func (c *Config) Get(key string) (any, bool) {
	if key == "" {
		return c.data, true
	}

	var current any = c.data
	for _, part := range strings.Split(key, ".") {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = obj[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// Set stores value at a dotted key, creating missing intermediate objects
func (c *Config) Set(key string, value any) error {
	if key == "" {
		return fmt.Errorf("config key is required")
	}

	parts := strings.Split(key, ".")
	current := c.data
	for i, part := range parts[:len(parts)-1] {
		next, exists := current[part]
		if !exists {
			child := make(map[string]any)
			current[part] = child
			current = child
			continue
		}
		child, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot set %s: %s is not an object", key, strings.Join(parts[:i+1], "."))
		}
		current = child
	}

	current[parts[len(parts)-1]] = value
	return nil
}

// SetRaw parses raw as JSON and stores it at key; values that are not JSON are stored as strings
func (c *Config) SetRaw(key, raw string) error {
	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		value = raw
	}
	return c.Set(key, value)
}

// GetString returns a string value or fallback
func (c *Config) GetString(key, fallback string) string {
	if v, ok := c.Get(key); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return fallback
}

// GetBool returns a bool value or fallback
func (c *Config) GetBool(key string, fallback bool) bool {
	if v, ok := c.Get(key); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return fallback
}

// GetInt returns a numeric value or fallback
func (c *Config) GetInt(key string, fallback int) int {
	if v, ok := c.Get(key); ok {
		switch n := v.(type) {
		case float64:
			return int(n)
		case int:
			return n
		}
	}
	return fallback
}

// DefaultBranch is the branch installs use when none is given
func (c *Config) DefaultBranch() string {
	return c.GetString("preferences.defaultBranch", "main")
}

// ConflictStrategy is the sync conflict strategy used when none is given
func (c *Config) ConflictStrategy() string {
	return c.GetString("sync.conflictStrategy", "ask")
}

// GitDepth is the clone depth for installs
func (c *Config) GitDepth() int {
	return c.GetInt("git.depth", 1)
}

// SingleBranch reports whether installs clone a single branch
func (c *Config) SingleBranch() bool {
	return c.GetBool("git.singleBranch", true)
}
