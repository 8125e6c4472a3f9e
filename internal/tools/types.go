package tools

import (
	"encoding/json"
	"errors"
)

// ToolID is the canonical name of a supported AI coding tool
type ToolID string

const (
	Claude   ToolID = "claude"
	Cursor   ToolID = "cursor"
	Gemini   ToolID = "gemini"
	OpenCode ToolID = "opencode"
	Agents   ToolID = "agents"
)

// ErrUnknownTool is returned when a name matches neither a tool id nor an alias
var ErrUnknownTool = errors.New("unknown tool")

func (id ToolID) String() string {
	return string(id)
}

// ToolConfig describes where a tool keeps its configuration and how it is laid out
type ToolConfig struct {
	Name        string    `json:"name"`
	DefaultRepo string    `json:"defaultRepo"`
	ConfigPath  string    `json:"configPath"`
	Structure   Structure `json:"structure"`
	FileTypes   []string  `json:"fileTypes"`
	Supported   bool      `json:"supported"`
}

// Category is one named area of a tool's config tree.
// An empty Path means the category lives at the config root itself.
type Category struct {
	Name string
	Path string
}

// Structure maps category names to sub-paths, keeping declaration order
type Structure []Category

// Get returns the sub-path for a category
func (s Structure) Get(name string) (string, bool) {
	for _, c := range s {
		if c.Name == name {
			return c.Path, true
		}
	}
	return "", false
}

// Names returns the category names in declaration order
func (s Structure) Names() []string {
	names := make([]string, 0, len(s))
	for _, c := range s {
		names = append(names, c.Name)
	}
	return names
}

// Set replaces the sub-path of an existing category or appends a new one
func (s Structure) Set(name, path string) Structure {
	for i, c := range s {
		if c.Name == name {
			s[i].Path = path
			return s
		}
	}
	return append(s, Category{Name: name, Path: path})
}

// MarshalJSON encodes the structure as a JSON object in declaration order
func (s Structure) MarshalJSON() ([]byte, error) {
	keys := s.Names()
	return encodeObject(keys, func(i int) any { return s[i].Path })
}

// UnmarshalJSON decodes a JSON object, keeping key order
func (s *Structure) UnmarshalJSON(data []byte) error {
	var out Structure
	err := decodeObject(data, func(key string, raw json.RawMessage) error {
		var path string
		if err := json.Unmarshal(raw, &path); err != nil {
			return err
		}
		out = out.Set(key, path)
		return nil
	})
	if err != nil {
		return err
	}
	*s = out
	return nil
}
