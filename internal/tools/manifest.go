package tools

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Manifest is a tool definition read from a TOML file:
//
//	id = "windsurf"
//	name = "Windsurf"
//	default_repo = "https://github.com/example/windsurf-configs"
//	config_path = "~/.windsurf"
//	file_types = [".md"]
//	supported = true
//	aliases = ["ws"]
//
//	[structure]
//	rules = "rules"
//	skills = "skills"
//
// Structure keys keep the order they appear in the file.
type Manifest struct {
	ID          string            `toml:"id"`
	Name        string            `toml:"name"`
	DefaultRepo string            `toml:"default_repo"`
	ConfigPath  string            `toml:"config_path"`
	FileTypes   []string          `toml:"file_types"`
	Supported   *bool             `toml:"supported"`
	Aliases     []string          `toml:"aliases"`
	Structure   map[string]string `toml:"structure"`

	structureOrder []string
}

// ParseManifest decodes a TOML tool manifest
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	md, err := toml.Decode(string(data), &m)
	if err != nil {
		return nil, fmt.Errorf("failed to parse tool manifest: %w", err)
	}

	for _, key := range md.Keys() {
		if len(key) == 2 && key[0] == "structure" {
			m.structureOrder = append(m.structureOrder, key[1])
		}
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown keys in tool manifest: %v", undecoded)
	}
	return &m, nil
}

// LoadManifest reads and parses a TOML tool manifest from disk
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tool manifest: %w", err)
	}
	return ParseManifest(data)
}

// ToolConfig converts the manifest into a registry entry.
// Tools are supported unless the manifest says otherwise.
func (m *Manifest) ToolConfig() ToolConfig {
	supported := true
	if m.Supported != nil {
		supported = *m.Supported
	}

	var structure Structure
	for _, name := range m.structureOrder {
		structure = structure.Set(name, m.Structure[name])
	}

	name := m.Name
	if name == "" {
		name = m.ID
	}

	return ToolConfig{
		Name:        name,
		DefaultRepo: m.DefaultRepo,
		ConfigPath:  m.ConfigPath,
		Structure:   structure,
		FileTypes:   m.FileTypes,
		Supported:   supported,
	}
}
