package state

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/base-agents/base-agents/internal/constants"
	"github.com/base-agents/base-agents/internal/utils"
)

// Installation records where a tool bundle came from
type Installation struct {
	Repo       string    `json:"repo"`
	Branch     string    `json:"branch"`
	LastUpdate time.Time `json:"lastUpdate"`
	Commit     string    `json:"commit,omitempty"`
	Version    string    `json:"version"`
}

// Templates lists generated template names by kind
type Templates struct {
	Skills []string `json:"skills"`
	Agents []string `json:"agents"`
	MCP    []string `json:"mcp"`
}

// File is the on-disk state.json document
type File struct {
	Installed map[string]Installation `json:"installed"`
	Templates Templates               `json:"templates"`
}

func newFile() *File {
	return &File{
		Installed: make(map[string]Installation),
		Templates: Templates{Skills: []string{}, Agents: []string{}, MCP: []string{}},
	}
}

// Store manages <root>/.config/state.json
type Store struct {
	path string
}

// NewStore creates a store at the default location for the current root
func NewStore() (*Store, error) {
	path, err := utils.GetConfigFile(constants.StateFile)
	if err != nil {
		return nil, err
	}
	return &Store{path: path}, nil
}

// NewStoreWithPath creates a store at a custom path
func NewStoreWithPath(path string) *Store {
	return &Store{path: path}
}

// Path returns the state file location
func (s *Store) Path() string {
	return s.path
}

// Load reads the state file, returning empty state if it does not exist
func (s *Store) Load() (*File, error) {
	f := newFile()
	if err := utils.ReadJSON(s.path, f); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return newFile(), nil
		}
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	if f.Installed == nil {
		f.Installed = make(map[string]Installation)
	}
	for _, list := range []*[]string{&f.Templates.Skills, &f.Templates.Agents, &f.Templates.MCP} {
		if *list == nil {
			*list = []string{}
		}
	}
	return f, nil
}

// Save writes the state file
func (s *Store) Save(f *File) error {
	if err := utils.WriteJSON(s.path, f); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}

// RecordInstall stores or replaces the entry for one tool, keeping every other tool's entry
func (s *Store) RecordInstall(tool string, info Installation) error {
	f, err := s.Load()
	if err != nil {
		return err
	}

	if info.LastUpdate.IsZero() {
		info.LastUpdate = time.Now().UTC()
	}
	f.Installed[tool] = info

	return s.Save(f)
}

// Remove forgets a tool's installation
func (s *Store) Remove(tool string) error {
	f, err := s.Load()
	if err != nil {
		return err
	}

	if _, exists := f.Installed[tool]; !exists {
		return fmt.Errorf("tool %q not installed", tool)
	}

	delete(f.Installed, tool)
	return s.Save(f)
}

// Get returns the installation of a tool, or nil if it is not installed
func (s *Store) Get(tool string) (*Installation, error) {
	f, err := s.Load()
	if err != nil {
		return nil, err
	}

	info, exists := f.Installed[tool]
	if !exists {
		return nil, nil
	}
	return &info, nil
}

// RecordTemplate appends a generated template name to its kind's list.
// Kinds without a list (commands) are ignored.
func (s *Store) RecordTemplate(kind, name string) error {
	f, err := s.Load()
	if err != nil {
		return err
	}

	var list *[]string
	switch kind {
	case "skill":
		list = &f.Templates.Skills
	case "agent":
		list = &f.Templates.Agents
	case "mcp":
		list = &f.Templates.MCP
	default:
		return nil
	}

	if slices.Contains(*list, name) {
		return nil
	}
	*list = append(*list, name)

	return s.Save(f)
}

// Dir returns the directory containing the state file
func (s *Store) Dir() string {
	return filepath.Dir(s.path)
}
