package tools

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/base-agents/base-agents/internal/constants"
	"github.com/base-agents/base-agents/internal/logger"
	"github.com/base-agents/base-agents/internal/utils"
)

// Registry holds the known tools, their aliases and the alias lookup index
type Registry struct {
	mu   sync.RWMutex
	root string

	order   []ToolID
	configs map[ToolID]ToolConfig

	aliasOrder []ToolID
	aliases    map[ToolID][]string

	// alias -> tool, first declared wins
	index map[string]ToolID
}

// NewRegistry creates a registry seeded with the default tools.
// root is the base-agents root directory; the snapshot lives at <root>/.config/registry.json.
func NewRegistry(root string) *Registry {
	order, configs := DefaultTools()
	aliasOrder, aliases := DefaultAliases()

	r := &Registry{
		root:       root,
		order:      order,
		configs:    configs,
		aliasOrder: aliasOrder,
		aliases:    aliases,
	}
	r.rebuildIndex()
	return r
}

// Load creates a registry for the current root directory and restores any persisted snapshot
func Load() (*Registry, error) {
	root, err := utils.GetRootDir()
	if err != nil {
		return nil, err
	}
	r := NewRegistry(root)
	if _, err := r.Restore(); err != nil {
		return nil, err
	}
	return r, nil
}

// Root returns the root directory the registry was created for
func (r *Registry) Root() string {
	return r.root
}

// SnapshotPath returns the location of the persisted registry
func (r *Registry) SnapshotPath() string {
	return filepath.Join(r.root, constants.ConfigDirName, constants.RegistryFile)
}

func (r *Registry) rebuildIndex() {
	r.index = make(map[string]ToolID)
	for _, id := range r.aliasOrder {
		for _, alias := range r.aliases[id] {
			if _, taken := r.index[alias]; taken {
				continue
			}
			r.index[alias] = id
		}
	}
}

// Get returns the config for a tool id
func (r *Registry) Get(id ToolID) (ToolConfig, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cfg, ok := r.configs[id]
	return cfg, ok
}

// Aliases returns the aliases of a tool, empty if it has none
func (r *Registry) Aliases(id ToolID) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := r.aliases[id]
	if len(list) == 0 {
		return []string{}
	}
	return slices.Clone(list)
}

// IsSupported reports whether a tool exists and is marked supported
func (r *Registry) IsSupported(id ToolID) bool {
	cfg, ok := r.Get(id)
	return ok && cfg.Supported
}

// IDs returns every tool id in declaration order
func (r *Registry) IDs() []ToolID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order)
}

// SupportedTools returns the supported tool ids in declaration order
func (r *Registry) SupportedTools() []ToolID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var supported []ToolID
	for _, id := range r.order {
		if r.configs[id].Supported {
			supported = append(supported, id)
		}
	}
	return supported
}

// Resolve maps a tool id or alias to its canonical id
func (r *Registry) Resolve(name string) (ToolID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.configs[ToolID(name)]; ok {
		return ToolID(name), true
	}
	id, ok := r.index[name]
	return id, ok
}

// MustResolve resolves a name or returns an error wrapping ErrUnknownTool
func (r *Registry) MustResolve(name string) (ToolID, error) {
	id, ok := r.Resolve(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	return id, nil
}

// ResolveAll resolves every name, failing on the first unknown one
func (r *Registry) ResolveAll(names []string) ([]ToolID, error) {
	ids := make([]ToolID, 0, len(names))
	for _, name := range names {
		id, err := r.MustResolve(name)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// UpdateRepositoryURL changes a tool's default repository. Returns false for unknown tools.
func (r *Registry) UpdateRepositoryURL(id ToolID, url string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	cfg, ok := r.configs[id]
	if !ok {
		return false
	}
	cfg.DefaultRepo = url
	r.configs[id] = cfg
	return true
}

// AddTool inserts or overwrites a tool definition
func (r *Registry) AddTool(id ToolID, cfg ToolConfig) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.configs[id]; !exists {
		r.order = append(r.order, id)
	}
	r.configs[id] = cfg
}

// SetAliases replaces the aliases of a tool and rebuilds the lookup index
func (r *Registry) SetAliases(id ToolID, aliases []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.aliases[id]; !exists {
		r.aliasOrder = append(r.aliasOrder, id)
	}
	r.aliases[id] = slices.Clone(aliases)
	r.rebuildIndex()
}

// StorageDir returns where a tool's bundle is cloned: <root>/<id>
func (r *Registry) StorageDir(id ToolID) string {
	return filepath.Join(r.root, string(id))
}

// ConfigDir returns the tool's expanded config root
func (r *Registry) ConfigDir(id ToolID) (string, error) {
	cfg, ok := r.Get(id)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownTool, id)
	}
	return utils.NormalizePath(cfg.ConfigPath)
}

// Snapshot returns a copy of the registry contents
func (r *Registry) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap := Snapshot{
		ToolOrder:  slices.Clone(r.order),
		Tools:      make(map[ToolID]ToolConfig, len(r.configs)),
		AliasOrder: slices.Clone(r.aliasOrder),
		Aliases:    make(map[ToolID][]string, len(r.aliases)),
	}
	for id, cfg := range r.configs {
		snap.Tools[id] = cfg
	}
	for id, list := range r.aliases {
		snap.Aliases[id] = slices.Clone(list)
	}
	return snap
}

// Persist writes the full registry snapshot, overwriting any previous one
func (r *Registry) Persist() error {
	path := r.SnapshotPath()
	snap := r.Snapshot()
	if err := utils.WriteJSON(path, snap); err != nil {
		return fmt.Errorf("failed to persist registry: %w", err)
	}
	logger.Get().Debug("registry persisted", "path", path, "tools", len(snap.ToolOrder))
	return nil
}

// Restore loads the persisted snapshot and replaces the in-memory registry with it.
// A missing snapshot returns nil without error. A corrupt snapshot, or one
// listing no tools, is logged and ignored, leaving the registry as it was.
func (r *Registry) Restore() (*Snapshot, error) {
	log := logger.Get()
	path := r.SnapshotPath()

	var snap Snapshot
	if err := utils.ReadJSON(path, &snap); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debug("no registry snapshot found", "path", path)
			return nil, nil
		}
		log.Warn("ignoring unreadable registry snapshot", "path", path, "error", err)
		return nil, nil
	}
	if len(snap.ToolOrder) == 0 {
		log.Warn("ignoring registry snapshot without tools", "path", path)
		return nil, nil
	}

	r.mu.Lock()
	r.order = snap.ToolOrder
	r.configs = snap.Tools
	r.aliasOrder = snap.AliasOrder
	r.aliases = snap.Aliases
	r.rebuildIndex()
	r.mu.Unlock()

	log.Info("registry restored", "path", path, "tools", len(snap.ToolOrder))
	return &snap, nil
}
