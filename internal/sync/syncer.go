package sync

import (
	"log/slog"
	"path/filepath"

	"github.com/base-agents/base-agents/internal/logger"
	"github.com/base-agents/base-agents/internal/tools"
	"github.com/base-agents/base-agents/internal/utils"
)

const (
	errToolNotFound   = "tool not found in registry"
	errNotSupported   = "one or both tools are not supported"
	errNoCommonLayout = "no common structure found between tools"
)

// ToolSource is the registry surface the syncer needs
type ToolSource interface {
	Get(id tools.ToolID) (tools.ToolConfig, bool)
	StorageDir(id tools.ToolID) string
}

// Syncer copies files from one tool's installed bundle into other tools' config directories
type Syncer struct {
	registry ToolSource
	fs       utils.FileSystem
	log      *slog.Logger
}

// Option configures a Syncer
type Option func(*Syncer)

// WithFileSystem replaces the filesystem the syncer reads and writes through
func WithFileSystem(fs utils.FileSystem) Option {
	return func(s *Syncer) {
		s.fs = fs
	}
}

// WithLogger sets the logger used for progress records
func WithLogger(log *slog.Logger) Option {
	return func(s *Syncer) {
		s.log = log
	}
}

// New creates a syncer backed by the given registry
func New(registry ToolSource, opts ...Option) *Syncer {
	s := &Syncer{
		registry: registry,
		fs:       utils.OSFileSystem{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.Get()
	}
	return s
}

// Sync merges source into each target in order, producing one result per target.
// A failure for one target never stops the remaining targets.
func (s *Syncer) Sync(source tools.ToolID, targets []tools.ToolID, strategy ConflictStrategy) []Result {
	if strategy == "" {
		strategy = StrategyAsk
	}

	results := make([]Result, 0, len(targets))
	for _, target := range targets {
		result := s.syncPair(source, target, strategy)
		s.log.Info("sync pair finished",
			"source", source,
			"target", target,
			"copied", result.FilesCopied,
			"skipped", result.Skipped,
			"errors", len(result.Errors))
		results = append(results, result)
	}
	return results
}

func (s *Syncer) syncPair(source, target tools.ToolID, strategy ConflictStrategy) Result {
	result := Result{Source: source, Target: target, Errors: []string{}}

	sourceTool, okSource := s.registry.Get(source)
	targetTool, okTarget := s.registry.Get(target)
	if !okSource || !okTarget {
		result.addError(errToolNotFound)
		return result
	}

	if !sourceTool.Supported || !targetTool.Supported {
		result.addError(errNotSupported)
		return result
	}

	sourceRoot := s.registry.StorageDir(source)
	if !s.fs.Exists(sourceRoot) {
		result.addError("source directory %s does not exist", sourceRoot)
		return result
	}

	targetRoot, err := utils.NormalizePath(targetTool.ConfigPath)
	if err != nil {
		result.addError("%s: %v", targetTool.ConfigPath, err)
		return result
	}

	categories := CommonCategories(sourceTool.Structure, targetTool.Structure)
	if len(categories) == 0 {
		result.addError(errNoCommonLayout)
		return result
	}

	s.log.Debug("syncing categories", "source", source, "target", target, "categories", categories, "strategy", strategy)

	for _, category := range categories {
		sourcePath, _ := sourceTool.Structure.Get(category)
		targetPath, _ := targetTool.Structure.Get(category)

		sourceDir := filepath.Join(sourceRoot, sourcePath)
		targetDir := filepath.Join(targetRoot, targetPath)

		if !s.fs.Exists(sourceDir) {
			s.log.Debug("category missing in source, skipping", "category", category, "dir", sourceDir)
			continue
		}

		s.mergeDir(sourceDir, targetDir, strategy, &result)
	}

	return result
}

func (s *Syncer) mergeDir(sourceDir, targetDir string, strategy ConflictStrategy, result *Result) {
	if err := s.fs.EnsureDir(targetDir); err != nil {
		result.addError("%s: %v", targetDir, err)
		return
	}

	entries, err := s.fs.ListEntries(sourceDir)
	if err != nil {
		result.addError("%s: %v", sourceDir, err)
		return
	}

	for _, name := range entries {
		sourcePath := filepath.Join(sourceDir, name)
		targetPath := filepath.Join(targetDir, name)

		isDir, err := s.fs.IsDir(sourcePath)
		if err != nil {
			result.addError("%s: %v", sourcePath, err)
			continue
		}

		if isDir {
			s.mergeDir(sourcePath, targetPath, strategy, result)
			continue
		}
		s.mergeFile(sourcePath, targetPath, strategy, result)
	}
}

func (s *Syncer) mergeFile(sourcePath, targetPath string, strategy ConflictStrategy, result *Result) {
	exists := s.fs.Exists(targetPath)
	if exists && !strategy.overwrites() {
		result.Skipped++
		return
	}

	if err := s.fs.CopyFile(sourcePath, targetPath, exists); err != nil {
		result.addError("%s: %v", sourcePath, err)
		return
	}
	result.FilesCopied++
}
