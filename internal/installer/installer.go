// Package installer fetches a tool's configuration bundle from git and puts it in place.
package installer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/gofrs/flock"

	"github.com/base-agents/base-agents/internal/cache"
	"github.com/base-agents/base-agents/internal/constants"
	"github.com/base-agents/base-agents/internal/git"
	"github.com/base-agents/base-agents/internal/logger"
	"github.com/base-agents/base-agents/internal/state"
	"github.com/base-agents/base-agents/internal/tools"
	"github.com/base-agents/base-agents/internal/utils"
	"github.com/base-agents/base-agents/internal/validation"
)

// DefaultVersion is recorded when the repository publishes no semver tags
const DefaultVersion = "1.0.0"

const lockTimeout = 30 * time.Second

// ErrInstallFailed wraps clone or update failures reported by git
var ErrInstallFailed = errors.New("install failed")

// Cloner is the git surface the installer needs
type Cloner interface {
	CloneOrUpdate(ctx context.Context, repoURL, destPath, branch string) git.Result
	RemoteTags(ctx context.Context, repoURL string) ([]string, error)
}

// Options selects what to install
type Options struct {
	Repo   string
	Branch string
	Force  bool
}

// Outcome describes a finished install
type Outcome struct {
	Tool        tools.ToolID
	Config      tools.ToolConfig
	Repo        string
	Branch      string
	StorageDir  string
	ConfigDir   string
	Git         git.Result
	Version     string
	Unsupported bool

	// CopyErr is set when the bundle could not be copied into the tool's config directory.
	// The install itself still succeeded.
	CopyErr error
}

// Installer clones tool bundles into the root directory and records them in state
type Installer struct {
	registry *tools.Registry
	cloner   Cloner
	store    *state.Store
	log      *slog.Logger
}

// New creates an installer
func New(registry *tools.Registry, cloner Cloner, store *state.Store) *Installer {
	return &Installer{
		registry: registry,
		cloner:   cloner,
		store:    store,
		log:      logger.Get(),
	}
}

// Install resolves name, clones or updates its repository, copies it into the
// tool's config directory and records the installation.
func (i *Installer) Install(ctx context.Context, name string, opts Options) (*Outcome, error) {
	id, err := i.registry.MustResolve(name)
	if err != nil {
		return nil, err
	}
	cfg, ok := i.registry.Get(id)
	if !ok {
		return nil, fmt.Errorf("tool configuration not found: %s", name)
	}

	out := &Outcome{
		Tool:        id,
		Config:      cfg,
		Repo:        opts.Repo,
		Branch:      opts.Branch,
		StorageDir:  i.registry.StorageDir(id),
		Unsupported: !cfg.Supported,
	}
	if out.Repo == "" {
		out.Repo = cfg.DefaultRepo
	}
	if out.Branch == "" {
		out.Branch = "main"
	}

	if err := validation.GitURL(out.Repo); err != nil {
		return nil, err
	}
	if err := validation.Branch(out.Branch); err != nil {
		return nil, err
	}

	out.ConfigDir, err = i.registry.ConfigDir(id)
	if err != nil {
		return nil, err
	}

	unlock, err := i.lock(ctx, id)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if opts.Force && utils.FileExists(out.StorageDir) {
		i.log.Info("removing existing installation", "tool", id, "dir", out.StorageDir)
		if err := os.RemoveAll(out.StorageDir); err != nil {
			return nil, fmt.Errorf("failed to remove %s: %w", out.StorageDir, err)
		}
	}

	out.Git = i.cloner.CloneOrUpdate(ctx, out.Repo, out.StorageDir, out.Branch)
	if !out.Git.Success {
		return out, fmt.Errorf("%w: %s", ErrInstallFailed, out.Git.Message)
	}
	i.log.Info("repository ready", "tool", id, "message", out.Git.Message, "commit", out.Git.Commit)

	if err := utils.EnsureDir(out.ConfigDir); err != nil {
		out.CopyErr = err
	} else if err := utils.CopyDir(out.StorageDir, out.ConfigDir, constants.GitDir); err != nil {
		out.CopyErr = err
	}
	if out.CopyErr != nil {
		i.log.Warn("could not copy bundle to config directory", "tool", id, "dir", out.ConfigDir, "error", out.CopyErr)
	}

	out.Version = i.resolveVersion(ctx, out.Repo)

	err = i.store.RecordInstall(string(id), state.Installation{
		Repo:       out.Repo,
		Branch:     out.Branch,
		LastUpdate: time.Now().UTC(),
		Commit:     out.Git.Commit,
		Version:    out.Version,
	})
	if err != nil {
		return out, fmt.Errorf("failed to record installation: %w", err)
	}

	return out, nil
}

// lock takes the cross-process lock guarding a tool's storage directory
func (i *Installer) lock(ctx context.Context, id tools.ToolID) (func(), error) {
	if err := cache.EnsureCacheDirs(); err != nil {
		return nil, err
	}
	lockPath, err := cache.GetLockPath(string(id))
	if err != nil {
		return nil, fmt.Errorf("failed to get lock path: %w", err)
	}

	lockCtx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()

	fileLock := flock.New(lockPath)
	locked, err := fileLock.TryLockContext(lockCtx, 100*time.Millisecond)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire install lock for %s: %w", id, err)
	}
	if !locked {
		return nil, fmt.Errorf("could not acquire install lock for %s (timeout)", id)
	}

	return func() { _ = fileLock.Unlock() }, nil
}

// resolveVersion picks the highest semver tag published by the repository
func (i *Installer) resolveVersion(ctx context.Context, repo string) string {
	tags, err := i.cloner.RemoteTags(ctx, repo)
	if err != nil {
		i.log.Debug("could not list tags", "repo", repo, "error", err)
		return DefaultVersion
	}
	return LatestVersion(tags)
}

// LatestVersion returns the highest semver among tags, without a "v" prefix.
// Pre-releases only win when no stable version exists. Falls back to DefaultVersion.
func LatestVersion(tags []string) string {
	var best, bestPre *semver.Version
	for _, tag := range tags {
		v, err := semver.NewVersion(tag)
		if err != nil {
			continue
		}
		if v.Prerelease() != "" {
			if bestPre == nil || v.GreaterThan(bestPre) {
				bestPre = v
			}
			continue
		}
		if best == nil || v.GreaterThan(best) {
			best = v
		}
	}

	switch {
	case best != nil:
		return best.String()
	case bestPre != nil:
		return bestPre.String()
	default:
		return DefaultVersion
	}
}
