package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/base-agents/base-agents/internal/constants"
	"github.com/base-agents/base-agents/internal/logger"
	"github.com/base-agents/base-agents/internal/utils"
)

// globalSSHKeyPath stores the SSH key path for the current execution
var globalSSHKeyPath string

// SetSSHKeyPath sets the global SSH key path from either the flag or environment variable
// This should be called once at startup from the root command
func SetSSHKeyPath(cmd *cobra.Command) {
	if sshKey, err := cmd.Flags().GetString("ssh-key"); err == nil && sshKey != "" {
		globalSSHKeyPath = sshKey
		printSSHKeyInfo(cmd, "flag", sshKey)
		return
	}

	if envKey := os.Getenv("BASE_AGENTS_SSH_KEY"); envKey != "" {
		globalSSHKeyPath = envKey
		printSSHKeyInfo(cmd, "environment variable", envKey)
	}
}

// printSSHKeyInfo prints a safe indication that an SSH key was loaded
func printSSHKeyInfo(cmd *cobra.Command, source string, keyPathOrContent string) {
	keyPathOrContent = strings.TrimSpace(keyPathOrContent)

	var msg string
	if isSSHKeyContent(keyPathOrContent) {
		firstLine := strings.TrimSpace(strings.SplitN(keyPathOrContent, "\n", 2)[0])
		msg = fmt.Sprintf("SSH key loaded from %s (inline content, %d bytes, type: %s)\n",
			source, len(keyPathOrContent), firstLine)
	} else {
		msg = fmt.Sprintf("SSH key loaded from %s: %s\n", source, keyPathOrContent)
	}

	cmd.PrintErr(msg)
}

// GetSSHKeyPath returns the global SSH key path
func GetSSHKeyPath() string {
	return globalSSHKeyPath
}

// Result reports the outcome of a clone or update. Failures are carried in
// Message rather than returned as errors.
type Result struct {
	Success bool
	Message string
	Commit  string
	Branch  string
}

// Client provides high-level git operations with SSH key support
type Client struct {
	sshKeyPath   string
	depth        int
	singleBranch bool
}

// Option configures a Client
type Option func(*Client)

// WithDepth sets the clone depth; zero or less clones full history
func WithDepth(depth int) Option {
	return func(c *Client) {
		c.depth = depth
	}
}

// WithSingleBranch toggles --single-branch on clone
func WithSingleBranch(single bool) Option {
	return func(c *Client) {
		c.singleBranch = single
	}
}

// NewClient creates a new git client using the global SSH key path.
// Clones are shallow (depth 1) and single-branch unless overridden.
func NewClient(opts ...Option) *Client {
	c := &Client{
		sshKeyPath:   GetSSHKeyPath(),
		depth:        1,
		singleBranch: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CloneOrUpdate clones repoURL into destPath, or fetches and pulls branch when
// destPath already exists.
func (c *Client) CloneOrUpdate(ctx context.Context, repoURL, destPath, branch string) Result {
	if branch == "" {
		branch = "main"
	}
	if utils.FileExists(destPath) {
		return c.update(ctx, destPath, branch)
	}
	return c.clone(ctx, repoURL, destPath, branch)
}

func (c *Client) clone(ctx context.Context, repoURL, destPath, branch string) Result {
	log := logger.Get()
	start := time.Now()

	if err := c.Clone(ctx, repoURL, destPath, branch); err != nil {
		log.Error("git clone failed", "url", repoURL, "error", err)
		return Result{Message: fmt.Sprintf("Failed to clone repository: %v", err)}
	}
	log.Debug("git clone completed", "url", repoURL, "duration", time.Since(start))

	commit, err := c.RevParse(ctx, destPath, "HEAD")
	if err != nil {
		log.Warn("could not read cloned commit", "path", destPath, "error", err)
	}

	return Result{
		Success: true,
		Message: fmt.Sprintf("Successfully cloned %s", repoURL),
		Commit:  commit,
		Branch:  branch,
	}
}

func (c *Client) update(ctx context.Context, repoPath, branch string) Result {
	current, err := c.GetCurrentBranch(ctx, repoPath)
	if err != nil {
		return Result{Message: fmt.Sprintf("Failed to update repository: %v", err)}
	}
	if current != branch {
		return Result{
			Message: fmt.Sprintf("Failed to update repository: working copy is on branch %s, not %s (reinstall with --force)", current, branch),
			Branch:  current,
		}
	}

	if err := c.Fetch(ctx, repoPath, branch); err != nil {
		return Result{Message: fmt.Sprintf("Failed to update repository: %v", err)}
	}

	before, err := c.RevParse(ctx, repoPath, "HEAD")
	if err != nil {
		return Result{Message: fmt.Sprintf("Failed to update repository: %v", err)}
	}

	if err := c.Pull(ctx, repoPath, branch); err != nil {
		return Result{Message: fmt.Sprintf("Failed to update repository: %v", err)}
	}

	after, err := c.RevParse(ctx, repoPath, "HEAD")
	if err != nil {
		return Result{Message: fmt.Sprintf("Failed to update repository: %v", err)}
	}

	message := "Successfully updated"
	if before == after {
		message = "Already up to date"
	}
	return Result{Success: true, Message: message, Commit: after, Branch: branch}
}

// Clone clones branch of a git repository to the specified destination path
func (c *Client) Clone(ctx context.Context, repoURL, destPath, branch string) error {
	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return fmt.Errorf("failed to create destination directory: %w", err)
	}

	args := []string{"clone", "--quiet"}
	if branch != "" {
		args = append(args, "--branch", branch)
	}
	if c.depth > 0 {
		args = append(args, "--depth", fmt.Sprint(c.depth))
	}
	if c.singleBranch {
		args = append(args, "--single-branch")
	}

	cmd, _, err := execGitCommandWithURL(ctx, c.sshKeyPath, repoURL, args...)
	if err != nil {
		return err
	}
	cmd.Args = append(cmd.Args, destPath)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git clone failed: %w\nOutput: %s", err, string(output))
	}

	return nil
}

// Fetch fetches branch from origin
func (c *Client) Fetch(ctx context.Context, repoPath, branch string) error {
	cmd := execGitCommand(ctx, c.sshKeyPath, "fetch", "--quiet", "origin", branch)
	cmd.Dir = repoPath

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git fetch failed: %w\nOutput: %s", err, string(output))
	}

	return nil
}

// Pull pulls branch from origin
func (c *Client) Pull(ctx context.Context, repoPath, branch string) error {
	log := logger.Get()
	start := time.Now()
	log.Debug("git pull starting", "repoPath", repoPath, "branch", branch)

	cmd := execGitCommand(ctx, c.sshKeyPath, "pull", "--quiet", "origin", branch)
	cmd.Dir = repoPath

	output, err := cmd.CombinedOutput()
	log.Debug("git pull completed", "duration", time.Since(start), "error", err)

	if err != nil {
		return fmt.Errorf("git pull failed: %w\nOutput: %s", err, string(output))
	}

	return nil
}

// RevParse resolves a ref to a commit hash in a local repository
func (c *Client) RevParse(ctx context.Context, repoPath, ref string) (string, error) {
	cmd := execGitCommand(ctx, c.sshKeyPath, "rev-parse", ref)
	cmd.Dir = repoPath

	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git rev-parse failed: %w", err)
	}

	return strings.TrimSpace(string(output)), nil
}

// GetCurrentBranch returns the current branch name
func (c *Client) GetCurrentBranch(ctx context.Context, repoPath string) (string, error) {
	cmd := execGitCommand(ctx, c.sshKeyPath, "rev-parse", "--abbrev-ref", "HEAD")
	cmd.Dir = repoPath

	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git rev-parse failed: %w\nOutput: %s", err, string(output))
	}

	return strings.TrimSpace(string(output)), nil
}

// RemoteTags lists the tag names published by a remote repository
func (c *Client) RemoteTags(ctx context.Context, repoURL string) ([]string, error) {
	cmd, _, err := execGitCommandWithURL(ctx, c.sshKeyPath, repoURL, "ls-remote", "--tags", "--refs")
	if err != nil {
		return nil, err
	}

	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git ls-remote failed: %w", err)
	}

	return parseTagRefs(string(output)), nil
}

// parseTagRefs extracts tag names from ls-remote output: <hash>\trefs/tags/<name>
func parseTagRefs(output string) []string {
	var tags []string
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}
		if name, ok := strings.CutPrefix(parts[1], "refs/tags/"); ok {
			tags = append(tags, name)
		}
	}
	return tags
}

// IsRepository reports whether dir holds a git working copy
func IsRepository(dir string) bool {
	return utils.IsDirectory(filepath.Join(dir, constants.GitDir))
}
