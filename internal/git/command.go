package git

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/base-agents/base-agents/internal/logger"
)

// execGitCommand creates a git command with optional SSH key configuration.
// Credential prompts are disabled so a private repository fails instead of
// blocking behind the spinner.
func execGitCommand(ctx context.Context, sshKeyPath string, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")

	if sshKeyPath != "" {
		// invalid keys still fail at exec time
		if err := ValidateSSHKey(sshKeyPath); err != nil {
			logger.Get().Warn("ssh key validation failed", "error", err)
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}

		if sshCmd := buildSSHCommand(sshKeyPath); sshCmd != "" {
			cmd.Env = append(cmd.Env, "GIT_SSH_COMMAND="+sshCmd)
		}
	}

	return cmd
}

// execGitCommandWithURL appends url to args, converting HTTPS to SSH when a key is configured.
// Returns the command and the URL actually used.
func execGitCommandWithURL(ctx context.Context, sshKeyPath, url string, args ...string) (*exec.Cmd, string, error) {
	finalURL := url

	if sshKeyPath != "" && IsHTTPSURL(url) {
		convertedURL, err := ConvertToSSH(url)
		if err != nil {
			return nil, "", fmt.Errorf("failed to convert URL to SSH: %w", err)
		}
		finalURL = convertedURL
	}

	fullArgs := append(args, finalURL)
	return execGitCommand(ctx, sshKeyPath, fullArgs...), finalURL, nil
}
