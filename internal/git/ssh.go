package git

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/base-agents/base-agents/internal/logger"
)

var (
	knownGitHosts  = []string{"github.com", "gitlab.com", "bitbucket.org", "codeberg.org"}
	gitHostPattern = regexp.MustCompile(`^(git|gitlab|github|bitbucket)\.`)
)

// ConvertToSSH converts HTTPS git URLs to SSH format
// Example: https://github.com/owner/repo.git → git@github.com:owner/repo.git
func ConvertToSSH(httpsURL string) (string, error) {
	if !IsHTTPSURL(httpsURL) {
		return "", fmt.Errorf("not an HTTPS URL: %s", httpsURL)
	}

	host, path, ok := strings.Cut(strings.TrimPrefix(httpsURL, "https://"), "/")
	if !ok || path == "" {
		return "", fmt.Errorf("invalid URL format: %s", httpsURL)
	}

	if !isKnownGitService(host) {
		return "", fmt.Errorf("unsupported git host: %s", host)
	}

	if !strings.HasSuffix(path, ".git") {
		path += ".git"
	}
	return fmt.Sprintf("git@%s:%s", host, path), nil
}

// IsHTTPSURL checks if URL is in HTTPS format
func IsHTTPSURL(url string) bool {
	return strings.HasPrefix(url, "https://")
}

// ValidateSSHKey checks that an SSH key file exists and is a regular file.
// Inline key content (starting with "-----BEGIN") is always accepted.
func ValidateSSHKey(keyPath string) error {
	if isSSHKeyContent(keyPath) {
		return nil
	}

	info, err := os.Stat(keyPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("SSH key file not found: %s", keyPath)
		}
		return fmt.Errorf("SSH key file not readable: %w", err)
	}

	if !info.Mode().IsRegular() {
		return fmt.Errorf("SSH key path is not a regular file: %s", keyPath)
	}

	if perm := info.Mode().Perm(); perm&0077 != 0 {
		logger.Get().Warn("ssh key has permissive permissions", "path", keyPath, "mode", fmt.Sprintf("%04o", perm))
	}

	return nil
}

func isSSHKeyContent(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), "-----BEGIN")
}

// buildSSHCommand returns the GIT_SSH_COMMAND value for a key path or inline key.
// Inline keys are written to a 0600 temp file first. Returns "" on failure.
func buildSSHCommand(keyPathOrContent string) string {
	keyPath := keyPathOrContent

	if isSSHKeyContent(keyPathOrContent) {
		path, err := writeTempKey(keyPathOrContent)
		if err != nil {
			logger.Get().Warn("failed to materialize inline ssh key", "error", err)
			return ""
		}
		keyPath = path
	}

	return fmt.Sprintf("ssh -i %s -o IdentitiesOnly=yes -o StrictHostKeyChecking=accept-new", keyPath)
}

func writeTempKey(content string) (string, error) {
	tmpFile, err := os.CreateTemp("", "base-agents-ssh-key-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file for SSH key: %w", err)
	}
	defer tmpFile.Close()

	if err := tmpFile.Chmod(0600); err != nil {
		os.Remove(tmpFile.Name())
		return "", fmt.Errorf("failed to set permissions on temp SSH key: %w", err)
	}

	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	if _, err := tmpFile.WriteString(content); err != nil {
		os.Remove(tmpFile.Name())
		return "", fmt.Errorf("failed to write SSH key to temp file: %w", err)
	}

	return tmpFile.Name(), nil
}

// isKnownGitService checks if the host is a known git service or looks like a self-hosted one
func isKnownGitService(host string) bool {
	for _, known := range knownGitHosts {
		if host == known || strings.HasSuffix(host, "."+known) {
			return true
		}
	}
	return gitHostPattern.MatchString(host)
}
