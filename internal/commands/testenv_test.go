package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// TestEnv provides an isolated test environment with common setup utilities.
type TestEnv struct {
	t       *testing.T
	TempDir string // Root temp directory
	HomeDir string // Simulated home directory
	Root    string // base-agents root directory
	origDir string // Original working directory for cleanup
}

// NewTestEnv creates a new isolated test environment.
// HOME, the base-agents root, cache and SSOT directories all live under a temp dir.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	tempDir := t.TempDir()
	homeDir := filepath.Join(tempDir, "home")
	root := filepath.Join(tempDir, "root")

	t.Setenv("HOME", homeDir)
	t.Setenv("BASE_AGENTS_ROOT", root)
	t.Setenv("BASE_AGENTS_CACHE_DIR", filepath.Join(tempDir, "cache"))
	t.Setenv("BASE_AGENTS_SSOT", filepath.Join(tempDir, "ssot"))
	t.Setenv("BASE_AGENTS_SSH_KEY", "")
	t.Setenv("NO_COLOR", "1")

	if err := os.MkdirAll(homeDir, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", homeDir, err)
	}

	origDir, _ := os.Getwd()

	return &TestEnv{
		t:       t,
		TempDir: tempDir,
		HomeDir: homeDir,
		Root:    root,
		origDir: origDir,
	}
}

// Chdir changes to the specified directory and registers cleanup to restore.
func (e *TestEnv) Chdir(dir string) {
	e.t.Helper()
	if err := os.Chdir(dir); err != nil {
		e.t.Fatalf("Failed to chdir to %s: %v", dir, err)
	}
	e.t.Cleanup(func() {
		_ = os.Chdir(e.origDir)
	})
}

// MkdirAll creates a directory and all parents.
func (e *TestEnv) MkdirAll(path string) string {
	e.t.Helper()
	if err := os.MkdirAll(path, 0755); err != nil {
		e.t.Fatalf("Failed to create directory %s: %v", path, err)
	}
	return path
}

// WriteFile writes content to a file, creating parent directories as needed.
func (e *TestEnv) WriteFile(path, content string) {
	e.t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		e.t.Fatalf("Failed to create directory %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.t.Fatalf("Failed to write file %s: %v", path, err)
	}
}

// ReadFile returns a file's content, failing the test if it cannot be read.
func (e *TestEnv) ReadFile(path string) string {
	e.t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		e.t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(data)
}

// Run executes cmd with args and stdin, returning stdout, stderr and the error.
func (e *TestEnv) Run(cmd *cobra.Command, stdin string, args ...string) (string, string, error) {
	e.t.Helper()
	var stdout, stderr bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SilenceUsage = true
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// AssertFileExists fails the test if the file does not exist.
func (e *TestEnv) AssertFileExists(path string) {
	e.t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		e.t.Errorf("Expected file to exist: %s", path)
	}
}

// AssertFileNotExists fails the test if the file exists.
func (e *TestEnv) AssertFileNotExists(path string) {
	e.t.Helper()
	if _, err := os.Stat(path); err == nil {
		e.t.Errorf("Expected file to NOT exist: %s", path)
	}
}
