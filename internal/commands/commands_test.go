package commands

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/base-agents/base-agents/internal/state"
	"github.com/base-agents/base-agents/internal/tools"
)

func TestInitCommand(t *testing.T) {
	env := NewTestEnv(t)

	stdout, _, err := env.Run(NewInitCommand(), "")
	if err != nil {
		t.Fatalf("init failed: %v", err)
	}
	env.AssertFileExists(filepath.Join(env.Root, ".config", "registry.json"))
	env.AssertFileExists(filepath.Join(env.Root, ".config", "config.json"))
	if !strings.Contains(stdout, "Wrote default registry") {
		t.Errorf("unexpected output:\n%s", stdout)
	}

	stdout, _, err = env.Run(NewInitCommand(), "")
	if err != nil {
		t.Fatalf("second init failed: %v", err)
	}
	if !strings.Contains(stdout, "Registry already exists") {
		t.Errorf("second init should keep the registry, got:\n%s", stdout)
	}
}

func TestInstallCommandErrors(t *testing.T) {
	env := NewTestEnv(t)

	_, _, err := env.Run(NewInstallCommand(), "", "vim")
	if !errors.Is(err, tools.ErrUnknownTool) {
		t.Errorf("unknown tool error = %v, want ErrUnknownTool", err)
	}

	_, _, err = env.Run(NewInstallCommand(), "", "claude", "-r", "not-a-url")
	if err == nil || !strings.Contains(err.Error(), "repository URL") {
		t.Errorf("invalid repo error = %v", err)
	}

	_, _, err = env.Run(NewInstallCommand(), "", "claude", "-b", "../evil")
	if err == nil {
		t.Error("expected invalid branch error")
	}
}

func TestSyncCommand(t *testing.T) {
	env := NewTestEnv(t)
	env.WriteFile(filepath.Join(env.Root, "claude", "skills", "review", "SKILL.md"), "v1")
	env.WriteFile(filepath.Join(env.Root, "claude", "commands", "deploy.md"), "not shared")

	stdout, _, err := env.Run(NewSyncCommand(), "", "claude-code", "gemini")
	if err != nil {
		t.Fatalf("sync failed: %v\n%s", err, stdout)
	}

	target := filepath.Join(env.HomeDir, ".config", "google-gemini-code-assist", "skills", "review", "SKILL.md")
	if got := env.ReadFile(target); got != "v1" {
		t.Errorf("target content = %q, want v1", got)
	}
	env.AssertFileNotExists(filepath.Join(env.HomeDir, ".config", "google-gemini-code-assist", "commands"))
	if !strings.Contains(stdout, "Files copied: 1") {
		t.Errorf("summary missing from output:\n%s", stdout)
	}

	// default strategy is ask, which leaves existing files alone
	env.WriteFile(filepath.Join(env.Root, "claude", "skills", "review", "SKILL.md"), "v2")
	stdout, _, err = env.Run(NewSyncCommand(), "", "claude", "gemini")
	if err != nil {
		t.Fatalf("second sync failed: %v", err)
	}
	if got := env.ReadFile(target); got != "v1" {
		t.Errorf("ask strategy overwrote target: %q", got)
	}
	if !strings.Contains(stdout, "Files skipped: 1") {
		t.Errorf("expected a skipped file:\n%s", stdout)
	}

	if _, _, err := env.Run(NewSyncCommand(), "", "claude", "gemini", "-c", "overwrite"); err != nil {
		t.Fatalf("overwrite sync failed: %v", err)
	}
	if got := env.ReadFile(target); got != "v2" {
		t.Errorf("overwrite strategy content = %q, want v2", got)
	}
}

func TestSyncCommandReadsInstalledBundle(t *testing.T) {
	env := NewTestEnv(t)
	env.WriteFile(filepath.Join(env.HomeDir, ".claude", "skills", "local.md"), "only in config dir")

	cmd := NewSyncCommand()
	if !strings.Contains(cmd.Long, "installed bundle (<root>/<tool>") {
		t.Errorf("help should name the installed bundle as the source:\n%s", cmd.Long)
	}

	stdout, _, err := env.Run(cmd, "", "claude", "gemini")
	if err == nil {
		t.Fatal("expected an error without an installed claude bundle")
	}
	if !strings.Contains(stdout, filepath.Join(env.Root, "claude")+" does not exist") {
		t.Errorf("expected missing bundle error in summary:\n%s", stdout)
	}
	env.AssertFileNotExists(filepath.Join(env.HomeDir, ".config", "google-gemini-code-assist", "skills", "local.md"))
}

func TestSyncCommandUsesConfiguredStrategy(t *testing.T) {
	env := NewTestEnv(t)
	env.WriteFile(filepath.Join(env.Root, "claude", "agents", "a.md"), "new")
	target := filepath.Join(env.HomeDir, ".agents", "agents", "a.md")
	env.WriteFile(target, "old")

	if _, _, err := env.Run(NewConfigCommand(), "", "set", "sync.conflictStrategy", "overwrite"); err != nil {
		t.Fatal(err)
	}
	if _, _, err := env.Run(NewSyncCommand(), "", "claude", "agents"); err != nil {
		t.Fatalf("sync failed: %v", err)
	}
	if got := env.ReadFile(target); got != "new" {
		t.Errorf("content = %q, want new", got)
	}
}

func TestSyncCommandErrors(t *testing.T) {
	env := NewTestEnv(t)
	env.WriteFile(filepath.Join(env.Root, "claude", "skills", "s.md"), "x")

	tests := []struct {
		name    string
		args    []string
		wantErr string
		is      error
	}{
		{name: "unknown target", args: []string{"claude", "emacs"}, is: tools.ErrUnknownTool},
		{name: "no target", args: []string{"claude"}, wantErr: "at least one target"},
		{name: "bad strategy", args: []string{"claude", "gemini", "-c", "merge"}, wantErr: "merge"},
		{name: "unsupported target", args: []string{"claude", "opencode"}, wantErr: "completed with errors"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := env.Run(NewSyncCommand(), "", tt.args...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("error = %v, want %v", err, tt.is)
			}
			if tt.wantErr != "" && !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestTemplateCommand(t *testing.T) {
	env := NewTestEnv(t)
	env.Chdir(env.TempDir)

	_, stderr, err := env.Run(NewTemplateCommand(), "", "skill", "Code Review", "--author", "Dana", "--tag", "review")
	if err != nil {
		t.Fatalf("template failed: %v", err)
	}
	if !strings.Contains(stderr, `using "code-review"`) {
		t.Errorf("expected sanitize warning, got %q", stderr)
	}

	content := env.ReadFile(filepath.Join(env.Root, "skills", "code-review", "SKILL.md"))
	for _, want := range []string{"name: code-review", "author: Dana", "review"} {
		if !strings.Contains(content, want) {
			t.Errorf("generated file missing %q:\n%s", want, content)
		}
	}

	f, err := state.NewStoreWithPath(filepath.Join(env.Root, ".config", "state.json")).Load()
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Contains(f.Templates.Skills, "code-review") {
		t.Errorf("template not recorded: %+v", f.Templates)
	}

	if _, _, err := env.Run(NewTemplateCommand(), "", "workflow", "x"); err == nil {
		t.Error("expected invalid type error")
	}
	if _, _, err := env.Run(NewTemplateCommand(), "", "agent", "!!!"); err == nil {
		t.Error("expected invalid name error")
	}
}

func TestListCommand(t *testing.T) {
	env := NewTestEnv(t)
	env.MkdirAll(filepath.Join(env.Root, "cursor"))

	stdout, _, err := env.Run(NewListCommand(), "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for _, want := range []string{"claude", "Cursor IDE", "claude-code", "4/5 tools supported", filepath.Join(env.Root, "cursor")} {
		if !strings.Contains(stdout, want) {
			t.Errorf("list output missing %q:\n%s", want, stdout)
		}
	}

	stdout, _, err = env.Run(NewListCommand(), "", "cursor-ide")
	if err != nil {
		t.Fatalf("list cursor failed: %v", err)
	}
	for _, want := range []string{"rules: (root)", "File types", "Location"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("detail output missing %q:\n%s", want, stdout)
		}
	}

	stdout, _, err = env.Run(NewListCommand(), "", "opencode")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, "Not installed") || !strings.Contains(stdout, "Supported: no") {
		t.Errorf("unexpected opencode detail:\n%s", stdout)
	}

	if _, _, err := env.Run(NewListCommand(), "", "emacs"); !errors.Is(err, tools.ErrUnknownTool) {
		t.Errorf("error = %v, want ErrUnknownTool", err)
	}
}

func TestConfigCommand(t *testing.T) {
	env := NewTestEnv(t)
	configFile := filepath.Join(env.Root, ".config", "config.json")

	stdout, _, err := env.Run(NewConfigCommand(), "", "get", "preferences.defaultBranch")
	if err != nil {
		t.Fatal(err)
	}
	if stdout != "main\n" {
		t.Errorf("get = %q, want main", stdout)
	}

	if _, _, err := env.Run(NewConfigCommand(), "", "set", "git.depth", "5"); err != nil {
		t.Fatal(err)
	}
	stdout, _, _ = env.Run(NewConfigCommand(), "", "get", "git.depth")
	if stdout != "5\n" {
		t.Errorf("get git.depth = %q, want 5", stdout)
	}

	if _, _, err := env.Run(NewConfigCommand(), "", "set", "custom.nested.key", "hello world"); err != nil {
		t.Fatal(err)
	}
	stdout, _, _ = env.Run(NewConfigCommand(), "", "list")
	for _, want := range []string{"custom.nested.key: hello world", "git.depth: 5", "sync.conflictStrategy: ask"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("list missing %q:\n%s", want, stdout)
		}
	}

	if _, _, err := env.Run(NewConfigCommand(), "", "get", "nope.missing"); err == nil {
		t.Error("expected missing key error")
	}

	// declining keeps the file
	if _, _, err := env.Run(NewConfigCommand(), "n\n", "reset"); err != nil {
		t.Fatal(err)
	}
	env.AssertFileExists(configFile)

	if _, _, err := env.Run(NewConfigCommand(), "y\n", "reset"); err != nil {
		t.Fatal(err)
	}
	env.AssertFileNotExists(configFile)

	stdout, _, _ = env.Run(NewConfigCommand(), "", "get", "git.depth")
	if stdout != "1\n" {
		t.Errorf("after reset git.depth = %q, want 1", stdout)
	}
}

func TestRegistryCommands(t *testing.T) {
	env := NewTestEnv(t)

	manifest := filepath.Join(env.TempDir, "windsurf.toml")
	env.WriteFile(manifest, `name = "Windsurf"
default_repo = "https://github.com/example/windsurf-configs"
config_path = "~/.windsurf"
file_types = [".md"]
aliases = ["ws"]

[structure]
rules = "rules"
skills = "skills"
`)

	if _, _, err := env.Run(NewRegistryCommand(), "", "add", "windsurf", "--file", manifest, "--alias", "codeium"); err != nil {
		t.Fatalf("registry add failed: %v", err)
	}

	stdout, _, err := env.Run(NewListCommand(), "", "codeium")
	if err != nil {
		t.Fatalf("alias should resolve after add: %v", err)
	}
	if !strings.Contains(stdout, "Windsurf (windsurf)") {
		t.Errorf("unexpected detail:\n%s", stdout)
	}

	const repo = "https://github.com/me/claude-configs.git"
	if _, _, err := env.Run(NewRegistryCommand(), "", "set-repo", "anthropic", repo); err != nil {
		t.Fatalf("set-repo failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(env.Root, ".config", "registry.json"))
	if err != nil {
		t.Fatal(err)
	}
	var snap tools.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatal(err)
	}
	if got := snap.Tools[tools.Claude].DefaultRepo; got != repo {
		t.Errorf("persisted repo = %q, want %q", got, repo)
	}
	if snap.ToolOrder[len(snap.ToolOrder)-1] != "windsurf" {
		t.Errorf("windsurf should be appended last, order = %v", snap.ToolOrder)
	}

	if _, _, err := env.Run(NewRegistryCommand(), "", "set-repo", "claude", "ftp://nope"); err == nil {
		t.Error("expected invalid URL error")
	}
	if _, _, err := env.Run(NewRegistryCommand(), "", "add", "other"); err == nil {
		t.Error("expected missing --file error")
	}
}

func TestCopyToProjectCommand(t *testing.T) {
	env := NewTestEnv(t)
	ssot := filepath.Join(env.TempDir, "ssot")
	env.WriteFile(filepath.Join(ssot, "skills", "review", "SKILL.md"), "skill")
	env.WriteFile(filepath.Join(ssot, "skills", "README.md"), "index")
	env.WriteFile(filepath.Join(ssot, "rules", "go.md"), "rule")

	projectDir := env.MkdirAll(filepath.Join(env.TempDir, "project"))
	env.Chdir(projectDir)

	stdout, _, err := env.Run(NewCopyToProjectCommand(), "", "--skills")
	if err != nil {
		t.Fatalf("copy-to-project failed: %v", err)
	}
	env.AssertFileExists(filepath.Join(projectDir, ".claude", "skills", "review", "SKILL.md"))
	env.AssertFileExists(filepath.Join(projectDir, ".cursor", "skills", "review", "SKILL.md"))
	env.AssertFileNotExists(filepath.Join(projectDir, ".claude", "skills", "README.md"))
	env.AssertFileNotExists(filepath.Join(projectDir, ".cursor", "rules"))
	if !strings.Contains(stdout, "from 1 categories") {
		t.Errorf("unexpected summary:\n%s", stdout)
	}

	_, stderr, err := env.Run(NewCopyToProjectCommand(), "")
	if err != nil {
		t.Fatal(err)
	}
	env.AssertFileExists(filepath.Join(projectDir, ".claude", "rules", "go.md"))
	if !strings.Contains(stderr, "No agents found") || !strings.Contains(stderr, "No mcp found") {
		t.Errorf("expected missing category warnings, got:\n%s", stderr)
	}
}

func TestCopyToProjectMissingSSOT(t *testing.T) {
	env := NewTestEnv(t)
	env.Chdir(env.TempDir)

	if _, _, err := env.Run(NewCopyToProjectCommand(), "", "--all"); err == nil {
		t.Error("expected an error when the shared asset directory is missing")
	}
}
