package state

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStoreWithPath(filepath.Join(t.TempDir(), ".config", "state.json"))
}

func TestLoadMissingReturnsEmpty(t *testing.T) {
	s := newTestStore(t)
	f, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Installed) != 0 || len(f.Templates.Skills) != 0 {
		t.Errorf("Load() = %+v, want empty", f)
	}
}

func TestRecordInstallMerges(t *testing.T) {
	s := newTestStore(t)
	when := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	if err := s.RecordInstall("claude", Installation{Repo: "https://github.com/a/b", Branch: "main", Commit: "abc", Version: "1.0.0", LastUpdate: when}); err != nil {
		t.Fatal(err)
	}
	if err := s.RecordInstall("gemini", Installation{Repo: "https://github.com/c/d", Branch: "dev", Version: "2.1.0"}); err != nil {
		t.Fatal(err)
	}

	claude, err := s.Get("claude")
	if err != nil || claude == nil {
		t.Fatalf("Get(claude) = %v, %v", claude, err)
	}
	if claude.Commit != "abc" || !claude.LastUpdate.Equal(when) {
		t.Errorf("claude = %+v", claude)
	}

	gemini, _ := s.Get("gemini")
	if gemini == nil || gemini.LastUpdate.IsZero() {
		t.Errorf("gemini = %+v, want timestamp filled in", gemini)
	}

	data, _ := os.ReadFile(s.Path())
	if !strings.Contains(string(data), `"lastUpdate": "2026-01-02T03:04:05Z"`) {
		t.Errorf("expected RFC3339 timestamp in:\n%s", data)
	}
}

func TestGetAndRemove(t *testing.T) {
	s := newTestStore(t)

	info, err := s.Get("cursor")
	if err != nil || info != nil {
		t.Errorf("Get(cursor) = %v, %v, want nil", info, err)
	}

	if err := s.Remove("cursor"); err == nil {
		t.Error("Remove() of missing tool should fail")
	}

	if err := s.RecordInstall("cursor", Installation{Branch: "main"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Remove("cursor"); err != nil {
		t.Fatal(err)
	}
	if info, _ := s.Get("cursor"); info != nil {
		t.Errorf("cursor still installed: %+v", info)
	}
}

func TestRecordTemplate(t *testing.T) {
	s := newTestStore(t)

	for _, step := range []struct{ kind, name string }{
		{"skill", "code-review"},
		{"skill", "code-review"},
		{"agent", "planner"},
		{"mcp", "github"},
		{"command", "deploy"},
	} {
		if err := s.RecordTemplate(step.kind, step.name); err != nil {
			t.Fatal(err)
		}
	}

	f, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	want := Templates{Skills: []string{"code-review"}, Agents: []string{"planner"}, MCP: []string{"github"}}
	if !reflect.DeepEqual(f.Templates, want) {
		t.Errorf("Templates = %+v, want %+v", f.Templates, want)
	}
}

func TestLoadCorrupt(t *testing.T) {
	s := newTestStore(t)
	if err := os.MkdirAll(s.Dir(), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(s.Path(), []byte("{nope"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Load(); err == nil {
		t.Error("expected error for corrupt state")
	}
}
