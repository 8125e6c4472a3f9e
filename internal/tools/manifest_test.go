package tools

import (
	"reflect"
	"testing"
)

func TestParseManifest(t *testing.T) {
	data := []byte(`
id = "windsurf"
name = "Windsurf"
default_repo = "https://github.com/example/windsurf-configs"
config_path = "~/.windsurf"
file_types = [".md"]
aliases = ["ws", "codeium"]

[structure]
rules = "rules"
skills = "skills"
agents = ""
`)

	m, err := ParseManifest(data)
	if err != nil {
		t.Fatalf("ParseManifest() error = %v", err)
	}
	if m.ID != "windsurf" {
		t.Errorf("ID = %q", m.ID)
	}
	if !reflect.DeepEqual(m.Aliases, []string{"ws", "codeium"}) {
		t.Errorf("Aliases = %v", m.Aliases)
	}

	cfg := m.ToolConfig()
	want := Structure{
		{Name: "rules", Path: "rules"},
		{Name: "skills", Path: "skills"},
		{Name: "agents", Path: ""},
	}
	if !reflect.DeepEqual(cfg.Structure, want) {
		t.Errorf("Structure = %v, want %v", cfg.Structure, want)
	}
	if !cfg.Supported {
		t.Error("tools default to supported")
	}
	if cfg.Name != "Windsurf" || cfg.ConfigPath != "~/.windsurf" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestParseManifestErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid toml", `name = `},
		{"unknown key", "name = \"x\"\ncolour = \"blue\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseManifest([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestManifestUnsupportedAndNameFallback(t *testing.T) {
	m, err := ParseManifest([]byte("id = \"legacy\"\nsupported = false\n"))
	if err != nil {
		t.Fatal(err)
	}
	cfg := m.ToolConfig()
	if cfg.Supported {
		t.Error("supported = false should be honored")
	}
	if cfg.Name != "legacy" {
		t.Errorf("Name = %q, want id fallback", cfg.Name)
	}
}
