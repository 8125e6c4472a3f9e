package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandTilde(t *testing.T) {
	homeDir, _ := os.UserHomeDir()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "tilde only",
			input: "~",
			want:  homeDir,
		},
		{
			name:  "tilde with path",
			input: "~/test",
			want:  filepath.Join(homeDir, "test"),
		},
		{
			name:  "absolute path",
			input: "/absolute/path",
			want:  "/absolute/path",
		},
		{
			name:  "relative path",
			input: "relative/path",
			want:  "relative/path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandTilde(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ExpandTilde() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ExpandTilde() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFileExists(t *testing.T) {
	// Create a temporary file
	tmpfile, err := os.CreateTemp("", "test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())
	tmpfile.Close()

	tests := []struct {
		name string
		path string
		want bool
	}{
		{
			name: "existing file",
			path: tmpfile.Name(),
			want: true,
		},
		{
			name: "non-existing file",
			path: "/non/existing/path/file.txt",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEnsureDir(t *testing.T) {
	tmpDir := os.TempDir()
	testDir := filepath.Join(tmpDir, "test-ensure-dir", "nested", "path")
	defer os.RemoveAll(filepath.Join(tmpDir, "test-ensure-dir"))

	if err := EnsureDir(testDir); err != nil {
		t.Errorf("EnsureDir() error = %v", err)
	}

	// Verify directory was created
	if !FileExists(testDir) {
		t.Errorf("EnsureDir() did not create directory")
	}

	// Calling again should not error
	if err := EnsureDir(testDir); err != nil {
		t.Errorf("EnsureDir() on existing dir error = %v", err)
	}
}

func TestGetRootDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	t.Run("default under home", func(t *testing.T) {
		t.Setenv("BASE_AGENTS_ROOT", "")
		got, err := GetRootDir()
		if err != nil {
			t.Fatalf("GetRootDir() error = %v", err)
		}
		if want := filepath.Join(home, ".base-agents"); got != want {
			t.Errorf("GetRootDir() = %v, want %v", got, want)
		}
	})

	t.Run("env override with tilde", func(t *testing.T) {
		t.Setenv("BASE_AGENTS_ROOT", "~/custom-root")
		got, err := GetRootDir()
		if err != nil {
			t.Fatalf("GetRootDir() error = %v", err)
		}
		if want := filepath.Join(home, "custom-root"); got != want {
			t.Errorf("GetRootDir() = %v, want %v", got, want)
		}
	})
}

func TestGetConfigFile(t *testing.T) {
	root := t.TempDir()
	t.Setenv("BASE_AGENTS_ROOT", root)

	configFile, err := GetConfigFile("registry.json")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(root, ".config", "registry.json"); configFile != want {
		t.Errorf("GetConfigFile() = %v, want %v", configFile, want)
	}
}

func TestGetSSOTDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("BASE_AGENTS_SSOT", "")

	got, err := GetSSOTDir()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, "Desktop", "base-agents"); got != want {
		t.Errorf("GetSSOTDir() = %v, want %v", got, want)
	}

	t.Setenv("BASE_AGENTS_SSOT", "/srv/assets")
	got, err = GetSSOTDir()
	if err != nil {
		t.Fatal(err)
	}
	if got != "/srv/assets" {
		t.Errorf("GetSSOTDir() = %v, want /srv/assets", got)
	}
}
