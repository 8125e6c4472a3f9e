package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
)

// FileSystem is the filesystem surface the sync engine and installers work against.
// Every method reports I/O failures as errors rather than panicking.
type FileSystem interface {
	Exists(path string) bool
	EnsureDir(path string) error
	ListEntries(path string) ([]string, error)
	IsDir(path string) (bool, error)
	CopyFile(src, dst string, overwrite bool) error
}

// OSFileSystem implements FileSystem on the local disk
type OSFileSystem struct{}

// Exists reports whether path exists
func (OSFileSystem) Exists(path string) bool {
	return FileExists(path)
}

// EnsureDir creates path and any missing parents
func (OSFileSystem) EnsureDir(path string) error {
	return EnsureDir(path)
}

// ListEntries returns the entry names of a directory, sorted
func (OSFileSystem) ListEntries(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// IsDir stats path and reports whether it is a directory
func (OSFileSystem) IsDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// CopyFile copies src to dst, preserving the source file mode.
// When overwrite is false and dst exists, os.ErrExist is returned.
func (OSFileSystem) CopyFile(src, dst string, overwrite bool) error {
	return CopyFile(src, dst, overwrite)
}

// CopyFile copies a single file, creating the destination's parent directory
func CopyFile(src, dst string, overwrite bool) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}

	if err := EnsureDir(filepath.Dir(dst)); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", dst, err)
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, flags, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// CopyDir recursively copies src into dst, overwriting existing files.
// Entries whose base name is in skip are not copied at any depth.
func CopyDir(src, dst string, skip ...string) error {
	skipped := make(map[string]bool, len(skip))
	for _, s := range skip {
		skipped[s] = true
	}

	return filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != src && skipped[d.Name()] {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			return EnsureDir(target)
		}
		return CopyFile(path, target, true)
	})
}
