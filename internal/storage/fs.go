package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// File implements Provider backed by a single file on the local file system.
type File struct {
	path string // absolute path to the backing file
}

// NewFile creates a provider for the file at path. The file itself need not
// exist yet, but path must not name a directory.
func NewFile(path string) (*File, error) {
	if path == "" {
		return nil, fmt.Errorf("storage: empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve path: %w", err)
	}
	if info, err := os.Stat(abs); err == nil && info.IsDir() {
		return nil, fmt.Errorf("storage: path is a directory: %s", abs)
	}
	return &File{path: abs}, nil
}

// Path returns the absolute path of the backing file.
func (f *File) Path() string {
	return f.path
}

// Read returns the raw bytes of the backing file. A missing file yields an
// error matching os.ErrNotExist.
func (f *File) Read() ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", f.path, err)
	}
	return data, nil
}

// Write atomically writes content: tmp file → fsync → rename.
func (f *File) Write(content []byte) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".recipebook-tmp-*")
	if err != nil {
		return fmt.Errorf("storage: create temp: %w", err)
	}
	tmpName := tmp.Name()

	// Clean up on any failure path.
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("storage: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("storage: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: close temp: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("storage: rename: %w", err)
	}
	success = true
	return nil
}

// Move renames the backing file to dst. Relative destinations resolve
// against the backing file's directory.
func (f *File) Move(dst string) error {
	if !filepath.IsAbs(dst) {
		dst = filepath.Join(filepath.Dir(f.path), dst)
	}
	if err := os.Rename(f.path, dst); err != nil {
		return fmt.Errorf("storage: move: %w", err)
	}
	return nil
}
