package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// File persists each slot as one file in a data directory, the closest
// server-side analog of the browser's local storage the shop grew up on.
type File struct {
	dir string
}

// NewFile creates the data directory if needed and returns a file store.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &File{dir: dir}, nil
}

func (f *File) path(key string) string {
	// Slot keys are short identifiers like "kitis_cart"; anything with
	// a path separator stays confined to the data dir.
	return filepath.Join(f.dir, filepath.Base(key)+".json")
}

func (f *File) Read(_ context.Context, key string) (string, error) {
	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("read slot %s: %w", key, err)
	}
	return string(data), nil
}

func (f *File) Write(_ context.Context, key, raw string) error {
	if err := os.WriteFile(f.path(key), []byte(raw), 0o644); err != nil {
		return fmt.Errorf("write slot %s: %w", key, err)
	}
	return nil
}

func (f *File) Delete(_ context.Context, key string) error {
	err := os.Remove(f.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete slot %s: %w", key, err)
	}
	return nil
}
