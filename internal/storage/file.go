package storage

import (
	"context"
	"os"
	"path/filepath"
)

// FileAdapter stores each snapshot as one file under a state directory.
// It is the default backend for a local client.
type FileAdapter struct {
	dir string
}

func NewFileAdapter(dir string) (*FileAdapter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileAdapter{dir: dir}, nil
}

func (f *FileAdapter) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *FileAdapter) Get(_ context.Context, key string) (string, bool) {
	b, err := os.ReadFile(f.path(key))
	if err != nil {
		return "", false
	}
	return string(b), true
}

func (f *FileAdapter) Set(_ context.Context, key, value string) error {
	return os.WriteFile(f.path(key), []byte(value), 0o644)
}

func (f *FileAdapter) Delete(_ context.Context, key string) error {
	err := os.Remove(f.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
