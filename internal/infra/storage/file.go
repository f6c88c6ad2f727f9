package storage

import (
	"context"
	"errors"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"

	"fieldbook/internal/infra"
)

// FileStore keeps one JSON file per key under dir.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, infra.WrapRepoErr("failed to create data dir", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, url.PathEscape(key)+".json")
}

func (s *FileStore) Load(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, notFound(key)
		}
		return nil, infra.WrapRepoErr("failed to read blob "+key, err)
	}
	return data, nil
}

// Save replaces the file atomically so a crash never leaves half a document.
func (s *FileStore) Save(_ context.Context, key string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, ".blob-*")
	if err != nil {
		return infra.WrapRepoErr("failed to create temp file", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return infra.WrapRepoErr("failed to write blob "+key, err)
	}
	if err := tmp.Close(); err != nil {
		return infra.WrapRepoErr("failed to write blob "+key, err)
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		return infra.WrapRepoErr("failed to replace blob "+key, err)
	}
	return nil
}

func (s *FileStore) Delete(_ context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return infra.WrapRepoErr("failed to delete blob "+key, err)
	}
	return nil
}
