// Package storage keeps small JSON documents under string keys: owner
// fields, renter booking caches, preferences and sessions.
package storage

import (
	"context"
	"encoding/json"
	"errors"

	"fieldbook/internal/infra"
)

var ErrBlobNotFound = errors.New("blob not found")

type BlobStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

func notFound(key string) error {
	return infra.WrapRepoErr("blob "+key+" not found", ErrBlobNotFound, infra.KindNotFound)
}

func IsNotFound(err error) bool {
	return infra.IsKind(err, infra.KindNotFound)
}

// LoadJSON decodes the blob at key into out. A missing blob leaves out
// untouched and reports false.
func LoadJSON(ctx context.Context, s BlobStore, key string, out any) (bool, error) {
	data, err := s.Load(ctx, key)
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, infra.WrapRepoErr("failed to decode blob "+key, err, infra.KindDecodeFailure)
	}
	return true, nil
}

func SaveJSON(ctx context.Context, s BlobStore, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return infra.WrapRepoErr("failed to encode blob "+key, err, infra.KindDecodeFailure)
	}
	return s.Save(ctx, key, data)
}
