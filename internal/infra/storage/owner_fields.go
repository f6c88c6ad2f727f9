package storage

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"fieldbook/internal/domain/listing"
	"fieldbook/internal/infra"
)

const OwnerFieldsKey = "owner_fields_v1"

// OwnerFieldsStore persists every owner's listings in one blob, keyed by owner id.
type OwnerFieldsStore struct {
	mu     sync.Mutex
	blobs  BlobStore
	logger *slog.Logger
}

func NewOwnerFieldsStore(blobs BlobStore, logger *slog.Logger) *OwnerFieldsStore {
	return &OwnerFieldsStore{blobs: blobs, logger: logger}
}

// Load returns the owner's listings. A missing or undecodable blob yields an
// empty list; any other read failure is returned.
func (s *OwnerFieldsStore) Load(ctx context.Context, ownerID string) ([]listing.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Clone(all[ownerID]), nil
}

// Save replaces the owner's listings, leaving other owners untouched. Nothing
// is written when the current blob cannot be read.
func (s *OwnerFieldsStore) Save(ctx context.Context, ownerID string, fields []listing.Listing) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.loadAll(ctx)
	if err != nil {
		s.logger.Warn("owner fields not saved, current blob unreadable", "owner_id", ownerID, "error", err)
		return err
	}
	all[ownerID] = fields
	if err := SaveJSON(ctx, s.blobs, OwnerFieldsKey, all); err != nil {
		s.logger.Warn("failed to save owner fields", "owner_id", ownerID, "error", err)
		return err
	}
	return nil
}

func (s *OwnerFieldsStore) loadAll(ctx context.Context) (map[string][]listing.Listing, error) {
	all := map[string][]listing.Listing{}
	if _, err := LoadJSON(ctx, s.blobs, OwnerFieldsKey, &all); err != nil {
		if !infra.IsKind(err, infra.KindDecodeFailure) {
			return nil, err
		}
		s.logger.Warn("owner fields blob is corrupt, starting empty", "error", err)
		return map[string][]listing.Listing{}, nil
	}
	if all == nil {
		all = map[string][]listing.Listing{}
	}
	return all, nil
}
