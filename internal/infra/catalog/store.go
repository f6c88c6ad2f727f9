package catalog

import (
	"slices"
	"sync"

	"fieldbook/internal/domain/listing"
)

// Store holds the catalog in memory. Reads return copies.
type Store struct {
	mu       sync.RWMutex
	listings []listing.Listing
}

func NewStore(seed []listing.Listing) *Store {
	return &Store{listings: slices.Clone(seed)}
}

func NewSeededStore() *Store {
	return NewStore(SeedListings())
}

func (s *Store) List() []listing.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.listings)
}

func (s *Store) Get(id string) (listing.Listing, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.index(id)
	if i < 0 {
		return listing.Listing{}, false
	}
	return s.listings[i], true
}

func (s *Store) Search(query string) []listing.Listing {
	return listing.Search(s.List(), query)
}

func (s *Store) OwnedBy(ownerID string) []listing.Listing {
	return listing.FilterAndSort(s.List(), func(l listing.Listing) bool {
		return l.OwnerID == ownerID
	}, nil)
}

// SetPromoted flips the promoted flag of a catalog listing.
func (s *Store) SetPromoted(id string) (listing.Listing, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return listing.Listing{}, false
	}
	s.listings[i].Promote()
	return s.listings[i], true
}

func (s *Store) index(id string) int {
	return slices.IndexFunc(s.listings, func(l listing.Listing) bool { return l.ID == id })
}
