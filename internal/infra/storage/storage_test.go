//go:build unit

package storage_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"fieldbook/internal/domain/booking"
	"fieldbook/internal/domain/listing"
	"fieldbook/internal/infra"
	"fieldbook/internal/infra/storage"
	"fieldbook/internal/pkg/config"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func blobStores(t *testing.T) map[string]storage.BlobStore {
	t.Helper()
	fs, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return map[string]storage.BlobStore{
		"memory": storage.NewMemoryStore(),
		"file":   fs,
	}
}

func TestBlobStores(t *testing.T) {
	ctx := context.Background()

	for name, s := range blobStores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Load(ctx, "missing")
			require.Error(t, err)
			assert.True(t, storage.IsNotFound(err))

			require.NoError(t, s.Save(ctx, "bookings:u/1", []byte(`[1]`)))
			require.NoError(t, s.Save(ctx, "bookings:u/1", []byte(`[2]`)))

			data, err := s.Load(ctx, "bookings:u/1")
			require.NoError(t, err)
			assert.JSONEq(t, `[2]`, string(data))

			require.NoError(t, s.Delete(ctx, "bookings:u/1"))
			require.NoError(t, s.Delete(ctx, "bookings:u/1"))
			_, err = s.Load(ctx, "bookings:u/1")
			assert.True(t, storage.IsNotFound(err))
		})
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("memory driver", func(t *testing.T) {
		cfg := config.NewTestConfig()
		s, cleanup, err := storage.Open(ctx, cfg)
		require.NoError(t, err)
		defer cleanup()
		assert.IsType(t, &storage.MemoryStore{}, s)
	})

	t.Run("file driver", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Storage.Driver = storage.DriverFile
		cfg.Storage.DataDir = t.TempDir()
		s, cleanup, err := storage.Open(ctx, cfg)
		require.NoError(t, err)
		defer cleanup()
		assert.NotNil(t, s)
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Storage.Driver = "nope"
		s, cleanup, err := storage.Open(ctx, cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown storage driver "nope"`)
		assert.Nil(t, s)
		assert.Nil(t, cleanup)
	})
}

func TestLoadJSON(t *testing.T) {
	ctx := context.Background()
	s := storage.NewMemoryStore()

	var out map[string]int
	found, err := storage.LoadJSON(ctx, s, "k", &out)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Save(ctx, "k", []byte("{not json")))
	_, err = storage.LoadJSON(ctx, s, "k", &out)
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDecodeFailure))
}

// flakyStore fails the next failLoads reads with a backend error.
type flakyStore struct {
	*storage.MemoryStore
	failLoads int
}

func (f *flakyStore) Load(ctx context.Context, key string) ([]byte, error) {
	if f.failLoads > 0 {
		f.failLoads--
		return nil, infra.WrapRepoErr("failed to get blob "+key, errors.New("connection reset"))
	}
	return f.MemoryStore.Load(ctx, key)
}

func loadFields(t *testing.T, s *storage.OwnerFieldsStore, ownerID string) []listing.Listing {
	t.Helper()
	fields, err := s.Load(context.Background(), ownerID)
	require.NoError(t, err)
	return fields
}

func TestOwnerFieldsStore(t *testing.T) {
	ctx := context.Background()
	blobs := storage.NewMemoryStore()
	s := storage.NewOwnerFieldsStore(blobs, discard)

	assert.Empty(t, loadFields(t, s, "owner1"))

	a := []listing.Listing{{ID: "f1", OwnerID: "owner1", Name: "A"}}
	b := []listing.Listing{{ID: "f2", OwnerID: "owner2", Name: "B"}}
	require.NoError(t, s.Save(ctx, "owner1", a))
	require.NoError(t, s.Save(ctx, "owner2", b))

	if diff := cmp.Diff(a, loadFields(t, s, "owner1")); diff != "" {
		t.Errorf("owner1 mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "f2", loadFields(t, s, "owner2")[0].ID)

	t.Run("survives a new store instance", func(t *testing.T) {
		fresh := storage.NewOwnerFieldsStore(blobs, discard)
		assert.Len(t, loadFields(t, fresh, "owner1"), 1)
	})

	t.Run("corrupt blob degrades to empty", func(t *testing.T) {
		require.NoError(t, blobs.Save(ctx, storage.OwnerFieldsKey, []byte("garbage")))
		assert.Empty(t, loadFields(t, s, "owner1"))
	})
}

func TestOwnerFieldsStoreReadFailure(t *testing.T) {
	ctx := context.Background()
	blobs := &flakyStore{MemoryStore: storage.NewMemoryStore()}
	s := storage.NewOwnerFieldsStore(blobs, discard)

	alice := []listing.Listing{{ID: "f1", OwnerID: "alice", Name: "Alice Pitch"}}
	require.NoError(t, s.Save(ctx, "alice", alice))

	t.Run("save during a read failure writes nothing", func(t *testing.T) {
		blobs.failLoads = 1
		err := s.Save(ctx, "bob", []listing.Listing{{ID: "f2", OwnerID: "bob", Name: "Bob Pitch"}})
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))

		if diff := cmp.Diff(alice, loadFields(t, s, "alice")); diff != "" {
			t.Errorf("alice's listings changed (-want +got):\n%s", diff)
		}
		assert.Empty(t, loadFields(t, s, "bob"))
	})

	t.Run("load surfaces a read failure", func(t *testing.T) {
		blobs.failLoads = 1
		fields, err := s.Load(ctx, "alice")
		require.Error(t, err)
		assert.Nil(t, fields)
	})
}

func TestRenterBookingsStore(t *testing.T) {
	ctx := context.Background()
	blobs := storage.NewMemoryStore()
	s := storage.NewRenterBookingsStore(blobs, discard)

	day := time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC)
	list := []booking.Booking{{ID: "b1", UserID: "u1", Date: day, Time: "18:00", Duration: 2, Status: booking.StatusUpcoming}}
	require.NoError(t, s.Save(ctx, "u1", list))

	raw, err := blobs.Load(ctx, storage.RenterBookingsKey("u1"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"date":"2026-06-12T00:00:00Z"`)

	got := s.Load(ctx, "u1")
	require.Len(t, got, 1)
	assert.True(t, day.Equal(got[0].Date))

	assert.Empty(t, s.Load(ctx, "u2"))

	require.NoError(t, blobs.Save(ctx, storage.RenterBookingsKey("u1"), []byte(`{"oops":`)))
	assert.Empty(t, s.Load(ctx, "u1"))
}
