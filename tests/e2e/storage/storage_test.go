//go:build e2e

package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fieldbook/internal/domain/booking"
	"fieldbook/internal/domain/listing"
	"fieldbook/internal/infra/storage"
	"fieldbook/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
)

type StorageTestSuite struct {
	e2e.SharedSuite
	stores map[string]storage.BlobStore
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageTestSuite))
}

func (s *StorageTestSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()

	cfg := e2e.RedisConfig(s.T())
	rdb, cleanup, err := storage.NewRedisClient(context.Background(), cfg)
	s.Require().NoError(err)
	s.T().Cleanup(cleanup)

	s.stores = map[string]storage.BlobStore{
		"redis":    storage.NewRedisStore(rdb, cfg.KeyPrefix),
		"postgres": storage.NewPostgresStore(s.DB),
	}
}

func (s *StorageTestSuite) TestLoadSaveDelete() {
	ctx := context.Background()

	for name, store := range s.stores {
		s.Run(name, func() {
			_, err := store.Load(ctx, "missing")
			s.True(storage.IsNotFound(err))

			s.Require().NoError(store.Save(ctx, "k", []byte(`{"a":1}`)))
			data, err := store.Load(ctx, "k")
			s.Require().NoError(err)
			s.JSONEq(`{"a":1}`, string(data))

			s.Require().NoError(store.Save(ctx, "k", []byte(`{"a":2}`)))
			data, err = store.Load(ctx, "k")
			s.Require().NoError(err)
			s.JSONEq(`{"a":2}`, string(data))

			s.Require().NoError(store.Delete(ctx, "k"))
			_, err = store.Load(ctx, "k")
			s.True(storage.IsNotFound(err))

			s.NoError(store.Delete(ctx, "k"), "deleting a missing key is not an error")
		})
	}
}

func (s *StorageTestSuite) TestTypedStoresRoundTrip() {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	createdAt := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

	for name, store := range s.stores {
		s.Run(name, func() {
			fields := storage.NewOwnerFieldsStore(store, logger)
			want := []listing.Listing{{ID: "f1", OwnerID: "o-" + name, Name: "Night Pitch", PricePerHour: 150000, CreatedAt: createdAt}}
			s.Require().NoError(fields.Save(ctx, "o-"+name, want))
			loaded, err := fields.Load(ctx, "o-"+name)
			s.Require().NoError(err)
			s.Empty(cmp.Diff(want, loaded))

			bookings := storage.NewRenterBookingsStore(store, logger)
			bk := booking.Booking{ID: "bk1", FieldID: "1", UserID: "u-" + name, Time: "18:00", Duration: 2, VerificationCode: "123456", Status: booking.StatusUpcoming}
			s.Require().NoError(bookings.Save(ctx, "u-"+name, []booking.Booking{bk}))
			got := bookings.Load(ctx, "u-"+name)
			s.Require().Len(got, 1)
			s.Equal("bk1", got[0].ID)
		})
	}
}
