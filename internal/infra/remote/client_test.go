//go:build unit

package remote_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fieldbook/internal/domain/listing"
	"fieldbook/internal/domain/promotion"
	"fieldbook/internal/infra"
	"fieldbook/internal/infra/remote"
	"fieldbook/internal/pkg/config"
	"fieldbook/internal/pkg/errs"
	"fieldbook/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, h http.HandlerFunc) *remote.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	cfg := config.BackendConfig{URL: srv.URL + "/", Token: "svc-token", Timeout: 2 * time.Second}
	return remote.NewClient(cfg, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestClient(t *testing.T) {
	ctx := context.Background()

	t.Run("get listing sends the bearer token", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer svc-token", r.Header.Get("Authorization"))
			assert.Equal(t, "/api/fields/7", r.URL.Path)
			writeJSON(w, http.StatusOK, listing.Listing{ID: "7", Name: "Remote"})
		})

		l, err := c.GetListing(ctx, "7")
		require.NoError(t, err)
		assert.Equal(t, "Remote", l.Name)
	})

	t.Run("404 maps to not found", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusNotFound, map[string]any{"error": map[string]string{"message": "listing not found"}})
		})

		_, err := c.GetListing(ctx, "x")
		assert.ErrorIs(t, err, errs.ErrListingNotFound)
	})

	t.Run("owner bookings carry filters", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/owner/owner1/bookings", r.URL.Path)
			assert.Equal(t, "pending", r.URL.Query().Get("status"))
			assert.Equal(t, "price-low", r.URL.Query().Get("sort"))
			writeJSON(w, http.StatusOK, []any{})
		})

		list, err := c.GetOwnerBookings(ctx, "owner1", shared.OwnerBookingFilter{Status: "pending", Sort: shared.SortPriceLow})
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("verify posts the code", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "123456", body["verificationCode"])
			writeJSON(w, http.StatusOK, shared.VerifyResult{Verified: true, AttemptsLeft: 3})
		})

		res, err := c.VerifyBooking(ctx, "owner1", "b1", "123456")
		require.NoError(t, err)
		assert.True(t, res.Verified)
	})

	t.Run("locked", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusLocked, map[string]any{})
		})
		_, err := c.VerifyBooking(ctx, "owner1", "b1", "123456")
		assert.ErrorIs(t, err, errs.ErrVerificationLocked)
	})

	t.Run("promote unwraps the field", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/owner/owner1/fields/f1/promote", r.URL.Path)
			writeJSON(w, http.StatusOK, shared.PromoteResult{OK: true, Field: listing.Listing{ID: "f1", IsPromoted: true}})
		})
		f, err := c.PromoteField(ctx, "owner1", "f1", promotion.Request{PackageID: "1week"})
		require.NoError(t, err)
		assert.True(t, f.IsPromoted)
	})

	t.Run("server errors are remote failures", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusInternalServerError, map[string]any{"error": map[string]string{"message": "boom"}})
		})
		_, err := c.ListListings(ctx)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrBackendUnavailable))
		assert.True(t, infra.IsKind(err, infra.KindRemoteFailure))
	})

	t.Run("unreachable server", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()
		c := remote.NewClient(config.BackendConfig{URL: srv.URL, Timeout: time.Second}, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

		_, err := c.GetBookingsForUser(ctx, "u1")
		assert.True(t, errs.Is(err, errs.ErrBackendUnavailable))
	})
}
