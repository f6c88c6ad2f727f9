//go:build unit

package session_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"fieldbook/internal/domain/user"
	"fieldbook/internal/infra/storage"
	"fieldbook/internal/pkg/errs"
	"fieldbook/internal/pkg/idgen"
	"fieldbook/internal/usecase/session"
	"fieldbook/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(blobs storage.BlobStore) *session.Store {
	return session.NewStore(blobs, idgen.NewSequence("sid"), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestStore_LoginCurrentLogout(t *testing.T) {
	ctx := context.Background()
	blobs := storage.NewMemoryStore()
	store := newStore(blobs)
	u := *builder.NewUserBuilder().MustBuild()

	sid, err := store.Login(ctx, u)
	require.NoError(t, err)
	assert.Equal(t, "sid1", sid)

	got, err := newStore(blobs).Current(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, u, got)

	require.NoError(t, store.Logout(ctx, sid))
	_, err = store.Current(ctx, sid)
	assert.ErrorIs(t, err, errs.ErrSessionNotFound)

	// logging out twice is harmless
	assert.NoError(t, store.Logout(ctx, sid))
}

func TestStore_UnknownOrCorruptSession(t *testing.T) {
	ctx := context.Background()
	blobs := storage.NewMemoryStore()
	store := newStore(blobs)

	_, err := store.Current(ctx, "")
	assert.ErrorIs(t, err, errs.ErrSessionNotFound)

	_, err = store.Current(ctx, "nope")
	assert.ErrorIs(t, err, errs.ErrSessionNotFound)

	require.NoError(t, blobs.Save(ctx, session.Key("bad"), []byte("not json")))
	_, err = store.Current(ctx, "bad")
	assert.ErrorIs(t, err, errs.ErrSessionNotFound)
}

func TestAuthorize(t *testing.T) {
	renter := builder.NewUserBuilder().MustBuild()
	owner := builder.NewUserBuilder().AsOwner().MustBuild()

	cases := []struct {
		name     string
		identity *user.User
		access   session.Access
		want     session.Decision
		status   int
	}{
		{name: "public for anyone", identity: nil, access: session.AccessPublic, want: session.Allow, status: http.StatusOK},
		{name: "authenticated without identity", identity: nil, access: session.AccessAuthenticated, want: session.RedirectLogin, status: http.StatusUnauthorized},
		{name: "authenticated renter", identity: renter, access: session.AccessAuthenticated, want: session.Allow, status: http.StatusOK},
		{name: "owner route without identity", identity: nil, access: session.AccessOwner, want: session.RedirectLogin, status: http.StatusUnauthorized},
		{name: "owner route for renter", identity: renter, access: session.AccessOwner, want: session.RedirectHome, status: http.StatusForbidden},
		{name: "owner route for owner", identity: owner, access: session.AccessOwner, want: session.Allow, status: http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := session.Authorize(tc.identity, tc.access)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.status, got.HTTPStatus())
		})
	}
}
