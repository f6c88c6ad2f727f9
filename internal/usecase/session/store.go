// Package session keeps the signed-in identity of each session in durable
// storage and decides which routes an identity may reach.
package session

import (
	"context"
	"log/slog"

	"fieldbook/internal/domain/user"
	"fieldbook/internal/infra/storage"
	"fieldbook/internal/pkg/errs"
	"fieldbook/internal/pkg/idgen"
)

const keyPrefix = "session:"

func Key(sessionID string) string {
	return keyPrefix + sessionID
}

// Store maps a session id to at most one identity.
type Store struct {
	blobs  storage.BlobStore
	ids    idgen.Generator
	logger *slog.Logger
}

func NewStore(blobs storage.BlobStore, ids idgen.Generator, logger *slog.Logger) *Store {
	return &Store{blobs: blobs, ids: ids, logger: logger}
}

func (s *Store) Login(ctx context.Context, u user.User) (string, error) {
	sessionID := s.ids.NewID()
	if err := storage.SaveJSON(ctx, s.blobs, Key(sessionID), u); err != nil {
		return "", errs.Wrap(err, "failed to persist session")
	}
	s.logger.Info("session started", "session_id", sessionID, "user_id", u.ID, "role", u.Role)
	return sessionID, nil
}

// Current returns the identity of a session. Unknown or unreadable sessions
// are reported as ErrSessionNotFound.
func (s *Store) Current(ctx context.Context, sessionID string) (user.User, error) {
	if sessionID == "" {
		return user.User{}, errs.ErrSessionNotFound
	}
	var u user.User
	found, err := storage.LoadJSON(ctx, s.blobs, Key(sessionID), &u)
	if err != nil {
		s.logger.Warn("unreadable session", "session_id", sessionID, "error", err)
		return user.User{}, errs.ErrSessionNotFound
	}
	if !found || u.ID == "" {
		return user.User{}, errs.ErrSessionNotFound
	}
	return u, nil
}

func (s *Store) Logout(ctx context.Context, sessionID string) error {
	if err := s.blobs.Delete(ctx, Key(sessionID)); err != nil && !storage.IsNotFound(err) {
		return errs.Wrap(err, "failed to clear session")
	}
	s.logger.Info("session ended", "session_id", sessionID)
	return nil
}
