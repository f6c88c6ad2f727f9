//go:build unit || e2e

package authtest

import (
	"context"
	"testing"
	"time"

	"fieldbook/internal/domain/user"
	"fieldbook/internal/pkg/clock"
	"fieldbook/internal/pkg/config"
	"fieldbook/internal/pkg/jwt"
	"fieldbook/internal/usecase"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) Service() *jwt.Service {
	return jwt.NewService(h.cfg.Secret, h.cfg.Duration, clock.NewRealClock())
}

// GenerateToken signs a token for an arbitrary session id; the session itself is not stored.
func (h *JWTHelper) GenerateToken(t *testing.T, userID string, role user.Role, sessionID string) string {
	t.Helper()
	token, err := h.Service().GenerateToken(userID, role, sessionID)
	require.NoError(t, err)
	return token
}

// SignIn stores a session for u and returns a token bound to it.
func (h *JWTHelper) SignIn(t *testing.T, sessions usecase.SessionStore, u user.User) string {
	t.Helper()
	sid, err := sessions.Login(context.Background(), u)
	require.NoError(t, err)
	return h.GenerateToken(t, u.ID, u.Role, sid)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID string, role user.Role, sessionID string) string {
	t.Helper()
	past := clock.NewMockClock(time.Now().Add(-2 * time.Hour))
	service := jwt.NewService(h.cfg.Secret, time.Minute, past)
	token, err := service.GenerateToken(userID, role, sessionID)
	require.NoError(t, err)
	return token
}
