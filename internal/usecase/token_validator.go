package usecase

import (
	"context"

	"fieldbook/internal/domain/user"
	"fieldbook/internal/pkg/errs"
	"fieldbook/internal/pkg/jwt"
)

// Principal is the identity behind a request together with its session.
type Principal struct {
	User      user.User
	SessionID string
}

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	Authenticate(ctx context.Context, tokenString string) (Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
	sessions   SessionStore
}

func NewTokenValidator(jwtService *jwt.Service, sessions SessionStore) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
		sessions:   sessions,
	}
}

// Authenticate accepts a token only while its session still holds the same
// user, so logging out revokes every token issued for the session.
func (t *tokenValidatorImpl) Authenticate(ctx context.Context, tokenString string) (Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return Principal{}, errs.Mark(err, ErrTokenValidation)
	}

	u, err := t.sessions.Current(ctx, claims.SessionID)
	if err != nil {
		return Principal{}, errs.Mark(err, ErrTokenValidation)
	}
	if u.ID != claims.UserID {
		return Principal{}, ErrTokenValidation
	}
	return Principal{User: u, SessionID: claims.SessionID}, nil
}
