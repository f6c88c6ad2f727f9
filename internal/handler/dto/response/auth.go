package response

import (
	"time"

	"fieldbook/internal/domain/user"
	"fieldbook/internal/usecase"
)

type AuthResponse struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
	User        user.User `json:"user"`
}

func FromAuthResult(r *usecase.AuthResult) AuthResponse {
	return AuthResponse{
		AccessToken: r.Token,
		ExpiresAt:   r.ExpiresAt,
		User:        r.User,
	}
}
