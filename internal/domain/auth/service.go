package auth

import (
	"context"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	// Logout revokes the access token identified by tokenID until it expires
	Logout(ctx context.Context, tokenID string, expiresAt int64) error
}
