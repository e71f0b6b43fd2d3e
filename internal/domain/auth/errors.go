package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid admin credentials")
	ErrInvalidUnitPassword = errors.New("invalid unit password")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrTokenRevoked        = errors.New("token has been revoked")
)
