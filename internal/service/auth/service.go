package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/settings"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/pkg/validator"
	"golang.org/x/crypto/bcrypt"
)

// Credentials holds the configured login secrets in hashed form.
type Credentials struct {
	AdminUsername     string
	AdminPasswordHash []byte
	UnitPasswordHash  []byte
}

// NewCredentials hashes the plain secrets with bcrypt at the given cost.
func NewCredentials(adminUsername, adminPassword, unitPassword string, cost int) (Credentials, error) {
	adminHash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), cost)
	if err != nil {
		return Credentials{}, fmt.Errorf("failed to hash admin password: %w", err)
	}
	unitHash, err := bcrypt.GenerateFromPassword([]byte(unitPassword), cost)
	if err != nil {
		return Credentials{}, fmt.Errorf("failed to hash unit password: %w", err)
	}
	return Credentials{
		AdminUsername:     adminUsername,
		AdminPasswordHash: adminHash,
		UnitPasswordHash:  unitHash,
	}, nil
}

type AuthServiceImpl struct {
	jwt.Service
	credentials Credentials
}

func NewAuthService(jwtService jwt.Service, credentials Credentials) auth.AuthService {
	return &AuthServiceImpl{
		Service:     jwtService,
		credentials: credentials,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	var principal user.User
	switch req.Mode {
	case auth.LoginModeAdmin:
		usernameOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(a.credentials.AdminUsername)) == 1
		passwordErr := bcrypt.CompareHashAndPassword(a.credentials.AdminPasswordHash, []byte(req.Password))
		if !usernameOK || passwordErr != nil {
			slog.Warn("Admin login rejected", "username", req.Username)
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		principal = user.User{Username: req.Username, Role: user.RoleAdmin, UnitCode: settings.AllUnits}

	default:
		if !settings.IsKnownUnit(req.UnitCode) {
			return auth.TokenResponse{}, validator.New("unit_code", employee.ErrUnknownUnit.Error())
		}
		if err := bcrypt.CompareHashAndPassword(a.credentials.UnitPasswordHash, []byte(req.Password)); err != nil {
			slog.Warn("Unit login rejected", "unit", req.UnitCode)
			return auth.TokenResponse{}, auth.ErrInvalidUnitPassword
		}
		principal = user.User{Username: req.UnitCode, Role: user.RoleUnitHead, UnitCode: req.UnitCode}
	}

	token, expiresAt, err := a.Service.GenerateAccessToken(principal)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	slog.Info("User logged in", "role", principal.Role, "unit", principal.UnitCode)
	return auth.TokenResponse{
		AccessToken:          token,
		AccessTokenExpiresIn: expiresAt,
		User:                 principal,
	}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, tokenID string, expiresAt int64) error {
	if tokenID == "" {
		return auth.ErrInvalidToken
	}
	a.Service.RevokeToken(tokenID, expiresAt)
	return nil
}
