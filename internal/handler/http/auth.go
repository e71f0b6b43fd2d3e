package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
}

// currentUser reads the principal verified by jwtauth.Verifier.
func currentUser(r *http.Request) (user.User, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return user.User{}, auth.ErrInvalidToken
	}
	return jwt.UserFromClaims(claims)
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := loginReq.Validate(); err != nil {
		slog.Error("Login validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	tokenResponse, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Error("Login service error", "error", err, "mode", loginReq.Mode)
		response.HandleError(w, err)
		return
	}

	slog.Info("User logged in successfully", "username", tokenResponse.User.Username, "role", tokenResponse.User.Role)
	response.Created(w, "User logged in successfully", tokenResponse)
}

// Logout implements AuthHandler.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	tokenID, expiresAt := jwt.TokenID(claims)
	if err := a.authService.Logout(r.Context(), tokenID, expiresAt); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User logged out successfully", nil)
}

// Me implements AuthHandler.
func (a *AuthHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	u, err := currentUser(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, u)
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		authService: authService,
	}
}
