package jwt

import (
	"sync"
	"time"

	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

type Service interface {
	GenerateAccessToken(u user.User) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	RevokeToken(tokenID string, expiresAt int64)
	IsTokenRevoked(tokenID string) bool
}

type JWTService struct {
	secretKey                 string
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
	revokedTokens             map[string]int64
	mu                        sync.RWMutex
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                 secretKey,
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:             make(map[string]int64),
	}
}

func (j *JWTService) GenerateAccessToken(u user.User) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	now := time.Now()
	expiresAt = now.Add(expDuration).Unix()

	claims := map[string]interface{}{
		"jti":       uuid.NewString(),
		"username":  u.Username,
		"role":      string(u.Role),
		"unit_code": u.UnitCode,
		"type":      "access",
		"iat":       now.Unix(),
		"exp":       expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// RevokeToken blocks a token id until its expiry. Expired entries are pruned
// on each call.
func (j *JWTService) RevokeToken(tokenID string, expiresAt int64) {
	j.mu.Lock()
	defer j.mu.Unlock()

	now := time.Now().Unix()
	for id, exp := range j.revokedTokens {
		if exp < now {
			delete(j.revokedTokens, id)
		}
	}
	j.revokedTokens[tokenID] = expiresAt
}

func (j *JWTService) IsTokenRevoked(tokenID string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[tokenID]
	return revoked
}

// UserFromClaims rebuilds the principal from access token claims.
func UserFromClaims(claims map[string]interface{}) (user.User, error) {
	role, _ := claims["role"].(string)
	unitCode, _ := claims["unit_code"].(string)
	username, _ := claims["username"].(string)

	u := user.User{Username: username, Role: user.Role(role), UnitCode: unitCode}
	switch u.Role {
	case user.RoleAdmin, user.RoleUnitHead:
	default:
		return user.User{}, user.ErrInvalidRole
	}
	if unitCode == "" {
		return user.User{}, jwt.ErrInvalidJWT()
	}
	return u, nil
}

// TokenID returns the jti and exp claims of a token.
func TokenID(claims map[string]interface{}) (string, int64) {
	id, _ := claims["jti"].(string)

	var exp int64
	switch v := claims["exp"].(type) {
	case time.Time:
		exp = v.Unix()
	case float64:
		exp = int64(v)
	case int64:
		exp = v
	}
	return id, exp
}
