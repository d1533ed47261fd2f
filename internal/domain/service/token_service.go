package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims is the payload of both token types. UserID is restored from the subject.
type Claims struct {
	UserID uuid.UUID `json:"-"`
	Roles  []string  `json:"roles,omitempty"`
	Type   string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies the signed session tokens.
type TokenService interface {
	// GenerateTokens issues an access/refresh pair signed with separate secrets.
	GenerateTokens(userID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error)

	// ValidateToken verifies signature and expiry. The caller checks Claims.Type.
	ValidateToken(tokenString string) (*Claims, error)

	// HashToken returns the digest under which a refresh token is stored.
	HashToken(token string) string

	GetRefreshTokenDuration() time.Duration
}
