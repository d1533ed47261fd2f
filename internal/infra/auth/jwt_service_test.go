package auth

import (
	"testing"
	"time"

	"enginex/config"
	"enginex/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWTTestConfig(access, refresh string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = access
	cfg.SecretKey.Refresh = refresh
	cfg.Env.ServiceName = "enginex-test"

	return cfg
}

func newTestJWTService(t *testing.T) service.TokenService {
	t.Helper()

	svc, err := NewJWTService(newJWTTestConfig(
		"test_access_secret_key_very_long_for_testing",
		"test_refresh_secret_key_very_long_for_testing",
	))
	require.NoError(t, err)

	return svc
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService := newTestJWTService(t)

	userID := uuid.New()
	roles := []string{"user", "admin"}

	accessToken, refreshToken, err := jwtService.GenerateTokens(userID, roles)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	accessClaims, err := jwtService.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, roles, accessClaims.Roles)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)

	refreshClaims, err := jwtService.ValidateToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Nil(t, refreshClaims.Roles)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService := newTestJWTService(t)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_RejectsTokenSignedWithOtherSecret(t *testing.T) {
	jwtService := newTestJWTService(t)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, service.Claims{
		Roles: []string{"admin"},
		Type:  service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := forged.SignedString([]byte("attacker"))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(signed)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	jwtService := newTestJWTService(t)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, service.Claims{
		Type: service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	signed, err := expired.SignedString([]byte("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(signed)
	assert.Error(t, err)
}

func TestJWTService_UnknownTokenType(t *testing.T) {
	jwtService := newTestJWTService(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, service.Claims{
		Type:             "session",
		RegisteredClaims: jwt.RegisteredClaims{Subject: uuid.NewString()},
	})
	signed, err := token.SignedString([]byte("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(signed)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	jwtService, err := NewJWTService(newJWTTestConfig("", ""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_HashToken(t *testing.T) {
	jwtService := newTestJWTService(t)

	hash := jwtService.HashToken("refresh-token")
	assert.Len(t, hash, 64)
	assert.Equal(t, hash, jwtService.HashToken("refresh-token"))
	assert.NotEqual(t, hash, jwtService.HashToken("other-token"))
}

func TestJWTService_GetRefreshTokenDuration(t *testing.T) {
	jwtService := newTestJWTService(t)

	assert.Equal(t, 7*24*time.Hour, jwtService.GetRefreshTokenDuration())
}
