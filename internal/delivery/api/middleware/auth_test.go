package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "enginex/internal/delivery/context"
	"enginex/internal/domain/entity"
	domainerrors "enginex/internal/domain/errors"
	"enginex/internal/domain/service"
	mockSvc "enginex/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthContext(authorization string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}

	return echo.New().NewContext(req, httptest.NewRecorder())
}

// captureSession is a terminal handler that records the session it saw.
func captureSession(got **entity.Session) echo.HandlerFunc {
	return func(c echo.Context) error {
		*got = deliverycontext.GetSession(c)

		return c.NoContent(http.StatusOK)
	}
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name        string
		header      string
		setup       func(tokens *mockSvc.MockTokenService)
		wantErr     bool
		wantSession bool
	}{
		{
			name:    "missing header",
			wantErr: true,
		},
		{
			name:    "not a bearer token",
			header:  "Basic a2FyaW06cGFzcw==",
			wantErr: true,
		},
		{
			name:   "invalid token",
			header: "Bearer broken",
			setup: func(tokens *mockSvc.MockTokenService) {
				tokens.EXPECT().ValidateToken("broken").Return(nil, errors.New("signature is invalid"))
			},
			wantErr: true,
		},
		{
			name:   "refresh token used as access token",
			header: "Bearer refresh",
			setup: func(tokens *mockSvc.MockTokenService) {
				tokens.EXPECT().ValidateToken("refresh").Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)
			},
			wantErr: true,
		},
		{
			name:   "valid access token",
			header: "Bearer access",
			setup: func(tokens *mockSvc.MockTokenService) {
				tokens.EXPECT().ValidateToken("access").
					Return(&service.Claims{UserID: userID, Roles: []string{"user", "admin"}, Type: service.TokenTypeAccess}, nil)
			},
			wantSession: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mockSvc.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokens)
			}
			m := NewAuthMiddleware(AuthMiddlewareParams{TokenService: tokens})

			var session *entity.Session
			err := m.Authenticate(captureSession(&session))(newAuthContext(tt.header))

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
				assert.Nil(t, session)

				return
			}
			require.NoError(t, err)
			require.NotNil(t, session)
			assert.Equal(t, userID, session.UserID)
			assert.True(t, session.IsAdmin())
		})
	}
}

func TestAuthMiddleware_OptionalAuthenticate(t *testing.T) {
	t.Run("anonymous passes through", func(t *testing.T) {
		m := NewAuthMiddleware(AuthMiddlewareParams{TokenService: mockSvc.NewMockTokenService(t)})

		var session *entity.Session
		require.NoError(t, m.OptionalAuthenticate(captureSession(&session))(newAuthContext("")))

		assert.Nil(t, session)
	})

	t.Run("expired token is still rejected", func(t *testing.T) {
		tokens := mockSvc.NewMockTokenService(t)
		tokens.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))
		m := NewAuthMiddleware(AuthMiddlewareParams{TokenService: tokens})

		var session *entity.Session
		err := m.OptionalAuthenticate(captureSession(&session))(newAuthContext("Bearer expired"))

		assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
	})
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(AuthMiddlewareParams{TokenService: mockSvc.NewMockTokenService(t)})
	requireAdmin := m.RequireRole(entity.RoleAdmin)
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	t.Run("anonymous", func(t *testing.T) {
		err := requireAdmin(next)(newAuthContext(""))

		assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
	})

	t.Run("plain user", func(t *testing.T) {
		c := newAuthContext("")
		deliverycontext.SetSession(c, &entity.Session{UserID: uuid.New(), Roles: entity.Roles{entity.RoleUser}})

		err := requireAdmin(next)(c)

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("admin", func(t *testing.T) {
		c := newAuthContext("")
		deliverycontext.SetSession(c, &entity.Session{UserID: uuid.New(), Roles: entity.Roles{entity.RoleAdmin}})

		assert.NoError(t, requireAdmin(next)(c))
	})
}

func TestCurrentUserID(t *testing.T) {
	c := newAuthContext("")
	_, ok := CurrentUserID(c)
	assert.False(t, ok)

	userID := uuid.New()
	deliverycontext.SetSession(c, &entity.Session{UserID: userID})
	got, ok := CurrentUserID(c)
	assert.True(t, ok)
	assert.Equal(t, userID, got)
}
