// Package middleware holds the API-specific echo middleware: authentication and error rendering.
package middleware

import (
	"strings"

	deliverycontext "enginex/internal/delivery/context"
	"enginex/internal/domain/entity"
	domainerrors "enginex/internal/domain/errors"
	"enginex/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
}

// AuthMiddleware validates access tokens and stores the caller's *entity.Session on the echo context.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: params.TokenService}
}

// Authenticate rejects requests without a valid access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return domainerrors.ErrUnauthenticated.WrapMessage("authorization header is missing")
		}

		session, err := m.sessionFromHeader(header)
		if err != nil {
			return err
		}
		deliverycontext.SetSession(c, session)

		return next(c)
	}
}

// OptionalAuthenticate attaches a session when a valid token is sent and lets anonymous requests through.
// A malformed or expired token is still rejected so clients notice they were signed out.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return next(c)
		}

		session, err := m.sessionFromHeader(header)
		if err != nil {
			return err
		}
		deliverycontext.SetSession(c, session)

		return next(c)
	}
}

// RequireRole must run after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session := deliverycontext.GetSession(c)
			if !session.IsAuthenticated() {
				return domainerrors.ErrUnauthenticated
			}
			if !session.Roles.Contains(role) {
				return domainerrors.ErrForbidden.WrapMessage("missing role " + string(role))
			}

			return next(c)
		}
	}
}

func (m *AuthMiddleware) sessionFromHeader(header string) (*entity.Session, error) {
	token, found := strings.CutPrefix(header, bearerPrefix)
	if !found || token == "" {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("authorization header must be a bearer token")
	}

	claims, err := m.tokenSvc.ValidateToken(token)
	if err != nil {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("invalid or expired token")
	}
	if claims.Type != service.TokenTypeAccess || claims.UserID == uuid.Nil {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("not an access token")
	}

	return &entity.Session{
		UserID: claims.UserID,
		Roles:  entity.ParseRoles(claims.Roles),
	}, nil
}

// CurrentUserID returns the authenticated user's ID. Handlers behind Authenticate can rely on ok being true.
func CurrentUserID(c echo.Context) (uuid.UUID, bool) {
	session := deliverycontext.GetSession(c)
	if !session.IsAuthenticated() {
		return uuid.Nil, false
	}

	return session.UserID, true
}
