package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"enginex/internal/domain/entity"
	domainerrors "enginex/internal/domain/errors"
	mockUc "enginex/internal/mocks/usecase"
	"enginex/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authHandlerFixtures struct {
	handler *AuthHandler
	authUC  *mockUc.MockAuthUsecase
	resetUC *mockUc.MockPasswordResetUsecase
}

func createTestAuthHandler(t *testing.T) authHandlerFixtures {
	fx := authHandlerFixtures{
		authUC:  mockUc.NewMockAuthUsecase(t),
		resetUC: mockUc.NewMockPasswordResetUsecase(t),
	}
	fx.handler = NewAuthHandler(AuthHandlerParams{
		AuthUC:          fx.authUC,
		PasswordResetUC: fx.resetUC,
		Logger:          newDiscardLogger(),
	})

	return fx
}

func TestAuthHandler_Register(t *testing.T) {
	fx := createTestAuthHandler(t)
	c, rec := newTestContext(http.MethodPost, "/api/v1/auth/register",
		`{"full_name":"Karim Agri","email":"karim@example.ma","password":"S3cure!pass","phone":"+212612345678"}`)
	profile := &entity.Profile{ID: uuid.New(), FullName: "Karim Agri", Email: "karim@example.ma", AccountType: entity.AccountTypeIndividual}

	fx.authUC.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{
			FullName: "Karim Agri",
			Email:    "karim@example.ma",
			Password: "S3cure!pass",
			Phone:    "+212612345678",
		}).
		Return(&usecase.AuthOutput{AccessToken: "access", RefreshToken: "refresh", Profile: profile}, nil)

	require.NoError(t, fx.handler.Register(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var got AuthResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
	assert.Equal(t, "access", got.AccessToken)
	assert.Equal(t, "refresh", got.RefreshToken)
	require.NotNil(t, got.Profile)
	assert.Equal(t, profile.ID, got.Profile.ID)
}

func TestAuthHandler_Register_Conflict(t *testing.T) {
	fx := createTestAuthHandler(t)
	c, rec := newTestContext(http.MethodPost, "/api/v1/auth/register",
		`{"full_name":"Karim","email":"karim@example.ma","password":"S3cure!pass"}`)

	fx.authUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists)

	require.NoError(t, fx.handler.Register(c))

	assert.Equal(t, domainerrors.ErrUserAlreadyExists.HTTPCode(), rec.Code)
	assert.Equal(t, "USER_ALREADY_EXISTS", decodeEnvelope(t, rec).Error.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(fx authHandlerFixtures)
		wantStatus int
	}{
		{
			name: "success",
			body: `{"email":"karim@example.ma","password":"S3cure!pass"}`,
			setup: func(fx authHandlerFixtures) {
				fx.authUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "karim@example.ma", Password: "S3cure!pass"}).
					Return(&usecase.AuthOutput{AccessToken: "a", RefreshToken: "r"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "wrong password",
			body: `{"email":"karim@example.ma","password":"nope"}`,
			setup: func(fx authHandlerFixtures) {
				fx.authUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)
			},
			wantStatus: domainerrors.ErrInvalidCredentials.HTTPCode(),
		},
		{
			name:       "invalid email",
			body:       `{"email":"karim","password":"x"}`,
			setup:      func(authHandlerFixtures) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed body",
			body:       `{"email":`,
			setup:      func(authHandlerFixtures) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthHandler(t)
			tt.setup(fx)
			c, rec := newTestContext(http.MethodPost, "/api/v1/auth/login", tt.body)

			require.NoError(t, fx.handler.Login(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	fx := createTestAuthHandler(t)
	c, rec := newTestContext(http.MethodPost, "/api/v1/auth/logout", `{"refresh_token":"r-1"}`)

	fx.authUC.EXPECT().Logout(mock.Anything, &usecase.LogoutInput{RefreshToken: "r-1"}).Return(nil)

	require.NoError(t, fx.handler.Logout(c))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuthHandler_PasswordReset(t *testing.T) {
	t.Run("request is accepted", func(t *testing.T) {
		fx := createTestAuthHandler(t)
		c, rec := newTestContext(http.MethodPost, "/api/v1/auth/password/forgot", `{"email":"karim@example.ma"}`)
		fx.resetUC.EXPECT().RequestReset(mock.Anything, "karim@example.ma").Return(nil)

		require.NoError(t, fx.handler.RequestPasswordReset(c))

		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("verify rejects a bad code", func(t *testing.T) {
		fx := createTestAuthHandler(t)
		c, rec := newTestContext(http.MethodPost, "/api/v1/auth/password/verify", `{"email":"karim@example.ma","code":"000000"}`)
		fx.resetUC.EXPECT().VerifyCode(mock.Anything, "karim@example.ma", "000000").Return(domainerrors.ErrInvalidCode)

		require.NoError(t, fx.handler.VerifyResetCode(c))

		assert.Equal(t, domainerrors.ErrInvalidCode.HTTPCode(), rec.Code)
	})

	t.Run("reset", func(t *testing.T) {
		fx := createTestAuthHandler(t)
		c, rec := newTestContext(http.MethodPost, "/api/v1/auth/password/reset",
			`{"email":"karim@example.ma","code":"482913","new_password":"N3w!password"}`)
		fx.resetUC.EXPECT().
			ResetPassword(mock.Anything, &usecase.ResetPasswordInput{Email: "karim@example.ma", Code: "482913", NewPassword: "N3w!password"}).
			Return(nil)

		require.NoError(t, fx.handler.ResetPassword(c))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("code must be numeric", func(t *testing.T) {
		fx := createTestAuthHandler(t)
		c, rec := newTestContext(http.MethodPost, "/api/v1/auth/password/reset",
			`{"email":"karim@example.ma","code":"abc","new_password":"N3w!password"}`)

		require.NoError(t, fx.handler.ResetPassword(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
