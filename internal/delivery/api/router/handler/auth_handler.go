package handler

import (
	"log/slog"
	"net/http"

	"enginex/internal/delivery/api/response"
	"enginex/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC          usecase.AuthUsecase
	PasswordResetUC usecase.PasswordResetUsecase
	Logger          *slog.Logger
}

// AuthHandler serves account creation, sessions and password reset.
type AuthHandler struct {
	authUC          usecase.AuthUsecase
	passwordResetUC usecase.PasswordResetUsecase
	logger          *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:          params.AuthUC,
		passwordResetUC: params.PasswordResetUC,
		logger:          params.Logger,
	}
}

// RegisterRequest is the sign-up form.
type RegisterRequest struct {
	FullName string `json:"full_name" validate:"required,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Phone    string `json:"phone" validate:"omitempty,phone_ma"`
}

// LoginRequest is the sign-in form.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest carries the refresh token for rotation or revocation.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// PasswordResetRequest starts a reset.
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyCodeRequest checks an emailed code.
type VerifyCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,numeric"`
}

// ResetPasswordRequest completes a reset.
type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Code        string `json:"code" validate:"required,numeric"`
	NewPassword string `json:"new_password" validate:"required"`
}

// AuthResponse returns the token pair with the signed-in profile.
type AuthResponse struct {
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
	Profile      *ProfileResponse `json:"profile,omitempty"`
}

func toAuthResponse(out *usecase.AuthOutput) *AuthResponse {
	return &AuthResponse{
		AccessToken:  out.AccessToken,
		RefreshToken: out.RefreshToken,
		Profile:      toProfileResponse(out.Profile),
	}
}

// Register opens an account and signs it in.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, bindError(err))
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.authUC.Register(c.Request().Context(), &usecase.RegisterInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toAuthResponse(out))
}

// Login signs in with email and password.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, bindError(err))
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAuthResponse(out))
}

// RefreshToken rotates the refresh token and issues a new access token.
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req RefreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, bindError(err))
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.authUC.RefreshToken(c.Request().Context(), &usecase.RefreshTokenInput{RefreshToken: req.RefreshToken})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAuthResponse(out))
}

// Logout revokes a refresh token.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req RefreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, bindError(err))
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.authUC.Logout(c.Request().Context(), &usecase.LogoutInput{RefreshToken: req.RefreshToken}); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// RequestPasswordReset mails a reset code. The answer is the same whether or not the email is known.
func (h *AuthHandler) RequestPasswordReset(c echo.Context) error {
	var req PasswordResetRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, bindError(err))
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.passwordResetUC.RequestReset(c.Request().Context(), req.Email); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusAccepted)
}

// VerifyResetCode checks a reset code without consuming it.
func (h *AuthHandler) VerifyResetCode(c echo.Context) error {
	var req VerifyCodeRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, bindError(err))
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.passwordResetUC.VerifyCode(c.Request().Context(), req.Email, req.Code); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"valid": true})
}

// ResetPassword sets a new password with a valid code.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, bindError(err))
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	err := h.passwordResetUC.ResetPassword(c.Request().Context(), &usecase.ResetPasswordInput{
		Email:       req.Email,
		Code:        req.Code,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
