// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"enginex/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to open an account.
type RegisterInput struct {
	FullName string
	Email    string
	Password string
	Phone    string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshTokenInput carries the refresh token to rotate.
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput carries the refresh token to revoke.
type LogoutInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// AuthOutput returns the issued token pair and the signed-in profile.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
	Profile      *entity.Profile
}

// AuthUsecase defines the interface for account and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*AuthOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
}

// ResetPasswordInput completes a password reset.
type ResetPasswordInput struct {
	Email       string
	Code        string
	NewPassword string
}

// PasswordResetUsecase drives the emailed-code password reset flow.
type PasswordResetUsecase interface {
	// RequestReset mails a code when the email belongs to an account. Unknown emails succeed silently.
	RequestReset(ctx context.Context, email string) error
	// VerifyCode checks a code without consuming it.
	VerifyCode(ctx context.Context, email, code string) error
	// ResetPassword consumes the code, stores the new password and revokes every session.
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
}
