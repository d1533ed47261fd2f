package impl

import (
	"context"
	"log/slog"
	"time"

	"enginex/config"
	deliverycontext "enginex/internal/delivery/context"
	"enginex/internal/domain/entity"
	domainerrors "enginex/internal/domain/errors"
	"enginex/internal/domain/repository"
	"enginex/internal/domain/service"
	"enginex/internal/usecase"
	"enginex/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultResetCodeTTL    = 10 * time.Minute
	defaultResetCodeLength = 6
)

type passwordResetService struct {
	txManager     repository.TransactionManager
	profileRepo   repository.ProfileRepository
	resetCodeRepo repository.ResetCodeRepository
	hasher        service.PasswordHasher
	codes         service.CodeGenerator
	clock         service.Clock
	notifier      *notifier
	codeTTL       time.Duration
	codeLength    int
	logger        *slog.Logger
}

// PasswordResetServiceParams holds dependencies for PasswordResetService, injected by Fx.
type PasswordResetServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	ProfileRepo   repository.ProfileRepository
	ResetCodeRepo repository.ResetCodeRepository
	Hasher        service.PasswordHasher
	Codes         service.CodeGenerator
	Publisher     service.EventPublisher
	Clock         service.Clock
	Config        *config.Config
	Logger        *slog.Logger
}

// NewPasswordResetService is the constructor for passwordResetService.
func NewPasswordResetService(params PasswordResetServiceParams) usecase.PasswordResetUsecase {
	codeTTL, codeLength := defaultResetCodeTTL, defaultResetCodeLength
	if params.Config != nil && params.Config.Verification != nil {
		if params.Config.Verification.CodeTTL > 0 {
			codeTTL = params.Config.Verification.CodeTTL
		}
		if params.Config.Verification.CodeLength > 0 {
			codeLength = params.Config.Verification.CodeLength
		}
	}

	return &passwordResetService{
		txManager:     params.TxManager,
		profileRepo:   params.ProfileRepo,
		resetCodeRepo: params.ResetCodeRepo,
		hasher:        params.Hasher,
		codes:         params.Codes,
		clock:         params.Clock,
		notifier:      newNotifier(params.Publisher, params.Logger),
		codeTTL:       codeTTL,
		codeLength:    codeLength,
		logger:        params.Logger,
	}
}

func (srv *passwordResetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestReset stores a fresh single-use code and mails it.
func (srv *passwordResetService) RequestReset(ctx context.Context, email string) error {
	email = util.NormalizeEmail(email)
	if email == "" {
		return domainerrors.NewValidationError(domainerrors.FieldError{
			Field: "email", Rule: "required", Message: "email is required",
		})
	}

	profile, err := srv.profileRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			// Answer the same way for unknown addresses so accounts cannot be enumerated.
			srv.log(ctx).Debug("Password reset requested for unknown email")

			return nil
		}

		return errors.Wrap(err, "failed to find profile")
	}

	code, err := srv.codes.NumericCode(srv.codeLength)
	if err != nil {
		return errors.Wrap(err, "failed to generate reset code")
	}

	now := srv.clock.Now()
	resetCode := &entity.PasswordResetCode{
		Email:     profile.Email,
		Code:      code,
		ExpiresAt: now.Add(srv.codeTTL),
		CreatedAt: now,
	}
	if err := srv.resetCodeRepo.Create(ctx, resetCode); err != nil {
		return errors.Wrap(err, "failed to store reset code")
	}

	srv.notifier.email(ctx, service.EmailTemplatePasswordReset, profile.Email, map[string]string{
		"full_name": profile.FullName,
		"code":      code,
	})

	return nil
}

// VerifyCode reports ErrInvalidCode when no unused, unexpired code matches.
func (srv *passwordResetService) VerifyCode(ctx context.Context, email, code string) error {
	if _, err := srv.resetCodeRepo.FindUsable(ctx, util.NormalizeEmail(email), code, srv.clock.Now()); err != nil {
		return invalidCode(err)
	}

	return nil
}

// ResetPassword consumes the code, replaces the password and signs out every device.
func (srv *passwordResetService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	email := util.NormalizeEmail(input.Email)

	if err := srv.hasher.ValidateStrength(input.NewPassword); err != nil {
		return err
	}
	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		resetCodeRepo := repoFactory.ResetCodeRepo()

		resetCode, err := resetCodeRepo.FindUsable(ctx, email, input.Code, srv.clock.Now())
		if err != nil {
			return invalidCode(err)
		}
		if err := resetCodeRepo.MarkUsed(ctx, resetCode.ID); err != nil {
			return invalidCode(err)
		}

		profile, err := repoFactory.ProfileRepo().FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCode, "account no longer exists")
			}

			return errors.Wrap(err, "failed to find profile")
		}

		if err := repoFactory.AuthRepo().UpdatePasswordHash(ctx, profile.ID, hashedPassword); err != nil {
			return errors.Wrap(err, "failed to update password")
		}
		if err := repoFactory.RefreshTokenRepo().RevokeAllForUser(ctx, profile.ID); err != nil {
			return errors.Wrap(err, "failed to revoke sessions")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Password reset failed", slog.Any("error", err))

		return errors.Wrap(err, "failed to execute password reset transaction")
	}
	srv.log(ctx).Info("Password reset completed")

	return nil
}

func invalidCode(err error) error {
	if errors.Is(err, repository.ErrResetCodeNotFound) {
		return errors.Wrap(domainerrors.ErrInvalidCode, "code is invalid, expired or already used")
	}

	return errors.Wrap(err, "failed to check reset code")
}
