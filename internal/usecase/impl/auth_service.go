package impl

import (
	"context"
	"log/slog"
	"strings"

	"enginex/config"
	deliverycontext "enginex/internal/delivery/context"
	"enginex/internal/domain/entity"
	domainerrors "enginex/internal/domain/errors"
	"enginex/internal/domain/repository"
	"enginex/internal/domain/service"
	"enginex/internal/usecase"
	"enginex/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager         repository.TransactionManager
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	clock             service.Clock
	notifier          *notifier
	maxActiveSessions int
	logger            *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Publisher        service.EventPublisher
	Clock            service.Clock
	Config           *config.Config
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	return &authService{
		txManager:         params.TxManager,
		refreshTokenRepo:  params.RefreshTokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		clock:             params.Clock,
		notifier:          newNotifier(params.Publisher, params.Logger),
		maxActiveSessions: maxActiveSessions,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func validateRegistration(input *usecase.RegisterInput) error {
	var fields domainerrors.FieldErrors
	if input.FullName == "" {
		fields.Add("full_name", "required", "full name is required")
	}
	if input.Email == "" {
		fields.Add("email", "required", "email is required")
	} else if !strings.Contains(input.Email, "@") {
		fields.Add("email", "email", "email is not valid")
	}
	if input.Password == "" {
		fields.Add("password", "required", "password is required")
	}

	return fields.Err()
}

// Register opens a free individual account and signs it in.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	input.FullName = strings.TrimSpace(input.FullName)
	input.Email = util.NormalizeEmail(input.Email)
	if err := validateRegistration(input); err != nil {
		return nil, err
	}

	if err := srv.hasher.ValidateStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", input.Email))

		return nil, err
	}

	// bcrypt is CPU-bound, keep it outside the transaction.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	var output *usecase.AuthOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.AuthRepo()

		_, err := authRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		}
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find authentication")
		}

		profile := &entity.Profile{
			FullName:         input.FullName,
			Email:            input.Email,
			Phone:            util.NormalizePhone(input.Phone),
			AccountType:      entity.AccountTypeIndividual,
			AccountTypeLabel: entity.LabelIndividual,
		}
		if err := repoFactory.ProfileRepo().Create(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to create profile during registration")
		}

		newAuth := &entity.Authentication{
			UserID:         profile.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: input.Email,
			PasswordHash:   hashedPassword,
		}
		if err := authRepo.Create(ctx, newAuth); err != nil {
			return errors.Wrap(err, "failed to create authentication during registration")
		}

		output, err = srv.issueTokens(ctx, repoFactory.RefreshTokenRepo(), profile)

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", output.Profile.ID))
	srv.notifier.email(ctx, service.EmailTemplateRegistration, output.Profile.Email, map[string]string{
		"full_name": output.Profile.FullName,
	})

	return output, nil
}

// Login orchestrates the user login process.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := util.NormalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting user login", slog.String("email", email))

	authRecord, err := srv.loadLoginAuth(ctx, email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	// Check password outside transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	var output *usecase.AuthOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profile, err := repoFactory.ProfileRepo().FindByID(ctx, authRecord.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find profile")
		}

		if err := srv.checkSessionLimit(ctx, repoFactory, profile.ID); err != nil {
			return err
		}

		output, err = srv.issueTokens(ctx, repoFactory.RefreshTokenRepo(), profile)

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute login transaction")
	}
	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", output.Profile.ID))

	return output, nil
}

func (srv *authService) loadLoginAuth(ctx context.Context, email string) (*entity.Authentication, error) {
	var authRecord *entity.Authentication

	// Load authentication from primary in a short transaction to avoid stale reads on replicas.
	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findAuthErr error
		authRecord, findAuthErr = repoFactory.AuthRepo().FindByEmail(ctx, email)
		if findAuthErr != nil {
			if errors.Is(findAuthErr, repository.ErrAuthNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
			}

			return errors.Wrap(findAuthErr, "failed to find authentication")
		}

		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "failed to execute login auth transaction")
	}

	return authRecord, nil
}

// checkSessionLimit locks the profile row so concurrent logins cannot both pass the count.
func (srv *authService) checkSessionLimit(ctx context.Context, repoFactory repository.RepositoryFactory, userID uuid.UUID) error {
	if srv.maxActiveSessions <= 0 {
		return nil
	}

	if err := repoFactory.ProfileRepo().AcquireSessionMutex(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to lock profile row for session limit check")
	}

	activeSessions, err := repoFactory.RefreshTokenRepo().CountActive(ctx, userID, srv.clock.Now())
	if err != nil {
		return errors.Wrap(err, "failed to count active sessions")
	}
	if activeSessions >= srv.maxActiveSessions {
		return errors.Wrap(domainerrors.ErrSessionLimitExceeded, "active session limit exceeded")
	}

	return nil
}

// issueTokens signs a token pair carrying the profile roles and stores the refresh token hash.
func (srv *authService) issueTokens(ctx context.Context, refreshRepo repository.RefreshTokenRepository, profile *entity.Profile) (*usecase.AuthOutput, error) {
	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(profile.ID, profile.Roles().Claims())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	newRefreshToken := &entity.RefreshToken{
		UserID:    profile.ID,
		TokenHash: srv.tokenService.HashToken(refreshTokenString),
		ExpiresAt: srv.clock.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}
	if err := refreshRepo.Store(ctx, newRefreshToken); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		Profile:      profile,
	}, nil
}

// RefreshToken rotates the session: the presented refresh token is revoked and a new pair is issued.
// Roles are reloaded so a granted or removed admin flag takes effect on refresh.
func (srv *authService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.AuthOutput, error) {
	claims, err := srv.tokenService.ValidateToken(input.RefreshToken)
	if err != nil || claims.Type != service.TokenTypeRefresh {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "invalid refresh token")
	}

	var output *usecase.AuthOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()
		tokenHash := srv.tokenService.HashToken(input.RefreshToken)

		stored, err := refreshRepo.FindByHash(ctx, tokenHash)
		if err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token revoked")
			}

			return errors.Wrap(err, "failed to find refresh token")
		}
		if stored.UserID != claims.UserID || !stored.Live(srv.clock.Now()) {
			return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token expired")
		}

		profile, err := repoFactory.ProfileRepo().FindByID(ctx, claims.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find profile")
		}

		if err := refreshRepo.Revoke(ctx, tokenHash); err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				// lost a race with a concurrent refresh of the same token
				return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token already rotated")
			}

			return errors.Wrap(err, "failed to revoke refresh token")
		}

		output, err = srv.issueTokens(ctx, refreshRepo, profile)

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute refresh token transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute refresh token transaction")
	}

	return output, nil
}

// Logout handles the process of invalidating a user's session by deleting their refresh token.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	if _, err := srv.tokenService.ValidateToken(input.RefreshToken); err != nil {
		// Even if the token is invalid, we can proceed to delete it from the database.
		srv.log(ctx).Debug("Logout with invalid token", slog.Any("error", err))
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)
	if err := srv.refreshTokenRepo.Revoke(ctx, tokenHash); err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}
	srv.log(ctx).Info("Successfully logged out")

	return nil
}
