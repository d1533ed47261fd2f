package impl

import (
	"context"
	"testing"
	"time"

	"enginex/internal/domain/entity"
	domainerrors "enginex/internal/domain/errors"
	"enginex/internal/domain/repository"
	"enginex/internal/domain/service"
	mockRepo "enginex/internal/mocks/repository"
	mockSvc "enginex/internal/mocks/service"
	"enginex/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service          usecase.AuthUsecase
	txManager        *mockRepo.MockTransactionManager
	factory          *mockRepo.MockRepositoryFactory
	authRepo         *mockRepo.MockAuthRepository
	profileRepo      *mockRepo.MockProfileRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
	publisher        *mockSvc.MockEventPublisher
}

func createTestAuthService(t *testing.T, maxActiveSessions int) authServiceFixtures {
	fx := authServiceFixtures{
		txManager:        mockRepo.NewMockTransactionManager(t),
		factory:          mockRepo.NewMockRepositoryFactory(t),
		authRepo:         mockRepo.NewMockAuthRepository(t),
		profileRepo:      mockRepo.NewMockProfileRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		hasher:           mockSvc.NewMockPasswordHasher(t),
		tokenService:     mockSvc.NewMockTokenService(t),
		publisher:        mockSvc.NewMockEventPublisher(t),
	}

	fx.factory.EXPECT().AuthRepo().Return(fx.authRepo).Maybe()
	fx.factory.EXPECT().ProfileRepo().Return(fx.profileRepo).Maybe()
	fx.factory.EXPECT().RefreshTokenRepo().Return(fx.refreshTokenRepo).Maybe()

	fx.service = NewAuthService(AuthServiceParams{
		TxManager:        fx.txManager,
		RefreshTokenRepo: fx.refreshTokenRepo,
		Hasher:           fx.hasher,
		TokenService:     fx.tokenService,
		Publisher:        fx.publisher,
		Clock:            fixedClock(t, testNow),
		Config:           newTestConfig(maxActiveSessions),
		Logger:           newDiscardLogger(),
	})

	return fx
}

// expectIssueTokens sets up a successful token pair for userID with the given roles.
func (fx authServiceFixtures) expectIssueTokens(userID any, roles []string) {
	fx.tokenService.EXPECT().GenerateTokens(userID, roles).Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	fx.refreshTokenRepo.EXPECT().
		Store(mock.Anything, mock.MatchedBy(func(rt *entity.RefreshToken) bool {
			return rt.TokenHash == "refresh-hash" && rt.ExpiresAt.Equal(testNow.Add(7*24*time.Hour))
		})).
		Return(nil)
}

func TestAuthService_Register(t *testing.T) {
	fx := createTestAuthService(t, 0)
	ctx := context.Background()
	newID := uuid.New()

	fx.hasher.EXPECT().ValidateStrength("S3cure!pass").Return(nil)
	fx.hasher.EXPECT().Hash("S3cure!pass").Return("bcrypt-hash", nil)
	expectTx(fx.txManager, fx.factory)
	fx.authRepo.EXPECT().FindByEmail(ctx, "karim@example.ma").
		Return(nil, repository.ErrAuthNotFound)
	fx.profileRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *entity.Profile) bool {
			return p.AccountType == entity.AccountTypeIndividual && p.Phone == "0661223344"
		})).
		RunAndReturn(func(_ context.Context, p *entity.Profile) error {
			p.ID = newID

			return nil
		})
	fx.authRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(a *entity.Authentication) bool {
			return a.UserID == newID && a.PasswordHash == "bcrypt-hash" && a.ProviderUserID == "karim@example.ma"
		})).
		Return(nil)
	fx.expectIssueTokens(newID, []string{"user"})
	fx.publisher.EXPECT().
		PublishEmailEvent(ctx, mock.MatchedBy(func(e *service.EmailEvent) bool {
			return e.Template == service.EmailTemplateRegistration && e.To == "karim@example.ma"
		})).
		Return(nil)

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		FullName: " Karim Bennani ",
		Email:    " Karim@Example.MA",
		Password: "S3cure!pass",
		Phone:    "06 61 22 33 44",
	})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, "Karim Bennani", output.Profile.FullName)
	assert.Equal(t, entity.LabelIndividual, output.Profile.AccountTypeLabel)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t, 0)
	ctx := context.Background()

	fx.hasher.EXPECT().ValidateStrength(mock.Anything).Return(nil)
	fx.hasher.EXPECT().Hash(mock.Anything).Return("bcrypt-hash", nil)
	expectTx(fx.txManager, fx.factory)
	fx.authRepo.EXPECT().FindByEmail(ctx, "taken@example.ma").
		Return(&entity.Authentication{UserID: uuid.New()}, nil)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{FullName: "A", Email: "taken@example.ma", Password: "S3cure!pass"})

	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
	fx.profileRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Register_Validation(t *testing.T) {
	fx := createTestAuthService(t, 0)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{Email: "not-an-email"})

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Len(t, validationErr.Fields(), 3)
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	fx := createTestAuthService(t, 0)

	fx.hasher.EXPECT().ValidateStrength("short").Return(domainerrors.ErrPasswordStrength.WithDetails("too short"))

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{FullName: "A", Email: "a@b.ma", Password: "short"})

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrPasswordStrength.ErrorCode(), appErr.ErrorCode())
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestAuthService_Login(t *testing.T) {
	fx := createTestAuthService(t, 0)
	ctx := context.Background()
	userID := uuid.New()
	profile := &entity.Profile{ID: userID, Email: "admin@enginex.ma", IsAdmin: true}

	expectTx(fx.txManager, fx.factory)
	fx.authRepo.EXPECT().FindByEmail(ctx, "admin@enginex.ma").
		Return(&entity.Authentication{UserID: userID, PasswordHash: "bcrypt-hash"}, nil)
	fx.hasher.EXPECT().Check("password", "bcrypt-hash").Return(true)
	fx.profileRepo.EXPECT().FindByID(ctx, userID).Return(profile, nil)
	fx.expectIssueTokens(userID, []string{"user", "admin"})

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "Admin@EngineX.ma", Password: "password"})

	require.NoError(t, err)
	assert.Equal(t, profile, output.Profile)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthService(t, 0)
		ctx := context.Background()

		expectTx(fx.txManager, fx.factory)
		fx.authRepo.EXPECT().FindByEmail(ctx, "ghost@example.ma").
			Return(nil, repository.ErrAuthNotFound)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.ma", Password: "x"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t, 0)
		ctx := context.Background()

		expectTx(fx.txManager, fx.factory)
		fx.authRepo.EXPECT().FindByEmail(ctx, "karim@example.ma").
			Return(&entity.Authentication{UserID: uuid.New(), PasswordHash: "bcrypt-hash"}, nil)
		fx.hasher.EXPECT().Check("wrong", "bcrypt-hash").Return(false)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "karim@example.ma", Password: "wrong"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
		fx.tokenService.AssertNotCalled(t, "GenerateTokens", mock.Anything, mock.Anything)
	})
}

func TestAuthService_Login_SessionLimit(t *testing.T) {
	fx := createTestAuthService(t, 3)
	ctx := context.Background()
	userID := uuid.New()

	expectTx(fx.txManager, fx.factory)
	fx.authRepo.EXPECT().FindByEmail(ctx, "karim@example.ma").
		Return(&entity.Authentication{UserID: userID, PasswordHash: "bcrypt-hash"}, nil)
	fx.hasher.EXPECT().Check("password", "bcrypt-hash").Return(true)
	fx.profileRepo.EXPECT().FindByID(ctx, userID).Return(&entity.Profile{ID: userID}, nil)
	fx.profileRepo.EXPECT().AcquireSessionMutex(ctx, userID).Return(nil)
	fx.refreshTokenRepo.EXPECT().CountActive(ctx, userID, testNow).Return(3, nil)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "karim@example.ma", Password: "password"})

	assert.True(t, errors.Is(err, domainerrors.ErrSessionLimitExceeded))
}

func TestAuthService_RefreshToken_Rotates(t *testing.T) {
	fx := createTestAuthService(t, 0)
	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().ValidateToken("old-refresh").
		Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)
	expectTx(fx.txManager, fx.factory)
	fx.tokenService.EXPECT().HashToken("old-refresh").Return("old-hash")
	fx.refreshTokenRepo.EXPECT().FindByHash(ctx, "old-hash").
		Return(&entity.RefreshToken{UserID: userID, TokenHash: "old-hash", ExpiresAt: testNow.Add(time.Hour)}, nil)
	fx.profileRepo.EXPECT().FindByID(ctx, userID).Return(&entity.Profile{ID: userID}, nil)
	fx.refreshTokenRepo.EXPECT().Revoke(ctx, "old-hash").Return(nil)
	fx.expectIssueTokens(userID, []string{"user"})

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "old-refresh"})

	require.NoError(t, err)
	assert.Equal(t, "refresh-token", output.RefreshToken)
}

func TestAuthService_RefreshToken_Invalid(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name  string
		setup func(fx authServiceFixtures)
	}{
		{
			name: "access token presented",
			setup: func(fx authServiceFixtures) {
				fx.tokenService.EXPECT().ValidateToken("tok").
					Return(&service.Claims{UserID: userID, Type: service.TokenTypeAccess}, nil)
			},
		},
		{
			name: "revoked",
			setup: func(fx authServiceFixtures) {
				fx.tokenService.EXPECT().ValidateToken("tok").
					Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)
				expectTx(fx.txManager, fx.factory)
				fx.tokenService.EXPECT().HashToken("tok").Return("hash")
				fx.refreshTokenRepo.EXPECT().FindByHash(mock.Anything, "hash").
					Return(nil, repository.ErrRefreshTokenNotFound)
			},
		},
		{
			name: "stored for another user",
			setup: func(fx authServiceFixtures) {
				fx.tokenService.EXPECT().ValidateToken("tok").
					Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)
				expectTx(fx.txManager, fx.factory)
				fx.tokenService.EXPECT().HashToken("tok").Return("hash")
				fx.refreshTokenRepo.EXPECT().FindByHash(mock.Anything, "hash").
					Return(&entity.RefreshToken{UserID: uuid.New(), ExpiresAt: testNow.Add(time.Hour)}, nil)
			},
		},
		{
			name: "concurrent rotation",
			setup: func(fx authServiceFixtures) {
				fx.tokenService.EXPECT().ValidateToken("tok").
					Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)
				expectTx(fx.txManager, fx.factory)
				fx.tokenService.EXPECT().HashToken("tok").Return("hash")
				fx.refreshTokenRepo.EXPECT().FindByHash(mock.Anything, "hash").
					Return(&entity.RefreshToken{UserID: userID, ExpiresAt: testNow.Add(time.Hour)}, nil)
				fx.profileRepo.EXPECT().FindByID(mock.Anything, userID).Return(&entity.Profile{ID: userID}, nil)
				fx.refreshTokenRepo.EXPECT().Revoke(mock.Anything, "hash").
					Return(repository.ErrRefreshTokenNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t, 0)
			tt.setup(fx)

			_, err := fx.service.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "tok"})

			assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	t.Run("unknown token is fine", func(t *testing.T) {
		fx := createTestAuthService(t, 0)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateToken("gone").Return(nil, errors.New("token is expired"))
		fx.tokenService.EXPECT().HashToken("gone").Return("gone-hash")
		fx.refreshTokenRepo.EXPECT().Revoke(ctx, "gone-hash").Return(repository.ErrRefreshTokenNotFound)

		assert.NoError(t, fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "gone"}))
	})

	t.Run("database failure", func(t *testing.T) {
		fx := createTestAuthService(t, 0)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateToken("tok").Return(&service.Claims{Type: service.TokenTypeRefresh}, nil)
		fx.tokenService.EXPECT().HashToken("tok").Return("hash")
		fx.refreshTokenRepo.EXPECT().Revoke(ctx, "hash").Return(errors.New("connection refused"))

		assert.Error(t, fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "tok"}))
	})
}
