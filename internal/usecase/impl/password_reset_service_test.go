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

type passwordResetFixtures struct {
	service          usecase.PasswordResetUsecase
	txManager        *mockRepo.MockTransactionManager
	factory          *mockRepo.MockRepositoryFactory
	profileRepo      *mockRepo.MockProfileRepository
	resetCodeRepo    *mockRepo.MockResetCodeRepository
	authRepo         *mockRepo.MockAuthRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	codes            *mockSvc.MockCodeGenerator
	publisher        *mockSvc.MockEventPublisher
}

func createTestPasswordResetService(t *testing.T) passwordResetFixtures {
	fx := passwordResetFixtures{
		txManager:        mockRepo.NewMockTransactionManager(t),
		factory:          mockRepo.NewMockRepositoryFactory(t),
		profileRepo:      mockRepo.NewMockProfileRepository(t),
		resetCodeRepo:    mockRepo.NewMockResetCodeRepository(t),
		authRepo:         mockRepo.NewMockAuthRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		hasher:           mockSvc.NewMockPasswordHasher(t),
		codes:            mockSvc.NewMockCodeGenerator(t),
		publisher:        mockSvc.NewMockEventPublisher(t),
	}

	fx.factory.EXPECT().ProfileRepo().Return(fx.profileRepo).Maybe()
	fx.factory.EXPECT().ResetCodeRepo().Return(fx.resetCodeRepo).Maybe()
	fx.factory.EXPECT().AuthRepo().Return(fx.authRepo).Maybe()
	fx.factory.EXPECT().RefreshTokenRepo().Return(fx.refreshTokenRepo).Maybe()

	fx.service = NewPasswordResetService(PasswordResetServiceParams{
		TxManager:     fx.txManager,
		ProfileRepo:   fx.profileRepo,
		ResetCodeRepo: fx.resetCodeRepo,
		Hasher:        fx.hasher,
		Codes:         fx.codes,
		Publisher:     fx.publisher,
		Clock:         fixedClock(t, testNow),
		Config:        newTestConfig(0),
		Logger:        newDiscardLogger(),
	})

	return fx
}

func TestPasswordResetService_RequestReset(t *testing.T) {
	fx := createTestPasswordResetService(t)
	ctx := context.Background()
	profile := &entity.Profile{ID: uuid.New(), Email: "karim@example.ma", FullName: "Karim"}

	fx.profileRepo.EXPECT().FindByEmail(ctx, "karim@example.ma").Return(profile, nil)
	fx.codes.EXPECT().NumericCode(6).Return("482913", nil)
	fx.resetCodeRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(c *entity.PasswordResetCode) bool {
			return c.Code == "482913" && c.ExpiresAt.Equal(testNow.Add(10*time.Minute)) && !c.Used
		})).
		Return(nil)
	fx.publisher.EXPECT().
		PublishEmailEvent(ctx, mock.MatchedBy(func(e *service.EmailEvent) bool {
			return e.Template == service.EmailTemplatePasswordReset && e.Data["code"] == "482913"
		})).
		Return(nil)

	require.NoError(t, fx.service.RequestReset(ctx, "KARIM@example.ma "))
}

func TestPasswordResetService_RequestReset_UnknownEmailIsSilent(t *testing.T) {
	fx := createTestPasswordResetService(t)
	ctx := context.Background()

	fx.profileRepo.EXPECT().FindByEmail(ctx, "ghost@example.ma").Return(nil, repository.ErrProfileNotFound)

	assert.NoError(t, fx.service.RequestReset(ctx, "ghost@example.ma"))
	fx.codes.AssertNotCalled(t, "NumericCode", mock.Anything)
	fx.publisher.AssertNotCalled(t, "PublishEmailEvent", mock.Anything, mock.Anything)
}

func TestPasswordResetService_VerifyCode(t *testing.T) {
	fx := createTestPasswordResetService(t)
	ctx := context.Background()

	fx.resetCodeRepo.EXPECT().FindUsable(ctx, "karim@example.ma", "000000", testNow).
		Return(nil, repository.ErrResetCodeNotFound)

	err := fx.service.VerifyCode(ctx, "karim@example.ma", "000000")

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCode))
}

func TestPasswordResetService_ResetPassword(t *testing.T) {
	fx := createTestPasswordResetService(t)
	ctx := context.Background()
	codeID, userID := uuid.New(), uuid.New()

	fx.hasher.EXPECT().ValidateStrength("N3w!password").Return(nil)
	fx.hasher.EXPECT().Hash("N3w!password").Return("new-hash", nil)
	expectTx(fx.txManager, fx.factory)
	fx.resetCodeRepo.EXPECT().FindUsable(ctx, "karim@example.ma", "482913", testNow).
		Return(&entity.PasswordResetCode{ID: codeID}, nil)
	fx.resetCodeRepo.EXPECT().MarkUsed(ctx, codeID).Return(nil)
	fx.profileRepo.EXPECT().FindByEmail(ctx, "karim@example.ma").Return(&entity.Profile{ID: userID}, nil)
	fx.authRepo.EXPECT().UpdatePasswordHash(ctx, userID, "new-hash").Return(nil)
	fx.refreshTokenRepo.EXPECT().RevokeAllForUser(ctx, userID).Return(nil)

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Email:       "karim@example.ma",
		Code:        "482913",
		NewPassword: "N3w!password",
	})

	assert.NoError(t, err)
}

func TestPasswordResetService_ResetPassword_CodeAlreadyUsed(t *testing.T) {
	fx := createTestPasswordResetService(t)
	ctx := context.Background()
	codeID := uuid.New()

	fx.hasher.EXPECT().ValidateStrength(mock.Anything).Return(nil)
	fx.hasher.EXPECT().Hash(mock.Anything).Return("new-hash", nil)
	expectTx(fx.txManager, fx.factory)
	fx.resetCodeRepo.EXPECT().FindUsable(ctx, "karim@example.ma", "482913", testNow).
		Return(&entity.PasswordResetCode{ID: codeID}, nil)
	// A concurrent reset consumed the code first.
	fx.resetCodeRepo.EXPECT().MarkUsed(ctx, codeID).Return(repository.ErrResetCodeNotFound)

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Email:       "karim@example.ma",
		Code:        "482913",
		NewPassword: "N3w!password",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCode))
	fx.authRepo.AssertNotCalled(t, "UpdatePasswordHash", mock.Anything, mock.Anything, mock.Anything)
}
