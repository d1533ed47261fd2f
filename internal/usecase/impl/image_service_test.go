package impl

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"enginex/config"
	"enginex/internal/domain/entity"
	domainerrors "enginex/internal/domain/errors"
	mockRepo "enginex/internal/mocks/repository"
	mockSvc "enginex/internal/mocks/service"
	"enginex/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// pngHeader is enough for content sniffing to report image/png.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

type imageServiceFixtures struct {
	service     usecase.ImageUsecase
	storage     *mockSvc.MockImageStorage
	listingRepo *mockRepo.MockListingRepository
}

func createTestImageService(t *testing.T, maxSize int64) imageServiceFixtures {
	fx := imageServiceFixtures{
		storage:     mockSvc.NewMockImageStorage(t),
		listingRepo: mockRepo.NewMockListingRepository(t),
	}
	fx.service = NewImageService(ImageServiceParams{
		Storage:     fx.storage,
		ListingRepo: fx.listingRepo,
		Clock:       fixedClock(t, testNow),
		Config:      &config.Config{Storage: &config.StorageConfig{MaxUploadSize: maxSize}},
		Logger:      newDiscardLogger(),
	})

	return fx
}

func TestImageService_UploadImage(t *testing.T) {
	fx := createTestImageService(t, 1024)
	svc, storage := fx.service, fx.storage
	ctx := context.Background()
	body := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0xAB}, 600)...)

	storage.EXPECT().
		Put(ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "public/") && strings.HasSuffix(key, ".png")
		}), mock.Anything, int64(len(body)), "image/png").
		RunAndReturn(func(_ context.Context, key string, r io.Reader, _ int64, _ string) (string, error) {
			stored, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, body, stored)

			return "https://cdn.enginex.ma/listing-images/" + key, nil
		})

	url, err := svc.UploadImage(ctx, nil, &usecase.UploadImageInput{
		Filename: "photo.jpg",
		Size:     int64(len(body)),
		Body:     bytes.NewReader(body),
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://cdn.enginex.ma/listing-images/public/"))
}

func TestImageService_UploadImage_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		body    []byte
		size    int64
		wantErr error
	}{
		{"empty", nil, 0, domainerrors.ErrUnsupportedImage},
		{"too large", pngHeader, 4096, domainerrors.ErrImageTooLarge},
		{"not an image", []byte("%PDF-1.7 not a photo"), 20, domainerrors.ErrUnsupportedImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestImageService(t, 1024)
	svc, storage := fx.service, fx.storage

			_, err := svc.UploadImage(context.Background(), nil, &usecase.UploadImageInput{
				Filename: "upload.png",
				Size:     tt.size,
				Body:     bytes.NewReader(tt.body),
			})

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.wantErr.(domainerrors.AppError).ErrorCode(), appErr.ErrorCode())
			storage.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestImageService_UploadImage_StorageDown(t *testing.T) {
	fx := createTestImageService(t, 0)
	svc, storage := fx.service, fx.storage
	ctx := context.Background()

	storage.EXPECT().Put(ctx, mock.Anything, mock.Anything, int64(len(pngHeader)), "image/png").
		Return("", errors.New("dial tcp: connection refused"))

	_, err := svc.UploadImage(ctx, nil, &usecase.UploadImageInput{Size: int64(len(pngHeader)), Body: bytes.NewReader(pngHeader)})

	assert.True(t, errors.Is(err, domainerrors.ErrServiceUnavailable))
}

func TestImageService_DeleteImage(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	session := &entity.Session{UserID: userID, Roles: entity.Roles{entity.RoleUser}}
	url := "https://cdn.enginex.ma/listing-images/public/abc-1.png"

	t.Run("anonymous", func(t *testing.T) {
		svc := createTestImageService(t, 0).service

		err := svc.DeleteImage(ctx, nil, url)

		assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
	})

	t.Run("foreign url", func(t *testing.T) {
		fx := createTestImageService(t, 0)
		fx.storage.EXPECT().KeyFromURL("https://example.com/x.png").Return("", false)

		err := fx.service.DeleteImage(ctx, session, "https://example.com/x.png")

		var validationErr *domainerrors.ValidationError
		assert.True(t, errors.As(err, &validationErr))
	})

	t.Run("own listing image", func(t *testing.T) {
		fx := createTestImageService(t, 0)
		fx.storage.EXPECT().KeyFromURL(url).Return("public/abc-1.png", true)
		fx.listingRepo.EXPECT().FindByImage(ctx, url).
			Return([]*entity.Listing{{ID: uuid.New(), UserID: &userID}}, nil)
		fx.storage.EXPECT().Delete(ctx, "public/abc-1.png").Return(nil)

		assert.NoError(t, fx.service.DeleteImage(ctx, session, url))
	})

	t.Run("unattached upload", func(t *testing.T) {
		fx := createTestImageService(t, 0)
		fx.storage.EXPECT().KeyFromURL(url).Return("public/abc-1.png", true)
		fx.listingRepo.EXPECT().FindByImage(ctx, url).Return([]*entity.Listing{}, nil)
		fx.storage.EXPECT().Delete(ctx, "public/abc-1.png").Return(nil)

		assert.NoError(t, fx.service.DeleteImage(ctx, session, url))
	})

	t.Run("another seller's image", func(t *testing.T) {
		fx := createTestImageService(t, 0)
		otherID := uuid.New()
		fx.storage.EXPECT().KeyFromURL(url).Return("public/abc-1.png", true)
		fx.listingRepo.EXPECT().FindByImage(ctx, url).
			Return([]*entity.Listing{{ID: uuid.New(), UserID: &otherID}}, nil)

		err := fx.service.DeleteImage(ctx, session, url)

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
		fx.storage.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("anonymous listing image", func(t *testing.T) {
		fx := createTestImageService(t, 0)
		fx.storage.EXPECT().KeyFromURL(url).Return("public/abc-1.png", true)
		fx.listingRepo.EXPECT().FindByImage(ctx, url).Return([]*entity.Listing{{ID: uuid.New()}}, nil)

		err := fx.service.DeleteImage(ctx, session, url)

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("admin skips ownership", func(t *testing.T) {
		fx := createTestImageService(t, 0)
		admin := &entity.Session{UserID: uuid.New(), Roles: entity.Roles{entity.RoleUser, entity.RoleAdmin}}
		fx.storage.EXPECT().KeyFromURL(url).Return("public/abc-1.png", true)
		fx.storage.EXPECT().Delete(ctx, "public/abc-1.png").Return(nil)

		assert.NoError(t, fx.service.DeleteImage(ctx, admin, url))
		fx.listingRepo.AssertNotCalled(t, "FindByImage", mock.Anything, mock.Anything)
	})
}

func TestNewImageKey(t *testing.T) {
	key := newImageKey("webp", testNow)

	assert.Regexp(t, `^public/[0-9a-f]{12}-\d+\.webp$`, key)
	assert.NotEqual(t, key, newImageKey("webp", testNow))
}
