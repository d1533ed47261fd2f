package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"enginex/config"
	deliverycontext "enginex/internal/delivery/context"
	"enginex/internal/domain/entity"
	domainerrors "enginex/internal/domain/errors"
	"enginex/internal/domain/repository"
	"enginex/internal/domain/service"
	"enginex/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultMaxImageSize = 5 << 20
	sniffLength         = 512
	imageKeyPrefix      = "public/"
)

// imageExtensions maps accepted content types to the stored file extension.
var imageExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
}

type imageService struct {
	storage     service.ImageStorage
	listingRepo repository.ListingRepository
	clock   service.Clock
	maxSize int64
	logger  *slog.Logger
}

// ImageServiceParams holds dependencies for ImageService, injected by Fx.
type ImageServiceParams struct {
	fx.In

	Storage     service.ImageStorage
	ListingRepo repository.ListingRepository
	Clock       service.Clock
	Config  *config.Config
	Logger  *slog.Logger
}

// NewImageService is the constructor for imageService.
func NewImageService(params ImageServiceParams) usecase.ImageUsecase {
	maxSize := int64(defaultMaxImageSize)
	if params.Config != nil && params.Config.Storage != nil && params.Config.Storage.MaxUploadSize > 0 {
		maxSize = params.Config.Storage.MaxUploadSize
	}

	return &imageService{
		storage:     params.Storage,
		listingRepo: params.ListingRepo,
		clock:   params.Clock,
		maxSize: maxSize,
		logger:  params.Logger,
	}
}

func (srv *imageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UploadImage sniffs the content type from the bytes, never from the filename.
func (srv *imageService) UploadImage(ctx context.Context, _ *entity.Session, input *usecase.UploadImageInput) (string, error) {
	if input.Size <= 0 {
		return "", errors.Wrap(domainerrors.ErrUnsupportedImage, "empty upload")
	}
	if input.Size > srv.maxSize {
		return "", domainerrors.ErrImageTooLarge.WithDetails("maximum size is " + strconv.FormatInt(srv.maxSize, 10) + " bytes")
	}

	head := make([]byte, sniffLength)
	n, err := io.ReadFull(input.Body, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", errors.Wrap(err, "failed to read upload")
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	ext, ok := imageExtensions[contentType]
	if !ok {
		srv.log(ctx).Debug("Rejected upload", slog.String("filename", input.Filename), slog.String("content_type", contentType))

		return "", errors.Wrap(domainerrors.ErrUnsupportedImage, contentType)
	}

	key := newImageKey(ext, srv.clock.Now())
	body := io.LimitReader(io.MultiReader(bytes.NewReader(head), input.Body), input.Size)

	publicURL, err := srv.storage.Put(ctx, key, body, input.Size, contentType)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrServiceUnavailable, err.Error())
	}
	srv.log(ctx).Info("Image uploaded", slog.String("key", key), slog.Int64("bytes", input.Size))

	return publicURL, nil
}

// DeleteImage removes an image from the bucket. Admins may delete any image. An image
// attached to listings may only be deleted by the owner of every one of them; an upload
// not attached yet may be deleted by any signed-in user.
func (srv *imageService) DeleteImage(ctx context.Context, session *entity.Session, publicURL string) error {
	if !session.IsAuthenticated() {
		return errors.Wrap(domainerrors.ErrUnauthenticated, "sign in to delete images")
	}

	key, ok := srv.storage.KeyFromURL(publicURL)
	if !ok {
		return domainerrors.NewValidationError(domainerrors.FieldError{
			Field: "url", Rule: "url", Message: "not a listing image URL",
		})
	}

	if !session.IsAdmin() {
		if err := srv.checkImageOwnership(ctx, session.UserID, publicURL); err != nil {
			return err
		}
	}

	if err := srv.storage.Delete(ctx, key); err != nil {
		return errors.Wrap(domainerrors.ErrServiceUnavailable, err.Error())
	}
	srv.log(ctx).Info("Image deleted", slog.String("key", key), slog.Any("user_id", session.UserID))

	return nil
}

func (srv *imageService) checkImageOwnership(ctx context.Context, userID uuid.UUID, publicURL string) error {
	listings, err := srv.listingRepo.FindByImage(ctx, publicURL)
	if err != nil {
		return errors.Wrap(err, "failed to find listings using image")
	}
	for _, listing := range listings {
		if listing.UserID == nil || *listing.UserID != userID {
			srv.log(ctx).Warn("Image delete refused",
				slog.Any("user_id", userID),
				slog.Any("listing_id", listing.ID),
			)

			return domainerrors.ErrForbidden.WrapMessage("image belongs to another listing")
		}
	}

	return nil
}

// newImageKey names an uploaded image: public/<random>-<unix ms>.<ext>.
func newImageKey(ext string, now time.Time) string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]

	return path.Join(imageKeyPrefix, random+"-"+strconv.FormatInt(now.UnixMilli(), 10)+"."+ext)
}
