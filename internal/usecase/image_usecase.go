package usecase

import (
	"context"
	"io"

	"enginex/internal/domain/entity"
)

// UploadImageInput is a single listing photo upload.
type UploadImageInput struct {
	Filename string
	Size     int64
	Body     io.Reader
}

// ImageUsecase stores listing photos in the public bucket.
type ImageUsecase interface {
	// UploadImage stores the photo and returns its public URL. Anonymous publishers may upload.
	UploadImage(ctx context.Context, session *entity.Session, input *UploadImageInput) (string, error)
	// DeleteImage removes the object behind a URL returned by UploadImage.
	DeleteImage(ctx context.Context, session *entity.Session, publicURL string) error
}
