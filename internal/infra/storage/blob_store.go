package storage

import (
	"context"
	"io"

	"enginex/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

// blobStore writes listing images through a gocloud.dev bucket (local disk in development, memory in tests).
type blobStore struct {
	bucket        *blob.Bucket
	name          string
	publicBaseURL string
}

// OpenBlobStore opens the bucket at bucketURL, e.g. file:///var/lib/enginex/images or mem://.
func OpenBlobStore(ctx context.Context, bucketURL, name, publicBaseURL string) (*blobStore, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", bucketURL)
	}

	return NewBlobStore(bucket, name, publicBaseURL), nil
}

// NewBlobStore wraps an already opened bucket.
func NewBlobStore(bucket *blob.Bucket, name, publicBaseURL string) *blobStore {
	return &blobStore{bucket: bucket, name: name, publicBaseURL: publicBaseURL}
}

func (s *blobStore) Put(ctx context.Context, key string, body io.Reader, _ int64, contentType string) (string, error) {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrapf(err, "open writer %s", key)
	}

	if _, err := io.Copy(w, body); err != nil {
		_ = w.Close()

		return "", errors.Wrapf(err, "write object %s", key)
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "close object %s", key)
	}

	return PublicURL(s.publicBaseURL, s.name, key), nil
}

func (s *blobStore) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "delete object %s", key)
	}

	return nil
}

func (s *blobStore) KeyFromURL(publicURL string) (string, bool) {
	return KeyFromURL(s.name, publicURL)
}

// Close releases the bucket.
func (s *blobStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}

var _ service.ImageStorage = (*blobStore)(nil)
