package storage

import (
	"context"
	"io"
	"net/url"
	"strings"

	"enginex/config"
	"enginex/internal/domain/service"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

// minioStore writes listing images to an S3-compatible bucket.
type minioStore struct {
	client        *minio.Client
	bucket        string
	region        string
	publicBaseURL string
}

// NewMinioStore connects to the configured endpoint. An http(s) endpoint overrides useSSL.
func NewMinioStore(cfg *config.StorageConfig) (*minioStore, error) {
	endpoint := cfg.Minio.Endpoint
	useSSL := cfg.Minio.UseSSL

	if strings.HasPrefix(endpoint, "http") {
		u, err := url.Parse(endpoint)
		if err != nil {
			return nil, errors.Wrap(err, "parse minio endpoint")
		}
		endpoint = u.Host
		useSSL = u.Scheme == "https"
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Minio.AccessKey, cfg.Minio.SecretKey, ""),
		Secure: useSSL,
		Region: cfg.Minio.Region,
	})
	if err != nil {
		return nil, errors.Wrap(err, "init minio")
	}

	publicBaseURL := cfg.PublicBaseURL
	if publicBaseURL == "" {
		scheme := "http://"
		if useSSL {
			scheme = "https://"
		}
		publicBaseURL = scheme + endpoint
	}

	return &minioStore{
		client:        client,
		bucket:        cfg.Bucket,
		region:        cfg.Minio.Region,
		publicBaseURL: publicBaseURL,
	}, nil
}

// EnsureBucket creates the image bucket when it is missing.
func (s *minioStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return errors.Wrapf(err, "bucket exists %s", s.bucket)
	}
	if exists {
		return nil
	}

	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
		return errors.Wrapf(err, "create bucket %s", s.bucket)
	}

	return nil
}

func (s *minioStore) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	if _, err := s.client.PutObject(ctx, s.bucket, key, body, size, minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=3600",
	}); err != nil {
		return "", errors.Wrapf(err, "put object %s", key)
	}

	return PublicURL(s.publicBaseURL, s.bucket, key), nil
}

func (s *minioStore) Delete(ctx context.Context, key string) error {
	err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
	if err != nil && minio.ToErrorResponse(err).Code != "NoSuchKey" {
		return errors.Wrapf(err, "remove object %s", key)
	}

	return nil
}

func (s *minioStore) KeyFromURL(publicURL string) (string, bool) {
	return KeyFromURL(s.bucket, publicURL)
}

var _ service.ImageStorage = (*minioStore)(nil)
