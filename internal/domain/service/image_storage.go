package service

import (
	"context"
	"io"
)

// ImageStorage stores listing images in a public bucket.
type ImageStorage interface {
	// Put writes an object under key and returns its public URL.
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)

	// Delete removes the object under key. Missing objects are not an error.
	Delete(ctx context.Context, key string) error

	// KeyFromURL derives the object key from a public URL returned by Put.
	KeyFromURL(publicURL string) (string, bool)
}
