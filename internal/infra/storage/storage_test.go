package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestKeyFromURL(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		want   string
		wantOK bool
	}{
		{"minio url", "http://localhost:9000/listing-images/public/abc-1.jpg", "public/abc-1.jpg", true},
		{"cdn url with prefix", "https://cdn.enginex.ma/storage/v1/object/public/listing-images/public/x-2.webp", "public/x-2.webp", true},
		{"other bucket", "http://localhost:9000/avatars/public/abc.jpg", "", false},
		{"bucket only", "http://localhost:9000/listing-images/", "", false},
		{"traversal", "http://localhost:9000/listing-images/../secret", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := KeyFromURL("listing-images", tt.url)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBlobStore_PutAndDelete(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	store := NewBlobStore(bucket, "listing-images", "http://localhost:8080/files")
	defer store.Close()

	url, err := store.Put(ctx, "public/a-1.png", strings.NewReader("png-bytes"), 9, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/files/listing-images/public/a-1.png", url)

	key, ok := store.KeyFromURL(url)
	require.True(t, ok)
	assert.Equal(t, "public/a-1.png", key)

	data, err := bucket.ReadAll(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	attrs, err := bucket.Attributes(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)

	require.NoError(t, store.Delete(ctx, key))
	exists, err := bucket.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting a missing object is not an error.
	assert.NoError(t, store.Delete(ctx, key))
}
