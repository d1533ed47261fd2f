// Package storage keeps listing images in an object store and serves them from public URLs.
package storage

import (
	"net/url"
	"strings"
)

// PublicURL joins the public base, the bucket and the key.
func PublicURL(baseURL, bucket, key string) string {
	return strings.TrimRight(baseURL, "/") + "/" + bucket + "/" + key
}

// KeyFromURL derives the object key from a public URL by taking everything after "<bucket>/".
func KeyFromURL(bucket, publicURL string) (string, bool) {
	parsed, err := url.Parse(publicURL)
	if err != nil {
		return "", false
	}

	marker := "/" + bucket + "/"
	idx := strings.Index(parsed.Path, marker)
	if idx < 0 {
		return "", false
	}

	key := parsed.Path[idx+len(marker):]
	if key == "" || strings.Contains(key, "..") {
		return "", false
	}

	return key, true
}
