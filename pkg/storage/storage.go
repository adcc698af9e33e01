// Package storage puts receipt files into a blob store and hands back a URL
// that can be opened by reviewers.
package storage

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
)

const (
	ProviderLocal = "local"
	ProviderGCS   = "gcs"
)

// ErrRejected is returned when the store refuses a blob (size or type).
var ErrRejected = errors.New("blob rejected")

var allowedContentTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/webp":      true,
	"image/heic":      true,
	"application/pdf": true,
}

type BlobStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// Validate applies the rules shared by every provider.
func Validate(key string, data []byte, contentType string, maxBytes int64) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: empty file", ErrRejected)
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return fmt.Errorf("%w: file exceeds %d bytes", ErrRejected, maxBytes)
	}
	if !allowedContentTypes[normalizeContentType(contentType)] {
		return fmt.Errorf("%w: unsupported content type %q", ErrRejected, contentType)
	}
	clean := path.Clean(key)
	if key == "" || strings.HasPrefix(clean, "..") || strings.HasPrefix(clean, "/") {
		return fmt.Errorf("%w: invalid key %q", ErrRejected, key)
	}
	return nil
}

func normalizeContentType(contentType string) string {
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}
