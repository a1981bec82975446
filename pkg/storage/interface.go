package storage

import (
	"context"
	"strings"
	"time"
)

// URLSigner turns a stored object key into a URL a client can fetch.
type URLSigner interface {
	// GetURL returns a URL for accessing the content.
	// For S3 this is a presigned URL valid for the given duration unless a
	// public URL prefix is configured.
	GetURL(ctx context.Context, key string, expires time.Duration) (string, error)
}

// Config selects and configures the URL signer.
type Config struct {
	Driver     string        `mapstructure:"driver"` // "none", "s3", "local"
	S3         S3Config      `mapstructure:"s3"`
	Local      LocalConfig   `mapstructure:"local"`
	PresignTTL time.Duration `mapstructure:"presign_ttl"`
}

// New builds the signer named by cfg.Driver. A nil signer with no error
// means stored values are returned as-is.
func New(ctx context.Context, cfg Config) (URLSigner, error) {
	switch cfg.Driver {
	case "s3":
		return NewS3Storage(ctx, cfg.S3)
	case "local":
		return NewLocalStorage(cfg.Local), nil
	default:
		return nil, nil
	}
}

// IsAbsoluteURL reports whether v already points somewhere fetchable
// (uploaded through an external CDN, an OAuth provider avatar, ...).
func IsAbsoluteURL(v string) bool {
	return strings.HasPrefix(v, "http://") ||
		strings.HasPrefix(v, "https://") ||
		strings.HasPrefix(v, "data:")
}
