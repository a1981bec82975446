package storage

import (
	"context"
	"strings"
	"time"
)

// LocalStorage serves objects from a static file server mounted at BaseURL.
type LocalStorage struct {
	baseURL string
}

// LocalConfig holds configuration for local storage.
type LocalConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// NewLocalStorage creates a new LocalStorage instance.
func NewLocalStorage(cfg LocalConfig) *LocalStorage {
	return &LocalStorage{baseURL: strings.TrimSuffix(cfg.BaseURL, "/")}
}

// GetURL joins the key onto the base URL; expires is ignored.
func (s *LocalStorage) GetURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return s.baseURL + "/" + strings.TrimPrefix(key, "/"), nil
}

var _ URLSigner = (*LocalStorage)(nil)
