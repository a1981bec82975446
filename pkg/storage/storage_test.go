package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_GetURL(t *testing.T) {
	s := NewLocalStorage(LocalConfig{BaseURL: "http://cdn.local/avatars/"})

	url, err := s.GetURL(context.Background(), "/u1/md.png", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "http://cdn.local/avatars/u1/md.png", url)
}

func TestS3Storage_PublicURL(t *testing.T) {
	s, err := NewS3Storage(context.Background(), S3Config{
		Bucket:          "avatars",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
		PublicURL:       "https://media.example.com/avatars/",
	})
	require.NoError(t, err)

	url, err := s.GetURL(context.Background(), "u1/md.png", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "https://media.example.com/avatars/u1/md.png", url)
}

func TestS3Storage_PresignedURL(t *testing.T) {
	s, err := NewS3Storage(context.Background(), S3Config{
		Endpoint:        "http://localhost:9000",
		Bucket:          "avatars",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
		UsePathStyle:    true,
	})
	require.NoError(t, err)

	url, err := s.GetURL(context.Background(), "u1/md.png", 5*time.Minute)
	require.NoError(t, err)
	assert.Contains(t, url, "http://localhost:9000/avatars/u1/md.png")
	assert.Contains(t, url, "X-Amz-Signature=")
}

func TestIsAbsoluteURL(t *testing.T) {
	assert.True(t, IsAbsoluteURL("https://example.com/a.png"))
	assert.True(t, IsAbsoluteURL("http://example.com/a.png"))
	assert.False(t, IsAbsoluteURL("avatars/a.png"))
}

func TestNew_None(t *testing.T) {
	s, err := New(context.Background(), Config{Driver: "none"})
	require.NoError(t, err)
	assert.Nil(t, s)
}
