package storage

import (
	"context"
	"io"
)

// Provider abstracts the object store holding uploaded motorcycle and
// critic images.
type Provider interface {
	Upload(ctx context.Context, request *UploadRequest) (*UploadResponse, error)
	Delete(ctx context.Context, key string) error
	GetURL(key string) string
}

type UploadRequest struct {
	Key          string
	Reader       io.Reader
	ContentType  string
	CacheControl string
}

type UploadResponse struct {
	Key  string `json:"key"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
}
