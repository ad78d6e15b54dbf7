package storage

import (
	"context"
	"io"
	"time"
)

// Interface abstracts where receipt attachments live. The local backend is
// the only implementation today; the URL scheme mirrors presigned cloud
// storage so a real bucket can slot in later.
type Interface interface {
	// GenerateUploadURL returns a URL the client PUTs the receipt to.
	GenerateUploadURL(ctx context.Context, key string, contentType string, expiresIn time.Duration) (string, error)

	// GenerateDownloadURL returns a URL the client GETs the receipt from.
	GenerateDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error)

	// FileExists checks if a file exists and returns its size
	FileExists(ctx context.Context, key string) (exists bool, size int64, err error)

	// DeleteFile removes a file from storage
	DeleteFile(ctx context.Context, key string) error

	// ListKeys returns every stored key, for orphan cleanup.
	ListKeys(ctx context.Context) ([]string, error)

	// SaveFile and ReadFile back the HTTP upload/download endpoints of the
	// local implementation.
	SaveFile(key string, reader io.Reader) error
	ReadFile(key string) (io.ReadCloser, error)
}
