package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LocalStorage keeps receipt files on the server's filesystem and hands out
// URLs served by the receipt HTTP endpoints.
type LocalStorage struct {
	baseURL     string // Server URL (e.g., "http://localhost:8080")
	receiptsDir string // Local directory for receipts
}

// NewLocalStorage creates receipt storage rooted at uploadsDir
func NewLocalStorage(baseURL, uploadsDir string) (*LocalStorage, error) {
	receiptsDir := filepath.Join(uploadsDir, "receipts")
	if err := os.MkdirAll(receiptsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create receipts directory: %w", err)
	}

	return &LocalStorage{
		baseURL:     baseURL,
		receiptsDir: receiptsDir,
	}, nil
}

func (s *LocalStorage) GenerateUploadURL(ctx context.Context, key string, contentType string, expiresIn time.Duration) (string, error) {
	// The key rides in the query string so the upload handler knows where to
	// save the body. No signature: local storage trusts the auth middleware.
	return fmt.Sprintf("%s/api/v1/receipts/upload?key=%s", s.baseURL, key), nil
}

func (s *LocalStorage) GenerateDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error) {
	return fmt.Sprintf("%s/api/v1/receipts/download?key=%s", s.baseURL, key), nil
}

func (s *LocalStorage) FileExists(ctx context.Context, key string) (bool, int64, error) {
	path, err := s.keyPath(key)
	if err != nil {
		return false, 0, err
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, 0, nil
	}
	if err != nil {
		return false, 0, err
	}
	return true, info.Size(), nil
}

func (s *LocalStorage) DeleteFile(ctx context.Context, key string) error {
	path, err := s.keyPath(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *LocalStorage) ListKeys(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.receiptsDir)
	if err != nil {
		return nil, err
	}
	var keys []string
	for _, e := range entries {
		if !e.IsDir() {
			keys = append(keys, e.Name())
		}
	}
	return keys, nil
}

func (s *LocalStorage) SaveFile(key string, reader io.Reader) error {
	path, err := s.keyPath(key)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, reader); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

func (s *LocalStorage) ReadFile(key string) (io.ReadCloser, error) {
	path, err := s.keyPath(key)
	if err != nil {
		return nil, err
	}
	return os.Open(path)
}

// keyPath maps a key to a path under receiptsDir, refusing traversal.
func (s *LocalStorage) keyPath(key string) (string, error) {
	if key == "" || strings.Contains(key, "/") || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid storage key: %q", key)
	}
	return filepath.Join(s.receiptsDir, key), nil
}
