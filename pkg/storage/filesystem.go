package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage persists uploaded media on disk under a base directory and
// resolves public URLs against a configured base, mirroring a hosted bucket.
type LocalStorage struct {
	baseDir       string
	bucket        string
	publicBaseURL string
}

// NewLocalStorage ensures the bucket directory exists and returns a handle.
func NewLocalStorage(baseDir, bucket, publicBaseURL string) (*LocalStorage, error) {
	if baseDir == "" {
		baseDir = "./media"
	}
	if bucket == "" {
		bucket = "occurrences-media"
	}
	root := filepath.Join(baseDir, bucket)
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create media directory: %w", err)
	}
	return &LocalStorage{
		baseDir:       baseDir,
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}, nil
}

// SaveStream copies the reader into the object path. Existing objects are
// never overwritten; a colliding path is an error.
func (s *LocalStorage) SaveStream(objectPath string, r io.Reader) (string, error) {
	path := s.resolve(objectPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("prepare media directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create media file: %w", err)
	}
	defer file.Close() //nolint:errcheck
	if _, err := io.Copy(file, r); err != nil {
		return "", fmt.Errorf("write media stream: %w", err)
	}
	return objectPath, nil
}

// Open returns a read-only handle for the stored object.
func (s *LocalStorage) Open(objectPath string) (*os.File, error) {
	file, err := os.Open(s.resolve(objectPath))
	if err != nil {
		return nil, fmt.Errorf("open media file: %w", err)
	}
	return file, nil
}

// Delete removes a stored object if present.
func (s *LocalStorage) Delete(objectPath string) error {
	if err := os.Remove(s.resolve(objectPath)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete media file: %w", err)
	}
	return nil
}

// PublicURL resolves the publicly reachable URL for a stored object.
func (s *LocalStorage) PublicURL(objectPath string) string {
	return fmt.Sprintf("%s/%s/%s", s.publicBaseURL, s.bucket, strings.TrimLeft(objectPath, "/"))
}

// Bucket exposes the logical bucket name.
func (s *LocalStorage) Bucket() string {
	return s.bucket
}

// Root returns the directory files are served from (wired to a static route).
func (s *LocalStorage) Root() string {
	return filepath.Join(s.baseDir, s.bucket)
}

func (s *LocalStorage) resolve(objectPath string) string {
	return filepath.Join(s.baseDir, s.bucket, filepath.FromSlash(objectPath))
}
