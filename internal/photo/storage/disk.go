package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/unimarket-dev/unimarket/internal/photo/domain"
)

// allowedTypes maps accepted MIME types to a fallback extension.
var allowedTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// DiskStore writes uploads to a local directory and serves them back
// under a fixed URL prefix. The file write and the photo row insert are
// not atomic; a crash between the two can orphan a file.
type DiskStore struct {
	dir       string
	urlPrefix string
}

// NewDiskStore creates the uploads directory if needed and returns a
// store rooted there.
func NewDiskStore(dir, urlPrefix string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &DiskStore{dir: dir, urlPrefix: strings.TrimSuffix(urlPrefix, "/")}, nil
}

// Save validates the MIME type against the allow-list and writes the
// content under a random filename, returning the public URL and the
// generated filename.
func (s *DiskStore) Save(content io.Reader, contentType, originalName string) (url, filename string, err error) {
	fallbackExt, ok := allowedTypes[contentType]
	if !ok {
		return "", "", domain.ErrInvalidType
	}

	ext := fallbackExt
	if i := strings.LastIndex(originalName, "."); i >= 0 && i < len(originalName)-1 {
		ext = strings.ToLower(originalName[i+1:])
	}

	filename = uuid.New().String() + "." + ext

	f, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		return "", "", fmt.Errorf("failed to write file: %w", err)
	}

	return s.urlPrefix + "/" + filename, filename, nil
}

// Remove deletes the file behind a stored URL. A missing file is not an
// error; the row is the source of truth for deletion.
func (s *DiskStore) Remove(url string) error {
	path := filepath.Join(s.dir, filepath.Base(url))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}
