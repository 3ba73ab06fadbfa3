package command

import (
	"io"

	"github.com/unimarket-dev/unimarket/internal/photo/storage"
)

// UploadPhotoCommand represents a bare file upload, not yet attached to
// a listing
type UploadPhotoCommand struct {
	Content     io.Reader
	ContentType string
	Filename    string
}

// UploadResult carries the stored file's public location
type UploadResult struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// UploadPhotoHandler handles bare uploads
type UploadPhotoHandler struct {
	store *storage.DiskStore
}

// NewUploadPhotoHandler creates a new upload photo handler
func NewUploadPhotoHandler(store *storage.DiskStore) *UploadPhotoHandler {
	return &UploadPhotoHandler{store: store}
}

// Handle executes the upload command
func (h *UploadPhotoHandler) Handle(cmd UploadPhotoCommand) (*UploadResult, error) {
	url, filename, err := h.store.Save(cmd.Content, cmd.ContentType, cmd.Filename)
	if err != nil {
		return nil, err
	}
	return &UploadResult{URL: url, Filename: filename}, nil
}
