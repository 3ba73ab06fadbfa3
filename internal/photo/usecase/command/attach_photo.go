package command

import (
	"fmt"
	"io"

	listingdomain "github.com/unimarket-dev/unimarket/internal/listing/domain"
	"github.com/unimarket-dev/unimarket/internal/photo/domain"
	"github.com/unimarket-dev/unimarket/internal/photo/storage"
)

// AttachPhotoCommand uploads a file and records it against a listing
type AttachPhotoCommand struct {
	ListingID   uint
	ActorID     uint
	Content     io.Reader
	ContentType string
	Filename    string
}

// AttachPhotoHandler handles listing photo uploads
type AttachPhotoHandler struct {
	photos   domain.PhotoRepository
	listings listingdomain.ListingRepository
	store    *storage.DiskStore
}

// NewAttachPhotoHandler creates a new attach photo handler
func NewAttachPhotoHandler(
	photos domain.PhotoRepository,
	listings listingdomain.ListingRepository,
	store *storage.DiskStore,
) *AttachPhotoHandler {
	return &AttachPhotoHandler{photos: photos, listings: listings, store: store}
}

// Handle executes the attach photo command. Only the listing owner may
// attach photos. The sort order is the photo count at upload time.
func (h *AttachPhotoHandler) Handle(cmd AttachPhotoCommand) (*domain.Photo, error) {
	listing, err := h.listings.FindByID(cmd.ListingID)
	if err != nil {
		return nil, err
	}
	if listing.SellerID != cmd.ActorID {
		return nil, domain.ErrNotAuthorized
	}

	url, _, err := h.store.Save(cmd.Content, cmd.ContentType, cmd.Filename)
	if err != nil {
		return nil, err
	}

	count, err := h.photos.CountByListing(cmd.ListingID)
	if err != nil {
		return nil, err
	}

	photo := &domain.Photo{
		ListingID: cmd.ListingID,
		URL:       url,
		AltText:   cmd.Filename,
		SortOrder: int(count),
	}

	if err := h.photos.Create(photo); err != nil {
		return nil, fmt.Errorf("failed to record photo: %w", err)
	}

	return photo, nil
}
