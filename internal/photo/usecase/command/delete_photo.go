package command

import (
	listingdomain "github.com/unimarket-dev/unimarket/internal/listing/domain"
	"github.com/unimarket-dev/unimarket/internal/photo/domain"
	"github.com/unimarket-dev/unimarket/internal/photo/storage"
)

// DeletePhotoCommand represents the command to delete a photo
type DeletePhotoCommand struct {
	PhotoID uint
	ActorID uint
}

// DeletePhotoHandler handles photo deletion
type DeletePhotoHandler struct {
	photos   domain.PhotoRepository
	listings listingdomain.ListingRepository
	store    *storage.DiskStore
}

// NewDeletePhotoHandler creates a new delete photo handler
func NewDeletePhotoHandler(
	photos domain.PhotoRepository,
	listings listingdomain.ListingRepository,
	store *storage.DiskStore,
) *DeletePhotoHandler {
	return &DeletePhotoHandler{photos: photos, listings: listings, store: store}
}

// Handle executes the delete photo command. Ownership is checked through
// the photo's listing. The disk file goes first; its absence is ignored.
func (h *DeletePhotoHandler) Handle(cmd DeletePhotoCommand) error {
	photo, err := h.photos.FindByID(cmd.PhotoID)
	if err != nil {
		return err
	}

	listing, err := h.listings.FindByID(photo.ListingID)
	if err != nil {
		return err
	}
	if listing.SellerID != cmd.ActorID {
		return domain.ErrNotAuthorized
	}

	if err := h.store.Remove(photo.URL); err != nil {
		return err
	}

	return h.photos.Delete(cmd.PhotoID)
}
