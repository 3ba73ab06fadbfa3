package command

import (
	"github.com/unimarket-dev/unimarket/internal/listing/domain"
)

// DeleteListingCommand represents the command to delete a listing
type DeleteListingCommand struct {
	ListingID uint
	ActorID   uint
}

// DeleteListingHandler handles listing deletion
type DeleteListingHandler struct {
	listings domain.ListingRepository
}

// NewDeleteListingHandler creates a new delete listing handler
func NewDeleteListingHandler(listings domain.ListingRepository) *DeleteListingHandler {
	return &DeleteListingHandler{listings: listings}
}

// Handle executes the delete listing command. Only the owning seller may
// delete a listing.
func (h *DeleteListingHandler) Handle(cmd DeleteListingCommand) error {
	listing, err := h.listings.FindByID(cmd.ListingID)
	if err != nil {
		return err
	}
	if listing.SellerID != cmd.ActorID {
		return domain.ErrNotOwner
	}

	return h.listings.Delete(cmd.ListingID)
}
