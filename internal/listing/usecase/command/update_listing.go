package command

import (
	"errors"
	"fmt"

	categorydomain "github.com/unimarket-dev/unimarket/internal/category/domain"
	"github.com/unimarket-dev/unimarket/internal/listing/domain"
)

// UpdateListingCommand represents a partial update of a listing. Nil
// fields are left unchanged.
type UpdateListingCommand struct {
	ListingID   uint
	ActorID     uint
	CategoryID  *uint
	Title       *string
	Description *string
	Price       *float64
	Condition   *string
	Quantity    *int
	Status      *string
}

// UpdateListingHandler handles listing updates
type UpdateListingHandler struct {
	listings   domain.ListingRepository
	categories categorydomain.CategoryRepository
}

// NewUpdateListingHandler creates a new update listing handler
func NewUpdateListingHandler(listings domain.ListingRepository, categories categorydomain.CategoryRepository) *UpdateListingHandler {
	return &UpdateListingHandler{listings: listings, categories: categories}
}

// Handle executes the update listing command. Only the owning seller may
// update a listing. The returned previous status lets callers observe
// status transitions (for the sold event).
func (h *UpdateListingHandler) Handle(cmd UpdateListingCommand) (*domain.Listing, string, error) {
	listing, err := h.listings.FindByID(cmd.ListingID)
	if err != nil {
		return nil, "", err
	}
	if listing.SellerID != cmd.ActorID {
		return nil, "", domain.ErrNotOwner
	}

	previousStatus := listing.Status

	if cmd.Title != nil {
		if *cmd.Title == "" {
			return nil, "", fmt.Errorf("title cannot be empty")
		}
		listing.Title = *cmd.Title
	}
	if cmd.Description != nil {
		listing.Description = *cmd.Description
	}
	if cmd.Price != nil {
		if *cmd.Price < 0 {
			return nil, "", fmt.Errorf("price cannot be negative")
		}
		listing.Price = *cmd.Price
	}
	if cmd.Condition != nil {
		listing.Condition = *cmd.Condition
	}
	if cmd.Quantity != nil {
		listing.Quantity = *cmd.Quantity
	}
	if cmd.Status != nil {
		if !domain.ValidStatus(*cmd.Status) {
			return nil, "", fmt.Errorf("invalid status")
		}
		listing.Status = *cmd.Status
	}
	if cmd.CategoryID != nil {
		if _, err := h.categories.FindByID(*cmd.CategoryID); err != nil {
			if errors.Is(err, categorydomain.ErrNotFound) {
				return nil, "", domain.ErrInvalidCategory
			}
			return nil, "", err
		}
		listing.CategoryID = cmd.CategoryID
	}

	if err := h.listings.Update(listing); err != nil {
		return nil, "", fmt.Errorf("failed to update listing: %w", err)
	}

	return listing, previousStatus, nil
}
