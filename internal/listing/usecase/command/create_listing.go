package command

import (
	"errors"
	"fmt"

	categorydomain "github.com/unimarket-dev/unimarket/internal/category/domain"
	"github.com/unimarket-dev/unimarket/internal/listing/domain"
)

// CreateListingCommand represents the command to create a new listing
type CreateListingCommand struct {
	SellerID    uint
	CategoryID  *uint
	Title       string
	Description string
	Price       float64
	Condition   string
	Quantity    int
	Status      string
}

// CreateListingHandler handles listing creation
type CreateListingHandler struct {
	listings   domain.ListingRepository
	categories categorydomain.CategoryRepository
}

// NewCreateListingHandler creates a new create listing handler
func NewCreateListingHandler(listings domain.ListingRepository, categories categorydomain.CategoryRepository) *CreateListingHandler {
	return &CreateListingHandler{listings: listings, categories: categories}
}

// Handle executes the create listing command
func (h *CreateListingHandler) Handle(cmd CreateListingCommand) (*domain.Listing, error) {
	if cmd.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if cmd.Price < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}

	status := cmd.Status
	if status == "" {
		status = domain.StatusPublished
	}
	if !domain.ValidStatus(status) {
		return nil, fmt.Errorf("invalid status")
	}

	if cmd.CategoryID != nil {
		if _, err := h.categories.FindByID(*cmd.CategoryID); err != nil {
			if errors.Is(err, categorydomain.ErrNotFound) {
				return nil, domain.ErrInvalidCategory
			}
			return nil, err
		}
	}

	condition := cmd.Condition
	if condition == "" {
		condition = "good"
	}
	quantity := cmd.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	listing := &domain.Listing{
		SellerID:    cmd.SellerID,
		CategoryID:  cmd.CategoryID,
		Title:       cmd.Title,
		Description: cmd.Description,
		Price:       cmd.Price,
		Condition:   condition,
		Quantity:    quantity,
		Status:      status,
	}

	if err := h.listings.Create(listing); err != nil {
		return nil, fmt.Errorf("failed to create listing: %w", err)
	}

	// Reload with seller/category/photos resolved.
	return h.listings.FindByID(listing.ID)
}
