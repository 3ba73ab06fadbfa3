package command

import (
	"fmt"

	"github.com/unimarket-dev/unimarket/internal/favorite/domain"
	listingdomain "github.com/unimarket-dev/unimarket/internal/listing/domain"
)

// AddFavoriteCommand represents the command to bookmark a listing
type AddFavoriteCommand struct {
	UserID    uint
	ListingID uint
}

// AddFavoriteHandler handles favorite creation
type AddFavoriteHandler struct {
	favorites domain.FavoriteRepository
	listings  listingdomain.ListingRepository
}

// NewAddFavoriteHandler creates a new add favorite handler
func NewAddFavoriteHandler(favorites domain.FavoriteRepository, listings listingdomain.ListingRepository) *AddFavoriteHandler {
	return &AddFavoriteHandler{favorites: favorites, listings: listings}
}

// Handle executes the add favorite command
func (h *AddFavoriteHandler) Handle(cmd AddFavoriteCommand) (*domain.Favorite, error) {
	if _, err := h.listings.FindByID(cmd.ListingID); err != nil {
		return nil, err
	}

	if existing, _ := h.favorites.FindByUserAndListing(cmd.UserID, cmd.ListingID); existing != nil {
		return nil, domain.ErrDuplicate
	}

	favorite := &domain.Favorite{
		UserID:    cmd.UserID,
		ListingID: cmd.ListingID,
	}

	if err := h.favorites.Create(favorite); err != nil {
		return nil, fmt.Errorf("failed to create favorite: %w", err)
	}

	return favorite, nil
}
