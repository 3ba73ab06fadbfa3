package query

import (
	"errors"

	"github.com/unimarket-dev/unimarket/internal/favorite/domain"
)

// CheckFavoriteQuery asks whether a listing is bookmarked by a user
type CheckFavoriteQuery struct {
	UserID    uint
	ListingID uint
}

// CheckFavoriteHandler handles favorite membership checks
type CheckFavoriteHandler struct {
	repo domain.FavoriteRepository
}

// NewCheckFavoriteHandler creates a new check favorite handler
func NewCheckFavoriteHandler(repo domain.FavoriteRepository) *CheckFavoriteHandler {
	return &CheckFavoriteHandler{repo: repo}
}

// Handle executes the check favorite query
func (h *CheckFavoriteHandler) Handle(query CheckFavoriteQuery) (bool, error) {
	_, err := h.repo.FindByUserAndListing(query.UserID, query.ListingID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
