package command

import (
	"github.com/unimarket-dev/unimarket/internal/favorite/domain"
)

// RemoveFavoriteCommand represents the command to remove a bookmark
type RemoveFavoriteCommand struct {
	UserID    uint
	ListingID uint
}

// RemoveFavoriteHandler handles favorite removal
type RemoveFavoriteHandler struct {
	repo domain.FavoriteRepository
}

// NewRemoveFavoriteHandler creates a new remove favorite handler
func NewRemoveFavoriteHandler(repo domain.FavoriteRepository) *RemoveFavoriteHandler {
	return &RemoveFavoriteHandler{repo: repo}
}

// Handle executes the remove favorite command
func (h *RemoveFavoriteHandler) Handle(cmd RemoveFavoriteCommand) error {
	return h.repo.Delete(cmd.UserID, cmd.ListingID)
}
