package query

import (
	"github.com/unimarket-dev/unimarket/internal/favorite/domain"
)

// ListFavoritesQuery represents the query for a user's favorites
type ListFavoritesQuery struct {
	UserID uint
}

// ListFavoritesHandler handles favorite listing
type ListFavoritesHandler struct {
	repo domain.FavoriteRepository
}

// NewListFavoritesHandler creates a new list favorites handler
func NewListFavoritesHandler(repo domain.FavoriteRepository) *ListFavoritesHandler {
	return &ListFavoritesHandler{repo: repo}
}

// Handle executes the list favorites query
func (h *ListFavoritesHandler) Handle(query ListFavoritesQuery) ([]domain.Favorite, error) {
	return h.repo.FindByUser(query.UserID)
}
