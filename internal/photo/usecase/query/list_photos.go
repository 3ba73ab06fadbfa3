package query

import (
	"github.com/unimarket-dev/unimarket/internal/photo/domain"
)

// ListPhotosQuery represents the query for a listing's photos
type ListPhotosQuery struct {
	ListingID uint
}

// ListPhotosHandler handles photo listing
type ListPhotosHandler struct {
	repo domain.PhotoRepository
}

// NewListPhotosHandler creates a new list photos handler
func NewListPhotosHandler(repo domain.PhotoRepository) *ListPhotosHandler {
	return &ListPhotosHandler{repo: repo}
}

// Handle executes the list photos query, ordered by sort_order
func (h *ListPhotosHandler) Handle(query ListPhotosQuery) ([]domain.Photo, error) {
	return h.repo.FindByListing(query.ListingID)
}
