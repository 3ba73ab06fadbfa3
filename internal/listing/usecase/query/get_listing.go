package query

import (
	"github.com/unimarket-dev/unimarket/internal/listing/domain"
)

// GetListingQuery represents the query to fetch one listing
type GetListingQuery struct {
	ID uint
}

// GetListingHandler handles single-listing fetches. Fetching a listing
// is a read with a side effect: the view counter is incremented on
// every hit, with no deduplication.
type GetListingHandler struct {
	repo domain.ListingRepository
}

// NewGetListingHandler creates a new get listing handler
func NewGetListingHandler(repo domain.ListingRepository) *GetListingHandler {
	return &GetListingHandler{repo: repo}
}

// Handle executes the get listing query
func (h *GetListingHandler) Handle(query GetListingQuery) (*domain.Listing, error) {
	// Confirm existence before counting the view so a miss stays a 404.
	if _, err := h.repo.FindByID(query.ID); err != nil {
		return nil, err
	}

	if err := h.repo.IncrementViews(query.ID); err != nil {
		return nil, err
	}

	return h.repo.FindByID(query.ID)
}
