package query

import (
	"fmt"

	"github.com/unimarket-dev/unimarket/internal/listing/domain"
)

// SearchListingsQuery represents the catalog search query
type SearchListingsQuery struct {
	Filter domain.SearchFilter
}

// SearchListingsHandler handles catalog searches
type SearchListingsHandler struct {
	repo domain.ListingRepository
}

// NewSearchListingsHandler creates a new search listings handler
func NewSearchListingsHandler(repo domain.ListingRepository) *SearchListingsHandler {
	return &SearchListingsHandler{repo: repo}
}

// Handle executes the search. Status defaults to published, sort to
// newest, and the page size is capped.
func (h *SearchListingsHandler) Handle(query SearchListingsQuery) ([]domain.Listing, error) {
	filter := query.Filter

	if filter.Status == "" {
		filter.Status = domain.StatusPublished
	}
	if filter.SortBy == "" {
		filter.SortBy = domain.SortNewest
	}
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	if filter.Limit > domain.MaxPageSize {
		filter.Limit = domain.MaxPageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	if filter.MinPrice != nil && *filter.MinPrice < 0 {
		return nil, fmt.Errorf("min_price cannot be negative")
	}
	if filter.MaxPrice != nil && *filter.MaxPrice < 0 {
		return nil, fmt.Errorf("max_price cannot be negative")
	}

	return h.repo.Search(filter)
}
