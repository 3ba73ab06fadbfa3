package query

import (
	"fmt"

	"github.com/unimarket-dev/unimarket/internal/listing/domain"
)

// ListSellerListingsQuery represents the query for one seller's listings
type ListSellerListingsQuery struct {
	SellerID uint
	Status   string // Optional
}

// ListSellerListingsHandler handles seller listing queries
type ListSellerListingsHandler struct {
	repo domain.ListingRepository
}

// NewListSellerListingsHandler creates a new seller listings handler
func NewListSellerListingsHandler(repo domain.ListingRepository) *ListSellerListingsHandler {
	return &ListSellerListingsHandler{repo: repo}
}

// Handle executes the seller listings query
func (h *ListSellerListingsHandler) Handle(query ListSellerListingsQuery) ([]domain.Listing, error) {
	if query.Status != "" && !domain.ValidStatus(query.Status) {
		return nil, fmt.Errorf("invalid status")
	}
	return h.repo.FindBySeller(query.SellerID, query.Status)
}
