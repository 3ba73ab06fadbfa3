package query

import (
	"fmt"

	listingdomain "github.com/unimarket-dev/unimarket/internal/listing/domain"
	"github.com/unimarket-dev/unimarket/internal/user/domain"
)

// GetStatsQuery represents the query for marketplace statistics
type GetStatsQuery struct{}

// Stats summarizes accounts and catalog size for the admin endpoints
type Stats struct {
	TotalUsers    int64 `json:"total_users"`
	Buyers        int64 `json:"buyers"`
	Sellers       int64 `json:"sellers"`
	Admins        int64 `json:"admins"`
	TotalListings int64 `json:"total_listings"`
}

// GetStatsHandler handles statistics queries
type GetStatsHandler struct {
	users    domain.UserRepository
	listings listingdomain.ListingRepository
}

// NewGetStatsHandler creates a new stats handler
func NewGetStatsHandler(users domain.UserRepository, listings listingdomain.ListingRepository) *GetStatsHandler {
	return &GetStatsHandler{users: users, listings: listings}
}

// Handle executes the stats query
func (h *GetStatsHandler) Handle(query GetStatsQuery) (*Stats, error) {
	total, err := h.users.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	buyers, err := h.users.CountByRole(domain.RoleBuyer)
	if err != nil {
		return nil, fmt.Errorf("failed to count buyers: %w", err)
	}
	sellers, err := h.users.CountByRole(domain.RoleSeller)
	if err != nil {
		return nil, fmt.Errorf("failed to count sellers: %w", err)
	}
	admins, err := h.users.CountByRole(domain.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to count admins: %w", err)
	}
	listings, err := h.listings.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count listings: %w", err)
	}

	return &Stats{
		TotalUsers:    total,
		Buyers:        buyers,
		Sellers:       sellers,
		Admins:        admins,
		TotalListings: listings,
	}, nil
}
