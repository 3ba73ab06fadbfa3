package query

import (
	"testing"

	"github.com/unimarket-dev/unimarket/internal/listing/domain"
)

// fakeListingRepo records the filter it was searched with and counts
// view increments.
type fakeListingRepo struct {
	listings   map[uint]*domain.Listing
	lastFilter domain.SearchFilter
	views      map[uint]int
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{
		listings: make(map[uint]*domain.Listing),
		views:    make(map[uint]int),
	}
}

func (r *fakeListingRepo) Create(listing *domain.Listing) error {
	listing.ID = uint(len(r.listings) + 1)
	copied := *listing
	r.listings[listing.ID] = &copied
	return nil
}

func (r *fakeListingRepo) FindByID(id uint) (*domain.Listing, error) {
	listing, ok := r.listings[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *listing
	copied.ViewCount = copied.ViewCount + r.views[id]
	return &copied, nil
}

func (r *fakeListingRepo) Search(filter domain.SearchFilter) ([]domain.Listing, error) {
	r.lastFilter = filter
	var out []domain.Listing
	for _, listing := range r.listings {
		out = append(out, *listing)
	}
	return out, nil
}

func (r *fakeListingRepo) FindBySeller(sellerID uint, status string) ([]domain.Listing, error) {
	var out []domain.Listing
	for _, listing := range r.listings {
		if listing.SellerID != sellerID {
			continue
		}
		if status != "" && listing.Status != status {
			continue
		}
		out = append(out, *listing)
	}
	return out, nil
}

func (r *fakeListingRepo) Update(listing *domain.Listing) error {
	if _, ok := r.listings[listing.ID]; !ok {
		return domain.ErrNotFound
	}
	copied := *listing
	r.listings[listing.ID] = &copied
	return nil
}

func (r *fakeListingRepo) Delete(id uint) error {
	if _, ok := r.listings[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.listings, id)
	return nil
}

func (r *fakeListingRepo) IncrementViews(id uint) error {
	if _, ok := r.listings[id]; !ok {
		return domain.ErrNotFound
	}
	r.views[id]++
	return nil
}

func (r *fakeListingRepo) Count() (int64, error) {
	return int64(len(r.listings)), nil
}

func TestSearchDefaults(t *testing.T) {
	repo := newFakeListingRepo()
	handler := NewSearchListingsHandler(repo)

	if _, err := handler.Handle(SearchListingsQuery{}); err != nil {
		t.Fatalf("search: %v", err)
	}

	got := repo.lastFilter
	if got.Status != domain.StatusPublished {
		t.Fatalf("status = %q, want published default", got.Status)
	}
	if got.SortBy != domain.SortNewest {
		t.Fatalf("sort = %q, want newest default", got.SortBy)
	}
	if got.Limit != 50 {
		t.Fatalf("limit = %d, want 50", got.Limit)
	}
}

func TestSearchCapsPageSize(t *testing.T) {
	repo := newFakeListingRepo()
	handler := NewSearchListingsHandler(repo)

	q := SearchListingsQuery{Filter: domain.SearchFilter{Limit: 5000, Offset: -3}}
	if _, err := handler.Handle(q); err != nil {
		t.Fatalf("search: %v", err)
	}

	if repo.lastFilter.Limit != domain.MaxPageSize {
		t.Fatalf("limit = %d, want %d", repo.lastFilter.Limit, domain.MaxPageSize)
	}
	if repo.lastFilter.Offset != 0 {
		t.Fatalf("offset = %d, want 0", repo.lastFilter.Offset)
	}
}

func TestSearchRejectsNegativePrices(t *testing.T) {
	repo := newFakeListingRepo()
	handler := NewSearchListingsHandler(repo)

	bad := -1.0
	if _, err := handler.Handle(SearchListingsQuery{Filter: domain.SearchFilter{MinPrice: &bad}}); err == nil {
		t.Fatal("expected error for negative min_price")
	}
	if _, err := handler.Handle(SearchListingsQuery{Filter: domain.SearchFilter{MaxPrice: &bad}}); err == nil {
		t.Fatal("expected error for negative max_price")
	}
}
