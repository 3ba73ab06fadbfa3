package query

import (
	"errors"
	"testing"

	"github.com/unimarket-dev/unimarket/internal/listing/domain"
)

func TestGetListingCountsViews(t *testing.T) {
	repo := newFakeListingRepo()
	repo.Create(&domain.Listing{Title: "Calculus textbook", SellerID: 1, Price: 25})
	handler := NewGetListingHandler(repo)

	for i := 0; i < 2; i++ {
		if _, err := handler.Handle(GetListingQuery{ID: 1}); err != nil {
			t.Fatalf("get %d: %v", i, err)
		}
	}

	if repo.views[1] != 2 {
		t.Fatalf("views = %d, want 2", repo.views[1])
	}

	listing, err := handler.Handle(GetListingQuery{ID: 1})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if listing.ViewCount != 3 {
		t.Fatalf("view count = %d, want 3", listing.ViewCount)
	}
}

func TestGetListingMissingIsNotCounted(t *testing.T) {
	repo := newFakeListingRepo()
	handler := NewGetListingHandler(repo)

	_, err := handler.Handle(GetListingQuery{ID: 42})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if len(repo.views) != 0 {
		t.Fatal("missing listing produced a view increment")
	}
}
