package command

import (
	"errors"
	"testing"

	"github.com/unimarket-dev/unimarket/internal/listing/domain"
)

func TestCreateListingDefaults(t *testing.T) {
	repo := newFakeListingRepo()
	handler := NewCreateListingHandler(repo, newFakeCategoryRepo())

	listing, err := handler.Handle(CreateListingCommand{
		SellerID: 1,
		Title:    "Bike",
		Price:    80,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if listing.Status != domain.StatusPublished {
		t.Fatalf("status = %q, want published default", listing.Status)
	}
	if listing.Condition != "good" {
		t.Fatalf("condition = %q, want good default", listing.Condition)
	}
	if listing.Quantity != 1 {
		t.Fatalf("quantity = %d, want 1 default", listing.Quantity)
	}
}

func TestCreateListingValidation(t *testing.T) {
	repo := newFakeListingRepo()
	handler := NewCreateListingHandler(repo, newFakeCategoryRepo(7))

	if _, err := handler.Handle(CreateListingCommand{SellerID: 1, Price: 5}); err == nil {
		t.Fatal("expected error for missing title")
	}
	if _, err := handler.Handle(CreateListingCommand{SellerID: 1, Title: "Bike", Price: -5}); err == nil {
		t.Fatal("expected error for negative price")
	}

	unknown := uint(99)
	_, err := handler.Handle(CreateListingCommand{SellerID: 1, Title: "Bike", Price: 5, CategoryID: &unknown})
	if !errors.Is(err, domain.ErrInvalidCategory) {
		t.Fatalf("err = %v, want ErrInvalidCategory", err)
	}

	known := uint(7)
	if _, err := handler.Handle(CreateListingCommand{SellerID: 1, Title: "Bike", Price: 5, CategoryID: &known}); err != nil {
		t.Fatalf("create with valid category: %v", err)
	}
}
