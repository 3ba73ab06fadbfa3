package command

import (
	"errors"
	"testing"

	categorydomain "github.com/unimarket-dev/unimarket/internal/category/domain"
	"github.com/unimarket-dev/unimarket/internal/listing/domain"
)

type fakeListingRepo struct {
	listings map[uint]*domain.Listing
	nextID   uint
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{listings: make(map[uint]*domain.Listing)}
}

func (r *fakeListingRepo) Create(listing *domain.Listing) error {
	r.nextID++
	listing.ID = r.nextID
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
	return &copied, nil
}

func (r *fakeListingRepo) Search(filter domain.SearchFilter) ([]domain.Listing, error) {
	var out []domain.Listing
	for _, listing := range r.listings {
		out = append(out, *listing)
	}
	return out, nil
}

func (r *fakeListingRepo) FindBySeller(sellerID uint, status string) ([]domain.Listing, error) {
	var out []domain.Listing
	for _, listing := range r.listings {
		if listing.SellerID == sellerID {
			out = append(out, *listing)
		}
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

func (r *fakeListingRepo) IncrementViews(id uint) error { return nil }

func (r *fakeListingRepo) Count() (int64, error) {
	return int64(len(r.listings)), nil
}

type fakeCategoryRepo struct {
	categories map[uint]*categorydomain.Category
}

func newFakeCategoryRepo(ids ...uint) *fakeCategoryRepo {
	repo := &fakeCategoryRepo{categories: make(map[uint]*categorydomain.Category)}
	for _, id := range ids {
		repo.categories[id] = &categorydomain.Category{ID: id, Name: "Category"}
	}
	return repo
}

func (r *fakeCategoryRepo) Create(category *categorydomain.Category) error {
	category.ID = uint(len(r.categories) + 1)
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) FindByID(id uint) (*categorydomain.Category, error) {
	category, ok := r.categories[id]
	if !ok {
		return nil, categorydomain.ErrNotFound
	}
	return category, nil
}

func (r *fakeCategoryRepo) FindByName(name string) (*categorydomain.Category, error) {
	for _, category := range r.categories {
		if category.Name == name {
			return category, nil
		}
	}
	return nil, categorydomain.ErrNotFound
}

func (r *fakeCategoryRepo) FindAll() ([]categorydomain.Category, error) {
	var out []categorydomain.Category
	for _, category := range r.categories {
		out = append(out, *category)
	}
	return out, nil
}

func seedListing(t *testing.T, repo *fakeListingRepo, sellerID uint) *domain.Listing {
	t.Helper()
	listing := &domain.Listing{
		SellerID: sellerID,
		Title:    "Desk lamp",
		Price:    15,
		Status:   domain.StatusPublished,
	}
	if err := repo.Create(listing); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return listing
}

func TestUpdateListingPartial(t *testing.T) {
	repo := newFakeListingRepo()
	listing := seedListing(t, repo, 1)
	handler := NewUpdateListingHandler(repo, newFakeCategoryRepo())

	price := 20.0
	updated, previous, err := handler.Handle(UpdateListingCommand{
		ListingID: listing.ID,
		ActorID:   1,
		Price:     &price,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if previous != domain.StatusPublished {
		t.Fatalf("previous status = %q, want published", previous)
	}
	if updated.Price != 20 {
		t.Fatalf("price = %v, want 20", updated.Price)
	}
	if updated.Title != "Desk lamp" {
		t.Fatalf("title changed to %q", updated.Title)
	}
}

func TestUpdateListingNotOwner(t *testing.T) {
	repo := newFakeListingRepo()
	listing := seedListing(t, repo, 1)
	handler := NewUpdateListingHandler(repo, newFakeCategoryRepo())

	title := "Hijacked"
	_, _, err := handler.Handle(UpdateListingCommand{
		ListingID: listing.ID,
		ActorID:   2,
		Title:     &title,
	})
	if !errors.Is(err, domain.ErrNotOwner) {
		t.Fatalf("err = %v, want ErrNotOwner", err)
	}

	stored, _ := repo.FindByID(listing.ID)
	if stored.Title != "Desk lamp" {
		t.Fatal("non-owner update was applied")
	}
}

func TestUpdateListingStatusTransition(t *testing.T) {
	repo := newFakeListingRepo()
	listing := seedListing(t, repo, 1)
	handler := NewUpdateListingHandler(repo, newFakeCategoryRepo())

	sold := domain.StatusSold
	updated, previous, err := handler.Handle(UpdateListingCommand{
		ListingID: listing.ID,
		ActorID:   1,
		Status:    &sold,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if previous != domain.StatusPublished || updated.Status != domain.StatusSold {
		t.Fatalf("transition %q -> %q, want published -> sold", previous, updated.Status)
	}
}

func TestUpdateListingUnknownCategory(t *testing.T) {
	repo := newFakeListingRepo()
	listing := seedListing(t, repo, 1)
	handler := NewUpdateListingHandler(repo, newFakeCategoryRepo())

	categoryID := uint(99)
	_, _, err := handler.Handle(UpdateListingCommand{
		ListingID:  listing.ID,
		ActorID:    1,
		CategoryID: &categoryID,
	})
	if !errors.Is(err, domain.ErrInvalidCategory) {
		t.Fatalf("err = %v, want ErrInvalidCategory", err)
	}
}
