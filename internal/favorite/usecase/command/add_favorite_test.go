package command

import (
	"errors"
	"testing"

	"github.com/unimarket-dev/unimarket/internal/favorite/domain"
	listingdomain "github.com/unimarket-dev/unimarket/internal/listing/domain"
)

type fakeFavoriteRepo struct {
	favorites []*domain.Favorite
	nextID    uint
}

func (r *fakeFavoriteRepo) Create(favorite *domain.Favorite) error {
	r.nextID++
	favorite.ID = r.nextID
	copied := *favorite
	r.favorites = append(r.favorites, &copied)
	return nil
}

func (r *fakeFavoriteRepo) FindByUser(userID uint) ([]domain.Favorite, error) {
	var out []domain.Favorite
	for i := len(r.favorites) - 1; i >= 0; i-- {
		if r.favorites[i].UserID == userID {
			out = append(out, *r.favorites[i])
		}
	}
	return out, nil
}

func (r *fakeFavoriteRepo) FindByUserAndListing(userID, listingID uint) (*domain.Favorite, error) {
	for _, favorite := range r.favorites {
		if favorite.UserID == userID && favorite.ListingID == listingID {
			copied := *favorite
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeFavoriteRepo) Delete(userID, listingID uint) error {
	for i, favorite := range r.favorites {
		if favorite.UserID == userID && favorite.ListingID == listingID {
			r.favorites = append(r.favorites[:i], r.favorites[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeListingRepo struct {
	listings map[uint]*listingdomain.Listing
}

func (r *fakeListingRepo) Create(listing *listingdomain.Listing) error { return nil }

func (r *fakeListingRepo) FindByID(id uint) (*listingdomain.Listing, error) {
	listing, ok := r.listings[id]
	if !ok {
		return nil, listingdomain.ErrNotFound
	}
	return listing, nil
}

func (r *fakeListingRepo) Search(filter listingdomain.SearchFilter) ([]listingdomain.Listing, error) {
	return nil, nil
}

func (r *fakeListingRepo) FindBySeller(sellerID uint, status string) ([]listingdomain.Listing, error) {
	return nil, nil
}

func (r *fakeListingRepo) Update(listing *listingdomain.Listing) error { return nil }
func (r *fakeListingRepo) Delete(id uint) error                        { return nil }
func (r *fakeListingRepo) IncrementViews(id uint) error                { return nil }
func (r *fakeListingRepo) Count() (int64, error)                       { return 0, nil }

func oneListing() *fakeListingRepo {
	return &fakeListingRepo{listings: map[uint]*listingdomain.Listing{
		10: {ID: 10, Title: "Bike", SellerID: 2},
	}}
}

func TestAddFavorite(t *testing.T) {
	favorites := &fakeFavoriteRepo{}
	handler := NewAddFavoriteHandler(favorites, oneListing())

	favorite, err := handler.Handle(AddFavoriteCommand{UserID: 1, ListingID: 10})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if favorite.UserID != 1 || favorite.ListingID != 10 {
		t.Fatalf("favorite = %+v", favorite)
	}
}

func TestAddFavoriteDuplicate(t *testing.T) {
	favorites := &fakeFavoriteRepo{}
	handler := NewAddFavoriteHandler(favorites, oneListing())

	if _, err := handler.Handle(AddFavoriteCommand{UserID: 1, ListingID: 10}); err != nil {
		t.Fatalf("first add: %v", err)
	}

	_, err := handler.Handle(AddFavoriteCommand{UserID: 1, ListingID: 10})
	if !errors.Is(err, domain.ErrDuplicate) {
		t.Fatalf("err = %v, want ErrDuplicate", err)
	}
	if len(favorites.favorites) != 1 {
		t.Fatalf("stored %d favorites, want 1", len(favorites.favorites))
	}
}

func TestAddFavoriteUnknownListing(t *testing.T) {
	handler := NewAddFavoriteHandler(&fakeFavoriteRepo{}, oneListing())

	_, err := handler.Handle(AddFavoriteCommand{UserID: 1, ListingID: 99})
	if !errors.Is(err, listingdomain.ErrNotFound) {
		t.Fatalf("err = %v, want listing ErrNotFound", err)
	}
}

func TestRemoveFavorite(t *testing.T) {
	favorites := &fakeFavoriteRepo{}
	add := NewAddFavoriteHandler(favorites, oneListing())
	remove := NewRemoveFavoriteHandler(favorites)

	if _, err := add.Handle(AddFavoriteCommand{UserID: 1, ListingID: 10}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := remove.Handle(RemoveFavoriteCommand{UserID: 1, ListingID: 10}); err != nil {
		t.Fatalf("remove: %v", err)
	}

	err := remove.Handle(RemoveFavoriteCommand{UserID: 1, ListingID: 10})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second remove err = %v, want ErrNotFound", err)
	}
}
