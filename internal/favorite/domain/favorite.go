package domain

import (
	"errors"
	"time"

	listingdomain "github.com/unimarket-dev/unimarket/internal/listing/domain"
)

var (
	ErrNotFound  = errors.New("favorite not found")
	ErrDuplicate = errors.New("already in favorites")
)

// Favorite is a unique (user, listing) bookmark.
type Favorite struct {
	ID        uint      `json:"favorite_id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex:idx_fav_user_listing;not null"`
	ListingID uint      `json:"listing_id" gorm:"uniqueIndex:idx_fav_user_listing;not null"`
	CreatedAt time.Time `json:"created_at"`

	Listing listingdomain.Listing `json:"listing" gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name
func (Favorite) TableName() string {
	return "favorites"
}

// FavoriteRepository defines the contract for favorite data access
type FavoriteRepository interface {
	Create(favorite *Favorite) error
	FindByUser(userID uint) ([]Favorite, error)
	FindByUserAndListing(userID, listingID uint) (*Favorite, error)
	Delete(userID, listingID uint) error
}
