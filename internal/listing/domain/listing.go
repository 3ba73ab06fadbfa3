package domain

import (
	"errors"
	"time"

	categorydomain "github.com/unimarket-dev/unimarket/internal/category/domain"
	photodomain "github.com/unimarket-dev/unimarket/internal/photo/domain"
	userdomain "github.com/unimarket-dev/unimarket/internal/user/domain"
)

// Listing statuses
const (
	StatusPublished = "published"
	StatusDraft     = "draft"
	StatusSold      = "sold"
)

// Sort modes accepted by Search
const (
	SortNewest    = "newest"
	SortOldest    = "oldest"
	SortPriceLow  = "price_low"
	SortPriceHigh = "price_high"
)

// MaxPageSize caps the limit accepted by Search.
const MaxPageSize = 100

var (
	ErrNotFound        = errors.New("listing not found")
	ErrNotOwner        = errors.New("not authorized to modify this listing")
	ErrInvalidCategory = errors.New("invalid category")
)

// Listing is a sellable item posted by a user.
type Listing struct {
	ID          uint      `json:"listing_id" gorm:"primaryKey"`
	SellerID    uint      `json:"seller_id" gorm:"index;not null"`
	CategoryID  *uint     `json:"category_id" gorm:"index"`
	Title       string    `json:"title" gorm:"size:200;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Price       float64   `json:"price" gorm:"type:decimal(10,2);not null"`
	Condition   string    `json:"condition" gorm:"size:20;default:'good'"`
	Quantity    int       `json:"quantity" gorm:"default:1"`
	Status      string    `json:"status" gorm:"size:20;default:'published'"`
	ViewCount   int       `json:"view_count" gorm:"default:0"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Seller   userdomain.User          `json:"seller" gorm:"foreignKey:SellerID;constraint:OnDelete:CASCADE"`
	Category *categorydomain.Category `json:"category" gorm:"foreignKey:CategoryID"`
	Photos   []photodomain.Photo      `json:"photos" gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name
func (Listing) TableName() string {
	return "listings"
}

// ValidStatus reports whether status is one of the accepted listing statuses.
func ValidStatus(status string) bool {
	switch status {
	case StatusPublished, StatusDraft, StatusSold:
		return true
	}
	return false
}

// SearchFilter narrows and orders catalog queries. Nil pointer fields
// mean "no constraint"; price bounds are inclusive.
type SearchFilter struct {
	Search     string
	CategoryID *uint
	MinPrice   *float64
	MaxPrice   *float64
	Condition  string
	Status     string
	SortBy     string
	Limit      int
	Offset     int
}

// ListingRepository defines the contract for listing data access
type ListingRepository interface {
	Create(listing *Listing) error
	FindByID(id uint) (*Listing, error)
	Search(filter SearchFilter) ([]Listing, error)
	FindBySeller(sellerID uint, status string) ([]Listing, error)
	Update(listing *Listing) error
	Delete(id uint) error
	IncrementViews(id uint) error
	Count() (int64, error)
}
