package domain

import "errors"

var (
	ErrNotFound      = errors.New("photo not found")
	ErrInvalidType   = errors.New("file type not allowed")
	ErrNotAuthorized = errors.New("not authorized to manage this photo")
)

// Photo is an uploaded image attached to a listing. The URL points at a
// file under the local uploads directory. SortOrder is assigned from the
// listing's photo count at upload time and is not compacted on deletion.
type Photo struct {
	ID        uint   `json:"photo_id" gorm:"primaryKey"`
	ListingID uint   `json:"listing_id" gorm:"index;not null"`
	URL       string `json:"url" gorm:"type:text;not null"`
	AltText   string `json:"alt_text" gorm:"size:255"`
	SortOrder int    `json:"sort_order" gorm:"default:0"`
}

// TableName specifies the table name
func (Photo) TableName() string {
	return "photos"
}

// PhotoRepository defines the contract for photo data access
type PhotoRepository interface {
	Create(photo *Photo) error
	FindByID(id uint) (*Photo, error)
	FindByListing(listingID uint) ([]Photo, error)
	CountByListing(listingID uint) (int64, error)
	Delete(id uint) error
}
