package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/unimarket-dev/unimarket/internal/favorite/domain"
)

// GormFavoriteRepository implements FavoriteRepository using GORM
type GormFavoriteRepository struct {
	db *gorm.DB
}

// NewGormFavoriteRepository creates a new GORM favorite repository
func NewGormFavoriteRepository(db *gorm.DB) *GormFavoriteRepository {
	return &GormFavoriteRepository{db: db}
}

// AutoMigrate runs database migrations
func (r *GormFavoriteRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Favorite{})
}

// Create inserts a new favorite
func (r *GormFavoriteRepository) Create(favorite *domain.Favorite) error {
	if err := r.db.Create(favorite).Error; err != nil {
		return fmt.Errorf("failed to create favorite: %w", err)
	}
	return nil
}

// FindByUser retrieves a user's favorites, newest first, with the
// listing and its associations preloaded
func (r *GormFavoriteRepository) FindByUser(userID uint) ([]domain.Favorite, error) {
	var favorites []domain.Favorite
	err := r.db.
		Preload("Listing").
		Preload("Listing.Seller").
		Preload("Listing.Category").
		Preload("Listing.Photos").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find favorites: %w", err)
	}
	return favorites, nil
}

// FindByUserAndListing retrieves one favorite pairing
func (r *GormFavoriteRepository) FindByUserAndListing(userID, listingID uint) (*domain.Favorite, error) {
	var favorite domain.Favorite
	err := r.db.
		Where("user_id = ? AND listing_id = ?", userID, listingID).
		First(&favorite).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find favorite: %w", err)
	}
	return &favorite, nil
}

// Delete removes a favorite pairing
func (r *GormFavoriteRepository) Delete(userID, listingID uint) error {
	result := r.db.
		Where("user_id = ? AND listing_id = ?", userID, listingID).
		Delete(&domain.Favorite{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete favorite: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
