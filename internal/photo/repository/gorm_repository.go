package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/unimarket-dev/unimarket/internal/photo/domain"
)

// GormPhotoRepository implements PhotoRepository using GORM
type GormPhotoRepository struct {
	db *gorm.DB
}

// NewGormPhotoRepository creates a new GORM photo repository
func NewGormPhotoRepository(db *gorm.DB) *GormPhotoRepository {
	return &GormPhotoRepository{db: db}
}

// AutoMigrate runs database migrations
func (r *GormPhotoRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Photo{})
}

// Create inserts a new photo record
func (r *GormPhotoRepository) Create(photo *domain.Photo) error {
	if err := r.db.Create(photo).Error; err != nil {
		return fmt.Errorf("failed to create photo: %w", err)
	}
	return nil
}

// FindByID retrieves a photo by ID
func (r *GormPhotoRepository) FindByID(id uint) (*domain.Photo, error) {
	var photo domain.Photo
	if err := r.db.First(&photo, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find photo: %w", err)
	}
	return &photo, nil
}

// FindByListing retrieves a listing's photos ordered by sort_order
func (r *GormPhotoRepository) FindByListing(listingID uint) ([]domain.Photo, error) {
	var photos []domain.Photo
	err := r.db.
		Where("listing_id = ?", listingID).
		Order("sort_order").
		Find(&photos).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find photos: %w", err)
	}
	return photos, nil
}

// CountByListing counts the photos attached to a listing
func (r *GormPhotoRepository) CountByListing(listingID uint) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Photo{}).
		Where("listing_id = ?", listingID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count photos: %w", err)
	}
	return count, nil
}

// Delete removes a photo record
func (r *GormPhotoRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Photo{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete photo: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
