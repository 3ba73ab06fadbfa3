package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/unimarket-dev/unimarket/internal/listing/domain"
)

// GormListingRepository implements ListingRepository using GORM
type GormListingRepository struct {
	db *gorm.DB
}

// NewGormListingRepository creates a new GORM listing repository
func NewGormListingRepository(db *gorm.DB) *GormListingRepository {
	return &GormListingRepository{db: db}
}

// AutoMigrate runs database migrations
func (r *GormListingRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Listing{})
}

func (r *GormListingRepository) withAssociations() *gorm.DB {
	return r.db.
		Preload("Seller").
		Preload("Category").
		Preload("Photos", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order")
		})
}

// Create inserts a new listing
func (r *GormListingRepository) Create(listing *domain.Listing) error {
	if err := r.db.Create(listing).Error; err != nil {
		return fmt.Errorf("failed to create listing: %w", err)
	}
	return nil
}

// FindByID retrieves a listing with its seller, category and photos
func (r *GormListingRepository) FindByID(id uint) (*domain.Listing, error) {
	var listing domain.Listing
	if err := r.withAssociations().First(&listing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find listing: %w", err)
	}
	return &listing, nil
}

// Search retrieves listings matching the filter with eager associations.
// Price bounds are inclusive and the text search is a case-insensitive
// substring match over title and description.
func (r *GormListingRepository) Search(filter domain.SearchFilter) ([]domain.Listing, error) {
	query := r.withAssociations().Where("status = ?", filter.Status)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.Condition != "" {
		query = query.Where("condition = ?", filter.Condition)
	}

	switch filter.SortBy {
	case domain.SortOldest:
		query = query.Order("created_at ASC")
	case domain.SortPriceLow:
		query = query.Order("price ASC")
	case domain.SortPriceHigh:
		query = query.Order("price DESC")
	default:
		query = query.Order("created_at DESC")
	}

	var listings []domain.Listing
	if err := query.Limit(filter.Limit).Offset(filter.Offset).Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("failed to search listings: %w", err)
	}
	return listings, nil
}

// FindBySeller retrieves a seller's listings, newest first, optionally
// filtered by status
func (r *GormListingRepository) FindBySeller(sellerID uint, status string) ([]domain.Listing, error) {
	query := r.withAssociations().Where("seller_id = ?", sellerID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var listings []domain.Listing
	if err := query.Order("created_at DESC").Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("failed to find seller listings: %w", err)
	}
	return listings, nil
}

// Update saves a modified listing
func (r *GormListingRepository) Update(listing *domain.Listing) error {
	if err := r.db.Save(listing).Error; err != nil {
		return fmt.Errorf("failed to update listing: %w", err)
	}
	return nil
}

// Delete removes a listing; favorites and photos cascade at the
// database level
func (r *GormListingRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Listing{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete listing: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// IncrementViews bumps the view counter with a single UPDATE expression.
// Concurrent increments may still race on the read-back, which is the
// accepted behavior for this counter.
func (r *GormListingRepository) IncrementViews(id uint) error {
	err := r.db.Model(&domain.Listing{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
	if err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}
	return nil
}

// Count returns the total number of listings
func (r *GormListingRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&domain.Listing{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count listings: %w", err)
	}
	return count, nil
}
