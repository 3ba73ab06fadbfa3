package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/unimarket-dev/unimarket/internal/category/domain"
	"github.com/unimarket-dev/unimarket/pkg/logger"
)

// GormCategoryRepository implements CategoryRepository using GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GORM category repository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// AutoMigrate runs database migrations
func (r *GormCategoryRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Category{})
}

// Create inserts a new category
func (r *GormCategoryRepository) Create(category *domain.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// FindByID retrieves a category by ID
func (r *GormCategoryRepository) FindByID(id uint) (*domain.Category, error) {
	var category domain.Category
	if err := r.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return &category, nil
}

// FindByName retrieves a category by its unique name
func (r *GormCategoryRepository) FindByName(name string) (*domain.Category, error) {
	var category domain.Category
	if err := r.db.Where("name = ?", name).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return &category, nil
}

// FindAll retrieves all categories ordered by name
func (r *GormCategoryRepository) FindAll() ([]domain.Category, error) {
	var categories []domain.Category
	if err := r.db.Order("name").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to find categories: %w", err)
	}
	return categories, nil
}

// SeedDefaults inserts a starter set of categories when missing.
func (r *GormCategoryRepository) SeedDefaults() {
	defaults := []domain.Category{
		{Name: "Books", Description: "Textbooks and course materials", Icon: "book"},
		{Name: "Electronics", Description: "Laptops, phones and accessories", Icon: "cpu"},
		{Name: "Furniture", Description: "Dorm and apartment furniture", Icon: "armchair"},
		{Name: "Clothing", Description: "Clothes, shoes and accessories", Icon: "shirt"},
		{Name: "Other", Description: "Everything else", Icon: "box"},
	}

	for _, category := range defaults {
		if _, err := r.FindByName(category.Name); errors.Is(err, domain.ErrNotFound) {
			if err := r.db.Create(&category).Error; err != nil {
				logger.Logger.Warn().Err(err).Str("category", category.Name).Msg("Failed to seed category")
			}
		}
	}
}
