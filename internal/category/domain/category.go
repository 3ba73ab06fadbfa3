package domain

import "errors"

var (
	ErrNotFound = errors.New("category not found")
	ErrExists   = errors.New("category already exists")
)

// Category groups listings for browsing and filtering.
type Category struct {
	ID          uint   `json:"category_id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:100;uniqueIndex;not null"`
	Description string `json:"description" gorm:"type:text"`
	Icon        string `json:"icon" gorm:"size:50"`
}

// TableName specifies the table name
func (Category) TableName() string {
	return "categories"
}

// CategoryRepository defines the contract for category data access
type CategoryRepository interface {
	Create(category *Category) error
	FindByID(id uint) (*Category, error)
	FindByName(name string) (*Category, error)
	FindAll() ([]Category, error)
}
