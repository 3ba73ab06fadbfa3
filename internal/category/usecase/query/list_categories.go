package query

import (
	"github.com/unimarket-dev/unimarket/internal/category/domain"
)

// ListCategoriesQuery represents the query to list all categories
type ListCategoriesQuery struct{}

// ListCategoriesHandler handles category listing
type ListCategoriesHandler struct {
	repo domain.CategoryRepository
}

// NewListCategoriesHandler creates a new list categories handler
func NewListCategoriesHandler(repo domain.CategoryRepository) *ListCategoriesHandler {
	return &ListCategoriesHandler{repo: repo}
}

// Handle executes the list categories query
func (h *ListCategoriesHandler) Handle(query ListCategoriesQuery) ([]domain.Category, error) {
	return h.repo.FindAll()
}
