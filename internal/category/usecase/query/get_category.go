package query

import (
	"github.com/unimarket-dev/unimarket/internal/category/domain"
)

// GetCategoryQuery represents the query to get one category
type GetCategoryQuery struct {
	ID uint
}

// GetCategoryHandler handles single-category fetches
type GetCategoryHandler struct {
	repo domain.CategoryRepository
}

// NewGetCategoryHandler creates a new get category handler
func NewGetCategoryHandler(repo domain.CategoryRepository) *GetCategoryHandler {
	return &GetCategoryHandler{repo: repo}
}

// Handle executes the get category query
func (h *GetCategoryHandler) Handle(query GetCategoryQuery) (*domain.Category, error) {
	return h.repo.FindByID(query.ID)
}
