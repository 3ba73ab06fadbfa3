package command

import (
	"fmt"

	"github.com/unimarket-dev/unimarket/internal/category/domain"
)

// CreateCategoryCommand represents the command to create a category
type CreateCategoryCommand struct {
	Name        string
	Description string
	Icon        string
}

// CreateCategoryHandler handles category creation
type CreateCategoryHandler struct {
	repo domain.CategoryRepository
}

// NewCreateCategoryHandler creates a new create category handler
func NewCreateCategoryHandler(repo domain.CategoryRepository) *CreateCategoryHandler {
	return &CreateCategoryHandler{repo: repo}
}

// Handle executes the create category command
func (h *CreateCategoryHandler) Handle(cmd CreateCategoryCommand) (*domain.Category, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("name is required")
	}

	if existing, _ := h.repo.FindByName(cmd.Name); existing != nil {
		return nil, domain.ErrExists
	}

	category := &domain.Category{
		Name:        cmd.Name,
		Description: cmd.Description,
		Icon:        cmd.Icon,
	}

	if err := h.repo.Create(category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}
