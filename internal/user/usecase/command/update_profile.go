package command

import (
	"fmt"

	"github.com/unimarket-dev/unimarket/internal/user/domain"
)

// UpdateProfileCommand represents the command to update the current
// user's profile
type UpdateProfileCommand struct {
	UserID      uint
	Username    string
	Email       string
	DisplayName string
	Role        string
}

// UpdateProfileHandler handles profile updates
type UpdateProfileHandler struct {
	repo domain.UserRepository
}

// NewUpdateProfileHandler creates a new update profile handler
func NewUpdateProfileHandler(repo domain.UserRepository) *UpdateProfileHandler {
	return &UpdateProfileHandler{repo: repo}
}

// Handle executes the update profile command. Username and email moves
// are checked for uniqueness against other accounts.
func (h *UpdateProfileHandler) Handle(cmd UpdateProfileCommand) (*domain.User, error) {
	if cmd.Username == "" || cmd.Email == "" {
		return nil, fmt.Errorf("username and email are required")
	}
	if cmd.Role != "" && !domain.ValidRole(cmd.Role) {
		return nil, fmt.Errorf("invalid role")
	}

	user, err := h.repo.FindByID(cmd.UserID)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	if cmd.Username != user.Username {
		if existing, _ := h.repo.FindByUsername(cmd.Username); existing != nil {
			return nil, domain.ErrUsernameTaken
		}
	}
	if cmd.Email != user.Email {
		if existing, _ := h.repo.FindByEmail(cmd.Email); existing != nil {
			return nil, domain.ErrEmailTaken
		}
	}

	user.Username = cmd.Username
	user.Email = cmd.Email
	user.DisplayName = cmd.DisplayName
	if cmd.Role != "" {
		user.Role = cmd.Role
	}

	if err := h.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}
