package command

import (
	"fmt"

	"github.com/unimarket-dev/unimarket/internal/user/domain"
	"github.com/unimarket-dev/unimarket/pkg/auth"
)

// RegisterUserCommand represents the command to register a new account
type RegisterUserCommand struct {
	Username    string
	Email       string
	Password    string
	DisplayName string
	Role        string // Optional, defaults to "buyer"
}

// RegisterUserHandler handles account registration
type RegisterUserHandler struct {
	repo domain.UserRepository
}

// NewRegisterUserHandler creates a new register user handler
func NewRegisterUserHandler(repo domain.UserRepository) *RegisterUserHandler {
	return &RegisterUserHandler{repo: repo}
}

func validUsername(username string) bool {
	if len(username) < 3 || len(username) > 50 {
		return false
	}
	for _, r := range username {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		default:
			return false
		}
	}
	return true
}

// Handle executes the register user command
func (h *RegisterUserHandler) Handle(cmd RegisterUserCommand) (*domain.User, error) {
	if !validUsername(cmd.Username) {
		return nil, fmt.Errorf("username must be 3-50 characters of letters, numbers and underscores")
	}
	if cmd.Email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if len(cmd.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	role := cmd.Role
	if role == "" {
		role = domain.RoleBuyer
	}
	if !domain.ValidRole(role) {
		return nil, fmt.Errorf("invalid role")
	}

	if existing, _ := h.repo.FindByUsername(cmd.Username); existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	if existing, _ := h.repo.FindByEmail(cmd.Email); existing != nil {
		return nil, domain.ErrEmailTaken
	}

	hash, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	displayName := cmd.DisplayName
	if displayName == "" {
		displayName = cmd.Username
	}

	user := &domain.User{
		Username:     cmd.Username,
		Email:        cmd.Email,
		PasswordHash: hash,
		DisplayName:  displayName,
		Role:         role,
	}

	if err := h.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}
