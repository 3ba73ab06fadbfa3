package command

import (
	"fmt"

	"github.com/unimarket-dev/unimarket/internal/user/domain"
	"github.com/unimarket-dev/unimarket/pkg/auth"
)

// LoginUserCommand represents the command to authenticate an account
type LoginUserCommand struct {
	Username string
	Password string
}

// LoginResponse represents the response after successful login
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        *domain.User `json:"user"`
}

// LoginUserHandler handles user login
type LoginUserHandler struct {
	repo domain.UserRepository
}

// NewLoginUserHandler creates a new login user handler
func NewLoginUserHandler(repo domain.UserRepository) *LoginUserHandler {
	return &LoginUserHandler{repo: repo}
}

// Handle executes the login command. Unknown usernames and wrong
// passwords produce the same error.
func (h *LoginUserHandler) Handle(cmd LoginUserCommand) (*LoginResponse, error) {
	if cmd.Username == "" || cmd.Password == "" {
		return nil, fmt.Errorf("username and password are required")
	}

	user, err := h.repo.FindByUsername(cmd.Username)
	if err != nil {
		return nil, fmt.Errorf("incorrect username or password")
	}

	if !auth.CheckPassword(user.PasswordHash, cmd.Password) {
		return nil, fmt.Errorf("incorrect username or password")
	}

	token, err := auth.GenerateToken(user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	}, nil
}
