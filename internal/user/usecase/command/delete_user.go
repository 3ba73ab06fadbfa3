package command

import (
	"github.com/unimarket-dev/unimarket/internal/user/domain"
)

// DeleteUserCommand represents the command to delete an account
type DeleteUserCommand struct {
	ID uint
}

// DeleteUserHandler handles account deletion (admin only at the route
// level; listings, favorites and messages cascade at the database)
type DeleteUserHandler struct {
	repo domain.UserRepository
}

// NewDeleteUserHandler creates a new delete user handler
func NewDeleteUserHandler(repo domain.UserRepository) *DeleteUserHandler {
	return &DeleteUserHandler{repo: repo}
}

// Handle executes the delete user command
func (h *DeleteUserHandler) Handle(cmd DeleteUserCommand) error {
	return h.repo.Delete(cmd.ID)
}
