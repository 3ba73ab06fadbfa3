package command

import (
	"fmt"

	"github.com/unimarket-dev/unimarket/internal/message/domain"
)

// MarkMessageReadCommand represents the command to flag one message read
type MarkMessageReadCommand struct {
	MessageID uint
	ReaderID  uint
}

// MarkMessageReadHandler handles explicit read receipts
type MarkMessageReadHandler struct {
	repo domain.MessageRepository
}

// NewMarkMessageReadHandler creates a new mark message read handler
func NewMarkMessageReadHandler(repo domain.MessageRepository) *MarkMessageReadHandler {
	return &MarkMessageReadHandler{repo: repo}
}

// Handle executes the mark read command. Only the receiver may mark a
// message read; anyone else sees a not-found.
func (h *MarkMessageReadHandler) Handle(cmd MarkMessageReadCommand) (*domain.Message, error) {
	message, err := h.repo.FindByID(cmd.MessageID)
	if err != nil {
		return nil, err
	}
	if message.ReceiverID != cmd.ReaderID {
		return nil, domain.ErrNotFound
	}

	message.IsRead = true
	if err := h.repo.Update(message); err != nil {
		return nil, fmt.Errorf("failed to mark message read: %w", err)
	}

	return message, nil
}
