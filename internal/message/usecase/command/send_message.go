package command

import (
	"fmt"

	listingdomain "github.com/unimarket-dev/unimarket/internal/listing/domain"
	"github.com/unimarket-dev/unimarket/internal/message/domain"
	userdomain "github.com/unimarket-dev/unimarket/internal/user/domain"
)

// SendMessageCommand represents the command to send a message
type SendMessageCommand struct {
	SenderID   uint
	ReceiverID uint
	ListingID  *uint
	Body       string
}

// SendMessageHandler handles message sending
type SendMessageHandler struct {
	messages domain.MessageRepository
	users    userdomain.UserRepository
	listings listingdomain.ListingRepository
}

// NewSendMessageHandler creates a new send message handler
func NewSendMessageHandler(
	messages domain.MessageRepository,
	users userdomain.UserRepository,
	listings listingdomain.ListingRepository,
) *SendMessageHandler {
	return &SendMessageHandler{messages: messages, users: users, listings: listings}
}

// Handle executes the send message command. The receiver and the
// optional listing must exist, and users cannot message themselves.
func (h *SendMessageHandler) Handle(cmd SendMessageCommand) (*domain.Message, error) {
	if cmd.Body == "" {
		return nil, fmt.Errorf("body is required")
	}
	if cmd.ReceiverID == cmd.SenderID {
		return nil, domain.ErrSelfMessage
	}

	if _, err := h.users.FindByID(cmd.ReceiverID); err != nil {
		return nil, err
	}
	if cmd.ListingID != nil {
		if _, err := h.listings.FindByID(*cmd.ListingID); err != nil {
			return nil, err
		}
	}

	message := &domain.Message{
		SenderID:   cmd.SenderID,
		ReceiverID: cmd.ReceiverID,
		ListingID:  cmd.ListingID,
		Body:       cmd.Body,
	}

	if err := h.messages.Create(message); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	return h.messages.FindByID(message.ID)
}
