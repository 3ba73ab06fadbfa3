package query

import (
	"errors"

	listingdomain "github.com/unimarket-dev/unimarket/internal/listing/domain"
	"github.com/unimarket-dev/unimarket/internal/message/domain"
	userdomain "github.com/unimarket-dev/unimarket/internal/user/domain"
)

// ListConversationsQuery represents the query for a user's conversations
type ListConversationsQuery struct {
	UserID uint
}

// ListConversationsHandler derives conversation summaries from the raw
// message log. This is an O(messages) scan, acceptable at this system's
// scale.
type ListConversationsHandler struct {
	messages domain.MessageRepository
	users    userdomain.UserRepository
	listings listingdomain.ListingRepository
}

// NewListConversationsHandler creates a new list conversations handler
func NewListConversationsHandler(
	messages domain.MessageRepository,
	users userdomain.UserRepository,
	listings listingdomain.ListingRepository,
) *ListConversationsHandler {
	return &ListConversationsHandler{messages: messages, users: users, listings: listings}
}

type conversationKey struct {
	otherID   uint
	listingID uint // 0 when the conversation is not tied to a listing
}

// Handle walks the user's messages newest-first, keeping the first
// message seen per (counterpart, listing) pair as that conversation's
// summary, plus the unread count from that counterpart.
func (h *ListConversationsHandler) Handle(query ListConversationsQuery) ([]domain.Conversation, error) {
	messages, err := h.messages.FindInvolving(query.UserID)
	if err != nil {
		return nil, err
	}

	seen := make(map[conversationKey]bool)
	conversations := []domain.Conversation{}

	for _, msg := range messages {
		otherID := msg.SenderID
		if msg.SenderID == query.UserID {
			otherID = msg.ReceiverID
		}

		key := conversationKey{otherID: otherID}
		if msg.ListingID != nil {
			key.listingID = *msg.ListingID
		}
		if seen[key] {
			continue
		}
		seen[key] = true

		other, err := h.users.FindByID(otherID)
		if err != nil {
			if errors.Is(err, userdomain.ErrNotFound) {
				continue
			}
			return nil, err
		}

		var listing *listingdomain.Listing
		if msg.ListingID != nil {
			listing, err = h.listings.FindByID(*msg.ListingID)
			if err != nil && !errors.Is(err, listingdomain.ErrNotFound) {
				return nil, err
			}
		}

		unread, err := h.messages.CountUnreadFrom(otherID, query.UserID)
		if err != nil {
			return nil, err
		}

		conversations = append(conversations, domain.Conversation{
			User:        *other,
			Listing:     listing,
			LastMessage: msg,
			UnreadCount: unread,
		})
	}

	return conversations, nil
}
