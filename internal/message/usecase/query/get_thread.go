package query

import (
	"github.com/unimarket-dev/unimarket/internal/message/domain"
)

// GetThreadQuery represents the query for a conversation thread
type GetThreadQuery struct {
	UserID    uint
	OtherID   uint
	ListingID *uint
	Limit     int
}

// GetThreadHandler fetches a thread and, as a side effect, marks every
// unread message from the counterpart as read. Read receipts are not
// selectively controllable.
type GetThreadHandler struct {
	repo domain.MessageRepository
}

// NewGetThreadHandler creates a new get thread handler
func NewGetThreadHandler(repo domain.MessageRepository) *GetThreadHandler {
	return &GetThreadHandler{repo: repo}
}

// Handle executes the thread query
func (h *GetThreadHandler) Handle(query GetThreadQuery) ([]domain.Message, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}

	messages, err := h.repo.FindBetween(query.UserID, query.OtherID, query.ListingID, limit)
	if err != nil {
		return nil, err
	}

	if _, err := h.repo.MarkReadFrom(query.OtherID, query.UserID); err != nil {
		return nil, err
	}

	return messages, nil
}
