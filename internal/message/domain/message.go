package domain

import (
	"errors"
	"time"

	listingdomain "github.com/unimarket-dev/unimarket/internal/listing/domain"
	userdomain "github.com/unimarket-dev/unimarket/internal/user/domain"
)

var (
	ErrNotFound    = errors.New("message not found")
	ErrSelfMessage = errors.New("cannot send message to yourself")
)

// Message is a directed message between two users, optionally tied to a
// listing. Immutable once sent except for the is_read transition.
type Message struct {
	ID         uint      `json:"message_id" gorm:"primaryKey"`
	SenderID   uint      `json:"sender_id" gorm:"index;not null"`
	ReceiverID uint      `json:"receiver_id" gorm:"index;not null"`
	ListingID  *uint     `json:"listing_id"`
	Body       string    `json:"body" gorm:"type:text;not null"`
	IsRead     bool      `json:"is_read" gorm:"default:false"`
	SentAt     time.Time `json:"sent_at" gorm:"autoCreateTime"`

	Sender   userdomain.User `json:"sender" gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE"`
	Receiver userdomain.User `json:"-" gorm:"foreignKey:ReceiverID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name
func (Message) TableName() string {
	return "messages"
}

// Conversation summarizes the exchange with one counterpart, optionally
// scoped to a listing, as derived from the newest message per pair.
type Conversation struct {
	User        userdomain.User        `json:"user"`
	Listing     *listingdomain.Listing `json:"listing"`
	LastMessage Message                `json:"last_message"`
	UnreadCount int64                  `json:"unread_count"`
}

// MessageRepository defines the contract for message data access
type MessageRepository interface {
	Create(message *Message) error
	FindByID(id uint) (*Message, error)
	// FindInvolving returns all messages sent or received by the user,
	// newest first.
	FindInvolving(userID uint) ([]Message, error)
	// FindBetween returns the thread between two users in chronological
	// order, optionally scoped to a listing.
	FindBetween(userID, otherID uint, listingID *uint, limit int) ([]Message, error)
	// MarkReadFrom flags every unread message from sender to receiver as
	// read and reports how many rows changed.
	MarkReadFrom(senderID, receiverID uint) (int64, error)
	CountUnreadFrom(senderID, receiverID uint) (int64, error)
	Update(message *Message) error
}
