package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/unimarket-dev/unimarket/internal/message/domain"
)

// GormMessageRepository implements MessageRepository using GORM
type GormMessageRepository struct {
	db *gorm.DB
}

// NewGormMessageRepository creates a new GORM message repository
func NewGormMessageRepository(db *gorm.DB) *GormMessageRepository {
	return &GormMessageRepository{db: db}
}

// AutoMigrate runs database migrations
func (r *GormMessageRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Message{})
}

// Create inserts a new message
func (r *GormMessageRepository) Create(message *domain.Message) error {
	if err := r.db.Create(message).Error; err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

// FindByID retrieves a message by ID
func (r *GormMessageRepository) FindByID(id uint) (*domain.Message, error) {
	var message domain.Message
	if err := r.db.Preload("Sender").First(&message, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find message: %w", err)
	}
	return &message, nil
}

// FindInvolving retrieves every message sent or received by the user,
// newest first
func (r *GormMessageRepository) FindInvolving(userID uint) ([]domain.Message, error) {
	var messages []domain.Message
	err := r.db.
		Preload("Sender").
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("sent_at DESC").
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find messages: %w", err)
	}
	return messages, nil
}

// FindBetween retrieves the thread between two users in chronological
// order, optionally scoped to a listing
func (r *GormMessageRepository) FindBetween(userID, otherID uint, listingID *uint, limit int) ([]domain.Message, error) {
	query := r.db.
		Preload("Sender").
		Where(
			"(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, otherID, otherID, userID,
		)
	if listingID != nil {
		query = query.Where("listing_id = ?", *listingID)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var messages []domain.Message
	if err := query.Order("sent_at ASC").Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("failed to find conversation: %w", err)
	}
	return messages, nil
}

// MarkReadFrom bulk-flags unread messages from sender to receiver
func (r *GormMessageRepository) MarkReadFrom(senderID, receiverID uint) (int64, error) {
	result := r.db.Model(&domain.Message{}).
		Where("sender_id = ? AND receiver_id = ? AND is_read = ?", senderID, receiverID, false).
		Update("is_read", true)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to mark messages read: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// CountUnreadFrom counts unread messages from sender to receiver
func (r *GormMessageRepository) CountUnreadFrom(senderID, receiverID uint) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Message{}).
		Where("sender_id = ? AND receiver_id = ? AND is_read = ?", senderID, receiverID, false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}
	return count, nil
}

// Update saves a modified message
func (r *GormMessageRepository) Update(message *domain.Message) error {
	if err := r.db.Save(message).Error; err != nil {
		return fmt.Errorf("failed to update message: %w", err)
	}
	return nil
}
