package kafka

import "time"

// ListingSoldEvent is emitted when a listing transitions to sold
type ListingSoldEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	ListingID uint      `json:"listing_id"`
	SellerID  uint      `json:"seller_id"`
	Title     string    `json:"title"`
	Price     float64   `json:"price"`
	Timestamp time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeListingSold = "listing.sold"
)

// Kafka topics
const (
	TopicListingSold = "listing-sold"
)
