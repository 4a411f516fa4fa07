package models

import (
	"time"

	"github.com/google/uuid"
)

// SyncEvent is an audit record of a successfully applied webhook delivery.
// Handlers never read it back; it exists for operators.
type SyncEvent struct {
	ID         uuid.UUID `json:"id"`
	EventType  string    `json:"event_type"`
	ExternalID string    `json:"external_id"`
	DeliveryID string    `json:"delivery_id"`
	ReceivedAt time.Time `json:"received_at"`
}
