package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicCategoryCreated is published when a Category is created.
const TopicCategoryCreated = "category.created"

// CategoryCreatedEvent is published in the same transaction as the insert.
type CategoryCreatedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	CategoryID uuid.UUID `json:"category_id"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurred_at"`
}
