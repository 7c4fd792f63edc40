package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/catalog/services/item/domain/models"
)

// Watermill topics for the Item aggregate.
const (
	TopicItemCreated = "item.created"
	TopicItemUpdated = "item.updated"
	TopicItemDeleted = "item.deleted"
)

// Topics lists every item topic, for subscribers and schema setup.
var Topics = []string{TopicItemCreated, TopicItemUpdated, TopicItemDeleted}

// ItemEvent is the payload of every item topic. Consumers subscribe via
// Bus.Subscribe(ctx, events.TopicItemCreated, ...). On item.deleted only the
// identifying fields are set.
type ItemEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	ItemID     uuid.UUID `json:"item_id"`
	Owner      string    `json:"owner"`
	Name       string    `json:"name,omitempty"`
	Mobile     string    `json:"mobile,omitempty"`
	Price      float64   `json:"price,omitempty"`
	CategoryID string    `json:"category_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewItemEvent snapshots item for publication.
func NewItemEvent(item *models.Item, at time.Time) ItemEvent {
	return ItemEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     item.ID,
		Owner:      item.Owner,
		Name:       item.Name.String(),
		Mobile:     item.Mobile,
		Price:      item.Price,
		CategoryID: item.CategoryID,
		OccurredAt: at,
	}
}

// NewItemDeletedEvent identifies a removed item.
func NewItemDeletedEvent(owner string, id uuid.UUID, at time.Time) ItemEvent {
	return ItemEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     id,
		Owner:      owner,
		OccurredAt: at,
	}
}
