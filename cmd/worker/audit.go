package main

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/catalog/pkg/events"
	"github.com/ghuser/catalog/pkg/logger"
	categoryEvents "github.com/ghuser/catalog/services/category/domain/events"
	itemEvents "github.com/ghuser/catalog/services/item/domain/events"
)

// Audit handlers only log, so redelivery is harmless.

func auditCategoryCreated(log logger.Logger) events.Handler {
	return func(ctx context.Context, msg *message.Message) error {
		evt, err := events.Decode[categoryEvents.CategoryCreatedEvent](msg)
		if err != nil {
			return err
		}
		log.InfoContext(ctx, "audit",
			"topic", categoryEvents.TopicCategoryCreated,
			"event_id", evt.EventID,
			"category_id", evt.CategoryID,
			"name", evt.Name,
			"occurred_at", evt.OccurredAt,
		)
		return nil
	}
}

func auditItem(log logger.Logger, topic string) events.Handler {
	return func(ctx context.Context, msg *message.Message) error {
		evt, err := events.Decode[itemEvents.ItemEvent](msg)
		if err != nil {
			return err
		}
		log.InfoContext(ctx, "audit",
			"topic", topic,
			"event_id", evt.EventID,
			"item_id", evt.ItemID,
			"owner", evt.Owner,
			"occurred_at", evt.OccurredAt,
		)
		return nil
	}
}
