package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/ghuser/catalog/pkg/events"
	"github.com/ghuser/catalog/pkg/logger"
	categoryEvents "github.com/ghuser/catalog/services/category/domain/events"
	itemEvents "github.com/ghuser/catalog/services/item/domain/events"
)

func lastLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	var m map[string]any
	if err := json.Unmarshal(lines[len(lines)-1], &m); err != nil {
		t.Fatalf("decode log line %q: %v", lines[len(lines)-1], err)
	}
	return m
}

func TestAuditCategoryCreated(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "info", "worker")
	ctx := context.Background()

	id := uuid.New()
	msg, err := events.NewMessage(ctx, categoryEvents.TopicCategoryCreated, categoryEvents.CategoryCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		CategoryID: id,
		Name:       "Electronics",
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("new message: %v", err)
	}

	if err := auditCategoryCreated(log)(ctx, msg); err != nil {
		t.Fatalf("handler: %v", err)
	}
	line := lastLine(t, &buf)
	got := map[string]any{"msg": line["msg"], "topic": line["topic"], "category_id": line["category_id"], "name": line["name"]}
	want := map[string]any{"msg": "audit", "topic": "category.created", "category_id": id.String(), "name": "Electronics"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("log mismatch (-want +got):\n%s", diff)
	}
}

func TestAuditItem(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "info", "worker")
	ctx := context.Background()

	id := uuid.New()
	msg, err := events.NewMessage(ctx, itemEvents.TopicItemDeleted,
		itemEvents.NewItemDeletedEvent("u1", id, time.Now().UTC()))
	if err != nil {
		t.Fatalf("new message: %v", err)
	}

	if err := auditItem(log, itemEvents.TopicItemDeleted)(ctx, msg); err != nil {
		t.Fatalf("handler: %v", err)
	}
	line := lastLine(t, &buf)
	if line["topic"] != "item.deleted" || line["item_id"] != id.String() || line["owner"] != "u1" {
		t.Fatalf("unexpected audit line %v", line)
	}
}

func TestAudit_RejectsMalformedPayload(t *testing.T) {
	log := logger.Discard()
	msg := message.NewMessage(uuid.NewString(), []byte("{not json"))

	if err := auditCategoryCreated(log)(context.Background(), msg); err == nil {
		t.Error("category handler: expected decode error")
	}
	if err := auditItem(log, itemEvents.TopicItemCreated)(context.Background(), msg); err == nil {
		t.Error("item handler: expected decode error")
	}
}

func TestSubscriptions_CoverEveryTopic(t *testing.T) {
	subs := subscriptions(logger.Discard())
	want := append([]string{categoryEvents.TopicCategoryCreated}, itemEvents.Topics...)
	if len(subs) != len(want) {
		t.Fatalf("expected %d subscriptions, got %d", len(want), len(subs))
	}
	for _, topic := range want {
		if subs[topic] == nil {
			t.Errorf("no handler for %s", topic)
		}
	}
}
