package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/catalog/services/item/domain/events"
	"github.com/ghuser/catalog/services/item/domain/models"
)

func TestNewItemEvent_Snapshot(t *testing.T) {
	item, err := models.NewItem("u1", models.Fields{
		Name: "Phone", Mobile: "9999999999", Price: 500, CategoryID: "cat-1",
	})
	if err != nil {
		t.Fatalf("new item: %v", err)
	}
	at := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

	ev := events.NewItemEvent(item, at)
	if ev.EventID == uuid.Nil || ev.Version != 1 {
		t.Fatalf("expected event id and version 1, got %+v", ev)
	}
	if ev.ItemID != item.ID || ev.Owner != "u1" || ev.Mobile != "9999999999" || ev.Price != 500 {
		t.Fatalf("snapshot mismatch: %+v", ev)
	}
	if !ev.OccurredAt.Equal(at) {
		t.Fatalf("OccurredAt = %v", ev.OccurredAt)
	}
	if other := events.NewItemEvent(item, at); other.EventID == ev.EventID {
		t.Fatal("each event needs its own id for deduplication")
	}
}

func TestNewItemDeletedEvent_OmitsAttributes(t *testing.T) {
	ev := events.NewItemDeletedEvent("u1", uuid.New(), time.Now())

	data, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var keys map[string]any
	if err := json.Unmarshal(data, &keys); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, k := range []string{"name", "mobile", "price", "category_id"} {
		if _, ok := keys[k]; ok {
			t.Errorf("deleted event should omit %q", k)
		}
	}
	for _, k := range []string{"event_id", "item_id", "owner", "occurred_at"} {
		if _, ok := keys[k]; !ok {
			t.Errorf("deleted event missing %q", k)
		}
	}
}

func TestTopics(t *testing.T) {
	want := map[string]bool{"item.created": true, "item.updated": true, "item.deleted": true}
	if len(events.Topics) != len(want) {
		t.Fatalf("unexpected topics %v", events.Topics)
	}
	for _, topic := range events.Topics {
		if !want[topic] {
			t.Errorf("unexpected topic %q", topic)
		}
	}
}
