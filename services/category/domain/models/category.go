package models

import (
	"time"

	"github.com/google/uuid"
)

// Category groups items. Categories are created and read, never changed.
type Category struct {
	ID        uuid.UUID
	Name      CategoryName
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory constructs a Category with a generated ID. Timestamps are
// truncated to microseconds, the resolution PostgreSQL stores.
func NewCategory(name CategoryName) *Category {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &Category{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
