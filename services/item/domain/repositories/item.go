package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/catalog/services/item/domain/models"
)

// ItemRepository is the persistence interface for the Item aggregate.
// The domain layer owns this interface; infrastructure implements it.
//
// Every read and write except MobileTaken is scoped to an owner: a record
// owned by someone else behaves exactly like a missing one.
type ItemRepository interface {
	// Save inserts a new item. Returns ErrMobileAlreadyExists if the store's
	// uniqueness rule on mobile rejects it.
	Save(ctx context.Context, item *models.Item) error

	// GetByID returns ErrItemNotFound unless id exists and belongs to owner.
	GetByID(ctx context.Context, owner string, id uuid.UUID) (*models.Item, error)

	// FindByOwner returns the owner's items, newest first.
	FindByOwner(ctx context.Context, owner string) ([]*models.Item, error)

	// Update persists the item's replaceable fields and UpdatedAt, matching
	// on ID and Owner. Returns ErrItemNotFound if nothing matched and
	// ErrMobileAlreadyExists on a mobile collision.
	Update(ctx context.Context, item *models.Item) error

	// Delete hard-deletes; returns ErrItemNotFound if nothing matched.
	Delete(ctx context.Context, owner string, id uuid.UUID) error

	// MobileTaken reports whether any item, of any owner, other than
	// except uses mobile. Pass uuid.Nil to check against every item.
	MobileTaken(ctx context.Context, mobile string, except uuid.UUID) (bool, error)
}
