// Package memory keeps items in process. It backs STORE_DRIVER=memory and
// the service and handler tests.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	itemdomain "github.com/ghuser/catalog/services/item/domain"
	"github.com/ghuser/catalog/services/item/domain/models"
)

type entry struct {
	item models.Item
	seq  uint64
}

// ItemRepository is a mutex-guarded in-memory repositories.ItemRepository.
// The mobile index plays the role of the unique constraint.
type ItemRepository struct {
	mu       sync.RWMutex
	seq      uint64
	byID     map[uuid.UUID]*entry
	byMobile map[string]uuid.UUID
}

// NewItemRepository returns an empty ItemRepository.
func NewItemRepository() *ItemRepository {
	return &ItemRepository{
		byID:     make(map[uuid.UUID]*entry),
		byMobile: make(map[string]uuid.UUID),
	}
}

// Save stores a copy of item. A mobile already held by any item is ErrMobileAlreadyExists.
func (r *ItemRepository) Save(_ context.Context, item *models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byMobile[item.Mobile]; taken {
		return itemdomain.ErrMobileAlreadyExists
	}
	r.seq++
	r.byID[item.ID] = &entry{item: *item, seq: r.seq}
	r.byMobile[item.Mobile] = item.ID
	return nil
}

// GetByID returns a copy of the item, or ErrItemNotFound unless owner owns it.
func (r *ItemRepository) GetByID(_ context.Context, owner string, id uuid.UUID) (*models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok || e.item.Owner != owner {
		return nil, itemdomain.ErrItemNotFound
	}
	item := e.item
	return &item, nil
}

// FindByOwner orders by CreatedAt descending; equal timestamps fall back to
// reverse insertion order.
func (r *ItemRepository) FindByOwner(_ context.Context, owner string) ([]*models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*entry
	for _, e := range r.byID {
		if e.item.Owner == owner {
			matched = append(matched, e)
		}
	}
	slices.SortFunc(matched, func(a, b *entry) int {
		if c := b.item.CreatedAt.Compare(a.item.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.seq, a.seq)
	})

	out := make([]*models.Item, len(matched))
	for i, e := range matched {
		item := e.item
		out[i] = &item
	}
	return out, nil
}

// Update replaces the stored item, keeping its Owner and CreatedAt, and moves
// its mobile in the index.
func (r *ItemRepository) Update(_ context.Context, item *models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.byID[item.ID]
	if !ok || e.item.Owner != item.Owner {
		return itemdomain.ErrItemNotFound
	}
	if holder, taken := r.byMobile[item.Mobile]; taken && holder != item.ID {
		return itemdomain.ErrMobileAlreadyExists
	}

	delete(r.byMobile, e.item.Mobile)
	r.byMobile[item.Mobile] = item.ID

	updated := *item
	updated.Owner = e.item.Owner
	updated.CreatedAt = e.item.CreatedAt
	e.item = updated
	return nil
}

// Delete removes owner's item and frees its mobile.
func (r *ItemRepository) Delete(_ context.Context, owner string, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.byID[id]
	if !ok || e.item.Owner != owner {
		return itemdomain.ErrItemNotFound
	}
	delete(r.byMobile, e.item.Mobile)
	delete(r.byID, id)
	return nil
}

// MobileTaken reports whether an item other than except holds mobile.
func (r *ItemRepository) MobileTaken(_ context.Context, mobile string, except uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	holder, ok := r.byMobile[mobile]
	return ok && holder != except, nil
}

// Len returns the number of stored items across all owners.
func (r *ItemRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}
