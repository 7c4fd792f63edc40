// Package memory keeps categories in process. It backs STORE_DRIVER=memory
// and the service and handler tests.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	categorydomain "github.com/ghuser/catalog/services/category/domain"
	"github.com/ghuser/catalog/services/category/domain/models"
)

// CategoryRepository is a mutex-guarded in-memory repositories.CategoryRepository.
// The name index plays the role of the unique constraint.
type CategoryRepository struct {
	mu     sync.RWMutex
	order  []uuid.UUID
	byID   map[uuid.UUID]models.Category
	byName map[models.CategoryName]uuid.UUID
}

// NewCategoryRepository returns an empty CategoryRepository.
func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{
		byID:   make(map[uuid.UUID]models.Category),
		byName: make(map[models.CategoryName]uuid.UUID),
	}
}

// Save stores a copy of c. A taken name is ErrCategoryAlreadyExists.
func (r *CategoryRepository) Save(_ context.Context, c *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byName[c.Name]; taken {
		return categorydomain.ErrCategoryAlreadyExists
	}
	r.byID[c.ID] = *c
	r.byName[c.Name] = c.ID
	r.order = append(r.order, c.ID)
	return nil
}

// FindAll returns every category in insertion order.
func (r *CategoryRepository) FindAll(_ context.Context) ([]*models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Category, 0, len(r.order))
	for _, id := range r.order {
		c := r.byID[id]
		out = append(out, &c)
	}
	return out, nil
}

// GetByID returns a copy of the category or ErrCategoryNotFound.
func (r *CategoryRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return nil, categorydomain.ErrCategoryNotFound
	}
	return &c, nil
}

// ExistsByName reports whether name is taken. Matching is exact.
func (r *CategoryRepository) ExistsByName(_ context.Context, name models.CategoryName) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byName[name]
	return ok, nil
}
