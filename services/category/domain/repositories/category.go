package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/catalog/services/category/domain/models"
)

// CategoryRepository is the persistence interface for the Category aggregate.
// The domain layer owns this interface; infrastructure implements it.
type CategoryRepository interface {
	// Save inserts a new category. Implementations enforce name uniqueness
	// themselves and return ErrCategoryAlreadyExists on a duplicate.
	Save(ctx context.Context, c *models.Category) error

	// FindAll returns every category in creation order.
	FindAll(ctx context.Context) ([]*models.Category, error)

	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)

	ExistsByName(ctx context.Context, name models.CategoryName) (bool, error)
}
