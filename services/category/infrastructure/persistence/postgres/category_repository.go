package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ghuser/catalog/pkg/database"
	"github.com/ghuser/catalog/pkg/events"
	categorydomain "github.com/ghuser/catalog/services/category/domain"
	domainevents "github.com/ghuser/catalog/services/category/domain/events"
	"github.com/ghuser/catalog/services/category/domain/models"
)

const nameConstraint = "categories_name_key"

const (
	insertCategory = `
INSERT INTO categories (id, name, created_at, updated_at)
VALUES (:id, :name, :created_at, :updated_at)`

	selectCategories = `
SELECT id, name, created_at, updated_at FROM categories`
)

type categoryRow struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// CategoryRepository implements repositories.CategoryRepository against PostgreSQL.
type CategoryRepository struct {
	db  *database.Database
	bus events.TxPublisher
}

// NewCategoryRepository returns a CategoryRepository. bus may be nil, in
// which case no category.created event is written.
func NewCategoryRepository(db *database.Database, bus events.TxPublisher) *CategoryRepository {
	return &CategoryRepository{db: db, bus: bus}
}

// Save inserts c and its CategoryCreatedEvent in one transaction.
// The categories_name_key violation maps to ErrCategoryAlreadyExists.
func (r *CategoryRepository) Save(ctx context.Context, c *models.Category) error {
	return r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.NamedExecContext(ctx, insertCategory, toRow(c)); err != nil {
			if database.IsUniqueViolation(err, nameConstraint) {
				return categorydomain.ErrCategoryAlreadyExists
			}
			return fmt.Errorf("insert category: %w", err)
		}
		if r.bus == nil {
			return nil
		}
		if err := r.bus.PublishTx(ctx, tx.Tx, domainevents.TopicCategoryCreated, domainevents.CategoryCreatedEvent{
			EventID:    uuid.New(),
			Version:    1,
			CategoryID: c.ID,
			Name:       c.Name.String(),
			OccurredAt: c.CreatedAt,
		}); err != nil {
			return fmt.Errorf("publish category created: %w", err)
		}
		return nil
	})
}

// FindAll returns every category ordered by creation time.
func (r *CategoryRepository) FindAll(ctx context.Context) ([]*models.Category, error) {
	var rows []categoryRow
	if err := r.db.DB().SelectContext(ctx, &rows, selectCategories+` ORDER BY created_at, id`); err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	out := make([]*models.Category, len(rows))
	for i := range rows {
		out[i] = rows[i].toModel()
	}
	return out, nil
}

// GetByID returns ErrCategoryNotFound if no row matches.
func (r *CategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var row categoryRow
	if err := r.db.DB().GetContext(ctx, &row, selectCategories+` WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, categorydomain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("query category: %w", err)
	}
	return row.toModel(), nil
}

// ExistsByName reports whether a category with exactly this name exists.
func (r *CategoryRepository) ExistsByName(ctx context.Context, name models.CategoryName) (bool, error) {
	var exists bool
	if err := r.db.DB().GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM categories WHERE name = $1)`, name.String()); err != nil {
		return false, fmt.Errorf("check category name: %w", err)
	}
	return exists, nil
}

func toRow(c *models.Category) categoryRow {
	return categoryRow{
		ID:        c.ID,
		Name:      c.Name.String(),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (row categoryRow) toModel() *models.Category {
	return &models.Category{
		ID:        row.ID,
		Name:      models.CategoryName(row.Name),
		CreatedAt: row.CreatedAt.UTC(),
		UpdatedAt: row.UpdatedAt.UTC(),
	}
}
