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
	itemdomain "github.com/ghuser/catalog/services/item/domain"
	domainevents "github.com/ghuser/catalog/services/item/domain/events"
	"github.com/ghuser/catalog/services/item/domain/models"
)

const mobileConstraint = "items_mobile_key"

const (
	itemColumns = `id, owner_id, name, image_url, mobile, price, brand, description, category_id, created_at, updated_at`

	insertItem = `
INSERT INTO items (` + itemColumns + `)
VALUES (:id, :owner_id, :name, :image_url, :mobile, :price, :brand, :description, :category_id, :created_at, :updated_at)`

	// owner_id, id and created_at are never rewritten.
	updateItem = `
UPDATE items
SET name = :name, image_url = :image_url, mobile = :mobile, price = :price, brand = :brand,
    description = :description, category_id = :category_id, updated_at = :updated_at
WHERE id = :id AND owner_id = :owner_id`
)

type itemRow struct {
	ID          uuid.UUID `db:"id"`
	OwnerID     string    `db:"owner_id"`
	Name        string    `db:"name"`
	ImageURL    string    `db:"image_url"`
	Mobile      string    `db:"mobile"`
	Price       float64   `db:"price"`
	Brand       string    `db:"brand"`
	Description string    `db:"description"`
	CategoryID  string    `db:"category_id"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
// Writes and their item.* events share one transaction.
type ItemRepository struct {
	db  *database.Database
	bus events.TxPublisher
}

// NewItemRepository returns an ItemRepository. bus may be nil, in which
// case no events are written.
func NewItemRepository(db *database.Database, bus events.TxPublisher) *ItemRepository {
	return &ItemRepository{db: db, bus: bus}
}

// Save inserts item and publishes item.created. The items_mobile_key
// violation maps to ErrMobileAlreadyExists.
func (r *ItemRepository) Save(ctx context.Context, item *models.Item) error {
	return r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.NamedExecContext(ctx, insertItem, toRow(item)); err != nil {
			return mapWriteError("insert item", err)
		}
		return r.publish(ctx, tx, domainevents.TopicItemCreated, domainevents.NewItemEvent(item, item.CreatedAt))
	})
}

// GetByID returns ErrItemNotFound unless the row exists and belongs to owner.
func (r *ItemRepository) GetByID(ctx context.Context, owner string, id uuid.UUID) (*models.Item, error) {
	var row itemRow
	err := r.db.DB().GetContext(ctx, &row,
		`SELECT `+itemColumns+` FROM items WHERE id = $1 AND owner_id = $2`, id, owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, itemdomain.ErrItemNotFound
		}
		return nil, fmt.Errorf("query item: %w", err)
	}
	return row.toModel(), nil
}

// FindByOwner returns the owner's items, newest first.
func (r *ItemRepository) FindByOwner(ctx context.Context, owner string) ([]*models.Item, error) {
	var rows []itemRow
	err := r.db.DB().SelectContext(ctx, &rows,
		`SELECT `+itemColumns+` FROM items WHERE owner_id = $1 ORDER BY created_at DESC, id`, owner)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	out := make([]*models.Item, len(rows))
	for i := range rows {
		out[i] = rows[i].toModel()
	}
	return out, nil
}

// Update rewrites the replaceable columns and publishes item.updated.
func (r *ItemRepository) Update(ctx context.Context, item *models.Item) error {
	return r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.NamedExecContext(ctx, updateItem, toRow(item))
		if err != nil {
			return mapWriteError("update item", err)
		}
		if err := requireOneRow(res); err != nil {
			return err
		}
		return r.publish(ctx, tx, domainevents.TopicItemUpdated, domainevents.NewItemEvent(item, item.UpdatedAt))
	})
}

// Delete hard-deletes the owner's item and publishes item.deleted.
func (r *ItemRepository) Delete(ctx context.Context, owner string, id uuid.UUID) error {
	return r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM items WHERE id = $1 AND owner_id = $2`, id, owner)
		if err != nil {
			return fmt.Errorf("delete item: %w", err)
		}
		if err := requireOneRow(res); err != nil {
			return err
		}
		return r.publish(ctx, tx, domainevents.TopicItemDeleted,
			domainevents.NewItemDeletedEvent(owner, id, time.Now().UTC()))
	})
}

// MobileTaken checks every owner's items.
func (r *ItemRepository) MobileTaken(ctx context.Context, mobile string, except uuid.UUID) (bool, error) {
	var taken bool
	err := r.db.DB().GetContext(ctx, &taken,
		`SELECT EXISTS(SELECT 1 FROM items WHERE mobile = $1 AND id <> $2)`, mobile, except)
	if err != nil {
		return false, fmt.Errorf("check mobile: %w", err)
	}
	return taken, nil
}

func (r *ItemRepository) publish(ctx context.Context, tx *sqlx.Tx, topic string, ev domainevents.ItemEvent) error {
	if r.bus == nil {
		return nil
	}
	if err := r.bus.PublishTx(ctx, tx.Tx, topic, ev); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}

func mapWriteError(op string, err error) error {
	if database.IsUniqueViolation(err, mobileConstraint) {
		return itemdomain.ErrMobileAlreadyExists
	}
	return fmt.Errorf("%s: %w", op, err)
}

func requireOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return itemdomain.ErrItemNotFound
	}
	return nil
}

func toRow(item *models.Item) itemRow {
	return itemRow{
		ID:          item.ID,
		OwnerID:     item.Owner,
		Name:        item.Name.String(),
		ImageURL:    item.ImageURL,
		Mobile:      item.Mobile,
		Price:       item.Price,
		Brand:       item.Brand,
		Description: item.Description,
		CategoryID:  item.CategoryID,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func (row itemRow) toModel() *models.Item {
	return &models.Item{
		ID:          row.ID,
		Owner:       row.OwnerID,
		Name:        models.ItemName(row.Name),
		ImageURL:    row.ImageURL,
		Mobile:      row.Mobile,
		Price:       row.Price,
		Brand:       row.Brand,
		Description: row.Description,
		CategoryID:  row.CategoryID,
		CreatedAt:   row.CreatedAt.UTC(),
		UpdatedAt:   row.UpdatedAt.UTC(),
	}
}
