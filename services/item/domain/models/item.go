package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Fields are the caller-supplied attributes of an item, used for both
// create and full-replacement update.
type Fields struct {
	Name        string
	ImageURL    string
	Mobile      string
	Price       float64
	Brand       string
	Description string
	CategoryID  string // opaque; never checked against categories
}

// Item is the core aggregate for this bounded context.
type Item struct {
	ID          uuid.UUID
	Owner       string // identity of the creator; always filter by this in queries
	Name        ItemName
	ImageURL    string
	Mobile      string // unique across all owners
	Price       float64
	Brand       string
	Description string
	CategoryID  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewItem constructs an Item owned by owner with a generated ID.
func NewItem(owner string, f Fields) (*Item, error) {
	if owner == "" {
		return nil, errors.New("owner is required")
	}
	name, err := NewItemName(f.Name)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC().Truncate(time.Microsecond)
	item := &Item{
		ID:        uuid.New(),
		Owner:     owner,
		CreatedAt: now,
		UpdatedAt: now,
	}
	item.set(name, f)
	return item, nil
}

// Replace overwrites every caller-supplied attribute and bumps UpdatedAt.
// ID, Owner and CreatedAt never change.
func (i *Item) Replace(f Fields) error {
	name, err := NewItemName(f.Name)
	if err != nil {
		return err
	}
	i.set(name, f)
	i.UpdatedAt = time.Now().UTC().Truncate(time.Microsecond)
	return nil
}

// Fields returns the caller-supplied attributes of i.
func (i *Item) Fields() Fields {
	return Fields{
		Name:        i.Name.String(),
		ImageURL:    i.ImageURL,
		Mobile:      i.Mobile,
		Price:       i.Price,
		Brand:       i.Brand,
		Description: i.Description,
		CategoryID:  i.CategoryID,
	}
}

func (i *Item) set(name ItemName, f Fields) {
	i.Name = name
	i.ImageURL = f.ImageURL
	i.Mobile = f.Mobile
	i.Price = f.Price
	i.Brand = f.Brand
	i.Description = f.Description
	i.CategoryID = f.CategoryID
}
