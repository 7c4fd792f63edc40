package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/catalog/pkg/telemetry"
	itemdomain "github.com/ghuser/catalog/services/item/domain"
	"github.com/ghuser/catalog/services/item/domain/models"
	"github.com/ghuser/catalog/services/item/domain/repositories"
	domainsvcs "github.com/ghuser/catalog/services/item/domain/services"
)

// ItemService orchestrates the owner-scoped item operations.
// Event publishing is handled by the repository layer (outbox pattern).
//
// Mobile uniqueness is checked up front to produce a clean conflict, but the
// check is advisory: two concurrent writers can both pass it, and the
// repository's unique rule decides. Both paths yield ErrMobileAlreadyExists.
type ItemService struct {
	repo    repositories.ItemRepository
	metrics *telemetry.Metrics
}

// NewItemService returns an ItemService. metrics may be nil.
func NewItemService(repo repositories.ItemRepository, metrics *telemetry.Metrics) *ItemService {
	return &ItemService{repo: repo, metrics: metrics}
}

// Create persists a new item owned by owner.
func (s *ItemService) Create(ctx context.Context, owner string, f models.Fields) (*models.Item, error) {
	item, err := models.NewItem(owner, f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItem, err)
	}
	if err := domainsvcs.ValidateItem(item); err != nil {
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItem, err)
	}

	if err := s.checkMobile(ctx, item.Mobile, uuid.Nil); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, item); err != nil {
		s.countConflict(ctx, err)
		return nil, fmt.Errorf("save item: %w", err)
	}

	s.metrics.ItemCreated(ctx)
	return item, nil
}

// List returns owner's items, newest first.
func (s *ItemService) List(ctx context.Context, owner string) ([]*models.Item, error) {
	items, err := s.repo.FindByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// Get returns the item if owner owns it. Missing, foreign and malformed ids
// are all ErrItemNotFound.
func (s *ItemService) Get(ctx context.Context, owner, rawID string) (*models.Item, error) {
	return s.load(ctx, "get", owner, rawID)
}

// Update replaces every attribute of owner's item except its owner, id and
// creation time, and returns the stored result.
func (s *ItemService) Update(ctx context.Context, owner, rawID string, f models.Fields) (*models.Item, error) {
	item, err := s.load(ctx, "update", owner, rawID)
	if err != nil {
		return nil, err
	}
	if err := item.Replace(f); err != nil {
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItem, err)
	}
	if err := domainsvcs.ValidateItem(item); err != nil {
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItem, err)
	}

	if err := s.checkMobile(ctx, item.Mobile, item.ID); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, item); err != nil {
		s.countConflict(ctx, err)
		return nil, fmt.Errorf("update item: %w", err)
	}
	return item, nil
}

// Delete hard-deletes owner's item.
func (s *ItemService) Delete(ctx context.Context, owner, rawID string) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		s.metrics.OwnershipMiss(ctx, "delete")
		return itemdomain.ErrItemNotFound
	}
	if err := s.repo.Delete(ctx, owner, id); err != nil {
		if errors.Is(err, itemdomain.ErrItemNotFound) {
			s.metrics.OwnershipMiss(ctx, "delete")
		}
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

func (s *ItemService) load(ctx context.Context, op, owner, rawID string) (*models.Item, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		s.metrics.OwnershipMiss(ctx, op)
		return nil, itemdomain.ErrItemNotFound
	}
	item, err := s.repo.GetByID(ctx, owner, id)
	if err != nil {
		if errors.Is(err, itemdomain.ErrItemNotFound) {
			s.metrics.OwnershipMiss(ctx, op)
		}
		return nil, fmt.Errorf("%s item: %w", op, err)
	}
	return item, nil
}

func (s *ItemService) checkMobile(ctx context.Context, mobile string, except uuid.UUID) error {
	taken, err := s.repo.MobileTaken(ctx, mobile, except)
	if err != nil {
		return fmt.Errorf("check mobile: %w", err)
	}
	if taken {
		s.metrics.Conflict(ctx, "item", "mobile")
		return itemdomain.ErrMobileAlreadyExists
	}
	return nil
}

func (s *ItemService) countConflict(ctx context.Context, err error) {
	if errors.Is(err, itemdomain.ErrMobileAlreadyExists) {
		s.metrics.Conflict(ctx, "item", "mobile")
	}
}
