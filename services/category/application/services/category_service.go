package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/catalog/pkg/telemetry"
	categorydomain "github.com/ghuser/catalog/services/category/domain"
	"github.com/ghuser/catalog/services/category/domain/models"
	"github.com/ghuser/catalog/services/category/domain/repositories"
)

// CategoryService orchestrates creation and retrieval of Categories.
// Event publishing is handled by the repository layer (outbox pattern).
type CategoryService struct {
	repo    repositories.CategoryRepository
	metrics *telemetry.Metrics
}

// NewCategoryService returns a CategoryService. metrics may be nil.
func NewCategoryService(repo repositories.CategoryRepository, metrics *telemetry.Metrics) *CategoryService {
	return &CategoryService{repo: repo, metrics: metrics}
}

// Create validates name, rejects a taken name and persists the category.
// The name check is advisory; the repository's uniqueness rule is final and
// reports the same ErrCategoryAlreadyExists.
func (s *CategoryService) Create(ctx context.Context, name string) (*models.Category, error) {
	categoryName, err := models.NewCategoryName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", categorydomain.ErrInvalidCategory, err)
	}

	taken, err := s.repo.ExistsByName(ctx, categoryName)
	if err != nil {
		return nil, fmt.Errorf("check category name: %w", err)
	}
	if taken {
		s.metrics.Conflict(ctx, "category", "name")
		return nil, categorydomain.ErrCategoryAlreadyExists
	}

	category := models.NewCategory(categoryName)
	if err := s.repo.Save(ctx, category); err != nil {
		if errors.Is(err, categorydomain.ErrCategoryAlreadyExists) {
			s.metrics.Conflict(ctx, "category", "name")
		}
		return nil, fmt.Errorf("save category: %w", err)
	}

	s.metrics.CategoryCreated(ctx)
	return category, nil
}

// List returns every category in creation order.
func (s *CategoryService) List(ctx context.Context) ([]*models.Category, error) {
	categories, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// Get looks a category up by its textual id. An id that is not a UUID
// cannot name any category and is reported as ErrCategoryNotFound.
func (s *CategoryService) Get(ctx context.Context, rawID string) (*models.Category, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, categorydomain.ErrCategoryNotFound
	}
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return category, nil
}
