package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/catalog/services/category/domain/models"
)

// CreateCategoryRequest is the request body for POST /categories.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=255" example:"Electronics"`
} // @name CreateCategoryRequest

// CategoryResponse is the wire form of a category.
type CategoryResponse struct {
	ID        uuid.UUID `json:"_id"       example:"123e4567-e89b-12d3-a456-426614174000"`
	Name      string    `json:"name"      example:"Electronics"`
	CreatedAt time.Time `json:"createdAt" example:"2024-01-15T10:30:00Z"`
	UpdatedAt time.Time `json:"updatedAt" example:"2024-01-15T10:30:00Z"`
} // @name CategoryResponse

func toResponse(c *models.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		Name:      c.Name.String(),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
