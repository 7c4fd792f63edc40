package handlers

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/catalog/services/item/domain/models"
)

// ItemRequest is the request body for POST /items and PUT /items/{itemId}.
// Update is a full replacement, so both share every required field.
type ItemRequest struct {
	Name        string   `json:"name"        validate:"required,max=255" example:"Phone"`
	ImageURL    string   `json:"imageUrl"    validate:"required"         example:"http://x/y.png"`
	Mobile      string   `json:"mobile"      validate:"required,max=32"  example:"9999999999"`
	Price       *Price   `json:"price"       validate:"required,gte=0"   example:"500" swaggertype:"number"`
	Brand       string   `json:"brand"       validate:"required"         example:"X"`
	Description string   `json:"description" validate:"required"         example:"d"`
	CategoryID  string   `json:"categoryId"  validate:"required"         example:"123e4567-e89b-12d3-a456-426614174000"`
} // @name ItemRequest

func (req *ItemRequest) fields() models.Fields {
	return models.Fields{
		Name:        req.Name,
		ImageURL:    req.ImageURL,
		Mobile:      req.Mobile,
		Price:       float64(*req.Price),
		Brand:       req.Brand,
		Description: req.Description,
		CategoryID:  req.CategoryID,
	}
}

// Price accepts a JSON number or a numeric string such as "500", which older
// clients send.
type Price float64

// UnmarshalJSON implements json.Unmarshaler.
func (p *Price) UnmarshalJSON(b []byte) error {
	var f float64
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return errors.New("price must be a number")
		}
		f = v
	} else if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return errors.New("price must be a finite number")
	}
	*p = Price(f)
	return nil
}

// ItemResponse is the wire form of an item. User is the owner identity.
type ItemResponse struct {
	ID          uuid.UUID `json:"_id"         example:"123e4567-e89b-12d3-a456-426614174000"`
	Name        string    `json:"name"        example:"Phone"`
	User        string    `json:"user"        example:"65a1f0c2e4b0a1b2c3d4e5f6"`
	ImageURL    string    `json:"imageUrl"    example:"http://x/y.png"`
	Mobile      string    `json:"mobile"      example:"9999999999"`
	Price       float64   `json:"price"       example:"500"`
	Brand       string    `json:"brand"       example:"X"`
	Description string    `json:"description" example:"d"`
	CategoryID  string    `json:"categoryId"  example:"123e4567-e89b-12d3-a456-426614174000"`
	CreatedAt   time.Time `json:"createdAt"   example:"2024-01-15T10:30:00Z"`
	UpdatedAt   time.Time `json:"updatedAt"   example:"2024-01-15T10:30:00Z"`
} // @name ItemResponse

func toResponse(i *models.Item) ItemResponse {
	return ItemResponse{
		ID:          i.ID,
		Name:        i.Name.String(),
		User:        i.Owner,
		ImageURL:    i.ImageURL,
		Mobile:      i.Mobile,
		Price:       i.Price,
		Brand:       i.Brand,
		Description: i.Description,
		CategoryID:  i.CategoryID,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}
