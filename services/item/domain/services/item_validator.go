// Package services contains stateless domain services for the item bounded context.
// Domain services enforce business rules that operate purely on domain types
// and have zero external dependencies beyond stdlib and the domain layer.
package services

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/ghuser/catalog/services/item/domain/models"
)

const maxMobileLength = 32

// ValidateName enforces business rules for ItemName beyond the structural
// constraints enforced by the ItemName constructor (length 1–255).
//
// Business rules:
//   - No leading or trailing whitespace
//   - No control characters (Unicode category Cc)
//   - Must not be only whitespace characters
func ValidateName(name models.ItemName) error {
	s := name.String()

	if strings.TrimSpace(s) == "" {
		return errors.New("name must not be only whitespace")
	}
	if s != strings.TrimSpace(s) {
		return errors.New("name must not have leading or trailing whitespace")
	}
	if strings.ContainsFunc(s, unicode.IsControl) {
		return errors.New("name must not contain control characters")
	}
	return nil
}

// ValidateMobile checks the mobile number is usable as a unique key: no
// surrounding whitespace, no control characters, at most 32 bytes.
// The format is otherwise free.
func ValidateMobile(mobile string) error {
	switch {
	case strings.TrimSpace(mobile) == "":
		return errors.New("mobile is required")
	case mobile != strings.TrimSpace(mobile):
		return errors.New("mobile must not have leading or trailing whitespace")
	case strings.ContainsFunc(mobile, unicode.IsControl):
		return errors.New("mobile must not contain control characters")
	case len(mobile) > maxMobileLength:
		return fmt.Errorf("mobile must not exceed %d characters", maxMobileLength)
	}
	return nil
}

// ValidatePrice rejects negative and non-finite prices.
func ValidatePrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return errors.New("price must be a finite number")
	}
	if price < 0 {
		return errors.New("price must not be negative")
	}
	return nil
}

// ValidateItem performs cross-field validation on an Item aggregate before
// it is persisted, after create or update.
func ValidateItem(item *models.Item) error {
	if item == nil {
		return errors.New("item cannot be nil")
	}
	if item.ID == uuid.Nil {
		return errors.New("id must be set")
	}
	if item.Owner == "" {
		return errors.New("owner must be set")
	}
	if err := ValidateName(item.Name); err != nil {
		return err
	}
	if err := ValidateMobile(item.Mobile); err != nil {
		return err
	}
	return ValidatePrice(item.Price)
}
