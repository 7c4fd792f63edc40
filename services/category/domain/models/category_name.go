package models

import (
	"fmt"
	"unicode/utf8"
)

// CategoryName is a value object for a category's unique display name.
// Uniqueness is exact and case-sensitive; no normalization is applied.
type CategoryName string

// maxCategoryNameRunes counts characters, as the request validator does.
const maxCategoryNameRunes = 255

// NewCategoryName returns a CategoryName or an error if s is empty or longer
// than 255 characters.
func NewCategoryName(s string) (CategoryName, error) {
	if s == "" {
		return "", fmt.Errorf("name is required")
	}
	if utf8.RuneCountInString(s) > maxCategoryNameRunes {
		return "", fmt.Errorf("name must not exceed %d characters", maxCategoryNameRunes)
	}
	return CategoryName(s), nil
}

func (n CategoryName) String() string {
	return string(n)
}
