package models

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ItemName is the display name of an item. Unlike mobile numbers, names
// need not be unique.
type ItemName string

// maxItemNameRunes counts characters, as the request validator does.
const maxItemNameRunes = 255

var errItemNameRequired = errors.New("name is required")

// NewItemName returns an ItemName, or an error if s is empty or longer than
// 255 characters.
func NewItemName(s string) (ItemName, error) {
	if s == "" {
		return "", errItemNameRequired
	}
	if n := utf8.RuneCountInString(s); n > maxItemNameRunes {
		return "", fmt.Errorf("name must not exceed %d characters, got %d", maxItemNameRunes, n)
	}
	return ItemName(s), nil
}

func (n ItemName) String() string {
	return string(n)
}
