package domain

import "errors"

// Sentinel errors for the item domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates no item with the id is owned by the caller.
	// Items owned by someone else and malformed ids are reported the same way.
	ErrItemNotFound = errors.New("item not found")

	// ErrMobileAlreadyExists indicates another item, of any owner, uses the mobile number.
	ErrMobileAlreadyExists = errors.New("an item with this mobile number already exists")

	// ErrInvalidItem indicates the item violates domain constraints.
	ErrInvalidItem = errors.New("invalid item")
)
