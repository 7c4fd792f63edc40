package domain

import "errors"

// Sentinel errors for the category domain. Use errors.Is() to check these.
var (
	// ErrCategoryNotFound indicates no category has the requested id.
	// A malformed id is reported the same way.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryAlreadyExists indicates the name is taken (exact, case-sensitive).
	ErrCategoryAlreadyExists = errors.New("category already exists")

	// ErrInvalidCategory indicates the category violates domain constraints.
	ErrInvalidCategory = errors.New("invalid category")
)
