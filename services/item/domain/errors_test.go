package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors_Is(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{"not found matches itself", ErrItemNotFound, ErrItemNotFound, true},
		{"wrapped not found", fmt.Errorf("get item: %w", ErrItemNotFound), ErrItemNotFound, true},
		{"wrapped conflict", fmt.Errorf("save item: %w", ErrMobileAlreadyExists), ErrMobileAlreadyExists, true},
		{"invalid with detail", fmt.Errorf("%w: name is required", ErrInvalidItem), ErrInvalidItem, true},
		{"not found is not conflict", ErrItemNotFound, ErrMobileAlreadyExists, false},
		{"conflict is not invalid", ErrMobileAlreadyExists, ErrInvalidItem, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.want {
				t.Fatalf("errors.Is() = %v, want %v", got, tt.want)
			}
		})
	}
}
