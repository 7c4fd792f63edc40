package models

import (
	"errors"
	"strings"
	"testing"
)

func TestNewItemName(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"single character", "a", false},
		{"255 ascii characters", strings.Repeat("x", 255), false},
		{"255 multibyte characters", strings.Repeat("é", 255), false},
		{"256 characters", strings.Repeat("x", 256), true},
		{"256 multibyte characters", strings.Repeat("é", 256), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := NewItemName(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewItemName: err=%v, wantErr=%v", err, tt.wantErr)
			}
			if !tt.wantErr && n.String() != tt.in {
				t.Fatalf("expected %q, got %q", tt.in, n.String())
			}
		})
	}
}

func TestNewItemName_Empty(t *testing.T) {
	_, err := NewItemName("")
	if !errors.Is(err, errItemNameRequired) || err.Error() != "name is required" {
		t.Fatalf("expected 'name is required', got %v", err)
	}
}
