package models

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewCategoryName(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"simple", "Electronics", false},
		{"case preserved", "eLeCtRoNiCs", false},
		{"255 characters", strings.Repeat("x", 255), false},
		{"empty", "", true},
		{"256 characters", strings.Repeat("x", 256), true},
		{"100 multibyte characters", strings.Repeat("日", 100), false},
		{"255 multibyte characters", strings.Repeat("日", 255), false},
		{"256 multibyte characters", strings.Repeat("日", 256), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := NewCategoryName(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if n.String() != tt.in {
				t.Fatalf("expected %q, got %q", tt.in, n.String())
			}
		})
	}
}

func TestNewCategory(t *testing.T) {
	before := time.Now().UTC().Add(-time.Millisecond)
	c := NewCategory("Electronics")

	if c.ID == uuid.Nil {
		t.Fatal("expected generated ID")
	}
	if c.Name != "Electronics" {
		t.Fatalf("unexpected name %q", c.Name)
	}
	if c.CreatedAt.Before(before) || !c.CreatedAt.Equal(c.UpdatedAt) {
		t.Fatalf("unexpected timestamps %v / %v", c.CreatedAt, c.UpdatedAt)
	}
	if c.CreatedAt.Location() != time.UTC {
		t.Fatal("expected UTC timestamps")
	}
	if other := NewCategory("Electronics"); other.ID == c.ID {
		t.Fatal("expected unique IDs")
	}
}
