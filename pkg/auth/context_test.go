package auth

import (
	"context"
	"errors"
	"testing"
)

func TestWithIdentity_IdentityFromCtx(t *testing.T) {
	want := Identity{ID: "u-1", Name: "Ada", Email: "ada@example.com"}
	ctx := WithIdentity(context.Background(), want)

	got, err := IdentityFromCtx(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestIdentityFromCtx_EmptyContext(t *testing.T) {
	_, err := IdentityFromCtx(context.Background())
	if !errors.Is(err, ErrIdentityNotFound) {
		t.Fatalf("expected ErrIdentityNotFound, got %v", err)
	}
}

func TestIdentityFromCtx_EmptyID(t *testing.T) {
	ctx := WithIdentity(context.Background(), Identity{Name: "nobody"})
	_, err := IdentityFromCtx(ctx)
	if !errors.Is(err, ErrIdentityNotFound) {
		t.Fatalf("expected ErrIdentityNotFound for empty id, got %v", err)
	}
}

func TestIdentityFromCtx_Isolation(t *testing.T) {
	parent := WithIdentity(context.Background(), Identity{ID: "parent"})
	child := WithIdentity(parent, Identity{ID: "child"})

	got, _ := IdentityFromCtx(parent)
	if got.ID != "parent" {
		t.Fatalf("parent context was modified: got %q", got.ID)
	}
	got, _ = IdentityFromCtx(child)
	if got.ID != "child" {
		t.Fatalf("child context: got %q", got.ID)
	}
}
