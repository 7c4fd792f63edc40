package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	categorydomain "github.com/ghuser/catalog/services/category/domain"
	"github.com/ghuser/catalog/services/category/domain/models"
)

func TestCategoryRepository_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository()
	c := models.NewCategory("Electronics")

	if err := repo.Save(ctx, c); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := repo.GetByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if diff := cmp.Diff(c, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	// Returned records are copies.
	got.Name = "Mutated"
	again, _ := repo.GetByID(ctx, c.ID)
	if again.Name != "Electronics" {
		t.Fatal("repository state leaked through returned pointer")
	}
}

func TestCategoryRepository_DuplicateName(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository()

	if err := repo.Save(ctx, models.NewCategory("Books")); err != nil {
		t.Fatalf("save: %v", err)
	}
	err := repo.Save(ctx, models.NewCategory("Books"))
	if !errors.Is(err, categorydomain.ErrCategoryAlreadyExists) {
		t.Fatalf("expected ErrCategoryAlreadyExists, got %v", err)
	}
	// Case-sensitive.
	if err := repo.Save(ctx, models.NewCategory("books")); err != nil {
		t.Fatalf("save lowercase: %v", err)
	}

	all, _ := repo.FindAll(ctx)
	if len(all) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(all))
	}
}

func TestCategoryRepository_FindAllCreationOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository()

	empty, err := repo.FindAll(ctx)
	if err != nil || empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v, %v", empty, err)
	}

	names := []models.CategoryName{"c", "a", "b"}
	for _, n := range names {
		if err := repo.Save(ctx, models.NewCategory(n)); err != nil {
			t.Fatalf("save %s: %v", n, err)
		}
	}
	all, _ := repo.FindAll(ctx)
	var got []models.CategoryName
	for _, c := range all {
		got = append(got, c.Name)
	}
	if diff := cmp.Diff(names, got); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestCategoryRepository_GetMissing(t *testing.T) {
	_, err := NewCategoryRepository().GetByID(context.Background(), uuid.New())
	if !errors.Is(err, categorydomain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

// Concurrent creates with one name: exactly one wins.
func TestCategoryRepository_ConcurrentDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository()

	const n = 16
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := repo.Save(ctx, models.NewCategory("Race")); err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if wins != 1 {
		t.Fatalf("expected exactly one successful save, got %d", wins)
	}
}
