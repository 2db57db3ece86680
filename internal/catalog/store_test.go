package catalog

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"tableside/internal/models"
	"tableside/internal/notify"
	"tableside/internal/storage"
)

func newTestStore() (*Store, storage.Store) {
	st := storage.NewMemory()
	return NewStore(st, notify.Nop{}), st
}

func TestLoadSeedsEmptyStore(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore()
	s.Load(ctx)

	products := s.Products()
	if len(products) != len(seedProducts) {
		t.Fatalf("expected %d seeded products, got %d", len(seedProducts), len(products))
	}

	categories := s.Categories()
	if len(categories) != len(seedCategories) {
		t.Fatalf("expected %d seeded categories, got %v", len(seedCategories), categories)
	}
}

func TestLoadIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s, st := newTestStore()
	s.Load(ctx)

	first := s.Products()
	firstCategories := s.Categories()

	again := NewStore(st, notify.Nop{})
	again.Load(ctx)

	if !reflect.DeepEqual(first, again.Products()) {
		t.Fatal("expected identical product collection after re-load")
	}
	if !reflect.DeepEqual(firstCategories, again.Categories()) {
		t.Fatal("expected identical category collection after re-load")
	}
}

func TestLoadNeverOverwritesExistingRecords(t *testing.T) {
	ctx := context.Background()
	s, st := newTestStore()
	s.Load(ctx)

	price := 999.0
	s.UpdateProduct(ctx, "PROD-001", models.ProductPatch{Price: &price})

	reloaded := NewStore(st, notify.Nop{})
	reloaded.Load(ctx)

	p, found := reloaded.Product("PROD-001")
	if !found {
		t.Fatal("expected PROD-001 to survive reload")
	}
	if p.Price != 999 {
		t.Fatalf("expected admin edit to survive the seed merge, got price %v", p.Price)
	}
}

func TestDeletedSeedProductReappearsOnReload(t *testing.T) {
	ctx := context.Background()
	s, st := newTestStore()
	s.Load(ctx)

	s.DeleteProduct(ctx, "PROD-001")
	if _, found := s.Product("PROD-001"); found {
		t.Fatal("expected PROD-001 to be deleted")
	}

	reloaded := NewStore(st, notify.Nop{})
	reloaded.Load(ctx)

	if _, found := reloaded.Product("PROD-001"); !found {
		t.Fatal("expected seed merge to re-add PROD-001")
	}
}

func TestLoadBackfillsProductCategories(t *testing.T) {
	ctx := context.Background()
	st := storage.NewMemory()

	orphan := []models.Product{
		{ID: "PROD-900", Name: "Tomato Soup", Price: 90, Category: "Soups", Available: true},
	}
	if err := storage.WriteJSON(ctx, st, storage.KeyProducts, orphan); err != nil {
		t.Fatalf("seeding storage failed: %v", err)
	}

	s := NewStore(st, notify.Nop{})
	s.Load(ctx)

	found := false
	for _, c := range s.Categories() {
		if c == "Soups" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected Soups to be back-filled from products, got %v", s.Categories())
	}
}

func TestAddProductAssignsIDAndAvailability(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore()
	s.Load(ctx)

	p := s.AddProduct(ctx, models.Product{Name: "Tomato Soup", Price: 90, Category: "Soups", Available: false})

	if !strings.HasPrefix(p.ID, "PROD-") {
		t.Fatalf("expected PROD namespace, got %q", p.ID)
	}
	if !p.Available {
		t.Fatal("expected availability to default on")
	}

	stored, found := s.Product(p.ID)
	if !found || stored.Name != "Tomato Soup" {
		t.Fatalf("expected product to be stored, got %+v found=%v", stored, found)
	}
}

func TestUpdateProductUnknownIDIsNoop(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore()
	s.Load(ctx)

	before := s.Products()
	name := "Ghost"
	s.UpdateProduct(ctx, "PROD-999X", models.ProductPatch{Name: &name})

	if !reflect.DeepEqual(before, s.Products()) {
		t.Fatal("expected unknown id update to change nothing")
	}
}

func TestToggleAvailabilityFlips(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore()
	s.Load(ctx)

	s.ToggleAvailability(ctx, "PROD-002")
	p, _ := s.Product("PROD-002")
	if p.Available {
		t.Fatal("expected availability off after toggle")
	}

	s.ToggleAvailability(ctx, "PROD-002")
	p, _ = s.Product("PROD-002")
	if !p.Available {
		t.Fatal("expected availability back on after second toggle")
	}
}

func TestAddCategoryNormalizesAndDedupes(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore()
	s.Load(ctx)

	canonical, added := s.AddCategory(ctx, "soups")
	if !added || canonical != "Soups" {
		t.Fatalf("expected Soups to be added, got %q added=%v", canonical, added)
	}

	canonical, added = s.AddCategory(ctx, "Soups ")
	if added {
		t.Fatal("expected near-duplicate to be rejected")
	}
	if canonical != "Soups" {
		t.Fatalf("expected canonical existing name, got %q", canonical)
	}

	count := 0
	for _, c := range s.Categories() {
		if c == "Soups" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one Soups entry, got %d", count)
	}
}

func TestAddCategoryRejectsBlankName(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore()
	s.Load(ctx)

	if canonical, added := s.AddCategory(ctx, "   "); added || canonical != "" {
		t.Fatalf("expected blank name to be rejected, got %q added=%v", canonical, added)
	}
}
