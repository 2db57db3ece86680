package orders

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tableside/internal/catalog"
	"tableside/internal/models"
	"tableside/internal/notify"
	"tableside/internal/storage"
)

func newTestStore() (*Store, storage.Store) {
	st := storage.NewMemory()
	return NewStore(st, notify.Nop{}), st
}

func biryaniLines() []models.OrderItem {
	return []models.OrderItem{
		{ProductID: "PROD-001", Name: "Chicken Biryani", Price: 220, Qty: 2},
	}
}

func TestCreateStampsPendingAndPointer(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore()
	s.Load(ctx)

	order, err := s.Create(ctx, "5", biryaniLines(), "")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if order.Status != models.StatusPending {
		t.Fatalf("expected initial status Pending, got %q", order.Status)
	}
	if !strings.HasPrefix(order.ID, "ORD-") {
		t.Fatalf("expected ORD namespace, got %q", order.ID)
	}
	if order.CreatedAt.IsZero() {
		t.Fatal("expected createdAt to be stamped")
	}
	if order.Total() != 440 {
		t.Fatalf("expected derivable total 440, got %v", order.Total())
	}

	last, found := s.Last()
	if !found || last.ID != order.ID {
		t.Fatalf("expected last-order pointer to resolve the new order, got %+v found=%v", last, found)
	}
}

func TestCreateRejectsEmptyItemsAndBlankTable(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore()
	s.Load(ctx)

	if _, err := s.Create(ctx, "5", nil, ""); !errors.Is(err, ErrEmptyOrder) {
		t.Fatalf("expected ErrEmptyOrder, got %v", err)
	}
	if _, err := s.Create(ctx, "  ", biryaniLines(), ""); !errors.Is(err, ErrNoTable) {
		t.Fatalf("expected ErrNoTable, got %v", err)
	}
}

func TestUpdateStatusValidatesVocabulary(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore()
	s.Load(ctx)

	order, _ := s.Create(ctx, "5", biryaniLines(), "")

	if err := s.UpdateStatus(ctx, order.ID, models.Status("Burnt")); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}

	if err := s.UpdateStatus(ctx, order.ID, models.StatusServed); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	got, _ := s.Get(order.ID)
	if got.Status != models.StatusServed {
		t.Fatalf("expected Served, got %q", got.Status)
	}
	if got.Total() != 440 {
		t.Fatalf("expected total unchanged by status update, got %v", got.Total())
	}
}

func TestUpdateStatusAllowsBackwardMoves(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore()
	s.Load(ctx)

	order, _ := s.Create(ctx, "3", biryaniLines(), "")
	s.UpdateStatus(ctx, order.ID, models.StatusServed)
	if err := s.UpdateStatus(ctx, order.ID, models.StatusPreparing); err != nil {
		t.Fatalf("expected backward move to be permitted, got %v", err)
	}

	got, _ := s.Get(order.ID)
	if got.Status != models.StatusPreparing {
		t.Fatalf("expected Preparing after correction, got %q", got.Status)
	}
}

func TestUpdateStatusRecordsHistory(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore()
	s.Load(ctx)

	order, _ := s.Create(ctx, "3", biryaniLines(), "")
	s.UpdateStatus(ctx, order.ID, models.StatusCooking)

	got, _ := s.Get(order.ID)
	if len(got.History) != 2 {
		t.Fatalf("expected creation entry plus one transition, got %d", len(got.History))
	}
	last := got.History[len(got.History)-1]
	if last.From != models.StatusPending || last.To != models.StatusCooking {
		t.Fatalf("unexpected history entry: %+v", last)
	}
}

func TestUpdateStatusUnknownIDIsSilentNoop(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore()
	s.Load(ctx)

	if err := s.UpdateStatus(ctx, "ORD-MISSING", models.StatusReady); err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
}

func TestActivePartition(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore()
	s.Load(ctx)

	first, _ := s.Create(ctx, "1", biryaniLines(), "")
	second, _ := s.Create(ctx, "2", biryaniLines(), "")
	s.UpdateStatus(ctx, first.ID, models.StatusServed)

	active := s.Active()
	if len(active) != 1 || active[0].ID != second.ID {
		t.Fatalf("expected only the unserved order to be active, got %+v", active)
	}

	completed := s.Completed()
	if len(completed) != 1 || completed[0].ID != first.ID {
		t.Fatalf("expected the served order to be completed, got %+v", completed)
	}
}

func TestClearRemovesKeyAndLoadsAsEmpty(t *testing.T) {
	ctx := context.Background()
	s, st := newTestStore()
	s.Load(ctx)

	s.Create(ctx, "1", biryaniLines(), "")
	s.Clear(ctx)

	if len(s.Orders()) != 0 {
		t.Fatal("expected no orders after clear")
	}
	if _, err := st.Read(ctx, storage.KeyOrders); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected persisted key removed, got %v", err)
	}

	// Removed key and empty list must load identically.
	reloaded := NewStore(st, notify.Nop{})
	reloaded.Load(ctx)
	if len(reloaded.Orders()) != 0 {
		t.Fatal("expected removed key to load as no orders")
	}
}

func TestOrderItemsSnapshotIsolation(t *testing.T) {
	ctx := context.Background()
	st := storage.NewMemory()

	catalogStore := catalog.NewStore(st, notify.Nop{})
	catalogStore.Load(ctx)

	s := NewStore(st, notify.Nop{})
	s.Load(ctx)

	product, _ := catalogStore.Product("PROD-001")
	items := []models.OrderItem{
		{ProductID: product.ID, Name: product.Name, Price: product.Price, Qty: 2},
	}
	order, err := s.Create(ctx, "5", items, "")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Mutating the caller's slice must not reach the stored order.
	items[0].Price = 1

	// Neither must a later catalog edit.
	price := 999.0
	name := "Renamed"
	catalogStore.UpdateProduct(ctx, product.ID, models.ProductPatch{Price: &price, Name: &name})

	got, _ := s.Get(order.ID)
	if got.Items[0].Price != 220 || got.Items[0].Name != "Chicken Biryani" {
		t.Fatalf("expected snapshot isolation, got %+v", got.Items[0])
	}
	if got.Total() != 440 {
		t.Fatalf("expected total 440 from the snapshot, got %v", got.Total())
	}
}

func TestNotesAndTableTrimmed(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore()
	s.Load(ctx)

	order, err := s.Create(ctx, " 7 ", biryaniLines(), "  extra spicy ")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if order.Table != "7" || order.Notes != "extra spicy" {
		t.Fatalf("expected trimmed table and notes, got %q %q", order.Table, order.Notes)
	}
}
