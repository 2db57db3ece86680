package cart

import (
	"testing"

	"tableside/internal/models"
)

func biryani() models.Product {
	return models.Product{ID: "PROD-001", Name: "Chicken Biryani", Price: 220, Available: true}
}

func chai() models.Product {
	return models.Product{ID: "PROD-012", Name: "Masala Chai", Price: 50, Available: true}
}

func TestAddItemKeepsOneLinePerProduct(t *testing.T) {
	var c Cart
	for i := 0; i < 3; i++ {
		c.AddItem(biryani())
	}

	if len(c.Lines) != 1 {
		t.Fatalf("expected a single line, got %d", len(c.Lines))
	}
	if c.Lines[0].Qty != 3 {
		t.Fatalf("expected qty to equal add count, got %d", c.Lines[0].Qty)
	}
}

func TestTotalRecomputedFromLines(t *testing.T) {
	var c Cart
	c.AddItem(biryani())
	c.AddItem(biryani())
	c.AddItem(chai())

	if got := c.Total(); got != 490 {
		t.Fatalf("expected total 490, got %v", got)
	}

	c.SetQuantity("PROD-001", 1)
	if got := c.Total(); got != 270 {
		t.Fatalf("expected total 270 after quantity change, got %v", got)
	}
}

func TestSetQuantityFloorRemovesLine(t *testing.T) {
	var c Cart
	c.AddItem(biryani())

	c.SetQuantity("PROD-001", 0)
	if len(c.Lines) != 0 {
		t.Fatal("expected qty 0 to remove the line")
	}

	c.AddItem(biryani())
	c.SetQuantity("PROD-001", -2)
	if len(c.Lines) != 0 {
		t.Fatal("expected negative qty to remove the line")
	}
}

func TestRemoveItem(t *testing.T) {
	var c Cart
	c.AddItem(biryani())
	c.AddItem(chai())

	c.RemoveItem("PROD-001")
	if len(c.Lines) != 1 || c.Lines[0].ProductID != "PROD-012" {
		t.Fatalf("expected only the chai line to remain, got %+v", c.Lines)
	}
}

func TestClearDropsLinesAndTable(t *testing.T) {
	c := Cart{Table: "5"}
	c.AddItem(biryani())

	c.Clear()
	if len(c.Lines) != 0 || c.Table != "" {
		t.Fatalf("expected empty cart, got %+v", c)
	}
}

func TestReadyForCheckout(t *testing.T) {
	var c Cart
	if c.ReadyForCheckout() {
		t.Fatal("empty cart must not be checkout-ready")
	}

	c.AddItem(biryani())
	if c.ReadyForCheckout() {
		t.Fatal("cart without a table must not be checkout-ready")
	}

	c.Table = " "
	if c.ReadyForCheckout() {
		t.Fatal("blank table must not count")
	}

	c.Table = "5"
	if !c.ReadyForCheckout() {
		t.Fatal("cart with lines and table must be checkout-ready")
	}
}

func TestItemsSnapshotMatchesLines(t *testing.T) {
	var c Cart
	c.AddItem(biryani())
	c.AddItem(biryani())

	items := c.Items()
	if len(items) != 1 || items[0].Qty != 2 || items[0].Price != 220 {
		t.Fatalf("unexpected snapshot: %+v", items)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	s := NewSessions()
	s.AddItem("a", biryani())
	s.AddItem("b", chai())
	s.SetTable("a", " 5 ")

	a := s.Snapshot("a")
	if len(a.Lines) != 1 || a.Lines[0].ProductID != "PROD-001" || a.Table != "5" {
		t.Fatalf("unexpected session a: %+v", a)
	}

	b := s.Snapshot("b")
	if len(b.Lines) != 1 || b.Lines[0].ProductID != "PROD-012" || b.Table != "" {
		t.Fatalf("unexpected session b: %+v", b)
	}

	s.Clear("a")
	if len(s.Snapshot("a").Lines) != 0 {
		t.Fatal("expected session a cleared")
	}
	if len(s.Snapshot("b").Lines) != 1 {
		t.Fatal("expected session b untouched")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := NewSessions()
	s.AddItem("a", biryani())

	snap := s.Snapshot("a")
	snap.Lines[0].Qty = 99

	if s.Snapshot("a").Lines[0].Qty != 1 {
		t.Fatal("expected snapshot mutation not to leak into the session")
	}
}
