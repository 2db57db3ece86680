package models

import "time"

// OrderItem is the denormalized snapshot of a cart line at placement time.
// Later catalog edits never reach back into a placed order.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
	Qty       int     `json:"qty"`
}

// StatusChange is one entry of an order's append-only status history.
type StatusChange struct {
	From Status    `json:"from"`
	To   Status    `json:"to"`
	At   time.Time `json:"at"`
}

type Order struct {
	ID        string         `json:"id"`
	Table     string         `json:"table"`
	Items     []OrderItem    `json:"items"`
	Status    Status         `json:"status"`
	Notes     string         `json:"notes,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	History   []StatusChange `json:"history,omitempty"`
}

// Total is always derived from the items, never stored, so it cannot drift
// from the snapshot.
func (o Order) Total() float64 {
	var sum float64
	for _, item := range o.Items {
		sum += item.Price * float64(item.Qty)
	}
	return sum
}

// Active reports whether the order still belongs on the kitchen board.
func (o Order) Active() bool {
	return !o.Status.Terminal()
}
