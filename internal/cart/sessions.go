package cart

import (
	"strings"
	"sync"

	"tableside/internal/models"
)

// Sessions holds one transient cart per session id. Carts live only in
// memory; the store layer never sees them until checkout.
type Sessions struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewSessions() *Sessions {
	return &Sessions{carts: make(map[string]*Cart)}
}

func (s *Sessions) cart(id string) *Cart {
	c, ok := s.carts[id]
	if !ok {
		c = &Cart{}
		s.carts[id] = c
	}
	return c
}

// Snapshot returns a copy of the session's cart.
func (s *Sessions) Snapshot(id string) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(id)
	out := Cart{Table: c.Table}
	out.Lines = make([]Line, len(c.Lines))
	copy(out.Lines, c.Lines)
	return out
}

func (s *Sessions) AddItem(id string, p models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(id).AddItem(p)
}

func (s *Sessions) SetQuantity(id, productID string, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(id).SetQuantity(productID, qty)
}

func (s *Sessions) RemoveItem(id, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(id).RemoveItem(productID)
}

// SetTable associates the serving location with the session, as sourced
// from the table query parameter or manual entry.
func (s *Sessions) SetTable(id, table string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(id).Table = strings.TrimSpace(table)
}

// Clear empties the session's cart, as done after a successful checkout.
func (s *Sessions) Clear(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, id)
}
