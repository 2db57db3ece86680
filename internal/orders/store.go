package orders

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"tableside/internal/ident"
	"tableside/internal/logger"
	"tableside/internal/models"
	"tableside/internal/notify"
	"tableside/internal/storage"
)

var (
	ErrEmptyOrder    = errors.New("orders: at least one item is required")
	ErrNoTable       = errors.New("orders: table is required")
	ErrInvalidStatus = errors.New("orders: status not in vocabulary")
)

// Store owns the order list and the last-order pointer. Orders are created
// by customer checkout and only ever mutated in their status field, by admin
// action. They are never deleted individually; Clear drops them all.
type Store struct {
	mu       sync.RWMutex
	store    storage.Store
	notifier notify.Notifier
	log      *zap.SugaredLogger

	orders      []models.Order
	lastOrderID string
}

func NewStore(st storage.Store, n notify.Notifier) *Store {
	return &Store{
		store:    st,
		notifier: n,
		log:      logger.Get(),
	}
}

// Load reads the persisted order list and last-order pointer. A removed key
// and an empty list load identically.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var orders []models.Order
	storage.ReadJSON(ctx, s.store, storage.KeyOrders, &orders)
	s.orders = orders

	var last string
	storage.ReadJSON(ctx, s.store, storage.KeyLastOrderID, &last)
	s.lastOrderID = last
}

// Create places a new order from a cart snapshot. It rejects an empty item
// list or a blank table even though the boundary already blocks both. The
// items are copied, so later catalog or cart changes cannot reach back into
// the placed order.
func (s *Store) Create(ctx context.Context, table string, items []models.OrderItem, notes string) (models.Order, error) {
	if strings.TrimSpace(table) == "" {
		return models.Order{}, ErrNoTable
	}
	if len(items) == 0 {
		return models.Order{}, ErrEmptyOrder
	}

	now := time.Now()
	order := models.Order{
		ID:        ident.New(ident.OrderPrefix),
		Table:     strings.TrimSpace(table),
		Items:     make([]models.OrderItem, len(items)),
		Status:    models.StatusPending,
		Notes:     strings.TrimSpace(notes),
		CreatedAt: now,
		History: []models.StatusChange{
			{To: models.StatusPending, At: now},
		},
	}
	copy(order.Items, items)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = append(s.orders, order)
	s.lastOrderID = order.ID
	s.persist(ctx)

	if err := storage.WriteJSON(ctx, s.store, storage.KeyLastOrderID, order.ID); err != nil {
		s.log.Errorw("persisting last order pointer failed", "err", err)
	} else {
		s.notifier.Announce(storage.KeyLastOrderID)
	}

	return order, nil
}

// UpdateStatus moves the matching order to status and appends a history
// entry. The status must be in the vocabulary; transitions are deliberately
// unrestricted (backwards moves correct mis-clicks). An unknown id is a
// silent no-op.
func (s *Store) UpdateStatus(ctx context.Context, id string, status models.Status) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		if s.orders[i].Status == status {
			return nil
		}
		s.orders[i].History = append(s.orders[i].History, models.StatusChange{
			From: s.orders[i].Status,
			To:   status,
			At:   time.Now(),
		})
		s.orders[i].Status = status
		s.persist(ctx)
		return nil
	}
	return nil
}

// Clear empties the list and removes the persisted key entirely.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = nil
	if err := s.store.Remove(ctx, storage.KeyOrders); err != nil {
		s.log.Errorw("removing orders key failed", "err", err)
		return
	}
	s.notifier.Announce(storage.KeyOrders)
}

// Orders returns a copy of every order, oldest first.
func (s *Store) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOrders(s.orders)
}

// Get looks a single order up by id.
func (s *Store) Get(id string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.ID == id {
			return cloneOrder(o), true
		}
	}
	return models.Order{}, false
}

// Last returns the order behind the last-order pointer, for the immediate
// post-checkout status view.
func (s *Store) Last() (models.Order, bool) {
	s.mu.RLock()
	last := s.lastOrderID
	s.mu.RUnlock()

	if last == "" {
		return models.Order{}, false
	}
	return s.Get(last)
}

// Active returns the orders still in the kitchen (status != Served).
func (s *Store) Active() []models.Order {
	return s.filter(func(o models.Order) bool { return o.Active() })
}

// Completed returns the served orders.
func (s *Store) Completed() []models.Order {
	return s.filter(func(o models.Order) bool { return !o.Active() })
}

func (s *Store) filter(keep func(models.Order) bool) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		if keep(o) {
			out = append(out, cloneOrder(o))
		}
	}
	return out
}

// Watch re-reads the order list whenever a change is announced, until ctx is
// cancelled.
func (s *Store) Watch(ctx context.Context) error {
	changes, err := s.notifier.Subscribe(ctx, storage.KeyOrders)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-changes:
				if !ok {
					return
				}
				s.reload(ctx)
			}
		}
	}()
	return nil
}

func (s *Store) reload(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var orders []models.Order
	if storage.ReadJSON(ctx, s.store, storage.KeyOrders, &orders) {
		s.orders = orders
	} else {
		// Removed key and empty list are the same "no orders" state.
		s.orders = nil
	}
}

// persist writes the full order list. Failures are logged and the optimistic
// in-memory update is kept. Callers must hold the write lock.
func (s *Store) persist(ctx context.Context) {
	if err := storage.WriteJSON(ctx, s.store, storage.KeyOrders, s.orders); err != nil {
		s.log.Errorw("persisting orders failed", "err", err)
		return
	}
	s.notifier.Announce(storage.KeyOrders)
}

func cloneOrder(o models.Order) models.Order {
	out := o
	out.Items = make([]models.OrderItem, len(o.Items))
	copy(out.Items, o.Items)
	out.History = make([]models.StatusChange, len(o.History))
	copy(out.History, o.History)
	return out
}

func cloneOrders(orders []models.Order) []models.Order {
	out := make([]models.Order, len(orders))
	for i, o := range orders {
		out[i] = cloneOrder(o)
	}
	return out
}
