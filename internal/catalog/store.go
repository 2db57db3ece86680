package catalog

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"tableside/internal/ident"
	"tableside/internal/logger"
	"tableside/internal/models"
	"tableside/internal/notify"
	"tableside/internal/storage"
)

// Store owns the product and category collections. Every mutation is a
// synchronous read-modify-write over the full in-memory collection followed
// by a full-collection persist and a change announcement. The single-writer
// assumption of the system makes last-write-wins acceptable here.
type Store struct {
	mu       sync.RWMutex
	store    storage.Store
	notifier notify.Notifier
	log      *zap.SugaredLogger

	products   []models.Product
	categories []string
}

func NewStore(st storage.Store, n notify.Notifier) *Store {
	return &Store{
		store:    st,
		notifier: n,
		log:      logger.Get(),
	}
}

// Load reads persisted state and merges the seed catalog in. The merge is
// additive only: records already present are never overwritten by the seed,
// and any seed product whose id is absent is re-added — deleting a seeded
// product does not survive a reload. Categories union the seed list and
// back-fill anything referenced by a loaded product. Loading twice with no
// intervening mutation is a no-op.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var products []models.Product
	storage.ReadJSON(ctx, s.store, storage.KeyProducts, &products)

	productsChanged := false
	ids := make(map[string]bool, len(products))
	for _, p := range products {
		ids[p.ID] = true
	}
	for _, seed := range seedProducts {
		if !ids[seed.ID] {
			products = append(products, seed)
			productsChanged = true
		}
	}

	var stored []string
	storage.ReadJSON(ctx, s.store, storage.KeyCategories, &stored)
	categories := dedupeCategories(stored)
	categoriesChanged := len(categories) != len(stored)

	present := make(map[string]bool, len(categories))
	for _, c := range categories {
		present[c] = true
	}
	for _, seed := range seedCategories {
		if !present[seed] {
			categories = append(categories, seed)
			present[seed] = true
			categoriesChanged = true
		}
	}
	for _, p := range products {
		if p.Category != "" && !present[p.Category] {
			categories = append(categories, p.Category)
			present[p.Category] = true
			categoriesChanged = true
		}
	}

	s.products = products
	s.categories = categories

	if productsChanged {
		s.persistProducts(ctx)
	}
	if categoriesChanged {
		s.persistCategories(ctx)
	}
}

// Products returns a copy of the full catalog, including unavailable items.
func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Product looks a single product up by id.
func (s *Store) Product(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Categories returns the raw category list in insertion order.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out
}

// OrderedCategories returns the category list in display order.
func (s *Store) OrderedCategories() []string {
	return OrderCategories(s.Categories())
}

// AddProduct assigns a fresh id, defaults availability on, appends, persists
// and announces. The stored product is returned.
func (s *Store) AddProduct(ctx context.Context, data models.Product) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	data.ID = ident.New(ident.ProductPrefix)
	data.Available = true

	s.products = append(s.products, data)
	s.persistProducts(ctx)
	return data
}

// UpdateProduct shallow-merges the patch into the matching product. Unknown
// ids are a silent no-op.
func (s *Store) UpdateProduct(ctx context.Context, id string, patch models.ProductPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			patch.Apply(&s.products[i])
			s.persistProducts(ctx)
			return
		}
	}
}

// DeleteProduct removes the matching entry. Unknown ids are a silent no-op.
// Deletion is immediate; there is no soft-delete.
func (s *Store) DeleteProduct(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			s.persistProducts(ctx)
			return
		}
	}
}

// ToggleAvailability flips the availability gate. Unknown ids are a silent
// no-op.
func (s *Store) ToggleAvailability(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].Available = !s.products[i].Available
			s.persistProducts(ctx)
			return
		}
	}
}

// AddCategory normalizes the name and appends it if new. The canonical form
// is returned; added is false when the name is empty or already present
// (case-insensitively, post-normalization).
func (s *Store) AddCategory(ctx context.Context, name string) (canonical string, added bool) {
	canonical = NormalizeCategory(name)
	if canonical == "" {
		return "", false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.categories {
		if strings.EqualFold(c, canonical) {
			return c, false
		}
	}

	s.categories = append(s.categories, canonical)
	s.persistCategories(ctx)
	return canonical, true
}

// Watch re-reads persisted state whenever a change to the catalog keys is
// announced, until ctx is cancelled. The signal payload is advisory; the
// re-read is what reconciles.
func (s *Store) Watch(ctx context.Context) error {
	products, err := s.notifier.Subscribe(ctx, storage.KeyProducts)
	if err != nil {
		return err
	}
	categories, err := s.notifier.Subscribe(ctx, storage.KeyCategories)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-products:
				if !ok {
					return
				}
				s.reload(ctx)
			case _, ok := <-categories:
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

	var products []models.Product
	if storage.ReadJSON(ctx, s.store, storage.KeyProducts, &products) {
		s.products = products
	}
	var categories []string
	if storage.ReadJSON(ctx, s.store, storage.KeyCategories, &categories) {
		s.categories = dedupeCategories(categories)
	}
}

// persistProducts writes the full collection and announces. Write failures
// are logged and degrade to "no persistence occurred"; the optimistic
// in-memory update is kept. Callers must hold the write lock.
func (s *Store) persistProducts(ctx context.Context) {
	if err := storage.WriteJSON(ctx, s.store, storage.KeyProducts, s.products); err != nil {
		s.log.Errorw("persisting products failed", "err", err)
		return
	}
	s.notifier.Announce(storage.KeyProducts)
}

func (s *Store) persistCategories(ctx context.Context) {
	if err := storage.WriteJSON(ctx, s.store, storage.KeyCategories, s.categories); err != nil {
		s.log.Errorw("persisting categories failed", "err", err)
		return
	}
	s.notifier.Announce(storage.KeyCategories)
}
