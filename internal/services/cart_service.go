package services

import (
	"slices"
	"sync"

	"github.com/shopspring/decimal"

	"hwstore/internal/domain"
	applog "hwstore/internal/log"
	"hwstore/internal/notify"
	"hwstore/internal/store"
)

// CartService is the session cart. Entries hold product snapshots taken at
// add time, so later catalog edits leave cart prices untouched.
type CartService struct {
	Store  *store.Adapter
	Notify *notify.Emitter

	mu       sync.Mutex
	items    []domain.CartEntry
	open     bool
	selected *domain.Product
	restored bool
	changes  notify.Subject[[]domain.CartEntry]
}

// NewCartService restores the persisted cart. Entries with a non-positive
// quantity are dropped on load.
func NewCartService(st *store.Adapter, n *notify.Emitter) *CartService {
	s := &CartService{Store: st, Notify: n}
	s.restoreLocked()
	return s
}

// restoreLocked loads the persisted cart once. If the backend could not be
// read it is retried on the next access, until the first write makes the
// in-memory cart authoritative.
func (s *CartService) restoreLocked() {
	if s.restored {
		return
	}
	items, _, err := store.Load[[]domain.CartEntry](s.Store, store.KeyCart)
	if err != nil {
		return
	}
	s.items = nil
	for _, it := range items {
		if it.Quantity >= 1 {
			s.items = append(s.items, it)
		}
	}
	s.restored = true
}

func (s *CartService) Subscribe(fn func([]domain.CartEntry)) (cancel func()) {
	return s.changes.Subscribe(fn)
}

// commitLocked persists the cart and returns a copy for subscribers.
func (s *CartService) commitLocked() []domain.CartEntry {
	items := s.items
	if items == nil {
		items = []domain.CartEntry{}
	}
	store.Save(s.Store, store.KeyCart, items)
	s.restored = true
	return slices.Clone(items)
}

func (s *CartService) CartItems() []domain.CartEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restoreLocked()
	out := make([]domain.CartEntry, len(s.items))
	for i, it := range s.items {
		out[i] = domain.CartEntry{Product: it.Product.Clone(), Quantity: it.Quantity}
	}
	return out
}

func (s *CartService) indexLocked(id int) int {
	return slices.IndexFunc(s.items, func(it domain.CartEntry) bool { return it.Product.ID == id })
}

// AddToCart merges into an existing entry for the same product id or
// appends a snapshot. qty below 1 counts as 1.
func (s *CartService) AddToCart(p domain.Product, qty int) {
	if qty < 1 {
		qty = 1
	}
	s.mu.Lock()
	s.restoreLocked()
	if i := s.indexLocked(p.ID); i >= 0 {
		s.items[i].Quantity += qty
	} else {
		s.items = append(s.items, domain.CartEntry{Product: p.Clone(), Quantity: qty})
	}
	items := s.commitLocked()
	s.mu.Unlock()

	applog.Info(nil, "cart.add", map[string]any{"product": p.ID, "qty": qty})
	s.Notify.Show(p.Name+" added to cart", domain.NotifySuccess)
	s.changes.Publish(items)
}

// RemoveFromCart deletes the entry for id; absent ids are a no-op.
func (s *CartService) RemoveFromCart(id int) {
	s.mu.Lock()
	s.restoreLocked()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	name := s.items[i].Product.Name
	s.items = slices.Delete(s.items, i, i+1)
	items := s.commitLocked()
	s.mu.Unlock()

	applog.Info(nil, "cart.remove", map[string]any{"product": id})
	s.Notify.Show(name+" removed from cart", domain.NotifyInfo)
	s.changes.Publish(items)
}

// UpdateQuantity sets the quantity for id. A quantity of zero or less
// removes the entry so a stored quantity is never below 1.
func (s *CartService) UpdateQuantity(id, qty int) {
	if qty <= 0 {
		s.RemoveFromCart(id)
		return
	}
	s.mu.Lock()
	s.restoreLocked()
	i := s.indexLocked(id)
	if i < 0 || s.items[i].Quantity == qty {
		s.mu.Unlock()
		return
	}
	s.items[i].Quantity = qty
	items := s.commitLocked()
	s.mu.Unlock()

	s.changes.Publish(items)
}

// GetCartTotal sums quantity * snapshot price, computed fresh each call.
func (s *CartService) GetCartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restoreLocked()
	total := decimal.Zero
	for _, it := range s.items {
		line := decimal.NewFromFloat(it.Product.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))
		total = total.Add(line)
	}
	f, _ := total.Round(2).Float64()
	return f
}

// ItemCount is the number of units in the cart.
func (s *CartService) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restoreLocked()
	n := 0
	for _, it := range s.items {
		n += it.Quantity
	}
	return n
}

// ClearCart empties the cart and drops its stored key.
func (s *CartService) ClearCart() {
	s.mu.Lock()
	s.items = nil
	s.restored = true
	store.Delete(s.Store, store.KeyCart)
	s.mu.Unlock()

	applog.Info(nil, "cart.clear", nil)
	s.changes.Publish([]domain.CartEntry{})
}

func (s *CartService) OpenCart() {
	s.mu.Lock()
	s.open = true
	s.mu.Unlock()
}

func (s *CartService) CloseCart() {
	s.mu.Lock()
	s.open = false
	s.mu.Unlock()
}

func (s *CartService) IsCartOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// OpenQuickView selects p for the quick-view modal, replacing any earlier
// selection.
func (s *CartService) OpenQuickView(p domain.Product) {
	cp := p.Clone()
	s.mu.Lock()
	s.selected = &cp
	s.mu.Unlock()
}

func (s *CartService) CloseQuickView() {
	s.mu.Lock()
	s.selected = nil
	s.mu.Unlock()
}

// SelectedProduct reports the quick-view product, if any.
func (s *CartService) SelectedProduct() (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return domain.Product{}, false
	}
	return s.selected.Clone(), true
}
