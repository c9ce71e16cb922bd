package services

import (
	"slices"
	"sync"

	"hwstore/internal/domain"
	applog "hwstore/internal/log"
	"hwstore/internal/notify"
	"hwstore/internal/store"
)

// WishlistService is a set of product snapshots keyed by id, written
// through to the store on every mutation.
type WishlistService struct {
	Store  *store.Adapter
	Notify *notify.Emitter

	mu      sync.Mutex
	items    []domain.Product
	restored bool
	changes  notify.Subject[[]domain.Product]
}

func NewWishlistService(st *store.Adapter, n *notify.Emitter) *WishlistService {
	s := &WishlistService{Store: st, Notify: n}
	s.restoreLocked()
	return s
}

// restoreLocked loads the stored wishlist, dropping duplicate ids. A read
// failure is retried on the next access until the first write.
func (s *WishlistService) restoreLocked() {
	if s.restored {
		return
	}
	items, _, err := store.Load[[]domain.Product](s.Store, store.KeyWishlist)
	if err != nil {
		return
	}
	s.items = nil
	seen := map[int]bool{}
	for _, p := range items {
		if !seen[p.ID] {
			seen[p.ID] = true
			s.items = append(s.items, p)
		}
	}
	s.restored = true
}

func (s *WishlistService) Subscribe(fn func([]domain.Product)) (cancel func()) {
	return s.changes.Subscribe(fn)
}

func (s *WishlistService) commitLocked() []domain.Product {
	items := s.items
	if items == nil {
		items = []domain.Product{}
	}
	store.Save(s.Store, store.KeyWishlist, items)
	s.restored = true
	return slices.Clone(items)
}

func (s *WishlistService) indexLocked(id int) int {
	return slices.IndexFunc(s.items, func(p domain.Product) bool { return p.ID == id })
}

func (s *WishlistService) Wishlist() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restoreLocked()
	out := make([]domain.Product, len(s.items))
	for i, p := range s.items {
		out[i] = p.Clone()
	}
	return out
}

func (s *WishlistService) Notification() domain.Notification { return s.Notify.Current() }

// AddToWishlist inserts a snapshot of p. A product already present is not
// duplicated; the caller gets an informational notification instead.
// It reports whether p was inserted.
func (s *WishlistService) AddToWishlist(p domain.Product) bool {
	s.mu.Lock()
	s.restoreLocked()
	if s.indexLocked(p.ID) >= 0 {
		s.mu.Unlock()
		s.Notify.Show(p.Name+" is already in your wishlist", domain.NotifyInfo)
		return false
	}
	s.items = append(s.items, p.Clone())
	items := s.commitLocked()
	s.mu.Unlock()

	applog.Info(nil, "wishlist.add", map[string]any{"product": p.ID})
	s.Notify.Show(p.Name+" added to wishlist", domain.NotifySuccess)
	s.changes.Publish(items)
	return true
}

// RemoveFromWishlist drops id if present. Nothing is persisted or announced
// for an absent id.
func (s *WishlistService) RemoveFromWishlist(id int) bool {
	s.mu.Lock()
	s.restoreLocked()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	name := s.items[i].Name
	s.items = slices.Delete(s.items, i, i+1)
	items := s.commitLocked()
	s.mu.Unlock()

	applog.Info(nil, "wishlist.remove", map[string]any{"product": id})
	s.Notify.Show(name+" removed from wishlist", domain.NotifyInfo)
	s.changes.Publish(items)
	return true
}

func (s *WishlistService) IsInWishlist(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restoreLocked()
	return s.indexLocked(id) >= 0
}

// ClearWishlist empties a non-empty wishlist and drops its stored key. An
// empty one is left alone and raises no notification.
func (s *WishlistService) ClearWishlist() {
	s.mu.Lock()
	s.restoreLocked()
	if len(s.items) == 0 {
		s.mu.Unlock()
		return
	}
	s.items = nil
	store.Delete(s.Store, store.KeyWishlist)
	s.mu.Unlock()

	applog.Info(nil, "wishlist.clear", nil)
	s.Notify.Show("Wishlist cleared", domain.NotifyInfo)
	s.changes.Publish([]domain.Product{})
}
