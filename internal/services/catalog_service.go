package services

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"hwstore/internal/catalog"
	"hwstore/internal/domain"
	applog "hwstore/internal/log"
	"hwstore/internal/notify"
	"hwstore/internal/store"
	"hwstore/internal/validate"
)

// ErrStoreUnavailable is returned by catalog mutations when the stored
// catalog could not be read. Nothing is written in that case.
var ErrStoreUnavailable = errors.New("catalog store unavailable")

// CatalogService owns product identity and lifecycle. The stored catalog is
// the source of truth: every read goes back to the store so edits made by
// another process sharing it are picked up on the next call.
type CatalogService struct {
	Store *store.Adapter

	mu          sync.Mutex
	initialized bool
	changes     notify.Subject[[]domain.Product]
}

func NewCatalogService(st *store.Adapter) *CatalogService {
	return &CatalogService{Store: st}
}

// Initialize loads the stored catalog once, replacing it with the seed if it
// is missing or stale.
func (s *CatalogService) Initialize() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialized {
		return
	}
	if _, err := s.loadLocked(); err == nil {
		s.initialized = true
	}
}

// loadLocked returns the stored catalog, or the seed (persisted immediately)
// when nothing usable is stored. Any record failing validation makes the
// whole stored value stale; there is no partial migration.
//
// When the backend cannot be read the seed is returned with a non-nil error
// and is not persisted: the stored catalog may still be intact.
func (s *CatalogService) loadLocked() ([]domain.Product, error) {
	products, ok, err := store.Load[[]domain.Product](s.Store, store.KeyProducts)
	if err != nil {
		return catalog.Seed(), fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if ok && products != nil {
		err := validate.Catalog(products)
		if err == nil {
			return products, nil
		}
		applog.Warn(nil, "catalog.stale", err, map[string]any{"records": len(products)})
	} else {
		applog.Info(nil, "catalog.seed", map[string]any{"reason": "missing or undecodable"})
	}
	products = catalog.Seed()
	store.Save(s.Store, store.KeyProducts, products)
	return products, nil
}

func (s *CatalogService) saveLocked(products []domain.Product) {
	store.Save(s.Store, store.KeyProducts, products)
}

// Subscribe is called with the full catalog after each mutation.
func (s *CatalogService) Subscribe(fn func([]domain.Product)) (cancel func()) {
	return s.changes.Subscribe(fn)
}

func (s *CatalogService) GetAllProducts() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	products, _ := s.loadLocked()
	return products
}

func (s *CatalogService) GetProductByID(id int) (domain.Product, bool) {
	for _, p := range s.GetAllProducts() {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func (s *CatalogService) GetProductsByCategory(category string) []domain.Product {
	out := []domain.Product{}
	for _, p := range s.GetAllProducts() {
		if sameCategory(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

// AddProduct assigns the next id (max existing + 1, starting at 1), appends
// and persists. The stored product is returned.
func (s *CatalogService) AddProduct(p domain.Product) (domain.Product, error) {
	s.mu.Lock()
	products, err := s.loadLocked()
	if err != nil {
		s.mu.Unlock()
		applog.Error(nil, "catalog.add.fail", err, nil)
		return domain.Product{}, err
	}
	next := 0
	for _, x := range products {
		next = max(next, x.ID)
	}
	p = p.Clone()
	p.ID = next + 1
	products = append(products, p)
	s.saveLocked(products)
	s.mu.Unlock()

	applog.Audit(nil, "catalog.add", map[string]any{"id": p.ID, "sku": p.SKU})
	s.changes.Publish(slices.Clone(products))
	return p, nil
}

// UpdateProduct replaces the product with the same id. Unknown ids are a
// silent no-op reported as false.
func (s *CatalogService) UpdateProduct(p domain.Product) (bool, error) {
	s.mu.Lock()
	products, err := s.loadLocked()
	if err != nil {
		s.mu.Unlock()
		applog.Error(nil, "catalog.update.fail", err, map[string]any{"id": p.ID})
		return false, err
	}
	i := slices.IndexFunc(products, func(x domain.Product) bool { return x.ID == p.ID })
	if i < 0 {
		s.mu.Unlock()
		return false, nil
	}
	products[i] = p.Clone()
	s.saveLocked(products)
	s.mu.Unlock()

	applog.Audit(nil, "catalog.update", map[string]any{"id": p.ID})
	s.changes.Publish(slices.Clone(products))
	return true, nil
}

// DeleteProduct removes by id; unknown ids are a silent no-op.
func (s *CatalogService) DeleteProduct(id int) (bool, error) {
	s.mu.Lock()
	products, err := s.loadLocked()
	if err != nil {
		s.mu.Unlock()
		applog.Error(nil, "catalog.delete.fail", err, map[string]any{"id": id})
		return false, err
	}
	n := len(products)
	products = slices.DeleteFunc(products, func(x domain.Product) bool { return x.ID == id })
	if len(products) == n {
		s.mu.Unlock()
		return false, nil
	}
	s.saveLocked(products)
	s.mu.Unlock()

	applog.Audit(nil, "catalog.delete", map[string]any{"id": id})
	s.changes.Publish(slices.Clone(products))
	return true, nil
}

func (s *CatalogService) SearchProducts(q string) []domain.Product {
	return catalog.Search(s.GetAllProducts(), q)
}

func (s *CatalogService) GetSimilarProducts(id int, category string, limit int) []domain.Product {
	return catalog.Similar(s.GetAllProducts(), id, category, limit)
}

func (s *CatalogService) GetDiscountedProducts() []domain.Product {
	return catalog.Discounted(s.GetAllProducts())
}

func (s *CatalogService) GetFeaturedProducts() []domain.Product {
	return catalog.Featured(s.GetAllProducts())
}

func (s *CatalogService) GetNewProducts() []domain.Product {
	return catalog.NewArrivals(s.GetAllProducts())
}

// FilterProducts runs the query engine over list, which callers usually take
// from GetAllProducts or a previous query.
func (s *CatalogService) FilterProducts(list []domain.Product, opts domain.FilterOptions) []domain.Product {
	return catalog.Filter(list, opts)
}

func (s *CatalogService) Categories() []string { return catalog.Categories(s.GetAllProducts()) }
func (s *CatalogService) Brands() []string     { return catalog.Brands(s.GetAllProducts()) }

// Stats summarizes the catalog for the admin dashboard.
func (s *CatalogService) Stats() domain.CatalogStats {
	products := s.GetAllProducts()
	st := domain.CatalogStats{Products: len(products)}
	var ratings float64
	for _, p := range products {
		ratings += p.Rating
		if p.InStock {
			st.InStock++
			st.InventoryValue += p.Price
		}
		if p.Discount > 0 {
			st.Discounted++
		}
	}
	if len(products) > 0 {
		st.AverageRating = roundCents(ratings / float64(len(products)))
	}
	st.InventoryValue = roundCents(st.InventoryValue)
	return st
}

func sameCategory(a, b string) bool { return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b)) }
