package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hwstore/internal/domain"
	"hwstore/internal/notify"
	"hwstore/internal/services"
	"hwstore/internal/store"
)

func newCart(t *testing.T) (*services.CartService, *store.Adapter) {
	t.Helper()
	st, _ := memstore(t)
	return services.NewCartService(st, notify.NewEmitter("cart", 0)), st
}

func part(id int, name string, price float64) domain.Product {
	return domain.Product{ID: id, Name: name, Price: price, Category: "Parts", Brand: "Acme"}
}

func TestCart_AddMergesByID(t *testing.T) {
	cart, _ := newCart(t)
	p := part(1, "Ryzen", 300)

	cart.AddToCart(p, 2)
	cart.AddToCart(p, 3)

	items := cart.CartItems()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, 5, cart.ItemCount())
}

func TestCart_AddDefaultsToOne(t *testing.T) {
	cart, _ := newCart(t)
	cart.AddToCart(part(1, "A", 1), 0)
	assert.Equal(t, 1, cart.CartItems()[0].Quantity)
}

func TestCart_AddNotifiesWithProductName(t *testing.T) {
	cart, _ := newCart(t)
	cart.AddToCart(part(9, "RTX 4070 Super", 599.99), 1)

	n := cart.Notify.Current()
	assert.True(t, n.Show)
	assert.Equal(t, domain.NotifySuccess, n.Type)
	assert.Contains(t, n.Message, "RTX 4070 Super")
}

func TestCart_Total(t *testing.T) {
	cart, _ := newCart(t)
	assert.Equal(t, 0.0, cart.GetCartTotal())

	cart.AddToCart(part(1, "A", 10), 2)
	cart.AddToCart(part(2, "B", 5), 3)
	assert.Equal(t, 35.0, cart.GetCartTotal())

	cart.UpdateQuantity(2, 1)
	assert.Equal(t, 25.0, cart.GetCartTotal())
}

func TestCart_TotalHasNoFloatDrift(t *testing.T) {
	cart, _ := newCart(t)
	cart.AddToCart(part(1, "A", 0.1), 3)
	cart.AddToCart(part(2, "B", 0.2), 1)
	assert.Equal(t, 0.5, cart.GetCartTotal())
}

func TestCart_UpdateQuantityIsNotAdditive(t *testing.T) {
	cart, _ := newCart(t)
	cart.AddToCart(part(1, "A", 10), 4)
	cart.UpdateQuantity(1, 2)
	assert.Equal(t, 2, cart.CartItems()[0].Quantity)

	cart.UpdateQuantity(42, 7)
	assert.Len(t, cart.CartItems(), 1)
}

func TestCart_UpdateQuantityToZeroRemoves(t *testing.T) {
	cart, st := newCart(t)
	cart.AddToCart(part(1, "A", 10), 4)
	cart.AddToCart(part(2, "B", 10), 1)

	cart.UpdateQuantity(1, 0)
	cart.UpdateQuantity(2, -3)
	assert.Empty(t, cart.CartItems())

	stored, ok, _ := store.Load[[]domain.CartEntry](st, store.KeyCart)
	require.True(t, ok)
	assert.Empty(t, stored)
}

func TestCart_RemoveAndClear(t *testing.T) {
	cart, _ := newCart(t)
	cart.AddToCart(part(1, "A", 10), 1)
	cart.AddToCart(part(2, "B", 10), 1)

	cart.RemoveFromCart(1)
	cart.RemoveFromCart(1)
	require.Len(t, cart.CartItems(), 1)
	assert.Equal(t, 2, cart.CartItems()[0].Product.ID)

	cart.ClearCart()
	assert.Empty(t, cart.CartItems())
	assert.Equal(t, 0.0, cart.GetCartTotal())
}

func TestCart_PersistsAndRestores(t *testing.T) {
	st, _ := memstore(t)
	cart := services.NewCartService(st, notify.NewEmitter("cart", 0))
	cart.AddToCart(part(1, "A", 10), 2)
	cart.AddToCart(part(2, "B", 5), 3)

	restored := services.NewCartService(st, notify.NewEmitter("cart", 0))
	assert.Equal(t, cart.CartItems(), restored.CartItems())
	assert.Equal(t, 35.0, restored.GetCartTotal())
}

func TestCart_DropsNonPositiveQuantitiesOnLoad(t *testing.T) {
	st, _ := memstore(t)
	store.Save(st, store.KeyCart, []domain.CartEntry{
		{Product: part(1, "A", 10), Quantity: 0},
		{Product: part(2, "B", 10), Quantity: 2},
	})
	cart := services.NewCartService(st, notify.NewEmitter("cart", 0))
	items := cart.CartItems()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Product.ID)
}

func TestCart_HoldsSnapshots(t *testing.T) {
	st, _ := memstore(t)
	catalogSvc := services.NewCatalogService(st)
	catalogSvc.Initialize()
	cart := services.NewCartService(st, notify.NewEmitter("cart", 0))

	p, ok := catalogSvc.GetProductByID(8)
	require.True(t, ok)
	cart.AddToCart(p, 1)

	p.Price = 1
	p.Specifications["Capacity"] = "1TB"
	catalogSvc.UpdateProduct(p)

	item := cart.CartItems()[0]
	assert.Equal(t, 169.99, item.Product.Price)
	assert.Equal(t, "2TB", item.Product.Specifications["Capacity"])
}

func TestCart_OpenAndQuickView(t *testing.T) {
	cart, _ := newCart(t)
	assert.False(t, cart.IsCartOpen())
	cart.OpenCart()
	assert.True(t, cart.IsCartOpen())
	cart.CloseCart()
	assert.False(t, cart.IsCartOpen())

	_, ok := cart.SelectedProduct()
	assert.False(t, ok)
	cart.OpenQuickView(part(1, "A", 1))
	cart.OpenQuickView(part(2, "B", 1))
	sel, ok := cart.SelectedProduct()
	require.True(t, ok)
	assert.Equal(t, 2, sel.ID)
	cart.CloseQuickView()
	_, ok = cart.SelectedProduct()
	assert.False(t, ok)
}

func TestCart_Subscribe(t *testing.T) {
	cart, _ := newCart(t)
	var counts []int
	cancel := cart.Subscribe(func(items []domain.CartEntry) { counts = append(counts, len(items)) })
	defer cancel()

	cart.AddToCart(part(1, "A", 1), 1)
	cart.AddToCart(part(2, "B", 1), 1)
	cart.RemoveFromCart(1)
	cart.ClearCart()
	assert.Equal(t, []int{1, 2, 1, 0}, counts)
}

func TestCart_ClearRemovesStoredKey(t *testing.T) {
	cart, st := newCart(t)
	cart.AddToCart(part(1, "A", 10), 1)
	cart.ClearCart()

	_, ok, err := store.Load[[]domain.CartEntry](st, store.KeyCart)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, services.NewCartService(st, notify.NewEmitter("cart", 0)).CartItems())
}

func TestCart_RestoreRetriedAfterReadFailure(t *testing.T) {
	st, kv := memstore(t)
	store.Save(st, store.KeyCart, []domain.CartEntry{{Product: part(1, "A", 10), Quantity: 2}})

	fb := &flakyBackend{Backend: kv, failGets: 1}
	cart := services.NewCartService(store.New(fb), notify.NewEmitter("cart", 0))
	cart.AddToCart(part(2, "B", 5), 1)

	items := cart.CartItems()
	require.Len(t, items, 2, "stored entries kept after a failed first read")
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 25.0, cart.GetCartTotal())
}
