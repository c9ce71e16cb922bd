package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hwstore/internal/domain"
	"hwstore/internal/notify"
	"hwstore/internal/services"
	"hwstore/internal/store"
)

func newWishlist(t *testing.T) (*services.WishlistService, *store.Adapter) {
	t.Helper()
	st, _ := memstore(t)
	return services.NewWishlistService(st, notify.NewEmitter("wishlist", 0)), st
}

func TestWishlist_AddIsIdempotent(t *testing.T) {
	wl, _ := newWishlist(t)
	p := part(4, "RX 7800 XT", 399.99)

	assert.True(t, wl.AddToWishlist(p))
	n := wl.Notification()
	assert.Equal(t, domain.NotifySuccess, n.Type)
	assert.Contains(t, n.Message, "RX 7800 XT")

	assert.False(t, wl.AddToWishlist(p))
	assert.Len(t, wl.Wishlist(), 1)
	n = wl.Notification()
	assert.Equal(t, domain.NotifyInfo, n.Type)
	assert.Contains(t, n.Message, "already in your wishlist")
}

func TestWishlist_RemoveUsesNameAndIgnoresAbsent(t *testing.T) {
	wl, _ := newWishlist(t)
	wl.AddToWishlist(part(1, "Core i7", 368.99))
	wl.AddToWishlist(part(2, "Barracuda", 77.43))

	assert.True(t, wl.RemoveFromWishlist(1))
	n := wl.Notification()
	assert.Contains(t, n.Message, "Core i7")

	assert.False(t, wl.RemoveFromWishlist(1))
	assert.Equal(t, n.ID, wl.Notification().ID, "absent remove must not notify")
	assert.False(t, wl.IsInWishlist(1))
	assert.True(t, wl.IsInWishlist(2))
}

func TestWishlist_ClearEmptyIsSilent(t *testing.T) {
	wl, st := newWishlist(t)
	wl.ClearWishlist()
	assert.False(t, wl.Notification().Show)
	_, ok, _ := store.Load[[]domain.Product](st, store.KeyWishlist)
	assert.False(t, ok, "nothing persisted for a no-op clear")

	wl.AddToWishlist(part(1, "A", 1))
	wl.ClearWishlist()
	assert.Empty(t, wl.Wishlist())
	assert.Equal(t, "Wishlist cleared", wl.Notification().Message)

	_, ok, err := store.Load[[]domain.Product](st, store.KeyWishlist)
	require.NoError(t, err)
	assert.False(t, ok, "cleared wishlist key is removed")
}

func TestWishlist_WriteThrough(t *testing.T) {
	st, _ := memstore(t)
	wl := services.NewWishlistService(st, notify.NewEmitter("wishlist", 0))
	wl.AddToWishlist(part(1, "A", 1))
	wl.AddToWishlist(part(2, "B", 2))
	wl.RemoveFromWishlist(1)

	stored, ok, _ := store.Load[[]domain.Product](st, store.KeyWishlist)
	require.True(t, ok)
	require.Len(t, stored, 1)
	assert.Equal(t, 2, stored[0].ID)

	restored := services.NewWishlistService(st, notify.NewEmitter("wishlist", 0))
	assert.True(t, restored.IsInWishlist(2))
	assert.False(t, restored.IsInWishlist(1))
}

func TestWishlist_DeduplicatesOnLoad(t *testing.T) {
	st, _ := memstore(t)
	store.Save(st, store.KeyWishlist, []domain.Product{part(1, "A", 1), part(1, "A", 1), part(2, "B", 1)})
	wl := services.NewWishlistService(st, notify.NewEmitter("wishlist", 0))
	assert.Len(t, wl.Wishlist(), 2)
}

func TestWishlist_NotificationAutoClears(t *testing.T) {
	st, _ := memstore(t)
	wl := services.NewWishlistService(st, notify.NewEmitter("wishlist", 30*time.Millisecond))
	wl.AddToWishlist(part(1, "A", 1))
	require.True(t, wl.Notification().Show)
	require.Eventually(t, func() bool { return !wl.Notification().Show }, time.Second, 5*time.Millisecond)
}

func TestWishlist_SecondNotificationSurvivesFirstTimer(t *testing.T) {
	st, _ := memstore(t)
	wl := services.NewWishlistService(st, notify.NewEmitter("wishlist", 80*time.Millisecond))
	wl.AddToWishlist(part(1, "A", 1))
	time.Sleep(50 * time.Millisecond)
	wl.AddToWishlist(part(1, "A", 1))

	time.Sleep(45 * time.Millisecond)
	n := wl.Notification()
	assert.True(t, n.Show)
	assert.Contains(t, n.Message, "already in your wishlist")
}

func TestWishlist_RestoreRetriedAfterReadFailure(t *testing.T) {
	st, kv := memstore(t)
	store.Save(st, store.KeyWishlist, []domain.Product{part(1, "A", 1)})

	fb := &flakyBackend{Backend: kv, failGets: 1}
	wl := services.NewWishlistService(store.New(fb), notify.NewEmitter("wishlist", 0))
	require.True(t, wl.AddToWishlist(part(2, "B", 2)))

	assert.True(t, wl.IsInWishlist(1))
	stored, ok, err := store.Load[[]domain.Product](st, store.KeyWishlist)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, stored, 2)
}
