// Package store is the only code that touches the persistent key-value
// backend. Values are JSON encoded; failures never reach callers.
package store

import (
	"encoding/json"

	applog "hwstore/internal/log"
)

// Logical keys owned by the core.
const (
	KeyProducts = "products"
	KeyWishlist = "wishlist-items"
	KeyCart     = "cart-items"
)

type Backend interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

type Adapter struct {
	backend Backend
}

func New(b Backend) *Adapter { return &Adapter{backend: b} }

// Load decodes key into a T. ok is false when the key is missing or the
// stored value does not decode; neither is an error. err is set only when
// the backend itself failed.
func Load[T any](a *Adapter, key string) (v T, ok bool, err error) {
	raw, found, err := a.backend.Get(key)
	if err != nil {
		applog.Warn(nil, "store.load.fail", err, map[string]any{"key": key})
		return v, false, err
	}
	if !found {
		return v, false, nil
	}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		applog.Warn(nil, "store.decode.fail", err, map[string]any{"key": key})
		var zero T
		return zero, false, nil
	}
	return v, true, nil
}

// Save encodes value under key. Errors are logged and swallowed so a
// persistence failure never aborts the mutation that triggered it.
func Save[T any](a *Adapter, key string, value T) {
	b, err := json.Marshal(value)
	if err != nil {
		applog.Error(nil, "store.encode.fail", err, map[string]any{"key": key})
		return
	}
	if err := a.backend.Set(key, string(b)); err != nil {
		applog.Error(nil, "store.save.fail", err, map[string]any{"key": key})
	}
}

// Delete removes key. A later Load reports it as missing.
func Delete(a *Adapter, key string) {
	if err := a.backend.Delete(key); err != nil {
		applog.Error(nil, "store.delete.fail", err, map[string]any{"key": key})
	}
}
