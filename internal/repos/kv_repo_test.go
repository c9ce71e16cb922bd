package repos_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hwstore/internal/repos"
	"hwstore/internal/store"
)

func exerciseKV(t *testing.T, r store.Backend) {
	t.Helper()
	_, found, err := r.Get("cart-items")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, r.Set("cart-items", `[]`))
	require.NoError(t, r.Set("cart-items", `[{"quantity":1}]`))
	v, found, err := r.Get("cart-items")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"quantity":1}]`, v)

	require.NoError(t, r.Delete("cart-items"))
	_, found, err = r.Get("cart-items")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestKVRepo(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	defer db.Close()

	exerciseKV(t, repos.NewKVRepo(db))
}

func TestKVRepoDeleteMissingKey(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	defer db.Close()

	assert.NoError(t, repos.NewKVRepo(db).Delete("wishlist-items"))
}

// Runs against a real Redis when REDIS_URL is set.
func TestRedisKV(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}
	r, err := repos.OpenRedis(url, "hwstore-test:")
	require.NoError(t, err)
	defer r.Close()
	exerciseKV(t, r)
}
