package services_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"hwstore/internal/repos"
	"hwstore/internal/store"
)

func memstore(t *testing.T) (*store.Adapter, *repos.KVRepo) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	kv := repos.NewKVRepo(db)
	return store.New(kv), kv
}
