package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// KVRepo is the SQLite-backed key-value store. Values are opaque strings;
// encoding is the store adapter's job.
type KVRepo struct{ db *sqlx.DB }

func NewKVRepo(db *sqlx.DB) *KVRepo { return &KVRepo{db: db} }

func (r *KVRepo) Get(key string) (string, bool, error) {
	var v string
	err := r.db.Get(&v, `SELECT value FROM kv WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (r *KVRepo) Set(key, value string) error {
	_, err := r.db.Exec(`
		INSERT INTO kv(key, value, updated_at)
		VALUES(?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE
		SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	return err
}

func (r *KVRepo) Delete(key string) error {
	_, err := r.db.Exec(`DELETE FROM kv WHERE key = ?`, key)
	return err
}
