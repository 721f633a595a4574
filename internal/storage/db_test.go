package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_CreatesSchema(t *testing.T) {
	db, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`INSERT INTO kv (key, value) VALUES ('k', 'v')`)
	require.NoError(t, err)

	var v []byte
	require.NoError(t, db.QueryRow(`SELECT value FROM kv WHERE key = 'k'`).Scan(&v))
	assert.Equal(t, []byte("v"), v)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	// running again must be a no-op, not an error
	require.NoError(t, RunMigrations(context.Background(), db))
}
