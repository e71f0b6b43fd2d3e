package database

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseKV(t *testing.T, kv KV) {
	ctx := context.Background()

	_, found, err := kv.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, kv.Put(ctx, "roster", []byte(`[{"id":"1"}]`)))
	value, found, err := kv.Get(ctx, "roster")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"1"}]`, string(value))

	// Overwrite replaces the whole value
	require.NoError(t, kv.Put(ctx, "roster", []byte(`[]`)))
	value, found, err = kv.Get(ctx, "roster")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[]`, string(value))
}

func TestMemoryKV(t *testing.T) {
	kv := NewMemoryKV()
	defer kv.Close()
	exerciseKV(t, kv)
}

func TestMemoryKV_CopiesValues(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	original := []byte("abc")
	require.NoError(t, kv.Put(ctx, "k", original))
	original[0] = 'x'

	value, _, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(value))

	value[1] = 'y'
	again, _, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}

func TestSQLiteKV(t *testing.T) {
	kv, err := NewSQLiteKV(":memory:")
	require.NoError(t, err)
	defer kv.Close()
	exerciseKV(t, kv)
}

func TestSQLiteKV_PersistsToFile(t *testing.T) {
	ctx := context.Background()
	path := t.TempDir() + "/roster.db"

	kv, err := NewSQLiteKV(path)
	require.NoError(t, err)
	require.NoError(t, kv.Put(ctx, "settings", []byte(`{"features":{}}`)))
	require.NoError(t, kv.Close())

	reopened, err := NewSQLiteKV(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, found, err := reopened.Get(ctx, "settings")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"features":{}}`, string(value))
}

func TestPostgreSQLKV(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := NewPostgreSQLDB(dsn)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(context.Background(), "DELETE FROM kv_store")
	require.NoError(t, err)
	exerciseKV(t, db)
}

func TestOpen(t *testing.T) {
	kv, err := Open("memory", "", "")
	require.NoError(t, err)
	assert.IsType(t, &MemoryKV{}, kv)

	kv, err = Open("sqlite", ":memory:", "")
	require.NoError(t, err)
	assert.IsType(t, &SQLiteKV{}, kv)
	kv.Close()

	_, err = Open("redis", "", "")
	assert.Error(t, err)
}
