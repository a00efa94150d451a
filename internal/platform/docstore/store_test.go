package docstore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
)

func assertRoundTrip(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	exists, err := store.Exists(ctx)
	require.NoError(t, err)
	require.False(t, exists)

	empty, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, empty.Tables)
	require.Empty(t, empty.Tables)

	require.NoError(t, store.Save(ctx, sampleDocument()))

	exists, err = store.Exists(ctx)
	require.NoError(t, err)
	require.True(t, exists)

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, sampleDocument().Tables, loaded.Tables)
	require.NotNil(t, loaded.Bookings)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	assertRoundTrip(t, NewMemoryStore())
}

func TestMemoryStoreLoadsIndependentCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Save(ctx, sampleDocument()))

	first, err := store.Load(ctx)
	require.NoError(t, err)
	first.Tables[0].Number = 99

	second, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, second.Tables[0].Number)
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "database.json")
	store := NewFileStore(path)
	assertRoundTrip(t, store)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var generic map[string]any
	require.NoError(t, json.Unmarshal(raw, &generic))
	for _, key := range []string{"users", "tables", "bookings", "customers", "menu", "orders", "staff", "feedback"} {
		require.Contains(t, generic, key)
		require.IsType(t, []any{}, generic[key])
	}
}

func TestFileStoreToleratesMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"tables":[{"id":"1","number":1,"capacity":2,"status":"available","location":"Window"}]}`), 0o644))

	doc, err := NewFileStore(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, doc.Tables, 1)
	require.NotNil(t, doc.Orders)
	require.Empty(t, doc.Orders)
}

func TestFileStoreRejectsCorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))

	_, err := NewFileStore(path).Load(context.Background())
	require.Error(t, err)
}

func TestRedisStoreRoundTrip(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	store := NewRedisStore(client, "test:db")
	assertRoundTrip(t, store)
	require.True(t, mr.Exists("test:db"))
}

func TestRedisStoreConnectionFailure(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	mr.Close()

	_, err = NewRedisStore(client, "").Load(context.Background())
	require.Error(t, err)
}
