package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte(`{"a":1}`)))

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), got)
}

func TestMemoryStoreMissingKey(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryStoreRemove(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte("v")))
	require.NoError(t, store.Remove(ctx, "k"))

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// Removing an absent key is not an error.
	assert.NoError(t, store.Remove(ctx, "k"))
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	value := []byte("original")
	require.NoError(t, store.Set(ctx, "k", value))
	value[0] = 'X'

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), got)

	// Mutating a read result must not leak back into the store.
	got[0] = 'Y'
	again, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), again)
}

func TestReadFallsBackToDefault(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	got := Read(ctx, store, "nums", []int{1, 2, 3})
	assert.Equal(t, []int{1, 2, 3}, got)

	// A corrupt value also yields the default instead of an error.
	require.NoError(t, store.Set(ctx, "nums", []byte("{not json")))
	got = Read(ctx, store, "nums", []int{1, 2, 3})
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestWriteThenRead(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	Write(ctx, store, "nums", []int{7, 8})
	got := Read(ctx, store, "nums", []int{})
	assert.Equal(t, []int{7, 8}, got)
}
