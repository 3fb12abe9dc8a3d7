package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testItem struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

func setupTestRedis(t *testing.T) *goredis.Client {
	t.Helper()
	s := miniredis.RunT(t)
	return goredis.NewClient(&goredis.Options{Addr: s.Addr()})
}

func TestJSONCache_GetMiss(t *testing.T) {
	client := setupTestRedis(t)
	cache := NewJSONCache[testItem](client, "test", 5*time.Second)

	result, err := cache.Get(context.Background(), "nonexistent")
	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestJSONCache_SetAndGet(t *testing.T) {
	client := setupTestRedis(t)
	cache := NewJSONCache[testItem](client, "test", 5*time.Second)
	ctx := context.Background()

	item := &testItem{Name: "end mill", Value: 42}
	err := cache.Set(ctx, "item1", item)
	require.NoError(t, err)

	result, err := cache.Get(ctx, "item1")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "end mill", result.Name)
	assert.Equal(t, 42, result.Value)
}

func TestJSONCache_Delete(t *testing.T) {
	client := setupTestRedis(t)
	cache := NewJSONCache[testItem](client, "test", 5*time.Second)
	ctx := context.Background()

	item := &testItem{Name: "insert", Value: 10}
	require.NoError(t, cache.Set(ctx, "item2", item))

	err := cache.Delete(ctx, "item2")
	require.NoError(t, err)

	result, err := cache.Get(ctx, "item2")
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestJSONCache_NilClient(t *testing.T) {
	cache := NewJSONCache[testItem](nil, "test", 5*time.Second)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", &testItem{Name: "x"}))

	result, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, result)

	require.NoError(t, cache.Delete(ctx, "k"))
}

func TestJSONCache_KeyPrefixIsolation(t *testing.T) {
	client := setupTestRedis(t)
	a := NewJSONCache[testItem](client, "stats", 5*time.Second)
	b := NewJSONCache[testItem](client, "tool", 5*time.Second)
	ctx := context.Background()

	require.NoError(t, a.Set(ctx, "shared", &testItem{Name: "fleet", Value: 1}))

	result, err := b.Get(ctx, "shared")
	require.NoError(t, err)
	assert.Nil(t, result)
}
