package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client), s
}

func TestEntityCache_PutGet(t *testing.T) {
	store, s := newTestStore(t)
	c := NewEntityCache[item](store, "item", "item:", time.Minute, nil)
	ctx := context.Background()

	_, ok := c.Get(ctx, "1")
	assert.False(t, ok)

	c.Put(ctx, "1", item{ID: "1", Name: "first"})

	got, ok := c.Get(ctx, "1")
	require.True(t, ok)
	assert.Equal(t, "first", got.Name)
	assert.True(t, s.Exists("item:1"))
	assert.Equal(t, time.Minute, s.TTL("item:1"))
}

func TestEntityCache_DecodeFailureIsMiss(t *testing.T) {
	store, s := newTestStore(t)
	c := NewEntityCache[item](store, "item", "item:", time.Minute, nil)

	require.NoError(t, s.Set("item:bad", "{not json"))

	_, ok := c.Get(context.Background(), "bad")
	assert.False(t, ok)
}

func TestEntityCache_Delete(t *testing.T) {
	store, s := newTestStore(t)
	c := NewEntityCache[item](store, "item", "item:", time.Minute, nil)
	ctx := context.Background()

	c.Put(ctx, "1", item{ID: "1"})
	c.Put(ctx, "2", item{ID: "2"})
	c.Delete(ctx, "1", "2")

	assert.False(t, s.Exists("item:1"))
	assert.False(t, s.Exists("item:2"))
}

func TestEntityCache_Increment(t *testing.T) {
	store, s := newTestStore(t)
	c := NewEntityCache[int64](store, "counter", "count:", 5*time.Minute, nil)
	ctx := context.Background()

	assert.Equal(t, int64(1), c.Increment(ctx, "p1"))
	assert.Equal(t, int64(2), c.Increment(ctx, "p1"))
	assert.Equal(t, 5*time.Minute, s.TTL("count:p1"))
}

func TestEntityCache_GetOrLoad(t *testing.T) {
	store, _ := newTestStore(t)
	c := NewEntityCache[item](store, "item", "item:", time.Minute, nil)
	ctx := context.Background()

	calls := 0
	load := func(context.Context) (item, error) {
		calls++
		return item{ID: "7", Name: "loaded"}, nil
	}

	first, err := c.GetOrLoad(ctx, "7", load)
	require.NoError(t, err)
	second, err := c.GetOrLoad(ctx, "7", load)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)
}

func TestEntityCache_GetOrLoad_LoaderError(t *testing.T) {
	store, s := newTestStore(t)
	c := NewEntityCache[item](store, "item", "item:", time.Minute, nil)
	boom := errors.New("boom")

	_, err := c.GetOrLoad(context.Background(), "x", func(context.Context) (item, error) {
		return item{}, boom
	})

	assert.ErrorIs(t, err, boom)
	assert.False(t, s.Exists("item:x"))
}

func TestEntityCache_StoreDownIsSwallowed(t *testing.T) {
	store, s := newTestStore(t)
	c := NewEntityCache[item](store, "item", "item:", time.Minute, nil)
	ctx := context.Background()
	s.Close()

	c.Put(ctx, "1", item{ID: "1"})
	_, ok := c.Get(ctx, "1")
	assert.False(t, ok)
	assert.Equal(t, int64(0), c.Increment(ctx, "1"))
	c.Delete(ctx, "1")

	v, err := c.GetOrLoad(ctx, "1", func(context.Context) (item, error) {
		return item{ID: "1", Name: "from store"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "from store", v.Name)
}
