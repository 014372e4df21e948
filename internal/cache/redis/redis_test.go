package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/JMURv/attendance-guard/internal/cache"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) *Redis {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR is not set")
	}

	cli := redis.NewClient(&redis.Options{Addr: addr, DB: 1})
	require.NoError(t, cli.FlushDB(context.Background()).Err())
	t.Cleanup(func() { _ = cli.Close() })
	return NewWithClient(cli)
}

func TestRedis_SetGetDelete(t *testing.T) {
	r := newTestRedis(t)
	ctx := context.Background()

	type payload struct {
		Name string `json:"name"`
	}

	r.Set(ctx, time.Minute, "location:1", []byte(`{"name":"HQ"}`))

	res := &payload{}
	require.NoError(t, r.GetToStruct(ctx, "location:1", res))
	assert.Equal(t, "HQ", res.Name)

	r.Delete(ctx, "location:1")
	assert.ErrorIs(t, r.GetToStruct(ctx, "location:1", res), cache.ErrNotFoundInCache)
}

func TestRedis_InvalidateKeysByPattern(t *testing.T) {
	r := newTestRedis(t)
	ctx := context.Background()

	r.Set(ctx, time.Minute, "locations-list:a", []byte(`[]`))
	r.Set(ctx, time.Minute, "locations-list:b", []byte(`[]`))
	r.Set(ctx, time.Minute, "location:keep", []byte(`{}`))

	r.InvalidateKeysByPattern(ctx, "locations-list:*")

	var dst []any
	assert.ErrorIs(t, r.GetToStruct(ctx, "locations-list:a", &dst), cache.ErrNotFoundInCache)
	assert.ErrorIs(t, r.GetToStruct(ctx, "locations-list:b", &dst), cache.ErrNotFoundInCache)

	var keep map[string]any
	assert.NoError(t, r.GetToStruct(ctx, "location:keep", &keep))
}
