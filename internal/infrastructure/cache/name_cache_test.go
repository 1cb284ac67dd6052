package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	values map[string]string
	ttls   map[string]time.Duration
	err    error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{
		values: map[string]string{},
		ttls:   map[string]time.Duration{},
	}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}

	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}

	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}

	f.values[key] = value.(string) //nolint:forcetypeassert
	f.ttls[key] = expiration

	return redis.NewStatusResult("OK", nil)
}

func TestNameCache(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	client := newFakeRedis()
	c := NewNameCache(client, time.Minute)

	_, ok, err := c.Get(ctx, "hosp-1")
	rq.NoError(err)
	rq.False(ok)

	rq.NoError(c.Set(ctx, "hosp-1", "City Hospital"))
	rq.Equal(time.Minute, client.ttls[keyPrefix+"hosp-1"])

	name, ok, err := c.Get(ctx, "hosp-1")
	rq.NoError(err)
	rq.True(ok)
	rq.Equal("City Hospital", name)
}

func TestNameCacheErrors(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	client := newFakeRedis()
	client.err = errors.New("connection refused")

	c := NewNameCache(client, time.Minute)

	_, ok, err := c.Get(ctx, "hosp-1")
	rq.ErrorIs(err, client.err)
	rq.False(ok)

	rq.ErrorIs(c.Set(ctx, "hosp-1", "City Hospital"), client.err)
}
