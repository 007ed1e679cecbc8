package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestAsideCachesFetchResult(t *testing.T) {
	mr := miniredis.RunT(t)
	InitRedis(mr.Addr())
	defer Disable()

	ctx := context.Background()
	calls := 0

	var first payload
	err := Aside(ctx, "aside:key", &first, time.Minute, func() error {
		calls++
		first = payload{Name: "cached", Count: 7}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	var second payload
	err = Aside(ctx, "aside:key", &second, time.Minute, func() error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "second read must be served from cache")
	assert.Equal(t, first, second)
}

func TestAsideWithoutClientAlwaysFetches(t *testing.T) {
	Disable()

	ctx := context.Background()
	calls := 0
	var dest payload
	fetch := func() error {
		calls++
		dest = payload{Name: "direct"}
		return nil
	}

	require.NoError(t, Aside(ctx, "nocache:key", &dest, time.Minute, fetch))
	require.NoError(t, Aside(ctx, "nocache:key", &dest, time.Minute, fetch))
	assert.Equal(t, 2, calls)
}

func TestGetJSONMissingKey(t *testing.T) {
	mr := miniredis.RunT(t)
	InitRedis(mr.Addr())
	defer Disable()

	var dest payload
	found, err := GetJSON(context.Background(), "missing", &dest)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSetJSONRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	InitRedis(mr.Addr())
	defer Disable()

	ctx := context.Background()
	in := payload{Name: "round", Count: 3}
	require.NoError(t, SetJSON(ctx, "rt", in, time.Minute))

	var out payload
	found, err := GetJSON(ctx, "rt", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, in, out)
}

func TestInitRedisInvalidURL(t *testing.T) {
	InitRedis("redis://invalid:port:extra")
	assert.Nil(t, GetClient())
}
