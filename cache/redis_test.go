package cache

import (
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)

	host, port, found := strings.Cut(mr.Addr(), ":")
	require.True(t, found)
	t.Setenv("REDIS_HOST", host)
	t.Setenv("REDIS_PORT", port)
	t.Setenv("REDIS_PASSWORD", "")

	require.NoError(t, InitRedis(zap.NewNop()))
	t.Cleanup(func() {
		_ = Close()
		Client = nil
	})
	return mr
}

func TestSetGetRoundTrip(t *testing.T) {
	testRedis(t)

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, Set("k1", payload{Name: "water", Count: 3}, time.Minute))

	var got payload
	require.NoError(t, Get("k1", &got))
	assert.Equal(t, "water", got.Name)
	assert.Equal(t, 3, got.Count)
}

func TestGetMiss(t *testing.T) {
	testRedis(t)

	var got string
	err := Get("missing", &got)
	assert.Error(t, err)
}

func TestDeletePattern(t *testing.T) {
	testRedis(t)

	require.NoError(t, Set("cache:42:/api/recipes", "a", time.Minute))
	require.NoError(t, Set("cache:42:/api/plans", "b", time.Minute))
	require.NoError(t, Set("cache:7:/api/recipes", "c", time.Minute))

	require.NoError(t, DeletePattern("cache:42:*"))

	var got string
	assert.Error(t, Get("cache:42:/api/recipes", &got))
	assert.Error(t, Get("cache:42:/api/plans", &got))
	assert.NoError(t, Get("cache:7:/api/recipes", &got))
}

func TestIncrementCounterSetsTTLOnce(t *testing.T) {
	mr := testRedis(t)

	v, err := IncrementCounter("rate:42", time.Minute)
	require.NoError(t, err)
	assert.EqualValues(t, 1, v)

	v, err = IncrementCounter("rate:42", time.Minute)
	require.NoError(t, err)
	assert.EqualValues(t, 2, v)

	assert.Greater(t, mr.TTL("rate:42"), time.Duration(0))
}

func TestInitRedisFailsWhenUnreachable(t *testing.T) {
	t.Setenv("REDIS_HOST", "127.0.0.1")
	t.Setenv("REDIS_PORT", "1") // nothing listens here
	t.Cleanup(func() { Client = nil })

	assert.Error(t, InitRedis(zap.NewNop()))
}
