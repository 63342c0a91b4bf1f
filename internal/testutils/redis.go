package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/grimoire-api/internal/redis"
)

// CreateTestRedisClient creates an in-memory Redis client for testing.
// The returned miniredis handle lets tests fast-forward TTLs or inject failures.
func CreateTestRedisClient(t *testing.T) (redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	client, err := redis.Connect([]string{mr.Addr()}, "", nil)
	require.NoError(t, err, "failed to create redis client")
	t.Cleanup(func() { _ = client.Close() })

	return client, mr
}

// CreateTestRedisClientWithData creates an in-memory Redis client after letting the test seed raw keys
func CreateTestRedisClientWithData(t *testing.T, setupFunc func(mr *miniredis.Miniredis)) (redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	if setupFunc != nil {
		setupFunc(mr)
	}

	client, err := redis.Connect([]string{mr.Addr()}, "", nil)
	require.NoError(t, err, "failed to create redis client")
	t.Cleanup(func() { _ = client.Close() })

	return client, mr
}
