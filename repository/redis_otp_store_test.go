package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/trustkeyper/Backend/pkg/logger"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupRedisStore connects to the redis named by TEST_REDIS_ADDR, skipping
// the test when no test instance is available
func setupRedisStore(t *testing.T) *RedisOTPStore {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set; skipping redis store tests")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("redis at %s not reachable: %v", addr, err)
	}
	t.Cleanup(func() { client.Close() })

	log, err := logger.New("debug", "development")
	require.NoError(t, err)

	return NewRedisOTPStore(client, log)
}

func TestRedisOTPStore_IssueAndVerify(t *testing.T) {
	store := setupRedisStore(t)

	require.NoError(t, store.Issue("redis-a@x.com", "1234", time.Now().Add(5*time.Minute)))

	ok, err := store.Verify("redis-a@x.com", "1234")
	require.NoError(t, err)
	assert.True(t, ok)

	// Consumed on success
	ok, err = store.Verify("redis-a@x.com", "1234")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisOTPStore_MismatchAndRevoke(t *testing.T) {
	store := setupRedisStore(t)

	require.NoError(t, store.Issue("redis-b@x.com", "1234", time.Now().Add(5*time.Minute)))

	ok, err := store.Verify("redis-b@x.com", "0000")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Revoke("redis-b@x.com"))

	ok, err = store.Verify("redis-b@x.com", "1234")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisOTPStore_IssueRejectsPastExpiry(t *testing.T) {
	store := setupRedisStore(t)

	err := store.Issue("redis-c@x.com", "1234", time.Now().Add(-time.Second))
	assert.Error(t, err)
}
