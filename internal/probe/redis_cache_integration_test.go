package probe

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestRedis starts a Redis container and returns its address.
func setupTestRedis(t *testing.T) string {
	ctx := context.Background()

	container, err := tcredis.Run(ctx,
		"redis:7-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Ready to accept connections").WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start redis container: %s", err)
	}

	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Fatalf("failed to terminate redis container: %s", err)
		}
	})

	connStr, err := container.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("failed to get connection string: %s", err)
	}
	// ConnectionString returns redis://host:port; RedisCache wants bare host:port.
	return connStr[len("redis://"):]
}

func TestRedisCacheAgainstRealContainer(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	addr := setupTestRedis(t)
	cache := NewRedisCache(addr, "catalog-builder-test", time.Hour)
	defer cache.Close()

	ctx := context.Background()
	_, ok := cache.Get(ctx, "https://example.com/missing.zip")
	require.False(t, ok)

	props := PropertyMap{"id": "foo.bar", "version": "1.0", "versionCode": "1"}
	cache.Set(ctx, "https://example.com/present.zip", props)

	got, ok := cache.Get(ctx, "https://example.com/present.zip")
	require.True(t, ok)
	require.Equal(t, props, got)
}
