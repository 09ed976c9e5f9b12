package testing

import (
	"context"
	"net"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
)

// IntegrationEnabled reports whether docker backed tests should run.
func IntegrationEnabled() bool {
	return os.Getenv("FITSTATS_INTEGRATION") == "1"
}

// RunRedis starts a throwaway redis container and returns a client connected to it.
// The container and the client are cleaned up when the test finishes.
func RunRedis(t *testing.T) (context.Context, *redis.Client) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	t.Cleanup(cancel)

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)
	require.NoError(t, pool.Client.Ping())
	pool.MaxWait = 30 * time.Second

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "6.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("redis teardown: %s", err)
		}
	})

	addr := net.JoinHostPort("localhost", resource.GetPort("6379/tcp"))
	t.Logf("using redis at: [%s]", addr)

	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0, // use default DB
	})
	t.Cleanup(func() {
		_ = rdb.Close()
	})

	err = pool.Retry(func() error {
		return rdb.Ping(ctx).Err()
	})
	require.NoError(t, err)

	return ctx, rdb
}
