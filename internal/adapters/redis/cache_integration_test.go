//go:build integration

package redisad_test

import (
	"context"
	"testing"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	goredis "github.com/redis/go-redis/v9"

	redisad "review_radar/internal/adapters/redis"
	"review_radar/internal/domain"
)

// Exercises the adapter against a real redis container instead of miniredis.
func TestCache_AgainstRealRedis(t *testing.T) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7-alpine",
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run redis: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	addr := "127.0.0.1:" + resource.GetPort("6379/tcp")
	if err := pool.Retry(func() error {
		return goredis.NewClient(&goredis.Options{Addr: addr}).Ping(context.Background()).Err()
	}); err != nil {
		t.Fatalf("connect redis: %v", err)
	}

	c := redisad.New(addr, "", 0)
	ctx := context.Background()

	in := []domain.RankedReview{{
		Review:    domain.Review{ID: "r-1", Body: "fine", Location: "Tucson, Arizona"},
		Sentiment: domain.Sentiment{Neu: 1},
	}}
	if err := c.Set(ctx, "k", in, 60); err != nil {
		t.Fatalf("set: %v", err)
	}
	var out []domain.RankedReview
	ok, err := c.Get(ctx, "k", &out)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if len(out) != 1 || out[0].ID != "r-1" {
		t.Fatalf("mismatch: %+v", out)
	}
}
