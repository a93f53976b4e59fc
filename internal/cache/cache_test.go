package cache_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"review-scheduler/internal/cache"
	"review-scheduler/internal/models"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const ttl = 10 * time.Minute

func TestKeys(t *testing.T) {
	require.Equal(t, "scheduler:reviewers:active:gen", cache.GenerationKey(cache.ReviewerListKey))
	require.Equal(t, "scheduler:reviewers:active:v3", cache.VersionedKey(cache.ReviewerListKey, 3))
}

func TestGetOrLoad(t *testing.T) {
	ctx := context.Background()
	key := "scheduler:test"
	genKey := cache.GenerationKey(key)
	v0 := cache.VersionedKey(key, 0)
	v2 := cache.VersionedKey(key, 2)

	want := []int{1, 2, 3}
	payload, err := json.Marshal(want)
	require.NoError(t, err)

	t.Run("hit skips loader", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		c := cache.New(rdb, ttl, zap.NewNop())

		mock.ExpectGet(genKey).SetVal("2")
		mock.ExpectGet(v2).SetVal(string(payload))

		got, err := cache.GetOrLoad(ctx, c, key, func(context.Context) ([]int, error) {
			t.Fatal("loader must not run on a hit")
			return nil, nil
		})
		require.NoError(t, err)
		require.Equal(t, want, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("miss loads and stores", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		c := cache.New(rdb, ttl, zap.NewNop())

		mock.ExpectGet(genKey).RedisNil()
		mock.ExpectGet(v0).RedisNil()
		mock.ExpectSet(v0, payload, ttl).SetVal("OK")

		calls := 0
		got, err := cache.GetOrLoad(ctx, c, key, func(context.Context) ([]int, error) {
			calls++
			return want, nil
		})
		require.NoError(t, err)
		require.Equal(t, want, got)
		require.Equal(t, 1, calls)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("loader error is returned and not cached", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		c := cache.New(rdb, ttl, zap.NewNop())

		mock.ExpectGet(genKey).RedisNil()
		mock.ExpectGet(v0).RedisNil()

		loadErr := errors.New("db down")
		_, err := cache.GetOrLoad(ctx, c, key, func(context.Context) ([]int, error) {
			return nil, loadErr
		})
		require.ErrorIs(t, err, loadErr)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("generation read failure bypasses the cache", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		c := cache.New(rdb, ttl, zap.NewNop())

		mock.ExpectGet(genKey).SetErr(errors.New("connection refused"))

		got, err := cache.GetOrLoad(ctx, c, key, func(context.Context) ([]int, error) {
			return want, nil
		})
		require.NoError(t, err)
		require.Equal(t, want, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis failure falls through to loader", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		c := cache.New(rdb, ttl, zap.NewNop())

		mock.ExpectGet(genKey).RedisNil()
		mock.ExpectGet(v0).SetErr(errors.New("connection refused"))
		mock.ExpectSet(v0, payload, ttl).SetErr(errors.New("connection refused"))

		got, err := cache.GetOrLoad(ctx, c, key, func(context.Context) ([]int, error) {
			return want, nil
		})
		require.NoError(t, err)
		require.Equal(t, want, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("corrupt entry is reloaded", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		c := cache.New(rdb, ttl, zap.NewNop())

		mock.ExpectGet(genKey).RedisNil()
		mock.ExpectGet(v0).SetVal("{not json")
		mock.ExpectSet(v0, payload, ttl).SetVal("OK")

		got, err := cache.GetOrLoad(ctx, c, key, func(context.Context) ([]int, error) {
			return want, nil
		})
		require.NoError(t, err)
		require.Equal(t, want, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

// A load that started before an invalidation must not be served afterwards.
func TestGetOrLoad_InvalidateDuringLoad(t *testing.T) {
	ctx := context.Background()
	rdb, mock := redismock.NewClientMock()
	mock.MatchExpectationsInOrder(true)
	c := cache.New(rdb, ttl, zap.NewNop())

	key := cache.ReviewerListKey
	genKey := cache.GenerationKey(key)

	stale := []*models.User{{ID: 2, Name: "Old", Role: models.RoleReviewer, IsActive: true}}
	fresh := []*models.User{{ID: 2, Name: "Old", Role: models.RoleReviewer, IsActive: false}}
	stalePayload, err := json.Marshal(stale)
	require.NoError(t, err)
	freshPayload, err := json.Marshal(fresh)
	require.NoError(t, err)

	mock.ExpectGet(genKey).RedisNil()
	mock.ExpectGet(cache.VersionedKey(key, 0)).RedisNil()
	mock.ExpectIncr(genKey).SetVal(1)
	mock.ExpectSet(cache.VersionedKey(key, 0), stalePayload, ttl).SetVal("OK")
	mock.ExpectGet(genKey).SetVal("1")
	mock.ExpectGet(cache.VersionedKey(key, 1)).RedisNil()
	mock.ExpectSet(cache.VersionedKey(key, 1), freshPayload, ttl).SetVal("OK")

	loading := make(chan struct{})
	release := make(chan struct{})
	done := make(chan []*models.User, 1)

	go func() {
		got, _ := c.Reviewers(ctx, func(context.Context) ([]*models.User, error) {
			close(loading)
			<-release
			return stale, nil
		})
		done <- got
	}()

	<-loading
	c.InvalidateReviewers(ctx)
	close(release)
	require.Equal(t, stale, <-done)

	got, err := c.Reviewers(ctx, func(context.Context) ([]*models.User, error) {
		return fresh, nil
	})
	require.NoError(t, err)
	require.Equal(t, fresh, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_Reviewers(t *testing.T) {
	ctx := context.Background()
	rdb, mock := redismock.NewClientMock()
	c := cache.New(rdb, ttl, zap.NewNop())

	reviewers := []*models.User{{ID: 2, Name: "Reviewer", Email: "r@example.com", Role: models.RoleReviewer, IsActive: true}}
	payload, err := json.Marshal(reviewers)
	require.NoError(t, err)

	genKey := cache.GenerationKey(cache.ReviewerListKey)
	v0 := cache.VersionedKey(cache.ReviewerListKey, 0)

	mock.ExpectGet(genKey).RedisNil()
	mock.ExpectGet(v0).RedisNil()
	mock.ExpectSet(v0, payload, ttl).SetVal("OK")
	mock.ExpectGet(genKey).RedisNil()
	mock.ExpectGet(v0).SetVal(string(payload))

	load := func(context.Context) ([]*models.User, error) { return reviewers, nil }

	first, err := c.Reviewers(ctx, load)
	require.NoError(t, err)
	require.Equal(t, reviewers, first)

	second, err := c.Reviewers(ctx, func(context.Context) ([]*models.User, error) {
		return nil, errors.New("should be served from cache")
	})
	require.NoError(t, err)
	require.Equal(t, reviewers, second)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_Invalidate(t *testing.T) {
	ctx := context.Background()

	t.Run("bumps generations", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		c := cache.New(rdb, ttl, zap.NewNop())

		mock.ExpectIncr(cache.GenerationKey("a")).SetVal(1)
		mock.ExpectIncr(cache.GenerationKey(cache.ReviewerListKey)).SetVal(4)

		c.Invalidate(ctx, "a")
		c.InvalidateReviewers(ctx)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("errors are swallowed", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		c := cache.New(rdb, ttl, zap.NewNop())

		mock.ExpectIncr(cache.GenerationKey(cache.ReviewerListKey)).SetErr(errors.New("connection refused"))

		require.NotPanics(t, func() { c.InvalidateReviewers(ctx) })
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCache_PassThrough(t *testing.T) {
	c := cache.New(nil, ttl, zap.NewNop())

	calls := 0
	for range 2 {
		_, err := c.Reviewers(context.Background(), func(context.Context) ([]*models.User, error) {
			calls++
			return nil, nil
		})
		require.NoError(t, err)
	}
	require.Equal(t, 2, calls)

	c.InvalidateReviewers(context.Background())

	var nilCache *cache.Cache
	_, err := cache.GetOrLoad(context.Background(), nilCache, "k", func(context.Context) (int, error) { return 1, nil })
	require.NoError(t, err)
}
