package tests

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"eatery-reviews/eatery-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLocalLocker_SerializesSameEatery(t *testing.T) {
	locker := storage.NewLocalLocker()

	var inside, maxInside int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := locker.Lock(context.Background(), 1)
			if !assert.NoError(t, err) {
				return
			}
			n := atomic.AddInt32(&inside, 1)
			for {
				m := atomic.LoadInt32(&maxInside)
				if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
			unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside)
	assert.Equal(t, 0, locker.Len())
}

func TestLocalLocker_DifferentEateriesDoNotBlock(t *testing.T) {
	locker := storage.NewLocalLocker()

	unlockA, err := locker.Lock(context.Background(), 1)
	require.NoError(t, err)
	defer unlockA()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	unlockB, err := locker.Lock(ctx, 2)
	require.NoError(t, err)
	unlockB()
}

func TestLocalLocker_ContextCancelled(t *testing.T) {
	locker := storage.NewLocalLocker()

	unlock, err := locker.Lock(context.Background(), 1)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = locker.Lock(ctx, 1)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	unlock()
	unlock()
	assert.Equal(t, 0, locker.Len())
}

func setupRedisLocker(t *testing.T) (*storage.RedisLocker, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return storage.NewRedisLocker(client, 5*time.Second, zap.NewNop()), mr
}

func TestRedisLocker_AcquireAndRelease(t *testing.T) {
	locker, mr := setupRedisLocker(t)

	unlock, err := locker.Lock(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, mr.Exists("lock:eatery:7"))
	assert.Greater(t, mr.TTL("lock:eatery:7"), time.Duration(0))

	unlock()
	assert.False(t, mr.Exists("lock:eatery:7"))
}

func TestRedisLocker_WaitsForHolder(t *testing.T) {
	locker, _ := setupRedisLocker(t)

	unlock, err := locker.Lock(context.Background(), 7)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = locker.Lock(ctx, 7)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	acquired := make(chan struct{})
	go func() {
		second, err := locker.Lock(context.Background(), 7)
		if err == nil {
			second()
		}
		close(acquired)
	}()
	unlock()

	select {
	case <-acquired:
	case <-time.After(2 * time.Second):
		t.Fatal("second holder never acquired the lock")
	}
}

func TestRedisLocker_ReleaseLeavesForeignLockAlone(t *testing.T) {
	locker, mr := setupRedisLocker(t)

	unlock, err := locker.Lock(context.Background(), 7)
	require.NoError(t, err)

	// Simulate expiry followed by another replica taking the lock.
	mr.Del("lock:eatery:7")
	require.NoError(t, mr.Set("lock:eatery:7", "someone-else"))

	unlock()
	got, err := mr.Get("lock:eatery:7")
	require.NoError(t, err)
	assert.Equal(t, "someone-else", got)
}
