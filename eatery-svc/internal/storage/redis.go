package storage

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// releaseScript deletes the lock key only while it still carries our token,
// so an expired lock taken over by another replica is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker serializes eatery mutations across service replicas using
// SET NX PX lock keys.
type RedisLocker struct {
	Client        *redis.Client
	TTL           time.Duration
	RetryInterval time.Duration
	Log           *zap.Logger
}

func NewRedisLocker(client *redis.Client, ttl time.Duration, log *zap.Logger) *RedisLocker {
	return &RedisLocker{
		Client:        client,
		TTL:           ttl,
		RetryInterval: 10 * time.Millisecond,
		Log:           log,
	}
}

func (l *RedisLocker) LockKey(eateryID int) string {
	return "lock:eatery:" + strconv.Itoa(eateryID)
}

func (l *RedisLocker) Lock(ctx context.Context, eateryID int) (func(), error) {
	key := l.LockKey(eateryID)
	token := uuid.NewString()

	wait := l.RetryInterval
	for {
		ok, err := l.Client.SetNX(ctx, key, token, l.TTL).Result()
		if err != nil {
			return nil, fmt.Errorf("acquire %s: %w", key, err)
		}
		if ok {
			break
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
		if wait < 20*l.RetryInterval {
			wait *= 2
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			releaseCtx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			if err := releaseScript.Run(releaseCtx, l.Client, []string{key}, token).Err(); err != nil {
				l.Log.Warn("failed to release eatery lock", zap.String("key", key), zap.Error(err))
			}
		})
	}, nil
}
