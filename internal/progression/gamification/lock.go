package gamification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const lockKeyPrefix = "progression-reward-lock||"

// ErrProfileBusy is returned when another reward update for the same user
// holds the lock for longer than the wait budget.
var ErrProfileBusy = errors.New("gamification profile is busy")

// releases the lock only if it still holds our token, so an expired lock
// taken over by someone else is left alone
const unlockScript = `if redis.call("get", KEYS[1]) == ARGV[1] then return redis.call("del", KEYS[1]) else return 0 end`

// RedisLocker serializes reward processing per user across service instances.
type RedisLocker struct {
	rdb redis.Cmdable
	// TTL bounds how long a crashed holder can block the user
	TTL           time.Duration
	Wait          time.Duration
	RetryInterval time.Duration
	TokenFunc     func() string
}

func NewRedisLocker(rdb redis.Cmdable, ttl, wait time.Duration) *RedisLocker {
	return &RedisLocker{
		rdb:           rdb,
		TTL:           ttl,
		Wait:          wait,
		RetryInterval: 50 * time.Millisecond,
		TokenFunc:     uuid.NewString,
	}
}

// Lock blocks until the user's lock is acquired, the wait budget runs out
// (ErrProfileBusy) or ctx is done. The returned func releases the lock.
func (l *RedisLocker) Lock(ctx context.Context, userID uuid.UUID) (func(), error) {
	key := lockKeyPrefix + userID.String()
	token := l.TokenFunc()

	deadline := time.NewTimer(l.Wait)
	defer deadline.Stop()

	for {
		acquired, err := l.rdb.SetNX(ctx, key, token, l.TTL).Result()
		if err != nil {
			return nil, fmt.Errorf("acquire lock: %w", err)
		}
		if acquired {
			break
		}

		retry := time.NewTimer(l.RetryInterval)
		select {
		case <-ctx.Done():
			retry.Stop()
			return nil, ctx.Err()
		case <-deadline.C:
			retry.Stop()
			return nil, ErrProfileBusy
		case <-retry.C:
		}
	}

	unlock := func() {
		// release even if the caller's ctx is already cancelled
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
		defer cancel()
		if err := l.rdb.Eval(releaseCtx, unlockScript, []string{key}, token).Err(); err != nil {
			log.Errorf("release reward lock for user %s: %s", userID, err)
		}
	}
	return unlock, nil
}

// NoopLocker does not lock at all; the optimistic version check
// on the profile row still prevents lost updates.
type NoopLocker struct{}

func (NoopLocker) Lock(context.Context, uuid.UUID) (func(), error) {
	return func() {}, nil
}
