package model

import (
	"time"

	"github.com/zeromicro/go-zero/core/stores/redis"
)

// RedisLock serializes writers on a shared redis list so the host's
// partition pushers and the workers never interleave partial batches.
type RedisLock struct {
	*redis.RedisLock
}

func NewLock(rds *redis.Redis, lockName string) *RedisLock {
	return &RedisLock{
		RedisLock: redis.NewRedisLock(rds, lockName),
	}
}

// Do runs f while holding the lock. The lock is released whether or not f
// fails, so a bad push can never pin a list until the TTL runs out.
func (l *RedisLock) Do(f func() error) (err error) {
	if err = l.Lock(); err != nil {
		return err
	}

	defer func() {
		if unlockErr := l.UnLock(); err == nil {
			err = unlockErr
		}
	}()

	return f()
}

func (l *RedisLock) Lock() error {
	acquired, err := l.Acquire()
	if err != nil {
		return err
	}

	if !acquired {
		time.Sleep(time.Second / 5)
		return l.Lock()
	}

	return nil
}

func (l *RedisLock) UnLock() error {
	released, err := l.Release()
	if err != nil {
		return err
	}

	if !released {
		time.Sleep(time.Second / 5)
		return l.UnLock()
	}

	return nil
}
