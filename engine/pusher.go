package main

import (
	"sync"
	"time"

	"github.com/panopteo/hnefatafl-engine/pkg/models/message"
	"github.com/panopteo/hnefatafl-engine/pkg/models/model"
	"github.com/panopteo/hnefatafl-engine/pkg/models/pusher"
)

// Reply pairs an outgoing reply with the rollback run when delivery fails
// for good, so the originating request is not lost.
type Reply struct {
	message.MoveReplyMessage
	RollBackFunc func()
}

var (
	replyLockMu  sync.Mutex
	replyLockMap = make(map[string]*model.RedisLock)
)

// replyLock returns the lock guarding one game's reply list, creating it on
// first use. Entries evict two minutes after creation; the eviction timer and
// the push loop touch the map from different goroutines, so every access goes
// through the mutex.
func replyLock(listKey string) *model.RedisLock {
	replyLockMu.Lock()
	defer replyLockMu.Unlock()

	if l, ok := replyLockMap[listKey]; ok {
		return l
	}

	l := model.NewLock(RedisClient, listKey+"-Lock")
	replyLockMap[listKey] = l
	time.AfterFunc(time.Minute*2, func() {
		replyLockMu.Lock()
		defer replyLockMu.Unlock()
		delete(replyLockMap, listKey)
	})
	return l
}

var Pusher = pusher.NewPusher(pusher.WithPushInterval[Reply](time.Second), pusher.WithPushLogic(func(replies ...Reply) error {
	for _, reply := range replies {
		listKey := reply.GameUid.ReplyListKey()

		err := replyLock(listKey).Do(func() error {
			if _, err := RedisClient.Lpush(listKey, reply.MoveReplyMessage.String()); err != nil {
				return err
			}

			if err := RedisClient.Expire(listKey, ReplyExpireTime); err != nil {
				reply.RollBackFunc()
				return err
			}

			return nil
		})

		if err != nil {
			return err
		}
	}

	return nil
}))
