package main

import (
	"time"

	"github.com/panopteo/hnefatafl-engine/pkg/models/message"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

// GetFreePartition blocks until a request partition without an owner has
// pending work, claims it, and returns it. The owner key expires on its own
// if the worker dies mid-claim.
func GetFreePartition(RedisClient *redis.Redis) (partition message.RedisPartition, err error) {
	for {
		for _, p := range message.RedisPartitions {
			owner, err := RedisClient.Get(p.OwnerKey())
			if err != nil {
				return -1, err
			}

			length, err := RedisClient.Llen(p.ListKey())
			if err != nil {
				return -1, err
			}

			if owner == "" && length > 0 {
				if err = RedisClient.Setex(p.OwnerKey(), string(message.NewTimeStamp(time.Now())), 600); err != nil {
					return -1, err
				}
				return p, nil
			}

			time.Sleep(time.Second)
		}
	}
}
