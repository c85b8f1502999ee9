package svc

import (
	"fmt"
	"os"

	"github.com/panopteo/hnefatafl-engine/pkg/models/message"
	"github.com/panopteo/hnefatafl-engine/pkg/models/model"
	"github.com/panopteo/hnefatafl-engine/pkg/models/pusher"
	"github.com/panopteo/hnefatafl-engine/serve/internal/config"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

type ServiceContext struct {
	Config          config.Config
	RedisClient     *redis.Redis
	PartitionPusher map[message.RedisPartition]*pusher.Pusher[string]
	Games           *GameSet
}

func NewServiceContext(c config.Config) *ServiceContext {
	if c.Redis.Pass == "" {
		c.Redis.Pass = os.Getenv("REDIS_PASSWORD")
	}

	if c.MongoConf.PassWord == "" {
		c.MongoConf.PassWord = os.Getenv("MONGO_PASSWORD")
	}

	c.MongoConf.Url = fmt.Sprintf(c.MongoConf.Url, c.MongoConf.PassWord)

	partitionListPushLock := make(map[message.RedisPartition]*model.RedisLock)

	svcCtx := &ServiceContext{
		Config:          c,
		RedisClient:     redis.MustNewRedis(c.Redis),
		PartitionPusher: make(map[message.RedisPartition]*pusher.Pusher[string]),
		Games:           NewGameSet(),
	}

	for _, partition := range message.RedisPartitions {
		partition := partition
		partitionListPushLock[partition] = model.NewLock(svcCtx.RedisClient, partition.LockName())

		svcCtx.PartitionPusher[partition] = pusher.NewPusher(pusher.WithPushLogic(func(pushMessages ...string) error {
			if len(pushMessages) == 0 {
				return nil
			}

			return partitionListPushLock[partition].Do(func() error {
				var messages []any
				for _, m := range pushMessages {
					messages = append(messages, m)
				}

				if _, err := svcCtx.RedisClient.Lpush(partition.ListKey(), messages...); err != nil {
					return err
				}

				length, err := svcCtx.RedisClient.Llen(partition.ListKey())
				if err != nil {
					return err
				}

				return svcCtx.RedisClient.Expire(partition.ListKey(), 120*length)
			})
		}))

		svcCtx.PartitionPusher[partition].Start()
	}

	return svcCtx
}
