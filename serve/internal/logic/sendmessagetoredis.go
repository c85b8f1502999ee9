package logic

import (
	"github.com/panopteo/hnefatafl-engine/pkg/models/message"
	"github.com/panopteo/hnefatafl-engine/pkg/models/pusher"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

// GetPartitionMessageList spreads messages over the request partitions,
// always feeding the currently shortest list.
func GetPartitionMessageList(RedisClient *redis.Redis, messages []string) (partitionMessageList map[message.RedisPartition][]string, err error) {
	partitionListLen := make(map[message.RedisPartition]int)
	for _, p := range message.RedisPartitions {
		partitionListLen[p], err = RedisClient.Llen(p.ListKey())
		if err != nil {
			return nil, err
		}
	}

	partitionMessageList = make(map[message.RedisPartition][]string)
	for i := 0; i < len(messages); i++ {
		minPartition := message.RedisPartition(-1)
		minLen := 0
		for p, length := range partitionListLen {
			if minPartition == -1 || length < minLen {
				minLen = length
				minPartition = p
			}
		}

		partitionListLen[minPartition]++
		partitionMessageList[minPartition] = append(partitionMessageList[minPartition], messages[i])
	}

	return partitionMessageList, nil
}

// SendMessageToRedisLists queues move requests for the workers through the
// per-partition pushers.
func SendMessageToRedisLists(RedisClient *redis.Redis, PartitionPusher map[message.RedisPartition]*pusher.Pusher[string], messages ...string) error {
	partitionMessageList, err := GetPartitionMessageList(RedisClient, messages)
	if err != nil {
		return err
	}

	for partition, batch := range partitionMessageList {
		PartitionPusher[partition].AddMessages(batch...)
	}

	return nil
}
