package message

import "fmt"

// partitionCount fixes how many request lists the move workers share.
const partitionCount = 5

// RedisPartition identifies one worker request queue: a redis list of
// MoveRequestMessage strings with an owner key marking the worker currently
// draining it.
type RedisPartition int

func (r RedisPartition) ListKey() string {
	return fmt.Sprintf("Partition-%d", r)
}

func (r RedisPartition) OwnerKey() string {
	return fmt.Sprintf("Partition %d Owner", r)
}

func (r RedisPartition) LockName() string {
	return fmt.Sprintf("Partition-%d-Lock", r)
}

var RedisPartitions []RedisPartition

func init() {
	for i := 0; i < partitionCount; i++ {
		RedisPartitions = append(RedisPartitions, RedisPartition(i+1))
	}
}
