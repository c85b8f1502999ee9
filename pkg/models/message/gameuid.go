package message

import "github.com/google/uuid"

type GameUid string

func NewGameUid() GameUid {
	return GameUid(uuid.New().String())
}

// ReplyListKey is the redis list the worker pushes this game's replies onto.
func (g GameUid) ReplyListKey() string {
	return "Reply-" + string(g)
}

// StepKey is the redis key tracking the game's current step count, used by
// workers to drop stale requests.
func (g GameUid) StepKey() string {
	return "Step-" + string(g)
}
