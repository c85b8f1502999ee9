package logic

import "errors"

var (
	GameNotFoundErr  = errors.New("unknown game uid")
	AIMoveTimeoutErr = errors.New("no worker reply before the deadline")
	WorkerReplyErr   = errors.New("worker reported an error")
)
