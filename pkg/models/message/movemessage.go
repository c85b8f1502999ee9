package message

import (
	"github.com/bytedance/sonic"
	"github.com/panopteo/hnefatafl-engine/pkg/models/tafl"
)

// MoveRequestMessage is what the host pushes onto a worker partition: either
// a position to answer with a move, or a self-test marker used as a startup
// health check.
type MoveRequestMessage struct {
	TimeStamp
	GameUid
	StepCount int
	Snapshot  Snapshot `json:",omitempty"`
	SelfTest  bool     `json:",omitempty"`
}

func NewMoveRequestMessage(str string) (m MoveRequestMessage, err error) {
	err = sonic.UnmarshalString(str, &m)
	return
}

func (m MoveRequestMessage) String() string {
	str, _ := sonic.MarshalString(m)
	return str
}

// SelfTestResult reports the worker's internal rule checks. Ok is true only
// when every check passed; Failures lists the names of the ones that did not.
type SelfTestResult struct {
	Ok       bool
	Failures []string `json:",omitempty"`
}

// MoveReplyMessage is the worker's answer, pushed onto the per-game reply
// list. Exactly one of Move, SelfTest, or Error is meaningful: a chosen move,
// a self-test report, or a failure that must not cross the boundary as a
// panic.
type MoveReplyMessage struct {
	TimeStamp
	GameUid
	StepCount int
	Move      tafl.Move       `json:",omitempty"`
	SelfTest  *SelfTestResult `json:",omitempty"`
	Error     string          `json:",omitempty"`
}

func NewMoveReplyMessage(str string) (m MoveReplyMessage, err error) {
	err = sonic.UnmarshalString(str, &m)
	return
}

func (m MoveReplyMessage) String() string {
	str, _ := sonic.MarshalString(m)
	return str
}
