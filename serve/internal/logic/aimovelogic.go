package logic

import (
	"context"
	"time"

	"github.com/panopteo/hnefatafl-engine/pkg/models/message"
	"github.com/panopteo/hnefatafl-engine/pkg/models/tafl"
	"github.com/panopteo/hnefatafl-engine/serve/internal/svc"
	"github.com/panopteo/hnefatafl-engine/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

const (
	AIMoveDeadline = 10 * time.Second
	replyPollGap   = 50 * time.Millisecond
)

type AIMoveLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewAIMoveLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AIMoveLogic {
	return &AIMoveLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// AIMove asks a worker for a move in the game's current position and applies
// the reply through the same path a player move takes.
func (l *AIMoveLogic) AIMove(uid message.GameUid) (*types.ApplyMoveResponse, error) {
	entry, ok := l.svcCtx.Games.Get(uid)
	if !ok {
		return nil, GameNotFoundErr
	}

	var request message.MoveRequestMessage
	err := entry.Do(func(g *tafl.Game) error {
		if g.Outcome().Over() {
			return tafl.ErrGameOver
		}
		request = message.MoveRequestMessage{
			TimeStamp: message.NewTimeStamp(time.Now()),
			GameUid:   uid,
			StepCount: g.StepCount(),
			Snapshot:  message.NewSnapshot(g.Board(), g.SideToMove()),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := SendMessageToRedisLists(l.svcCtx.RedisClient, l.svcCtx.PartitionPusher, request.String()); err != nil {
		return nil, err
	}

	reply, err := l.awaitReply(uid, request.StepCount)
	if err != nil {
		return nil, err
	}
	if reply.Error != "" {
		l.Errorf("worker error for game %s: %s", uid, reply.Error)
		return nil, WorkerReplyErr
	}

	return NewApplyMoveLogic(l.ctx, l.svcCtx).play(uid, entry, reply.Move)
}

// awaitReply polls the per-game reply list, skipping replies whose step count
// no longer matches the position we asked about.
func (l *AIMoveLogic) awaitReply(uid message.GameUid, step int) (message.MoveReplyMessage, error) {
	deadline := time.Now().Add(AIMoveDeadline)
	for time.Now().Before(deadline) {
		select {
		case <-l.ctx.Done():
			return message.MoveReplyMessage{}, l.ctx.Err()
		default:
		}

		str, err := l.svcCtx.RedisClient.Rpop(uid.ReplyListKey())
		if err != nil {
			time.Sleep(replyPollGap)
			continue
		}

		reply, err := message.NewMoveReplyMessage(str)
		if err != nil {
			l.Errorf("bad reply on %s: %v", uid.ReplyListKey(), err)
			continue
		}
		if reply.StepCount != step {
			continue
		}
		return reply, nil
	}
	return message.MoveReplyMessage{}, AIMoveTimeoutErr
}
