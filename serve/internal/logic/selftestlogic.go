package logic

import (
	"context"
	"time"

	"github.com/panopteo/hnefatafl-engine/pkg/models/message"
	"github.com/panopteo/hnefatafl-engine/serve/internal/svc"
	"github.com/panopteo/hnefatafl-engine/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type SelfTestLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewSelfTestLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SelfTestLogic {
	return &SelfTestLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// SelfTest asks a worker to run its rule checks and reports the result. The
// transient uid exists only to give the reply a list to land on.
func (l *SelfTestLogic) SelfTest() (*types.SelfTestResponse, error) {
	uid := message.NewGameUid()
	request := message.MoveRequestMessage{
		TimeStamp: message.NewTimeStamp(time.Now()),
		GameUid:   uid,
		SelfTest:  true,
	}

	if err := SendMessageToRedisLists(l.svcCtx.RedisClient, l.svcCtx.PartitionPusher, request.String()); err != nil {
		return nil, err
	}

	reply, err := NewAIMoveLogic(l.ctx, l.svcCtx).awaitReply(uid, 0)
	if err != nil {
		return nil, err
	}

	resp := &types.SelfTestResponse{Error: reply.Error}
	if reply.SelfTest != nil {
		resp.Ok = reply.SelfTest.Ok
		resp.Failures = reply.SelfTest.Failures
	}
	if !resp.Ok {
		l.Errorf("worker self-test failed: failures=%v error=%q", resp.Failures, resp.Error)
	}
	return resp, nil
}
