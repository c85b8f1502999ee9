package logic

import (
	"context"
	"strconv"

	"github.com/panopteo/hnefatafl-engine/pkg/models/message"
	"github.com/panopteo/hnefatafl-engine/pkg/models/tafl"
	"github.com/panopteo/hnefatafl-engine/serve/internal/svc"
	"github.com/panopteo/hnefatafl-engine/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type NewGameLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewNewGameLogic(ctx context.Context, svcCtx *svc.ServiceContext) *NewGameLogic {
	return &NewGameLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *NewGameLogic) NewGame(req *types.NewGameRequest) (*types.NewGameResponse, error) {
	uid, entry := l.svcCtx.Games.New()

	resp := &types.NewGameResponse{GameUid: string(uid)}
	_ = entry.Do(func(g *tafl.Game) error {
		resp.Board = message.NewSnapshot(g.Board(), g.SideToMove())
		return nil
	})

	if err := RecordGameStart(l.ctx, l.svcCtx, uid, req.AttackerAI, req.DefenderAI); err != nil {
		return nil, err
	}

	if err := l.svcCtx.RedisClient.Setex(uid.StepKey(), strconv.Itoa(0), 120); err != nil {
		return nil, err
	}

	l.Infof("new game %s (attackerAI=%v defenderAI=%v)", uid, req.AttackerAI, req.DefenderAI)
	return resp, nil
}
