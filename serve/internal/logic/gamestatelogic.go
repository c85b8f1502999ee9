package logic

import (
	"context"

	"github.com/panopteo/hnefatafl-engine/pkg/models/message"
	"github.com/panopteo/hnefatafl-engine/pkg/models/tafl"
	"github.com/panopteo/hnefatafl-engine/serve/internal/svc"
	"github.com/panopteo/hnefatafl-engine/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type GameStateLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewGameStateLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GameStateLogic {
	return &GameStateLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// GameState returns the position, outcome, and the legal-move set the UI
// needs for destination highlighting.
func (l *GameStateLogic) GameState(uid message.GameUid) (*types.GameStateResponse, error) {
	entry, ok := l.svcCtx.Games.Get(uid)
	if !ok {
		return nil, GameNotFoundErr
	}

	resp := &types.GameStateResponse{GameUid: string(uid)}
	_ = entry.Do(func(g *tafl.Game) error {
		resp.Board = message.NewSnapshot(g.Board(), g.SideToMove())
		resp.Outcome = g.Outcome().String()
		resp.StepCount = g.StepCount()
		for _, m := range g.LegalMoves() {
			resp.LegalMoves = append(resp.LegalMoves, types.MoveView{From: int(m.From()), To: int(m.To())})
		}
		return nil
	})

	return resp, nil
}
