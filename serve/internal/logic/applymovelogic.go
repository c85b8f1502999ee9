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

type ApplyMoveLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewApplyMoveLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ApplyMoveLogic {
	return &ApplyMoveLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *ApplyMoveLogic) ApplyMove(uid message.GameUid, req *types.ApplyMoveRequest) (*types.ApplyMoveResponse, error) {
	entry, ok := l.svcCtx.Games.Get(uid)
	if !ok {
		return nil, GameNotFoundErr
	}
	return l.play(uid, entry, tafl.NewMove(tafl.Cell(req.From), tafl.Cell(req.To)))
}

// play pushes one move through a game and mirrors the result to mongo and
// the redis step key. AI replies reuse it, so both kinds of move leave the
// same trail.
func (l *ApplyMoveLogic) play(uid message.GameUid, entry *svc.GameEntry, m tafl.Move) (*types.ApplyMoveResponse, error) {
	var (
		resp    types.ApplyMoveResponse
		applied tafl.AppliedMove
		step    int
		outcome tafl.Outcome
	)

	err := entry.Do(func(g *tafl.Game) error {
		if err := g.ApplyMove(m); err != nil {
			return err
		}
		applied = g.Moves()[g.StepCount()-1]
		step = g.StepCount()
		outcome = g.Outcome()
		if !outcome.Over() {
			resp.ToMove = g.SideToMove().String()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp.Move = types.MoveView{From: int(m.From()), To: int(m.To())}
	resp.Outcome = outcome.String()
	for _, cap := range applied.Captures {
		resp.Captures = append(resp.Captures, types.CaptureView{
			Cell:  int(cap.Cell),
			Piece: cap.Piece.String(),
			Mode:  cap.Mode.String(),
		})
	}

	if err := RecordMove(l.ctx, l.svcCtx, uid, step, applied); err != nil {
		return nil, err
	}

	if outcome.Over() {
		if err := RecordGameEnd(l.ctx, l.svcCtx, uid, outcome); err != nil {
			return nil, err
		}
		if _, err := l.svcCtx.RedisClient.Del(uid.StepKey()); err != nil {
			return nil, err
		}
		l.Infof("game %s over: %s", uid, outcome)
		return &resp, nil
	}

	if err := l.svcCtx.RedisClient.Setex(uid.StepKey(), strconv.Itoa(step), 120); err != nil {
		return nil, err
	}

	return &resp, nil
}
