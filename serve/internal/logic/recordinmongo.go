package logic

import (
	"context"

	"github.com/panopteo/hnefatafl-engine/pkg/models/message"
	"github.com/panopteo/hnefatafl-engine/pkg/models/message/moverecord"
	"github.com/panopteo/hnefatafl-engine/pkg/models/tafl"
	"github.com/panopteo/hnefatafl-engine/serve/internal/svc"
)

// Each game keeps its transcript in its own collection named by the uid,
// with start, per-move, and end records interleaved in insertion order.

func RecordGameStart(ctx context.Context, svcCtx *svc.ServiceContext, uid message.GameUid, attackerAI, defenderAI bool) error {
	record := &moverecord.GameStartRecord{
		GameUid:    uid,
		AttackerAI: attackerAI,
		DefenderAI: defenderAI,
	}

	conn := moverecord.NewGameStartRecordModel(svcCtx.Config.MongoConf.Url, svcCtx.Config.MongoConf.DataBaseName, string(uid))
	return conn.Insert(ctx, record)
}

func RecordMove(ctx context.Context, svcCtx *svc.ServiceContext, uid message.GameUid, step int, applied tafl.AppliedMove) error {
	record := &moverecord.MoveRecord{
		StepCount: step,
		Side:      applied.Side.String(),
		Move:      applied.Move.String(),
	}
	for _, cap := range applied.Captures {
		record.Captures = append(record.Captures, cap.Cell.String())
	}

	conn := moverecord.NewMoveRecordModel(svcCtx.Config.MongoConf.Url, svcCtx.Config.MongoConf.DataBaseName, string(uid))
	return conn.Insert(ctx, record)
}

func RecordGameEnd(ctx context.Context, svcCtx *svc.ServiceContext, uid message.GameUid, outcome tafl.Outcome) error {
	record := &moverecord.GameEndRecord{
		Winner: outcome.Winner.String(),
		Reason: outcome.Reason.String(),
	}

	conn := moverecord.NewGameEndRecordModel(svcCtx.Config.MongoConf.Url, svcCtx.Config.MongoConf.DataBaseName, string(uid))
	return conn.Insert(ctx, record)
}
