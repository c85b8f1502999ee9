package moverecord

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var _ GameStartRecordModel = (*customGameStartRecordModel)(nil)

type (
	// GameStartRecordModel is an interface to be customized, add more methods
	// here, and implement the added methods in customGameStartRecordModel.
	GameStartRecordModel interface {
		Insert(ctx context.Context, data *GameStartRecord) error
	}

	customGameStartRecordModel struct {
		conn *mon.Model
	}
)

// NewGameStartRecordModel returns a model for the mongo.
func NewGameStartRecordModel(url, db, collection string) GameStartRecordModel {
	return &customGameStartRecordModel{conn: mon.MustNewModel(url, db, collection)}
}

func (m *customGameStartRecordModel) Insert(ctx context.Context, data *GameStartRecord) error {
	if data.ID.IsZero() {
		data.ID = primitive.NewObjectID()
		data.CreateAt = time.Now()
		data.UpdateAt = time.Now()
	}

	_, err := m.conn.InsertOne(ctx, data)
	return err
}
