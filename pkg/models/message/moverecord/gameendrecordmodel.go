package moverecord

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var _ GameEndRecordModel = (*customGameEndRecordModel)(nil)

type (
	// GameEndRecordModel is an interface to be customized, add more methods
	// here, and implement the added methods in customGameEndRecordModel.
	GameEndRecordModel interface {
		Insert(ctx context.Context, data *GameEndRecord) error
	}

	customGameEndRecordModel struct {
		conn *mon.Model
	}
)

// NewGameEndRecordModel returns a model for the mongo.
func NewGameEndRecordModel(url, db, collection string) GameEndRecordModel {
	return &customGameEndRecordModel{conn: mon.MustNewModel(url, db, collection)}
}

func (m *customGameEndRecordModel) Insert(ctx context.Context, data *GameEndRecord) error {
	if data.ID.IsZero() {
		data.ID = primitive.NewObjectID()
		data.CreateAt = time.Now()
		data.UpdateAt = time.Now()
	}

	_, err := m.conn.InsertOne(ctx, data)
	return err
}
