package moverecord

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var _ MoveRecordModel = (*customMoveRecordModel)(nil)

type (
	// MoveRecordModel is an interface to be customized, add more methods
	// here, and implement the added methods in customMoveRecordModel.
	MoveRecordModel interface {
		Insert(ctx context.Context, data *MoveRecord) error
	}

	customMoveRecordModel struct {
		conn *mon.Model
	}
)

// NewMoveRecordModel returns a model for the mongo.
func NewMoveRecordModel(url, db, collection string) MoveRecordModel {
	return &customMoveRecordModel{conn: mon.MustNewModel(url, db, collection)}
}

func (m *customMoveRecordModel) Insert(ctx context.Context, data *MoveRecord) error {
	if data.ID.IsZero() {
		data.ID = primitive.NewObjectID()
		data.CreateAt = time.Now()
		data.UpdateAt = time.Now()
	}

	_, err := m.conn.InsertOne(ctx, data)
	return err
}
