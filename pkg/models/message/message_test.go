package message

import (
	"testing"

	"github.com/panopteo/hnefatafl-engine/pkg/models/tafl"
)

func TestSnapshotRoundTrip(t *testing.T) {
	b := tafl.NewBoard()
	snap := NewSnapshot(b, tafl.Defenders)

	req := MoveRequestMessage{
		GameUid:   NewGameUid(),
		StepCount: 3,
		Snapshot:  snap,
	}

	decoded, err := NewMoveRequestMessage(req.String())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.GameUid != req.GameUid || decoded.StepCount != 3 {
		t.Errorf("decoded header = %+v", decoded)
	}

	restored, side, err := decoded.Snapshot.Board()
	if err != nil {
		t.Fatalf("rebuild board: %v", err)
	}
	if side != tafl.Defenders {
		t.Errorf("side = %s, want Defenders", side)
	}
	if restored.Key(side) != b.Key(side) {
		t.Error("restored position differs from the original")
	}
}

func TestSnapshotRejectsGarbage(t *testing.T) {
	tests := []struct {
		name string
		snap Snapshot
	}{
		{"unknown side", Snapshot{King: 5, Turn: "Nobody"}},
		{"king off board", Snapshot{King: tafl.CellCount, Turn: "Attackers"}},
		{"overlapping pieces", Snapshot{Attackers: []int{7, 7}, King: 5, Turn: "Attackers"}},
		{"piece on king cell", Snapshot{Defenders: []int{5}, King: 5, Turn: "Defenders"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := tt.snap.Board(); err == nil {
				t.Error("bad snapshot accepted")
			}
		})
	}
}

func TestSelfTestReply(t *testing.T) {
	reply := MoveReplyMessage{
		GameUid:  NewGameUid(),
		SelfTest: &SelfTestResult{Ok: false, Failures: []string{"shieldwall-capture"}},
	}

	decoded, err := NewMoveReplyMessage(reply.String())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.SelfTest == nil || decoded.SelfTest.Ok || len(decoded.SelfTest.Failures) != 1 {
		t.Errorf("decoded self-test = %+v", decoded.SelfTest)
	}
}
