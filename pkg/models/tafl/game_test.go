package tafl

import (
	"errors"
	"testing"
)

func TestNewGame(t *testing.T) {
	g := NewGame()

	if g.SideToMove() != Attackers {
		t.Errorf("side to move = %s, want Attackers", g.SideToMove())
	}
	if g.Outcome() != InProgress {
		t.Errorf("outcome = %s, want InProgress", g.Outcome())
	}
	if g.StepCount() != 0 {
		t.Errorf("step count = %d, want 0", g.StepCount())
	}
	if len(g.LegalMoves()) == 0 {
		t.Error("no opening moves for the attackers")
	}
}

func TestApplyMoveRejectsIllegal(t *testing.T) {
	g := NewGame()
	before := g.Board().Key(Attackers)

	bad := []Move{
		NewMove(NewCell(4, 4), NewCell(4, 2)),  // defender piece, attackers to move
		NewMove(NewCell(3, 0), NewCell(4, 1)),  // diagonal
		NewMove(NewCell(2, 2), NewCell(2, 4)),  // empty origin
		NewMove(NewCell(5, 0), NewCell(5, 4)),  // blocked path
	}
	for _, m := range bad {
		if err := g.ApplyMove(m); !errors.Is(err, ErrIllegalMove) {
			t.Errorf("ApplyMove(%s) = %v, want ErrIllegalMove", m, err)
		}
	}

	if got := g.Board().Key(Attackers); got != before {
		t.Error("rejected moves mutated the board")
	}
	if g.SideToMove() != Attackers {
		t.Error("rejected moves advanced the turn")
	}
}

func TestApplyMoveAdvancesTurn(t *testing.T) {
	g := NewGame()

	m := NewMove(NewCell(3, 0), NewCell(3, 2))
	if err := g.ApplyMove(m); err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}

	if g.SideToMove() != Defenders {
		t.Errorf("side to move = %s, want Defenders", g.SideToMove())
	}
	if g.StepCount() != 1 {
		t.Errorf("step count = %d, want 1", g.StepCount())
	}

	rec := g.Moves()[0]
	if rec.Move != m || rec.Side != Attackers || len(rec.Captures) != 0 {
		t.Errorf("transcript entry = %+v", rec)
	}

	b := g.Board()
	if b.Occupant(NewCell(3, 0)) != Empty || b.Occupant(NewCell(3, 2)) != Attacker {
		t.Error("board does not reflect the move")
	}
}

func TestApplyMoveResolvesCaptures(t *testing.T) {
	b := boardWith(map[Cell]Piece{
		NewCell(4, 2): Attacker,
		NewCell(4, 3): Defender,
		NewCell(6, 4): Attacker,
		NewCell(8, 8): King,
	})
	g, err := NewGameFrom(b, Attackers)
	if err != nil {
		t.Fatal(err)
	}

	if err := g.ApplyMove(NewMove(NewCell(6, 4), NewCell(4, 4))); err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}

	after := g.Board()
	if after.Occupant(NewCell(4, 3)) != Empty {
		t.Error("sandwiched defender not removed")
	}
	caps := g.Moves()[0].Captures
	if len(caps) != 1 || caps[0].Cell != NewCell(4, 3) || caps[0].Mode != Custodian {
		t.Errorf("captures = %v", caps)
	}
	if after.Count(Attacker) != 2 {
		t.Error("capturing side lost a piece")
	}
}

func TestKingEscapeEndsGame(t *testing.T) {
	b := boardWith(map[Cell]Piece{
		NewCell(0, 2): King,
		NewCell(5, 5): Attacker,
		NewCell(9, 9): Defender,
	})
	g, err := NewGameFrom(b, Defenders)
	if err != nil {
		t.Fatal(err)
	}

	if err := g.ApplyMove(NewMove(NewCell(0, 2), NewCell(0, 0))); err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}

	want := Outcome{Winner: Defenders, Reason: KingEscaped}
	if got := g.Outcome(); got != want {
		t.Fatalf("outcome = %s, want %s", got, want)
	}

	if err := g.ApplyMove(NewMove(NewCell(5, 5), NewCell(5, 6))); !errors.Is(err, ErrGameOver) {
		t.Errorf("move after the end = %v, want ErrGameOver", err)
	}
	if g.LegalMoves() != nil {
		t.Error("terminal game still offers legal moves")
	}
}

func TestKingCaptureEndsGame(t *testing.T) {
	b := boardWith(map[Cell]Piece{
		NewCell(5, 5): King, // on the throne
		NewCell(4, 5): Attacker,
		NewCell(6, 5): Attacker,
		NewCell(5, 4): Attacker,
		NewCell(5, 9): Attacker,
		NewCell(0, 8): Defender,
	})
	g, err := NewGameFrom(b, Attackers)
	if err != nil {
		t.Fatal(err)
	}

	if err := g.ApplyMove(NewMove(NewCell(5, 9), NewCell(5, 6))); err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}

	want := Outcome{Winner: Attackers, Reason: KingCaptured}
	if got := g.Outcome(); got != want {
		t.Errorf("outcome = %s, want %s", got, want)
	}
	if g.Board().Count(King) != 0 {
		t.Error("captured king still on the board")
	}
}

func TestNewGameFromValidatesKing(t *testing.T) {
	if _, err := NewGameFrom(NewEmptyBoard(), Attackers); !errors.Is(err, ErrKingInvariant) {
		t.Errorf("kingless setup accepted: %v", err)
	}
}

func TestPieceCountNeverGrows(t *testing.T) {
	g := NewGame()
	prev := 37 // 24 + 12 + king

	for i := 0; i < 40 && !g.Outcome().Over(); i++ {
		moves := g.LegalMoves()
		mover := g.SideToMove()
		if err := g.ApplyMove(moves[i%len(moves)]); err != nil {
			t.Fatalf("ply %d: %v", i, err)
		}
		b := g.Board()
		total := b.Count(Attacker) + b.Count(Defender) + b.Count(King)
		if total > prev {
			t.Fatalf("ply %d: piece count grew from %d to %d", i, prev, total)
		}
		for _, cap := range g.Moves()[g.StepCount()-1].Captures {
			if cap.Piece.Side() == mover {
				t.Fatalf("ply %d: capture removed the mover's own piece: %v", i, cap)
			}
		}
		prev = total
	}
}
