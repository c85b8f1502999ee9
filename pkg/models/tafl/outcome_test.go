package tafl

import "testing"

func TestOutcomeKingCapturedWhenAbsent(t *testing.T) {
	b := boardWith(map[Cell]Piece{
		NewCell(3, 3): Attacker,
		NewCell(7, 7): Defender,
	})

	got := OutcomeAfter(b, NewHistory(), Attackers)
	want := Outcome{Winner: Attackers, Reason: KingCaptured}
	if got != want {
		t.Errorf("outcome = %s, want %s", got, want)
	}
}

func TestOutcomeKingOnCorner(t *testing.T) {
	b := boardWith(map[Cell]Piece{
		NewCell(0, 0): King,
		NewCell(5, 5): Attacker,
		NewCell(8, 8): Defender,
	})

	got := OutcomeAfter(b, NewHistory(), Defenders)
	want := Outcome{Winner: Defenders, Reason: KingEscaped}
	if got != want {
		t.Errorf("outcome = %s, want %s", got, want)
	}
}

func TestOutcomeExitFort(t *testing.T) {
	placements := map[Cell]Piece{
		NewCell(5, 0): King,
		NewCell(4, 0): Defender,
		NewCell(4, 1): Defender,
		NewCell(5, 2): Defender,
		NewCell(6, 2): Defender,
		NewCell(7, 1): Defender,
		NewCell(7, 0): Defender,
		NewCell(0, 5): Attacker,
		NewCell(10, 5): Attacker,
	}

	b := boardWith(placements)
	got := OutcomeAfter(b, NewHistory(), Defenders)
	want := Outcome{Winner: Defenders, Reason: KingEscaped}
	if got != want {
		t.Errorf("closed fort: outcome = %s, want %s", got, want)
	}

	// open one wall cell to an attacker and the fort is gone
	placements[NewCell(7, 0)] = Attacker
	b = boardWith(placements)
	if got := OutcomeAfter(b, NewHistory(), Defenders); got != InProgress {
		t.Errorf("broken fort: outcome = %s, want InProgress", got)
	}
}

func TestOutcomeEncirclement(t *testing.T) {
	b := boardWith(map[Cell]Piece{
		NewCell(5, 5): King,
		NewCell(5, 6): Defender,
		NewCell(5, 4): Attacker,
		NewCell(4, 5): Attacker,
		NewCell(6, 5): Attacker,
		NewCell(4, 6): Attacker,
		NewCell(6, 6): Attacker,
		NewCell(5, 7): Attacker,
	})

	got := OutcomeAfter(b, NewHistory(), Attackers)
	want := Outcome{Winner: Attackers, Reason: KingCaptured}
	if got != want {
		t.Errorf("sealed ring: outcome = %s, want %s", got, want)
	}

	// open the ring and the game goes on
	b.Remove(NewCell(5, 7))
	if got := OutcomeAfter(b, NewHistory(), Attackers); got != InProgress {
		t.Errorf("open ring: outcome = %s, want InProgress", got)
	}
}

func TestOutcomeNoLegalMoves(t *testing.T) {
	t.Run("defenders stuck", func(t *testing.T) {
		// king pinned on the edge: on the boundary, so not encircled
		b := boardWith(map[Cell]Piece{
			NewCell(0, 5): King,
			NewCell(0, 4): Attacker,
			NewCell(0, 6): Attacker,
			NewCell(1, 5): Attacker,
			NewCell(9, 9): Attacker,
		})

		got := OutcomeAfter(b, NewHistory(), Attackers)
		want := Outcome{Winner: Attackers, Reason: OpponentNoLegalMoves}
		if got != want {
			t.Errorf("outcome = %s, want %s", got, want)
		}
	})

	t.Run("attackers stuck", func(t *testing.T) {
		b := boardWith(map[Cell]Piece{
			NewCell(0, 5): Attacker,
			NewCell(0, 4): Defender,
			NewCell(0, 6): Defender,
			NewCell(1, 5): Defender,
			NewCell(8, 8): King,
		})

		got := OutcomeAfter(b, NewHistory(), Defenders)
		want := Outcome{Winner: Defenders, Reason: OpponentNoLegalMoves}
		if got != want {
			t.Errorf("outcome = %s, want %s", got, want)
		}
	})
}

// shuffleBoard is a sparse position where both sides can rock a piece back
// and forth without ever threatening a capture.
func shuffleBoard() *Board {
	return boardWith(map[Cell]Piece{
		NewCell(0, 4):  Attacker,
		NewCell(10, 4): Defender,
		NewCell(5, 5):  King,
	})
}

func TestDefenderRepetitionLoss(t *testing.T) {
	g, err := NewGameFrom(shuffleBoard(), Attackers)
	if err != nil {
		t.Fatal(err)
	}

	aForth := NewMove(NewCell(0, 4), NewCell(0, 3))
	aBack := NewMove(NewCell(0, 3), NewCell(0, 4))
	dForth := NewMove(NewCell(10, 4), NewCell(10, 3))
	dBack := NewMove(NewCell(10, 3), NewCell(10, 4))

	// the position after aForth, defenders to move, occurs for the third
	// time on the ninth ply; nothing may end before that
	plies := []Move{
		aForth, dForth, aBack, dBack,
		aForth, dForth, aBack, dBack,
	}
	for i, m := range plies {
		if err := g.ApplyMove(m); err != nil {
			t.Fatalf("ply %d (%s): %v", i+1, m, err)
		}
		if g.Outcome().Over() {
			t.Fatalf("game ended early at ply %d: %s", i+1, g.Outcome())
		}
	}

	if err := g.ApplyMove(aForth); err != nil {
		t.Fatalf("final ply: %v", err)
	}
	want := Outcome{Winner: Attackers, Reason: DefenderRepetition}
	if got := g.Outcome(); got != want {
		t.Errorf("outcome = %s, want %s", got, want)
	}
}

func TestAttackerRepetitionIsNotALoss(t *testing.T) {
	g, err := NewGameFrom(shuffleBoard(), Attackers)
	if err != nil {
		t.Fatal(err)
	}

	aForth := NewMove(NewCell(0, 4), NewCell(0, 3))
	aBack := NewMove(NewCell(0, 3), NewCell(0, 4))
	dForth := NewMove(NewCell(10, 4), NewCell(10, 3))
	dBack := NewMove(NewCell(10, 3), NewCell(10, 4))

	// after the eighth ply the starting position, attackers to move, has
	// occurred three times; the game must still be running
	plies := []Move{
		aForth, dForth, aBack, dBack,
		aForth, dForth, aBack, dBack,
	}
	for i, m := range plies {
		if err := g.ApplyMove(m); err != nil {
			t.Fatalf("ply %d (%s): %v", i+1, m, err)
		}
	}

	if g.Outcome().Over() {
		t.Errorf("attacker-side repetition ended the game: %s", g.Outcome())
	}
}
