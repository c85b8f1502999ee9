package tafl

import "testing"

func TestLegalMovesOpenRook(t *testing.T) {
	b := NewEmptyBoard()
	b.Place(NewCell(2, 3), Attacker)
	b.Place(NewCell(9, 9), King)

	moves := movesFrom(LegalMoves(b, Attackers), NewCell(2, 3))
	// full rank and file are open, no restricted cell in reach
	if len(moves) != 20 {
		t.Errorf("open rook has %d moves, want 20", len(moves))
	}
}

func TestLegalMovesThroneBlocksLanding(t *testing.T) {
	b := NewEmptyBoard()
	b.Place(NewCell(5, 2), Attacker)
	b.Place(NewCell(9, 9), King)

	moves := movesFrom(LegalMoves(b, Attackers), NewCell(5, 2))
	for _, m := range moves {
		if m.To() == NewCell(5, 5) {
			t.Fatal("soldier may not land on the throne")
		}
	}
	// the empty throne is still crossed
	if !containsMove(moves, NewMove(NewCell(5, 2), NewCell(5, 8))) {
		t.Error("slide through the empty throne was not generated")
	}
	if len(moves) != 19 {
		t.Errorf("got %d moves, want 19 (20 minus the throne landing)", len(moves))
	}
}

func TestOnlyKingEntersRestrictedCells(t *testing.T) {
	b := NewEmptyBoard()
	b.Place(NewCell(1, 0), Attacker)
	b.Place(NewCell(1, 10), King)

	for _, m := range LegalMoves(b, Attackers) {
		if b.Classify(m.To()).Restricted() {
			t.Fatalf("soldier move %s lands on %s cell", m, b.Classify(m.To()))
		}
	}

	kingMoves := movesFrom(LegalMoves(b, Defenders), NewCell(1, 10))
	if !containsMove(kingMoves, NewMove(NewCell(1, 10), NewCell(0, 10))) {
		t.Error("king move onto the corner was not generated")
	}
}

func TestStartPositionMovesAreClean(t *testing.T) {
	b := NewBoard()
	for _, side := range []Side{Attackers, Defenders} {
		moves := LegalMoves(b, side)
		if len(moves) == 0 {
			t.Fatalf("%s have no opening moves", side)
		}
		for _, m := range moves {
			if b.Occupant(m.From()) == King {
				continue
			}
			if b.Classify(m.To()).Restricted() {
				t.Errorf("%s: soldier move %s lands on a restricted cell", side, m)
			}
			if b.Occupant(m.To()) != Empty {
				t.Errorf("%s: move %s lands on an occupied cell", side, m)
			}
		}
	}
}

func TestLegalMovesDeterministic(t *testing.T) {
	b := NewBoard()
	first := LegalMoves(b, Attackers)
	second := LegalMoves(b, Attackers)
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("move %d differs: %s vs %s", i, first[i], second[i])
		}
	}
}

func TestIsLegalAgreesWithLegalMoves(t *testing.T) {
	b := NewBoard()
	for _, m := range LegalMoves(b, Attackers) {
		if !IsLegal(b, m, Attackers) {
			t.Errorf("generated move %s rejected by IsLegal", m)
		}
	}

	bad := []Move{
		NewMove(NewCell(3, 0), NewCell(4, 1)),  // diagonal
		NewMove(NewCell(3, 0), NewCell(5, 0)),  // destination occupied
		NewMove(NewCell(3, 0), NewCell(3, 0)),  // null move
		NewMove(NewCell(4, 4), NewCell(4, 2)),  // defender piece, attackers to move
		NewMove(NewCell(2, 2), NewCell(2, 5)),  // empty origin
		NewMove(NewCell(5, 0), NewCell(5, 4)),  // path blocked at (5, 1)
	}
	for _, m := range bad {
		if IsLegal(b, m, Attackers) {
			t.Errorf("IsLegal accepted %s", m)
		}
	}
}

func movesFrom(moves []Move, from Cell) (out []Move) {
	for _, m := range moves {
		if m.From() == from {
			out = append(out, m)
		}
	}
	return
}

func containsMove(moves []Move, want Move) bool {
	for _, m := range moves {
		if m == want {
			return true
		}
	}
	return false
}
