package assess

import (
	"errors"
	"testing"

	"github.com/panopteo/hnefatafl-engine/pkg/models/tafl"
)

func TestRandMoveIsAlwaysLegal(t *testing.T) {
	g := tafl.NewGame()

	for i := 0; i < 30 && !g.Outcome().Over(); i++ {
		m, err := RandMove(g)
		if err != nil {
			t.Fatalf("ply %d: %v", i, err)
		}

		found := false
		for _, legal := range g.LegalMoves() {
			if legal == m {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("ply %d: chosen move %s is not legal", i, m)
		}

		if err := g.ApplyMove(m); err != nil {
			t.Fatalf("ply %d: engine rejected its own move %s: %v", i, m, err)
		}
	}
}

func TestRandMoveOnFinishedGame(t *testing.T) {
	b := tafl.NewEmptyBoard()
	b.Place(tafl.NewCell(0, 2), tafl.King)
	b.Place(tafl.NewCell(5, 5), tafl.Attacker)
	g, err := tafl.NewGameFrom(b, tafl.Defenders)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.ApplyMove(tafl.NewMove(tafl.NewCell(0, 2), tafl.NewCell(0, 0))); err != nil {
		t.Fatal(err)
	}

	if _, err := RandMove(g); !errors.Is(err, tafl.ErrNoLegalMoves) {
		t.Errorf("finished game: err = %v, want ErrNoLegalMoves", err)
	}
}

func TestRandMoveForBoard(t *testing.T) {
	b := tafl.NewBoard()
	m, err := RandMoveFor(b, tafl.Attackers)
	if err != nil {
		t.Fatal(err)
	}
	if !tafl.IsLegal(b, m, tafl.Attackers) {
		t.Errorf("chosen move %s is not legal", m)
	}
}
