package assess

import (
	"math/rand"
	"time"

	"github.com/panopteo/hnefatafl-engine/pkg/models/tafl"
)

// RandMove picks a move for the side to move, uniformly at random among the
// legal set. It keeps no state between calls.
func RandMove(g *tafl.Game) (tafl.Move, error) {
	moves := g.LegalMoves()
	if len(moves) == 0 {
		return 0, tafl.ErrNoLegalMoves
	}
	return moves[rand.New(rand.NewSource(time.Now().UnixNano())).Intn(len(moves))], nil
}

// RandMoveFor is RandMove for a bare board, used by the worker, which
// receives positions as snapshots rather than live games.
func RandMoveFor(b *tafl.Board, side tafl.Side) (tafl.Move, error) {
	moves := tafl.LegalMoves(b, side)
	if len(moves) == 0 {
		return 0, tafl.ErrNoLegalMoves
	}
	return moves[rand.New(rand.NewSource(time.Now().UnixNano())).Intn(len(moves))], nil
}
