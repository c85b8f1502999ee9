package tafl

import "errors"

var (
	ErrIllegalMove  = errors.New("illegal move")
	ErrGameOver     = errors.New("game is over")
	ErrNoLegalMoves = errors.New("no legal moves")
)

// AppliedMove is one transcript entry: the move played, who played it, and
// what it captured.
type AppliedMove struct {
	Move     Move
	Side     Side
	Captures CaptureSet
}

// Game is the state machine driving a single match. It owns the board and the
// history exclusively; the evaluator functions only ever see them for the
// duration of a call. Attackers move first.
type Game struct {
	board   *Board
	turn    Side
	history *History
	outcome Outcome
	moves   []AppliedMove
}

func NewGame() *Game {
	g := &Game{
		board:   NewBoard(),
		turn:    Attackers,
		history: NewHistory(),
	}
	g.history.Record(g.board.Key(g.turn))
	return g
}

// NewGameFrom starts a game from an arbitrary position. The board is cloned;
// it must hold exactly one king.
func NewGameFrom(b *Board, toMove Side) (*Game, error) {
	if _, err := b.KingPosition(); err != nil {
		return nil, err
	}
	g := &Game{
		board:   b.Clone(),
		turn:    toMove,
		history: NewHistory(),
	}
	g.history.Record(g.board.Key(g.turn))
	return g, nil
}

func (g *Game) SideToMove() Side {
	return g.turn
}

func (g *Game) Outcome() Outcome {
	return g.outcome
}

// Board returns a copy of the current position; callers can never mutate the
// game through it.
func (g *Game) Board() *Board {
	return g.board.Clone()
}

func (g *Game) LegalMoves() []Move {
	if g.outcome.Over() {
		return nil
	}
	return LegalMoves(g.board, g.turn)
}

// Moves returns the transcript so far.
func (g *Game) Moves() []AppliedMove {
	return g.moves
}

func (g *Game) StepCount() int {
	return len(g.moves)
}

// ApplyMove plays one move for the side to move. The move is validated before
// anything is touched, so a rejected move leaves no trace. On success the
// board is updated, captures are removed atomically, the new position joins
// the history, and the outcome is re-evaluated; if the game goes on, the turn
// passes to the opponent.
func (g *Game) ApplyMove(m Move) error {
	if g.outcome.Over() {
		return ErrGameOver
	}
	if !IsLegal(g.board, m, g.turn) {
		return ErrIllegalMove
	}

	piece := g.board.Occupant(m.From())
	g.board.Remove(m.From())
	g.board.Place(m.To(), piece)

	captures := CapturesAfter(g.board, m)
	captures.Apply(g.board)

	g.moves = append(g.moves, AppliedMove{Move: m, Side: g.turn, Captures: captures})
	g.history.Record(g.board.Key(g.turn.Opponent()))

	g.outcome = OutcomeAfter(g.board, g.history, g.turn)
	if !g.outcome.Over() {
		g.turn = g.turn.Opponent()
	}
	return nil
}
