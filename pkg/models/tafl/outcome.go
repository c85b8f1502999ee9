package tafl

type Reason int8

const (
	NoReason Reason = iota
	KingCaptured
	KingEscaped
	OpponentNoLegalMoves
	DefenderRepetition
)

func (r Reason) String() string {
	switch r {
	case KingCaptured:
		return "KingCaptured"
	case KingEscaped:
		return "KingEscaped"
	case OpponentNoLegalMoves:
		return "OpponentNoLegalMoves"
	case DefenderRepetition:
		return "DefenderRepetition"
	}
	return ""
}

// Outcome is the game verdict. The zero value means the game is still in
// progress; once a winner is set the game never reopens.
type Outcome struct {
	Winner Side
	Reason Reason
}

var InProgress = Outcome{}

func (o Outcome) Over() bool {
	return o.Winner != 0
}

func (o Outcome) String() string {
	if !o.Over() {
		return "InProgress"
	}
	return o.Winner.String() + "Win(" + o.Reason.String() + ")"
}

// OutcomeAfter decides whether the position ends the game, evaluated after
// captures are applied. Conditions are checked in fixed order and the first
// match wins:
//
//  1. king gone, attackers win
//  2. king on a corner or safe inside an exit fort, defenders win
//  3. defenders fully encircled, attackers win (treated as king capture)
//  4. the side to move next has no legal move and loses
//  5. the position repeats a third time with defenders to move, attackers win
func OutcomeAfter(b *Board, history *History, justMoved Side) Outcome {
	king, kings := b.findKing()

	if kings == 0 {
		return Outcome{Winner: Attackers, Reason: KingCaptured}
	}

	if b.Classify(king) == Corner || inExitFort(b, king) {
		return Outcome{Winner: Defenders, Reason: KingEscaped}
	}

	if encircled(b) {
		return Outcome{Winner: Attackers, Reason: KingCaptured}
	}

	next := justMoved.Opponent()
	if len(LegalMoves(b, next)) == 0 {
		return Outcome{Winner: justMoved, Reason: OpponentNoLegalMoves}
	}

	if next == Defenders && history.Count(b.Key(next)) >= 3 {
		return Outcome{Winner: Attackers, Reason: DefenderRepetition}
	}

	return InProgress
}

// encircled reports whether every defender, king included, is sealed off from
// the board edge by an unbroken attacker ring. Flood fill from the boundary
// over non-attacker cells; if the flood reaches no defender, the ring is
// closed.
func encircled(b *Board) bool {
	var visited [CellCount]bool
	var queue []Cell

	for _, line := range edgeLines() {
		for _, c := range line.cells {
			switch b.Occupant(c).Side() {
			case Defenders:
				return false
			case Attackers:
				continue
			}
			if !visited[c] {
				visited[c] = true
				queue = append(queue, c)
			}
		}
	}

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, dir := range Directions {
			n, ok := c.Step(dir)
			if !ok || visited[n] {
				continue
			}
			switch b.Occupant(n).Side() {
			case Defenders:
				return false
			case Attackers:
				continue
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}

	return true
}

// inExitFort reports whether the king sits on the board edge inside a wall of
// his own soldiers with room to move: every empty cell reachable from him
// borders only defenders, more empty cells, or the board edge, and at least
// one such cell is directly beside him.
func inExitFort(b *Board, king Cell) bool {
	if !king.OnEdge() {
		return false
	}

	canMove := false
	for _, dir := range Directions {
		if n, ok := king.Step(dir); ok && b.Occupant(n) == Empty {
			canMove = true
			break
		}
	}
	if !canMove {
		return false
	}

	var visited [CellCount]bool
	visited[king] = true
	queue := []Cell{king}

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, dir := range Directions {
			n, ok := c.Step(dir)
			if !ok || visited[n] {
				continue
			}
			switch b.Occupant(n) {
			case Attacker:
				return false
			case Defender:
				continue
			case King:
				continue
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}

	return true
}
