package tafl

// LegalMoves enumerates every legal move for the side on the given board.
// Pieces slide orthogonally over empty cells; only the king may come to rest
// on a corner, the throne, or a restricted cell, though any piece slides
// across them while empty. The scan is deterministic: cells in row-major
// order, directions north, east, south, west.
//
// An empty result is a valid answer; interpreting it as a loss is the win
// condition evaluator's job.
func LegalMoves(b *Board, side Side) (moves []Move) {
	for i := 0; i < CellCount; i++ {
		from := Cell(i)
		piece := b.Occupant(from)
		if piece == Empty || piece.Side() != side {
			continue
		}

		for _, dir := range Directions {
			for to, ok := from.Step(dir); ok; to, ok = to.Step(dir) {
				if b.Occupant(to) != Empty {
					break
				}
				if b.Classify(to).Restricted() && piece != King {
					continue
				}
				moves = append(moves, NewMove(from, to))
			}
		}
	}
	return moves
}

// IsLegal reports whether the move belongs to LegalMoves(b, side) without
// materializing the whole set.
func IsLegal(b *Board, m Move, side Side) bool {
	from, to := m.From(), m.To()
	if !from.Valid() || !to.Valid() || from == to {
		return false
	}

	piece := b.Occupant(from)
	if piece == Empty || piece.Side() != side {
		return false
	}
	if b.Occupant(to) != Empty {
		return false
	}
	if b.Classify(to).Restricted() && piece != King {
		return false
	}
	if from.X() != to.X() && from.Y() != to.Y() {
		return false
	}

	for _, c := range b.CellsBetween(from, to) {
		if b.Occupant(c) != Empty {
			return false
		}
	}
	return true
}
