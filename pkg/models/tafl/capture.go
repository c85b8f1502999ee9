package tafl

type CaptureMode int8

const (
	Custodian CaptureMode = iota
	Shieldwall
)

func (m CaptureMode) String() string {
	if m == Shieldwall {
		return "Shieldwall"
	}
	return "Custodian"
}

type Capture struct {
	Cell  Cell
	Piece Piece
	Mode  CaptureMode
}

// CaptureSet holds every piece removed as a side effect of one move. It is
// recomputed from scratch after each move and never survives the turn.
type CaptureSet []Capture

func (cs CaptureSet) Contains(c Cell) bool {
	for _, cap := range cs {
		if cap.Cell == c {
			return true
		}
	}
	return false
}

// Apply removes every captured piece from the board in one pass.
func (cs CaptureSet) Apply(b *Board) {
	for _, cap := range cs {
		b.Remove(cap.Cell)
	}
}

// CapturesAfter determines every piece captured by the move just played. The
// board must already reflect the move. Custodian and shieldwall captures are
// unioned; encirclement is a win condition, not a capture, and is handled by
// OutcomeAfter.
func CapturesAfter(b *Board, m Move) (cs CaptureSet) {
	dest := m.To()
	mover := b.Occupant(dest)
	side := mover.Side()
	if side == 0 {
		return nil
	}

	cs = custodianCaptures(b, dest, side)
	if side == Attackers {
		if king, ok := kingCaptured(b, dest); ok {
			cs = append(cs, Capture{Cell: king, Piece: King, Mode: Custodian})
		}
		for _, cap := range shieldwallCaptures(b, dest) {
			if !cs.Contains(cap.Cell) {
				cs = append(cs, cap)
			}
		}
	}
	return cs
}

// hostileTo reports whether the cell acts as a capturing wall for the given
// side: an enemy piece (the king included, even on the throne), a corner, a
// restricted cell, or the empty throne.
func hostileTo(b *Board, c Cell, side Side) bool {
	if b.Occupant(c).Side() == side.Opponent() {
		return true
	}
	switch b.Classify(c) {
	case Corner, RestrictedNonCorner:
		return true
	case Throne:
		return b.Occupant(c) == Empty
	}
	return false
}

func custodianCaptures(b *Board, dest Cell, side Side) (cs CaptureSet) {
	for _, dir := range Directions {
		victim, ok := dest.Step(dir)
		if !ok {
			continue
		}
		piece := b.Occupant(victim)
		if piece == King || piece.Side() != side.Opponent() {
			continue
		}
		beyond, ok := victim.Step(dir)
		if !ok {
			continue
		}
		if hostileTo(b, beyond, side.Opponent()) {
			cs = append(cs, Capture{Cell: victim, Piece: piece, Mode: Custodian})
		}
	}
	return cs
}

// kingCaptured applies the Copenhagen king-capture table after an attacker
// move: four attackers on the throne, three attackers plus the empty throne
// beside it, a plain two-side sandwich anywhere else. Only a move ending next
// to the king can close the trap.
func kingCaptured(b *Board, dest Cell) (Cell, bool) {
	king, count := b.findKing()
	if count != 1 {
		return 0, false
	}

	adjacent := false
	for _, dir := range Directions {
		if n, ok := king.Step(dir); ok && n == dest {
			adjacent = true
			break
		}
	}
	if !adjacent {
		return 0, false
	}

	nextToThrone := false
	for _, dir := range Directions {
		if n, ok := king.Step(dir); ok && n == throneCell {
			nextToThrone = true
			break
		}
	}

	switch {
	case king == throneCell:
		for _, dir := range Directions {
			n, ok := king.Step(dir)
			if !ok || b.Occupant(n) != Attacker {
				return 0, false
			}
		}
		return king, true

	case nextToThrone:
		if b.Occupant(throneCell) != Empty {
			return 0, false
		}
		for _, dir := range Directions {
			n, ok := king.Step(dir)
			if !ok {
				return 0, false
			}
			if n != throneCell && b.Occupant(n) != Attacker {
				return 0, false
			}
		}
		return king, true

	default:
		for _, dir := range Directions {
			n, ok := king.Step(dir)
			if !ok || n != dest {
				continue
			}
			opposite, ok := king.Step(dir.Opposite())
			if ok && hostileTo(b, opposite, Defenders) {
				return king, true
			}
		}
		return 0, false
	}
}

type edgeLine struct {
	cells  [BoardSize]Cell
	inward Direction
}

func edgeLines() [4]edgeLine {
	var lines [4]edgeLine
	for i := 0; i < BoardSize; i++ {
		lines[0].cells[i] = NewCell(i, 0)
		lines[1].cells[i] = NewCell(i, BoardSize-1)
		lines[2].cells[i] = NewCell(0, i)
		lines[3].cells[i] = NewCell(BoardSize-1, i)
	}
	lines[0].inward = Direction{0, 1}
	lines[1].inward = Direction{0, -1}
	lines[2].inward = Direction{1, 0}
	lines[3].inward = Direction{-1, 0}
	return lines
}

// shieldwallCaptures finds runs of two or more defender-side pieces flush on
// a board edge, each pinned by an attacker from the inside, with both run
// ends closed by an attacker or a corner. The whole run falls at once; a king
// inside the run survives. The just-moved attacker must itself be one of the
// pins or brackets.
func shieldwallCaptures(b *Board, dest Cell) (cs CaptureSet) {
	for _, line := range edgeLines() {
		i := 0
		for i < BoardSize {
			if b.Occupant(line.cells[i]).Side() != Defenders {
				i++
				continue
			}

			j := i
			for j+1 < BoardSize && b.Occupant(line.cells[j+1]).Side() == Defenders {
				j++
			}

			if caps := wallRunCaptures(b, line, i, j, dest); caps != nil {
				cs = append(cs, caps...)
			}
			i = j + 1
		}
	}
	return cs
}

func wallRunCaptures(b *Board, line edgeLine, i, j int, dest Cell) (cs CaptureSet) {
	if j-i+1 < 2 || i == 0 || j == BoardSize-1 {
		// a run starting or ending on a corner cell is impossible; i==0 or
		// j==10 means the run is open at the board end
		return nil
	}

	closed := func(c Cell) bool {
		return b.Occupant(c) == Attacker || b.Classify(c) == Corner
	}
	before, after := line.cells[i-1], line.cells[j+1]
	if !closed(before) || !closed(after) {
		return nil
	}

	participates := dest == before || dest == after
	for k := i; k <= j; k++ {
		pin, ok := line.cells[k].Step(line.inward)
		if !ok || b.Occupant(pin) != Attacker {
			return nil
		}
		if pin == dest {
			participates = true
		}
	}
	if !participates {
		return nil
	}

	for k := i; k <= j; k++ {
		piece := b.Occupant(line.cells[k])
		if piece == King {
			continue
		}
		cs = append(cs, Capture{Cell: line.cells[k], Piece: piece, Mode: Shieldwall})
	}
	return cs
}
