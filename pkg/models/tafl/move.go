package tafl

import "fmt"

// Move is an origin/destination pair packed into one int, the same way cells
// pack their coordinates. Both ends always share a rank or a file.
type Move int

func NewMove(from, to Cell) Move {
	return Move(int(from)*CellCount + int(to))
}

func (m Move) From() Cell {
	return Cell(int(m) / CellCount)
}

func (m Move) To() Cell {
	return Cell(int(m) % CellCount)
}

func (m Move) String() string {
	return fmt.Sprintf("%s => %s", m.From(), m.To())
}
