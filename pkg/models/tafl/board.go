package tafl

import (
	"errors"
	"strings"
)

var ErrKingInvariant = errors.New("board does not hold exactly one king")

var throneCell = NewCell(BoardSize/2, BoardSize/2)

var cornerCells = [4]Cell{
	NewCell(0, 0),
	NewCell(0, BoardSize-1),
	NewCell(BoardSize-1, 0),
	NewCell(BoardSize-1, BoardSize-1),
}

// Board is the 11×11 grid. It stores occupancy plus the per-cell class fixed
// at construction; all rule logic lives in the evaluator functions that take
// the board as input.
type Board struct {
	cells      [CellCount]Piece
	restricted [CellCount]bool
}

// NewEmptyBoard returns a board with the standard cell classes (four corners,
// center throne) and no pieces.
func NewEmptyBoard() *Board {
	return &Board{}
}

// NewBoard returns the Copenhagen starting position: 24 attackers in four
// edge camps, 12 defenders in a diamond around the king on the throne.
func NewBoard() *Board {
	b := NewEmptyBoard()

	mid := BoardSize / 2
	for i := mid - 2; i <= mid+2; i++ {
		b.Place(NewCell(i, 0), Attacker)
		b.Place(NewCell(i, BoardSize-1), Attacker)
		b.Place(NewCell(0, i), Attacker)
		b.Place(NewCell(BoardSize-1, i), Attacker)
	}
	b.Place(NewCell(mid, 1), Attacker)
	b.Place(NewCell(mid, BoardSize-2), Attacker)
	b.Place(NewCell(1, mid), Attacker)
	b.Place(NewCell(BoardSize-2, mid), Attacker)

	for i := mid - 2; i <= mid+2; i++ {
		if i != mid {
			b.Place(NewCell(i, mid), Defender)
			b.Place(NewCell(mid, i), Defender)
		}
	}
	b.Place(NewCell(mid-1, mid-1), Defender)
	b.Place(NewCell(mid-1, mid+1), Defender)
	b.Place(NewCell(mid+1, mid-1), Defender)
	b.Place(NewCell(mid+1, mid+1), Defender)

	b.Place(throneCell, King)

	return b
}

func (b *Board) Classify(c Cell) CellClass {
	if c == throneCell {
		return Throne
	}
	for _, corner := range cornerCells {
		if c == corner {
			return Corner
		}
	}
	if b.restricted[c] {
		return RestrictedNonCorner
	}
	return Normal
}

// Restrict marks a non-corner, non-throne cell as king-only. Used to build
// variant boards; the standard Copenhagen board has no such cells.
func (b *Board) Restrict(c Cell) {
	if b.Classify(c) == Normal {
		b.restricted[c] = true
	}
}

func (b *Board) Occupant(c Cell) Piece {
	return b.cells[c]
}

func (b *Board) Place(c Cell, p Piece) {
	b.cells[c] = p
}

func (b *Board) Remove(c Cell) {
	b.cells[c] = Empty
}

// CellsBetween returns the cells strictly between a and b in board order.
// The two cells must share a rank or a file; anything else yields nil.
func (b *Board) CellsBetween(from, to Cell) (cells []Cell) {
	x1, y1 := from.X(), from.Y()
	x2, y2 := to.X(), to.Y()
	if x1 != x2 && y1 != y2 {
		return nil
	}

	step := func(v1, v2 int) int {
		if v1 < v2 {
			return 1
		}
		if v1 > v2 {
			return -1
		}
		return 0
	}

	dx, dy := step(x1, x2), step(y1, y2)
	for x, y := x1+dx, y1+dy; x != x2 || y != y2; x, y = x+dx, y+dy {
		cells = append(cells, NewCell(x, y))
	}
	return cells
}

// KingPosition returns the king's cell, or ErrKingInvariant when the board
// holds zero or multiple kings. Engine mutations can never produce that
// state; hitting it means a capture or setup bug.
func (b *Board) KingPosition() (Cell, error) {
	king, count := b.findKing()
	if count != 1 {
		return 0, ErrKingInvariant
	}
	return king, nil
}

func (b *Board) findKing() (king Cell, count int) {
	for i := range b.cells {
		if b.cells[i] == King {
			king = Cell(i)
			count++
		}
	}
	return
}

// Count returns the number of pieces of the given kind on the board.
func (b *Board) Count(p Piece) (n int) {
	for i := range b.cells {
		if b.cells[i] == p {
			n++
		}
	}
	return
}

func (b *Board) Clone() *Board {
	clone := *b
	return &clone
}

// Key encodes occupancy plus the side to move into the position key used for
// repetition detection.
func (b *Board) Key(toMove Side) string {
	var sb strings.Builder
	sb.Grow(CellCount + 2)
	for i := range b.cells {
		switch b.cells[i] {
		case Attacker:
			sb.WriteByte('a')
		case Defender:
			sb.WriteByte('d')
		case King:
			sb.WriteByte('k')
		default:
			sb.WriteByte('.')
		}
	}
	sb.WriteByte('/')
	if toMove == Attackers {
		sb.WriteByte('a')
	} else {
		sb.WriteByte('d')
	}
	return sb.String()
}

func (b *Board) String() string {
	var sb strings.Builder

	sb.WriteString("   ╔")
	sb.WriteString(strings.Repeat("══", BoardSize))
	sb.WriteString("╗\n")

	for y := 0; y < BoardSize; y++ {
		sb.WriteString("  ")
		sb.WriteByte('0' + byte(y%10))
		sb.WriteRune('║')
		for x := 0; x < BoardSize; x++ {
			c := NewCell(x, y)
			switch b.cells[c] {
			case Attacker:
				sb.WriteString(" a")
			case Defender:
				sb.WriteString(" d")
			case King:
				sb.WriteString(" K")
			default:
				if b.Classify(c).Restricted() {
					sb.WriteString(" ·")
				} else {
					sb.WriteString("  ")
				}
			}
		}
		sb.WriteString("║\n")
	}

	sb.WriteString("   ╚")
	sb.WriteString(strings.Repeat("══", BoardSize))
	sb.WriteString("╝\n")

	return sb.String()
}
