package tafl

import "fmt"

const (
	BoardSize = 11
	CellCount = BoardSize * BoardSize
)

type Cell int

func NewCell(x, y int) Cell {
	return Cell(x*BoardSize + y)
}

func (c Cell) X() int {
	return int(c) / BoardSize
}

func (c Cell) Y() int {
	return int(c) % BoardSize
}

func (c Cell) Valid() bool {
	return c >= 0 && c < CellCount
}

// OnEdge reports whether the cell lies on the outermost rank or file.
func (c Cell) OnEdge() bool {
	x, y := c.X(), c.Y()
	return x == 0 || y == 0 || x == BoardSize-1 || y == BoardSize-1
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.X(), c.Y())
}

// Step returns the cell one square away in the given direction and whether
// that square is still on the board.
func (c Cell) Step(d Direction) (Cell, bool) {
	x := c.X() + d.DX
	y := c.Y() + d.DY
	if x < 0 || y < 0 || x >= BoardSize || y >= BoardSize {
		return 0, false
	}
	return NewCell(x, y), true
}

type Direction struct {
	DX, DY int
}

// Directions is the fixed traversal order used everywhere a cell's orthogonal
// neighbors are visited: north, east, south, west.
var Directions = [4]Direction{
	{0, -1},
	{1, 0},
	{0, 1},
	{-1, 0},
}

func (d Direction) Opposite() Direction {
	return Direction{-d.DX, -d.DY}
}

type Side int8

const (
	Attackers Side = 1
	Defenders Side = -1
)

func (s Side) String() string {
	switch s {
	case Attackers:
		return "Attackers"
	case Defenders:
		return "Defenders"
	}
	return ""
}

func (s Side) Opponent() Side { return -s }

// ParseSide is the inverse of Side.String; it returns false for anything else.
func ParseSide(s string) (Side, bool) {
	switch s {
	case Attackers.String():
		return Attackers, true
	case Defenders.String():
		return Defenders, true
	}
	return 0, false
}

type Piece int8

const (
	Empty Piece = iota
	Attacker
	Defender
	King
)

func (p Piece) String() string {
	switch p {
	case Attacker:
		return "Attacker"
	case Defender:
		return "Defender"
	case King:
		return "King"
	}
	return "Empty"
}

// Side returns the side the piece fights for; the king counts as a defender.
func (p Piece) Side() Side {
	switch p {
	case Attacker:
		return Attackers
	case Defender, King:
		return Defenders
	}
	return 0
}

type CellClass int8

const (
	Normal CellClass = iota
	Corner
	Throne
	RestrictedNonCorner
)

func (c CellClass) String() string {
	switch c {
	case Corner:
		return "Corner"
	case Throne:
		return "Throne"
	case RestrictedNonCorner:
		return "Restricted"
	}
	return "Normal"
}

// Restricted reports whether only the king may come to rest on the class.
func (c CellClass) Restricted() bool {
	return c != Normal
}
