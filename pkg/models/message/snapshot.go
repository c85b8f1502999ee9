package message

import (
	"errors"

	"github.com/panopteo/hnefatafl-engine/pkg/models/tafl"
)

var ErrBadSnapshot = errors.New("snapshot does not describe a legal board")

// Snapshot is the serializable view of a position: occupancy by piece kind,
// any variant restricted cells, and the side to move. It is what crosses the
// worker boundary instead of a live *tafl.Board.
type Snapshot struct {
	Attackers  []int
	Defenders  []int
	King       int
	Restricted []int `json:",omitempty"`
	Turn       string
}

// NewSnapshot captures a board and side to move.
func NewSnapshot(b *tafl.Board, toMove tafl.Side) (s Snapshot) {
	s.Turn = toMove.String()
	for i := 0; i < tafl.CellCount; i++ {
		c := tafl.Cell(i)
		switch b.Occupant(c) {
		case tafl.Attacker:
			s.Attackers = append(s.Attackers, i)
		case tafl.Defender:
			s.Defenders = append(s.Defenders, i)
		case tafl.King:
			s.King = i
		}
		if b.Classify(c) == tafl.RestrictedNonCorner {
			s.Restricted = append(s.Restricted, i)
		}
	}
	return s
}

// Board rebuilds the position. The snapshot must name a valid king cell and
// a parseable side to move.
func (s Snapshot) Board() (*tafl.Board, tafl.Side, error) {
	side, ok := tafl.ParseSide(s.Turn)
	if !ok {
		return nil, 0, ErrBadSnapshot
	}
	if !tafl.Cell(s.King).Valid() {
		return nil, 0, ErrBadSnapshot
	}

	b := tafl.NewEmptyBoard()
	for _, i := range s.Restricted {
		if !tafl.Cell(i).Valid() {
			return nil, 0, ErrBadSnapshot
		}
		b.Restrict(tafl.Cell(i))
	}
	for _, i := range s.Attackers {
		if !tafl.Cell(i).Valid() || b.Occupant(tafl.Cell(i)) != tafl.Empty {
			return nil, 0, ErrBadSnapshot
		}
		b.Place(tafl.Cell(i), tafl.Attacker)
	}
	for _, i := range s.Defenders {
		if !tafl.Cell(i).Valid() || b.Occupant(tafl.Cell(i)) != tafl.Empty {
			return nil, 0, ErrBadSnapshot
		}
		b.Place(tafl.Cell(i), tafl.Defender)
	}
	if b.Occupant(tafl.Cell(s.King)) != tafl.Empty {
		return nil, 0, ErrBadSnapshot
	}
	b.Place(tafl.Cell(s.King), tafl.King)

	return b, side, nil
}
