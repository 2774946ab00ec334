package model

import (
	"errors"
	"fmt"
)

// MSA geometry. Each of the four quadrants is a 365 x 171 grid of shutters;
// the flat x/y layout tiles them 2 x 2.
const (
	Quadrants = 4
	Columns   = 365
	Rows      = 171

	GridWidth  = 2 * Columns // flat x extent
	GridHeight = 2 * Rows    // flat y extent

	ShutterCount = Quadrants * Columns * Rows
)

// ErrShutterOutOfRange is returned when a coordinate does not name a shutter.
var ErrShutterOutOfRange = errors.New("shutter coordinate out of range")

// quadrantOffset maps a 1-based quadrant to its (column, row) tile in the
// flat x/y layout.
var quadrantOffset = [Quadrants + 1][2]int{
	{},
	1: {1, 1},
	2: {0, 1},
	3: {1, 0},
	4: {0, 0},
}

// QIJ is the zero-based grid form of a shutter: quadrant, column, row.
// It is the key type for shutter maps.
type QIJ struct {
	Q, I, J int
}

func (g QIJ) String() string {
	return fmt.Sprintf("(%d,%d,%d)", g.Q, g.I, g.J)
}

// Less orders grid coordinates quadrant first, then column, then row.
func (g QIJ) Less(o QIJ) bool {
	if g.Q != o.Q {
		return g.Q < o.Q
	}
	if g.I != o.I {
		return g.I < o.I
	}
	return g.J < o.J
}

// Shutter identifies one physical shutter in MSA coordinates (1-based
// quadrant, column and row). The zero value is not a valid shutter; use one
// of the constructors.
type Shutter struct {
	quadrant int
	column   int
	row      int
}

// NewShutter builds a shutter from 1-based MSA coordinates.
func NewShutter(quadrant, column, row int) (Shutter, error) {
	if quadrant < 1 || quadrant > Quadrants ||
		column < 1 || column > Columns ||
		row < 1 || row > Rows {
		return Shutter{}, fmt.Errorf("%w: msa (%d,%d,%d)", ErrShutterOutOfRange, quadrant, column, row)
	}
	return Shutter{quadrant: quadrant, column: column, row: row}, nil
}

// FromQIJ builds a shutter from zero-based grid coordinates.
func FromQIJ(g QIJ) (Shutter, error) {
	s, err := NewShutter(g.Q+1, g.I+1, g.J+1)
	if err != nil {
		return Shutter{}, fmt.Errorf("%w: grid %s", ErrShutterOutOfRange, g)
	}
	return s, nil
}

// FromXY builds a shutter from flat mosaic coordinates, x in [0,730) and
// y in [0,342).
func FromXY(x, y int) (Shutter, error) {
	if x < 0 || x >= GridWidth || y < 0 || y >= GridHeight {
		return Shutter{}, fmt.Errorf("%w: xy (%d,%d)", ErrShutterOutOfRange, x, y)
	}
	quadRow := y / Rows
	quadCol := x / Columns
	return Shutter{
		quadrant: 2*quadCol + quadRow + 1,
		column:   x%Columns + 1,
		row:      y%Rows + 1,
	}, nil
}

// FromIndex builds a shutter from its linear index over all 4 x 365 x 171
// shutters (quadrant outermost, row innermost).
func FromIndex(idx int) (Shutter, error) {
	if idx < 0 || idx >= ShutterCount {
		return Shutter{}, fmt.Errorf("%w: index %d", ErrShutterOutOfRange, idx)
	}
	r := idx % Rows
	c := (idx / Rows) % Columns
	q := idx / (Rows * Columns)
	return Shutter{quadrant: q + 1, column: c + 1, row: r + 1}, nil
}

func (s Shutter) Quadrant() int { return s.quadrant }
func (s Shutter) Column() int   { return s.column }
func (s Shutter) Row() int      { return s.row }

// Valid reports whether s was built by one of the constructors.
func (s Shutter) Valid() bool { return s.quadrant != 0 }

// MSA returns the 1-based (quadrant, column, row).
func (s Shutter) MSA() (quadrant, column, row int) {
	return s.quadrant, s.column, s.row
}

// QIJ returns the zero-based grid coordinates.
func (s Shutter) QIJ() QIJ {
	return QIJ{Q: s.quadrant - 1, I: s.column - 1, J: s.row - 1}
}

// XY returns the flat mosaic coordinates; it is the exact inverse of FromXY.
func (s Shutter) XY() (x, y int) {
	q0 := s.quadrant - 1
	x = (s.column - 1) + Columns*(q0/2)
	y = (s.row - 1) + Rows*(q0%2)
	return x, y
}

// DisplayXY returns the mosaic position as seen looking at the MSA with
// shutter (1,1) of each quadrant in its top right corner. It is XY rotated
// by 180 degrees: DisplayXY = (729-x, 341-y).
func (s Shutter) DisplayXY() (x, y int) {
	off := quadrantOffset[s.quadrant]
	x = (Columns - s.column) + Columns*off[0]
	y = (Rows - s.row) + Rows*off[1]
	return x, y
}

// Index returns the linear index.
func (s Shutter) Index() int {
	return (s.quadrant-1)*Columns*Rows + (s.column-1)*Rows + (s.row - 1)
}

// Less orders shutters quadrant first, then column, then row.
func (s Shutter) Less(o Shutter) bool {
	return s.QIJ().Less(o.QIJ())
}

func (s Shutter) String() string {
	return fmt.Sprintf("Q%d(%d,%d)", s.quadrant, s.column, s.row)
}
