// Package game implements the falling-block engine: board, piece catalog,
// collision detection, and the session state machine with scoring.
package game

import "math/rand/v2"

// PieceType identifies one of the seven tetromino shapes.
type PieceType int

const (
	PieceI PieceType = iota
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceJ
	PieceL

	NumPieceTypes = 7
)

var pieceNames = [NumPieceTypes]string{"I", "O", "T", "S", "Z", "J", "L"}

func (t PieceType) String() string {
	if t < 0 || t >= NumPieceTypes {
		return "?"
	}
	return pieceNames[t]
}

// Color returns the piece color as 0xRRGGBB.
func (t PieceType) Color() uint32 {
	return pieceColors[t]
}

var pieceColors = [NumPieceTypes]uint32{
	0x00FFFF, // I cyan
	0xFFFF00, // O yellow
	0xFF00FF, // T purple
	0x00FF00, // S green
	0xFF0000, // Z red
	0x0000FF, // J blue
	0xFF8000, // L orange
}

// Shape is a binary occupancy matrix stored row-major. Shapes are value types;
// Rotated returns a fresh matrix and never aliases the catalog templates.
type Shape struct {
	w, h  int
	cells []bool
}

// NewShape builds a shape from row-major rows of equal length.
func NewShape(rows [][]bool) Shape {
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	cells := make([]bool, w*h)
	for y, row := range rows {
		for x, filled := range row {
			cells[y*w+x] = filled
		}
	}
	return Shape{w: w, h: h, cells: cells}
}

func (s Shape) Width() int { return s.w }

func (s Shape) Height() int { return s.h }

// Filled reports whether the cell at (x, y) within the shape matrix is occupied.
func (s Shape) Filled(x, y int) bool {
	return s.cells[y*s.w+x]
}

// Rotated returns the shape rotated 90 degrees clockwise: with R rows and C
// columns the result has C rows and R columns, new[i][j] = old[R-1-j][i].
// Equivalent to reversing the row order then transposing.
func (s Shape) Rotated() Shape {
	r := Shape{w: s.h, h: s.w, cells: make([]bool, len(s.cells))}
	for y := 0; y < r.h; y++ {
		for x := 0; x < r.w; x++ {
			r.cells[y*r.w+x] = s.Filled(y, s.h-1-x)
		}
	}
	return r
}

// Equal reports whether two shapes have identical dimensions and cells.
func (s Shape) Equal(o Shape) bool {
	if s.w != o.w || s.h != o.h {
		return false
	}
	for i := range s.cells {
		if s.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// The seven shape templates. Immutable after init; spawned pieces copy from
// these via ShapeOf, so rotation never writes back into the catalog.
var tetrominoes = [NumPieceTypes]Shape{
	PieceI: NewShape([][]bool{
		{true, true, true, true},
	}),
	PieceO: NewShape([][]bool{
		{true, true},
		{true, true},
	}),
	PieceT: NewShape([][]bool{
		{false, true, false},
		{true, true, true},
	}),
	PieceS: NewShape([][]bool{
		{false, true, true},
		{true, true, false},
	}),
	PieceZ: NewShape([][]bool{
		{true, true, false},
		{false, true, true},
	}),
	PieceJ: NewShape([][]bool{
		{true, false, false},
		{true, true, true},
	}),
	PieceL: NewShape([][]bool{
		{false, false, true},
		{true, true, true},
	}),
}

// ShapeOf returns an owned copy of the template matrix for the given type.
func ShapeOf(t PieceType) Shape {
	tpl := tetrominoes[t]
	cells := make([]bool, len(tpl.cells))
	copy(cells, tpl.cells)
	return Shape{w: tpl.w, h: tpl.h, cells: cells}
}

// PickFunc selects the next piece type to spawn.
type PickFunc func() PieceType

// RandomPick draws uniformly and independently from the seven types.
// There is no anti-repeat bag.
func RandomPick() PieceType {
	return PieceType(rand.IntN(NumPieceTypes))
}
