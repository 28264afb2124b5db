package game

// Board is the fixed-size occupancy grid. Cells are stored row-major: a cell
// is either empty or holds the type of the piece that locked it, which the
// renderer uses for color lookup. Dimensions never change after construction.
type Board struct {
	w, h  int
	cells []int8 // 0 = empty, otherwise PieceType+1
}

// NewBoard creates an empty board of the given dimensions.
func NewBoard(w, h int) *Board {
	return &Board{w: w, h: h, cells: make([]int8, w*h)}
}

func (b *Board) Width() int { return b.w }

func (b *Board) Height() int { return b.h }

// Reset empties every cell, keeping dimensions.
func (b *Board) Reset() {
	clear(b.cells)
}

// Occupied reports whether the cell at (col, row) is filled. Coordinates must
// be in range; the collision detector bounds-checks before calling.
func (b *Board) Occupied(col, row int) bool {
	return b.cells[row*b.w+col] != 0
}

// Cell returns the type of the piece that locked the cell at (col, row) and
// whether the cell is filled at all.
func (b *Board) Cell(col, row int) (PieceType, bool) {
	v := b.cells[row*b.w+col]
	if v == 0 {
		return 0, false
	}
	return PieceType(v - 1), true
}

// IsRowFull reports whether every cell in the row is filled.
func (b *Board) IsRowFull(row int) bool {
	for col := 0; col < b.w; col++ {
		if b.cells[row*b.w+col] == 0 {
			return false
		}
	}
	return true
}

// Merge writes the shape's occupied cells into the board at the given anchor,
// tagging them with the piece type. Cells that land above the visible board
// (row < 0) are discarded, so a piece locking while partially off the top
// cannot overflow the grid.
func (b *Board) Merge(s Shape, col, row int, t PieceType) {
	for y := 0; y < s.Height(); y++ {
		gy := row + y
		if gy < 0 || gy >= b.h {
			continue
		}
		for x := 0; x < s.Width(); x++ {
			if s.Filled(x, y) {
				b.cells[gy*b.w+col+x] = int8(t) + 1
			}
		}
	}
}

// ClearFullRows removes every full row, shifts the rows above each removed row
// downward, and inserts empty rows at the top. Height is unchanged and the
// relative order of surviving rows is preserved. Returns the number of rows
// removed.
func (b *Board) ClearFullRows() int {
	cleared := 0
	// Walk bottom-up, copying surviving rows down over cleared ones.
	dst := b.h - 1
	for src := b.h - 1; src >= 0; src-- {
		if b.IsRowFull(src) {
			cleared++
			continue
		}
		if dst != src {
			copy(b.cells[dst*b.w:(dst+1)*b.w], b.cells[src*b.w:(src+1)*b.w])
		}
		dst--
	}
	for ; dst >= 0; dst-- {
		clear(b.cells[dst*b.w : (dst+1)*b.w])
	}
	return cleared
}
