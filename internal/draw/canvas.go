package draw

// CellWidth is how many terminal columns one canvas cell occupies. Two
// columns per cell keeps cells roughly square in most fonts.
const CellWidth = 2

// Canvas is a buffer of colored cells. Each cell is either empty or holds a
// 24-bit RGB color; Render emits the whole buffer as true-color blocks. The
// cell grid never resizes; centering is the ChunkWriter offset's job.
type Canvas struct {
	cols, rows int
	cells      []int32 // -1 = empty, otherwise 0xRRGGBB
}

// NewCanvas creates an empty canvas of the given cell dimensions.
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{
		cols:  cols,
		rows:  rows,
		cells: make([]int32, cols*rows),
	}
	c.Clear()
	return c
}

func (c *Canvas) Cols() int { return c.cols }

func (c *Canvas) Rows() int { return c.rows }

// Clear empties every cell.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = -1
	}
}

// SetCell fills the cell at (x, y) with an RGB color. Out-of-range
// coordinates are ignored.
func (c *Canvas) SetCell(x, y int, rgb uint32) {
	if x < 0 || x >= c.cols || y < 0 || y >= c.rows {
		return
	}
	c.cells[y*c.cols+x] = int32(rgb)
}

// Cell returns the color at (x, y) and whether the cell is filled.
func (c *Canvas) Cell(x, y int) (uint32, bool) {
	v := c.cells[y*c.cols+x]
	if v < 0 {
		return 0, false
	}
	return uint32(v), true
}

// Render writes the canvas to cw with its top-left cell at the 1-based frame
// position (originCol, originRow). Color sequences are only emitted when the
// color changes along a row.
func (c *Canvas) Render(cw *ChunkWriter, originCol, originRow int) {
	for y := 0; y < c.rows; y++ {
		cw.MoveCursor(originCol, originRow+y)
		last := int32(-2) // force the first cell to set its style
		for x := 0; x < c.cols; x++ {
			v := c.cells[y*c.cols+x]
			if v != last {
				if v < 0 {
					cw.ResetStyle()
				} else {
					cw.SetBackground(uint32(v))
				}
				last = v
			}
			for i := 0; i < CellWidth; i++ {
				cw.WriteRune(' ')
			}
		}
		cw.ResetStyle()
	}
}
