package game

// Collides reports whether the shape placed at anchor (col, row) overlaps the
// board walls, the floor, or an occupied cell. Cells above the visible board
// (absolute row < 0) are exempt from the occupancy check but still must lie
// within the horizontal bounds, which lets pieces spawn partially off the top.
func Collides(b *Board, s Shape, col, row int) bool {
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if !s.Filled(x, y) {
				continue
			}
			gx := col + x
			gy := row + y
			if gx < 0 || gx >= b.Width() || gy >= b.Height() {
				return true
			}
			if gy >= 0 && b.Occupied(gx, gy) {
				return true
			}
		}
	}
	return false
}
