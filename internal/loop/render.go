package loop

import (
	"fmt"
	"strings"

	"github.com/kaleaditya28897-linux/picotris/internal/draw"
	"github.com/kaleaditya28897-linux/picotris/internal/game"
)

// Frame layout, in 1-based frame coordinates: HUD on row 1, board border on
// row 2, board rows below it, hint line under the bottom border.
const (
	hudRow         = 1
	borderTopRow   = 2
	boardOriginCol = 2
	boardOriginRow = 3
)

// drawFrame renders one frame, centered in the terminal.
func drawFrame(s *game.Session, scr screen, cw *draw.ChunkWriter, canvas *draw.Canvas, termSize draw.TermSizeFunc) error {
	termW, termH, err := termSize()
	if err != nil {
		return err
	}

	frameW := canvas.Cols()*draw.CellWidth + 2
	frameH := canvas.Rows() + 4
	offCol := (termW - frameW) / 2
	if offCol < 0 {
		offCol = 0
	}
	offRow := (termH - frameH) / 2
	if offRow < 0 {
		offRow = 0
	}
	cw.SetOffset(offCol, offRow)
	cw.WriteString("\033[H\033[2J")

	switch scr {
	case screenTitle:
		drawTitleScreen(cw, frameW)
	default:
		fillCanvas(s, canvas)
		drawBorder(cw, canvas)
		canvas.Render(cw, boardOriginCol, boardOriginRow)
		drawHUD(s, cw, frameW)
		if scr == screenOver {
			drawOverScreen(s, cw, canvas, frameW)
		}
	}
	return cw.Flush()
}

// fillCanvas copies locked board cells and the falling piece into the canvas.
func fillCanvas(s *game.Session, canvas *draw.Canvas) {
	canvas.Clear()
	b := s.Board()
	for row := 0; row < b.Height(); row++ {
		for col := 0; col < b.Width(); col++ {
			if typ, filled := b.Cell(col, row); filled {
				canvas.SetCell(col, row, typ.Color())
			}
		}
	}

	// The active piece is not drawn once the game is over; cells above the
	// visible board are clipped by the canvas bounds check.
	if p := s.Active(); p != nil && !s.Over() {
		for y := 0; y < p.Shape.Height(); y++ {
			for x := 0; x < p.Shape.Width(); x++ {
				if p.Shape.Filled(x, y) {
					canvas.SetCell(p.Col+x, p.Row+y, p.Type.Color())
				}
			}
		}
	}
}

// drawBorder draws the box around the board area.
func drawBorder(cw *draw.ChunkWriter, canvas *draw.Canvas) {
	inner := canvas.Cols() * draw.CellWidth
	horizontal := strings.Repeat("─", inner)

	cw.WriteAt(1, borderTopRow, "┌"+horizontal+"┐")
	for y := 0; y < canvas.Rows(); y++ {
		cw.WriteAt(1, boardOriginRow+y, "│")
		cw.WriteAt(1+inner+1, boardOriginRow+y, "│")
	}
	cw.WriteAt(1, boardOriginRow+canvas.Rows(), "└"+horizontal+"┘")
}

// drawHUD draws the score line above the board and the controls hint below.
func drawHUD(s *game.Session, cw *draw.ChunkWriter, frameW int) {
	hud := hudStyle.Render(fmt.Sprintf("Score %d   Level %d   Lines %d",
		s.Score(), s.Level(), s.Lines()))
	writeCentered(cw, hudRow, frameW, hud)

	hint := hintStyle.Render("←→ move  ↑ rotate  ↓ drop  space slam  q quit")
	writeCentered(cw, boardOriginRow+s.Board().Height()+1, frameW, hint)
}
