package loop

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/kaleaditya28897-linux/picotris/internal/draw"
	"github.com/kaleaditya28897-linux/picotris/internal/game"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FFFF"))
	hudStyle    = lipgloss.NewStyle().Bold(true)
	hintStyle   = lipgloss.NewStyle().Faint(true)
	overStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF0000"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))
)

// writeCentered writes s centered within frameW on the given frame row.
func writeCentered(cw *draw.ChunkWriter, row, frameW int, s string) {
	col := (frameW-lipgloss.Width(s))/2 + 1
	if col < 1 {
		col = 1
	}
	cw.WriteAt(col, row, s)
}

// drawTitleScreen shows the instructions before the first game.
func drawTitleScreen(cw *draw.ChunkWriter, frameW int) {
	row := 3
	writeCentered(cw, row, frameW, titleStyle.Render("T E T R I S"))
	row += 2
	for _, line := range []string{
		"Arrows: Move / Rotate",
		"Down: Soft drop",
		"Space: Hard drop",
		"Complete lines to score",
	} {
		writeCentered(cw, row, frameW, line)
		row++
	}
	row += 2
	writeCentered(cw, row, frameW, promptStyle.Render("Press any key to start"))
}

// drawOverScreen overlays the game-over prompt on the board.
func drawOverScreen(s *game.Session, cw *draw.ChunkWriter, canvas *draw.Canvas, frameW int) {
	mid := boardOriginRow + canvas.Rows()/2
	writeCentered(cw, mid-1, frameW, overStyle.Render("GAME OVER"))
	writeCentered(cw, mid+1, frameW, promptStyle.Render(fmt.Sprintf("Score: %d", s.Score())))
	writeCentered(cw, mid+3, frameW, promptStyle.Render("ENTER restart  Q quit"))
}
