package loop

import (
	"time"

	"github.com/kaleaditya28897-linux/picotris/internal/config"
)

// Frame timing. The drop cadence is measured against the monotonic clock, not
// the frame sleep, so frame jitter does not accumulate into drop drift.
const (
	targetFPS       = 30
	targetFrameTime = time.Second / targetFPS
)

// Reference board configuration. Width and height can be overridden with
// TETRIS_WIDTH / TETRIS_HEIGHT.
const (
	defaultBoardWidth  = 10
	defaultBoardHeight = 20

	// minBoardWidth must fit the widest piece template.
	minBoardWidth  = 4
	minBoardHeight = 4
)

// boardSize returns the configured board dimensions, floored at the minimums.
func boardSize() (w, h int) {
	w = config.GetEnvInt("TETRIS_WIDTH", defaultBoardWidth)
	h = config.GetEnvInt("TETRIS_HEIGHT", defaultBoardHeight)
	if w < minBoardWidth {
		w = defaultBoardWidth
	}
	if h < minBoardHeight {
		h = defaultBoardHeight
	}
	return w, h
}
