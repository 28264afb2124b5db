// Package loop runs the single-threaded game loop: one tick handles at most
// one input action, advances the auto-drop timer, and redraws the frame.
package loop

import (
	"bufio"
	"io"
	"time"

	"github.com/kaleaditya28897-linux/picotris/internal/draw"
	"github.com/kaleaditya28897-linux/picotris/internal/game"
	"github.com/kaleaditya28897-linux/picotris/internal/input"
)

// screen is the current UI phase.
type screen int

const (
	screenTitle screen = iota
	screenPlaying
	screenOver
)

// Options configures a game loop run.
type Options struct {
	// TermSize reports the terminal dimensions. Nil means the local terminal.
	TermSize draw.TermSizeFunc
}

// Run drives the game until the player quits or the input source goes away.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	termSize := opts.TermSize
	if termSize == nil {
		termSize = draw.DefaultTermSizeFunc
	}

	boardW, boardH := boardSize()
	session := game.NewSession(boardW, boardH)
	stream := input.StartStream(r)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	cw := draw.NewChunkWriter(w, 0, 0)
	canvas := draw.NewCanvas(boardW, boardH)

	scr := screenTitle
	lastDrop := time.Now()

	for {
		frameStart := time.Now()

		// ===== INPUT PHASE ===== at most one pending action per tick.
		action, _ := stream.Poll()
		if action == input.ActionQuit {
			draw.ClearScreen(w)
			return nil
		}

		// ===== UPDATE PHASE =====
		switch scr {
		case screenTitle:
			if action != input.ActionNone {
				stream.Drain()
				session.Reset()
				scr = screenPlaying
				lastDrop = time.Now()
			}

		case screenPlaying:
			dispatch(session, action)

			// Auto drop against the monotonic clock.
			if !session.Over() && time.Since(lastDrop) >= session.DropInterval() {
				session.MoveDown()
				lastDrop = time.Now()
			}
			if session.Over() {
				stream.Drain()
				scr = screenOver
			}

		case screenOver:
			if action == input.ActionConfirm {
				session.Reset()
				scr = screenPlaying
				lastDrop = time.Now()
			}
		}

		// ===== DRAW PHASE =====
		if err := drawFrame(session, scr, cw, canvas, termSize); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		if elapsed := time.Since(frameStart); elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}
}

// dispatch translates one input action into a session call.
func dispatch(s *game.Session, action input.Action) {
	switch action {
	case input.ActionLeft:
		s.MoveHorizontal(-1)
	case input.ActionRight:
		s.MoveHorizontal(1)
	case input.ActionRotate:
		s.Rotate()
	case input.ActionDown:
		s.SoftDrop()
	case input.ActionHardDrop:
		s.HardDrop()
	}
}
