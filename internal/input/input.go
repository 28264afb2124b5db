// Package input decodes terminal bytes into discrete game actions.
package input

import "bufio"

// Action is one logical input event. The engine is agnostic to the concrete
// key encoding; this package owns the mapping.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionDown // soft drop
	ActionRotate
	ActionHardDrop
	ActionConfirm // start / restart
	ActionQuit
)

// Stream delivers decoded actions via a buffered channel fed by a reader
// goroutine, so the game loop can poll without blocking.
type Stream struct {
	ch chan Action
}

// StartStream spawns a goroutine that reads from r and sends decoded actions
// to the stream. The channel is closed when the reader fails (EOF, hangup).
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan Action, 32)}
	go func() {
		for {
			a, err := readAction(r)
			if err != nil {
				close(s.ch)
				return
			}
			if a == ActionNone {
				continue
			}
			select {
			case s.ch <- a:
			default: // buffer full, drop the event
			}
		}
	}()
	return s
}

// Poll returns at most one pending action without blocking. After the input
// source is gone it reports ActionQuit so the loop can shut down.
func (s *Stream) Poll() (Action, bool) {
	select {
	case a, ok := <-s.ch:
		if !ok {
			return ActionQuit, true
		}
		return a, true
	default:
		return ActionNone, false
	}
}

// Drain discards all pending actions, for screen transitions.
func (s *Stream) Drain() {
	for {
		select {
		case _, ok := <-s.ch:
			if !ok {
				return
			}
		default:
			return
		}
	}
}

// readAction blocks until one logical action has been decoded from r.
func readAction(r *bufio.Reader) (Action, error) {
	b, err := r.ReadByte()
	if err != nil {
		return ActionNone, err
	}
	if b != '\x1b' {
		return decodeByte(b), nil
	}

	// Escape: a CSI sequence if more bytes are already buffered, otherwise a
	// lone ESC keypress.
	if r.Buffered() == 0 {
		return ActionQuit, nil
	}
	next, err := r.ReadByte()
	if err != nil {
		return ActionNone, err
	}
	if next != '[' {
		return decodeByte(next), nil
	}
	code, err := r.ReadByte()
	if err != nil {
		return ActionNone, err
	}
	switch code {
	case 'A':
		return ActionRotate, nil
	case 'B':
		return ActionDown, nil
	case 'C':
		return ActionRight, nil
	case 'D':
		return ActionLeft, nil
	}
	return ActionNone, nil
}

// decodeByte maps a single key byte to an action.
func decodeByte(b byte) Action {
	switch b {
	case 'a', 'A', 'h', 'H':
		return ActionLeft
	case 'd', 'D', 'l', 'L':
		return ActionRight
	case 's', 'S', 'j', 'J':
		return ActionDown
	case 'w', 'W', 'k', 'K':
		return ActionRotate
	case ' ':
		return ActionHardDrop
	case '\n', '\r':
		return ActionConfirm
	case 'q', 'Q', '\x03': // ctrl-c
		return ActionQuit
	}
	return ActionNone
}
