package canvas

import (
	"errors"
	"fmt"
)

// ErrUnknownMode is returned when parsing an invalid mode name.
var ErrUnknownMode = errors.New("unknown surface mode")

// Mode is the tool pointer gestures are dispatched to.
type Mode int

// Surface modes.
const (
	Pen Mode = iota
	Eraser
	Select
)

func (m Mode) String() string {
	switch m {
	case Pen:
		return "pen"
	case Eraser:
		return "eraser"
	case Select:
		return "select"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

func (m Mode) valid() bool {
	return m >= Pen && m <= Select
}

// ParseMode returns the mode named s. An empty name is the pen.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "pen":
		return Pen, nil
	case "eraser":
		return Eraser, nil
	case "select", "selector":
		return Select, nil
	}
	return Pen, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// phase is the step of a gesture a pointer event belongs to.
type phase int

const (
	down phase = iota
	move
	up
)

func (ph phase) String() string {
	switch ph {
	case down:
		return "down"
	case move:
		return "move"
	}
	return "up"
}
