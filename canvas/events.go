package canvas

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrUnknownEvent is returned when replaying an event of unknown type.
var ErrUnknownEvent = errors.New("unknown event type")

// Event is an entry of a recorded session: a pointer event or a change of
// settings. Sessions are stored as YAML lists:
//
//   - {type: down, x: 10, y: 12, pressure: 0.4, time: 100}
//   - {type: move, x: 14, y: 15, time: 116}
//   - {type: up, x: 15, y: 19, time: 140}
//   - {type: mode, mode: eraser}
type Event struct {
	Type     string  `yaml:"type"` // down, move, up, lost, hover, tick, mode, color, radius, clear
	X        float64 `yaml:"x,omitempty"`
	Y        float64 `yaml:"y,omitempty"`
	Pressure float64 `yaml:"pressure,omitempty"`
	Button   Button  `yaml:"button,omitempty"`
	Time     int64   `yaml:"time,omitempty"`
	Mode     string  `yaml:"mode,omitempty"`
	Color    string  `yaml:"color,omitempty"`
	Radius   float64 `yaml:"radius,omitempty"`
}

func (ev Event) pointer() PointerEvent {
	return PointerEvent{X: ev.X, Y: ev.Y, Pressure: ev.Pressure, Button: ev.Button, Time: ev.Time}
}

// ReadEvents reads a recorded session in YAML format.
func ReadEvents(r io.Reader) ([]Event, error) {
	var events []Event
	if err := yaml.NewDecoder(r).Decode(&events); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("reading events: %w", err)
	}
	return events, nil
}

// Play replays a recorded session on s. While playing, the event timestamps
// replace the clock of s, so throttling behaves as in the recorded session.
// Events without timestamp happen at the time of their predecessor.
func (s *Surface) Play(events []Event) error {
	s.replaying = true
	defer func() { s.replaying = false }()
	for i, ev := range events {
		if ev.Time != 0 {
			s.eventTime = ev.Time
		}
		pev := ev.pointer()
		pev.Time = s.eventTime
		switch ev.Type {
		case "down":
			s.PointerDown(pev)
		case "move":
			s.PointerMove(pev)
		case "up":
			s.PointerUp(pev)
		case "lost":
			s.LostCapture(pev)
		case "hover":
			s.Hover(pev)
		case "tick":
			s.Tick()
		case "mode":
			m, err := ParseMode(ev.Mode)
			if err != nil {
				return fmt.Errorf("event #%d: %w", i, err)
			}
			s.SetMode(m)
		case "color":
			if err := s.SetPenColor(ev.Color); err != nil {
				return fmt.Errorf("event #%d: %w", i, err)
			}
		case "radius":
			s.SetRadius(ev.Radius)
		case "clear":
			s.Clear()
		default:
			return fmt.Errorf("event #%d: %w: %q", i, ErrUnknownEvent, ev.Type)
		}
	}
	tracer().Infof("replayed %d events, %d strokes", len(events), len(s.strokes))
	return nil
}
