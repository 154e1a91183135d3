package stroke

import (
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/ink"
	"gopkg.in/yaml.v3"
)

// ErrEmptyRecord is returned when replaying a record without points.
var ErrEmptyRecord = errors.New("stroke record has no points")

// Point is the persisted form of a raw sample.
type Point struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Pressure float64 `yaml:"pressure"`
	Time     int64   `yaml:"time"`
}

// Record is the persisted form of a stroke. Only raw samples are stored;
// smoothed samples are derived again on replay.
type Record struct {
	ID     int64   `yaml:"id"`
	Color  string  `yaml:"color"`
	Radius float64 `yaml:"radius"`
	Hidden bool    `yaml:"hidden,omitempty"`
	Points []Point `yaml:"points"`
}

// Record returns the persisted form of st.
func (st *Stroke) Record() Record {
	rec := Record{
		ID:     st.ID,
		Color:  st.Color,
		Radius: st.Radius,
		Hidden: st.Hidden,
		Points: make([]Point, len(st.raw)),
	}
	for i, s := range st.raw {
		rec.Points[i] = Point{X: s.X, Y: s.Y, Pressure: s.Pressure, Time: s.Time}
	}
	return rec
}

// Records returns the persisted form of a list of strokes, in order.
func Records(strokes []*Stroke) []Record {
	recs := make([]Record, len(strokes))
	for i, st := range strokes {
		recs[i] = st.Record()
	}
	return recs
}

// Save writes strokes as a YAML list of records.
func Save(w io.Writer, strokes []*Stroke) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Records(strokes)); err != nil {
		return fmt.Errorf("saving strokes: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("saving strokes: %w", err)
	}
	return nil
}

// Load reads a YAML list of records and replays each of them.
// An empty input yields an empty list.
func Load(r io.Reader) ([]*Stroke, error) {
	var recs []Record
	if err := yaml.NewDecoder(r).Decode(&recs); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("loading strokes: %w", err)
	}
	strokes := make([]*Stroke, 0, len(recs))
	for i, rec := range recs {
		st, err := Replay(rec)
		if err != nil {
			return strokes, fmt.Errorf("loading stroke #%d: %w", i, err)
		}
		strokes = append(strokes, st)
	}
	tracer().Infof("loaded %d strokes", len(strokes))
	return strokes, nil
}

// Replay rebuilds a stroke from its record by pushing the raw samples
// through an engine. The result has the same smoothed samples as the
// stroke the record was taken from, but a new ID.
func Replay(rec Record) (*Stroke, error) {
	if len(rec.Points) == 0 {
		return nil, ErrEmptyRecord
	}
	st := New(rec.Color, rec.Radius)
	raw := make([]ink.Sample, len(rec.Points))
	for i, p := range rec.Points {
		raw[i] = ink.Sample{X: p.X, Y: p.Y, Pressure: p.Pressure, Time: p.Time}
	}
	st.recapture(raw)
	st.Hidden = rec.Hidden
	tracer().Debugf("replayed record #%d as %s", rec.ID, st)
	return st, nil
}
