package ink

import (
	"fmt"
	"math"
	"time"
)

// DefaultPressure is the pressure assumed for input devices which do not
// report one.
const DefaultPressure = 0.5

// TaperPressure is the artificially low pressure of the synthetic sample
// appended on pointer release. It tapers a stroke's end to a point.
const TaperPressure = 0.005

// Sample is a captured input point: position, pen pressure in [0…1] and a
// monotonic timestamp in milliseconds. Samples are values and are never
// changed after creation; operations return modified copies.
type Sample struct {
	X, Y     float64
	Pressure float64
	Time     int64
}

// Pretty Stringer for samples.
func (s Sample) String() string {
	return fmt.Sprintf("(%g,%g|p=%g,t=%d)", s.X, s.Y, s.Pressure, s.Time)
}

// Pair returns the position of s.
func (s Sample) Pair() Pair {
	return P(s.X, s.Y)
}

// At returns a copy of s moved to position p.
func (s Sample) At(p Pair) Sample {
	s.X, s.Y = p.X(), p.Y()
	return s
}

// WithPressure returns a copy of s with pressure p.
func (s Sample) WithPressure(p float64) Sample {
	s.Pressure = p
	return s
}

// Equal compares positions only; pressure and time are ignored.
func (s Sample) Equal(o Sample) bool {
	return s.X == o.X && s.Y == o.Y
}

// Distance is the euclidian distance between the positions of s and o.
func (s Sample) Distance(o Sample) float64 {
	dx, dy := s.X-o.X, s.Y-o.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// VelocityFrom returns the velocity in pixels per millisecond between a
// start sample and s. Samples with identical timestamps have velocity 1.
func (s Sample) VelocityFrom(start Sample) float64 {
	if s.Time == start.Time {
		return 1
	}
	return s.Distance(start) / float64(s.Time-start.Time)
}

// Transformed returns a copy of s with its position transformed by m.
func (s Sample) Transformed(m AT) Sample {
	return s.At(m.Transform(s.Pair()))
}

// --- Configuration ---------------------------------------------------------

// Clock delivers timestamps in milliseconds.
type Clock func() int64

// WallClock is a clock reading the system time.
func WallClock() int64 {
	return time.Now().UnixMilli()
}

// Config holds the defaults applied when creating samples from device input.
// The zero value is not usable; start from DefaultConfig.
type Config struct {
	DefaultPressure float64 // pressure for devices without pressure support
	Clock           Clock   // time source for samples without timestamp
}

// DefaultConfig returns a configuration with pressure 0.5 and the wall clock.
func DefaultConfig() Config {
	return Config{
		DefaultPressure: DefaultPressure,
		Clock:           WallClock,
	}
}

// NewSample creates a sample at (x,y), timestamped by the configured clock.
// Pressure values ≤ 0 (or NaN) are treated as "not reported".
func (cfg Config) NewSample(x, y, pressure float64) Sample {
	return cfg.SampleAt(x, y, pressure, 0)
}

// SampleAt creates a sample with an explicit timestamp. A timestamp of 0 is
// replaced by a reading of the configured clock.
func (cfg Config) SampleAt(x, y, pressure float64, t int64) Sample {
	if pressure <= 0 || math.IsNaN(pressure) {
		pressure = cfg.DefaultPressure
	}
	if t == 0 {
		t = cfg.now()
	}
	return Sample{X: x, Y: y, Pressure: pressure, Time: t}
}

func (cfg Config) now() int64 {
	if cfg.Clock == nil {
		return WallClock()
	}
	return cfg.Clock()
}
