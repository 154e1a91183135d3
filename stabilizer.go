package ink

import "math"

// Smooth averages x, y, pressure and time of the samples in the window
// [start, start+n), clipped to the end of samples. For n ≤ 1 samples[start] is
// returned unchanged.
//
// start has to be a valid index into samples; this is not checked.
func Smooth(samples []Sample, start, n int) Sample {
	if n <= 1 {
		return samples[start]
	}
	end := min(start+n, len(samples))
	var x, y, p, t float64
	for _, s := range samples[start:end] {
		x += s.X
		y += s.Y
		p += s.Pressure
		t += float64(s.Time)
	}
	cnt := float64(end - start)
	return Sample{
		X:        x / cnt,
		Y:        y / cnt,
		Pressure: p / cnt,
		Time:     int64(math.Round(t / cnt)),
	}
}
