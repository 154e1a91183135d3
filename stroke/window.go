package stroke

import (
	"github.com/npillmayer/ink"
	"github.com/npillmayer/ink/bezier"
)

// window is a fixed-capacity ring buffer over the smoothed samples still
// needed for fragment construction. A fragment needs 4 consecutive samples.
type window struct {
	buf  [4]ink.Sample
	head int // index of the oldest sample
	n    int
}

func (w *window) len() int {
	return w.n
}

func (w *window) reset() {
	w.head, w.n = 0, 0
}

// at returns the i-th oldest sample.
func (w *window) at(i int) ink.Sample {
	return w.buf[(w.head+i)%len(w.buf)]
}

func (w *window) last() ink.Sample {
	return w.at(w.n - 1)
}

// push appends s. The caller has to drop a sample before pushing onto a
// full window.
func (w *window) push(s ink.Sample) {
	if w.n == len(w.buf) {
		panic("stroke: push onto full window")
	}
	w.buf[(w.head+w.n)%len(w.buf)] = s
	w.n++
}

// pushFront inserts s as the oldest sample.
func (w *window) pushFront(s ink.Sample) {
	if w.n == len(w.buf) {
		panic("stroke: push onto full window")
	}
	w.head = (w.head + len(w.buf) - 1) % len(w.buf)
	w.buf[w.head] = s
	w.n++
}

func (w *window) dropFirst() {
	if w.n == 0 {
		return
	}
	w.head = (w.head + 1) % len(w.buf)
	w.n--
}

// fragment builds the fragment spanning the middle samples of a full window.
func (w *window) fragment() bezier.Fragment {
	return bezier.From4(w.at(0), w.at(1), w.at(2), w.at(3))
}
