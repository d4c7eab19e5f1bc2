// Package perf tracks frame timing with an exponential moving average, the
// numbers behind the console readout and the overlay bar chart.
package perf

import "fmt"

const (
	// smoothing is the EMA weight of the newest sample.
	smoothing = 0.1

	// fallbackFrameTime substitutes for clock glitches where the measured
	// elapsed time is zero or negative.
	fallbackFrameTime = 0.016

	// resetInterval bounds how long the min/max extremes accumulate; after
	// this many frames the sampler reseeds from the next sample.
	resetInterval = 10000
)

// Stats is a point-in-time snapshot of the sampler. Times are in seconds.
type Stats struct {
	Frames int
	Last   float64
	Avg    float64
	Min    float64
	Max    float64
}

// FPS derives the smoothed frame rate from the average frame time.
func (s Stats) FPS() float64 {
	if s.Avg <= 0 {
		return 0
	}
	return 1 / s.Avg
}

func (s Stats) String() string {
	return fmt.Sprintf("%.1f fps (avg %.2f ms, min %.2f, max %.2f)",
		s.FPS(), s.Avg*1000, s.Min*1000, s.Max*1000)
}

// Sampler accumulates per-frame timings. It is not safe for concurrent use;
// the demo records from the render loop only.
type Sampler struct {
	frames int
	last   float64
	avg    float64
	min    float64
	max    float64

	// history is a ring of recent frame times feeding the overlay chart.
	history []float64
	next    int
}

// NewSampler returns a sampler keeping historySize recent frames for the
// overlay; zero disables history.
func NewSampler(historySize int) *Sampler {
	s := &Sampler{}
	if historySize > 0 {
		s.history = make([]float64, historySize)
	}
	return s
}

// Record folds one frame's elapsed time (seconds) into the running stats.
// Non-positive values are replaced by a nominal 16 ms frame.
func (s *Sampler) Record(elapsed float64) {
	if elapsed <= 0 {
		elapsed = fallbackFrameTime
	}

	if s.frames >= resetInterval {
		s.reset()
	}

	s.frames++
	s.last = elapsed
	if s.frames == 1 {
		s.avg = elapsed
		s.min = elapsed
		s.max = elapsed
	} else {
		s.avg = s.avg*(1-smoothing) + elapsed*smoothing
		if elapsed < s.min {
			s.min = elapsed
		}
		if elapsed > s.max {
			s.max = elapsed
		}
	}

	if len(s.history) > 0 {
		s.history[s.next] = elapsed
		s.next = (s.next + 1) % len(s.history)
	}
}

func (s *Sampler) reset() {
	s.frames = 0
	s.avg = 0
	s.min = 0
	s.max = 0
}

// Stats returns the current snapshot.
func (s *Sampler) Stats() Stats {
	return Stats{
		Frames: s.frames,
		Last:   s.last,
		Avg:    s.avg,
		Min:    s.min,
		Max:    s.max,
	}
}

// Frames reports how many samples were recorded since the last reseed.
func (s *Sampler) Frames() int {
	return s.frames
}

// History returns the recent frame times oldest-first, at most as many as
// were recorded. The returned slice is freshly allocated.
func (s *Sampler) History() []float64 {
	if len(s.history) == 0 {
		return nil
	}
	n := s.frames
	if n > len(s.history) {
		n = len(s.history)
	}
	out := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		idx := (s.next - n + i + len(s.history)) % len(s.history)
		out = append(out, s.history[idx])
	}
	return out
}
