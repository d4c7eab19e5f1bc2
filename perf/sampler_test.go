package perf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstSampleSeedsStats(t *testing.T) {
	s := NewSampler(0)
	s.Record(0.020)

	st := s.Stats()
	assert.Equal(t, 1, st.Frames)
	assert.Equal(t, 0.020, st.Avg)
	assert.Equal(t, 0.020, st.Min)
	assert.Equal(t, 0.020, st.Max)
	assert.InDelta(t, 50, st.FPS(), 1e-9)
}

func TestExponentialMovingAverage(t *testing.T) {
	s := NewSampler(0)
	s.Record(0.010)
	s.Record(0.020)

	// 0.010*0.9 + 0.020*0.1
	assert.InDelta(t, 0.011, s.Stats().Avg, 1e-12)

	s.Record(0.020)
	assert.InDelta(t, 0.011*0.9+0.020*0.1, s.Stats().Avg, 1e-12)
}

func TestMinMaxTracking(t *testing.T) {
	s := NewSampler(0)
	for _, ft := range []float64{0.016, 0.008, 0.040, 0.016} {
		s.Record(ft)
	}
	st := s.Stats()
	assert.Equal(t, 0.008, st.Min)
	assert.Equal(t, 0.040, st.Max)
	assert.Equal(t, 0.016, st.Last)
}

func TestNonPositiveElapsedUsesFallback(t *testing.T) {
	s := NewSampler(0)
	s.Record(0)
	assert.Equal(t, 0.016, s.Stats().Last)

	s.Record(-1)
	assert.Equal(t, 0.016, s.Stats().Last)
	assert.Equal(t, 0.016, s.Stats().Min)
	assert.Equal(t, 0.016, s.Stats().Max)
}

func TestReseedAfterResetInterval(t *testing.T) {
	s := NewSampler(0)
	s.Record(0.001) // extreme min that must not survive the reseed
	for i := 1; i < resetInterval; i++ {
		s.Record(0.016)
	}
	require.Equal(t, resetInterval, s.Frames())

	s.Record(0.032)
	st := s.Stats()
	assert.Equal(t, 1, st.Frames, "counter restarts on the sample after the interval")
	assert.Equal(t, 0.032, st.Avg)
	assert.Equal(t, 0.032, st.Min)
	assert.Equal(t, 0.032, st.Max)
}

func TestHistoryRing(t *testing.T) {
	s := NewSampler(3)
	assert.Empty(t, s.History())

	s.Record(0.001)
	s.Record(0.002)
	assert.Equal(t, []float64{0.001, 0.002}, s.History())

	s.Record(0.003)
	s.Record(0.004)
	assert.Equal(t, []float64{0.002, 0.003, 0.004}, s.History(), "oldest entry is evicted")
}

func TestStatsString(t *testing.T) {
	s := NewSampler(0)
	s.Record(0.020)
	assert.Equal(t, "50.0 fps (avg 20.00 ms, min 20.00, max 20.00)", s.Stats().String())
}
