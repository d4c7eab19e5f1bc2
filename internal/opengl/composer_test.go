package opengl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitRegionsWideWindow(t *testing.T) {
	// Wider than 2:1, height limits the pane size.
	left, right := SplitRegions(1400, 600)

	assert.Equal(t, int32(600), left.Width)
	assert.Equal(t, int32(600), left.Height)
	assert.Equal(t, left.Width, right.Width)

	assert.Equal(t, int32(100), left.X, "left pane ends at the window center")
	assert.Equal(t, int32(700), right.X, "right pane starts at the window center")
	assert.Equal(t, int32(0), left.Y)
	assert.Equal(t, int32(0), right.Y)
}

func TestSplitRegionsTallWindow(t *testing.T) {
	// Taller than 2:1, half the width limits the pane size.
	left, right := SplitRegions(800, 900)

	assert.Equal(t, int32(400), left.Width)
	assert.Equal(t, int32(400), right.Width)
	assert.Equal(t, int32(0), left.X)
	assert.Equal(t, int32(400), right.X)
}

func TestSplitRegionsPanesMeetAtCenter(t *testing.T) {
	for _, dim := range [][2]int{{1400, 700}, {1920, 1080}, {640, 480}, {997, 613}} {
		left, right := SplitRegions(dim[0], dim[1])

		assert.Equal(t, left.X+left.Width, right.X, "panes %v must be adjacent", dim)
		assert.Equal(t, int32(dim[0]/2), right.X, "seam %v sits at the center", dim)
		assert.Equal(t, left.Width, left.Height, "panes %v are square", dim)
		assert.Equal(t, left.Width, right.Width)
		assert.LessOrEqual(t, int(right.X+right.Width), dim[0])
		assert.LessOrEqual(t, int(left.Height), dim[1])
		assert.GreaterOrEqual(t, int(left.X), 0)
	}
}

func TestSplitRegionsDegenerate(t *testing.T) {
	left, right := SplitRegions(0, 0)
	assert.Equal(t, int32(0), left.Width)
	assert.Equal(t, int32(0), right.Width)
}
