package scene

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"parallax-demo/core"
	"parallax-demo/math"
)

func TestLightClampBounds(t *testing.T) {
	l := NewLight()

	l.Position = math.Vec3{X: -50, Y: 50, Z: 0}
	l.Clamp()
	assert.Equal(t, math.Vec3{X: -10, Y: 10, Z: 2}, l.Position)

	l.Position = math.Vec3{X: 3, Y: -4, Z: 8}
	l.Clamp()
	assert.Equal(t, math.Vec3{X: 3, Y: -4, Z: 8}, l.Position, "in-range position must pass through")

	l.Position = math.Vec3{X: 0, Y: 0, Z: 100}
	l.Clamp()
	assert.Equal(t, float32(20), l.Position.Z)
}

func TestLightMoveScaleAndInversion(t *testing.T) {
	l := NewLight()
	start := l.Position

	l.Move(10, 10)
	assert.InDelta(t, start.X+1, l.Position.X, 1e-6)
	assert.InDelta(t, start.Y-1, l.Position.Y, 1e-6, "screen y grows downward, world y up")
	assert.Equal(t, start.Z, l.Position.Z)
}

func TestLightMoveStaysInBounds(t *testing.T) {
	l := NewLight()
	for i := 0; i < 500; i++ {
		l.Move(37, -23)
	}
	assert.LessOrEqual(t, l.Position.X, float32(10))
	assert.LessOrEqual(t, l.Position.Y, float32(10))
	assert.GreaterOrEqual(t, l.Position.X, float32(-10))
	assert.GreaterOrEqual(t, l.Position.Y, float32(-10))
}

func TestSessionDefaults(t *testing.T) {
	s := NewSession()

	assert.Equal(t, ShaderSteep, s.Selected)
	assert.Equal(t, float32(-20), s.Camera.Pitch)
	assert.Equal(t, math.Vec3{X: 0, Y: 0, Z: 35}, s.Camera.Eye)

	f := s.Features
	assert.True(t, f.Multisampling)
	assert.True(t, f.SelfShadowing)
	assert.True(t, f.ParallaxEnabled)
	assert.False(t, f.WireframeMode)
	assert.False(t, f.AutoRotate)
}

func TestSessionSelectFallsBackToSteep(t *testing.T) {
	s := NewSession()
	s.SetLoaded([ShaderKindCount]bool{ShaderBasic: true, ShaderSteep: true})

	assert.Equal(t, ShaderSteep, s.Selected, "enhanced missing, startup falls back")

	s.Select(ShaderPBR)
	assert.Equal(t, ShaderSteep, s.Selected)

	s.Select(ShaderBasic)
	assert.Equal(t, ShaderBasic, s.Selected)
}

func TestSessionSetLoadedPrefersEnhanced(t *testing.T) {
	s := NewSession()
	var all [ShaderKindCount]bool
	for i := range all {
		all[i] = true
	}
	s.SetLoaded(all)
	assert.Equal(t, ShaderEnhanced, s.Selected)
}

func TestSessionKeyToggles(t *testing.T) {
	s := NewSession()
	var all [ShaderKindCount]bool
	for i := range all {
		all[i] = true
	}
	s.SetLoaded(all)

	cases := []struct {
		key  rune
		flag func() bool
	}{
		{'m', func() bool { return s.Features.Multisampling }},
		{'b', func() bool { return s.Features.Bumpy }},
		{'s', func() bool { return s.Features.SelfShadowing }},
		{'p', func() bool { return s.Features.ParallaxEnabled }},
		{'1', func() bool { return s.Features.PBRShading }},
		{'0', func() bool { return s.Features.AnisotropicFiltering }},
		{'r', func() bool { return s.Features.ReliefMapping }},
		{'w', func() bool { return s.Features.WireframeMode }},
		{' ', func() bool { return s.Features.AutoRotate }},
	}
	for _, tc := range cases {
		before := tc.flag()
		action := s.HandleKey(tc.key)
		assert.Equal(t, ActionNone, action, "key %q", tc.key)
		assert.Equal(t, !before, tc.flag(), "key %q must toggle", tc.key)
		s.HandleKey(tc.key)
		assert.Equal(t, before, tc.flag(), "key %q must toggle back", tc.key)
	}
}

func TestSessionKeyActions(t *testing.T) {
	s := NewSession()

	assert.Equal(t, ActionQuit, s.HandleKey('q'))
	assert.Equal(t, ActionToggleFullscreen, s.HandleKey('f'))
	assert.Equal(t, ActionToggleHelp, s.HandleKey('h'))
	assert.True(t, s.Features.ShowHelp)
	assert.Equal(t, ActionNone, s.HandleKey('z'), "unbound key is a no-op")

	assert.Equal(t, ActionQuit, s.HandleSpecialKey(core.KeyEscape))
	assert.Equal(t, ActionNone, s.HandleSpecialKey(core.KeyTab))
	assert.True(t, s.Features.ShowPerformance)
}

func TestSessionShaderKeys(t *testing.T) {
	s := NewSession()
	var all [ShaderKindCount]bool
	for i := range all {
		all[i] = true
	}
	s.SetLoaded(all)

	s.HandleKey('j')
	assert.Equal(t, ShaderBasic, s.Selected)
	s.HandleKey('u')
	assert.Equal(t, ShaderPBR, s.Selected)
	s.HandleKey('e')
	assert.Equal(t, ShaderEnhanced, s.Selected)
	s.HandleKey('i')
	assert.Equal(t, ShaderSteep, s.Selected)
}

func TestSessionMouseDrag(t *testing.T) {
	s := NewSession()

	// Left drag orbits the camera, one degree per pixel.
	s.MouseButton(core.MouseButtonLeft, true, 100, 100)
	s.MouseMove(140, 80)
	assert.InDelta(t, 40, s.Camera.Yaw, 1e-4)
	assert.InDelta(t, -40, s.Camera.Pitch, 1e-4)

	// Deltas are relative to the previous event, not the press.
	s.MouseMove(150, 80)
	assert.InDelta(t, 50, s.Camera.Yaw, 1e-4)

	s.MouseButton(core.MouseButtonLeft, false, 150, 80)
	s.MouseMove(500, 500)
	assert.InDelta(t, 50, s.Camera.Yaw, 1e-4, "motion without a held button is ignored")

	// Right drag moves the light.
	lightStart := s.Light.Position
	s.MouseButton(core.MouseButtonRight, true, 0, 0)
	s.MouseMove(20, -20)
	assert.InDelta(t, lightStart.X+2, s.Light.Position.X, 1e-4)
	assert.InDelta(t, lightStart.Y+2, s.Light.Position.Y, 1e-4)
}

func TestSessionTick(t *testing.T) {
	s := NewSession()
	yaw := s.Camera.Yaw

	s.Tick()
	assert.Equal(t, yaw, s.Camera.Yaw, "auto-rotate starts disabled")

	s.HandleKey(' ')
	s.Tick()
	s.Tick()
	assert.InDelta(t, yaw+1.0, s.Camera.Yaw, 1e-4)

	s.Features.PauseAnimation = true
	s.Tick()
	assert.InDelta(t, yaw+1.0, s.Camera.Yaw, 1e-4)

	// Tick re-clamps the light after external edits.
	s.Light.Position.Z = -5
	s.Tick()
	assert.Equal(t, float32(2), s.Light.Position.Z)
}

func TestShaderKindString(t *testing.T) {
	assert.Equal(t, "basic", ShaderBasic.String())
	assert.Equal(t, "steep", ShaderSteep.String())
	assert.Equal(t, "enhanced", ShaderEnhanced.String())
	assert.Equal(t, "pbr", ShaderPBR.String())
}

func TestNewQuadLayout(t *testing.T) {
	q := NewQuad()
	require.Len(t, q.Vertices, 4)
	require.Len(t, q.Indices, 6)

	for _, v := range q.Vertices {
		assert.Equal(t, float32(4), v.Position.Z)
		assert.InDelta(t, 7, math.Abs(v.Position.X), 1e-6)
		assert.InDelta(t, 7, math.Abs(v.Position.Y), 1e-6)
		assert.Equal(t, math.Vec3{Z: 1}, v.Normal)
		assert.Equal(t, math.Vec4{X: 1, W: 1}, v.Tangent)
	}
}

func TestComputeTangentsQuad(t *testing.T) {
	q := NewQuad()
	for i := range q.Vertices {
		q.Vertices[i].Tangent = math.Vec4{}
	}
	ComputeTangents(q)

	for i, v := range q.Vertices {
		assert.InDelta(t, 1, v.Tangent.X, 1e-5, "vertex %d", i)
		assert.InDelta(t, 0, v.Tangent.Y, 1e-5, "vertex %d", i)
		assert.InDelta(t, 0, v.Tangent.Z, 1e-5, "vertex %d", i)
		assert.Equal(t, float32(1), v.Tangent.W, "vertex %d", i)
	}
}

func TestNewLightMarker(t *testing.T) {
	m := NewLightMarker(0.5, 8, 12)
	require.NotEmpty(t, m.Vertices)
	require.NotEmpty(t, m.Indices)
	assert.Zero(t, len(m.Indices)%3)

	for _, v := range m.Vertices {
		assert.InDelta(t, 0.5, v.Position.Length(), 1e-4)
		assert.InDelta(t, 1, v.Normal.Length(), 1e-4)
	}
	for _, idx := range m.Indices {
		assert.Less(t, int(idx), len(m.Vertices))
	}
}

func TestNewSolidTexture(t *testing.T) {
	tex := NewSolidTexture("probe", 10, 20, 30, 255)
	assert.Equal(t, 1, tex.Width)
	assert.Equal(t, 1, tex.Height)
	assert.Equal(t, []byte{10, 20, 30, 255}, tex.Pixels)
}

func TestLoadTextureBMP(t *testing.T) {
	// 2x1 image: red on the top row's left, blue on the right.
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(1, 0, color.RGBA{B: 255, A: 255})
	img.SetRGBA(0, 1, color.RGBA{G: 255, A: 255})
	img.SetRGBA(1, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	path := filepath.Join(t.TempDir(), "probe.bmp")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, bmp.Encode(f, img))
	require.NoError(t, f.Close())

	tex, err := LoadTexture(path)
	require.NoError(t, err)
	assert.Equal(t, 2, tex.Width)
	assert.Equal(t, 2, tex.Height)

	// Rows are flipped at load, so the image's bottom row comes first.
	assert.Equal(t, []byte{0, 255, 0, 255}, tex.Pixels[0:4])
	assert.Equal(t, []byte{255, 255, 255, 255}, tex.Pixels[4:8])
	assert.Equal(t, []byte{255, 0, 0, 255}, tex.Pixels[8:12])
	assert.Equal(t, []byte{0, 0, 255, 255}, tex.Pixels[12:16])
}

func TestLoadTextureMissingFile(t *testing.T) {
	_, err := LoadTexture("does-not-exist.bmp")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.bmp")
}

func TestCameraModelViewMatrix(t *testing.T) {
	c := NewCamera()
	c.Yaw, c.Pitch = 0, 0

	mv := c.ModelViewMatrix()
	p := mv.MulPoint(math.Vec3{})
	assert.InDelta(t, 0, p.X, 1e-4)
	assert.InDelta(t, 0, p.Y, 1e-4)
	assert.InDelta(t, -35, p.Z, 1e-4, "origin sits 35 units down the view axis")
}
