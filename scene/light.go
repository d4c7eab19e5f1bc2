package scene

import (
	"parallax-demo/core"
	"parallax-demo/math"
)

type LightType int

const (
	LightTypePoint LightType = iota
	LightTypeDirectional
	LightTypeSpot
)

// Light is the demo's single movable light source.
type Light struct {
	Position  math.Vec3
	Color     core.Color
	Intensity float32
	Type      LightType
	SpotAngle float32
	Falloff   float32
}

// Light position bounds: the light may roam the plane in front of the quad
// but must stay inside the visible scene.
var (
	lightMin = math.Vec3{X: -10, Y: -10, Z: 2}
	lightMax = math.Vec3{X: 10, Y: 10, Z: 20}
)

// NewLight returns the default warm point light hovering in front of the
// display surface.
func NewLight() *Light {
	return &Light{
		Position:  math.Vec3{X: 0, Y: 0, Z: 8},
		Color:     core.Color{R: 1.0, G: 1.0, B: 0.65, A: 1},
		Intensity: 1.0,
		Type:      LightTypePoint,
		SpotAngle: 45,
		Falloff:   1,
	}
}

// Clamp pulls the position back inside the scene bounds. Called after every
// mutation and once per composed frame, so the light can never escape the
// view no matter how far a drag overshoots.
func (l *Light) Clamp() {
	l.Position = l.Position.Clamp(lightMin, lightMax)
}

// Move offsets the light in the XY plane by a mouse-drag delta scaled to
// scene units, with screen Y inverted, then clamps.
func (l *Light) Move(dx, dy float32) {
	const scale = 0.1
	l.Position.X += dx * scale
	l.Position.Y -= dy * scale
	l.Clamp()
}
