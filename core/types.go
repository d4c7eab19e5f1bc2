package core

import (
	"parallax-demo/math"
)

type Color struct {
	R, G, B, A float32
}

var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
)

// Vertex is the layout of the display surface: position, texture coordinate,
// normal, and a four-component tangent (w holds the bitangent handedness).
type Vertex struct {
	Position math.Vec3
	UV       math.Vec2
	Normal   math.Vec3
	Tangent  math.Vec4
}

// MeshData is CPU-side geometry ready for GPU upload.
type MeshData struct {
	Vertices []Vertex
	Indices  []uint32
}

// Rect is an axis-aligned screen-space rectangle in pixels, used for
// viewport and scissor regions. Origin is the lower-left corner, matching
// OpenGL window coordinates.
type Rect struct {
	X, Y, Width, Height int32
}
