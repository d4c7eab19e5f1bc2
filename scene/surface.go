package scene

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"parallax-demo/core"
	"parallax-demo/math"
)

// NewQuad builds the default display surface: a 14x14 plane at z=4 facing
// the camera, with a full [0,1] UV range and a +X tangent frame.
func NewQuad() *core.MeshData {
	n := math.Vec3{Z: 1}
	t := math.Vec4{X: 1, W: 1}
	return &core.MeshData{
		Vertices: []core.Vertex{
			{Position: math.Vec3{X: -7, Y: -7, Z: 4}, UV: math.Vec2{X: 0, Y: 0}, Normal: n, Tangent: t},
			{Position: math.Vec3{X: 7, Y: -7, Z: 4}, UV: math.Vec2{X: 1, Y: 0}, Normal: n, Tangent: t},
			{Position: math.Vec3{X: 7, Y: 7, Z: 4}, UV: math.Vec2{X: 1, Y: 1}, Normal: n, Tangent: t},
			{Position: math.Vec3{X: -7, Y: 7, Z: 4}, UV: math.Vec2{X: 0, Y: 1}, Normal: n, Tangent: t},
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
}

// NewLightMarker builds a small UV sphere used to visualize the light
// position in the reference pane.
func NewLightMarker(radius float32, stacks, slices int) *core.MeshData {
	mesh := &core.MeshData{}
	for i := 0; i <= stacks; i++ {
		phi := float32(i) / float32(stacks) * math.Pi
		for j := 0; j <= slices; j++ {
			theta := float32(j) / float32(slices) * 2 * math.Pi
			dir := math.Vec3{
				X: math.Sin(phi) * math.Cos(theta),
				Y: math.Cos(phi),
				Z: math.Sin(phi) * math.Sin(theta),
			}
			mesh.Vertices = append(mesh.Vertices, core.Vertex{
				Position: dir.Mul(radius),
				UV:       math.Vec2{X: float32(j) / float32(slices), Y: float32(i) / float32(stacks)},
				Normal:   dir,
				Tangent:  math.Vec4{X: 1, W: 1},
			})
		}
	}
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a := uint32(i*(slices+1) + j)
			b := a + uint32(slices) + 1
			mesh.Indices = append(mesh.Indices, a, b, a+1, a+1, b, b+1)
		}
	}
	return mesh
}

// LoadSurface reads the first mesh primitive from a .glb or .gltf file and
// returns it as the display surface, replacing the built-in quad. Tangents
// come from the file when present and are otherwise derived from UVs.
func LoadSurface(path string) (*core.MeshData, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}
	if len(doc.Meshes) == 0 || len(doc.Meshes[0].Primitives) == 0 {
		return nil, fmt.Errorf("gltf %q: no mesh primitives", path)
	}
	prim := doc.Meshes[0].Primitives[0]

	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil, fmt.Errorf("gltf %q: no POSITION attribute", path)
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("gltf %q: positions: %w", path, err)
	}

	var normals [][3]float32
	var uvs [][2]float32
	var tangents [][4]float32

	if idx, ok := prim.Attributes["NORMAL"]; ok {
		normals, _ = modeler.ReadNormal(doc, doc.Accessors[idx], nil)
	}
	if idx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		uvs, _ = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
	}
	if idx, ok := prim.Attributes["TANGENT"]; ok {
		tangents, _ = modeler.ReadTangent(doc, doc.Accessors[idx], nil)
	}

	mesh := &core.MeshData{Vertices: make([]core.Vertex, len(positions))}
	for i, p := range positions {
		v := core.Vertex{
			Position: math.Vec3{X: p[0], Y: p[1], Z: p[2]},
			Normal:   math.Vec3{Z: 1},
			Tangent:  math.Vec4{X: 1, W: 1},
		}
		if i < len(normals) {
			v.Normal = math.Vec3{X: normals[i][0], Y: normals[i][1], Z: normals[i][2]}
		}
		if i < len(uvs) {
			v.UV = math.Vec2{X: uvs[i][0], Y: uvs[i][1]}
		}
		if i < len(tangents) {
			t := tangents[i]
			v.Tangent = math.Vec4{X: t[0], Y: t[1], Z: t[2], W: t[3]}
		}
		mesh.Vertices[i] = v
	}

	if prim.Indices != nil {
		mesh.Indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, fmt.Errorf("gltf %q: indices: %w", path, err)
		}
	}

	if len(tangents) == 0 {
		ComputeTangents(mesh)
	}
	return mesh, nil
}

// ComputeTangents derives per-vertex tangents for tangent-space normal
// mapping from positions and UVs, accumulating per-triangle contributions
// and Gram-Schmidt orthogonalizing against the vertex normal. The tangent
// W component carries the bitangent handedness sign.
//
// Triangles with a degenerate UV area are skipped.
func ComputeTangents(m *core.MeshData) {
	tan := make([]math.Vec3, len(m.Vertices))
	bitan := make([]math.Vec3, len(m.Vertices))

	accum := func(i0, i1, i2 uint32) {
		v0 := m.Vertices[i0]
		v1 := m.Vertices[i1]
		v2 := m.Vertices[i2]

		e1 := v1.Position.Sub(v0.Position)
		e2 := v2.Position.Sub(v0.Position)

		du1 := v1.UV.X - v0.UV.X
		dv1 := v1.UV.Y - v0.UV.Y
		du2 := v2.UV.X - v0.UV.X
		dv2 := v2.UV.Y - v0.UV.Y

		denom := du1*dv2 - du2*dv1
		if denom == 0 {
			return // degenerate UV triangle
		}
		r := 1.0 / denom

		t := e1.Mul(dv2 * r).Sub(e2.Mul(dv1 * r))
		b := e2.Mul(du1 * r).Sub(e1.Mul(du2 * r))

		for _, i := range [3]uint32{i0, i1, i2} {
			tan[i] = tan[i].Add(t)
			bitan[i] = bitan[i].Add(b)
		}
	}

	if len(m.Indices) > 0 {
		for i := 0; i+2 < len(m.Indices); i += 3 {
			accum(m.Indices[i], m.Indices[i+1], m.Indices[i+2])
		}
	} else {
		for i := 0; i+2 < len(m.Vertices); i += 3 {
			accum(uint32(i), uint32(i+1), uint32(i+2))
		}
	}

	for i := range m.Vertices {
		n := m.Vertices[i].Normal
		t := tan[i]

		// T = normalize(T - N*(N·T))
		t = t.Sub(n.Mul(n.Dot(t)))
		if t.LengthSqr() < 1e-8 {
			// Degenerate: choose an arbitrary tangent perpendicular to N.
			if math.Abs(n.X) < 0.9 {
				t = math.Vec3{X: 1}.Sub(n.Mul(n.X))
			} else {
				t = math.Vec3{Y: 1}.Sub(n.Mul(n.Y))
			}
		}
		t = t.Normalize()

		w := float32(1)
		if n.Cross(t).Dot(bitan[i]) < 0 {
			w = -1
		}
		m.Vertices[i].Tangent = math.Vec4{X: t.X, Y: t.Y, Z: t.Z, W: w}
	}
}
