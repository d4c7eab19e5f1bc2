package opengl

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"

	"parallax-demo/math"
)

// Overlay draws 2D screen-space rectangles over the rendered frame, used
// for the frame-time bar chart. Coordinates are in pixels with the origin
// at the lower-left corner.
type Overlay struct {
	prog *program
	vao  uint32
	vbo  uint32
}

func NewOverlay() (*Overlay, error) {
	prog, err := newProgram(overlayVertSrc, overlayFragSrc)
	if err != nil {
		return nil, err
	}

	o := &Overlay{prog: prog}
	gl.GenVertexArrays(1, &o.vao)
	gl.GenBuffers(1, &o.vbo)

	gl.BindVertexArray(o.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 8, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return o, nil
}

// Begin switches to 2D drawing for the given framebuffer size. Depth
// testing is suspended until End.
func (o *Overlay) Begin(width, height int) {
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	proj := math.Mat4Orthographic(0, float32(width), 0, float32(height), -1, 1)
	o.prog.use()
	o.prog.setMat4("projection", proj)
}

// Rect fills one pixel-space rectangle with the given color.
func (o *Overlay) Rect(x, y, w, h float32, r, g, b, a float32) {
	vertices := []float32{
		x, y,
		x + w, y,
		x + w, y + h,
		x, y + h,
	}

	o.prog.setVec4("overlayColor", r, g, b, a)

	gl.BindVertexArray(o.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.DYNAMIC_DRAW)
	gl.DrawArrays(gl.TRIANGLE_FAN, 0, 4)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// BarChart draws samples as vertical bars inside the given pixel rect,
// scaled so that refValue reaches half the rect height. Bars above 150%
// of the reference are tinted red.
func (o *Overlay) BarChart(x, y, w, h float32, samples []float64, refValue float64) {
	if len(samples) == 0 || refValue <= 0 {
		return
	}

	o.Rect(x, y, w, h, 0, 0, 0, 0.45)

	barW := w / float32(len(samples))
	for i, s := range samples {
		bh := float32(s/refValue) * h * 0.5
		if bh > h {
			bh = h
		}
		r, g := float32(0.3), float32(0.9)
		if s > refValue*1.5 {
			r, g = 0.9, 0.25
		}
		o.Rect(x+float32(i)*barW, y, barW*0.8, bh, r, g, 0.3, 0.9)
	}

	// reference line at the nominal frame time
	o.Rect(x, y+h*0.5-1, w, 2, 1, 1, 1, 0.5)
}

// End restores 3D drawing state.
func (o *Overlay) End() {
	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

func (o *Overlay) Destroy() {
	if o.vao != 0 {
		gl.DeleteVertexArrays(1, &o.vao)
		o.vao = 0
	}
	if o.vbo != 0 {
		gl.DeleteBuffers(1, &o.vbo)
		o.vbo = 0
	}
	if o.prog != nil {
		o.prog.destroy()
		o.prog = nil
	}
}
