package opengl

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"parallax-demo/core"
	"parallax-demo/math"
	"parallax-demo/scene"
)

// Projection constants for both panes. Each pane is square, so the aspect
// ratio is fixed at one half of the window width over its height.
const (
	fovDegrees = 25.0
	nearPlane  = 0.1
	farPlane   = 1000.0
)

// Bump depth presets toggled by the "bumpy" feature.
const (
	bumpScaleDeep    = 0.125
	bumpScaleShallow = 0.05
)

// SplitRegions computes the two square panes of the split view. Each side
// is min(height, width/2) pixels, and the panes meet at the horizontal
// center of the window, flush with the bottom edge.
func SplitRegions(width, height int) (left, right core.Rect) {
	halfW := width / 2
	side := halfW
	if height < side {
		side = height
	}
	s := int32(side)
	left = core.Rect{X: int32(halfW - side), Y: 0, Width: s, Height: s}
	right = core.Rect{X: int32(halfW), Y: 0, Width: s, Height: s}
	return left, right
}

// Composer draws one frame of the side-by-side comparison: the reference
// basic-parallax pane on the left, the selected variant on the right, and
// the optional performance overlay across the whole window.
type Composer struct {
	renderer *Renderer
	log      *zap.Logger

	// frame counts composed frames, driving the animated shader inputs.
	frame uint64
}

func NewComposer(r *Renderer, log *zap.Logger) *Composer {
	return &Composer{renderer: r, log: log}
}

// Compose renders one frame. frameTimes feeds the overlay bar chart and may
// be nil when the overlay is hidden.
func (c *Composer) Compose(s *scene.Session, width, height int, frameTimes []float64) {
	c.frame++
	r := c.renderer

	if s.Features.Multisampling {
		gl.Enable(gl.MULTISAMPLE)
	} else {
		gl.Disable(gl.MULTISAMPLE)
	}
	if s.Features.WireframeMode {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	gl.ClearColor(0.1, 0.1, 0.15, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	left, right := SplitRegions(width, height)

	aspect := float32(width) * 0.5 / float32(height)
	proj := math.Mat4Perspective(math.DegToRad(fovDegrees), aspect, nearPlane, farPlane)

	view := s.Camera.ViewMatrix()
	mv := s.Camera.ModelViewMatrix()
	mvp := mv.Mul(proj)
	invMV := mv.InvertRigid()
	lightEye := view.MulPoint(s.Light.Position)

	gl.Enable(gl.SCISSOR_TEST)
	defer gl.Disable(gl.SCISSOR_TEST)

	// Left pane: fixed reference variant plus the light marker.
	setRegion(left)
	c.drawMarker(s, view, proj)
	if !r.checkGLError("light marker") {
		return
	}
	c.drawSurface(s, scene.ShaderBasic, mvp, invMV, lightEye)
	if !r.checkGLError("reference pane") {
		return
	}

	// Right pane: selected variant, with its own depth range.
	gl.Clear(gl.DEPTH_BUFFER_BIT)
	setRegion(right)
	c.drawSurface(s, s.Selected, mvp, invMV, lightEye)
	if !r.checkGLError("comparison pane") {
		return
	}

	if s.Features.ShowPerformance && len(frameTimes) > 0 {
		gl.Disable(gl.SCISSOR_TEST)
		gl.Viewport(0, 0, int32(width), int32(height))
		c.drawOverlay(width, height, frameTimes)
		gl.Enable(gl.SCISSOR_TEST)
		r.checkGLError("performance overlay")
	}
}

func setRegion(rect core.Rect) {
	gl.Viewport(rect.X, rect.Y, rect.Width, rect.Height)
	gl.Scissor(rect.X, rect.Y, rect.Width, rect.Height)
}

func (c *Composer) drawSurface(s *scene.Session, kind scene.ShaderKind, mvp, invMV math.Mat4, lightEye math.Vec3) {
	r := c.renderer
	if !r.loaded[kind] {
		kind = scene.ShaderSteep
	}
	p := r.programs[kind]

	p.use()
	p.setMat4("mvp", mvp)
	p.setMat4("modelViewInv", invMV)
	p.setVec3("lightPosEye", lightEye.X, lightEye.Y, lightEye.Z)
	c.bindFeatureUniforms(p, s)

	r.bindTextures()
	r.drawMesh(r.surface)
}

// bindFeatureUniforms pushes the full toggle set; each variant picks up
// only the uniforms it declares.
func (c *Composer) bindFeatureUniforms(p *program, s *scene.Session) {
	f := s.Features

	p.setVec3("lightColor", s.Light.Color.R, s.Light.Color.G, s.Light.Color.B)
	p.setFloat("lightIntensity", s.Light.Intensity)

	scale := float32(bumpScaleShallow)
	if f.Bumpy {
		scale = bumpScaleDeep
	}
	p.setFloat("bumpScale", scale)
	p.setFloat("time", float32(c.frame)*0.016)

	// Every toggle goes out each frame; variants without the matching
	// uniform resolve it to -1 and the setter skips it.
	p.setBool("parallaxEnabled", f.ParallaxEnabled)
	p.setBool("selfShadowing", f.SelfShadowing)
	p.setBool("reliefMapping", f.ReliefMapping)
	p.setBool("coneStepMapping", f.ConeStepMapping)
	p.setBool("proceduralNoise", f.ProceduralNoise)
	p.setBool("toneMapping", f.ToneMappingEnabled)
	p.setBool("heightFog", f.HeightFog)
	p.setBool("caustics", f.Caustics)
	p.setBool("pbrShading", f.PBRShading)
	p.setBool("ssaoEnabled", f.SSAOEnabled)
	p.setBool("bloomEnabled", f.BloomEnabled)
	p.setBool("chromaticAberration", f.ChromaticAberration)
	p.setBool("depthOfField", f.DepthOfField)
	p.setBool("motionBlur", f.MotionBlur)
	p.setBool("volumetricLighting", f.VolumetricLighting)
	p.setBool("subsurfaceScattering", f.SubsurfaceScattering)
	p.setBool("tessellationEnabled", f.TessellationEnabled)
	p.setBool("showNormals", f.ShowNormals)
	p.setBool("showTangents", f.ShowTangents)
	p.setBool("showBinormals", f.ShowBinormals)

	p.setFloat("metallic", 0.2)
	p.setFloat("roughness", 0.45)
}

// drawMarker renders the light sphere at its world position, unaffected by
// the user's orbit rotation so it tracks the light's true location.
func (c *Composer) drawMarker(s *scene.Session, view, proj math.Mat4) {
	r := c.renderer
	if r.markerMesh == nil {
		return
	}

	mvp := math.Mat4Translation(s.Light.Position).Mul(view).Mul(proj)

	r.marker.use()
	r.marker.setMat4("mvp", mvp)
	r.marker.setVec3("markerColor", s.Light.Color.R, s.Light.Color.G, s.Light.Color.B)
	r.drawMesh(r.markerMesh)
}

func (c *Composer) drawOverlay(width, height int, frameTimes []float64) {
	o := c.renderer.overlay

	chartW := float32(width) * 0.35
	chartH := float32(80)
	margin := float32(12)

	o.Begin(width, height)
	o.BarChart(margin, float32(height)-chartH-margin, chartW, chartH, frameTimes, 0.016)
	o.End()
}
