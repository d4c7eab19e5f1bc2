package scene

import (
	"parallax-demo/core"
)

// Action is a request the input layer hands back to the application; state
// changes that stay inside the session are handled internally.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionToggleFullscreen
	ActionToggleHelp
)

// Session owns all mutable demo state: camera, light, feature toggles, and
// the active shader selection. The frame composer and the input handlers
// both operate on a Session, which keeps the whole control path testable
// without a GL context.
type Session struct {
	Features Features
	Camera   *Camera
	Light    *Light

	// Selected is the shader variant for the right-hand pane. The left pane
	// is always rendered with ShaderBasic as a fixed reference.
	Selected ShaderKind

	// loaded marks which variants have a linked program behind them.
	loaded [ShaderKindCount]bool

	// Mouse drag state
	dragButton   core.MouseButton
	lastX, lastY float64
}

func NewSession() *Session {
	s := &Session{
		Features:   DefaultFeatures(),
		Camera:     NewCamera(),
		Light:      NewLight(),
		Selected:   ShaderSteep,
		dragButton: core.MouseButtonNone,
	}
	return s
}

// SetLoaded records which shader variants linked successfully. The initial
// selection prefers Enhanced when available, mirroring the startup default,
// and otherwise falls back to Steep.
func (s *Session) SetLoaded(loaded [ShaderKindCount]bool) {
	s.loaded = loaded
	s.Selected = ShaderEnhanced
	if !s.loaded[s.Selected] {
		s.Selected = ShaderSteep
	}
}

// Loaded reports whether the given variant has a usable program.
func (s *Session) Loaded(kind ShaderKind) bool {
	return s.loaded[kind]
}

// Select switches the right pane to kind, falling back to Steep when the
// requested variant did not load.
func (s *Session) Select(kind ShaderKind) {
	if !s.loaded[kind] {
		kind = ShaderSteep
	}
	s.Selected = kind
}

// HandleKey applies one printable-key command. Unrecognized keys are no-ops.
// The returned Action covers the commands that must be executed by the
// window layer (quit, fullscreen) or the console layer (help).
func (s *Session) HandleKey(ch rune) Action {
	f := &s.Features
	switch ch {
	case 'q', 'Q':
		return ActionQuit
	case 'h', 'H':
		f.ShowHelp = !f.ShowHelp
		return ActionToggleHelp
	case 'f', 'F':
		return ActionToggleFullscreen

	// Basic features
	case 'm', 'M':
		f.Multisampling = !f.Multisampling
	case 'b', 'B':
		f.Bumpy = !f.Bumpy
	case 's', 'S':
		f.SelfShadowing = !f.SelfShadowing
	case 'p', 'P':
		f.ParallaxEnabled = !f.ParallaxEnabled

	// Advanced rendering
	case '1':
		f.PBRShading = !f.PBRShading
	case '2':
		f.SSAOEnabled = !f.SSAOEnabled
	case '3':
		f.BloomEnabled = !f.BloomEnabled
	case '4':
		f.ToneMappingEnabled = !f.ToneMappingEnabled
	case '5':
		f.ChromaticAberration = !f.ChromaticAberration
	case '6':
		f.DepthOfField = !f.DepthOfField
	case '7':
		f.MotionBlur = !f.MotionBlur
	case '8':
		f.VolumetricLighting = !f.VolumetricLighting
	case '9':
		f.SubsurfaceScattering = !f.SubsurfaceScattering
	case '0':
		f.AnisotropicFiltering = !f.AnisotropicFiltering

	// Advanced mapping
	case 'r', 'R':
		f.ReliefMapping = !f.ReliefMapping
	case 'c', 'C':
		f.ConeStepMapping = !f.ConeStepMapping
	case 't', 'T':
		f.TessellationEnabled = !f.TessellationEnabled
	case 'n', 'N':
		f.ProceduralNoise = !f.ProceduralNoise
	case 'k', 'K':
		f.Caustics = !f.Caustics

	// Visualization
	case 'w', 'W':
		f.WireframeMode = !f.WireframeMode
	case 'v', 'V':
		f.ShowNormals = !f.ShowNormals
	case 'g', 'G':
		f.ShowTangents = !f.ShowTangents
	case 'y', 'Y':
		f.ShowBinormals = !f.ShowBinormals
	case ' ':
		f.AutoRotate = !f.AutoRotate

	// Shader selection
	case 'j', 'J':
		s.Select(ShaderBasic)
	case 'i', 'I':
		s.Select(ShaderSteep)
	case 'e', 'E':
		s.Select(ShaderEnhanced)
	case 'u', 'U':
		s.Select(ShaderPBR)
	}
	return ActionNone
}

// HandleSpecialKey applies the non-printable key commands.
func (s *Session) HandleSpecialKey(key core.SpecialKey) Action {
	f := &s.Features
	switch key {
	case core.KeyEscape:
		return ActionQuit
	case core.KeyTab:
		f.ShowPerformance = !f.ShowPerformance
	case core.KeyF1:
		f.BenchmarkMode = !f.BenchmarkMode
	case core.KeyF2:
		f.RecordingMode = !f.RecordingMode
	}
	return ActionNone
}

// MouseButton records a press or release; a press starts a drag from the
// given cursor position.
func (s *Session) MouseButton(button core.MouseButton, pressed bool, x, y float64) {
	if pressed {
		s.dragButton = button
		s.lastX, s.lastY = x, y
	} else {
		s.dragButton = core.MouseButtonNone
	}
}

// MouseMove applies a drag delta: left button orbits the camera, right
// button repositions the light. Motion with no button held is ignored.
func (s *Session) MouseMove(x, y float64) {
	dx := float32(x - s.lastX)
	dy := float32(y - s.lastY)

	switch s.dragButton {
	case core.MouseButtonLeft:
		s.Camera.Orbit(dx, dy)
	case core.MouseButtonRight:
		s.Light.Move(dx, dy)
	default:
		return
	}
	s.lastX, s.lastY = x, y
}

// Tick runs per-frame session updates that precede composition.
func (s *Session) Tick() {
	if s.Features.AutoRotate && !s.Features.PauseAnimation {
		s.Camera.Yaw += 0.5
	}
	s.Light.Clamp()
}
