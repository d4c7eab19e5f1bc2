package scene

// Features is the flat set of render toggles. Every field is an independent
// boolean pushed to the active shader as a uniform each frame; variants that
// have no use for a given flag simply never declare the uniform.
type Features struct {
	// Basic
	Multisampling   bool
	Bumpy           bool // deep bump scale (0.125) vs shallow (0.05)
	SelfShadowing   bool
	ParallaxEnabled bool

	// Advanced rendering
	PBRShading           bool
	SSAOEnabled          bool
	BloomEnabled         bool
	ToneMappingEnabled   bool
	ChromaticAberration  bool
	DepthOfField         bool
	MotionBlur           bool
	VolumetricLighting   bool
	SubsurfaceScattering bool
	AnisotropicFiltering bool
	TemporalAA           bool
	ScreenSpaceReflect   bool

	// Advanced mapping
	ProceduralNoise      bool
	TessellationEnabled  bool
	ReliefMapping        bool
	ConeStepMapping      bool
	QuadtreeDisplacement bool
	Caustics             bool
	NormalBlending       bool
	HeightFog            bool

	// Visualization
	WireframeMode bool
	ShowNormals   bool
	ShowTangents  bool
	ShowBinormals bool

	// Session behaviour
	AutoRotate      bool
	PauseAnimation  bool
	ShowHelp        bool
	ShowPerformance bool
	BenchmarkMode   bool
	RecordingMode   bool
}

// DefaultFeatures returns the startup toggle state.
func DefaultFeatures() Features {
	return Features{
		Multisampling:        true,
		SelfShadowing:        true,
		ParallaxEnabled:      true,
		SSAOEnabled:          true,
		AnisotropicFiltering: true,
		NormalBlending:       true,
	}
}
