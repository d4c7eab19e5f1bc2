package scene

// ShaderKind enumerates the four shading variants the demo ships. Using a
// closed enum instead of free-form name lookup means an unknown selection
// cannot exist; the only remaining fallback case is a variant whose program
// failed to compile at startup.
type ShaderKind int

const (
	ShaderBasic ShaderKind = iota
	ShaderSteep
	ShaderEnhanced
	ShaderPBR

	ShaderKindCount
)

func (k ShaderKind) String() string {
	switch k {
	case ShaderBasic:
		return "basic"
	case ShaderSteep:
		return "steep"
	case ShaderEnhanced:
		return "enhanced"
	case ShaderPBR:
		return "pbr"
	}
	return "unknown"
}
