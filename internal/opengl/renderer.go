package opengl

import (
	"fmt"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"parallax-demo/core"
	"parallax-demo/scene"
)

// GPUMesh holds the OpenGL buffer objects for an uploaded mesh.
type GPUMesh struct {
	VAO        uint32
	VBO        uint32
	EBO        uint32
	IndexCount int32
	HasIndices bool
	VertexCnt  int32
}

// SurfaceTextures is the three-map set every shading variant samples:
// diffuse on unit 0, tangent-space normals on unit 1, height on unit 2.
type SurfaceTextures struct {
	Diffuse *scene.Texture
	Normal  *scene.Texture
	Height  *scene.Texture
}

// Renderer owns every GL resource of the demo: one program per shading
// variant, the marker and overlay programs, the surface and marker meshes,
// and the texture set. All methods must run on the main goroutine with the
// context current.
type Renderer struct {
	log *zap.Logger

	programs [scene.ShaderKindCount]*program
	loaded   [scene.ShaderKindCount]bool
	marker   *program

	surface    *GPUMesh
	markerMesh *GPUMesh
	textures   SurfaceTextures

	overlay *Overlay

	destroyed bool
}

var variantSources = [scene.ShaderKindCount]string{
	scene.ShaderBasic:    basicFragSrc,
	scene.ShaderSteep:    steepFragSrc,
	scene.ShaderEnhanced: enhancedFragSrc,
	scene.ShaderPBR:      pbrFragSrc,
}

// NewRenderer initializes OpenGL and compiles the shading variants. A
// variant that fails to compile is logged and skipped; only a failure of
// the steep fallback variant is fatal.
func NewRenderer(log *zap.Logger) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initialize OpenGL: %w", err)
	}

	log.Info("opengl ready",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))))

	r := &Renderer{log: log}

	for kind, src := range variantSources {
		p, err := newProgram(surfaceVertSrc, src)
		if err != nil {
			if scene.ShaderKind(kind) == scene.ShaderSteep {
				return nil, fmt.Errorf("steep shader compile: %w", err)
			}
			log.Warn("shader variant unavailable",
				zap.Stringer("variant", scene.ShaderKind(kind)), zap.Error(err))
			continue
		}
		r.programs[kind] = p
		r.loaded[kind] = true

		p.use()
		p.setInt("diffuseMap", 0)
		p.setInt("normalMap", 1)
		p.setInt("heightMap", 2)
	}

	markerProg, err := newProgram(markerVertSrc, markerFragSrc)
	if err != nil {
		return nil, fmt.Errorf("marker shader compile: %w", err)
	}
	r.marker = markerProg

	overlay, err := NewOverlay()
	if err != nil {
		return nil, fmt.Errorf("overlay init: %w", err)
	}
	r.overlay = overlay

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	return r, nil
}

// Loaded reports which shading variants compiled, for seeding the session.
func (r *Renderer) Loaded() [scene.ShaderKindCount]bool {
	return r.loaded
}

// SetSurface uploads the display mesh, replacing any previous one.
func (r *Renderer) SetSurface(mesh *core.MeshData) {
	if r.surface != nil {
		r.deleteMesh(r.surface)
	}
	r.surface = r.uploadMesh(mesh)
}

// SetMarker uploads the light marker mesh.
func (r *Renderer) SetMarker(mesh *core.MeshData) {
	if r.markerMesh != nil {
		r.deleteMesh(r.markerMesh)
	}
	r.markerMesh = r.uploadMesh(mesh)
}

// SetTextures uploads the surface texture set to the GPU.
func (r *Renderer) SetTextures(t SurfaceTextures, anisotropic bool) error {
	for _, tex := range []*scene.Texture{t.Diffuse, t.Normal, t.Height} {
		if err := UploadTexture(tex, anisotropic); err != nil {
			return err
		}
	}
	r.textures = t
	return nil
}

func (r *Renderer) bindTextures() {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.textures.Diffuse.GLID)
	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, r.textures.Normal.GLID)
	gl.ActiveTexture(gl.TEXTURE2)
	gl.BindTexture(gl.TEXTURE_2D, r.textures.Height.GLID)
}

func (r *Renderer) drawMesh(gpu *GPUMesh) {
	if gpu == nil {
		return
	}
	gl.BindVertexArray(gpu.VAO)
	if gpu.HasIndices {
		gl.DrawElements(gl.TRIANGLES, gpu.IndexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, gpu.VertexCnt)
	}
	gl.BindVertexArray(0)
}

func (r *Renderer) uploadMesh(mesh *core.MeshData) *GPUMesh {
	if len(mesh.Vertices) == 0 {
		return nil
	}

	stride := int32(unsafe.Sizeof(core.Vertex{}))

	gpu := &GPUMesh{
		IndexCount: int32(len(mesh.Indices)),
		HasIndices: len(mesh.Indices) > 0,
		VertexCnt:  int32(len(mesh.Vertices)),
	}

	gl.GenVertexArrays(1, &gpu.VAO)
	gl.GenBuffers(1, &gpu.VBO)
	gl.BindVertexArray(gpu.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, gpu.VBO)
	gl.BufferData(gl.ARRAY_BUFFER,
		len(mesh.Vertices)*int(stride),
		gl.Ptr(mesh.Vertices),
		gl.STATIC_DRAW)

	var v core.Vertex
	posOff := int(unsafe.Offsetof(v.Position))
	uvOff := int(unsafe.Offsetof(v.UV))
	normOff := int(unsafe.Offsetof(v.Normal))
	tangentOff := int(unsafe.Offsetof(v.Tangent))

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(posOff))

	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(uvOff))

	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 3, gl.FLOAT, false, stride, gl.PtrOffset(normOff))

	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 4, gl.FLOAT, false, stride, gl.PtrOffset(tangentOff))

	if gpu.HasIndices {
		gl.GenBuffers(1, &gpu.EBO)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gpu.EBO)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER,
			len(mesh.Indices)*4,
			gl.Ptr(mesh.Indices),
			gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)
	return gpu
}

func (r *Renderer) deleteMesh(gpu *GPUMesh) {
	if gpu == nil {
		return
	}
	if gpu.EBO != 0 {
		gl.DeleteBuffers(1, &gpu.EBO)
	}
	gl.DeleteBuffers(1, &gpu.VBO)
	gl.DeleteVertexArrays(1, &gpu.VAO)
}

// checkGLError drains the GL error queue after op. Returns false when any
// error was pending so the caller can abort the pass.
func (r *Renderer) checkGLError(op string) bool {
	ok := true
	for {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			return ok
		}
		ok = false
		r.log.Error("gl error", zap.String("op", op), zap.Uint32("code", code))
	}
}

// Destroy releases every GL resource. Safe to call more than once.
func (r *Renderer) Destroy() {
	if r.destroyed {
		return
	}
	r.destroyed = true

	for kind, p := range r.programs {
		if p != nil {
			p.destroy()
			r.programs[kind] = nil
			r.loaded[kind] = false
		}
	}
	if r.marker != nil {
		r.marker.destroy()
		r.marker = nil
	}
	if r.overlay != nil {
		r.overlay.Destroy()
		r.overlay = nil
	}

	r.deleteMesh(r.surface)
	r.surface = nil
	r.deleteMesh(r.markerMesh)
	r.markerMesh = nil

	DeleteTexture(r.textures.Diffuse)
	DeleteTexture(r.textures.Normal)
	DeleteTexture(r.textures.Height)

	r.log.Info("renderer destroyed")
}
