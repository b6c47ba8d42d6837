// Package gfx abstracts the graphics API behind a backend interface.
//
// Backends are selected at startup from configuration. OpenGL is the
// working implementation; Vulkan is a stub that reports itself as
// unsupported when initialized.
package gfx

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/skr/internal/engine/errstate"
	"github.com/Faultbox/skr/internal/engine/model"
	"github.com/Faultbox/skr/internal/engine/texture"
)

// Stage identifies a shader stage.
type Stage int

const (
	StageVertex Stage = iota
	StageFragment
	StageGeometry
	StageCompute
	StageTessControl
	StageTessEval
)

// Label returns the short stage tag used in diagnostics. Stages the
// engine does not know map to "unknown" rather than failing.
func (s Stage) Label() string {
	switch s {
	case StageVertex:
		return "vert"
	case StageFragment:
		return "frag"
	case StageGeometry:
		return "geom"
	case StageCompute:
		return "comp"
	case StageTessControl:
		return "tesc"
	case StageTessEval:
		return "tese"
	default:
		return "unknown"
	}
}

// MeshBuffers are the GPU-side buffer handles owned by a mesh.
type MeshBuffers struct {
	VAO uint32
	VBO uint32
	EBO uint32
}

// API is the contract a graphics backend fulfills. All calls must be
// made on the thread that owns the rendering context, after Init.
type API interface {
	// Init loads the API's function pointers. Requires a current
	// context.
	Init() error
	// Name identifies the backend ("opengl", "vulkan").
	Name() string

	Viewport(width, height int)
	SetClearColor(r, g, b, a float32)
	// Clear clears the color and depth buffers.
	Clear()

	// CompileShader compiles GLSL source for a stage. The returned
	// handle is owned by the caller until consumed by LinkProgram.
	CompileShader(stage Stage, source string) (uint32, error)
	DeleteShader(shader uint32)

	// LinkProgram attaches the given shaders to a new program and
	// links. The shaders are released in every outcome: on success
	// ownership transfers to the program, on failure they are deleted
	// along with the partial program.
	LinkProgram(shaders []uint32) (uint32, error)
	DeleteProgram(program uint32)
	UseProgram(program uint32)

	// Uniform uploads resolve the named location each call. A name
	// that does not exist in the program is silently accepted.
	SetInt(program uint32, name string, v int32)
	SetFloat(program uint32, name string, v float32)
	SetVec2(program uint32, name string, v mgl32.Vec2)
	SetVec3(program uint32, name string, v mgl32.Vec3)
	SetVec4(program uint32, name string, v mgl32.Vec4)
	SetMat2(program uint32, name string, v mgl32.Mat2)
	SetMat3(program uint32, name string, v mgl32.Mat3)
	SetMat4(program uint32, name string, v mgl32.Mat4)

	// CreateMeshBuffers uploads vertex (and optional index) data and
	// returns the owning handles.
	CreateMeshBuffers(vertices []model.Vertex, indices []uint32) (MeshBuffers, error)
	// DeleteMeshBuffers releases whichever handles are nonzero and
	// zeroes them, so a second call is a no-op.
	DeleteMeshBuffers(b *MeshBuffers)

	// DrawMesh binds the vertex array and issues a triangle draw,
	// indexed when indexCount is positive and the mesh has an index
	// buffer, non-indexed otherwise. The vertex array stays bound;
	// callers unbind once per pass.
	DrawMesh(b MeshBuffers, vertexCount, indexCount int)
	UnbindVertexArray()
	// ResetBindings unbinds vertex array, vertex buffer, index buffer
	// and program.
	ResetBindings()

	// CreateTexture uploads decoded pixels as a mipmapped 2D texture.
	CreateTexture(img *texture.Image) (uint32, error)
	DeleteTextures(ids []uint32)
}

// New returns the backend for the configured name.
func New(name string) (API, error) {
	switch name {
	case "", "opengl":
		return &OpenGL{}, nil
	case "vulkan":
		return &Vulkan{}, nil
	default:
		return nil, errstate.New(errstate.KindResource, "unknown graphics backend %q", name)
	}
}
