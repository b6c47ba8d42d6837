// Package gfxtest provides a recording in-memory gfx.API for tests.
package gfxtest

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/skr/internal/engine/errstate"
	"github.com/Faultbox/skr/internal/engine/gfx"
	"github.com/Faultbox/skr/internal/engine/model"
	"github.com/Faultbox/skr/internal/engine/texture"
)

// Draw records a single draw submission.
type Draw struct {
	Program     uint32
	VAO         uint32
	VertexCount int
	IndexCount  int
}

// Uniform records a single uniform upload.
type Uniform struct {
	Program uint32
	Name    string
	Kind    string
}

// Fake implements gfx.API with plain bookkeeping. Handles are issued
// sequentially; live-set maps track leaks.
type Fake struct {
	nextID uint32

	LiveShaders  map[uint32]bool
	LivePrograms map[uint32]bool
	LiveTextures map[uint32]bool
	LiveBuffers  map[uint32]bool

	Draws    []Draw
	Uniforms []Uniform

	BoundProgram uint32
	Unbinds      int
	Resets       int

	ViewportWidth  int
	ViewportHeight int
	Cleared        int

	// CompileHook, when set, decides whether a compile fails.
	CompileHook func(stage gfx.Stage, source string) error
	// FailLink makes every link attempt fail.
	FailLink bool
	// FailTexture makes every texture upload fail.
	FailTexture bool
}

// New creates an empty fake.
func New() *Fake {
	return &Fake{
		LiveShaders:  make(map[uint32]bool),
		LivePrograms: make(map[uint32]bool),
		LiveTextures: make(map[uint32]bool),
		LiveBuffers:  make(map[uint32]bool),
	}
}

func (f *Fake) id() uint32 {
	f.nextID++
	return f.nextID
}

func (f *Fake) Init() error  { return nil }
func (f *Fake) Name() string { return "fake" }

func (f *Fake) Viewport(width, height int) {
	f.ViewportWidth, f.ViewportHeight = width, height
}

func (f *Fake) SetClearColor(r, g, b, a float32) {}

func (f *Fake) Clear() { f.Cleared++ }

func (f *Fake) CompileShader(stage gfx.Stage, source string) (uint32, error) {
	if f.CompileHook != nil {
		if err := f.CompileHook(stage, source); err != nil {
			return 0, err
		}
	}
	id := f.id()
	f.LiveShaders[id] = true
	return id, nil
}

func (f *Fake) DeleteShader(shader uint32) {
	delete(f.LiveShaders, shader)
}

func (f *Fake) LinkProgram(shaders []uint32) (uint32, error) {
	// shaders are consumed in every outcome, mirroring the GL backend
	for _, s := range shaders {
		delete(f.LiveShaders, s)
	}
	if f.FailLink {
		return 0, errstate.New(errstate.KindLink, "failed to link prog: forced failure")
	}
	id := f.id()
	f.LivePrograms[id] = true
	return id, nil
}

func (f *Fake) DeleteProgram(program uint32) {
	delete(f.LivePrograms, program)
}

func (f *Fake) UseProgram(program uint32) {
	f.BoundProgram = program
}

func (f *Fake) record(program uint32, name, kind string) {
	f.Uniforms = append(f.Uniforms, Uniform{Program: program, Name: name, Kind: kind})
}

func (f *Fake) SetInt(program uint32, name string, v int32)       { f.record(program, name, "int") }
func (f *Fake) SetFloat(program uint32, name string, v float32)   { f.record(program, name, "float") }
func (f *Fake) SetVec2(program uint32, name string, v mgl32.Vec2) { f.record(program, name, "vec2") }
func (f *Fake) SetVec3(program uint32, name string, v mgl32.Vec3) { f.record(program, name, "vec3") }
func (f *Fake) SetVec4(program uint32, name string, v mgl32.Vec4) { f.record(program, name, "vec4") }
func (f *Fake) SetMat2(program uint32, name string, v mgl32.Mat2) { f.record(program, name, "mat2") }
func (f *Fake) SetMat3(program uint32, name string, v mgl32.Mat3) { f.record(program, name, "mat3") }
func (f *Fake) SetMat4(program uint32, name string, v mgl32.Mat4) { f.record(program, name, "mat4") }

func (f *Fake) CreateMeshBuffers(vertices []model.Vertex, indices []uint32) (gfx.MeshBuffers, error) {
	if len(vertices) == 0 {
		return gfx.MeshBuffers{}, errstate.New(errstate.KindResource, "mesh has no vertices")
	}
	b := gfx.MeshBuffers{VAO: f.id(), VBO: f.id()}
	f.LiveBuffers[b.VAO] = true
	f.LiveBuffers[b.VBO] = true
	if len(indices) > 0 {
		b.EBO = f.id()
		f.LiveBuffers[b.EBO] = true
	}
	return b, nil
}

func (f *Fake) DeleteMeshBuffers(b *gfx.MeshBuffers) {
	if b.VAO != 0 {
		delete(f.LiveBuffers, b.VAO)
		b.VAO = 0
	}
	if b.VBO != 0 {
		delete(f.LiveBuffers, b.VBO)
		b.VBO = 0
	}
	if b.EBO != 0 {
		delete(f.LiveBuffers, b.EBO)
		b.EBO = 0
	}
}

func (f *Fake) DrawMesh(b gfx.MeshBuffers, vertexCount, indexCount int) {
	f.Draws = append(f.Draws, Draw{
		Program:     f.BoundProgram,
		VAO:         b.VAO,
		VertexCount: vertexCount,
		IndexCount:  indexCount,
	})
}

func (f *Fake) UnbindVertexArray() { f.Unbinds++ }

func (f *Fake) ResetBindings() {
	f.Resets++
	f.BoundProgram = 0
}

func (f *Fake) CreateTexture(img *texture.Image) (uint32, error) {
	if f.FailTexture || img == nil || len(img.Pixels) == 0 {
		return 0, errstate.New(errstate.KindExternalLoad, "failed to load texture")
	}
	id := f.id()
	f.LiveTextures[id] = true
	return id, nil
}

func (f *Fake) DeleteTextures(ids []uint32) {
	for _, id := range ids {
		delete(f.LiveTextures, id)
	}
}
