package gfx

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/skr/internal/engine/errstate"
	"github.com/Faultbox/skr/internal/engine/model"
	"github.com/Faultbox/skr/internal/engine/texture"
)

// Vulkan is a placeholder backend. It satisfies API so configuration
// can name it, but Init reports it as unsupported and every operation
// is inert.
type Vulkan struct{}

var errVulkan = errstate.New(errstate.KindResource, "vulkan backend is not implemented")

func (v *Vulkan) Init() error  { return errVulkan }
func (v *Vulkan) Name() string { return "vulkan" }

func (v *Vulkan) Viewport(width, height int)          {}
func (v *Vulkan) SetClearColor(r, g, b, a float32)    {}
func (v *Vulkan) Clear()                              {}

func (v *Vulkan) CompileShader(stage Stage, source string) (uint32, error) {
	return 0, errVulkan
}
func (v *Vulkan) DeleteShader(shader uint32) {}

func (v *Vulkan) LinkProgram(shaders []uint32) (uint32, error) { return 0, errVulkan }
func (v *Vulkan) DeleteProgram(program uint32)                 {}
func (v *Vulkan) UseProgram(program uint32)                    {}

func (v *Vulkan) SetInt(program uint32, name string, val int32)      {}
func (v *Vulkan) SetFloat(program uint32, name string, val float32)  {}
func (v *Vulkan) SetVec2(program uint32, name string, val mgl32.Vec2) {}
func (v *Vulkan) SetVec3(program uint32, name string, val mgl32.Vec3) {}
func (v *Vulkan) SetVec4(program uint32, name string, val mgl32.Vec4) {}
func (v *Vulkan) SetMat2(program uint32, name string, val mgl32.Mat2) {}
func (v *Vulkan) SetMat3(program uint32, name string, val mgl32.Mat3) {}
func (v *Vulkan) SetMat4(program uint32, name string, val mgl32.Mat4) {}

func (v *Vulkan) CreateMeshBuffers(vertices []model.Vertex, indices []uint32) (MeshBuffers, error) {
	return MeshBuffers{}, errVulkan
}
func (v *Vulkan) DeleteMeshBuffers(b *MeshBuffers) {}

func (v *Vulkan) DrawMesh(b MeshBuffers, vertexCount, indexCount int) {}
func (v *Vulkan) UnbindVertexArray()                                  {}
func (v *Vulkan) ResetBindings()                                      {}

func (v *Vulkan) CreateTexture(img *texture.Image) (uint32, error) { return 0, errVulkan }
func (v *Vulkan) DeleteTextures(ids []uint32)                      {}
