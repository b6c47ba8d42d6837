// Package shader builds GPU shader programs from descriptors.
package shader

import (
	"go.uber.org/zap"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/skr/internal/engine/assets"
	"github.com/Faultbox/skr/internal/engine/errstate"
	"github.com/Faultbox/skr/internal/engine/gfx"
	"github.com/Faultbox/skr/internal/logger"
)

// Descriptor names one shader stage by inline source or file path.
// Source wins when both are set; a descriptor with neither fails the
// build.
type Descriptor struct {
	Stage  gfx.Stage
	Source string
	Path   string
}

// Compile compiles inline GLSL for a stage.
func Compile(api gfx.API, stage gfx.Stage, source string) (uint32, error) {
	return api.CompileShader(stage, source)
}

// CompileFile reads a GLSL file and compiles it.
func CompileFile(api gfx.API, stage gfx.Stage, path string) (uint32, error) {
	source, err := assets.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return api.CompileShader(stage, string(source))
}

// BuildProgram compiles every descriptor and links the result. The
// build short-circuits on the first failing stage and releases the
// shaders compiled before it, so no outcome leaks shader objects.
func BuildProgram(api gfx.API, descriptors []Descriptor) (*Program, error) {
	if len(descriptors) == 0 {
		return nil, errstate.New(errstate.KindResource, "no shader descriptors given")
	}

	shaders := make([]uint32, 0, len(descriptors))

	rollback := func() {
		for _, s := range shaders {
			api.DeleteShader(s)
		}
	}

	for _, d := range descriptors {
		var (
			id  uint32
			err error
		)
		switch {
		case d.Source != "":
			id, err = Compile(api, d.Stage, d.Source)
		case d.Path != "":
			id, err = CompileFile(api, d.Stage, d.Path)
		default:
			rollback()
			return nil, errstate.New(errstate.KindResource,
				"%s shader has neither source nor path", d.Stage.Label())
		}
		if err != nil {
			rollback()
			return nil, err
		}
		shaders = append(shaders, id)
	}

	// link consumes the shader objects in every outcome
	id, err := api.LinkProgram(shaders)
	if err != nil {
		return nil, err
	}

	logger.Debug("program built",
		zap.Uint32("program", id),
		zap.Int("stages", len(descriptors)),
	)
	return &Program{api: api, id: id}, nil
}

// Program is a linked shader program.
type Program struct {
	api gfx.API
	id  uint32
}

// ID returns the backend handle, zero after Destroy.
func (p *Program) ID() uint32 { return p.id }

// Use binds the program as active.
func (p *Program) Use() {
	p.api.UseProgram(p.id)
}

// Destroy releases the program. Safe to call more than once.
func (p *Program) Destroy() {
	if p.id != 0 {
		p.api.DeleteProgram(p.id)
		p.id = 0
	}
}

// Uniform setters resolve the named uniform on every call. Names the
// program does not declare are silently accepted.

func (p *Program) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	p.api.SetInt(p.id, name, i)
}

func (p *Program) SetInt(name string, v int32)       { p.api.SetInt(p.id, name, v) }
func (p *Program) SetFloat(name string, v float32)   { p.api.SetFloat(p.id, name, v) }
func (p *Program) SetVec2(name string, v mgl32.Vec2) { p.api.SetVec2(p.id, name, v) }
func (p *Program) SetVec3(name string, v mgl32.Vec3) { p.api.SetVec3(p.id, name, v) }
func (p *Program) SetVec4(name string, v mgl32.Vec4) { p.api.SetVec4(p.id, name, v) }
func (p *Program) SetMat2(name string, v mgl32.Mat2) { p.api.SetMat2(p.id, name, v) }
func (p *Program) SetMat3(name string, v mgl32.Mat3) { p.api.SetMat3(p.id, name, v) }
func (p *Program) SetMat4(name string, v mgl32.Mat4) { p.api.SetMat4(p.id, name, v) }
