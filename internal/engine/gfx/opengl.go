package gfx

import (
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/skr/internal/engine/errstate"
	"github.com/Faultbox/skr/internal/engine/model"
	"github.com/Faultbox/skr/internal/engine/texture"
	"github.com/Faultbox/skr/internal/logger"
)

// OpenGL is the GL 4.1 core backend.
type OpenGL struct{}

// Init loads OpenGL function pointers. Must be called after the window
// backend has made a context current on this thread.
func (o *OpenGL) Init() error {
	if err := gl.Init(); err != nil {
		return errstate.Wrap(errstate.KindResource, err, "failed to initialize OpenGL")
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)
	return nil
}

// Name identifies the backend.
func (o *OpenGL) Name() string { return "opengl" }

// Viewport sets the drawable area.
func (o *OpenGL) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// SetClearColor sets the frame clear color.
func (o *OpenGL) SetClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

// Clear clears the color and depth buffers.
func (o *OpenGL) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func glStage(stage Stage) uint32 {
	switch stage {
	case StageVertex:
		return gl.VERTEX_SHADER
	case StageFragment:
		return gl.FRAGMENT_SHADER
	case StageGeometry:
		return gl.GEOMETRY_SHADER
	case StageCompute:
		// not present in 4.1 core; kept so the label path still works
		return 0x91B9
	case StageTessControl:
		return gl.TESS_CONTROL_SHADER
	case StageTessEval:
		return gl.TESS_EVALUATION_SHADER
	default:
		return 0
	}
}

// nulTerminated makes source safe to hand to gl.Strs.
func nulTerminated(source string) string {
	if strings.HasSuffix(source, "\x00") {
		return source
	}
	return source + "\x00"
}

// CompileShader compiles GLSL source for a stage, surfacing the
// compiler log verbatim on failure.
func (o *OpenGL) CompileShader(stage Stage, source string) (uint32, error) {
	shader := gl.CreateShader(glStage(stage))

	csources, free := gl.Strs(nulTerminated(source))
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		infoLog := shaderLog(shader)
		gl.DeleteShader(shader)
		return 0, errstate.New(errstate.KindCompile,
			"failed to compile %s: %s", stage.Label(), infoLog)
	}

	return shader, nil
}

// shaderLog fetches a shader's info log.
func shaderLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	infoLog := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
	return strings.TrimRight(infoLog, "\x00\n")
}

// programLog fetches a program's info log.
func programLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	infoLog := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
	return strings.TrimRight(infoLog, "\x00\n")
}

// DeleteShader releases a shader object.
func (o *OpenGL) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

// LinkProgram links shaders into a program. The shader objects are
// released whatever the outcome: detached and deleted on success,
// deleted together with the partial program on failure.
func (o *OpenGL) LinkProgram(shaders []uint32) (uint32, error) {
	program := gl.CreateProgram()
	for _, s := range shaders {
		gl.AttachShader(program, s)
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		infoLog := programLog(program)
		for _, s := range shaders {
			gl.DetachShader(program, s)
			gl.DeleteShader(s)
		}
		gl.DeleteProgram(program)
		return 0, errstate.New(errstate.KindLink, "failed to link prog: %s", infoLog)
	}

	for _, s := range shaders {
		gl.DetachShader(program, s)
		gl.DeleteShader(s)
	}

	logger.Debug("shader program linked", zap.Uint32("program", program))
	return program, nil
}

// DeleteProgram releases a program object.
func (o *OpenGL) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

// UseProgram binds the program as active.
func (o *OpenGL) UseProgram(program uint32) {
	gl.UseProgram(program)
}

// uniform resolves a named location. Missing names yield -1, which GL
// accepts and ignores on upload.
func uniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (o *OpenGL) SetInt(program uint32, name string, v int32) {
	gl.Uniform1i(uniform(program, name), v)
}

func (o *OpenGL) SetFloat(program uint32, name string, v float32) {
	gl.Uniform1f(uniform(program, name), v)
}

func (o *OpenGL) SetVec2(program uint32, name string, v mgl32.Vec2) {
	gl.Uniform2fv(uniform(program, name), 1, &v[0])
}

func (o *OpenGL) SetVec3(program uint32, name string, v mgl32.Vec3) {
	gl.Uniform3fv(uniform(program, name), 1, &v[0])
}

func (o *OpenGL) SetVec4(program uint32, name string, v mgl32.Vec4) {
	gl.Uniform4fv(uniform(program, name), 1, &v[0])
}

func (o *OpenGL) SetMat2(program uint32, name string, v mgl32.Mat2) {
	gl.UniformMatrix2fv(uniform(program, name), 1, false, &v[0])
}

func (o *OpenGL) SetMat3(program uint32, name string, v mgl32.Mat3) {
	gl.UniformMatrix3fv(uniform(program, name), 1, false, &v[0])
}

func (o *OpenGL) SetMat4(program uint32, name string, v mgl32.Mat4) {
	gl.UniformMatrix4fv(uniform(program, name), 1, false, &v[0])
}

// CreateMeshBuffers uploads vertices (and indices, when present) and
// configures the attribute layout of model.Vertex.
func (o *OpenGL) CreateMeshBuffers(vertices []model.Vertex, indices []uint32) (MeshBuffers, error) {
	if len(vertices) == 0 {
		return MeshBuffers{}, errstate.New(errstate.KindResource, "mesh has no vertices")
	}

	var b MeshBuffers
	stride := int32(unsafe.Sizeof(model.Vertex{}))

	gl.GenVertexArrays(1, &b.VAO)
	gl.BindVertexArray(b.VAO)

	gl.GenBuffers(1, &b.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(stride),
		unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	if len(indices) > 0 {
		gl.GenBuffers(1, &b.EBO)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.EBO)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4,
			unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)
	}

	var v model.Vertex

	// Position (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride,
		unsafe.Pointer(unsafe.Offsetof(v.Position)))
	gl.EnableVertexAttribArray(0)

	// Normal (location = 1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride,
		unsafe.Pointer(unsafe.Offsetof(v.Normal)))
	gl.EnableVertexAttribArray(1)

	// UV (location = 2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride,
		unsafe.Pointer(unsafe.Offsetof(v.UV)))
	gl.EnableVertexAttribArray(2)

	// Tangent (location = 3)
	gl.VertexAttribPointer(3, 3, gl.FLOAT, false, stride,
		unsafe.Pointer(unsafe.Offsetof(v.Tangent)))
	gl.EnableVertexAttribArray(3)

	// Bitangent (location = 4)
	gl.VertexAttribPointer(4, 3, gl.FLOAT, false, stride,
		unsafe.Pointer(unsafe.Offsetof(v.Bitangent)))
	gl.EnableVertexAttribArray(4)

	// Bone IDs (location = 5, integer attribute)
	gl.VertexAttribIPointer(5, model.MaxBoneInfluence, gl.INT, stride,
		unsafe.Pointer(unsafe.Offsetof(v.BoneIDs)))
	gl.EnableVertexAttribArray(5)

	// Bone weights (location = 6)
	gl.VertexAttribPointer(6, model.MaxBoneInfluence, gl.FLOAT, false, stride,
		unsafe.Pointer(unsafe.Offsetof(v.BoneWeights)))
	gl.EnableVertexAttribArray(6)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	logger.Debug("mesh buffers created",
		zap.Uint32("vao", b.VAO),
		zap.Uint32("vbo", b.VBO),
		zap.Uint32("ebo", b.EBO),
		zap.Int("vertices", len(vertices)),
		zap.Int("indices", len(indices)),
	)
	return b, nil
}

// DeleteMeshBuffers releases whichever handles are nonzero and zeroes
// them.
func (o *OpenGL) DeleteMeshBuffers(b *MeshBuffers) {
	if b.VAO != 0 {
		gl.DeleteVertexArrays(1, &b.VAO)
		b.VAO = 0
	}
	if b.VBO != 0 {
		gl.DeleteBuffers(1, &b.VBO)
		b.VBO = 0
	}
	if b.EBO != 0 {
		gl.DeleteBuffers(1, &b.EBO)
		b.EBO = 0
	}
}

// DrawMesh issues one triangle draw for the mesh.
func (o *OpenGL) DrawMesh(b MeshBuffers, vertexCount, indexCount int) {
	gl.BindVertexArray(b.VAO)
	if indexCount > 0 && b.EBO != 0 {
		gl.DrawElements(gl.TRIANGLES, int32(indexCount), gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, int32(vertexCount))
	}
}

// UnbindVertexArray unbinds the current vertex array.
func (o *OpenGL) UnbindVertexArray() {
	gl.BindVertexArray(0)
}

// ResetBindings unbinds vertex array, buffers and program.
func (o *OpenGL) ResetBindings() {
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
	gl.UseProgram(0)
}

// CreateTexture uploads decoded pixels as a mipmapped 2D texture with
// repeat wrapping and linear filtering.
func (o *OpenGL) CreateTexture(img *texture.Image) (uint32, error) {
	if img == nil || len(img.Pixels) == 0 {
		return 0, errstate.New(errstate.KindExternalLoad, "failed to load texture")
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	format := int32(gl.RGB)
	switch img.Channels {
	case 1:
		format = gl.RED
	case 3:
		format = gl.RGB
	case 4:
		format = gl.RGBA
	}

	gl.TexImage2D(gl.TEXTURE_2D, 0, format, int32(img.Width), int32(img.Height),
		0, uint32(format), gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pixels[0]))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	logger.Debug("texture created",
		zap.Uint32("id", id),
		zap.Int("width", img.Width),
		zap.Int("height", img.Height),
		zap.Int("channels", img.Channels),
	)
	return id, nil
}

// DeleteTextures bulk-releases texture handles. A nil or empty slice
// is a no-op.
func (o *OpenGL) DeleteTextures(ids []uint32) {
	if len(ids) == 0 {
		return
	}
	gl.DeleteTextures(int32(len(ids)), &ids[0])
}
