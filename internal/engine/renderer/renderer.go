// Package renderer owns GPU resource lifecycle and the draw pass.
package renderer

import (
	"go.uber.org/zap"

	"github.com/Faultbox/skr/internal/engine/gfx"
	"github.com/Faultbox/skr/internal/engine/model"
	"github.com/Faultbox/skr/internal/engine/texture"
	"github.com/Faultbox/skr/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
	// ClearColor is the frame background, RGBA in [0,1].
	ClearColor [4]float32
}

// Renderer drives a gfx backend: resource creation, the per-frame draw
// pass, and teardown.
type Renderer struct {
	api    gfx.API
	config Config
}

// New initializes the backend and default state. Must be called after
// the window has made a rendering context current.
func New(api gfx.API, cfg Config) (*Renderer, error) {
	if err := api.Init(); err != nil {
		return nil, err
	}

	api.Viewport(cfg.Width, cfg.Height)
	api.SetClearColor(cfg.ClearColor[0], cfg.ClearColor[1], cfg.ClearColor[2], cfg.ClearColor[3])

	return &Renderer{api: api, config: cfg}, nil
}

// API exposes the backend for program building.
func (r *Renderer) API() gfx.API { return r.api }

// Resize updates the viewport to a new framebuffer size.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	r.api.Viewport(width, height)
	logger.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

// Clear clears the color and depth buffers.
func (r *Renderer) Clear() {
	r.api.Clear()
}

// UploadMesh creates the mesh's GPU buffers from its CPU-side data and
// stores the handles on it.
func (r *Renderer) UploadMesh(m *model.Mesh) error {
	buffers, err := r.api.CreateMeshBuffers(m.Vertices, m.Indices)
	if err != nil {
		return err
	}
	m.VAO, m.VBO, m.EBO = buffers.VAO, buffers.VBO, buffers.EBO
	return nil
}

// UploadModel uploads every mesh of a model. On failure the meshes
// uploaded earlier are released again, so the model either ends up
// fully on the GPU or not at all.
func (r *Renderer) UploadModel(mod *model.Model) error {
	for i := range mod.Meshes {
		if err := r.UploadMesh(&mod.Meshes[i]); err != nil {
			for j := range mod.Meshes[:i] {
				m := &mod.Meshes[j]
				buffers := gfx.MeshBuffers{VAO: m.VAO, VBO: m.VBO, EBO: m.EBO}
				r.api.DeleteMeshBuffers(&buffers)
				m.VAO, m.VBO, m.EBO = 0, 0, 0
			}
			return err
		}
	}
	return nil
}

// CreateTexture2D loads an image through the embedder's loader and
// uploads it. The CPU-side pixels are released through the loader once
// uploaded; a load failure allocates nothing on the GPU.
func (r *Renderer) CreateTexture2D(loader texture.ImageLoader, path string) (uint32, error) {
	img, err := loader.Load(path)
	if err != nil {
		return 0, err
	}
	if img == nil || len(img.Pixels) == 0 {
		return 0, texture.LoadError(path)
	}

	id, err := r.api.CreateTexture(img)
	loader.Free(img)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// CreateTextures2D loads a batch of textures in path order. On any
// failure the textures created earlier in the batch are released and
// the error is returned, so the batch either fully succeeds or leaves
// nothing behind.
func (r *Renderer) CreateTextures2D(loader texture.ImageLoader, paths []string) ([]uint32, error) {
	ids := make([]uint32, 0, len(paths))
	for _, path := range paths {
		id, err := r.CreateTexture2D(loader, path)
		if err != nil {
			r.api.DeleteTextures(ids)
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// DestroyTextures bulk-releases texture handles. Empty input is a
// no-op.
func (r *Renderer) DestroyTextures(ids []uint32) {
	r.api.DeleteTextures(ids)
}

// RenderAll draws every uploaded mesh of every model: bind the mesh's
// program and vertex array, then submit an indexed draw when the mesh
// has indices and a plain triangle draw otherwise. Meshes without GPU
// buffers or vertices are skipped. The vertex array is unbound once at
// the end of the pass.
func (r *Renderer) RenderAll(models []*model.Model) {
	for _, mod := range models {
		for i := range mod.Meshes {
			m := &mod.Meshes[i]
			if m.VAO == 0 || m.VertexCount() == 0 {
				continue
			}
			r.api.UseProgram(m.Program)
			r.api.DrawMesh(gfx.MeshBuffers{VAO: m.VAO, VBO: m.VBO, EBO: m.EBO},
				m.VertexCount(), m.IndexCount())
		}
	}
	r.api.UnbindVertexArray()
}

// FinalizeAll tears down every GPU resource owned by the models:
// textures first, then vertex/index buffers, zeroing all handles so a
// second sweep is a no-op. Backend binding state is reset afterwards.
func (r *Renderer) FinalizeAll(models []*model.Model) {
	for _, mod := range models {
		for i := range mod.Meshes {
			m := &mod.Meshes[i]

			ids := make([]uint32, 0, len(m.Textures))
			for _, t := range m.Textures {
				if t.ID != 0 {
					ids = append(ids, t.ID)
				}
			}
			r.api.DeleteTextures(ids)
			for j := range m.Textures {
				m.Textures[j].ID = 0
			}

			buffers := gfx.MeshBuffers{VAO: m.VAO, VBO: m.VBO, EBO: m.EBO}
			r.api.DeleteMeshBuffers(&buffers)
			m.VAO, m.VBO, m.EBO = 0, 0, 0
			m.Program = 0
		}

		ids := make([]uint32, 0, len(mod.Textures))
		for _, t := range mod.Textures {
			if t.ID != 0 {
				ids = append(ids, t.ID)
			}
		}
		r.api.DeleteTextures(ids)
		for j := range mod.Textures {
			mod.Textures[j].ID = 0
		}
	}

	r.api.ResetBindings()
	logger.Info("renderer finalized", zap.Int("models", len(models)))
}
