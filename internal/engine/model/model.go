// Package model defines the in-memory mesh and model representation.
//
// These are plain data carriers: GPU handle creation, drawing, and
// teardown live in the renderer, parsing of model files is the
// embedding application's job.
package model

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/skr/internal/engine/texture"
)

// MaxBoneInfluence is the number of bones that can affect one vertex.
// Four is the common real-time budget.
const MaxBoneInfluence = 4

// Vertex holds the per-vertex attributes uploaded to the GPU.
type Vertex struct {
	// Position in object space.
	Position mgl32.Vec3

	// Normal used for lighting.
	Normal mgl32.Vec3

	// UV texture coordinates, typically in [0, 1].
	UV mgl32.Vec2

	// Tangent is the direction of increasing U in tangent space.
	Tangent mgl32.Vec3

	// Bitangent is the direction of increasing V, orthogonal to
	// Normal and Tangent.
	Bitangent mgl32.Vec3

	// BoneIDs index bones in the skeleton.
	BoneIDs [MaxBoneInfluence]int32

	// BoneWeights are the matching influence weights, typically
	// normalized so they sum to 1.
	BoneWeights [MaxBoneInfluence]float32
}

// Mesh is a single drawable: GPU buffer handles plus the CPU-side data
// they were built from. Handles are zero until the mesh is uploaded and
// are reset to zero on teardown.
type Mesh struct {
	// VAO is the vertex array object describing the attribute layout.
	VAO uint32
	// VBO is the vertex buffer object holding Vertices.
	VBO uint32
	// EBO is the element buffer object holding Indices. Zero when the
	// mesh draws non-indexed.
	EBO uint32

	// Vertices is the CPU copy of the vertex data. May be released
	// after upload.
	Vertices []Vertex

	// Indices is the CPU copy of the index data. Empty for non-indexed
	// meshes.
	Indices []uint32

	// Textures are the material textures bound when drawing this mesh.
	Textures []texture.Texture

	// Program is the shader program handle used to draw this mesh.
	Program uint32

	// counts kept across ReleaseVertices so the mesh stays drawable
	releasedVertexCount int
	releasedIndexCount  int
}

// VertexCount returns the number of vertices the mesh draws with, even
// after the CPU copy has been released.
func (m *Mesh) VertexCount() int {
	if m.Vertices == nil {
		return m.releasedVertexCount
	}
	return len(m.Vertices)
}

// IndexCount returns the number of indices the mesh draws with, even
// after the CPU copy has been released.
func (m *Mesh) IndexCount() int {
	if m.Indices == nil {
		return m.releasedIndexCount
	}
	return len(m.Indices)
}

// Indexed reports whether the mesh draws with index data.
func (m *Mesh) Indexed() bool { return m.EBO != 0 && m.IndexCount() > 0 }

// ReleaseVertices drops the CPU-side vertex and index copies. Valid
// once the mesh has been uploaded; the GPU buffers keep the data and
// the counts survive for drawing.
func (m *Mesh) ReleaseVertices() {
	m.releasedVertexCount = len(m.Vertices)
	m.releasedIndexCount = len(m.Indices)
	m.Vertices = nil
	m.Indices = nil
}

// Model is a group of meshes plus textures shared between them,
// identified by the path it was loaded from.
type Model struct {
	Path     string
	Meshes   []Mesh
	Textures []texture.Texture
}
