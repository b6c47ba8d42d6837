package model

import "testing"

func TestCountsSurviveRelease(t *testing.T) {
	m := Mesh{
		Vertices: make([]Vertex, 4),
		Indices:  []uint32{0, 1, 2, 2, 3, 0},
		EBO:      5,
	}

	if m.VertexCount() != 4 || m.IndexCount() != 6 {
		t.Fatalf("counts = %d/%d, want 4/6", m.VertexCount(), m.IndexCount())
	}
	if !m.Indexed() {
		t.Error("mesh with EBO and indices should report indexed")
	}

	m.ReleaseVertices()

	if m.Vertices != nil || m.Indices != nil {
		t.Error("CPU copies not released")
	}
	if m.VertexCount() != 4 || m.IndexCount() != 6 {
		t.Errorf("counts after release = %d/%d, want 4/6", m.VertexCount(), m.IndexCount())
	}
	if !m.Indexed() {
		t.Error("released mesh should still report indexed")
	}
}

func TestNonIndexed(t *testing.T) {
	m := Mesh{Vertices: make([]Vertex, 3)}
	if m.Indexed() {
		t.Error("mesh without EBO should not report indexed")
	}
	if m.IndexCount() != 0 {
		t.Errorf("index count = %d, want 0", m.IndexCount())
	}
}
