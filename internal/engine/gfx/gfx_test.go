package gfx

import (
	"testing"
)

func TestStageLabels(t *testing.T) {
	tests := []struct {
		stage Stage
		want  string
	}{
		{StageVertex, "vert"},
		{StageFragment, "frag"},
		{StageGeometry, "geom"},
		{StageCompute, "comp"},
		{StageTessControl, "tesc"},
		{StageTessEval, "tese"},
		{Stage(-1), "unknown"},
		{Stage(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.stage.Label(); got != tt.want {
			t.Errorf("Stage(%d).Label() = %q, want %q", tt.stage, got, tt.want)
		}
	}
}

func TestNewSelectsBackend(t *testing.T) {
	api, err := New("opengl")
	if err != nil {
		t.Fatalf("New(opengl) failed: %v", err)
	}
	if api.Name() != "opengl" {
		t.Errorf("expected opengl backend, got %q", api.Name())
	}

	// empty name defaults to OpenGL
	api, err = New("")
	if err != nil {
		t.Fatalf("New(\"\") failed: %v", err)
	}
	if api.Name() != "opengl" {
		t.Errorf("expected opengl default, got %q", api.Name())
	}

	api, err = New("vulkan")
	if err != nil {
		t.Fatalf("New(vulkan) failed: %v", err)
	}
	if api.Name() != "vulkan" {
		t.Errorf("expected vulkan backend, got %q", api.Name())
	}

	if _, err := New("metal"); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestVulkanStubUnsupported(t *testing.T) {
	v := &Vulkan{}

	if err := v.Init(); err == nil {
		t.Error("vulkan Init should report unsupported")
	}
	if _, err := v.CompileShader(StageVertex, "void main() {}"); err == nil {
		t.Error("vulkan CompileShader should report unsupported")
	}
	if _, err := v.LinkProgram(nil); err == nil {
		t.Error("vulkan LinkProgram should report unsupported")
	}
	if _, err := v.CreateMeshBuffers(nil, nil); err == nil {
		t.Error("vulkan CreateMeshBuffers should report unsupported")
	}
	if _, err := v.CreateTexture(nil); err == nil {
		t.Error("vulkan CreateTexture should report unsupported")
	}
}
