// Package main is a minimal demo: a lit cube and a ground plane with
// free-look camera.
package main

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/skr/internal/config"
	"github.com/Faultbox/skr/internal/engine"
	"github.com/Faultbox/skr/internal/engine/gfx"
	"github.com/Faultbox/skr/internal/engine/model"
	"github.com/Faultbox/skr/internal/engine/shader"
	"github.com/Faultbox/skr/internal/engine/shader/builtin"
	"github.com/Faultbox/skr/internal/engine/texture"
	"github.com/Faultbox/skr/internal/engine/window"
	"github.com/Faultbox/skr/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== skr demo ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	e, err := engine.New(cfg)
	if err != nil {
		logger.Error("failed to create engine", zap.Error(err))
		os.Exit(1)
	}
	defer e.Close()

	prog, err := e.BuildProgram([]shader.Descriptor{
		{Stage: gfx.StageVertex, Source: builtin.VertexShader},
		{Stage: gfx.StageFragment, Source: builtin.FragmentShader},
	})
	if err != nil {
		logger.Error("failed to build program", zap.Error(err))
		os.Exit(1)
	}

	cube := cubeModel(prog.ID())
	plane := planeModel(prog.ID())

	// an optional diffuse texture next to the binary
	if _, statErr := os.Stat("diffuse.tga"); statErr == nil {
		ids, texErr := e.LoadTextures(&texture.TGALoader{}, []string{"diffuse.tga"})
		if texErr != nil {
			logger.Warn("texture load failed", zap.Error(texErr))
		} else {
			cube.Meshes[0].Textures = []texture.Texture{
				{ID: ids[0], Role: texture.RoleDiffuse, Path: "diffuse.tga"},
			}
		}
	}

	if err := e.AddModel(cube); err != nil {
		logger.Error("failed to upload cube", zap.Error(err))
		os.Exit(1)
	}
	if err := e.AddModel(plane); err != nil {
		logger.Error("failed to upload plane", zap.Error(err))
		os.Exit(1)
	}

	lightDir := mgl32.Vec3{-0.4, -1, -0.3}.Normalize()

	e.Window.InputHandler = func(w *window.Window) {
		prog.Use()
		prog.SetMat4("model", mgl32.Ident4())
		prog.SetMat4("view", e.Camera.ViewMatrix())
		prog.SetMat4("projection", e.Camera.ProjectionMatrix(e.Aspect()))
		prog.SetVec3("lightDir", lightDir)
	}

	e.Run()

	logger.Info("demo closed normally")
}

// cubeModel builds a unit cube, 24 vertices with per-face normals,
// indexed.
func cubeModel(program uint32) *model.Model {
	faces := []struct {
		normal  mgl32.Vec3
		corners [4]mgl32.Vec3
	}{
		{mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5}}},
		{mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{{0.5, -0.5, -0.5}, {-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5}}},
		{mgl32.Vec3{1, 0, 0}, [4]mgl32.Vec3{{0.5, -0.5, 0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}}},
		{mgl32.Vec3{-1, 0, 0}, [4]mgl32.Vec3{{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5}}},
		{mgl32.Vec3{0, 1, 0}, [4]mgl32.Vec3{{-0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5}}},
		{mgl32.Vec3{0, -1, 0}, [4]mgl32.Vec3{{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5}}},
	}
	uvs := [4]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	var vertices []model.Vertex
	var indices []uint32
	for _, f := range faces {
		base := uint32(len(vertices))
		for i, c := range f.corners {
			vertices = append(vertices, model.Vertex{
				Position: c,
				Normal:   f.normal,
				UV:       uvs[i],
			})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}

	return &model.Model{
		Path: "builtin:cube",
		Meshes: []model.Mesh{{
			Vertices: vertices,
			Indices:  indices,
			Program:  program,
		}},
	}
}

// planeModel builds a non-indexed ground quad at y = -1.
func planeModel(program uint32) *model.Model {
	up := mgl32.Vec3{0, 1, 0}
	corners := [4]mgl32.Vec3{
		{-5, -1, -5}, {5, -1, -5}, {5, -1, 5}, {-5, -1, 5},
	}
	uvs := [4]mgl32.Vec2{{0, 0}, {4, 0}, {4, 4}, {0, 4}}

	quad := [6]int{0, 1, 2, 0, 2, 3}
	vertices := make([]model.Vertex, 0, 6)
	for _, i := range quad {
		vertices = append(vertices, model.Vertex{
			Position: corners[i],
			Normal:   up,
			UV:       uvs[i],
		})
	}

	return &model.Model{
		Path: "builtin:plane",
		Meshes: []model.Mesh{{
			Vertices: vertices,
			Program:  program,
		}},
	}
}
