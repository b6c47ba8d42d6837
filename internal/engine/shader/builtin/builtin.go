// Package builtin provides embedded GLSL sources for the default
// program.
package builtin

import _ "embed"

// VertexShader is the default vertex shader.
//
//go:embed basic.vert
var VertexShader string

// FragmentShader is the default fragment shader.
//
//go:embed basic.frag
var FragmentShader string
