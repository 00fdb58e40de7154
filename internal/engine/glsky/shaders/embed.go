// Package shaders provides the GLSL programs for the ground plane.
package shaders

import _ "embed"

// GroundVertexShader is the vertex shader for the ground plane.
//
//go:embed ground.vert
var GroundVertexShader string

// GroundFragmentShader is the fragment shader for the ground plane.
//
//go:embed ground.frag
var GroundFragmentShader string
