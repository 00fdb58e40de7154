// Package shaders provides the GLSL programs for the sky dome and star field.
// They mirror the CPU evaluator in the atmosphere package uniform for uniform.
package shaders

import _ "embed"

// SkyVertexShader is the vertex shader for the sky dome.
//
//go:embed sky.vert
var SkyVertexShader string

// SkyFragmentShader is the fragment shader for the sky dome.
//
//go:embed sky.frag
var SkyFragmentShader string

// StarVertexShader is the vertex shader for the star points.
//
//go:embed star.vert
var StarVertexShader string

// StarFragmentShader is the fragment shader for the star points.
//
//go:embed star.frag
var StarFragmentShader string
