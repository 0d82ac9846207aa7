// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// SphereVertexShader transforms positions by uMVP.
//
//go:embed sphere.vert
var SphereVertexShader string

// SphereFragmentShader shades with uColor and a fixed directional light.
//
//go:embed sphere.frag
var SphereFragmentShader string
