// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// PhongVertexShader transforms vertices and carries world position,
// normal and texcoord to the fragment stage.
//
//go:embed phong.vert
var PhongVertexShader string

// PhongFragmentShader implements per-pixel Phong shading with a texture
// toggle, an unlit toggle for sky elements, and an alpha multiplier.
//
//go:embed phong.frag
var PhongFragmentShader string
