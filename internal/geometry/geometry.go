package geometry

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Vertex is one point of renderable geometry: an object-space position plus
// an RGB color with components in [0, 1].
type Vertex struct {
	Position rl.Vector3
	R, G, B  float32
}

// RGBA converts the vertex color to raylib's 8-bit color format.
func (v Vertex) RGBA() rl.Color {
	return rl.NewColor(colorByte(v.R), colorByte(v.G), colorByte(v.B), 255)
}

func colorByte(c float32) uint8 {
	if c <= 0 {
		return 0
	}
	if c >= 1 {
		return 255
	}
	return uint8(c*255 + 0.5)
}

// Coordinate axes: three line segments from the origin to the unit basis
// vectors, colored red (X), green (Y) and blue (Z). Two vertices per segment.
var axesTable = [6]Vertex{
	{Position: rl.Vector3{}, R: 1},
	{Position: rl.Vector3{X: 1}, R: 1},
	{Position: rl.Vector3{}, G: 1},
	{Position: rl.Vector3{Y: 1}, G: 1},
	{Position: rl.Vector3{}, B: 1},
	{Position: rl.Vector3{Z: 1}, B: 1},
}

// Unit cube centered on the origin, six faces of four vertices each, one
// flat color per face. Order: front, back, left, right, top, bottom.
var cubeTable = [24]Vertex{
	// Front face (cyan)
	{Position: rl.Vector3{X: -0.5, Y: -0.5, Z: 0.5}, G: 1, B: 1},
	{Position: rl.Vector3{X: 0.5, Y: -0.5, Z: 0.5}, G: 1, B: 1},
	{Position: rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}, G: 1, B: 1},
	{Position: rl.Vector3{X: -0.5, Y: 0.5, Z: 0.5}, G: 1, B: 1},

	// Back face (magenta)
	{Position: rl.Vector3{X: -0.5, Y: -0.5, Z: -0.5}, R: 1, B: 1},
	{Position: rl.Vector3{X: 0.5, Y: -0.5, Z: -0.5}, R: 1, B: 1},
	{Position: rl.Vector3{X: 0.5, Y: 0.5, Z: -0.5}, R: 1, B: 1},
	{Position: rl.Vector3{X: -0.5, Y: 0.5, Z: -0.5}, R: 1, B: 1},

	// Left face (yellow)
	{Position: rl.Vector3{X: -0.5, Y: -0.5, Z: -0.5}, R: 1, G: 1},
	{Position: rl.Vector3{X: -0.5, Y: -0.5, Z: 0.5}, R: 1, G: 1},
	{Position: rl.Vector3{X: -0.5, Y: 0.5, Z: 0.5}, R: 1, G: 1},
	{Position: rl.Vector3{X: -0.5, Y: 0.5, Z: -0.5}, R: 1, G: 1},

	// Right face (green)
	{Position: rl.Vector3{X: 0.5, Y: -0.5, Z: -0.5}, G: 1},
	{Position: rl.Vector3{X: 0.5, Y: -0.5, Z: 0.5}, G: 1},
	{Position: rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}, G: 1},
	{Position: rl.Vector3{X: 0.5, Y: 0.5, Z: -0.5}, G: 1},

	// Top face (blue)
	{Position: rl.Vector3{X: -0.5, Y: 0.5, Z: -0.5}, B: 1},
	{Position: rl.Vector3{X: -0.5, Y: 0.5, Z: 0.5}, B: 1},
	{Position: rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}, B: 1},
	{Position: rl.Vector3{X: 0.5, Y: 0.5, Z: -0.5}, B: 1},

	// Bottom face (red)
	{Position: rl.Vector3{X: -0.5, Y: -0.5, Z: -0.5}, R: 1},
	{Position: rl.Vector3{X: -0.5, Y: -0.5, Z: 0.5}, R: 1},
	{Position: rl.Vector3{X: 0.5, Y: -0.5, Z: 0.5}, R: 1},
	{Position: rl.Vector3{X: 0.5, Y: -0.5, Z: -0.5}, R: 1},
}

// Axes returns a copy of the coordinate-axes vertex table. The backing table
// is never mutated after package initialization.
func Axes() []Vertex {
	out := make([]Vertex, len(axesTable))
	copy(out, axesTable[:])
	return out
}

// Cube returns a copy of the cube vertex table. The backing table is never
// mutated after package initialization.
func Cube() []Vertex {
	out := make([]Vertex, len(cubeTable))
	copy(out, cubeTable[:])
	return out
}
