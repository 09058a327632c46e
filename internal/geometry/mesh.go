package geometry

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// QuadMesh packs a quad-face vertex table (4 vertices per face) into a
// raylib mesh with two indexed triangles per face. The mesh references the
// returned buffers directly; upload with rl.UploadMesh before drawing.
func QuadMesh(verts []Vertex) rl.Mesh {
	faceCount := len(verts) / 4
	if faceCount == 0 {
		return rl.Mesh{}
	}
	verts = verts[:faceCount*4]

	indices := make([]uint16, 0, faceCount*6)
	for f := 0; f < faceCount; f++ {
		base := uint16(f * 4)
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}

	mesh := packMesh(verts, faceCount*2)
	mesh.Indices = &indices[0]
	return mesh
}

// TriangleMesh packs a triangle-list vertex table into an unindexed raylib
// mesh. A trailing partial triangle is dropped.
func TriangleMesh(verts []Vertex) rl.Mesh {
	triCount := len(verts) / 3
	if triCount == 0 {
		return rl.Mesh{}
	}
	return packMesh(verts[:triCount*3], triCount)
}

func packMesh(verts []Vertex, triangleCount int) rl.Mesh {
	positions := make([]float32, 0, len(verts)*3)
	colors := make([]uint8, 0, len(verts)*4)
	for _, v := range verts {
		positions = append(positions, v.Position.X, v.Position.Y, v.Position.Z)
		colors = append(colors, colorByte(v.R), colorByte(v.G), colorByte(v.B), 255)
	}

	mesh := rl.Mesh{
		VertexCount:   int32(len(verts)),
		TriangleCount: int32(triangleCount),
	}
	mesh.Vertices = &positions[0]
	mesh.Colors = &colors[0]
	return mesh
}
