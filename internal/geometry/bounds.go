package geometry

import rl "github.com/gen2brain/raylib-go/raylib"

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// Bounds computes the axis-aligned bounding box of a vertex table.
// Returns a zero box for an empty table.
func Bounds(verts []Vertex) AABB {
	if len(verts) == 0 {
		return AABB{}
	}
	b := AABB{Min: verts[0].Position, Max: verts[0].Position}
	for _, v := range verts[1:] {
		b.Min = rl.Vector3Min(b.Min, v.Position)
		b.Max = rl.Vector3Max(b.Max, v.Position)
	}
	return b
}

func (a AABB) Center() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(a.Min, a.Max), 0.5)
}

func (a AABB) Size() rl.Vector3 {
	return rl.Vector3Subtract(a.Max, a.Min)
}

// Box converts to raylib's bounding-box type for wireframe drawing.
func (a AABB) Box() rl.BoundingBox {
	return rl.BoundingBox{Min: a.Min, Max: a.Max}
}
