package camera

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ViewCamera is the demo's fixed viewpoint: it looks at the origin from a
// corner position and never moves. It produces both the explicit view matrix
// for transform composition and the rl.Camera3D used to enter 3D mode.
type ViewCamera struct {
	Eye    rl.Vector3
	Target rl.Vector3
	Up     rl.Vector3
	FovY   float32 // Vertical field of view in degrees
}

func New() *ViewCamera {
	return &ViewCamera{
		Eye:    rl.Vector3{X: 3, Y: 3, Z: 3},
		Target: rl.Vector3{},
		Up:     rl.Vector3{Y: 1},
		FovY:   45,
	}
}

// ViewMatrix returns the world-to-view transform.
func (c *ViewCamera) ViewMatrix() rl.Matrix {
	return rl.MatrixLookAt(c.Eye, c.Target, c.Up)
}

func (c *ViewCamera) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Eye,
		Target:     c.Target,
		Up:         c.Up,
		Fovy:       c.FovY,
		Projection: rl.CameraPerspective,
	}
}
