package scene

import (
	"math"

	"cubeview/internal/camera"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	NearPlane float32 = 0.1
	FarPlane  float32 = 100.0
)

// Scene holds the per-frame transform state: the rotation angle, the model
// matrix derived from it, the fixed view matrix, and the projection matrix
// derived from the current viewport.
type Scene struct {
	Angle float32 // degrees, always normalized into [0, 360)
	Step  float32 // degrees added per tick

	Model rl.Matrix
	View  rl.Matrix
	Proj  rl.Matrix

	Camera *camera.ViewCamera

	width  int32
	height int32
}

// New creates a scene for the given viewport size. The view matrix is fixed
// at construction and never changes; the projection follows the viewport.
func New(width, height int32) *Scene {
	cam := camera.New()
	s := &Scene{
		Step:   1.0,
		Model:  rl.MatrixIdentity(),
		View:   cam.ViewMatrix(),
		Camera: cam,
	}
	s.OnResize(width, height)
	return s
}

// Advance moves the rotation one tick forward: the angle grows by Step,
// wraps into [0, 360), and the model matrix becomes a pure Y-axis rotation
// by the new angle.
func (s *Scene) Advance() {
	s.Angle = wrapAngle(s.Angle + s.Step)
	s.Model = rl.MatrixRotateY(s.Angle * rl.Deg2rad)
}

// Reset returns the rotation to its starting state.
func (s *Scene) Reset() {
	s.Angle = 0
	s.Model = rl.MatrixIdentity()
}

// OnResize updates the viewport dimensions and recomputes the projection.
// A zero height yields aspect ratio 1 instead of dividing by zero.
func (s *Scene) OnResize(width, height int32) {
	s.width = width
	s.height = height

	aspect := float32(1)
	if height != 0 {
		aspect = float32(width) / float32(height)
	}
	s.Proj = rl.MatrixPerspective(s.Camera.FovY*rl.Deg2rad, aspect, NearPlane, FarPlane)
}

// Viewport returns the dimensions from the last resize.
func (s *Scene) Viewport() (width, height int32) {
	return s.width, s.height
}

func wrapAngle(a float32) float32 {
	a = float32(math.Mod(float64(a), 360))
	if a < 0 {
		a += 360
	}
	return a
}
