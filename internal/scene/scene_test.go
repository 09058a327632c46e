package scene

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const epsilon = 1e-5

func matrixFields(m rl.Matrix) [16]float32 {
	return [16]float32{
		m.M0, m.M1, m.M2, m.M3,
		m.M4, m.M5, m.M6, m.M7,
		m.M8, m.M9, m.M10, m.M11,
		m.M12, m.M13, m.M14, m.M15,
	}
}

func matricesNear(t *testing.T, got, want rl.Matrix, context string) {
	t.Helper()
	g, w := matrixFields(got), matrixFields(want)
	for i := range g {
		if math.Abs(float64(g[i]-w[i])) > epsilon {
			t.Errorf("%s: matrix field %d = %v, want %v", context, i, g[i], w[i])
			return
		}
	}
}

func TestAdvanceWrapsAngle(t *testing.T) {
	starts := []float32{0, 1.5, 359.5, 360, 720.25, -1, -730}

	for _, start := range starts {
		s := New(800, 600)
		s.Angle = start

		for i := 0; i < 1000; i++ {
			s.Advance()
			if s.Angle < 0 || s.Angle >= 360 {
				t.Fatalf("start %v: angle %v out of [0, 360) after %d advances", start, s.Angle, i+1)
			}
		}
	}
}

func TestAdvanceFullCircle(t *testing.T) {
	s := New(800, 600)

	for i := 0; i < 360; i++ {
		s.Advance()
	}

	if math.Abs(float64(s.Angle)) > epsilon {
		t.Errorf("Expected angle 0 after 360 advances, got %v", s.Angle)
	}
	matricesNear(t, s.Model, rl.MatrixIdentity(), "model after full circle")
}

func TestAdvanceStep(t *testing.T) {
	s := New(800, 600)
	s.Step = 90

	for i := 0; i < 4; i++ {
		s.Advance()
	}

	if math.Abs(float64(s.Angle)) > epsilon {
		t.Errorf("Expected angle 0 after 4 advances of 90, got %v", s.Angle)
	}
}

func TestAdvanceModelIsYRotation(t *testing.T) {
	s := New(800, 600)
	s.Advance()

	matricesNear(t, s.Model, rl.MatrixRotateY(1*rl.Deg2rad), "model after one advance")
}

func TestOnResizeZeroHeight(t *testing.T) {
	s := New(800, 600)
	s.OnResize(800, 0)

	want := rl.MatrixPerspective(45*rl.Deg2rad, 1, NearPlane, FarPlane)
	matricesNear(t, s.Proj, want, "projection with zero height")
}

func TestOnResizeAspect(t *testing.T) {
	s := New(100, 100)
	s.OnResize(800, 600)

	want := rl.MatrixPerspective(45*rl.Deg2rad, 800.0/600.0, NearPlane, FarPlane)
	matricesNear(t, s.Proj, want, "projection for 800x600")

	// Decompose: M5 = 1/tan(fov/2), M0 = M5/aspect
	f := 1 / float32(math.Tan(45*math.Pi/180/2))
	if math.Abs(float64(s.Proj.M5-f)) > epsilon {
		t.Errorf("Expected M5 %v (focal), got %v", f, s.Proj.M5)
	}
	aspect := s.Proj.M5 / s.Proj.M0
	if math.Abs(float64(aspect)-800.0/600.0) > epsilon {
		t.Errorf("Expected aspect 1.333..., got %v", aspect)
	}

	if w, h := s.Viewport(); w != 800 || h != 600 {
		t.Errorf("Expected viewport 800x600, got %dx%d", w, h)
	}
}

func TestViewMatrixFixed(t *testing.T) {
	s := New(800, 600)

	want := rl.MatrixLookAt(rl.Vector3{X: 3, Y: 3, Z: 3}, rl.Vector3{}, rl.Vector3{Y: 1})
	matricesNear(t, s.View, want, "view at construction")

	s.Advance()
	s.OnResize(1024, 768)
	matricesNear(t, s.View, want, "view after advance and resize")
}

func TestReset(t *testing.T) {
	s := New(800, 600)
	for i := 0; i < 17; i++ {
		s.Advance()
	}

	s.Reset()

	if s.Angle != 0 {
		t.Errorf("Expected angle 0 after reset, got %v", s.Angle)
	}
	matricesNear(t, s.Model, rl.MatrixIdentity(), "model after reset")
}
