package render

import (
	"cubeview/internal/geometry"
	"cubeview/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer owns the retained geometry buffers and submits them each frame
// under one shared model-view-projection transform. The axes intentionally
// rotate together with the cube: both are drawn under the same model matrix.
type Renderer struct {
	ShowAxes   bool
	ShowBounds bool

	axes   []geometry.Vertex
	cube   rl.Model
	bounds geometry.AABB

	// User geometries queued by AddGeometry. Uploads need a live GL
	// context, so they wait here until the next frame.
	pending [][]geometry.Vertex
	extra   []rl.Model

	ready bool
}

func New() *Renderer {
	return &Renderer{
		ShowAxes: true,
		axes:     geometry.Axes(),
	}
}

// Initialize uploads the cube vertex table to the GPU as an indexed mesh.
// Must be called after the window exists.
func (r *Renderer) Initialize() {
	verts := geometry.Cube()
	mesh := geometry.QuadMesh(verts)
	rl.UploadMesh(&mesh, false)
	r.cube = rl.LoadModelFromMesh(mesh)
	r.bounds = geometry.Bounds(verts)
	r.ready = true
}

// AddGeometry queues an extra triangle-list geometry for rendering. A
// trailing partial triangle is dropped. The built-in axes and cube tables
// are never touched. Safe to call before Initialize.
func (r *Renderer) AddGeometry(verts []geometry.Vertex) {
	n := len(verts) - len(verts)%3
	if n == 0 {
		return
	}
	buf := make([]geometry.Vertex, n)
	copy(buf, verts[:n])
	r.pending = append(r.pending, buf)
}

// Draw renders one frame of the scene: it loads the scene's projection and
// the composed model×view as the active transforms, then submits the axes
// as line segments and the cube as a single indexed draw call.
func (r *Renderer) Draw(s *scene.Scene) {
	if !r.ready {
		return
	}
	r.uploadPending()

	rl.BeginMode3D(s.Camera.GetRaylibCamera())

	// Override the matrices BeginMode3D derived from the camera with the
	// scene's explicit ones, so resize handling and the shared model
	// transform stay in one place.
	rl.SetMatrixProjection(s.Proj)
	rl.SetMatrixModelview(rl.MatrixMultiply(s.Model, s.View))

	// Faces are authored without consistent winding; draw both sides and
	// let the depth buffer sort visibility.
	rl.DisableBackfaceCulling()

	if r.ShowAxes {
		r.drawAxes()
	}
	rl.DrawModel(r.cube, rl.Vector3Zero(), 1.0, rl.White)
	for _, m := range r.extra {
		rl.DrawModel(m, rl.Vector3Zero(), 1.0, rl.White)
	}

	rl.EnableBackfaceCulling()

	if r.ShowBounds {
		rl.DrawBoundingBox(r.bounds.Box(), rl.Green)
	}

	rl.EndMode3D()
}

func (r *Renderer) drawAxes() {
	for i := 0; i+1 < len(r.axes); i += 2 {
		a, b := r.axes[i], r.axes[i+1]
		rl.DrawLine3D(a.Position, b.Position, a.RGBA())
	}
}

func (r *Renderer) uploadPending() {
	for _, verts := range r.pending {
		mesh := geometry.TriangleMesh(verts)
		rl.UploadMesh(&mesh, false)
		r.extra = append(r.extra, rl.LoadModelFromMesh(mesh))
	}
	r.pending = nil
}

// Unload releases the GPU buffers. Queued-but-never-uploaded geometries
// need no cleanup.
func (r *Renderer) Unload() {
	if !r.ready {
		return
	}
	rl.UnloadModel(r.cube)
	for _, m := range r.extra {
		rl.UnloadModel(m)
	}
	r.extra = nil
	r.ready = false
}
