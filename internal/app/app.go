package app

import (
	"log"
	"time"

	"cubeview/internal/config"
	"cubeview/internal/render"
	"cubeview/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// App is the application context: it owns the window, the per-frame tick,
// the scene state and the renderer. All of it lives on the one thread that
// owns the GL context.
type App struct {
	Scene    *scene.Scene
	Renderer *render.Renderer
	Prefs    config.Prefs

	Paused    bool
	ShowStats bool
	showPanel bool

	background rl.Color
	prefsPath  string

	// Frame timings (ms) for the stats overlay
	updateMs float64
	drawMs   float64
}

func New() *App {
	prefs := config.Load(config.PrefsPath)

	s := scene.New(prefs.Width, prefs.Height)
	s.Step = prefs.RotationStep

	r := render.New()
	r.ShowAxes = prefs.ShowAxes
	r.ShowBounds = prefs.ShowBounds

	return &App{
		Scene:      s,
		Renderer:   r,
		Prefs:      prefs,
		ShowStats:  prefs.ShowStats,
		background: prefs.BackgroundColor(),
		prefsPath:  config.PrefsPath,
	}
}

func (a *App) Run() {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi)
	rl.InitWindow(a.Prefs.Width, a.Prefs.Height, "3D Interface with Cube")
	defer rl.CloseWindow()

	rl.SetTargetFPS(a.Prefs.TargetFPS)

	// The created window can differ from the requested size (high-DPI
	// scaling, window-manager clamping) without firing IsWindowResized.
	a.Scene.OnResize(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))

	// Upload retained buffers after the GL context exists
	a.Renderer.Initialize()
	defer a.Renderer.Unload()

	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}

	a.savePrefs()
}

// Update runs one tick: handle resize and key toggles, then advance the
// rotation unless paused.
func (a *App) Update() {
	updateStart := time.Now()

	if rl.IsWindowResized() {
		a.Scene.OnResize(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
	}

	if rl.IsKeyPressed(rl.KeyF1) {
		a.ShowStats = !a.ShowStats
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		a.showPanel = !a.showPanel
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.Paused = !a.Paused
	}

	if !a.Paused {
		a.Scene.Advance()
	}

	a.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(a.background)

	drawStart := time.Now()
	a.Renderer.Draw(a.Scene)
	a.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	a.DrawUI()
	rl.EndDrawing()
}

func (a *App) savePrefs() {
	a.Prefs.Width = int32(rl.GetScreenWidth())
	a.Prefs.Height = int32(rl.GetScreenHeight())
	a.Prefs.RotationStep = a.Scene.Step
	a.Prefs.ShowAxes = a.Renderer.ShowAxes
	a.Prefs.ShowBounds = a.Renderer.ShowBounds
	a.Prefs.ShowStats = a.ShowStats

	if err := config.Save(a.prefsPath, a.Prefs); err != nil {
		log.Printf("Failed to save preferences: %v", err)
	}
}
