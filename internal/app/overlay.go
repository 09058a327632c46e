package app

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colorBgPanel   = rl.NewColor(18, 18, 24, 245)
	colorTextMuted = rl.NewColor(119, 119, 119, 255)
)

// DrawUI draws the help line, the stats overlay (F1) and the control panel
// (Tab) on top of the 3D view.
func (a *App) DrawUI() {
	rl.DrawText("F1 stats, Tab controls, Space pause", 10, 10, 20, rl.DarkGray)

	if a.ShowStats {
		a.drawStats()
	}
	if a.showPanel {
		a.drawPanel()
	}
}

func (a *App) drawStats() {
	rl.DrawFPS(10, 40)
	rl.DrawText(fmt.Sprintf("Angle:  %.1f deg", a.Scene.Angle), 10, 65, 16, rl.Green)
	rl.DrawText(fmt.Sprintf("Update: %.2f ms", a.updateMs), 10, 85, 16, rl.Green)
	rl.DrawText(fmt.Sprintf("Draw:   %.2f ms", a.drawMs), 10, 105, 16, rl.Green)

	w, h := a.Scene.Viewport()
	rl.DrawText(fmt.Sprintf("Viewport: %dx%d", w, h), 10, 125, 16, rl.Green)
}

func (a *App) drawPanel() {
	panelW := int32(230)
	panelX := int32(rl.GetScreenWidth()) - panelW - 10
	panelY := int32(10)
	panelH := int32(170)

	rl.DrawRectangle(panelX, panelY, panelW, panelH, colorBgPanel)
	rl.DrawText("Controls", panelX+10, panelY+8, 16, colorTextMuted)

	x := float32(panelX + 10)
	y := float32(panelY) + 32

	a.Paused = gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: 16, Height: 16}, "Paused", a.Paused)
	y += 26

	a.Renderer.ShowAxes = gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: 16, Height: 16}, "Axes", a.Renderer.ShowAxes)
	y += 26

	a.Renderer.ShowBounds = gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: 16, Height: 16}, "Cube bounds", a.Renderer.ShowBounds)
	y += 30

	a.Scene.Step = gui.Slider(
		rl.Rectangle{X: x + 40, Y: y, Width: float32(panelW) - 110, Height: 16},
		"Step", fmt.Sprintf("%.1f", a.Scene.Step),
		a.Scene.Step, 0, 10,
	)
	y += 30

	if gui.Button(rl.Rectangle{X: x, Y: y, Width: 100, Height: 22}, "Reset angle") {
		a.Scene.Reset()
	}
}
