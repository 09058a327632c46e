package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PrefsPath is the preferences file location, relative to the process
// working directory.
const PrefsPath = "config/cubeview.json"

// Prefs holds viewer preferences persisted across runs.
type Prefs struct {
	Width        int32   `json:"width"`
	Height       int32   `json:"height"`
	TargetFPS    int32   `json:"targetFps"`
	RotationStep float32 `json:"rotationStep"`
	ShowAxes     bool    `json:"showAxes"`
	ShowBounds   bool    `json:"showBounds"`
	ShowStats    bool    `json:"showStats"`
	Background   string  `json:"background,omitempty"`
}

func Default() Prefs {
	return Prefs{
		Width:        800,
		Height:       600,
		TargetFPS:    60,
		RotationStep: 1.0,
		ShowAxes:     true,
	}
}

// Load reads preferences from the given path. A missing or invalid file
// yields defaults; out-of-range fields are replaced individually.
func Load(path string) Prefs {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default()
	}
	// Unmarshal on top of the defaults so a partial file keeps default
	// values for the keys it omits.
	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return Default()
	}
	def := Default()
	if p.Width <= 0 {
		p.Width = def.Width
	}
	if p.Height <= 0 {
		p.Height = def.Height
	}
	if p.TargetFPS <= 0 {
		p.TargetFPS = def.TargetFPS
	}
	return p
}

// Save writes preferences to the given path, creating the directory if
// needed.
func Save(path string, p Prefs) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

var colorByName = map[string]rl.Color{
	"Black":    rl.Black,
	"DarkGray": rl.DarkGray,
	"Gray":     rl.Gray,
	"DarkBlue": rl.DarkBlue,
	"White":    rl.White,
}

// DefaultBackground is the viewer's dark-gray clear color,
// (0.1, 0.1, 0.1, 1.0) in float components.
var DefaultBackground = rl.NewColor(26, 26, 26, 255)

// BackgroundColor resolves the named background color, falling back to the
// default dark gray for an empty or unknown name.
func (p Prefs) BackgroundColor() rl.Color {
	if c, ok := colorByName[p.Background]; ok {
		return c
	}
	return DefaultBackground
}
