package config

import (
	"os"
	"path/filepath"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestLoadMissingFile(t *testing.T) {
	p := Load(filepath.Join(t.TempDir(), "nope.json"))

	if p != Default() {
		t.Errorf("Expected defaults for missing file, got %+v", p)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if p := Load(path); p != Default() {
		t.Errorf("Expected defaults for invalid file, got %+v", p)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "cubeview.json")

	want := Prefs{
		Width:        1024,
		Height:       768,
		TargetFPS:    120,
		RotationStep: 2.5,
		ShowAxes:     true,
		ShowBounds:   true,
		ShowStats:    true,
		Background:   "Black",
	}
	if err := Save(path, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if got := Load(path); got != want {
		t.Errorf("Roundtrip mismatch: got %+v, want %+v", got, want)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cubeview.json")
	if err := os.WriteFile(path, []byte(`{"width":1024}`), 0644); err != nil {
		t.Fatal(err)
	}

	p := Load(path)
	def := Default()

	if p.Width != 1024 {
		t.Errorf("Expected width 1024, got %d", p.Width)
	}
	if p.RotationStep != def.RotationStep {
		t.Errorf("Expected default rotation step %v for omitted key, got %v", def.RotationStep, p.RotationStep)
	}
	if p.ShowAxes != def.ShowAxes {
		t.Errorf("Expected default showAxes %v for omitted key, got %v", def.ShowAxes, p.ShowAxes)
	}
	if p.Height != def.Height || p.TargetFPS != def.TargetFPS {
		t.Errorf("Expected default dimensions for omitted keys, got %dx%d@%d", p.Width, p.Height, p.TargetFPS)
	}
}

func TestLoadSanitizesDimensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cubeview.json")
	if err := os.WriteFile(path, []byte(`{"width":-5,"height":0,"targetFps":0}`), 0644); err != nil {
		t.Fatal(err)
	}

	p := Load(path)
	def := Default()
	if p.Width != def.Width || p.Height != def.Height || p.TargetFPS != def.TargetFPS {
		t.Errorf("Expected sanitized dimensions %dx%d@%d, got %dx%d@%d",
			def.Width, def.Height, def.TargetFPS, p.Width, p.Height, p.TargetFPS)
	}
}

func TestBackgroundColor(t *testing.T) {
	if c := (Prefs{}).BackgroundColor(); c != DefaultBackground {
		t.Errorf("Expected default background, got %v", c)
	}
	if c := (Prefs{Background: "NoSuchColor"}).BackgroundColor(); c != DefaultBackground {
		t.Errorf("Expected default background for unknown name, got %v", c)
	}
	if c := (Prefs{Background: "Black"}).BackgroundColor(); c != rl.Black {
		t.Errorf("Expected black, got %v", c)
	}
}
