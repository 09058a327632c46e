package main

import (
	"os"
	"path/filepath"
	"strings"

	"cubeview/internal/app"
)

func main() {
	// Run from the executable's directory so the config path resolves the
	// same way for deployed builds. Skip for "go run", which puts the
	// binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	app.New().Run()
}
