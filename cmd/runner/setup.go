package main

import (
	"io/fs"
	"os"

	"github.com/vovakirdan/ninja-runner/internal/config"
)

// gameSetup is the tuning shared by play and serve.
type gameSetup struct {
	config     config.RunnerConfig
	formFactor config.FormFactor
	assets     fs.FS // nil means the embedded sprites
}

// loadGameSetup resolves the tuning file, the form factor and the sprite
// source from flag values.
func loadGameSetup(configPath, formFactor, assetsDir string) (gameSetup, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return gameSetup{}, err
	}

	ff, err := config.ParseFormFactor(formFactor)
	if err != nil {
		return gameSetup{}, err
	}

	setup := gameSetup{config: cfg, formFactor: ff}
	if assetsDir != "" {
		setup.assets = os.DirFS(assetsDir)
	}
	return setup, nil
}
