package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ninja-runner/internal/core"
	"github.com/vovakirdan/ninja-runner/internal/platform/tui"
	"github.com/vovakirdan/ninja-runner/internal/storage"
)

var (
	flagLogPath string
	flagDebug   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a run in the current terminal.

Controls:
  Space/Up/W   - Jump
  Down/S       - Duck (hold)
  Mouse        - Click to jump, press and hold to duck
  P/Esc        - Pause
  R            - Restart (after game over)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Examples:
  runner play
  runner play --form-factor compact
  runner play --config ./my-runner.yaml --seed 42
  runner play --assets ./sprites --debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogPath, "log", "~/.arcade/runner.log", "Log file (empty disables logging)")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Show player and obstacle state on screen")
}

func runPlay(_ *cobra.Command, _ []string) {
	width, height, err := tui.Surface(int(os.Stdout.Fd()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, tui.ErrNoSurface) {
			fmt.Fprintln(os.Stderr, "Run 'runner play' in an interactive terminal, or use 'runner serve'.")
		}
		os.Exit(1)
	}

	setup, err := loadGameSetup(flagConfig, flagFormFactor, flagAssets)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, logFile, err := tui.FileLogger(flagLogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		logger, logFile, _ = tui.FileLogger("")
	}
	defer logFile.Close()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without score storage", "error", err)
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Config:     setup.config,
		FormFactor: setup.formFactor,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Debug:  flagDebug,
		Assets: setup.assets,
		Store:  store,
		Logger: logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("run failed", "error", runErr)
		logFile.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
