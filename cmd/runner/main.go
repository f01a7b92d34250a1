// runner is a ninja endless runner for the terminal.
//
// Usage:
//
//	runner play              - Play in this terminal
//	runner serve             - Start SSH server for remote play
//	runner scores            - Show high scores
//	runner config            - Print the default tuning file
//
// Global flags:
//
//	--fps <rate>             - Set tick rate (default: 60)
//	--seed <value>           - Set RNG seed for reproducible runs
//	--db <path>              - Set database path (default: ~/.arcade/scores.db)
//	--config <path>          - Tuning YAML (default search: ~/.arcade/configs, ./configs)
//	--form-factor <mode>     - auto, desktop or compact spawn density
//	--assets <dir>           - Directory with sprite files instead of the built-in ones
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagFormFactor string
	flagAssets     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Ninja Runner - jump and duck through an endless run in your terminal",
	Long: `Ninja Runner is an endless runner for the terminal. Jump over ground
obstacles, duck under flying ones, and score a point for every obstacle
that scrolls past.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the default tuning file

Examples:
  runner play
  runner play --form-factor compact --seed 42
  runner serve --ssh :2222
  runner scores --limit 20`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagFormFactor, "form-factor", "auto", "Spawn density: auto, desktop, compact")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Directory with run1/run2/ground/elevated sprite files")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
