package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ninja-runner/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default tuning file",
	Long: `Print the built-in tuning YAML to stdout, as a starting point for a
custom file.

Examples:
  runner config > ~/.arcade/configs/runner.yaml
  runner config > my-runner.yaml && runner play --config my-runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	if err := writeDefaultConfig(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func writeDefaultConfig(w io.Writer) error {
	_, err := w.Write(config.DefaultYAML())
	return err
}
