package main

import (
	"github.com/spf13/cobra"

	"refa/internal/version"
)

var (
	// logLevelFlag overrides the configured log level.
	logLevelFlag string
)

var rootCmd = &cobra.Command{
	Use:   "refa",
	Short: "refa - refactoring assistant for JavaScript and TypeScript",
	Long: `refa analyzes a single JavaScript or TypeScript source file: it detects
naming-convention violations and applies safe renames, computes structural
quality metrics with a health score, and runs the external linter with
optional autofix application.`,
	Version: version.Version,
}

func init() {
	rootCmd.SetVersionTemplate("refa version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "",
		"Log level: debug, info, warn, or error (overrides config)")
}
