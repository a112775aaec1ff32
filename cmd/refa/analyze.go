package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"refa/internal/metrics"
	"refa/internal/report"
)

var analyzeFormat string

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Compute structural quality metrics for a source file",
	Long: `Compute structural quality metrics using tree-sitter parsing.

Reports per-function length, parameter count, complexity, nesting depth,
purity and documentation status, plus file-level duplication, dead code and
the weighted health/tech-debt score.

Examples:
  refa analyze src/app.js
  refa analyze --format=human src/utils.ts`,
	Args: cobra.ExactArgs(1),
	Run:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeFormat, "format", "json", "Output format (json, human)")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	logger, closeLog := newLogger(cfg)
	defer closeLog()

	path := args[0]
	doc := openDocument(path)

	format, err := report.ParseFormat(analyzeFormat)
	if err != nil {
		fatal(err)
	}
	if format == report.FormatHTML {
		fatalf("html output is available through 'refa report'")
	}

	analyzer := metrics.NewAnalyzer()
	result, err := analyzer.AnalyzeSource(context.Background(), path, []byte(doc.Text()), languageFor(path))
	if err != nil {
		fatal(err)
	}
	logger.Debug("analysis complete", "functions", result.TotalFunctions, "health", result.HealthScore)

	out, err := report.Render(result, format)
	if err != nil {
		fatal(err)
	}
	fmt.Println(out)
}
