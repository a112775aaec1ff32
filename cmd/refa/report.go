package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"refa/internal/metrics"
	"refa/internal/report"
)

var (
	reportFormat string
	reportOut    string
)

var reportCmd = &cobra.Command{
	Use:   "report <file>",
	Short: "Render an analysis report as JSON, text, or HTML",
	Long: `Analyze a source file and render the result in the requested format.

With --out the report is written to a file instead of stdout; a .gz suffix
compresses it on export.

Examples:
  refa report src/app.js
  refa report --format=human src/app.js
  refa report --format=html --out=report.html src/app.js
  refa report --format=html --out=report.html.gz src/app.js`,
	Args: cobra.ExactArgs(1),
	Run:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportFormat, "format", "json", "Output format (json, human, html)")
	reportCmd.Flags().StringVar(&reportOut, "out", "", "Write the report to a file (.gz compresses)")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	logger, closeLog := newLogger(cfg)
	defer closeLog()

	path := args[0]
	doc := openDocument(path)

	format, err := report.ParseFormat(reportFormat)
	if err != nil {
		fatal(err)
	}

	result, err := metrics.NewAnalyzer().AnalyzeSource(context.Background(), path, []byte(doc.Text()), languageFor(path))
	if err != nil {
		fatal(err)
	}

	out, err := report.Render(result, format)
	if err != nil {
		fatal(err)
	}

	if reportOut == "" {
		fmt.Println(out)
		return
	}
	if err := report.Export(reportOut, out); err != nil {
		fatal(err)
	}
	logger.Info("report exported", "path", reportOut, "format", string(format))
	fmt.Printf("Report written to %s\n", reportOut)
}
