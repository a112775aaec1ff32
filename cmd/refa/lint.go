package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"refa/internal/interact"
	"refa/internal/lint"
)

var lintApply bool

var lintCmd = &cobra.Command{
	Use:   "lint <file>",
	Short: "Run the external linter and optionally apply its autofixes",
	Long: `Run ESLint against a source file.

Configuration is discovered by walking up from the file's directory for an
.eslintrc file or an eslintConfig key in package.json; a missing
configuration is reported as a distinct condition and no lint runs. With
--apply, available autofixes are offered behind a confirmation and written
back to the file.

Examples:
  refa lint src/app.js
  refa lint --apply src/app.js`,
	Args: cobra.ExactArgs(1),
	Run:  runLint,
}

func init() {
	lintCmd.Flags().BoolVar(&lintApply, "apply", false, "Offer to apply the linter's autofixes")
	rootCmd.AddCommand(lintCmd)
}

func runLint(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	logger, closeLog := newLogger(cfg)
	defer closeLog()

	doc := openDocument(args[0])

	svc := &lint.Service{
		Runner:   lint.NewESLintRunner(cfg.Lint.Command, time.Duration(cfg.Lint.TimeoutMs)*time.Millisecond),
		Prompter: interact.NewTerminal(os.Stdin, os.Stdout),
		Logger:   logger,
	}

	outcome, err := svc.Run(context.Background(), doc, lintApply)
	if err != nil {
		fatal(err)
	}

	for _, d := range outcome.Diagnostics {
		fmt.Printf("%s:%d:%d %s %s (%s)\n",
			doc.Path(), d.Line, d.Column, severityLabel(d.Severity), d.Message, d.RuleID)
	}
	if outcome.FixApplied {
		logger.Info("lint fixes persisted", "path", doc.Path())
	}
}

func severityLabel(severity int) string {
	if severity >= 2 {
		return "error"
	}
	return "warning"
}
