package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"refa/internal/casestyle"
	"refa/internal/config"
	"refa/internal/interact"
	"refa/internal/rename"
)

var (
	renameStyle string
	renameMode  string
)

var renameCmd = &cobra.Command{
	Use:   "rename <file>",
	Short: "Detect naming-convention violations and apply safe renames",
	Long: `Detect identifiers that violate the target naming convention and rename
them with whole-word replacements.

The target style comes from --style, then rename.defaultStyle in
.refa/config.json, then an interactive prompt. Candidates conflicting with a
name already bound in any enclosing scope are skipped. Renames are applied
either all at once behind a single confirmation or one at a time in review
mode, where each candidate can be applied, skipped, or given a custom name.

Identifiers listed in .refa/naming.toml are never suggested.

Examples:
  refa rename src/app.js
  refa rename --style=camel src/app.js
  refa rename --style=snake --mode=review src/ResultSet.js`,
	Args: cobra.ExactArgs(1),
	Run:  runRename,
}

func init() {
	renameCmd.Flags().StringVar(&renameStyle, "style", "", "Target naming style: camel, pascal, or snake (default: prompt)")
	renameCmd.Flags().StringVar(&renameMode, "mode", "", "Application mode: all or review (default: prompt)")
	rootCmd.AddCommand(renameCmd)
}

func runRename(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	logger, closeLog := newLogger(cfg)
	defer closeLog()

	doc := openDocument(args[0])

	session := &rename.Session{
		Doc:      doc,
		Prompter: interact.NewTerminal(os.Stdin, os.Stdout),
		Logger:   logger,
		Excluded: loadExclusions(cfg),
		Style:    resolveStyle(cfg),
		Mode:     resolveMode(),
	}

	outcome, err := session.Run(context.Background())
	if err != nil {
		fatal(err)
	}
	if outcome.Canceled {
		fmt.Println("Canceled.")
		return
	}
	logger.Info("rename session finished",
		"transaction", outcome.TransactionID,
		"applied", outcome.Applied,
		"skipped", outcome.Skipped)
}

// resolveStyle applies the flag > config > prompt precedence. An empty
// result leaves the choice to the session's interactive prompt.
func resolveStyle(cfg *config.Config) casestyle.Style {
	name := renameStyle
	if name == "" {
		name = cfg.Rename.DefaultStyle
	}
	if name == "" {
		return ""
	}
	style, err := casestyle.ParseStyle(name)
	if err != nil {
		fatal(err)
	}
	return style
}

func resolveMode() interact.Mode {
	switch renameMode {
	case "":
		return ""
	case string(interact.ModeApplyAll):
		return interact.ModeApplyAll
	case string(interact.ModeReview):
		return interact.ModeReview
	}
	fatalf("unsupported mode: %s (use all or review)", renameMode)
	return ""
}

// loadExclusions reads the naming rules file relative to the config dir.
func loadExclusions(cfg *config.Config) map[string]struct{} {
	cwd, err := os.Getwd()
	if err != nil {
		fatal(err)
	}
	dir, err := config.ConfigDir(cwd, false)
	if err != nil {
		fatal(err)
	}
	rules, err := config.LoadNamingRules(filepath.Join(dir, cfg.Rename.RulesFile))
	if err != nil {
		fatal(err)
	}
	return rules.ExclusionSet()
}
