package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"refa/internal/apperr"
	"refa/internal/config"
	"refa/internal/host"
	"refa/internal/slogutil"
	"refa/internal/tree"
)

// loadConfig reads the working directory's .refa/config.json, falling back
// to defaults when absent.
func loadConfig() *config.Config {
	cwd, err := os.Getwd()
	if err != nil {
		fatal(err)
	}
	cfg, err := config.LoadConfig(cwd)
	if err != nil {
		fatal(err)
	}
	return cfg
}

// newLogger builds the command logger from config and the --log-level flag.
// With a configured log file the logger appends there; otherwise logs go to
// stderr so they never interleave with report output or prompts on stdout.
func newLogger(cfg *config.Config) (*slog.Logger, func()) {
	levelName := cfg.Logging.Level
	if logLevelFlag != "" {
		levelName = logLevelFlag
	}
	level := slogutil.LevelFromString(levelName)

	if cfg.Logging.File != "" {
		logger, f, err := slogutil.NewFileLogger(cfg.Logging.File, level)
		if err == nil {
			return logger, func() { f.Close() }
		}
		fmt.Fprintf(os.Stderr, "Warning: cannot open log file %s: %v\n", cfg.Logging.File, err)
	}
	return slogutil.NewLogger(os.Stderr, level), func() {}
}

// openDocument opens the target file as the host document.
func openDocument(path string) *host.FileDocument {
	doc, err := host.OpenFile(path)
	if err != nil {
		fatal(err)
	}
	return doc
}

// languageFor picks the grammar dialect from the file extension, defaulting
// to JavaScript.
func languageFor(path string) tree.Language {
	if lang, ok := tree.LanguageFromExtension(filepath.Ext(path)); ok {
		return lang
	}
	return tree.LangJavaScript
}

// fatal reports an error on stderr, with its stable code when it carries
// one, and exits.
func fatal(err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		fmt.Fprintf(os.Stderr, "Error [%s]: %s\n", appErr.Code, appErr.Message)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(1)
}

// fatalf is fatal for ad-hoc messages.
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
