package lint

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"refa/internal/apperr"
	"refa/internal/host"
	"refa/internal/interact"
)

// Service runs the lint flow against a host document: configuration
// discovery, linter execution, and the optional confirm-gated autofix apply.
type Service struct {
	Runner   Runner
	Prompter interact.Prompter
	Logger   *slog.Logger
}

// Outcome reports what one lint run did.
type Outcome struct {
	ConfigPath  string
	Diagnostics []Diagnostic
	FixApplied  bool
	Canceled    bool
}

// Run lints the document. With apply set, an available autofix is offered
// through the prompter and, on confirmation, replaces and persists the
// document text. A declined or canceled confirmation leaves the document
// untouched.
func (s *Service) Run(ctx context.Context, doc host.Document, apply bool) (*Outcome, error) {
	if doc == nil {
		return nil, apperr.New(apperr.NoActiveTarget, "no document to lint")
	}
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}

	configPath, err := FindConfig(filepath.Dir(doc.Path()))
	if err != nil {
		return nil, err
	}
	logger.Debug("lint config discovered", "path", configPath)

	result, err := s.Runner.Lint(ctx, doc.Path(), doc.Text())
	if err != nil {
		return nil, err
	}

	outcome := &Outcome{ConfigPath: configPath, Diagnostics: result.Diagnostics}

	if result.FixedText == nil {
		if len(result.Diagnostics) == 0 {
			s.Prompter.Notify("No lint problems found.")
		}
		return outcome, nil
	}
	if !apply {
		return outcome, nil
	}

	accept, ok := s.Prompter.Confirm(fmt.Sprintf(
		"The linter can fix %d problem(s) automatically. Apply the fixes?", len(result.Diagnostics)))
	if !ok || !accept {
		outcome.Canceled = !ok
		return outcome, nil
	}

	if err := doc.ReplaceAll(*result.FixedText); err != nil {
		return nil, apperr.Wrap(apperr.ApplyFailure, "cannot apply lint fixes", err)
	}
	if err := doc.Persist(); err != nil {
		return nil, apperr.Wrap(apperr.ApplyFailure, "cannot persist lint fixes", err)
	}

	outcome.FixApplied = true
	s.Prompter.Notify("Lint fixes applied.")
	return outcome, nil
}
