package rename

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"refa/internal/apperr"
	"refa/internal/casestyle"
	"refa/internal/host"
	"refa/internal/interact"
	"refa/internal/tree"
)

// Session drives one rename flow over a single document.
type Session struct {
	Doc      host.Document
	Prompter interact.Prompter
	Logger   *slog.Logger

	// Excluded identifiers are never suggested for renaming.
	Excluded map[string]struct{}

	// Style and Mode, when set, skip the corresponding prompt.
	Style casestyle.Style
	Mode  interact.Mode
}

// Outcome summarizes a completed (or canceled) rename session.
type Outcome struct {
	TransactionID string          `json:"transactionId"`
	Style         casestyle.Style `json:"style"`
	Candidates    []Candidate     `json:"candidates"`
	Applied       int             `json:"applied"`
	Skipped       int             `json:"skipped"`
	Canceled      bool            `json:"canceled"`
}

// Run executes the rename flow: precondition check, parse, candidate
// detection, then the selected application protocol. Cancellation at any
// decision point terminates the remaining sequence; renames already applied
// in review mode stay applied.
func (s *Session) Run(ctx context.Context) (*Outcome, error) {
	if s.Doc == nil {
		return nil, apperr.New(apperr.NoActiveTarget, "no document to analyze")
	}
	if s.Logger == nil {
		s.Logger = slog.Default()
	}

	if canceled, err := s.checkUnsaved(); err != nil {
		return nil, err
	} else if canceled {
		return &Outcome{Canceled: true}, nil
	}

	style := s.Style
	if style == "" {
		chosen, ok := s.Prompter.ChooseStyle()
		if !ok {
			return &Outcome{Canceled: true}, nil
		}
		style = chosen
	}

	source := []byte(s.Doc.Text())
	lang, ok := tree.LanguageFromExtension(filepath.Ext(s.Doc.Path()))
	if !ok {
		lang = tree.LangJavaScript
	}
	root, err := tree.NewParser().Parse(ctx, source, lang)
	if err != nil {
		return nil, err
	}

	candidates := FindCandidates(root, source, style, s.Excluded)
	outcome := &Outcome{Style: style, Candidates: candidates}
	if len(candidates) == 0 {
		// Zero violations is a success state, not an error.
		s.Prompter.Notify(fmt.Sprintf("No %s violations found.", style.Label()))
		return outcome, nil
	}

	mode := s.Mode
	if mode == "" {
		chosen, ok := s.Prompter.ChooseMode()
		if !ok {
			outcome.Canceled = true
			return outcome, nil
		}
		mode = chosen
	}

	switch mode {
	case interact.ModeApplyAll:
		err = s.applyAll(outcome)
	case interact.ModeReview:
		err = s.review(outcome)
	default:
		err = apperr.Newf(apperr.Internal, "unknown apply mode: %s", mode)
	}
	if err != nil {
		return nil, err
	}

	s.Prompter.Notify(fmt.Sprintf("Renames applied: %d, skipped: %d", outcome.Applied, outcome.Skipped))
	return outcome, nil
}

// checkUnsaved enforces the save-or-cancel precondition on dirty documents.
func (s *Session) checkUnsaved() (canceled bool, err error) {
	if !s.Doc.IsUnsaved() && !s.Doc.IsModifiedSinceSave() {
		return false, nil
	}
	save, ok := s.Prompter.Confirm("Document has unsaved changes. Save and continue?")
	if !ok || !save {
		return true, nil
	}
	if err := s.Doc.Persist(); err != nil {
		return false, apperr.Wrap(apperr.UnsavedPrecondition, "could not save document before rename", err)
	}
	return false, nil
}

// applyAll builds one transformed buffer from every candidate and commits it
// behind a single confirmation gate.
func (s *Session) applyAll(outcome *Outcome) error {
	tx := NewTransaction()
	for _, c := range outcome.Candidates {
		tx.Add(c.Original, c.Suggestion)
	}
	outcome.TransactionID = tx.ID

	before := s.Doc.Text()
	after := tx.Apply(before)

	s.Prompter.Notify(Preview(before, after))
	accept, ok := s.Prompter.Confirm(fmt.Sprintf("Apply %d rename(s)?", len(tx.Steps)))
	if !ok || !accept {
		outcome.Canceled = true
		outcome.Skipped = len(tx.Steps)
		return nil
	}

	if err := s.Doc.ReplaceAll(after); err != nil {
		return apperr.Wrap(apperr.ApplyFailure, "host rejected buffer replacement", err)
	}
	if err := s.Doc.Persist(); err != nil {
		return apperr.Wrap(apperr.ApplyFailure, "host rejected persist", err)
	}
	outcome.Applied = len(tx.Steps)
	return nil
}

// review confirms candidates one at a time against the live buffer. A failed
// apply is reported and the next candidate proceeds from the last
// successfully-applied buffer state.
func (s *Session) review(outcome *Outcome) error {
	tx := NewTransaction()
	outcome.TransactionID = tx.ID

	for _, c := range outcome.Candidates {
		before := s.Doc.Text()
		after := ReplaceWholeWord(before, c.Original, c.Suggestion)

		answer, ok := s.Prompter.ReviewCandidate(c.Original, c.Suggestion, Preview(before, after))
		if !ok {
			outcome.Canceled = true
			return nil
		}

		switch answer.Decision {
		case interact.DecisionStop:
			outcome.Canceled = true
			return nil
		case interact.DecisionSkip:
			outcome.Skipped++
			continue
		case interact.DecisionApply:
			final := c.Suggestion
			if answer.CustomName != "" {
				final = answer.CustomName
				after = ReplaceWholeWord(before, c.Original, final)
			}
			if err := s.applyStep(before, after); err != nil {
				s.Logger.Warn("rename step failed", "original", c.Original, "error", err)
				s.Prompter.Notify(fmt.Sprintf("Could not apply %s -> %s: %v", c.Original, final, err))
				outcome.Skipped++
				continue
			}
			tx.Add(c.Original, final)
			outcome.Applied++
		}
	}
	return nil
}

// applyStep replaces and persists one step; on persist failure the buffer is
// restored so the next candidate still sees the last good state.
func (s *Session) applyStep(before, after string) error {
	if err := s.Doc.ReplaceAll(after); err != nil {
		return err
	}
	if err := s.Doc.Persist(); err != nil {
		if restoreErr := s.Doc.ReplaceAll(before); restoreErr != nil {
			s.Logger.Error("buffer restore failed after persist error", "error", restoreErr)
		}
		return err
	}
	return nil
}
