package rename

import (
	"context"
	"testing"

	"refa/internal/apperr"
	"refa/internal/casestyle"
	"refa/internal/host"
	"refa/internal/interact"
	"refa/internal/slogutil"
)

const twoViolations = `const my_var = 1;
function my_func() {}
`

func newSession(doc host.Document, p interact.Prompter) *Session {
	return &Session{
		Doc:      doc,
		Prompter: p,
		Logger:   slogutil.NewDiscardLogger(),
		Style:    casestyle.Camel,
	}
}

func TestSessionApplyAll(t *testing.T) {
	doc := host.NewMemDocument("a.js", twoViolations)
	script := &interact.Script{Mode: interact.ModeApplyAll, ModeOK: true, ConfirmAns: []bool{true}}

	s := newSession(doc, script)
	out, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Applied != 2 || out.Canceled {
		t.Errorf("outcome = %+v, want 2 applied", out)
	}
	want := "const myVar = 1;\nfunction myFunc() {}\n"
	if doc.Persisted != want {
		t.Errorf("persisted = %q, want %q", doc.Persisted, want)
	}
}

func TestSessionApplyAllRejected(t *testing.T) {
	doc := host.NewMemDocument("a.js", twoViolations)
	script := &interact.Script{Mode: interact.ModeApplyAll, ModeOK: true, ConfirmAns: []bool{false}}

	out, err := newSession(doc, script).Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Canceled || out.Applied != 0 {
		t.Errorf("outcome = %+v, want canceled with nothing applied", out)
	}
	// No partial document mutation is visible outside the transaction.
	if doc.Buffer != twoViolations {
		t.Errorf("buffer mutated on reject: %q", doc.Buffer)
	}
}

func TestSessionReviewMixedDecisions(t *testing.T) {
	doc := host.NewMemDocument("a.js", twoViolations)
	script := &interact.Script{
		Mode: interact.ModeReview, ModeOK: true,
		ReviewAns: []interact.ReviewAnswer{
			{Decision: interact.DecisionApply},
			{Decision: interact.DecisionSkip},
		},
	}

	out, err := newSession(doc, script).Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Applied != 1 || out.Skipped != 1 {
		t.Errorf("outcome = %+v, want 1 applied 1 skipped", out)
	}
	want := "const myVar = 1;\nfunction my_func() {}\n"
	if doc.Persisted != want {
		t.Errorf("persisted = %q, want %q", doc.Persisted, want)
	}
}

func TestSessionReviewCustomName(t *testing.T) {
	doc := host.NewMemDocument("a.js", "const my_var = 1;\n")
	script := &interact.Script{
		Mode: interact.ModeReview, ModeOK: true,
		ReviewAns: []interact.ReviewAnswer{
			{Decision: interact.DecisionApply, CustomName: "betterName"},
		},
	}

	out, err := newSession(doc, script).Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Applied != 1 {
		t.Errorf("outcome = %+v, want 1 applied", out)
	}
	if doc.Persisted != "const betterName = 1;\n" {
		t.Errorf("persisted = %q", doc.Persisted)
	}
}

func TestSessionReviewStopEarly(t *testing.T) {
	doc := host.NewMemDocument("a.js", twoViolations)
	script := &interact.Script{
		Mode: interact.ModeReview, ModeOK: true,
		ReviewAns: []interact.ReviewAnswer{
			{Decision: interact.DecisionApply},
			{Decision: interact.DecisionStop},
		},
	}

	out, err := newSession(doc, script).Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Already-applied renames stay applied; the rest of the flow stops.
	if out.Applied != 1 || !out.Canceled {
		t.Errorf("outcome = %+v, want 1 applied then canceled", out)
	}
	if doc.Persisted != "const myVar = 1;\nfunction my_func() {}\n" {
		t.Errorf("persisted = %q", doc.Persisted)
	}
}

func TestSessionReviewPersistFailureContinues(t *testing.T) {
	doc := host.NewMemDocument("a.js", twoViolations)
	doc.FailPersist = true
	script := &interact.Script{
		Mode: interact.ModeReview, ModeOK: true,
		ReviewAns: []interact.ReviewAnswer{
			{Decision: interact.DecisionApply},
			{Decision: interact.DecisionSkip},
		},
	}

	out, err := newSession(doc, script).Run(context.Background())
	if err != nil {
		t.Fatalf("per-step apply failures must not abort the session: %v", err)
	}
	if out.Applied != 0 || out.Skipped != 2 {
		t.Errorf("outcome = %+v, want 0 applied 2 skipped", out)
	}
	// The buffer is restored to the last good state after the failure.
	if doc.Buffer != twoViolations {
		t.Errorf("buffer = %q, want original", doc.Buffer)
	}
}

func TestSessionNoViolations(t *testing.T) {
	doc := host.NewMemDocument("a.js", "const myVar = 1;\n")
	script := &interact.Script{}

	out, err := newSession(doc, script).Run(context.Background())
	if err != nil {
		t.Fatalf("zero violations is a success state: %v", err)
	}
	if len(out.Candidates) != 0 || out.Canceled {
		t.Errorf("outcome = %+v", out)
	}
	if len(script.Messages) == 0 {
		t.Error("expected a no-violations notification")
	}
}

func TestSessionParseFailureAborts(t *testing.T) {
	doc := host.NewMemDocument("a.js", "function ( { ]")
	script := &interact.Script{Mode: interact.ModeApplyAll, ModeOK: true}

	_, err := newSession(doc, script).Run(context.Background())
	if !apperr.HasCode(err, apperr.ParseFailure) {
		t.Errorf("error = %v, want PARSE_FAILURE", err)
	}
	if doc.Buffer != "function ( { ]" {
		t.Error("buffer must be untouched on parse failure")
	}
}

func TestSessionUnsavedPrecondition(t *testing.T) {
	doc := host.NewMemDocument("a.js", twoViolations)
	doc.Modified = true
	// Decline the save prompt: clean no-op termination.
	script := &interact.Script{ConfirmAns: []bool{false}}

	out, err := newSession(doc, script).Run(context.Background())
	if err != nil {
		t.Fatalf("declining the save prompt is not an error: %v", err)
	}
	if !out.Canceled {
		t.Errorf("outcome = %+v, want canceled", out)
	}
}

func TestSessionStyleCancel(t *testing.T) {
	doc := host.NewMemDocument("a.js", twoViolations)
	script := &interact.Script{StyleOK: false}

	s := newSession(doc, script)
	s.Style = "" // force the style prompt
	out, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Canceled {
		t.Errorf("outcome = %+v, want canceled", out)
	}
}
