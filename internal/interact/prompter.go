// Package interact models the request/response decision points of a rename
// or lint session. Every request can end in cancellation, which callers must
// treat as a short-circuit of the remaining flow.
package interact

import "refa/internal/casestyle"

// Mode selects how approved renames are applied.
type Mode string

const (
	// ModeApplyAll applies every candidate behind a single confirmation.
	ModeApplyAll Mode = "all"
	// ModeReview confirms candidates one at a time.
	ModeReview Mode = "review"
)

// Decision is a reviewer's verdict on one candidate.
type Decision string

const (
	DecisionApply Decision = "apply"
	DecisionSkip  Decision = "skip"
	DecisionStop  Decision = "stop"
)

// ReviewAnswer carries the verdict and an optional custom final name that
// overrides the suggestion.
type ReviewAnswer struct {
	Decision   Decision
	CustomName string
}

// Prompter is the blocking request/response surface toward the user. The
// second return value is false when the user cancels, which terminates the
// remaining sequence immediately.
type Prompter interface {
	// ChooseStyle asks for the target naming convention.
	ChooseStyle() (casestyle.Style, bool)

	// ChooseMode asks whether to apply all candidates at once or review them
	// individually.
	ChooseMode() (Mode, bool)

	// Confirm asks a yes/no question.
	Confirm(prompt string) (bool, bool)

	// ReviewCandidate presents one proposed replacement with its preview and
	// collects the verdict.
	ReviewCandidate(original, suggestion, preview string) (ReviewAnswer, bool)

	// Notify reports progress or a non-fatal problem mid-flow.
	Notify(message string)
}
