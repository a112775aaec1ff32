package rename

import (
	"regexp"

	"github.com/google/uuid"
)

// Step is one approved (original -> finalName) replacement. FinalName may
// differ from the engine's suggestion when a reviewer supplies a custom name.
type Step struct {
	Original  string `json:"original"`
	FinalName string `json:"finalName"`
}

// Transaction is an ordered application of approved renames onto a text
// buffer. Its lifetime is exactly one rename session; it either ends fully
// applied to the host document or discarded.
type Transaction struct {
	ID    string `json:"id"`
	Steps []Step `json:"steps"`
}

// NewTransaction creates an empty transaction with a fresh session id.
func NewTransaction() *Transaction {
	return &Transaction{ID: uuid.NewString()}
}

// Add appends one approved replacement.
func (t *Transaction) Add(original, finalName string) {
	t.Steps = append(t.Steps, Step{Original: original, FinalName: finalName})
}

// Apply runs every step in order against buffer. Replacements are sequential:
// later steps see the effects of earlier ones.
func (t *Transaction) Apply(buffer string) string {
	out := buffer
	for _, step := range t.Steps {
		out = ReplaceWholeWord(out, step.Original, step.FinalName)
	}
	return out
}

// ReplaceWholeWord substitutes every occurrence of name bounded by
// identifier boundaries, so longer identifiers sharing a prefix or suffix are
// left alone.
func ReplaceWholeWord(text, name, replacement string) string {
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`)
	return re.ReplaceAllLiteralString(text, replacement)
}
