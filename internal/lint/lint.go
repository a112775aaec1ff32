// Package lint integrates an external linter (ESLint) behind a process
// interface: configuration discovery, diagnostics collection, and optional
// application of the linter's autofixes to the host document.
package lint

// Diagnostic is one linter finding, in the linter's own coordinates
// (1-based lines, 1-based columns).
type Diagnostic struct {
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	EndLine   int    `json:"endLine"`
	EndColumn int    `json:"endColumn"`
	Severity  int    `json:"severity"`
	RuleID    string `json:"ruleId"`
	Message   string `json:"message"`
}

// Result is the outcome of one linter invocation. FixedText is nil when the
// linter has no autofixes to offer.
type Result struct {
	FixedText   *string      `json:"fixedText"`
	Diagnostics []Diagnostic `json:"diagnostics"`
}
