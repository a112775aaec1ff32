// Package rename locates naming-convention violations for a chosen case
// style and rewrites them safely via whole-word replacement.
package rename

import (
	sitter "github.com/smacker/go-tree-sitter"

	"refa/internal/casestyle"
	"refa/internal/tree"
)

// Candidate is one identifier whose spelling violates the target style and
// whose converted form is safe to apply.
type Candidate struct {
	Original   string `json:"original"`
	Suggestion string `json:"suggestion"`
}

// FindCandidates returns the deduplicated candidate list for the target
// style, in source order. excluded holds identifiers that must never be
// suggested, regardless of style.
//
// A candidate is accepted only when the suggestion does not collide with any
// binding visible at the declaration point: renaming must never shadow or
// capture an existing name. Only the first occurrence of a name can become a
// candidate; a rejected occurrence leaves later ones eligible.
func FindCandidates(root *sitter.Node, source []byte, style casestyle.Style, excluded map[string]struct{}) []Candidate {
	var candidates []Candidate
	seen := make(map[string]struct{})

	for _, decl := range tree.Declarations(root, source) {
		name := decl.Name
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		if _, skip := excluded[name]; skip {
			continue
		}
		if style.Matches(name) {
			continue
		}
		suggestion := style.Convert(name)
		if suggestion == name {
			continue
		}
		if boundInEnclosingScopes(decl.Node, source, suggestion) {
			continue
		}
		seen[name] = struct{}{}
		candidates = append(candidates, Candidate{Original: name, Suggestion: suggestion})
	}

	return candidates
}

// boundInEnclosingScopes reports whether name is already bound in the scope
// chain from the declaration up to the program root.
func boundInEnclosingScopes(n *sitter.Node, source []byte, name string) bool {
	for cur := n; cur != nil; cur = cur.Parent() {
		if !tree.IsScopeNode(cur.Type()) {
			continue
		}
		if _, ok := tree.ScopeBindings(cur, source)[name]; ok {
			return true
		}
	}
	return false
}
