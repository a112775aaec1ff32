package metrics

import (
	"sort"

	sitter "github.com/smacker/go-tree-sitter"

	"refa/internal/tree"
)

// findDeadCode compares whole-file declaration sets against reference sets.
// A variable used only in an unrelated shadowing scope still counts as used;
// that imprecision is acceptable for a heuristic report.
func findDeadCode(root *sitter.Node, source []byte) DeadCode {
	declaredVars := make(map[string]struct{})
	declaredFuncs := make(map[string]struct{})
	referenced := make(map[string]struct{})
	called := make(map[string]struct{})

	tree.Walk(root, func(n *sitter.Node) bool {
		switch n.Type() {
		case "variable_declarator":
			if name := n.ChildByFieldName("name"); name != nil && name.Type() == "identifier" {
				declaredVars[tree.Text(name, source)] = struct{}{}
			}
		case "function_declaration", "generator_function_declaration":
			if name := n.ChildByFieldName("name"); name != nil {
				declaredFuncs[tree.Text(name, source)] = struct{}{}
			}
		case "call_expression":
			if callee := n.ChildByFieldName("function"); callee != nil && callee.Type() == "identifier" {
				called[tree.Text(callee, source)] = struct{}{}
			}
		case "identifier":
			if !isDeclarationName(n) {
				referenced[tree.Text(n, source)] = struct{}{}
			}
		}
		return true
	})

	return DeadCode{
		UnusedVariables: setDifference(declaredVars, referenced),
		UnusedFunctions: setDifference(declaredFuncs, called),
	}
}

// isDeclarationName reports whether the identifier is the name being declared
// rather than a use.
func isDeclarationName(n *sitter.Node) bool {
	parent := n.Parent()
	if parent == nil {
		return false
	}
	switch parent.Type() {
	case "variable_declarator", "function_declaration", "generator_function_declaration":
		name := parent.ChildByFieldName("name")
		return name != nil && name.StartByte() == n.StartByte()
	}
	return false
}

func setDifference(declared, used map[string]struct{}) []string {
	diff := make([]string, 0)
	for name := range declared {
		if _, ok := used[name]; !ok {
			diff = append(diff, name)
		}
	}
	sort.Strings(diff)
	return diff
}
