package metrics

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"refa/internal/tree"
)

// functionNodeTypes are the function-like declarations the walk visits.
var functionNodeTypes = []string{
	"function_declaration",
	"generator_function_declaration",
	"function_expression",
	"arrow_function",
	"method_definition",
}

// complexityOperators are the binary operators that contribute to the
// simplified cyclomatic proxy: logical connectives and comparisons. This is
// deliberately not textbook McCabe complexity.
var complexityOperators = map[string]struct{}{
	"&&": {}, "||": {},
	"==": {}, "!=": {}, "===": {}, "!==": {},
	"<": {}, ">": {}, "<=": {}, ">=": {},
}

// nestingNodeTypes increment the nesting depth counter on entry.
var nestingNodeTypes = map[string]struct{}{
	"if_statement":     {},
	"for_statement":    {},
	"for_in_statement": {},
	"while_statement":  {},
	"do_statement":     {},
	"switch_statement": {},
	"try_statement":    {},
	"statement_block":  {},
}

// sideEffectCallees is the fixed recognized set of impure callees.
var sideEffectCallees = map[string]struct{}{
	"console":     {},
	"setTimeout":  {},
	"setInterval": {},
	"fetch":       {},
}

// analyzeFunction computes the metrics of a single function-like node.
func analyzeFunction(fn *sitter.Node, source []byte) FunctionMetrics {
	m := FunctionMetrics{
		Name:                 functionName(fn, source),
		StartLine:            tree.StartLine(fn),
		EndLine:              tree.EndLine(fn),
		CyclomaticComplexity: 1,
		ParameterCount:       parameterCount(fn),
		IsDocumented:         isDocumented(fn, source),
	}
	m.LengthInLines = m.EndLine - m.StartLine

	hasReturn := false
	var walkBody func(n *sitter.Node, depth int)
	walkBody = func(n *sitter.Node, depth int) {
		switch n.Type() {
		case "binary_expression":
			if op := n.ChildByFieldName("operator"); op != nil {
				if _, ok := complexityOperators[tree.Text(op, source)]; ok {
					m.CyclomaticComplexity++
				}
			}
		case "ternary_expression":
			m.CyclomaticComplexity++
		case "return_statement":
			hasReturn = true
		case "call_expression":
			if hasRecognizedSideEffect(n, source) {
				m.HasSideEffects = true
			}
		}

		if _, nests := nestingNodeTypes[n.Type()]; nests {
			depth++
			if depth > m.MaxNestingDepth {
				m.MaxNestingDepth = depth
			}
		}

		for i := 0; i < int(n.ChildCount()); i++ {
			walkBody(n.Child(i), depth)
		}
	}

	if body := fn.ChildByFieldName("body"); body != nil {
		walkBody(body, 0)
	}

	m.IsPure = hasReturn && !m.HasSideEffects
	return m
}

// functionName resolves the declared name, falling back to the variable a
// function expression or arrow is assigned to, then to <anonymous>.
func functionName(fn *sitter.Node, source []byte) string {
	if name := fn.ChildByFieldName("name"); name != nil {
		return tree.Text(name, source)
	}
	if parent := fn.Parent(); parent != nil && parent.Type() == "variable_declarator" {
		if name := parent.ChildByFieldName("name"); name != nil && name.Type() == "identifier" {
			return tree.Text(name, source)
		}
	}
	return "<anonymous>"
}

// parameterCount counts declared parameters, including the bare single
// parameter of an arrow function.
func parameterCount(fn *sitter.Node) int {
	if params := fn.ChildByFieldName("parameters"); params != nil {
		return int(params.NamedChildCount())
	}
	if param := fn.ChildByFieldName("parameter"); param != nil {
		return 1
	}
	return 0
}

// hasRecognizedSideEffect reports whether a call's callee object (or bare
// callee) is in the recognized impure set.
func hasRecognizedSideEffect(call *sitter.Node, source []byte) bool {
	callee := call.ChildByFieldName("function")
	if callee == nil {
		return false
	}
	switch callee.Type() {
	case "member_expression":
		if obj := callee.ChildByFieldName("object"); obj != nil {
			_, ok := sideEffectCallees[tree.Text(obj, source)]
			return ok
		}
	case "identifier":
		_, ok := sideEffectCallees[tree.Text(callee, source)]
		return ok
	}
	return false
}

// isDocumented reports whether the node's immediately preceding comment block
// opens as a doc comment.
func isDocumented(fn *sitter.Node, source []byte) bool {
	comment := tree.LeadingComment(fn, source)
	if comment == "" {
		return false
	}
	inner := strings.TrimPrefix(comment, "/*")
	return inner != comment && strings.HasPrefix(inner, "*")
}
