package tree

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Walk visits node and its subtree in pre-order. fn returns false to skip the
// node's children.
func Walk(node *sitter.Node, fn func(*sitter.Node) bool) {
	if node == nil {
		return
	}
	if !fn(node) {
		return
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		Walk(node.Child(i), fn)
	}
}

// FindNodes returns all nodes in the subtree whose type is in types.
func FindNodes(root *sitter.Node, types []string) []*sitter.Node {
	var result []*sitter.Node
	Walk(root, func(n *sitter.Node) bool {
		for _, t := range types {
			if n.Type() == t {
				result = append(result, n)
				break
			}
		}
		return true
	})
	return result
}

// Text returns the source text covered by n.
func Text(n *sitter.Node, source []byte) string {
	if n == nil {
		return ""
	}
	start, end := n.StartByte(), n.EndByte()
	if int(end) > len(source) {
		end = uint32(len(source))
	}
	if start >= end {
		return ""
	}
	return string(source[start:end])
}

// StartLine returns the 1-based first line of n.
func StartLine(n *sitter.Node) int {
	return int(n.StartPoint().Row) + 1
}

// EndLine returns the 1-based last line of n.
func EndLine(n *sitter.Node) int {
	return int(n.EndPoint().Row) + 1
}

// scopeNodeTypes are the node types that introduce a lexical scope for the
// binding stack.
var scopeNodeTypes = map[string]struct{}{
	"program":                        {},
	"statement_block":                {},
	"function_declaration":           {},
	"generator_function_declaration": {},
	"function_expression":            {},
	"arrow_function":                 {},
	"method_definition":              {},
	"class_body":                     {},
	"for_statement":                  {},
	"for_in_statement":               {},
	"catch_clause":                   {},
}

// IsScopeNode reports whether nodes of this type open a lexical scope.
func IsScopeNode(nodeType string) bool {
	_, ok := scopeNodeTypes[nodeType]
	return ok
}

// ScopeBindings collects the names bound directly in the given scope node:
// variable declarators, hoisted function and class names, and, for
// function-like scopes, the parameter names. Bindings belonging to nested
// scopes are not included.
func ScopeBindings(scope *sitter.Node, source []byte) map[string]struct{} {
	bindings := make(map[string]struct{})
	collectParameters(scope, source, bindings)

	var visit func(n *sitter.Node)
	visit = func(n *sitter.Node) {
		for i := 0; i < int(n.NamedChildCount()); i++ {
			child := n.NamedChild(i)
			if child == nil {
				continue
			}
			switch child.Type() {
			case "variable_declarator":
				if name := child.ChildByFieldName("name"); name != nil && name.Type() == "identifier" {
					bindings[Text(name, source)] = struct{}{}
				}
				visit(child)
			case "function_declaration", "generator_function_declaration", "class_declaration":
				// The name is bound in the enclosing scope; the body is not.
				if name := child.ChildByFieldName("name"); name != nil {
					bindings[Text(name, source)] = struct{}{}
				}
			default:
				if IsScopeNode(child.Type()) {
					continue
				}
				visit(child)
			}
		}
	}
	visit(scope)
	return bindings
}

// collectParameters adds the parameter names of a function-like scope.
func collectParameters(scope *sitter.Node, source []byte, bindings map[string]struct{}) {
	params := scope.ChildByFieldName("parameters")
	if params == nil {
		// Single-parameter arrow functions use the "parameter" field.
		params = scope.ChildByFieldName("parameter")
	}
	if params == nil {
		return
	}
	Walk(params, func(n *sitter.Node) bool {
		switch n.Type() {
		case "identifier", "shorthand_property_identifier_pattern":
			bindings[Text(n, source)] = struct{}{}
		}
		return true
	})
}
