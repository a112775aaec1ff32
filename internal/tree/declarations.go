package tree

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// DeclKind distinguishes variable from function declarations.
type DeclKind string

const (
	KindVariable DeclKind = "variable"
	KindFunction DeclKind = "function"
)

// Declaration is one named declaration found in the tree: a variable
// declarator, a named function declaration, or an arrow function assigned to
// a variable.
type Declaration struct {
	Name     string
	Kind     DeclKind
	Line     int // 1-based declaration line
	Node     *sitter.Node
	NameNode *sitter.Node
}

// Declarations extracts every named declaration in source order.
func Declarations(root *sitter.Node, source []byte) []Declaration {
	var decls []Declaration

	Walk(root, func(n *sitter.Node) bool {
		switch n.Type() {
		case "function_declaration", "generator_function_declaration":
			if name := n.ChildByFieldName("name"); name != nil {
				decls = append(decls, Declaration{
					Name:     Text(name, source),
					Kind:     KindFunction,
					Line:     StartLine(name),
					Node:     n,
					NameNode: name,
				})
			}
		case "variable_declarator":
			name := n.ChildByFieldName("name")
			if name == nil || name.Type() != "identifier" {
				return true
			}
			kind := KindVariable
			if value := n.ChildByFieldName("value"); value != nil {
				switch value.Type() {
				case "arrow_function", "function_expression":
					kind = KindFunction
				}
			}
			decls = append(decls, Declaration{
				Name:     Text(name, source),
				Kind:     kind,
				Line:     StartLine(name),
				Node:     n,
				NameNode: name,
			})
		}
		return true
	})

	return decls
}

// LeadingComment returns the text of the comment block immediately preceding
// the statement containing n, or "" when there is none.
func LeadingComment(n *sitter.Node, source []byte) string {
	stmt := enclosingStatement(n)
	if stmt == nil {
		return ""
	}
	prev := stmt.PrevNamedSibling()
	if prev == nil || prev.Type() != "comment" {
		return ""
	}
	return Text(prev, source)
}

// enclosingStatement walks up from n to the statement-level node whose
// parent is the program or a statement block.
func enclosingStatement(n *sitter.Node) *sitter.Node {
	cur := n
	for cur != nil {
		parent := cur.Parent()
		if parent == nil {
			return cur
		}
		if parent.Type() == "program" || parent.Type() == "statement_block" || parent.Type() == "class_body" {
			return cur
		}
		cur = parent
	}
	return nil
}
