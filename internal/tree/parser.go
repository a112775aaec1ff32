package tree

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"

	"refa/internal/apperr"
)

// Parser wraps a tree-sitter parser for one-file analysis.
type Parser struct {
	parser *sitter.Parser
}

// NewParser creates a new tree-sitter parser.
func NewParser() *Parser {
	return &Parser{parser: sitter.NewParser()}
}

// Parse parses source and returns the tree root. Malformed source is a
// PARSE_FAILURE: analysis must not proceed on a tree containing error nodes,
// so partial results are never produced.
func (p *Parser) Parse(ctx context.Context, source []byte, lang Language) (*sitter.Node, error) {
	tsLang, err := getLanguage(lang)
	if err != nil {
		return nil, apperr.Wrap(apperr.ParseFailure, "unsupported dialect", err)
	}

	p.parser.SetLanguage(tsLang)
	t, err := p.parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, apperr.Wrap(apperr.ParseFailure, "source could not be parsed", err)
	}

	root := t.RootNode()
	if root.HasError() {
		line, msg := firstSyntaxError(root, source)
		return nil, apperr.Newf(apperr.ParseFailure, "syntax error near line %d: %s", line, msg)
	}
	return root, nil
}

// firstSyntaxError locates the first ERROR or MISSING node for the message.
func firstSyntaxError(root *sitter.Node, source []byte) (int, string) {
	var bad *sitter.Node

	Walk(root, func(n *sitter.Node) bool {
		if bad != nil {
			return false
		}
		if n.IsError() || n.IsMissing() {
			bad = n
			return false
		}
		return n.HasError()
	})

	if bad == nil {
		return 1, "invalid syntax"
	}
	line := int(bad.StartPoint().Row) + 1
	text := Text(bad, source)
	if len(text) > 20 {
		text = text[:20]
	}
	if text == "" {
		return line, "incomplete construct"
	}
	return line, "unexpected " + text
}
