package tree

import (
	"context"
	"testing"

	"refa/internal/apperr"
)

func parseJS(t *testing.T, source string) ([]byte, *Parser) {
	t.Helper()
	return []byte(source), NewParser()
}

func TestParseValid(t *testing.T) {
	src, p := parseJS(t, `const x = 1;
function foo(a, b) { return a + b; }
`)
	root, err := p.Parse(context.Background(), src, LangJavaScript)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root.Type() != "program" {
		t.Errorf("root type = %s, want program", root.Type())
	}
}

func TestParseMalformed(t *testing.T) {
	src, p := parseJS(t, `function ( { ]`)
	_, err := p.Parse(context.Background(), src, LangJavaScript)
	if err == nil {
		t.Fatal("expected parse failure")
	}
	if !apperr.HasCode(err, apperr.ParseFailure) {
		t.Errorf("error code = %s, want PARSE_FAILURE", apperr.CodeOf(err))
	}
}

func TestLanguageFromExtension(t *testing.T) {
	tests := []struct {
		ext  string
		want Language
		ok   bool
	}{
		{".js", LangJavaScript, true},
		{".jsx", LangJavaScript, true},
		{".ts", LangTypeScript, true},
		{".tsx", LangTSX, true},
		{".py", "", false},
	}
	for _, tt := range tests {
		got, ok := LanguageFromExtension(tt.ext)
		if got != tt.want || ok != tt.ok {
			t.Errorf("LanguageFromExtension(%q) = (%q, %v), want (%q, %v)", tt.ext, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDeclarations(t *testing.T) {
	src, p := parseJS(t, `const my_var = 1;
function my_func(x) { return x; }
const handler = (e) => e.target;
let { destructured } = obj;
`)
	root, err := p.Parse(context.Background(), src, LangJavaScript)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	decls := Declarations(root, src)

	want := []struct {
		name string
		kind DeclKind
		line int
	}{
		{"my_var", KindVariable, 1},
		{"my_func", KindFunction, 2},
		{"handler", KindFunction, 3},
	}
	if len(decls) != len(want) {
		t.Fatalf("got %d declarations, want %d: %+v", len(decls), len(want), decls)
	}
	for i, w := range want {
		if decls[i].Name != w.name || decls[i].Kind != w.kind || decls[i].Line != w.line {
			t.Errorf("decl %d = {%s %s %d}, want {%s %s %d}",
				i, decls[i].Name, decls[i].Kind, decls[i].Line, w.name, w.kind, w.line)
		}
	}
}

func TestScopeBindings(t *testing.T) {
	src, p := parseJS(t, `const top = 1;
function outer(param) {
  const inner = 2;
  function nested() {}
}
`)
	root, err := p.Parse(context.Background(), src, LangJavaScript)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	top := ScopeBindings(root, src)
	for _, name := range []string{"top", "outer"} {
		if _, ok := top[name]; !ok {
			t.Errorf("program scope missing %q: %v", name, top)
		}
	}
	if _, ok := top["inner"]; ok {
		t.Error("program scope should not contain inner")
	}

	fns := FindNodes(root, []string{"function_declaration"})
	if len(fns) != 2 {
		t.Fatalf("got %d function declarations, want 2", len(fns))
	}
	outer := ScopeBindings(fns[0], src)
	if _, ok := outer["param"]; !ok {
		t.Errorf("function scope missing parameter: %v", outer)
	}

	body := fns[0].ChildByFieldName("body")
	if body == nil {
		t.Fatal("function body not found")
	}
	block := ScopeBindings(body, src)
	for _, name := range []string{"inner", "nested"} {
		if _, ok := block[name]; !ok {
			t.Errorf("block scope missing %q: %v", name, block)
		}
	}
}

func TestLeadingComment(t *testing.T) {
	src, p := parseJS(t, `/** documented helper */
function documented() { return 1; }

// plain comment
function plain() { return 2; }

function bare() { return 3; }
`)
	root, err := p.Parse(context.Background(), src, LangJavaScript)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fns := FindNodes(root, []string{"function_declaration"})
	if len(fns) != 3 {
		t.Fatalf("got %d functions, want 3", len(fns))
	}

	if got := LeadingComment(fns[0], src); got != "/** documented helper */" {
		t.Errorf("doc comment = %q", got)
	}
	if got := LeadingComment(fns[1], src); got != "// plain comment" {
		t.Errorf("plain comment = %q", got)
	}
	if got := LeadingComment(fns[2], src); got != "" {
		t.Errorf("bare function comment = %q, want empty", got)
	}
}
