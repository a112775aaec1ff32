package rename

import (
	"context"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"

	"refa/internal/casestyle"
	"refa/internal/tree"
)

func parse(t *testing.T, source string) (*sitter.Node, []byte) {
	t.Helper()
	src := []byte(source)
	root, err := tree.NewParser().Parse(context.Background(), src, tree.LangJavaScript)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return root, src
}

func TestFindCandidatesBasic(t *testing.T) {
	root, src := parse(t, `const my_var = 1;
function my_func() {}
`)
	got := FindCandidates(root, src, casestyle.Camel, nil)

	want := []Candidate{
		{Original: "my_var", Suggestion: "myVar"},
		{Original: "my_func", Suggestion: "myFunc"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d candidates, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("candidate %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestFindCandidatesSkipsConforming(t *testing.T) {
	root, src := parse(t, `const myVar = 1;
const alreadyGood = 2;
`)
	got := FindCandidates(root, src, casestyle.Camel, nil)
	if len(got) != 0 {
		t.Errorf("expected no candidates, got %+v", got)
	}
}

func TestFindCandidatesScopeGuard(t *testing.T) {
	// Renaming my_var to myVar would collide with the existing binding.
	root, src := parse(t, `const myVar = 1;
const my_var = 2;
`)
	got := FindCandidates(root, src, casestyle.Camel, nil)
	for _, c := range got {
		if c.Original == "my_var" {
			t.Errorf("collision candidate must be rejected: %+v", c)
		}
	}
}

func TestFindCandidatesEnclosingScopeGuard(t *testing.T) {
	// The collision is in an enclosing scope, not the declaration's own.
	root, src := parse(t, `const myVar = 1;
function wrapper() {
  const my_var = 2;
  return my_var;
}
`)
	got := FindCandidates(root, src, casestyle.Camel, nil)
	for _, c := range got {
		if c.Original == "my_var" {
			t.Errorf("enclosing-scope collision must be rejected: %+v", c)
		}
	}
}

func TestFindCandidatesDedup(t *testing.T) {
	root, src := parse(t, `function wrap_one() { const my_var = 1; return my_var; }
function wrap_two() { const my_var = 2; return my_var; }
`)
	got := FindCandidates(root, src, casestyle.Camel, nil)

	count := 0
	for _, c := range got {
		if c.Original == "my_var" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("my_var reported %d times, want exactly 1", count)
	}
}

func TestFindCandidatesExclusions(t *testing.T) {
	root, src := parse(t, `const loop_idx = 1;
const tmp_buf = 2;
`)
	excluded := map[string]struct{}{"tmp_buf": {}}
	got := FindCandidates(root, src, casestyle.Camel, excluded)

	if len(got) != 1 || got[0].Original != "loop_idx" {
		t.Errorf("got %+v, want only loop_idx", got)
	}
}

func TestFindCandidatesSnakeTarget(t *testing.T) {
	root, src := parse(t, `const myVarName = 1;
const ok_name = 2;
`)
	got := FindCandidates(root, src, casestyle.Snake, nil)

	if len(got) != 1 {
		t.Fatalf("got %+v, want one candidate", got)
	}
	if got[0].Original != "myVarName" || got[0].Suggestion != "my_var_name" {
		t.Errorf("candidate = %+v", got[0])
	}
}
