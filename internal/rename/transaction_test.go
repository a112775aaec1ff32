package rename

import (
	"strings"
	"testing"
)

func TestReplaceWholeWord(t *testing.T) {
	tests := []struct {
		text, name, repl, want string
	}{
		{"const my_var = my_var + 1;", "my_var", "myVar", "const myVar = myVar + 1;"},
		// No substring collisions with longer identifiers.
		{"my_var my_var_extra extra_my_var", "my_var", "myVar", "myVar my_var_extra extra_my_var"},
		{"foo(my_var); obj.my_var;", "my_var", "myVar", "foo(myVar); obj.myVar;"},
		{"nothing here", "my_var", "myVar", "nothing here"},
	}

	for _, tt := range tests {
		if got := ReplaceWholeWord(tt.text, tt.name, tt.repl); got != tt.want {
			t.Errorf("ReplaceWholeWord(%q, %s->%s) = %q, want %q", tt.text, tt.name, tt.repl, got, tt.want)
		}
	}
}

func TestTransactionSequentialApply(t *testing.T) {
	tx := NewTransaction()
	if tx.ID == "" {
		t.Error("transaction should carry a session id")
	}

	tx.Add("my_var", "myVar")
	tx.Add("my_func", "myFunc")

	in := "const my_var = 1; function my_func() { return my_var; }"
	want := "const myVar = 1; function myFunc() { return myVar; }"
	if got := tx.Apply(in); got != want {
		t.Errorf("Apply = %q, want %q", got, want)
	}
}

// Later steps must see earlier steps' effects on the buffer.
func TestTransactionLaterStepsSeeEarlier(t *testing.T) {
	tx := NewTransaction()
	tx.Add("a_name", "b_name")
	tx.Add("b_name", "c_name")

	if got := tx.Apply("a_name"); got != "c_name" {
		t.Errorf("Apply = %q, want c_name", got)
	}
}

func TestPreview(t *testing.T) {
	before := "const my_var = 1;\nconst other = 2;\n"
	after := "const myVar = 1;\nconst other = 2;\n"

	p := Preview(before, after)
	if !strings.Contains(p, "- const my_var = 1;") {
		t.Errorf("preview missing removed line: %q", p)
	}
	if !strings.Contains(p, "+ const myVar = 1;") {
		t.Errorf("preview missing added line: %q", p)
	}
	if strings.Contains(p, "other") {
		t.Errorf("unchanged lines should not appear: %q", p)
	}
}
