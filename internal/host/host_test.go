package host

import (
	"os"
	"path/filepath"
	"testing"

	"refa/internal/apperr"
)

func TestOpenFileMissing(t *testing.T) {
	_, err := OpenFile(filepath.Join(t.TempDir(), "nope.js"))
	if !apperr.HasCode(err, apperr.NoActiveTarget) {
		t.Errorf("error code = %s, want NO_ACTIVE_TARGET", apperr.CodeOf(err))
	}
}

func TestFileDocumentRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.js")
	if err := os.WriteFile(path, []byte("const a = 1;\n"), 0644); err != nil {
		t.Fatal(err)
	}

	doc, err := OpenFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.IsModifiedSinceSave() {
		t.Error("freshly opened document should not be modified")
	}

	if err := doc.ReplaceAll("const b = 2;\n"); err != nil {
		t.Fatal(err)
	}
	if !doc.IsModifiedSinceSave() {
		t.Error("replace should mark the document modified")
	}

	if err := doc.Persist(); err != nil {
		t.Fatal(err)
	}
	if doc.IsModifiedSinceSave() {
		t.Error("persist should clear the modified flag")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "const b = 2;\n" {
		t.Errorf("persisted content = %q", data)
	}
}

func TestMemDocumentFailures(t *testing.T) {
	doc := NewMemDocument("mem.js", "x")
	doc.FailPersist = true

	if err := doc.ReplaceAll("y"); err != nil {
		t.Fatal(err)
	}
	if err := doc.Persist(); !apperr.HasCode(err, apperr.ApplyFailure) {
		t.Errorf("persist error code = %s, want APPLY_FAILURE", apperr.CodeOf(err))
	}
	// The buffer keeps the replaced text; only persistence failed.
	if doc.Buffer != "y" || doc.Persisted != "x" {
		t.Errorf("buffer=%q persisted=%q", doc.Buffer, doc.Persisted)
	}
}
