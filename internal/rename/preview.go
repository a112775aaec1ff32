package rename

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Preview renders a compact line diff of the buffer before and after a
// replacement, for the per-candidate review prompt.
func Preview(before, after string) string {
	dmp := diffmatchpatch.New()
	src, dst, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(src, dst, false), lines)

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			writePrefixed(&b, "-", d.Text)
		case diffmatchpatch.DiffInsert:
			writePrefixed(&b, "+", d.Text)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func writePrefixed(b *strings.Builder, prefix, text string) {
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		fmt.Fprintf(b, "%s %s\n", prefix, line)
	}
}
