package metrics

import (
	"strings"

	"golang.org/x/crypto/blake2b"
)

// findDuplicateLines hashes each normalized line and reports a block the
// second time a hash is seen. Blank lines and lone closing braces carry no
// signal and are skipped. This is line-granularity detection, not AST-aware:
// identical trivial lines are flagged too, which is a known coarse-grained
// limitation.
func findDuplicateLines(text string) []DuplicateBlock {
	var blocks []DuplicateBlock
	firstSeen := make(map[[32]byte]int)
	reported := make(map[[32]byte]struct{})

	for i, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "}" {
			continue
		}
		normalized := normalizeLine(trimmed)
		sum := blake2b.Sum256([]byte(normalized))

		lineNo := i + 1
		first, seen := firstSeen[sum]
		if !seen {
			firstSeen[sum] = lineNo
			continue
		}
		if _, done := reported[sum]; done {
			continue
		}
		reported[sum] = struct{}{}
		blocks = append(blocks, DuplicateBlock{
			NormalizedContent: normalized,
			FirstLine:         first,
			SecondLine:        lineNo,
		})
	}
	return blocks
}

// normalizeLine collapses every whitespace run to a single space.
func normalizeLine(line string) string {
	return strings.Join(strings.Fields(line), " ")
}
