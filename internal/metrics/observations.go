package metrics

import (
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"refa/internal/tree"
)

// buildObservations emits the natural-language findings triggered by fixed
// thresholds.
func buildObservations(r *AnalysisResult, root *sitter.Node, source []byte, densityPct float64) {
	total := r.TotalFunctions

	if total > 0 && len(r.Undocumented)*2 > total {
		r.Observations = append(r.Observations, fmt.Sprintf(
			"Documentation Gaps: %d of %d functions lack doc comments.",
			len(r.Undocumented), total))
	}
	if len(r.LongFunctions) > 0 {
		r.Observations = append(r.Observations, fmt.Sprintf(
			"Oversized Functions: %d function(s) exceed %d lines and are hard to review.",
			len(r.LongFunctions), longFunctionLines))
	}
	if len(r.HighComplexity) > 0 {
		r.Observations = append(r.Observations, fmt.Sprintf(
			"High Complexity: %d function(s) exceed complexity %d.",
			len(r.HighComplexity), highComplexityLimit))
	}
	if len(r.Untestable) > 0 {
		r.Observations = append(r.Observations, fmt.Sprintf(
			"Testability: %d function(s) have side effects or no return value.",
			len(r.Untestable)))
	}
	if hasCopyPasteSmell(r.Functions, root, source) {
		r.Observations = append(r.Observations,
			"Possible Copy-Paste: near-identical function names or repeated counted loops detected.")
	}
	if densityPct < lowCommentDensity {
		r.Observations = append(r.Observations, fmt.Sprintf(
			"Low Comment Density: %.1f%% of lines are comments (below %.0f%%).",
			densityPct, lowCommentDensity))
	}
}

// hasCopyPasteSmell fires on function names equal modulo an "Again" suffix,
// or on more than one simple counted for loop.
func hasCopyPasteSmell(functions []FunctionMetrics, root *sitter.Node, source []byte) bool {
	bases := make(map[string]int)
	for _, f := range functions {
		if f.Name == "<anonymous>" {
			continue
		}
		base := strings.TrimSuffix(f.Name, "Again")
		bases[base]++
		if bases[base] > 1 {
			return true
		}
	}
	return countedForLoops(root, source) > 1
}

// countedForLoops counts classic counter-increment for statements.
func countedForLoops(root *sitter.Node, source []byte) int {
	count := 0
	for _, loop := range tree.FindNodes(root, []string{"for_statement"}) {
		inc := loop.ChildByFieldName("increment")
		if inc != nil && strings.Contains(tree.Text(inc, source), "++") {
			count++
		}
	}
	return count
}
