package metrics

import (
	"fmt"
	"math"
	"strings"
)

// deriveFilters fills the threshold-based function lists.
func deriveFilters(r *AnalysisResult) {
	seenImpure := make(map[string]struct{})

	for _, f := range r.Functions {
		if f.LengthInLines > longFunctionLines {
			r.LongFunctions = append(r.LongFunctions, f)
		}
		if f.CyclomaticComplexity > highComplexityLimit {
			r.HighComplexity = append(r.HighComplexity, f)
		}
		if !f.IsPure {
			// First occurrence per distinct name.
			if _, dup := seenImpure[f.Name]; !dup {
				seenImpure[f.Name] = struct{}{}
				r.Untestable = append(r.Untestable, f)
			}
		}
		if !f.IsDocumented {
			r.Undocumented = append(r.Undocumented, f)
		}
	}
}

// scoreResult computes the weighted tech-debt score and its complement.
//
// debt = round(min(100, 100*(0.3*long + 0.3*complex + 0.2*untestable +
// 0.2*undocumented) / max(1, total)))
func scoreResult(r *AnalysisResult) {
	weighted := 0.3*float64(len(r.LongFunctions)) +
		0.3*float64(len(r.HighComplexity)) +
		0.2*float64(len(r.Untestable)) +
		0.2*float64(len(r.Undocumented))

	divisor := float64(r.TotalFunctions)
	if divisor < 1 {
		divisor = 1
	}

	debt := math.Round(math.Min(100, 100*weighted/divisor))
	r.TechDebtScore = int(debt)
	r.HealthScore = 100 - r.TechDebtScore
	if r.HealthScore < 0 {
		r.HealthScore = 0
	}
}

// averageFunctionLength renders the mean function length with one decimal.
func averageFunctionLength(functions []FunctionMetrics) string {
	if len(functions) == 0 {
		return "0.0"
	}
	total := 0
	for _, f := range functions {
		total += f.LengthInLines
	}
	return fmt.Sprintf("%.1f", float64(total)/float64(len(functions)))
}

// commentDensity renders the percentage of comment-looking lines.
func commentDensity(text string) (string, float64) {
	lines := strings.Split(text, "\n")
	if len(lines) == 0 || text == "" {
		return "0.0", 0
	}
	comments := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "/*") || strings.HasPrefix(trimmed, "*") {
			comments++
		}
	}
	pct := float64(comments) / float64(len(lines)) * 100
	return fmt.Sprintf("%.1f", pct), pct
}
