package report

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"refa/internal/metrics"
)

const (
	healthGood = 80
	healthFair = 50
)

// renderHuman builds the terminal report: a summary header, a per-function
// table, and the duplication/dead-code/observation sections.
func renderHuman(r *metrics.AnalysisResult) string {
	var parts []string

	parts = append(parts, fmt.Sprintf("=== %s ===", r.Path))
	parts = append(parts, renderSummary(r))

	if len(r.Functions) > 0 {
		parts = append(parts, renderFunctionTable(r.Functions))
	}
	if len(r.Duplicates) > 0 {
		parts = append(parts, renderDuplicates(r.Duplicates))
	}
	if dead := renderDeadCode(r.DeadCode); dead != "" {
		parts = append(parts, dead)
	}
	if len(r.Observations) > 0 {
		parts = append(parts, renderObservations(r.Observations))
	}

	return strings.Join(parts, "\n\n") + "\n"
}

func renderSummary(r *metrics.AnalysisResult) string {
	lines := []string{
		fmt.Sprintf("Lines: %d | Functions: %d | Avg function length: %s | Comment density: %s%%",
			r.TotalLines, r.TotalFunctions, r.AvgFunctionLength, r.CommentDensity),
		fmt.Sprintf("Health: %s | Tech debt: %d", healthColor(r.HealthScore).Sprintf("%d", r.HealthScore), r.TechDebtScore),
	}
	return strings.Join(lines, "\n")
}

// healthColor maps the health score to a severity color.
func healthColor(score int) *color.Color {
	switch {
	case score >= healthGood:
		return color.New(color.FgGreen)
	case score >= healthFair:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

func renderFunctionTable(functions []metrics.FunctionMetrics) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.DrawBorder = false

	tbl.AppendHeader(table.Row{"Function", "Lines", "Length", "Params", "Complexity", "Depth", "Pure", "Doc"})
	for _, f := range functions {
		tbl.AppendRow(table.Row{
			f.Name,
			fmt.Sprintf("%d-%d", f.StartLine, f.EndLine),
			f.LengthInLines,
			f.ParameterCount,
			f.CyclomaticComplexity,
			f.MaxNestingDepth,
			yesNo(f.IsPure),
			yesNo(f.IsDocumented),
		})
	}
	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d", len(functions))})

	return tbl.Render()
}

func renderDuplicates(blocks []metrics.DuplicateBlock) string {
	lines := []string{fmt.Sprintf("Duplicate lines (%d):", len(blocks))}
	for _, b := range blocks {
		lines = append(lines, fmt.Sprintf("  line %d repeats line %d: %s", b.SecondLine, b.FirstLine, b.NormalizedContent))
	}
	return strings.Join(lines, "\n")
}

func renderDeadCode(dead metrics.DeadCode) string {
	if len(dead.UnusedVariables) == 0 && len(dead.UnusedFunctions) == 0 {
		return ""
	}
	var lines []string
	lines = append(lines, "Dead code:")
	if len(dead.UnusedVariables) > 0 {
		lines = append(lines, "  unused variables: "+strings.Join(dead.UnusedVariables, ", "))
	}
	if len(dead.UnusedFunctions) > 0 {
		lines = append(lines, "  unused functions: "+strings.Join(dead.UnusedFunctions, ", "))
	}
	return strings.Join(lines, "\n")
}

func renderObservations(observations []string) string {
	lines := []string{"Observations:"}
	warn := color.New(color.FgYellow)
	for _, o := range observations {
		lines = append(lines, "  - "+warn.Sprint(o))
	}
	return strings.Join(lines, "\n")
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
