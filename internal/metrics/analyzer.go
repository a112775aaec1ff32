package metrics

import (
	"context"
	"strings"

	"refa/internal/tree"
)

// Analyzer produces an AnalysisResult from one file's text.
type Analyzer struct {
	parser *tree.Parser
}

// NewAnalyzer creates a new metrics analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{parser: tree.NewParser()}
}

// AnalyzeSource parses source and runs the full metrics pass. A parse
// failure aborts the analysis; no partial result is produced.
func (a *Analyzer) AnalyzeSource(ctx context.Context, path string, source []byte, lang tree.Language) (*AnalysisResult, error) {
	root, err := a.parser.Parse(ctx, source, lang)
	if err != nil {
		return nil, err
	}

	text := string(source)
	r := &AnalysisResult{
		Path:       path,
		TotalLines: countLines(text),
	}

	for _, fn := range tree.FindNodes(root, functionNodeTypes) {
		r.Functions = append(r.Functions, analyzeFunction(fn, source))
	}
	r.TotalFunctions = len(r.Functions)

	deriveFilters(r)
	scoreResult(r)

	r.AvgFunctionLength = averageFunctionLength(r.Functions)
	density, densityPct := commentDensity(text)
	r.CommentDensity = density

	r.Duplicates = findDuplicateLines(text)
	r.DeadCode = findDeadCode(root, source)

	buildObservations(r, root, source, densityPct)
	return r, nil
}

// countLines counts source lines, treating empty input as zero lines.
func countLines(text string) int {
	if text == "" {
		return 0
	}
	return len(strings.Split(text, "\n"))
}
