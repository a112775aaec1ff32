// Package metrics walks a parsed syntax tree and computes per-function
// quality signals, file-level aggregates, duplication and dead code, and the
// weighted health/tech-debt score.
package metrics

// FunctionMetrics holds the quality signals of one function-like declaration.
type FunctionMetrics struct {
	Name                 string `json:"name"`
	StartLine            int    `json:"startLine"`
	EndLine              int    `json:"endLine"`
	LengthInLines        int    `json:"lengthInLines"`
	ParameterCount       int    `json:"parameterCount"`
	CyclomaticComplexity int    `json:"cyclomaticComplexity"`
	MaxNestingDepth      int    `json:"maxNestingDepth"`
	HasSideEffects       bool   `json:"hasSideEffects"`
	IsPure               bool   `json:"isPure"`
	IsDocumented         bool   `json:"isDocumented"`
}

// DuplicateBlock records two lines whose whitespace-normalized content hashed
// identically. FirstLine is the earliest occurrence, SecondLine the first
// later match.
type DuplicateBlock struct {
	NormalizedContent string `json:"normalizedContent"`
	FirstLine         int    `json:"firstLine"`
	SecondLine        int    `json:"secondLine"`
}

// DeadCode lists declared names with no detected reference or call anywhere
// in the file. This is a whole-file heuristic, not scope-precise.
type DeadCode struct {
	UnusedVariables []string `json:"unusedVariables"`
	UnusedFunctions []string `json:"unusedFunctions"`
}

// AnalysisResult is the immutable aggregate produced by one analysis pass and
// consumed by the report renderer.
type AnalysisResult struct {
	Path           string            `json:"path"`
	TotalLines     int               `json:"totalLines"`
	TotalFunctions int               `json:"totalFunctions"`
	Functions      []FunctionMetrics `json:"functions"`

	// Derived filters over Functions.
	LongFunctions  []FunctionMetrics `json:"longFunctions"`
	HighComplexity []FunctionMetrics `json:"highComplexity"`
	Untestable     []FunctionMetrics `json:"untestable"`
	Undocumented   []FunctionMetrics `json:"undocumented"`

	// AvgFunctionLength and CommentDensity are rendered with one decimal
	// place; "0.0" for empty input, never a division artifact.
	AvgFunctionLength string `json:"avgFunctionLength"`
	CommentDensity    string `json:"commentDensity"`

	Duplicates []DuplicateBlock `json:"duplicates"`
	DeadCode   DeadCode         `json:"deadCode"`

	TechDebtScore int `json:"techDebtScore"`
	HealthScore   int `json:"healthScore"`

	Observations []string `json:"observations"`
}

// Thresholds of the derived filters and observations.
const (
	longFunctionLines   = 50
	highComplexityLimit = 8
	lowCommentDensity   = 20.0
)
