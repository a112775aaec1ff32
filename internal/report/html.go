package report

import (
	"fmt"
	"html/template"
	"strings"

	"refa/internal/metrics"
)

var htmlTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Analysis: {{.Path}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 4px 8px; text-align: left; }
.score { font-size: 1.4em; }
.observation { color: #8a6d00; }
</style>
</head>
<body>
<h1>{{.Path}}</h1>
<p class="score">Health: {{.HealthScore}} &middot; Tech debt: {{.TechDebtScore}}</p>
<p>Lines: {{.TotalLines}} &middot; Functions: {{.TotalFunctions}} &middot;
Avg function length: {{.AvgFunctionLength}} &middot; Comment density: {{.CommentDensity}}%</p>
{{if .Functions}}
<table>
<tr><th>Function</th><th>Lines</th><th>Length</th><th>Params</th><th>Complexity</th><th>Depth</th><th>Pure</th><th>Documented</th></tr>
{{range .Functions}}
<tr><td>{{.Name}}</td><td>{{.StartLine}}&ndash;{{.EndLine}}</td><td>{{.LengthInLines}}</td><td>{{.ParameterCount}}</td><td>{{.CyclomaticComplexity}}</td><td>{{.MaxNestingDepth}}</td><td>{{.IsPure}}</td><td>{{.IsDocumented}}</td></tr>
{{end}}
</table>
{{end}}
{{if .Duplicates}}
<h2>Duplicate lines</h2>
<ul>
{{range .Duplicates}}<li>line {{.SecondLine}} repeats line {{.FirstLine}}: <code>{{.NormalizedContent}}</code></li>
{{end}}</ul>
{{end}}
{{if or .DeadCode.UnusedVariables .DeadCode.UnusedFunctions}}
<h2>Dead code</h2>
<ul>
{{range .DeadCode.UnusedVariables}}<li>unused variable <code>{{.}}</code></li>
{{end}}{{range .DeadCode.UnusedFunctions}}<li>unused function <code>{{.}}</code></li>
{{end}}</ul>
{{end}}
{{if .Observations}}
<h2>Observations</h2>
<ul>
{{range .Observations}}<li class="observation">{{.}}</li>
{{end}}</ul>
{{end}}
</body>
</html>
`))

func renderHTML(r *metrics.AnalysisResult) (string, error) {
	var b strings.Builder
	if err := htmlTemplate.Execute(&b, r); err != nil {
		return "", fmt.Errorf("failed to render HTML: %w", err)
	}
	return b.String(), nil
}
