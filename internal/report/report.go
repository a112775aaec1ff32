// Package report renders a metrics.AnalysisResult as JSON, a human terminal
// report, or an HTML page, and exports reports to disk with optional gzip
// compression.
package report

import (
	"encoding/json"
	"fmt"

	"refa/internal/metrics"
)

// Format selects the output renderer.
type Format string

const (
	FormatJSON  Format = "json"
	FormatHuman Format = "human"
	FormatHTML  Format = "html"
)

// ParseFormat validates a format flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatHuman, FormatHTML:
		return Format(s), nil
	}
	return "", fmt.Errorf("unsupported format: %s", s)
}

// Render produces the report text for a result in the requested format.
func Render(r *metrics.AnalysisResult, format Format) (string, error) {
	switch format {
	case FormatJSON:
		return renderJSON(r)
	case FormatHuman:
		return renderHuman(r), nil
	case FormatHTML:
		return renderHTML(r)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func renderJSON(r *metrics.AnalysisResult) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}
