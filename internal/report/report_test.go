package report

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"

	"refa/internal/metrics"
)

func sampleResult() *metrics.AnalysisResult {
	return &metrics.AnalysisResult{
		Path:           "sample.js",
		TotalLines:     12,
		TotalFunctions: 1,
		Functions: []metrics.FunctionMetrics{{
			Name:                 "compute",
			StartLine:            1,
			EndLine:              4,
			LengthInLines:        3,
			ParameterCount:       2,
			CyclomaticComplexity: 2,
			IsPure:               true,
		}},
		AvgFunctionLength: "3.0",
		CommentDensity:    "0.0",
		Duplicates: []metrics.DuplicateBlock{
			{NormalizedContent: "return x;", FirstLine: 2, SecondLine: 8},
		},
		DeadCode:      metrics.DeadCode{UnusedVariables: []string{"leftover"}},
		TechDebtScore: 20,
		HealthScore:   80,
		Observations:  []string{"Low Comment Density: 0.0% of lines are comments (below 20%)."},
	}
}

func TestParseFormat(t *testing.T) {
	for _, valid := range []string{"json", "human", "html"} {
		if _, err := ParseFormat(valid); err != nil {
			t.Errorf("ParseFormat(%q) = %v", valid, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestRenderJSON(t *testing.T) {
	out, err := Render(sampleResult(), FormatJSON)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var decoded metrics.AnalysisResult
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.HealthScore != 80 || decoded.Functions[0].Name != "compute" {
		t.Errorf("round-trip lost fields: %+v", decoded)
	}
	if !strings.Contains(out, `"avgFunctionLength": "3.0"`) {
		t.Errorf("averages must serialize as strings:\n%s", out)
	}
}

func TestRenderHuman(t *testing.T) {
	out, err := Render(sampleResult(), FormatHuman)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"sample.js", "compute", "Tech debt: 20", "line 8 repeats line 2", "leftover", "Low Comment Density"} {
		if !strings.Contains(out, want) {
			t.Errorf("human report missing %q:\n%s", want, out)
		}
	}
}

func TestRenderHTML(t *testing.T) {
	out, err := Render(sampleResult(), FormatHTML)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"<title>Analysis: sample.js</title>", "<td>compute</td>", "unused variable <code>leftover</code>"} {
		if !strings.Contains(out, want) {
			t.Errorf("html report missing %q", want)
		}
	}
}

func TestExportPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html")
	if err := Export(path, "<html>ok</html>"); err != nil {
		t.Fatalf("export: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "<html>ok</html>" {
		t.Errorf("content = %q", data)
	}
}

func TestExportGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html.gz")
	if err := Export(path, "<html>compressed</html>"); err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		t.Fatalf("not a gzip stream: %v", err)
	}
	defer zr.Close()

	data, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("decompress: %v", err)
	}
	if string(data) != "<html>compressed</html>" {
		t.Errorf("content = %q", data)
	}
}
