package lint

import (
	"bytes"
	"context"
	"encoding/json"
	"os/exec"
	"strings"
	"time"

	"refa/internal/apperr"
)

// Runner executes the external linter on one file's text.
type Runner interface {
	Lint(ctx context.Context, path string, source string) (*Result, error)
}

// ESLintRunner shells out to the eslint executable.
type ESLintRunner struct {
	Command string
	Timeout time.Duration
}

// NewESLintRunner creates a runner for the given eslint command.
func NewESLintRunner(command string, timeout time.Duration) *ESLintRunner {
	if command == "" {
		command = "eslint"
	}
	return &ESLintRunner{Command: command, Timeout: timeout}
}

// eslintFileResult mirrors one entry of eslint's --format json output.
type eslintFileResult struct {
	FilePath string       `json:"filePath"`
	Messages []Diagnostic `json:"messages"`
	Output   string       `json:"output"`
}

// Lint feeds the source over stdin and decodes the JSON result. ESLint exits
// nonzero when it finds problems, so the exit code alone is not a failure;
// only an undecodable output is.
func (r *ESLintRunner) Lint(ctx context.Context, path string, source string) (*Result, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, r.Command,
		"--format", "json",
		"--fix-dry-run",
		"--stdin",
		"--stdin-filename", path,
	)
	cmd.Stdin = strings.NewReader(source)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	if ctx.Err() != nil {
		return nil, apperr.Wrap(apperr.Internal, "linter timed out", ctx.Err())
	}

	result, err := decodeOutput(stdout.Bytes(), source)
	if err != nil {
		if runErr != nil {
			return nil, apperr.Wrap(apperr.Internal, "linter failed: "+strings.TrimSpace(stderr.String()), runErr)
		}
		return nil, err
	}
	return result, nil
}

// decodeOutput parses eslint's --format json array. The fix output only
// counts when it differs from the input text.
func decodeOutput(stdout []byte, source string) (*Result, error) {
	var files []eslintFileResult
	if err := json.Unmarshal(stdout, &files); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "cannot decode linter output", err)
	}
	if len(files) == 0 {
		return &Result{}, nil
	}

	result := &Result{Diagnostics: files[0].Messages}
	if files[0].Output != "" && files[0].Output != source {
		fixed := files[0].Output
		result.FixedText = &fixed
	}
	return result, nil
}
