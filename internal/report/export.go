package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Export writes a rendered report to path. A path ending in .gz is
// gzip-compressed on the way out.
func Export(path, content string) error {
	if !strings.HasSuffix(path, ".gz") {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	zw := gzip.NewWriter(f)
	if _, err := zw.Write([]byte(content)); err != nil {
		zw.Close()
		f.Close()
		return fmt.Errorf("failed to write compressed report: %w", err)
	}
	if err := zw.Close(); err != nil {
		f.Close()
		return fmt.Errorf("failed to finish compressed report: %w", err)
	}
	return f.Close()
}
