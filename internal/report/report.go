package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bayneri/aqlplan/internal/planner"
)

const SchemaVersion = "1.0"

type Summary struct {
	SchemaVersion string `json:"schemaVersion"`
	planner.Plan
}

// Write emits the requested formats ("md", "json") into dir and returns the
// paths it wrote.
func Write(dir string, plan planner.Plan, formats []string, opts Options) ([]string, error) {
	if dir == "" {
		dir = filepath.Join("out", "report")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	var written []string
	for _, format := range formats {
		switch format {
		case "md":
			path := filepath.Join(dir, "summary.md")
			if err := WriteMarkdownSummary(path, plan, opts); err != nil {
				return written, err
			}
			written = append(written, path)
		case "json":
			path := filepath.Join(dir, "summary.json")
			if err := WriteSummaryJSON(path, plan); err != nil {
				return written, err
			}
			written = append(written, path)
		default:
			return written, fmt.Errorf("unknown report format %q (want md or json)", format)
		}
	}
	return written, nil
}
