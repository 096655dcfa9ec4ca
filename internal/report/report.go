package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"curveScope/internal/model"
)

// Emitter defines a sink for qualified pool summaries.
type Emitter interface {
	Emit(summaries []model.QualifiedPoolSummary) error
}

// JSONReport writes the summaries as an indented JSON array artifact.
// An empty result writes nothing.
type JSONReport struct {
	Path string
}

func NewJSONReport(path string) *JSONReport {
	return &JSONReport{Path: path}
}

func (r *JSONReport) Emit(summaries []model.QualifiedPoolSummary) error {
	if len(summaries) == 0 {
		return nil
	}

	dir := filepath.Dir(r.Path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}

	data, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(r.Path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
