// Package report writes the pipeline's output artifacts.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	ImprovedResumeFile = "improved_resume.txt"
	GapsFile           = "resume_gaps.txt"
	UpskillPlanFile    = "upskill_plan.txt"
	MatchesFile        = "matches.json"
	InterviewPrepFile  = "interview_prep.txt"
)

// Writer persists artifacts under a single output directory, creating it on
// first use.
type Writer struct {
	Dir string
}

func NewWriter(dir string) *Writer {
	if dir == "" {
		dir = "."
	}
	return &Writer{Dir: dir}
}

// WriteText stores content under name, creating parent directories as
// needed. Returns the full path of the written file.
func (w *Writer) WriteText(name, content string) (string, error) {
	path := filepath.Join(w.Dir, name)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}

	return path, nil
}

// WriteJSON stores v as indented json under name.
func (w *Writer) WriteJSON(name string, v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling %s: %w", name, err)
	}

	return w.WriteText(name, string(data)+"\n")
}
