package jobs

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobs.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing csv fixture: %v", err)
	}
	return path
}

func TestCSVSourceLoadsRowsInOrder(t *testing.T) {
	path := writeCSV(t, "Job Title,company,skills,location\n"+
		"Data Analyst,Acme,\"Python, SQL\",Berlin\n"+
		"Backend Engineer,Globex,Go,Remote\n")

	postings, err := NewCSVSource(path, zap.NewNop()).Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if postings.Len() != 2 {
		t.Fatalf("expected 2 postings, got %d", postings.Len())
	}
	if postings.Items[0].Title != "Data Analyst" || postings.Items[1].Title != "Backend Engineer" {
		t.Fatalf("row order not preserved: %+v", postings.Items)
	}
	if postings.Items[0].Skills != "Python, SQL" {
		t.Fatalf("quoted cell mangled: %q", postings.Items[0].Skills)
	}
}

func TestCSVSourcePadsShortRows(t *testing.T) {
	path := writeCSV(t, "Job Title,skills,location\nAnalyst,SQL\n")

	postings, err := NewCSVSource(path, zap.NewNop()).Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if postings.Len() != 1 {
		t.Fatalf("expected 1 posting, got %d", postings.Len())
	}
	if postings.Items[0].Location != "" {
		t.Fatalf("missing cell should be empty, got %q", postings.Items[0].Location)
	}
}

func TestCSVSourceEmptyFile(t *testing.T) {
	path := writeCSV(t, "")

	postings, err := NewCSVSource(path, zap.NewNop()).Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if postings.Len() != 0 {
		t.Fatalf("expected no postings, got %d", postings.Len())
	}
}

func TestCSVSourceHeaderOnly(t *testing.T) {
	path := writeCSV(t, "Job Title,skills\n")

	postings, err := NewCSVSource(path, zap.NewNop()).Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if postings.Len() != 0 {
		t.Fatalf("expected no postings, got %d", postings.Len())
	}
}

func TestCSVSourceMissingFile(t *testing.T) {
	source := NewCSVSource(filepath.Join(t.TempDir(), "missing.csv"), zap.NewNop())

	if _, err := source.Load(); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestCSVSourceUnknownColumnsIgnored(t *testing.T) {
	path := writeCSV(t, "Job Title,Salary Band,skills\nAnalyst,B2,SQL\n")

	postings, err := NewCSVSource(path, zap.NewNop()).Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if postings.Items[0].Title != "Analyst" || postings.Items[0].Skills != "SQL" {
		t.Fatalf("unexpected posting: %+v", postings.Items[0])
	}
}
