package jobs

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
)

// CSVSource loads postings from a tabular file with a header row. Rows keep
// their file order. Columns beyond the known posting fields are ignored and
// short rows are padded with empty cells, so heterogeneous exports load fine.
type CSVSource struct {
	Path   string
	Logger *zap.Logger
}

func NewCSVSource(path string, logger *zap.Logger) *CSVSource {
	return &CSVSource{Path: path, Logger: logger}
}

func (s *CSVSource) Load() (*Postings, error) {
	file, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("opening jobs csv: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return &Postings{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}

	for i, name := range header {
		header[i] = strings.TrimSpace(name)
	}

	postings := make([]*Posting, 0)
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("reading csv row %d: %w", line, err)
		}

		record := make(map[string]any, len(header))
		for i, name := range header {
			if name == "" {
				continue
			}
			if i < len(row) {
				record[name] = row[i]
			} else {
				record[name] = ""
			}
		}

		posting, err := FromRecord(record)
		if err != nil {
			return nil, fmt.Errorf("normalizing csv row %d: %w", line, err)
		}
		postings = append(postings, posting)
	}

	if s.Logger != nil {
		s.Logger.Debug("loaded postings from csv",
			zap.String("path", s.Path),
			zap.Int("count", len(postings)),
		)
	}

	return &Postings{Items: postings}, nil
}
