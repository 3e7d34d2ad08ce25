package jobs

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

// Posting is a single job listing normalized from a loosely-shaped record.
// Any shape tolerance lives in FromRecord: once constructed, all text fields
// are plain strings and missing source fields are empty.
type Posting struct {
	Title       string `record:"Job Title" json:"title,omitempty"`
	Company     string `record:"company" json:"company,omitempty"`
	Location    string `record:"location" json:"location,omitempty"`
	Role        string `record:"Role" json:"role,omitempty"`
	Skills      string `record:"skills" json:"skills,omitempty"`
	Description string `record:"Job Description" json:"description,omitempty"`
	Snippet     string `record:"snippet" json:"snippet,omitempty"`
	URL         string `record:"url" json:"url,omitempty"`

	// MatchScore is written by the ranking step only.
	MatchScore int `json:"match_score"`
}

// Alternate record keys seen in the wild (scraped postings use lowercase
// short names, the reference CSV uses capitalized long ones). Folded into
// the canonical key before decoding when the canonical one is absent.
var recordKeyAliases = map[string]string{
	"title":       "Job Title",
	"description": "Job Description",
}

// FromRecord normalizes one arbitrary record into a Posting. Values of any
// type are coerced to their textual form, so a numeric cell becomes its
// decimal string. Unknown keys are ignored.
func FromRecord(record map[string]any) (*Posting, error) {
	folded := make(map[string]any, len(record))
	for key, value := range record {
		folded[key] = value
	}
	for alias, canonical := range recordKeyAliases {
		if _, ok := folded[canonical]; ok {
			continue
		}
		if value, ok := folded[alias]; ok {
			folded[canonical] = value
		}
	}

	posting := &Posting{}
	cfg := &mapstructure.DecoderConfig{
		Result:           posting,
		TagName:          "record",
		WeaklyTypedInput: true,
	}

	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, fmt.Errorf("building record decoder: %w", err)
	}

	if err := decoder.Decode(folded); err != nil {
		return nil, fmt.Errorf("decoding record: %w", err)
	}

	return posting, nil
}

// CheckedFields returns the fixed set of text fields consulted by relevance
// scoring, in a stable order.
func (p *Posting) CheckedFields() []string {
	return []string{p.Skills, p.Title, p.Description, p.Location, p.Role}
}

// DisplayRole returns the best available role description for the posting.
func (p *Posting) DisplayRole() string {
	if p.Title != "" {
		return p.Title
	}
	return p.Role
}

type Postings struct {
	Items []*Posting
}

func (p *Postings) Len() int {
	return len(p.Items)
}

func (p *Postings) FindByTitle(title string) *Posting {
	for _, posting := range p.Items {
		if posting.Title == title {
			return posting
		}
	}
	return nil
}

// Companies returns the distinct company names in input order.
func (p *Postings) Companies() []string {
	seen := make(map[string]struct{})
	companies := make([]string, 0)
	for _, posting := range p.Items {
		if posting.Company == "" {
			continue
		}
		if _, ok := seen[posting.Company]; ok {
			continue
		}
		seen[posting.Company] = struct{}{}
		companies = append(companies, posting.Company)
	}
	return companies
}

// ReportByCompany groups short posting summaries by company name.
func (p *Postings) ReportByCompany() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, posting := range p.Items {
		key := posting.Company
		if key == "" {
			key = "unknown"
		}
		report[key] = append(report[key], map[string]string{
			"title":       posting.Title,
			"location":    posting.Location,
			"url":         posting.URL,
			"match_score": fmt.Sprintf("%d", posting.MatchScore),
		})
	}
	return report
}

func (p *Postings) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "postings_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return "", err
	}
	return file.Name(), nil
}
