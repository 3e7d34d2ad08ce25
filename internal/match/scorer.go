// Package match computes lexical relevance between a resume and job
// postings and produces a ranked top-N subset.
package match

import (
	"strings"

	"github.com/jobhunter-ai/jobhunter/internal/jobs"
)

// Tokenize case-folds text and splits it on whitespace into a set of unique
// tokens. Punctuation is kept attached on purpose: "python," and "python"
// are distinct tokens. A known limitation that under-counts some overlap,
// kept until a product decision changes the rule.
func Tokenize(text string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, token := range strings.Fields(strings.ToLower(text)) {
		tokens[token] = struct{}{}
	}
	return tokens
}

// Score returns the relevance of a posting to the resume: the sum, over the
// posting's checked fields, of the overlap between the resume token set and
// that field's token set. Always non-negative, deterministic, and zero for
// empty resume text.
func Score(posting *jobs.Posting, resumeText string) int {
	resumeTokens := Tokenize(resumeText)
	if len(resumeTokens) == 0 {
		return 0
	}

	score := 0
	for _, field := range posting.CheckedFields() {
		for token := range Tokenize(field) {
			if _, ok := resumeTokens[token]; ok {
				score++
			}
		}
	}

	return score
}
