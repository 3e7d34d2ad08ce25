package match

import (
	"sort"

	"github.com/jobhunter-ai/jobhunter/internal/jobs"
)

// DefaultMaxResults bounds the ranked output when the caller does not ask
// for a particular size.
const DefaultMaxResults = 10

// Rank scores every posting against the resume, writes the score into
// MatchScore, and returns the top maxResults postings ordered by descending
// score. The sort is stable: equal scores keep their input order. A
// maxResults of zero or less falls back to DefaultMaxResults.
func Rank(postings *jobs.Postings, resumeText string, maxResults int) *jobs.Postings {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	if postings == nil || postings.Len() == 0 {
		return &jobs.Postings{}
	}

	ranked := make([]*jobs.Posting, postings.Len())
	copy(ranked, postings.Items)

	for _, posting := range ranked {
		posting.MatchScore = Score(posting, resumeText)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchScore > ranked[j].MatchScore
	})

	if len(ranked) > maxResults {
		ranked = ranked[:maxResults]
	}

	return &jobs.Postings{Items: ranked}
}
