package match

import (
	"testing"

	"github.com/jobhunter-ai/jobhunter/internal/jobs"
)

func rankedSkills(ranked *jobs.Postings) []string {
	skills := make([]string, 0, ranked.Len())
	for _, posting := range ranked.Items {
		skills = append(skills, posting.Skills)
	}
	return skills
}

func TestRankOrdersByDescendingScore(t *testing.T) {
	postings := &jobs.Postings{Items: []*jobs.Posting{
		{Skills: "ruby"},
		{Skills: "go sql docker python kubernetes"},
		{Skills: "go sql docker"},
		{Skills: "nothing"},
		{Skills: "go sql"},
	}}

	ranked := Rank(postings, "go sql docker python kubernetes", 2)

	if ranked.Len() != 2 {
		t.Fatalf("expected 2 results, got %d", ranked.Len())
	}
	if ranked.Items[0].MatchScore != 5 || ranked.Items[1].MatchScore != 3 {
		t.Fatalf("unexpected top scores: %d, %d", ranked.Items[0].MatchScore, ranked.Items[1].MatchScore)
	}

	for i := 1; i < ranked.Len(); i++ {
		if ranked.Items[i-1].MatchScore < ranked.Items[i].MatchScore {
			t.Fatalf("ranking not descending at %d: %v", i, rankedSkills(ranked))
		}
	}
}

func TestRankIsStableForEqualScores(t *testing.T) {
	a := &jobs.Posting{Title: "A", Skills: "go sql python"}
	b := &jobs.Posting{Title: "B", Skills: "go sql python"}
	postings := &jobs.Postings{Items: []*jobs.Posting{a, b}}

	ranked := Rank(postings, "go sql python", 2)

	if ranked.Items[0] != a || ranked.Items[1] != b {
		t.Fatalf("equal scores must keep input order, got %s then %s",
			ranked.Items[0].Title, ranked.Items[1].Title)
	}
}

func TestRankReturnsSubsequence(t *testing.T) {
	postings := &jobs.Postings{Items: []*jobs.Posting{
		{Title: "A"}, {Title: "B"}, {Title: "C"},
	}}

	ranked := Rank(postings, "anything", 10)

	if ranked.Len() != 3 {
		t.Fatalf("expected all postings, got %d", ranked.Len())
	}

	seen := make(map[*jobs.Posting]bool)
	for _, posting := range ranked.Items {
		if seen[posting] {
			t.Fatalf("posting %q duplicated in output", posting.Title)
		}
		seen[posting] = true

		found := false
		for _, original := range postings.Items {
			if posting == original {
				found = true
			}
		}
		if !found {
			t.Fatalf("posting %q was not in the input", posting.Title)
		}
	}
}

func TestRankEmptyInput(t *testing.T) {
	ranked := Rank(&jobs.Postings{}, "resume text", 10)
	if ranked.Len() != 0 {
		t.Fatalf("expected empty result, got %d", ranked.Len())
	}

	ranked = Rank(nil, "resume text", 10)
	if ranked.Len() != 0 {
		t.Fatalf("expected empty result for nil input, got %d", ranked.Len())
	}
}

func TestRankEmptyResumePreservesInputOrder(t *testing.T) {
	postings := &jobs.Postings{Items: []*jobs.Posting{
		{Title: "A", Skills: "go"},
		{Title: "B", Skills: "python"},
		{Title: "C", Skills: "sql"},
	}}

	ranked := Rank(postings, "", 2)

	if ranked.Len() != 2 {
		t.Fatalf("expected 2 results, got %d", ranked.Len())
	}
	if ranked.Items[0].Title != "A" || ranked.Items[1].Title != "B" {
		t.Fatalf("all-zero scores must preserve input order: %v", rankedSkills(ranked))
	}
	for _, posting := range ranked.Items {
		if posting.MatchScore != 0 {
			t.Fatalf("expected zero scores, got %d", posting.MatchScore)
		}
	}
}

func TestRankClampsNonPositiveMaxResults(t *testing.T) {
	items := make([]*jobs.Posting, 0, 15)
	for i := 0; i < 15; i++ {
		items = append(items, &jobs.Posting{Title: "job"})
	}

	ranked := Rank(&jobs.Postings{Items: items}, "text", 0)

	if ranked.Len() != DefaultMaxResults {
		t.Fatalf("expected default cap of %d, got %d", DefaultMaxResults, ranked.Len())
	}
}

func TestRankAttachesScores(t *testing.T) {
	postings := &jobs.Postings{Items: []*jobs.Posting{
		{Skills: "go sql"},
	}}

	ranked := Rank(postings, "go sql", 10)

	if ranked.Items[0].MatchScore != 2 {
		t.Fatalf("expected match_score 2, got %d", ranked.Items[0].MatchScore)
	}
}
