// Package cluster groups job postings by textual similarity using tf-idf
// vectors and k-means. It is a helper for downstream reporting (interview
// prep per group), not a search engine: the vectorization is deliberately
// plain.
package cluster

import (
	"math"
	"math/rand"
	"sort"

	"github.com/jobhunter-ai/jobhunter/internal/jobs"

	"go.uber.org/zap"
)

const (
	// DefaultGroups is the number of clusters when the config does not set one.
	DefaultGroups = 3

	// Fixed seed keeps group assignments reproducible between runs.
	seed    = 42
	maxIter = 100
)

// Group is one cluster of postings, in their ranked order.
type Group struct {
	ID       int
	Postings []*jobs.Posting
}

type Clusterer struct {
	k      int
	logger *zap.Logger
}

func New(k int, logger *zap.Logger) *Clusterer {
	if k <= 0 {
		k = DefaultGroups
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Clusterer{k: k, logger: logger}
}

// Cluster partitions the postings into at most k groups based on their
// snippet (or description) text. Every posting lands in exactly one group.
// Fewer postings than k yields one group per posting.
func (c *Clusterer) Cluster(postings *jobs.Postings) []*Group {
	n := postings.Len()
	if n == 0 {
		return nil
	}

	k := c.k
	if k > n {
		k = n
	}

	vectors, vocabSize := vectorize(postings.Items)
	if vocabSize == 0 {
		// Nothing to compare on. Keep everything together.
		return []*Group{{ID: 0, Postings: postings.Items}}
	}

	assignments := kmeans(vectors, k)

	groups := make([]*Group, k)
	for i := range groups {
		groups[i] = &Group{ID: i}
	}
	for idx, label := range assignments {
		groups[label].Postings = append(groups[label].Postings, postings.Items[idx])
	}

	c.logger.Debug("clustered postings",
		zap.Int("postings", n),
		zap.Int("groups", k),
		zap.Int("vocabulary", vocabSize),
	)

	return groups
}

// vectorize builds l2-normalized tf-idf vectors for the postings.
func vectorize(postings []*jobs.Posting) ([][]float64, int) {
	docs := make([][]string, len(postings))
	vocab := make(map[string]int)
	df := make(map[string]int)

	for i, posting := range postings {
		text := posting.Snippet
		if text == "" {
			text = posting.Description
		}
		docs[i] = tokenize(text)

		seen := make(map[string]bool)
		for _, term := range docs[i] {
			if _, ok := vocab[term]; !ok {
				vocab[term] = len(vocab)
			}
			if !seen[term] {
				df[term]++
				seen[term] = true
			}
		}
	}

	if len(vocab) == 0 {
		return nil, 0
	}

	// Smoothed idf, so terms present in every document still carry a
	// small non-zero weight.
	n := float64(len(postings))
	idf := make([]float64, len(vocab))
	for term, col := range vocab {
		idf[col] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	vectors := make([][]float64, len(docs))
	for i, terms := range docs {
		vec := make([]float64, len(vocab))
		for _, term := range terms {
			vec[vocab[term]] += idf[vocab[term]]
		}

		var norm float64
		for _, v := range vec {
			norm += v * v
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for col := range vec {
				vec[col] /= norm
			}
		}
		vectors[i] = vec
	}

	return vectors, len(vocab)
}

// kmeans assigns each vector to one of k clusters. Deterministic: the
// centroid initialization uses a fixed-seed shuffle.
func kmeans(vectors [][]float64, k int) []int {
	n := len(vectors)
	dim := len(vectors[0])

	rng := rand.New(rand.NewSource(seed))
	order := rng.Perm(n)

	centroids := make([][]float64, k)
	for i := 0; i < k; i++ {
		centroids[i] = append([]float64(nil), vectors[order[i]]...)
	}

	assignments := make([]int, n)
	for iter := 0; iter < maxIter; iter++ {
		changed := false
		for i, vec := range vectors {
			best := nearest(vec, centroids)
			if assignments[i] != best {
				assignments[i] = best
				changed = true
			}
		}
		if iter > 0 && !changed {
			break
		}

		counts := make([]int, k)
		next := make([][]float64, k)
		for c := range next {
			next[c] = make([]float64, dim)
		}
		for i, vec := range vectors {
			c := assignments[i]
			counts[c]++
			for col, v := range vec {
				next[c][col] += v
			}
		}
		for c := range next {
			if counts[c] == 0 {
				// Keep the previous centroid for empty clusters.
				continue
			}
			for col := range next[c] {
				next[c][col] /= float64(counts[c])
			}
			centroids[c] = next[c]
		}
	}

	return assignments
}

func nearest(vec []float64, centroids [][]float64) int {
	best := 0
	bestDist := math.Inf(1)
	for c, centroid := range centroids {
		var dist float64
		for col, v := range vec {
			d := v - centroid[col]
			dist += d * d
		}
		if dist < bestDist {
			bestDist = dist
			best = c
		}
	}
	return best
}

// NonEmpty filters out groups without postings, preserving id order.
func NonEmpty(groups []*Group) []*Group {
	filtered := make([]*Group, 0, len(groups))
	for _, group := range groups {
		if len(group.Postings) > 0 {
			filtered = append(filtered, group)
		}
	}
	sort.Slice(filtered, func(i, j int) bool { return filtered[i].ID < filtered[j].ID })
	return filtered
}
