// Package index implements a token-overlap similarity index over the
// community content collections. The external shape (id, content, metadata,
// score/distance, filterable query) is the contract a future
// embedding-backed index must preserve; only the scoring internals are fair
// game for replacement.
package index

import (
	"sort"
	"strings"
	"sync"
	"time"
)

const defaultQueryLimit = 5

// Document is an indexable unit: rendered content plus flat metadata.
type Document struct {
	ID       string
	Content  string
	Metadata map[string]string
}

// SearchResult is a ranked hit. Score is the fraction of query terms found
// in the document's searchable text; Distance is 1 - Score.
type SearchResult struct {
	ID       string
	Content  string
	Metadata map[string]string
	Score    float64
	Distance float64
}

// Stats describes the index contents.
type Stats struct {
	Count       int
	LastUpdated time.Time
}

// SimilarityIndex is a process-wide, insertion-ordered document index with
// lexical-overlap scoring.
type SimilarityIndex struct {
	mu          sync.RWMutex
	documents   []Document
	ids         map[string]bool
	lastUpdated time.Time

	now func() time.Time
}

// NewSimilarityIndex creates an empty index.
func NewSimilarityIndex() *SimilarityIndex {
	return &SimilarityIndex{
		ids: make(map[string]bool),
		now: time.Now,
	}
}

// Upsert merges documents into the index by id. Ids already present are
// skipped: inserts are idempotent, not update-in-place. Returns the number
// of documents added.
func (idx *SimilarityIndex) Upsert(documents []Document) int {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	added := 0
	for _, doc := range documents {
		if doc.ID == "" || idx.ids[doc.ID] {
			continue
		}
		idx.ids[doc.ID] = true
		idx.documents = append(idx.documents, doc)
		added++
	}
	if added > 0 {
		idx.lastUpdated = idx.now()
	}
	return added
}

// Query scores every document against the query text and returns up to
// limit hits, best first. Documents matching no term are excluded; equal
// scores keep insertion order. Filters are metadata equality constraints
// applied after scoring, before truncation, so they never change a
// document's score.
func (idx *SimilarityIndex) Query(text string, limit int, filters map[string]string) []SearchResult {
	if limit <= 0 {
		limit = defaultQueryLimit
	}
	terms := strings.Fields(strings.ToLower(text))
	if len(terms) == 0 {
		return []SearchResult{}
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	results := make([]SearchResult, 0, len(idx.documents))
	for _, doc := range idx.documents {
		score := overlapScore(terms, searchableText(doc))
		if score == 0 {
			continue
		}
		results = append(results, SearchResult{
			ID:       doc.ID,
			Content:  doc.Content,
			Metadata: doc.Metadata,
			Score:    score,
			Distance: 1 - score,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(filters) > 0 {
		filtered := results[:0]
		for _, r := range results {
			if matchesFilters(r.Metadata, filters) {
				filtered = append(filtered, r)
			}
		}
		results = filtered
	}

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// Stats returns the document count and the time of the last insert.
func (idx *SimilarityIndex) Stats() Stats {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return Stats{
		Count:       len(idx.documents),
		LastUpdated: idx.lastUpdated,
	}
}

func overlapScore(terms []string, searchable string) float64 {
	matched := 0
	for _, term := range terms {
		if strings.Contains(searchable, term) {
			matched++
		}
	}
	return float64(matched) / float64(len(terms))
}

func searchableText(doc Document) string {
	parts := make([]string, 0, len(doc.Metadata)+1)
	parts = append(parts, doc.Content)
	keys := make([]string, 0, len(doc.Metadata))
	for k := range doc.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, doc.Metadata[k])
	}
	return strings.ToLower(strings.Join(parts, " "))
}

func matchesFilters(metadata map[string]string, filters map[string]string) bool {
	for key, want := range filters {
		if metadata[key] != want {
			return false
		}
	}
	return true
}
