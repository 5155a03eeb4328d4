package index

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blkoutuk/ivor/internal/domain"
)

func doc(id, content string, metadata map[string]string) Document {
	if metadata == nil {
		metadata = map[string]string{}
	}
	return Document{ID: id, Content: content, Metadata: metadata}
}

func TestQuery_OverlapScore(t *testing.T) {
	idx := NewSimilarityIndex()
	idx.Upsert([]Document{
		doc("d1", "mental health support services", nil),
	})

	// 2 of 4 query terms match.
	results := idx.Query("mental health for everyone", 5, nil)
	require.Len(t, results, 1)
	assert.InDelta(t, 0.5, results[0].Score, 1e-9)
	assert.InDelta(t, 0.5, results[0].Distance, 1e-9)
}

func TestQuery_ExcludesZeroScore(t *testing.T) {
	idx := NewSimilarityIndex()
	idx.Upsert([]Document{
		doc("d1", "housing advice", nil),
		doc("d2", "completely unrelated topic", nil),
	})

	results := idx.Query("housing", 5, nil)
	require.Len(t, results, 1)
	assert.Equal(t, "d1", results[0].ID)
}

func TestQuery_SortsByScoreWithInsertionOrderTies(t *testing.T) {
	idx := NewSimilarityIndex()
	idx.Upsert([]Document{
		doc("d-partial", "mental wellbeing", nil),
		doc("d-tie-1", "mental health first", nil),
		doc("d-tie-2", "mental health second", nil),
	})

	results := idx.Query("mental health", 5, nil)
	require.Len(t, results, 3)
	assert.Equal(t, "d-tie-1", results[0].ID)
	assert.Equal(t, "d-tie-2", results[1].ID)
	assert.Equal(t, "d-partial", results[2].ID)
}

func TestQuery_MetadataContributesToSearchableText(t *testing.T) {
	idx := NewSimilarityIndex()
	idx.Upsert([]Document{
		doc("d1", "support services", map[string]string{"region": "Croydon"}),
	})

	results := idx.Query("croydon", 5, nil)
	require.Len(t, results, 1)
	assert.Equal(t, "d1", results[0].ID)
}

func TestQuery_FiltersAfterScoring(t *testing.T) {
	idx := NewSimilarityIndex()
	idx.Upsert([]Document{
		doc("kb-1", "mental health support", map[string]string{"type": DocTypeKnowledge}),
		doc("res-1", "mental health clinic", map[string]string{"type": DocTypeResource}),
	})

	knowledgeOnly := idx.Query("mental health", 5, map[string]string{"type": DocTypeKnowledge})
	require.Len(t, knowledgeOnly, 1)
	assert.Equal(t, "kb-1", knowledgeOnly[0].ID)

	// Filtering must not change the score the document earned.
	unfiltered := idx.Query("mental health", 5, nil)
	require.Len(t, unfiltered, 2)
	assert.Equal(t, unfiltered[0].Score, knowledgeOnly[0].Score)
}

func TestQuery_LimitAndEmptyQuery(t *testing.T) {
	idx := NewSimilarityIndex()
	idx.Upsert([]Document{
		doc("d1", "community events", nil),
		doc("d2", "community groups", nil),
		doc("d3", "community support", nil),
	})

	assert.Len(t, idx.Query("community", 2, nil), 2)
	assert.Empty(t, idx.Query("", 5, nil))
	assert.Empty(t, idx.Query("   ", 5, nil))
}

func TestUpsert_SkipsExistingIDs(t *testing.T) {
	idx := NewSimilarityIndex()

	added := idx.Upsert([]Document{doc("d1", "original content", nil)})
	assert.Equal(t, 1, added)

	added = idx.Upsert([]Document{
		doc("d1", "replacement content must be ignored", nil),
		doc("d2", "new content", nil),
	})
	assert.Equal(t, 1, added)

	results := idx.Query("original", 5, nil)
	require.Len(t, results, 1)
	assert.Equal(t, "d1", results[0].ID)

	assert.Empty(t, idx.Query("replacement", 5, nil))
}

func TestStats(t *testing.T) {
	idx := NewSimilarityIndex()
	fixed := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	idx.now = func() time.Time { return fixed }

	stats := idx.Stats()
	assert.Equal(t, 0, stats.Count)
	assert.True(t, stats.LastUpdated.IsZero())

	idx.Upsert([]Document{doc("d1", "content", nil)})
	stats = idx.Stats()
	assert.Equal(t, 1, stats.Count)
	assert.Equal(t, fixed, stats.LastUpdated)
}

func TestContentDocuments(t *testing.T) {
	knowledge := []*domain.KnowledgeItem{
		{ID: "1", Question: "q1", Answer: "a1", Category: "mental health", Organization: "Black Thrive BQC", Priority: domain.PriorityHigh, Active: true},
		{ID: "2", Question: "q2", Answer: "a2", Priority: domain.PriorityLow, Active: false},
	}
	resources := []*domain.ResourceItem{
		{ID: "1", Name: "n1", Description: "d1", Cost: domain.CostFree, Organization: "BLKOUT", Active: true},
	}

	docs := ContentDocuments(knowledge, resources)
	require.Len(t, docs, 2, "inactive items are skipped")
	assert.Equal(t, "kb_1", docs[0].ID)
	assert.Equal(t, DocTypeKnowledge, docs[0].Metadata["type"])
	assert.Equal(t, "q1 a1", docs[0].Content)
	assert.Equal(t, "res_1", docs[1].ID)
	assert.Equal(t, DocTypeResource, docs[1].Metadata["type"])
	assert.Equal(t, "free", docs[1].Metadata["cost"])
}
