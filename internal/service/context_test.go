package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/blkoutuk/ivor/internal/domain"
	"github.com/blkoutuk/ivor/internal/index"
)

// MockSimilarityQuerier is a mock for the similarity index surface
type MockSimilarityQuerier struct {
	mock.Mock
}

func (m *MockSimilarityQuerier) Query(text string, limit int, filters map[string]string) ([]index.SearchResult, error) {
	args := m.Called(text, limit, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]index.SearchResult), args.Error(1)
}

func knowledgeHit(content, category, org, priority string) index.SearchResult {
	return index.SearchResult{
		ID:      "kb_" + content,
		Content: content,
		Metadata: map[string]string{
			"type":         index.DocTypeKnowledge,
			"category":     category,
			"organization": org,
			"priority":     priority,
		},
		Score: 1.0,
	}
}

func resourceHit(content, category, org, cost, region string) index.SearchResult {
	return index.SearchResult{
		ID:      "res_" + content,
		Content: content,
		Metadata: map[string]string{
			"type":         index.DocTypeResource,
			"category":     category,
			"organization": org,
			"cost":         cost,
			"region":       region,
		},
		Score: 1.0,
	}
}

func TestBuild_QueriesBothTypes(t *testing.T) {
	querier := new(MockSimilarityQuerier)
	builder := NewContextBuilder(querier)

	kb := []index.SearchResult{knowledgeHit("mental health answer", "mental health", "Black Thrive BQC", "high")}
	res := []index.SearchResult{resourceHit("counseling service", "mental health", "Black Thrive BQC", "free", "London")}

	querier.On("Query", "mental health", contextHitLimit, map[string]string{"type": index.DocTypeKnowledge}).Return(kb, nil)
	querier.On("Query", "mental health", contextHitLimit, map[string]string{"type": index.DocTypeResource}).Return(res, nil)

	bundle, err := builder.Build("mental health")

	require.NoError(t, err)
	assert.Equal(t, kb, bundle.KnowledgeHits)
	assert.Equal(t, res, bundle.ResourceHits)
	querier.AssertExpectations(t)
}

func TestBuild_EmptyIndexReturnsNoMatchBundle(t *testing.T) {
	builder := NewContextBuilder(LocalIndex{Index: index.NewSimilarityIndex()})

	bundle, err := builder.Build("anything")

	require.NoError(t, err)
	assert.True(t, bundle.Empty())
	assert.Empty(t, bundle.KnowledgeHits)
	assert.Empty(t, bundle.ResourceHits)
	assert.Equal(t, NoMatchContext, bundle.Render())
}

func TestBuild_QuerierFailureIsContextUnavailable(t *testing.T) {
	querier := new(MockSimilarityQuerier)
	builder := NewContextBuilder(querier)

	querier.On("Query", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("index offline"))

	bundle, err := builder.Build("anything")

	require.Error(t, err)
	assert.Nil(t, bundle)
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrCodeContextUnavailable, domainErr.Code)
}

func TestRender_HitLines(t *testing.T) {
	bundle := &ContextBundle{
		KnowledgeHits: []index.SearchResult{
			knowledgeHit("Therapy options exist", "mental health", "Black Thrive BQC", "high"),
		},
		ResourceHits: []index.SearchResult{
			resourceHit("Weekly peer group", "mental health", "Black Trans Hub", "free", "London"),
		},
		Suggestions: []string{"Would you like information about crisis support services?"},
	}

	rendered := bundle.Render()

	assert.Contains(t, rendered, "RELEVANT COMMUNITY RESOURCES:")
	assert.Contains(t, rendered, "Knowledge: Therapy options exist (Source: Black Thrive BQC, Priority: high)")
	assert.Contains(t, rendered, "Resource: Weekly peer group (Organization: Black Trans Hub, Cost: free, Region: London)")
	assert.Contains(t, rendered, "SUGGESTED FOLLOW-UP QUESTIONS:\nWould you like information about crisis support services?")
	assert.Contains(t, rendered, "culturally authentic responses")
}

func TestDeriveSuggestions_CategoryTableOrderThenOrganizations(t *testing.T) {
	// Housing appears before mental health in the hits, but the category
	// table order wins: mental health questions come first.
	kb := []index.SearchResult{
		knowledgeHit("housing advice", "housing", "Various", "medium"),
		knowledgeHit("therapy options", "mental health", "Black Thrive BQC", "high"),
	}

	suggestions := deriveSuggestions(kb, nil)

	require.Len(t, suggestions, 3)
	assert.Equal(t, "Would you like information about crisis support services?", suggestions[0])
	assert.Equal(t, "Are you looking for therapy or counseling services?", suggestions[1])
	assert.Equal(t, "Are you facing housing discrimination?", suggestions[2])
}

func TestDeriveSuggestions_OrganizationsWhenNoKnownCategory(t *testing.T) {
	kb := []index.SearchResult{
		knowledgeHit("community info", "general", "Various", "low"),
		knowledgeHit("more info", "general", "BLKOUT", "medium"),
	}
	res := []index.SearchResult{
		resourceHit("croydon group", "general", "QueerCroydon", "free", "Croydon"),
		resourceHit("another blkout entry", "general", "BLKOUT", "free", "UK"),
	}

	suggestions := deriveSuggestions(kb, res)

	// "Various" is skipped, duplicates collapse, hit order preserved.
	assert.Equal(t, []string{
		"Would you like more information about BLKOUT?",
		"Would you like more information about QueerCroydon?",
	}, suggestions)
}

func TestDeriveSuggestions_TruncatesToThree(t *testing.T) {
	kb := []index.SearchResult{
		knowledgeHit("a", "mental health", "Black Thrive BQC", "high"),
		knowledgeHit("b", "trans support", "Black Trans Hub", "high"),
	}

	suggestions := deriveSuggestions(kb, nil)

	require.Len(t, suggestions, 3)
	assert.Equal(t, "Would you like information about crisis support services?", suggestions[0])
	assert.Equal(t, "Are you looking for therapy or counseling services?", suggestions[1])
	assert.Equal(t, "Would you like information about peer support groups?", suggestions[2])
}
