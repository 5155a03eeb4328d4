package content

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blkoutuk/ivor/internal/domain"
)

func TestStaticProvider_FixturesAreValid(t *testing.T) {
	ctx := context.Background()
	provider := NewStaticProvider()

	knowledge, err := provider.LoadKnowledgeItems(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, knowledge)

	seen := make(map[string]bool)
	for _, k := range knowledge {
		assert.NoError(t, domain.ValidateKnowledgeItem(k))
		assert.False(t, seen[k.ID], "duplicate knowledge id %s", k.ID)
		seen[k.ID] = true
	}

	resources, err := provider.LoadResourceItems(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, resources)

	seen = make(map[string]bool)
	for _, r := range resources {
		assert.NoError(t, domain.ValidateResourceItem(r))
		assert.False(t, seen[r.ID], "duplicate resource id %s", r.ID)
		seen[r.ID] = true
	}
}

func TestStaticProvider_FixtureContent(t *testing.T) {
	ctx := context.Background()
	provider := NewStaticProvider()

	knowledge, err := provider.LoadKnowledgeItems(ctx)
	require.NoError(t, err)

	var mentalHealth *domain.KnowledgeItem
	for _, k := range knowledge {
		if k.Category == "mental health" {
			mentalHealth = k
			break
		}
	}
	require.NotNil(t, mentalHealth, "fixture set must include a mental health item")
	assert.Equal(t, "Black Thrive BQC", mentalHealth.Organization)
	assert.Equal(t, domain.PriorityHigh, mentalHealth.Priority)
	assert.True(t, mentalHealth.Active)
}

func TestStaticProvider_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	provider := NewStaticProvider()

	first, err := provider.LoadKnowledgeItems(ctx)
	require.NoError(t, err)
	first[0] = nil

	second, err := provider.LoadKnowledgeItems(ctx)
	require.NoError(t, err)
	assert.NotNil(t, second[0])
}

func TestStaticProviderWithItems(t *testing.T) {
	ctx := context.Background()
	item := &domain.KnowledgeItem{ID: "k1", Question: "q", Answer: "a", Priority: domain.PriorityLow, Active: true}
	provider := NewStaticProviderWithItems([]*domain.KnowledgeItem{item}, nil)

	knowledge, err := provider.LoadKnowledgeItems(ctx)
	require.NoError(t, err)
	require.Len(t, knowledge, 1)
	assert.Equal(t, "k1", knowledge[0].ID)

	resources, err := provider.LoadResourceItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, resources)
}
