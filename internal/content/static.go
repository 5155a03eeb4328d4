package content

import (
	"context"

	"github.com/blkoutuk/ivor/internal/domain"
)

// StaticProvider serves the embedded fixture content. It is the default
// provider for development and the seed source for `ivord content seed`.
type StaticProvider struct {
	knowledge []*domain.KnowledgeItem
	resources []*domain.ResourceItem
}

// NewStaticProvider creates a provider backed by the embedded fixture set.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{
		knowledge: fixtureKnowledgeItems(),
		resources: fixtureResourceItems(),
	}
}

// NewStaticProviderWithItems creates a provider over explicit collections.
// Tests use this to control fixture data per case.
func NewStaticProviderWithItems(knowledge []*domain.KnowledgeItem, resources []*domain.ResourceItem) *StaticProvider {
	return &StaticProvider{
		knowledge: knowledge,
		resources: resources,
	}
}

// LoadKnowledgeItems returns the knowledge collection.
func (p *StaticProvider) LoadKnowledgeItems(ctx context.Context) ([]*domain.KnowledgeItem, error) {
	out := make([]*domain.KnowledgeItem, len(p.knowledge))
	copy(out, p.knowledge)
	return out, nil
}

// LoadResourceItems returns the resource collection.
func (p *StaticProvider) LoadResourceItems(ctx context.Context) ([]*domain.ResourceItem, error) {
	out := make([]*domain.ResourceItem, len(p.resources))
	copy(out, p.resources)
	return out, nil
}
