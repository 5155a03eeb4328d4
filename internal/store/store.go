// Package store implements deterministic keyword search over the community
// knowledge base and resource directory.
package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/blkoutuk/ivor/internal/content"
	"github.com/blkoutuk/ivor/internal/domain"
)

const defaultSearchLimit = 5

// KnowledgeStore holds the two content collections and exposes priority-aware
// keyword search. Collections are immutable once loaded; Reload swaps them
// wholesale.
type KnowledgeStore struct {
	mu        sync.RWMutex
	knowledge []*domain.KnowledgeItem
	resources []*domain.ResourceItem
}

// NewKnowledgeStore creates a store over explicit collections.
func NewKnowledgeStore(knowledge []*domain.KnowledgeItem, resources []*domain.ResourceItem) *KnowledgeStore {
	return &KnowledgeStore{
		knowledge: knowledge,
		resources: resources,
	}
}

// NewKnowledgeStoreFromProvider loads both collections from the given
// content provider.
func NewKnowledgeStoreFromProvider(ctx context.Context, provider content.Provider) (*KnowledgeStore, error) {
	knowledge, err := provider.LoadKnowledgeItems(ctx)
	if err != nil {
		return nil, err
	}
	resources, err := provider.LoadResourceItems(ctx)
	if err != nil {
		return nil, err
	}
	return NewKnowledgeStore(knowledge, resources), nil
}

// KnowledgeItems returns the full knowledge collection, inactive included.
func (s *KnowledgeStore) KnowledgeItems() []*domain.KnowledgeItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.knowledge
}

// ResourceItems returns the full resource collection, inactive included.
func (s *KnowledgeStore) ResourceItems() []*domain.ResourceItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resources
}

// Reload replaces both collections. In-flight searches finish against the
// old collections.
func (s *KnowledgeStore) Reload(knowledge []*domain.KnowledgeItem, resources []*domain.ResourceItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.knowledge = knowledge
	s.resources = resources
}

// Search returns up to limit active knowledge items matching the query,
// ranked by priority then by how many query terms hit the question, answer,
// or tags. Ties keep collection order.
func (s *KnowledgeStore) Search(query string, limit int) []*domain.KnowledgeItem {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	terms := queryTerms(query)
	if len(terms) == 0 {
		return []*domain.KnowledgeItem{}
	}

	s.mu.RLock()
	var matched []*domain.KnowledgeItem
	for _, item := range s.knowledge {
		if !item.Active {
			continue
		}
		if anyTermMatches(terms, knowledgeSearchText(item)) {
			matched = append(matched, item)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if a.Priority.Rank() != b.Priority.Rank() {
			return a.Priority.Rank() > b.Priority.Rank()
		}
		return countTermMatches(terms, knowledgeNarrowText(a)) > countTermMatches(terms, knowledgeNarrowText(b))
	})

	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched
}

// SearchResources returns up to limit active resource items matching the
// query. Free resources rank first, then items with more listed cultural
// competencies, then those hitting more query terms in the name,
// description, specialties, or region.
func (s *KnowledgeStore) SearchResources(query string, limit int) []*domain.ResourceItem {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	terms := queryTerms(query)
	if len(terms) == 0 {
		return []*domain.ResourceItem{}
	}

	s.mu.RLock()
	var matched []*domain.ResourceItem
	for _, item := range s.resources {
		if !item.Active {
			continue
		}
		if anyTermMatches(terms, resourceSearchText(item)) {
			matched = append(matched, item)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		aFree, bFree := a.Cost == domain.CostFree, b.Cost == domain.CostFree
		if aFree != bFree {
			return aFree
		}
		if len(a.CulturalCompetency) != len(b.CulturalCompetency) {
			return len(a.CulturalCompetency) > len(b.CulturalCompetency)
		}
		return countTermMatches(terms, resourceNarrowText(a)) > countTermMatches(terms, resourceNarrowText(b))
	})

	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched
}

// Organizations returns the distinct organization names of the knowledge
// items matching the query, in rank order.
func (s *KnowledgeStore) Organizations(query string, limit int) []string {
	var orgs []string
	seen := make(map[string]bool)
	for _, item := range s.Search(query, limit) {
		if item.Organization == "" || seen[item.Organization] {
			continue
		}
		seen[item.Organization] = true
		orgs = append(orgs, item.Organization)
	}
	return orgs
}

func queryTerms(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

func anyTermMatches(terms []string, searchable string) bool {
	for _, term := range terms {
		if strings.Contains(searchable, term) {
			return true
		}
	}
	return false
}

func countTermMatches(terms []string, searchable string) int {
	count := 0
	for _, term := range terms {
		if strings.Contains(searchable, term) {
			count++
		}
	}
	return count
}

func knowledgeSearchText(k *domain.KnowledgeItem) string {
	parts := []string{k.Question, k.Answer, k.Category, k.Organization}
	parts = append(parts, k.Tags...)
	parts = append(parts, k.CulturalContext, k.Region)
	return strings.ToLower(strings.Join(parts, " "))
}

func knowledgeNarrowText(k *domain.KnowledgeItem) string {
	parts := []string{k.Question, k.Answer}
	parts = append(parts, k.Tags...)
	return strings.ToLower(strings.Join(parts, " "))
}

func resourceSearchText(r *domain.ResourceItem) string {
	parts := []string{r.Name, r.Description, r.Category, r.Organization}
	parts = append(parts, r.TargetAudience...)
	parts = append(parts, r.Specialties...)
	parts = append(parts, r.Region)
	return strings.ToLower(strings.Join(parts, " "))
}

func resourceNarrowText(r *domain.ResourceItem) string {
	parts := []string{r.Name, r.Description}
	parts = append(parts, r.Specialties...)
	parts = append(parts, r.Region)
	return strings.ToLower(strings.Join(parts, " "))
}
