package jobs

import (
	"context"
	"fmt"
	"log"

	"github.com/blkoutuk/ivor/internal/content"
	"github.com/blkoutuk/ivor/internal/domain"
	"github.com/blkoutuk/ivor/internal/index"
)

// ContentReloader receives freshly loaded content collections.
type ContentReloader interface {
	Reload(knowledge []*domain.KnowledgeItem, resources []*domain.ResourceItem)
}

// DocumentIndexer accepts documents for similarity search.
type DocumentIndexer interface {
	Upsert(documents []index.Document) int
}

// ContentRefresher reloads both content collections from the provider and
// feeds any new documents to the similarity index. It implements
// JobProcessor so a Worker can run it on an interval, keeping a server
// backed by postgres or S3 current without a restart.
type ContentRefresher struct {
	provider content.Provider
	store    ContentReloader
	index    DocumentIndexer
}

// NewContentRefresher creates a ContentRefresher over the given provider,
// store, and index.
func NewContentRefresher(provider content.Provider, store ContentReloader, index DocumentIndexer) *ContentRefresher {
	return &ContentRefresher{
		provider: provider,
		store:    store,
		index:    index,
	}
}

// ProcessJobs implements the JobProcessor interface. A load failure leaves
// the store and index serving the previous collections.
func (r *ContentRefresher) ProcessJobs(ctx context.Context) error {
	knowledge, err := r.provider.LoadKnowledgeItems(ctx)
	if err != nil {
		return fmt.Errorf("failed to load knowledge items: %w", err)
	}
	resources, err := r.provider.LoadResourceItems(ctx)
	if err != nil {
		return fmt.Errorf("failed to load resource items: %w", err)
	}

	r.store.Reload(knowledge, resources)

	added := r.index.Upsert(index.ContentDocuments(knowledge, resources))
	if added > 0 {
		log.Printf("content refresh: %d knowledge items, %d resource items, %d new documents indexed",
			len(knowledge), len(resources), added)
	}
	return nil
}
