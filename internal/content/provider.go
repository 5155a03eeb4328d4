// Package content supplies the knowledge base and resource directory
// collections consumed by the retrieval pipeline. Providers return the full
// active+inactive set; consumers filter by the Active flag.
package content

import (
	"context"

	"github.com/blkoutuk/ivor/internal/domain"
)

// Provider loads the two content collections from wherever they are
// authored: embedded fixtures, Postgres, or a published S3 snapshot.
type Provider interface {
	LoadKnowledgeItems(ctx context.Context) ([]*domain.KnowledgeItem, error)
	LoadResourceItems(ctx context.Context) ([]*domain.ResourceItem, error)
}
