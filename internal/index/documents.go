package index

import (
	"strings"

	"github.com/blkoutuk/ivor/internal/domain"
)

// Metadata values shared with the pipeline's type filters.
const (
	DocTypeKnowledge = "knowledge_base"
	DocTypeResource  = "resource"
)

// KnowledgeDocument converts a knowledge item into its indexable form.
// List-valued fields are flattened into the metadata so they contribute to
// the searchable text; scalar fields stay filterable by equality.
func KnowledgeDocument(k *domain.KnowledgeItem) Document {
	return Document{
		ID:      "kb_" + k.ID,
		Content: k.Question + " " + k.Answer,
		Metadata: map[string]string{
			"type":            DocTypeKnowledge,
			"category":        k.Category,
			"organization":    k.Organization,
			"priority":        string(k.Priority),
			"region":          k.Region,
			"tags":            strings.Join(k.Tags, " "),
			"culturalContext": k.CulturalContext,
			"accessibility":   k.Accessibility,
		},
	}
}

// ResourceDocument converts a resource item into its indexable form.
func ResourceDocument(r *domain.ResourceItem) Document {
	return Document{
		ID:      "res_" + r.ID,
		Content: r.Name + " " + r.Description,
		Metadata: map[string]string{
			"type":               DocTypeResource,
			"category":           r.Category,
			"organization":       r.Organization,
			"cost":               string(r.Cost),
			"region":             r.Region,
			"targetAudience":     strings.Join(r.TargetAudience, " "),
			"accessibility":      strings.Join(r.Accessibility, " "),
			"culturalCompetency": strings.Join(r.CulturalCompetency, " "),
			"specialties":        strings.Join(r.Specialties, " "),
			"contactEmail":       r.ContactEmail,
			"website":            r.Website,
		},
	}
}

// ContentDocuments converts both collections, skipping inactive items.
func ContentDocuments(knowledge []*domain.KnowledgeItem, resources []*domain.ResourceItem) []Document {
	docs := make([]Document, 0, len(knowledge)+len(resources))
	for _, k := range knowledge {
		if !k.Active {
			continue
		}
		docs = append(docs, KnowledgeDocument(k))
	}
	for _, r := range resources {
		if !r.Active {
			continue
		}
		docs = append(docs, ResourceDocument(r))
	}
	return docs
}
