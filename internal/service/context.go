package service

import (
	"fmt"
	"strings"

	"github.com/blkoutuk/ivor/internal/domain"
	"github.com/blkoutuk/ivor/internal/index"
)

const (
	// contextHitLimit bounds each hit list in a bundle.
	contextHitLimit = 3
	// maxSuggestions bounds the follow-up suggestion list.
	maxSuggestions = 3

	// genericOrganization marks content with no single owning organization;
	// it never produces a follow-up suggestion.
	genericOrganization = "Various"

	// NoMatchContext is the rendered context when neither hit list has any
	// entries. Callers compare against it to distinguish an empty bundle.
	NoMatchContext = "No specific knowledge base matches found. Provide general community support guidance based on BLKOUT's values and partner organizations."

	contextHeader  = "RELEVANT COMMUNITY RESOURCES:\n"
	contextClosing = "Use this information to provide helpful, culturally authentic responses. If the information doesn't fully answer the question, acknowledge this and suggest appropriate next steps."
)

// categorySuggestions maps known categories to canned follow-up questions.
// Slice order is the order suggestions are emitted in, so it is part of the
// builder's contract.
var categorySuggestions = []struct {
	category  string
	questions [2]string
}{
	{"mental health", [2]string{
		"Would you like information about crisis support services?",
		"Are you looking for therapy or counseling services?",
	}},
	{"trans support", [2]string{
		"Would you like information about peer support groups?",
		"Are you looking for advocacy or legal support?",
	}},
	{"housing", [2]string{
		"Are you facing housing discrimination?",
		"Do you need emergency housing support?",
	}},
	{"legal", [2]string{
		"Are you dealing with workplace discrimination?",
		"Do you need immigration law support?",
	}},
	{"events", [2]string{
		"Would you like to find events in your area?",
		"Are you interested in support groups or social events?",
	}},
}

// SimilarityQuerier is the index surface the builder consumes. The
// in-process index cannot fail, but a remote or embedding-backed index can;
// an error here marks the whole index unavailable for this request.
type SimilarityQuerier interface {
	Query(text string, limit int, filters map[string]string) ([]index.SearchResult, error)
}

// LocalIndex adapts the in-process similarity index to the fallible querier
// contract.
type LocalIndex struct {
	Index *index.SimilarityIndex
}

// Query implements SimilarityQuerier.
func (l LocalIndex) Query(text string, limit int, filters map[string]string) ([]index.SearchResult, error) {
	return l.Index.Query(text, limit, filters), nil
}

// ContextBundle holds the retrieval results for one request: up to three
// knowledge hits, up to three resource hits, and at most three follow-up
// suggestions. Built once, rendered into the system prompt, then discarded.
type ContextBundle struct {
	KnowledgeHits []index.SearchResult
	ResourceHits  []index.SearchResult
	Suggestions   []string
}

// Empty reports whether neither hit list has entries.
func (b *ContextBundle) Empty() bool {
	return len(b.KnowledgeHits) == 0 && len(b.ResourceHits) == 0
}

// Render produces the context block embedded in the system prompt. An empty
// bundle renders the no-match marker instead of an empty resource list.
func (b *ContextBundle) Render() string {
	if b.Empty() {
		return NoMatchContext
	}

	var sb strings.Builder
	sb.WriteString(contextHeader)
	for _, hit := range b.KnowledgeHits {
		fmt.Fprintf(&sb, "Knowledge: %s (Source: %s, Priority: %s)\n\n",
			hit.Content, hit.Metadata["organization"], hit.Metadata["priority"])
	}
	for _, hit := range b.ResourceHits {
		fmt.Fprintf(&sb, "Resource: %s (Organization: %s, Cost: %s, Region: %s)\n\n",
			hit.Content, hit.Metadata["organization"], hit.Metadata["cost"], hit.Metadata["region"])
	}
	if len(b.Suggestions) > 0 {
		sb.WriteString("SUGGESTED FOLLOW-UP QUESTIONS:\n")
		sb.WriteString(strings.Join(b.Suggestions, "\n"))
		sb.WriteString("\n\n")
	}
	sb.WriteString(contextClosing)
	return sb.String()
}

// ContextBuilder assembles ContextBundles from the similarity index.
type ContextBuilder struct {
	querier SimilarityQuerier
}

// NewContextBuilder creates a builder over the given querier.
func NewContextBuilder(querier SimilarityQuerier) *ContextBuilder {
	return &ContextBuilder{querier: querier}
}

// Build queries knowledge and resource documents separately and derives
// follow-up suggestions from the combined hits. A querier failure returns
// ErrContextUnavailable so the pipeline can degrade to direct store search.
func (c *ContextBuilder) Build(query string) (*ContextBundle, error) {
	knowledgeHits, err := c.querier.Query(query, contextHitLimit, map[string]string{"type": index.DocTypeKnowledge})
	if err != nil {
		return nil, domain.NewDomainErrorWithCause(domain.ErrCodeContextUnavailable, "knowledge query failed", err)
	}
	resourceHits, err := c.querier.Query(query, contextHitLimit, map[string]string{"type": index.DocTypeResource})
	if err != nil {
		return nil, domain.NewDomainErrorWithCause(domain.ErrCodeContextUnavailable, "resource query failed", err)
	}

	return &ContextBundle{
		KnowledgeHits: knowledgeHits,
		ResourceHits:  resourceHits,
		Suggestions:   deriveSuggestions(knowledgeHits, resourceHits),
	}, nil
}

// deriveSuggestions emits canned questions for every known category present
// in the hits, in table order, then one question per distinct organization
// in hit order, and truncates to maxSuggestions.
func deriveSuggestions(knowledgeHits, resourceHits []index.SearchResult) []string {
	categories := make(map[string]bool)
	var orgs []string
	seenOrgs := make(map[string]bool)

	for _, hit := range append(append([]index.SearchResult{}, knowledgeHits...), resourceHits...) {
		if category := hit.Metadata["category"]; category != "" {
			categories[category] = true
		}
		org := hit.Metadata["organization"]
		if org != "" && org != genericOrganization && !seenOrgs[org] {
			seenOrgs[org] = true
			orgs = append(orgs, org)
		}
	}

	var suggestions []string
	for _, entry := range categorySuggestions {
		if categories[entry.category] {
			suggestions = append(suggestions, entry.questions[0], entry.questions[1])
		}
	}
	for _, org := range orgs {
		suggestions = append(suggestions, fmt.Sprintf("Would you like more information about %s?", org))
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}
