package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/blkoutuk/ivor/internal/domain"
	"github.com/blkoutuk/ivor/internal/telemetry"
)

const (
	// sourceLimit bounds the store search that derives the source list.
	sourceLimit = 3

	rateLimitedMessage = "I'm getting a lot of questions right now. Please wait a moment and try again."

	generationFailedMessage = "I'm having some technical difficulties right now. In the meantime, you can reach out to our partner organizations directly: BLKOUT, Black Thrive BQC, Black Trans Hub, or QueerCroydon for support."

	// fallbackNoMatchContext replaces NoMatchContext when the index is down
	// and the direct store search also finds nothing.
	fallbackNoMatchContext = "No specific knowledge base matches found. Provide general community support guidance."
)

// Terminal pipeline outcomes, recorded as span tags.
const (
	outcomeRejected         = "rejected"
	outcomeCacheHit         = "cache_hit"
	outcomeGenerated        = "generated"
	outcomeGenerationFailed = "generation_failed"
)

// PipelineResult is the sole value returned across the pipeline boundary.
// ErrorKind is a domain error code, empty on success.
type PipelineResult struct {
	Success   bool
	Message   string
	Sources   []string
	ErrorKind string
}

// Admitter decides whether a caller may proceed.
type Admitter interface {
	Admit(callerID string) bool
}

// ResponseCacher memoizes generated responses by query.
type ResponseCacher interface {
	Get(query string) (string, bool)
	Put(query, response string)
}

// ContextProvider assembles the retrieval context for a query.
type ContextProvider interface {
	Build(query string) (*ContextBundle, error)
}

// Generator produces a response from a system prompt and a user message.
type Generator interface {
	Generate(ctx context.Context, system, user string) (string, error)
}

// KnowledgeSearcher is the store surface the pipeline consumes: the
// degraded-context fallback and the source list.
type KnowledgeSearcher interface {
	Search(query string, limit int) []*domain.KnowledgeItem
	Organizations(query string, limit int) []string
}

// Pipeline orchestrates one respond call: admission, cache lookup, context
// assembly, generation, cache population. All collaborators are injected
// once at construction.
type Pipeline struct {
	limiter   Admitter
	cache     ResponseCacher
	builder   ContextProvider
	generator Generator
	store     KnowledgeSearcher
}

// NewPipeline creates a pipeline over its five collaborators.
func NewPipeline(
	limiter Admitter,
	cache ResponseCacher,
	builder ContextProvider,
	generator Generator,
	store KnowledgeSearcher,
) *Pipeline {
	return &Pipeline{
		limiter:   limiter,
		cache:     cache,
		builder:   builder,
		generator: generator,
		store:     store,
	}
}

// Respond runs the full state machine for one request. Every path returns a
// PipelineResult; no failure escapes as an error. Only generated responses
// are cached, so a failed call can never poison the cache.
func (p *Pipeline) Respond(ctx context.Context, query, callerID string) PipelineResult {
	ctx, span := telemetry.StartSpan(ctx, "Pipeline.Respond", telemetry.SpanAttributes{
		CallerID: callerID,
	})
	defer span.End()

	if !p.limiter.Admit(callerID) {
		span.SetTag("outcome", outcomeRejected)
		return PipelineResult{
			Success:   false,
			Message:   rateLimitedMessage,
			ErrorKind: domain.ErrCodeRateLimited,
		}
	}

	if cached, ok := p.cache.Get(query); ok {
		// Cached responses do not re-derive sources.
		span.SetTag("outcome", outcomeCacheHit)
		return PipelineResult{
			Success: true,
			Message: cached,
		}
	}

	contextText := p.buildContext(ctx, query)

	response, err := p.generator.Generate(ctx, SystemPrompt(contextText), query)
	if err != nil {
		span.SetTag("outcome", outcomeGenerationFailed)
		telemetry.CaptureError(ctx, domain.NewDomainErrorWithCause(domain.ErrCodeGenerationFailed, "generation call failed", err))
		return PipelineResult{
			Success:   false,
			Message:   generationFailedMessage,
			ErrorKind: domain.ErrCodeGenerationFailed,
		}
	}

	p.cache.Put(query, response)

	span.SetTag("outcome", outcomeGenerated)
	return PipelineResult{
		Success: true,
		Message: response,
		Sources: p.store.Organizations(query, sourceLimit),
	}
}

// buildContext renders the retrieval context, degrading to a direct store
// search when the similarity index is unavailable. Context failure is never
// surfaced to the caller.
func (p *Pipeline) buildContext(ctx context.Context, query string) string {
	bundle, err := p.builder.Build(query)
	if err == nil {
		return bundle.Render()
	}

	telemetry.CaptureError(ctx, err)

	hits := p.store.Search(query, contextHitLimit)
	if len(hits) == 0 {
		return fallbackNoMatchContext
	}

	lines := make([]string, 0, len(hits))
	for _, item := range hits {
		lines = append(lines, fmt.Sprintf("Knowledge: %s - %s (Source: %s)", item.Question, item.Answer, item.Organization))
	}
	return contextHeader + strings.Join(lines, "\n\n") + "\n\n" + contextClosing
}
