package driving

import (
	"context"

	"github.com/aldergate-labs/physika-cli/internal/core/domain"
)

// AssistantService answers questions against the ingested notes.
type AssistantService interface {
	// Ask runs the full pipeline: scope gate, retrieval, generation.
	// A refused question returns an Answer carrying the refusal; it
	// never returns an error for out-of-scope input.
	Ask(ctx context.Context, question string) (*domain.Answer, error)
}

// ClassifierService gates questions into allowed / refused.
type ClassifierService interface {
	// Classify evaluates the question against the scope lists.
	// Total over all strings; never errors.
	Classify(query string) domain.ClassificationResult
}

// RetrievalService ranks stored chunks against a query.
type RetrievalService interface {
	// Retrieve returns at most topK chunks, descending relevance.
	// A non-positive topK retrieves nothing; an empty result is a
	// legitimate, silent outcome.
	Retrieve(ctx context.Context, query string, topK int) ([]domain.Chunk, error)
}

// HistoryService exposes the question/answer audit log.
type HistoryService interface {
	// Recent returns up to limit exchanges, newest first.
	Recent(ctx context.Context, limit int) ([]domain.Exchange, error)
}
