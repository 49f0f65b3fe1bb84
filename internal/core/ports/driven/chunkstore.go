package driven

import (
	"context"

	"github.com/aldergate-labs/physika-cli/internal/core/domain"
)

// ChunkStore holds the in-memory corpus of documents and chunks.
// It is populated once at ingestion and treated as read-only for
// the serving lifetime; there is no persisted index.
type ChunkStore interface {
	// SaveDocument stores or updates a document.
	SaveDocument(ctx context.Context, doc *domain.Document) error

	// SaveChunks stores the chunks for a document, replacing any
	// previous chunks from the same source.
	SaveChunks(ctx context.Context, chunks []domain.Chunk) error

	// GetDocument retrieves a document by ID.
	GetDocument(ctx context.Context, id string) (*domain.Document, error)

	// GetChunk retrieves a specific chunk by ID.
	GetChunk(ctx context.Context, id string) (*domain.Chunk, error)

	// Chunks returns every stored chunk. The returned slice is a
	// snapshot; callers must not mutate the chunks.
	Chunks(ctx context.Context) ([]domain.Chunk, error)

	// ListDocuments returns all stored documents.
	ListDocuments(ctx context.Context) ([]domain.Document, error)

	// Clear drops all documents and chunks, ahead of re-ingestion.
	Clear(ctx context.Context) error
}
