// Package memory provides in-memory storage adapters.
//
// The chunk collection is deliberately memory-only: it is rebuilt from
// the corpus at startup and discarded on process exit. Only the
// question history is persisted (by the sqlite adapter).
package memory

import (
	"context"
	"sync"

	"github.com/aldergate-labs/physika-cli/internal/core/domain"
	"github.com/aldergate-labs/physika-cli/internal/core/ports/driven"
)

// Ensure ChunkStore implements the interface.
var _ driven.ChunkStore = (*ChunkStore)(nil)

// ChunkStore is an in-memory implementation of driven.ChunkStore.
//
// The mutex only matters during ingestion; once serving starts the
// store is read-only and concurrent readers never contend.
type ChunkStore struct {
	mu        sync.RWMutex
	documents map[string]domain.Document
	bySource  map[string][]domain.Chunk
	order     []string // source labels in first-save order
}

// NewChunkStore creates a new in-memory chunk store.
func NewChunkStore() *ChunkStore {
	return &ChunkStore{
		documents: make(map[string]domain.Document),
		bySource:  make(map[string][]domain.Chunk),
	}
}

// SaveDocument stores or updates a document.
func (s *ChunkStore) SaveDocument(_ context.Context, doc *domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[doc.ID] = *doc
	return nil
}

// SaveChunks stores chunks, replacing any previous chunks from the
// same source label.
func (s *ChunkStore) SaveChunks(_ context.Context, chunks []domain.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	source := chunks[0].Source
	if _, ok := s.bySource[source]; !ok {
		s.order = append(s.order, source)
	}
	s.bySource[source] = chunks
	return nil
}

// GetDocument retrieves a document by ID.
func (s *ChunkStore) GetDocument(_ context.Context, id string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &doc, nil
}

// GetChunk retrieves a specific chunk by ID.
func (s *ChunkStore) GetChunk(_ context.Context, id string) (*domain.Chunk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, chunks := range s.bySource {
		for _, chunk := range chunks {
			if chunk.ID == id {
				return &chunk, nil
			}
		}
	}
	return nil, domain.ErrNotFound
}

// Chunks returns a snapshot of every stored chunk, grouped by source
// in first-save order and by position within a source, so retrieval
// tie-breaking is stable across calls.
func (s *ChunkStore) Chunks(_ context.Context) ([]domain.Chunk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int
	for _, chunks := range s.bySource {
		total += len(chunks)
	}

	out := make([]domain.Chunk, 0, total)
	for _, source := range s.order {
		out = append(out, s.bySource[source]...)
	}
	return out, nil
}

// ListDocuments returns all stored documents.
func (s *ChunkStore) ListDocuments(_ context.Context) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Document, 0, len(s.documents))
	for id := range s.documents {
		out = append(out, s.documents[id])
	}
	return out, nil
}

// Clear drops all documents and chunks ahead of re-ingestion.
func (s *ChunkStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents = make(map[string]domain.Document)
	s.bySource = make(map[string][]domain.Chunk)
	s.order = nil
	return nil
}
