package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aldergate-labs/physika-cli/internal/core/domain"
	"github.com/aldergate-labs/physika-cli/internal/core/ports/driven"
	"github.com/aldergate-labs/physika-cli/internal/core/ports/driving"
	"github.com/aldergate-labs/physika-cli/internal/logger"
)

// Ensure Ingestor implements the interface.
var _ driving.IngestService = (*Ingestor)(nil)

// Ingestor builds the in-memory chunk collection from corpus sources.
// It runs before questions are served; after it completes the chunk
// store is treated as immutable, so concurrent readers need no locks.
type Ingestor struct {
	sources  []driven.CorpusSource
	pipeline driven.PostProcessorPipeline
	store    driven.ChunkStore
}

// NewIngestor creates an ingestor over the given sources and pipeline.
func NewIngestor(
	sources []driven.CorpusSource,
	pipeline driven.PostProcessorPipeline,
	store driven.ChunkStore,
) *Ingestor {
	return &Ingestor{
		sources:  sources,
		pipeline: pipeline,
		store:    store,
	}
}

// Ingest loads every corpus source, chunks the documents, and replaces
// the chunk store contents. A source that fails entirely aborts the
// run; a single unreadable document is skipped with a warning so one
// bad file doesn't block the rest of the corpus.
func (s *Ingestor) Ingest(ctx context.Context) (driving.IngestStats, error) {
	logger.Section("Ingestion")

	stats := driving.IngestStats{Sources: len(s.sources)}

	if err := s.store.Clear(ctx); err != nil {
		return stats, fmt.Errorf("clear store: %w", err)
	}

	for _, source := range s.sources {
		raws, err := source.Documents(ctx)
		if err != nil {
			return stats, fmt.Errorf("source %s: %w", source.Name(), err)
		}
		logger.Debug("Source %s: %d documents", source.Name(), len(raws))

		for i := range raws {
			n, err := s.ingestDocument(ctx, &raws[i])
			if err != nil {
				logger.Warn("Skipping %s: %v", raws[i].URI, err)
				continue
			}
			stats.Documents++
			stats.Chunks += n
		}
	}

	logger.Info("Ingested %d documents, %d chunks from %d sources",
		stats.Documents, stats.Chunks, stats.Sources)
	return stats, nil
}

// ingestDocument normalises one raw document, runs the processing
// pipeline, and stores the result. Returns the chunk count.
func (s *Ingestor) ingestDocument(ctx context.Context, raw *domain.RawDocument) (int, error) {
	if raw.Label == "" {
		return 0, fmt.Errorf("%w: document %s has no source label", domain.ErrInvalidInput, raw.URI)
	}

	now := time.Now().UTC()
	doc := &domain.Document{
		ID:        uuid.New().String(),
		Source:    raw.Label,
		URI:       raw.URI,
		Title:     raw.Label,
		Content:   raw.Content,
		Metadata:  map[string]any{"mime_type": raw.MIMEType},
		CreatedAt: now,
		UpdatedAt: now,
	}

	chunks, err := s.pipeline.Process(ctx, doc)
	if err != nil {
		return 0, fmt.Errorf("process: %w", err)
	}

	if err := s.store.SaveDocument(ctx, doc); err != nil {
		return 0, fmt.Errorf("save document: %w", err)
	}
	if err := s.store.SaveChunks(ctx, chunks); err != nil {
		return 0, fmt.Errorf("save chunks: %w", err)
	}

	return len(chunks), nil
}
