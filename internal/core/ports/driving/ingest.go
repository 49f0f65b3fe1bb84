package driving

import "context"

// IngestStats summarises one ingestion run.
type IngestStats struct {
	// Sources is the number of corpus sources consulted.
	Sources int

	// Documents is the number of documents ingested.
	Documents int

	// Chunks is the number of chunks produced.
	Chunks int
}

// IngestService builds the in-memory chunk collection from the corpus.
// It is expected to run once before questions are served; the result
// is process-wide immutable state for the serving lifetime.
type IngestService interface {
	// Ingest loads every corpus source, chunks the documents, and
	// replaces the chunk store contents.
	Ingest(ctx context.Context) (IngestStats, error)
}
