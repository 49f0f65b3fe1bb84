package domain

import "time"

// Document represents a note document after normalisation.
// It is the canonical representation before chunking.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// Source is the human-readable label of the originating document
	// (file name or logical name). Chunk IDs are derived from it.
	Source string

	// URI is the original location (file path, repo path, etc).
	URI string

	// Title is the human-readable title.
	Title string

	// Content is the full text content after markup stripping.
	// This is the complete document text before chunking.
	Content string

	// Metadata contains arbitrary key-value pairs.
	Metadata map[string]any

	// CreatedAt is when the document was ingested.
	CreatedAt time.Time

	// UpdatedAt is when the document was last re-ingested.
	UpdatedAt time.Time
}

// Chunk is a contiguous window of a normalised document.
// Chunks are immutable once produced: they are created in bulk at
// ingestion, held in memory for the serving lifetime, and never
// mutated. Adjacent chunks of one document overlap by a configured
// amount, so ordered by Position they cover the whole document.
type Chunk struct {
	// ID is derived from the source label plus the zero-based
	// emission index, unique within a source.
	ID string

	// Source is the label of the originating document.
	Source string

	// Text is the whitespace-normalised window of the document.
	Text string

	// Position is the zero-based emission index within the document.
	Position int
}

// ScoredChunk pairs a Chunk with a non-negative relevance score.
// It exists only for the duration of one retrieval call.
type ScoredChunk struct {
	Chunk Chunk
	Score float64
}

// RawDocument is an opaque corpus payload before normalisation.
// Markup stripping happens in the corpus adapters; the core only
// ever sees the extracted text.
type RawDocument struct {
	// URI is the original location of the document.
	URI string

	// Label is the source label used for chunk ID derivation.
	Label string

	// MIMEType describes the raw content format.
	MIMEType string

	// Content holds the plain text as supplied by the source.
	Content string
}
