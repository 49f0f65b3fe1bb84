// Package chunker provides a fixed-size overlapping text chunking processor.
package chunker

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/aldergate-labs/physika-cli/internal/core/domain"
)

// DefaultChunkSize is the default number of characters per chunk.
const DefaultChunkSize = 1000

// DefaultChunkOverlap is the default number of overlapping characters.
const DefaultChunkOverlap = 200

// Processor splits document content into fixed-size overlapping chunks.
// It implements the PostProcessor interface.
type Processor struct {
	chunkSize int
	overlap   int
}

// Option configures the chunker processor.
type Option func(*Processor)

// WithChunkSize sets the chunk size in characters.
func WithChunkSize(size int) Option {
	return func(p *Processor) {
		p.chunkSize = size
	}
}

// WithOverlap sets the overlap between chunks in characters.
func WithOverlap(overlap int) Option {
	return func(p *Processor) {
		p.overlap = overlap
	}
}

// New creates a new chunker processor with the given options.
// The configuration is validated, not clamped: overlap >= size would
// stop the windowing loop from advancing, so it is rejected here.
func New(opts ...Option) (*Processor, error) {
	p := &Processor{
		chunkSize: DefaultChunkSize,
		overlap:   DefaultChunkOverlap,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.chunkSize <= 0 {
		return nil, fmt.Errorf("%w: chunk size %d must be positive",
			domain.ErrInvalidChunkConfig, p.chunkSize)
	}
	if p.overlap < 0 || p.overlap >= p.chunkSize {
		return nil, fmt.Errorf("%w: overlap %d must be in [0, %d)",
			domain.ErrInvalidChunkConfig, p.overlap, p.chunkSize)
	}

	return p, nil
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return "chunker"
}

// Process splits the document content into overlapping windows.
// Input chunks are ignored; this processor creates new chunks from
// document content. The content is whitespace-normalised first so
// window offsets are independent of the original formatting.
//
// Chunk IDs are the document's source label plus the zero-based
// emission index, so repeated ingestion of the same document yields
// identical chunks.
func (p *Processor) Process(_ context.Context, doc *domain.Document, _ []domain.Chunk) ([]domain.Chunk, error) {
	text := Normalise(doc.Content)
	if text == "" {
		// Empty content produces no chunks
		return nil, nil
	}

	textLen := len(text)
	step := p.chunkSize - p.overlap

	chunks := make([]domain.Chunk, 0, textLen/step+1)

	for start := 0; ; start += step {
		end := start + p.chunkSize
		if end >= textLen {
			chunks = append(chunks, p.newChunk(doc, text[start:], len(chunks)))
			break
		}
		chunks = append(chunks, p.newChunk(doc, text[start:end], len(chunks)))
	}

	return chunks, nil
}

func (p *Processor) newChunk(doc *domain.Document, text string, position int) domain.Chunk {
	return domain.Chunk{
		ID:       doc.Source + "-" + strconv.Itoa(position),
		Source:   doc.Source,
		Text:     text,
		Position: position,
	}
}

// Normalise collapses all whitespace runs (including newlines) to
// single spaces and trims leading and trailing whitespace.
func Normalise(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
