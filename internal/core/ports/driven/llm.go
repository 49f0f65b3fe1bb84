package driven

import (
	"context"

	"github.com/aldergate-labs/physika-cli/internal/core/domain"
)

// LLMService is the downstream generation step. It receives the
// accepted question plus the retrieved passages and produces the
// final answer text. Prompt formatting is the adapter's concern,
// not the core's.
type LLMService interface {
	// Answer generates an answer grounded in the given passages.
	Answer(ctx context.Context, question string, passages []domain.Chunk) (string, error)
}
