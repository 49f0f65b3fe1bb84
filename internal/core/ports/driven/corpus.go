package driven

import (
	"context"

	"github.com/aldergate-labs/physika-cli/internal/core/domain"
)

// CorpusSource supplies raw note documents for ingestion.
// Sources are responsible for markup stripping: the Content of each
// returned document must already be plain text.
type CorpusSource interface {
	// Name identifies the source for logging.
	Name() string

	// Documents returns every document the source currently holds.
	Documents(ctx context.Context) ([]domain.RawDocument, error)
}
