package driven

import (
	"context"

	"github.com/aldergate-labs/physika-cli/internal/core/domain"
)

// HistoryStore persists question/answer exchanges for later review.
// Only the audit log is persisted; the retrieval index never is.
type HistoryStore interface {
	// Append records one exchange.
	Append(ctx context.Context, ex *domain.Exchange) error

	// Recent returns up to limit exchanges, newest first.
	Recent(ctx context.Context, limit int) ([]domain.Exchange, error)

	// Close releases the underlying storage.
	Close() error
}
