// Package sqlite provides the persisted question history.
//
// Only the audit log lives here. The retrieval index is rebuilt from
// the corpus on every start and is never written to disk.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/aldergate-labs/physika-cli/internal/core/domain"
	"github.com/aldergate-labs/physika-cli/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// schema creates the exchanges table.
const schema = `
CREATE TABLE IF NOT EXISTS exchanges (
	id       TEXT PRIMARY KEY,
	asked_at TEXT NOT NULL,
	question TEXT NOT NULL,
	allowed  INTEGER NOT NULL,
	reason   TEXT NOT NULL DEFAULT '',
	refusal  TEXT NOT NULL DEFAULT '',
	answer   TEXT NOT NULL DEFAULT '',
	sources  TEXT NOT NULL DEFAULT '[]'
);
CREATE INDEX IF NOT EXISTS idx_exchanges_asked_at ON exchanges(asked_at DESC);
`

// HistoryStore is a SQLite-backed implementation of driven.HistoryStore.
type HistoryStore struct {
	db   *sql.DB
	path string
}

// NewHistoryStore opens (or creates) the history database.
// If dataDir is empty, defaults to ~/.physika/data.
func NewHistoryStore(dataDir string) (*HistoryStore, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".physika", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "history.db")

	// WAL mode keeps concurrent reads cheap while the CLI appends.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &HistoryStore{db: db, path: dbPath}, nil
}

// Append records one exchange.
func (s *HistoryStore) Append(ctx context.Context, ex *domain.Exchange) error {
	sources, err := json.Marshal(ex.Sources)
	if err != nil {
		return fmt.Errorf("marshal sources: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO exchanges (id, asked_at, question, allowed, reason, refusal, answer, sources)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		ex.ID,
		ex.AskedAt.UTC().Format(time.RFC3339Nano),
		ex.Question,
		boolToInt(ex.Allowed),
		string(ex.Reason),
		ex.Refusal,
		ex.Answer,
		string(sources),
	)
	if err != nil {
		return fmt.Errorf("insert exchange: %w", err)
	}
	return nil
}

// Recent returns up to limit exchanges, newest first.
func (s *HistoryStore) Recent(ctx context.Context, limit int) ([]domain.Exchange, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, asked_at, question, allowed, reason, refusal, answer, sources
		 FROM exchanges ORDER BY asked_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query exchanges: %w", err)
	}
	defer rows.Close()

	var exchanges []domain.Exchange
	for rows.Next() {
		var (
			ex      domain.Exchange
			askedAt string
			allowed int
			reason  string
			sources string
		)
		if err := rows.Scan(&ex.ID, &askedAt, &ex.Question, &allowed,
			&reason, &ex.Refusal, &ex.Answer, &sources); err != nil {
			return nil, fmt.Errorf("scan exchange: %w", err)
		}

		ex.Allowed = allowed != 0
		ex.Reason = domain.RefusalReason(reason)
		if ts, err := time.Parse(time.RFC3339Nano, askedAt); err == nil {
			ex.AskedAt = ts
		}
		if err := json.Unmarshal([]byte(sources), &ex.Sources); err != nil {
			return nil, fmt.Errorf("unmarshal sources: %w", err)
		}

		exchanges = append(exchanges, ex)
	}

	return exchanges, rows.Err()
}

// Close closes the database connection.
func (s *HistoryStore) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *HistoryStore) Path() string {
	return s.path
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
