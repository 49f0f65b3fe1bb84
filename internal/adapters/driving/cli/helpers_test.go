package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aldergate-labs/physika-cli/internal/adapters/driven/config/file"
	"github.com/aldergate-labs/physika-cli/internal/core/domain"
	"github.com/aldergate-labs/physika-cli/internal/core/ports/driving"
	"github.com/aldergate-labs/physika-cli/internal/core/services"
)

type mockAssistant struct {
	answer *domain.Answer
	err    error
}

func (m *mockAssistant) Ask(_ context.Context, _ string) (*domain.Answer, error) {
	return m.answer, m.err
}

type mockRetrieval struct {
	chunks []domain.Chunk
	err    error
}

func (m *mockRetrieval) Retrieve(_ context.Context, _ string, _ int) ([]domain.Chunk, error) {
	return m.chunks, m.err
}

type mockIngest struct {
	stats driving.IngestStats
	err   error
}

func (m *mockIngest) Ingest(_ context.Context) (driving.IngestStats, error) {
	return m.stats, m.err
}

type mockHistory struct {
	exchanges []domain.Exchange
	err       error
}

func (m *mockHistory) Recent(_ context.Context, _ int) ([]domain.Exchange, error) {
	return m.exchanges, m.err
}

// setupTestServices wires mock services into the command package and
// returns a cleanup that restores the uninitialised state.
func setupTestServices(t *testing.T) func() {
	t.Helper()

	scope, err := file.DefaultScopeLists().Compile()
	require.NoError(t, err)

	assistantService = &mockAssistant{
		answer: &domain.Answer{
			Classification: domain.Accepted(),
			Chunks:         []domain.Chunk{{Source: "circuits.md", Text: "Resistance opposes current."}},
			Text:           "Resistance opposes the flow of current.",
		},
	}
	classifierService = services.NewClassifier(scope)
	retrievalService = &mockRetrieval{
		chunks: []domain.Chunk{{Source: "circuits.md", Text: "Resistance opposes current."}},
	}
	ingestService = &mockIngest{stats: driving.IngestStats{Sources: 1, Documents: 2, Chunks: 5}}
	historyService = &mockHistory{}

	return func() {
		assistantService = nil
		classifierService = nil
		retrievalService = nil
		ingestService = nil
		historyService = nil
		settingsStore = nil
	}
}

// execute runs the root command with args, capturing output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
