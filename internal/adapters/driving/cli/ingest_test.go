package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldergate-labs/physika-cli/internal/core/ports/driving"
)

func TestIngestCmd_PrintsStats(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "ingest")

	require.NoError(t, err)
	assert.Contains(t, out, "Sources:   1")
	assert.Contains(t, out, "Documents: 2")
	assert.Contains(t, out, "Chunks:    5")
}

func TestIngestCmd_WarnsOnEmptyCorpus(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	ingestService = &mockIngest{stats: driving.IngestStats{Sources: 1}}

	out, err := execute(t, "ingest")

	require.NoError(t, err)
	assert.Contains(t, out, "No documents found.")
}

func TestIngestCmd_PropagatesError(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	ingestService = &mockIngest{err: errors.New("source unreachable")}

	_, err := execute(t, "ingest")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "source unreachable")
}
