package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyCmd_Allowed(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "classify", "what is resistance")

	require.NoError(t, err)
	assert.Contains(t, out, "allowed")
}

func TestClassifyCmd_OutOfDomain(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "classify", "solve this leetcode problem")

	require.NoError(t, err)
	assert.Contains(t, out, "refused (out_of_domain)")
}

func TestClassifyCmd_AboveLevel(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "classify", "derive the schrodinger equation")

	require.NoError(t, err)
	assert.Contains(t, out, "refused (above_level)")
}

func TestClassifyCmd_Unrecognised(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "classify", "tell me about history")

	require.NoError(t, err)
	assert.Contains(t, out, "refused (unrecognised)")
}
