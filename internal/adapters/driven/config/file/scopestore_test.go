package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultScopeLists_Compile(t *testing.T) {
	scope, err := DefaultScopeLists().Compile()
	require.NoError(t, err)

	assert.NotEmpty(t, scope.OutOfDomain)
	assert.NotEmpty(t, scope.AboveLevel)
	assert.NotEmpty(t, scope.InScope)
	require.NotNil(t, scope.Fallback)
	assert.True(t, scope.Fallback.MatchString("a question about forces"))
	assert.False(t, scope.Fallback.MatchString("tell me about history"))
}

func TestScopeListStore_MaterialisesDefaults(t *testing.T) {
	dir := t.TempDir()

	s, err := NewScopeListStore(dir)
	require.NoError(t, err)

	lists, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultScopeLists().InScope, lists.InScope)

	// First Load writes the editable default file.
	_, statErr := os.Stat(filepath.Join(dir, scopeFileName))
	assert.NoError(t, statErr)
}

func TestScopeListStore_UserFileWins(t *testing.T) {
	dir := t.TempDir()
	custom := `
out_of_domain = ["knitting"]
above_level = ["m-theory"]
in_scope = ["pendulum"]
fallback_pattern = '\b(pendulum)\b'
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, scopeFileName), []byte(custom), 0600))

	s, err := NewScopeListStore(dir)
	require.NoError(t, err)

	lists, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"knitting"}, lists.OutOfDomain)
	assert.Equal(t, []string{"m-theory"}, lists.AboveLevel)
	assert.Equal(t, []string{"pendulum"}, lists.InScope)
}

func TestScopeListStore_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, scopeFileName), []byte("in_scope = ["), 0600))

	s, err := NewScopeListStore(dir)
	require.NoError(t, err)

	_, err = s.Load()
	assert.Error(t, err)
}
