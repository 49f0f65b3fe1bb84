package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScopeLists_Compile tests list lowering and pattern compilation
func TestScopeLists_Compile(t *testing.T) {
	lists := ScopeLists{
		OutOfDomain:     []string{" SQL ", "Leetcode"},
		AboveLevel:      []string{"Schrodinger"},
		InScope:         []string{"Force", "RESISTANCE", ""},
		FallbackPattern: `\b(force|energy)\b`,
	}

	scope, err := lists.Compile()
	require.NoError(t, err)

	assert.Equal(t, []string{"sql", "leetcode"}, scope.OutOfDomain)
	assert.Equal(t, []string{"schrodinger"}, scope.AboveLevel)
	assert.Equal(t, []string{"force", "resistance"}, scope.InScope)
	require.NotNil(t, scope.Fallback)
	assert.True(t, scope.Fallback.MatchString("kinetic energy"))
}

// TestScopeLists_Compile_BadPattern tests rejection of invalid regexps
func TestScopeLists_Compile_BadPattern(t *testing.T) {
	lists := ScopeLists{
		InScope:         []string{"force"},
		FallbackPattern: `(`,
	}

	_, err := lists.Compile()
	assert.Error(t, err)
}

// TestScopeLists_Compile_AcceptsNothing tests rejection of empty accept lists
func TestScopeLists_Compile_AcceptsNothing(t *testing.T) {
	_, err := ScopeLists{OutOfDomain: []string{"sql"}}.Compile()
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// TestScopeLists_Compile_NoFallback tests compilation without a pattern
func TestScopeLists_Compile_NoFallback(t *testing.T) {
	scope, err := ScopeLists{InScope: []string{"force"}}.Compile()
	require.NoError(t, err)
	assert.Nil(t, scope.Fallback)
}
