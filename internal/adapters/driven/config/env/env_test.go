package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldergate-labs/physika-cli/internal/adapters/driven/config/file"
)

func TestParse(t *testing.T) {
	t.Setenv("PHYSIKA_API_KEY", "sk-env")
	t.Setenv("PHYSIKA_MODEL", "gpt-4o")

	o, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "sk-env", o.APIKey)
	assert.Equal(t, "gpt-4o", o.Model)
}

func TestOverrides_Apply(t *testing.T) {
	settings := file.DefaultSettings()
	settings.LLM.APIKey = "sk-file"

	Overrides{APIKey: "sk-env", NotesDir: "/tmp/notes"}.Apply(&settings)

	assert.Equal(t, "sk-env", settings.LLM.APIKey)
	assert.Equal(t, "/tmp/notes", settings.NotesDir)
	// Unset overrides leave file values alone.
	assert.Equal(t, "gpt-4o-mini", settings.LLM.Model)
}
