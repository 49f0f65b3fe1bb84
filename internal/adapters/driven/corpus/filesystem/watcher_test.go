package filesystem

import (
	"context"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelevant(t *testing.T) {
	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"note write", fsnotify.Event{Name: "forces.md", Op: fsnotify.Write}, true},
		{"note create", fsnotify.Event{Name: "waves.txt", Op: fsnotify.Create}, true},
		{"pdf remove", fsnotify.Event{Name: "notes.pdf", Op: fsnotify.Remove}, true},
		{"chmod only", fsnotify.Event{Name: "forces.md", Op: fsnotify.Chmod}, false},
		{"unsupported extension", fsnotify.Event{Name: "diagram.png", Op: fsnotify.Write}, false},
		{"directory", fsnotify.Event{Name: "waves", Op: fsnotify.Create}, true},
		{"editor swap file", fsnotify.Event{Name: "forces.md.swp", Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, relevant(tt.event))
		})
	}
}

func TestNewWatcher(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "waves/sound.md", "content")

	w, err := NewWatcher(dir, func(_ context.Context) {})
	require.NoError(t, err)
	assert.NoError(t, w.Close())
}

func TestNewWatcher_MissingDirectory(t *testing.T) {
	_, err := NewWatcher(t.TempDir()+"/nope", func(_ context.Context) {})
	assert.Error(t, err)
}
