package postprocessors

import (
	"context"
	"errors"
	"testing"

	"github.com/aldergate-labs/physika-cli/internal/core/domain"
)

// mockProcessor is a test processor that returns predefined chunks.
type mockProcessor struct {
	name   string
	chunks []domain.Chunk
	err    error
}

func (m *mockProcessor) Name() string {
	return m.name
}

func (m *mockProcessor) Process(_ context.Context, _ *domain.Document, chunks []domain.Chunk) ([]domain.Chunk, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.chunks != nil {
		return m.chunks, nil
	}
	return chunks, nil
}

func TestNewPipeline(t *testing.T) {
	p := NewPipeline()
	if p == nil {
		t.Fatal("expected non-nil pipeline")
	}
	if p.Len() != 0 {
		t.Errorf("expected 0 processors, got %d", p.Len())
	}
}

func TestPipeline_Add(t *testing.T) {
	p := NewPipeline()
	p.Add(&mockProcessor{name: "test"})

	if p.Len() != 1 {
		t.Errorf("expected 1 processor, got %d", p.Len())
	}
}

func TestPipeline_Process_NilDocument(t *testing.T) {
	p := NewPipeline()

	_, err := p.Process(context.Background(), nil)
	if err == nil {
		t.Error("expected error for nil document")
	}
}

func TestPipeline_Process_EmptyPipeline(t *testing.T) {
	p := NewPipeline()
	doc := &domain.Document{
		Source:  "notes.txt",
		Content: "test content",
	}

	chunks, err := p.Process(context.Background(), doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if chunks != nil {
		t.Errorf("expected nil chunks from empty pipeline, got %v", chunks)
	}
}

func TestPipeline_Process_SingleProcessor(t *testing.T) {
	expectedChunks := []domain.Chunk{
		{ID: "notes.txt-0", Source: "notes.txt", Text: "test"},
	}

	p := NewPipeline(&mockProcessor{
		name:   "chunker",
		chunks: expectedChunks,
	})

	doc := &domain.Document{
		Source:  "notes.txt",
		Content: "test content",
	}

	chunks, err := p.Process(context.Background(), doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) != 1 || chunks[0].ID != "notes.txt-0" {
		t.Errorf("expected the processor's chunks, got %v", chunks)
	}
}

func TestPipeline_Process_ProcessorError(t *testing.T) {
	wantErr := errors.New("boom")
	p := NewPipeline(&mockProcessor{name: "broken", err: wantErr})

	doc := &domain.Document{Source: "notes.txt", Content: "test"}

	_, err := p.Process(context.Background(), doc)
	if !errors.Is(err, wantErr) {
		t.Errorf("expected wrapped processor error, got %v", err)
	}
}

func TestRegistry_BuildChunker(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)

	if !r.Has("chunker") {
		t.Fatal("expected chunker to be registered")
	}

	proc, err := r.Build("chunker", map[string]any{
		"chunk_size": int64(400),
		"overlap":    int64(50),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if proc.Name() != "chunker" {
		t.Errorf("expected name 'chunker', got %q", proc.Name())
	}
}

func TestRegistry_BuildChunker_InvalidConfig(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)

	_, err := r.Build("chunker", map[string]any{
		"chunk_size": int64(100),
		"overlap":    int64(100),
	})
	if !errors.Is(err, domain.ErrInvalidChunkConfig) {
		t.Errorf("expected ErrInvalidChunkConfig, got %v", err)
	}
}

func TestRegistry_Build_Unknown(t *testing.T) {
	r := NewRegistry()

	_, err := r.Build("stemmer", nil)
	if err == nil {
		t.Error("expected error for unknown processor")
	}
}
