package chunker

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aldergate-labs/physika-cli/internal/core/domain"
)

func TestNew(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		p, err := New()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.chunkSize != DefaultChunkSize {
			t.Errorf("expected chunkSize %d, got %d", DefaultChunkSize, p.chunkSize)
		}
		if p.overlap != DefaultChunkOverlap {
			t.Errorf("expected overlap %d, got %d", DefaultChunkOverlap, p.overlap)
		}
	})

	t.Run("custom chunk size", func(t *testing.T) {
		p, err := New(WithChunkSize(500), WithOverlap(100))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.chunkSize != 500 {
			t.Errorf("expected chunkSize 500, got %d", p.chunkSize)
		}
	})

	t.Run("zero chunk size rejected", func(t *testing.T) {
		_, err := New(WithChunkSize(0))
		if !errors.Is(err, domain.ErrInvalidChunkConfig) {
			t.Errorf("expected ErrInvalidChunkConfig, got %v", err)
		}
	})

	t.Run("negative overlap rejected", func(t *testing.T) {
		_, err := New(WithOverlap(-1))
		if !errors.Is(err, domain.ErrInvalidChunkConfig) {
			t.Errorf("expected ErrInvalidChunkConfig, got %v", err)
		}
	})

	t.Run("overlap equal to chunk size rejected", func(t *testing.T) {
		_, err := New(WithChunkSize(100), WithOverlap(100))
		if !errors.Is(err, domain.ErrInvalidChunkConfig) {
			t.Errorf("expected ErrInvalidChunkConfig, got %v", err)
		}
	})

	t.Run("overlap exceeding chunk size rejected", func(t *testing.T) {
		_, err := New(WithChunkSize(100), WithOverlap(150))
		if !errors.Is(err, domain.ErrInvalidChunkConfig) {
			t.Errorf("expected ErrInvalidChunkConfig, got %v", err)
		}
	})
}

func TestProcessor_Name(t *testing.T) {
	p, _ := New()
	if p.Name() != "chunker" {
		t.Errorf("expected name 'chunker', got '%s'", p.Name())
	}
}

func TestProcessor_Process_EmptyContent(t *testing.T) {
	p, _ := New()
	doc := &domain.Document{Source: "notes.txt", Content: ""}

	chunks, err := p.Process(context.Background(), doc, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) != 0 {
		t.Errorf("expected 0 chunks for empty content, got %d", len(chunks))
	}
}

func TestProcessor_Process_WhitespaceOnlyContent(t *testing.T) {
	p, _ := New()
	doc := &domain.Document{Source: "notes.txt", Content: " \n\t  \n"}

	chunks, err := p.Process(context.Background(), doc, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) != 0 {
		t.Errorf("expected 0 chunks for whitespace-only content, got %d", len(chunks))
	}
}

func TestProcessor_Process_SmallContent(t *testing.T) {
	p, _ := New(WithChunkSize(100), WithOverlap(20))
	doc := &domain.Document{
		Source:  "forces.md",
		Content: "A force is a push  or\na pull.",
	}

	chunks, err := p.Process(context.Background(), doc, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk for content shorter than chunk size, got %d", len(chunks))
	}

	if chunks[0].Text != "A force is a push or a pull." {
		t.Errorf("expected normalised content, got %q", chunks[0].Text)
	}
	if chunks[0].ID != "forces.md-0" {
		t.Errorf("expected ID 'forces.md-0', got %q", chunks[0].ID)
	}
	if chunks[0].Source != "forces.md" {
		t.Errorf("expected source 'forces.md', got %q", chunks[0].Source)
	}
	if chunks[0].Position != 0 {
		t.Errorf("expected position 0, got %d", chunks[0].Position)
	}
}

func TestProcessor_Process_Coverage(t *testing.T) {
	const size, overlap = 100, 20
	p, _ := New(WithChunkSize(size), WithOverlap(overlap))

	content := strings.Repeat("abcde ", 60) // 359 chars normalised
	doc := &domain.Document{Source: "doc", Content: content}

	chunks, err := p.Process(context.Background(), doc, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	norm := Normalise(content)

	// Expected count: ceil((len - overlap) / (size - overlap))
	want := (len(norm) - overlap + (size - overlap) - 1) / (size - overlap)
	if len(chunks) != want {
		t.Errorf("expected %d chunks for %d chars, got %d", want, len(norm), len(chunks))
	}

	// Reconstructing from chunk spans (respecting overlap) yields the
	// full normalised text.
	var rebuilt strings.Builder
	for i, c := range chunks {
		if i == 0 {
			rebuilt.WriteString(c.Text)
			continue
		}
		rebuilt.WriteString(c.Text[overlap:])
	}
	if rebuilt.String() != norm {
		t.Error("concatenated chunk spans do not reconstruct the normalised text")
	}

	// Every chunk except the last is exactly chunkSize.
	for i, c := range chunks[:len(chunks)-1] {
		if len(c.Text) != size {
			t.Errorf("chunk %d: expected length %d, got %d", i, size, len(c.Text))
		}
	}

	// Adjacent chunks share the overlap region.
	for i := 1; i < len(chunks); i++ {
		tail := chunks[i-1].Text[len(chunks[i-1].Text)-overlap:]
		head := chunks[i].Text[:overlap]
		if tail != head {
			t.Errorf("chunks %d/%d do not overlap by %d chars", i-1, i, overlap)
		}
	}
}

func TestProcessor_Process_Deterministic(t *testing.T) {
	p, _ := New(WithChunkSize(50), WithOverlap(10))
	doc := &domain.Document{
		Source:  "energy.txt",
		Content: strings.Repeat("kinetic energy stores. ", 20),
	}

	first, err := p.Process(context.Background(), doc, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := p.Process(context.Background(), doc, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("chunk counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("chunk %d differs between runs", i)
		}
	}
}

func TestProcessor_Process_SequentialIDs(t *testing.T) {
	p, _ := New(WithChunkSize(30), WithOverlap(5))
	doc := &domain.Document{
		Source:  "waves.md",
		Content: strings.Repeat("wavelength frequency ", 10),
	}

	chunks, err := p.Process(context.Background(), doc, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}

	for i, c := range chunks {
		wantID := "waves.md-" + string(rune('0'+i))
		if i < 10 && c.ID != wantID {
			t.Errorf("chunk %d: expected ID %q, got %q", i, wantID, c.ID)
		}
		if c.Position != i {
			t.Errorf("chunk %d: expected position %d, got %d", i, i, c.Position)
		}
	}
}

func TestNormalise(t *testing.T) {
	got := Normalise("  two\n\nwires \t joined  ")
	if got != "two wires joined" {
		t.Errorf("expected 'two wires joined', got %q", got)
	}

	if Normalise("") != "" {
		t.Error("expected empty string to stay empty")
	}

	// Idempotent
	if Normalise(got) != got {
		t.Error("normalisation should be idempotent")
	}
}
