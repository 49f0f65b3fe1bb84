package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidChunkConfig indicates a chunker configuration that
	// cannot terminate: non-positive chunk size, negative overlap,
	// or overlap >= size. Fatal at construction, never clamped.
	ErrInvalidChunkConfig = errors.New("invalid chunk configuration")

	// ErrLLMUnavailable indicates the generation service is not configured.
	// Questions can still be classified and retrieved against, but no
	// final answer text can be produced.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrCorpusUnavailable indicates a corpus source could not supply
	// documents (missing directory, unreachable repository).
	ErrCorpusUnavailable = errors.New("corpus source unavailable")

	// ErrEmptyCorpus indicates ingestion produced no chunks at all.
	ErrEmptyCorpus = errors.New("corpus is empty")
)
