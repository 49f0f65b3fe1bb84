package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aldergate-labs/physika-cli/internal/core/domain"
	"github.com/aldergate-labs/physika-cli/internal/core/ports/driven"
	"github.com/aldergate-labs/physika-cli/internal/core/ports/driving"
	"github.com/aldergate-labs/physika-cli/internal/logger"
)

// Ensure Assistant implements the interfaces.
var (
	_ driving.AssistantService = (*Assistant)(nil)
	_ driving.HistoryService   = (*Assistant)(nil)
)

// fallbackNoPassages is returned when the question was in scope but no
// chunk scored above zero. Retrieval never errors; an empty result is
// a legitimate outcome the assistant must phrase for the user.
const fallbackNoPassages = "The notes don't seem to cover that. " +
	"Try asking about a topic your notes include."

// Assistant runs the full question pipeline: scope gate, retrieval,
// generation. The classifier runs first and a refusal stops the
// pipeline before any retrieval or generation happens.
type Assistant struct {
	classifier driving.ClassifierService
	retriever  driving.RetrievalService
	llm        driven.LLMService
	history    driven.HistoryStore
	topK       int
}

// NewAssistant creates the assistant pipeline.
// The llm and history parameters are optional (can be nil): without an
// LLM the assistant still classifies and retrieves, answering with the
// raw passages; without history nothing is recorded.
func NewAssistant(
	classifier driving.ClassifierService,
	retriever driving.RetrievalService,
	llm driven.LLMService,
	history driven.HistoryStore,
	topK int,
) *Assistant {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &Assistant{
		classifier: classifier,
		retriever:  retriever,
		llm:        llm,
		history:    history,
		topK:       topK,
	}
}

// Ask answers a question against the ingested notes.
// Refused questions return a normal Answer carrying the refusal text,
// not an error; only infrastructure failures (store, LLM transport)
// surface as errors.
func (a *Assistant) Ask(ctx context.Context, question string) (*domain.Answer, error) {
	logger.Section("Question Pipeline")
	logger.Debug("Question: %q", question)

	question = strings.TrimSpace(question)

	answer := &domain.Answer{Question: question}
	answer.Classification = a.classifier.Classify(question)

	if !answer.Classification.Allowed {
		logger.Info("Refused (%s)", answer.Classification.Reason)
		answer.Text = answer.Classification.Refusal
		a.record(ctx, answer)
		return answer, nil
	}

	chunks, err := a.retriever.Retrieve(ctx, question, a.topK)
	if err != nil {
		return nil, fmt.Errorf("retrieve: %w", err)
	}
	answer.Chunks = chunks
	logger.Debug("Retrieved %d chunks", len(chunks))

	switch {
	case len(chunks) == 0:
		answer.Text = fallbackNoPassages

	case a.llm == nil:
		// No generation step configured; surface the passages directly.
		answer.Text = renderPassages(chunks)

	default:
		text, err := a.llm.Answer(ctx, question, chunks)
		if err != nil {
			return nil, fmt.Errorf("generate answer: %w", err)
		}
		answer.Text = text
	}

	a.record(ctx, answer)
	return answer, nil
}

// Recent returns up to limit exchanges from the history store,
// newest first.
func (a *Assistant) Recent(ctx context.Context, limit int) ([]domain.Exchange, error) {
	if a.history == nil {
		return nil, nil
	}
	return a.history.Recent(ctx, limit)
}

// record appends the exchange to history. History is best-effort: a
// failed write is logged, never surfaced to the user.
func (a *Assistant) record(ctx context.Context, answer *domain.Answer) {
	if a.history == nil {
		return
	}

	ex := &domain.Exchange{
		ID:       uuid.New().String(),
		AskedAt:  time.Now().UTC(),
		Question: answer.Question,
		Allowed:  answer.Classification.Allowed,
		Reason:   answer.Classification.Reason,
		Refusal:  answer.Classification.Refusal,
		Sources:  answer.Sources(),
	}
	if answer.Classification.Allowed {
		ex.Answer = answer.Text
	}

	if err := a.history.Append(ctx, ex); err != nil {
		logger.Warn("History append failed: %v", err)
	}
}

// renderPassages formats retrieved chunks as a plain answer when no
// generation service is configured.
func renderPassages(chunks []domain.Chunk) string {
	var b strings.Builder
	b.WriteString("From your notes:\n")
	for _, c := range chunks {
		fmt.Fprintf(&b, "\n[%s] %s\n", c.Source, c.Text)
	}
	return b.String()
}
