package mcp

import (
	"context"

	"github.com/aldergate-labs/physika-cli/internal/core/domain"
)

// mockAssistantService is a mock implementation of driving.AssistantService.
type mockAssistantService struct {
	answer *domain.Answer
	err    error
}

func (m *mockAssistantService) Ask(_ context.Context, _ string) (*domain.Answer, error) {
	return m.answer, m.err
}

// mockRetrievalService is a mock implementation of driving.RetrievalService.
type mockRetrievalService struct {
	chunks []domain.Chunk
	err    error
	gotK   int
}

func (m *mockRetrievalService) Retrieve(_ context.Context, _ string, topK int) ([]domain.Chunk, error) {
	m.gotK = topK
	return m.chunks, m.err
}
