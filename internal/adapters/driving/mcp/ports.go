package mcp

import (
	"github.com/aldergate-labs/physika-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces the MCP server needs.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Assistant answers questions through the full pipeline.
	Assistant driving.AssistantService

	// Retrieval serves the raw passage search tool. Optional.
	Retrieval driving.RetrievalService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Assistant == nil {
		return ErrMissingAssistantService
	}
	return nil
}
