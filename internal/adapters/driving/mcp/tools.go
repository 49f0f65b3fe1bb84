package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// AskInput is the input schema for the ask tool.
type AskInput struct {
	Question string `json:"question" jsonschema:"the physics question to answer from the notes"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	Answer  string   `json:"answer"`
	Allowed bool     `json:"allowed"`
	Reason  string   `json:"reason,omitempty"`
	Sources []string `json:"sources,omitempty"`
}

// SearchInput is the input schema for the search_notes tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the query to match against note passages"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of passages to return (default 6)"`
}

// SearchOutput is the output schema for the search_notes tool.
type SearchOutput struct {
	Passages []PassageOutput `json:"passages"`
	Count    int             `json:"count"`
}

// PassageOutput is a single retrieved passage.
type PassageOutput struct {
	Source string `json:"source"`
	Text   string `json:"text"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask",
		Description: "Answer a school physics question from the indexed notes. Off-topic questions are refused.",
	}, s.handleAsk)

	if s.ports.Retrieval != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "search_notes",
			Description: "Return the raw note passages that best match a query",
		}, s.handleSearch)
	}
}

// handleAsk handles the ask tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	answer, err := s.ports.Assistant.Ask(ctx, input.Question)
	if err != nil {
		return nil, AskOutput{}, err
	}

	output := AskOutput{
		Answer:  answer.Text,
		Allowed: answer.Classification.Allowed,
		Sources: answer.Sources(),
	}
	if !answer.Classification.Allowed {
		output.Reason = string(answer.Classification.Reason)
	}

	return nil, output, nil
}

// handleSearch handles the search_notes tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	// Zero means the caller omitted the field; a negative limit is an
	// explicit request and retrieves nothing.
	limit := input.Limit
	if limit == 0 {
		limit = 6
	}

	chunks, err := s.ports.Retrieval.Retrieve(ctx, input.Query, limit)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Passages: make([]PassageOutput, len(chunks)),
		Count:    len(chunks),
	}
	for i := range chunks {
		output.Passages[i] = PassageOutput{
			Source: chunks[i].Source,
			Text:   chunks[i].Text,
		}
	}

	return nil, output, nil
}
