// Package mcp provides an MCP (Model Context Protocol) server adapter
// for Physika. It lets AI assistants ask questions against the notes
// through the same scope gate the CLI uses.
package mcp

import "errors"

// ErrMissingAssistantService is returned when the assistant service is not provided.
var ErrMissingAssistantService = errors.New("mcp: assistant service is required")
