// Package tools provides the read-only MCP tool handlers exposing the idea
// backlog and knowledge base to AI assistants.
//
// Each tool follows the same pattern:
// - A struct with its service dependency injected via constructor
// - Definition() returns the mcp.Tool schema
// - Handle() processes the request and returns a result
//
// Every tool is read-only: nothing here mutates the store.
package tools

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// intArg extracts an integer argument from a tool request, returning
// defaultVal if the key is missing or not a number (JSON numbers are float64).
func intArg(req mcp.CallToolRequest, key string, defaultVal int) int {
	v, ok := req.GetArguments()[key].(float64)
	if !ok {
		return defaultVal
	}
	return int(v)
}

// jsonResult marshals v as indented JSON for the tool result. Assistants
// parse this; indentation keeps it readable in transcripts too.
func jsonResult(v any) *mcp.CallToolResult {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError("encoding result: " + err.Error())
	}
	return mcp.NewToolResultText(string(b))
}
