package mcputil

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ErrorResult creates an MCP error result.
//
// Example usage:
//
//	return mcputil.ErrorResult(fmt.Sprintf("Generation failed: %v", err)), nil, nil
func ErrorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: message},
		},
		IsError: true,
	}
}

// SuccessResult creates an MCP success result.
func SuccessResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: message},
		},
		IsError: false,
	}
}

// SuccessResultWithData creates a success result and passes data through as
// the structured output of the tool.
//
// Example usage:
//
//	result, out := mcputil.SuccessResultWithData("Generated dog", artifact)
//	return result, out, nil
func SuccessResultWithData(message string, data any) (*mcp.CallToolResult, any) {
	return SuccessResult(message), data
}
