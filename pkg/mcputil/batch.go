package mcputil

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// HandleBatch calls handler for every item and collects the structured results
// of successful calls and the error messages of failed ones.
func HandleBatch[T any](
	ctx context.Context,
	items []T,
	handler func(context.Context, T) (*mcp.CallToolResult, any, error),
) (results []any, errorMsgs []string) {
	results = []any{}
	errorMsgs = []string{}

	for _, item := range items {
		result, out, err := handler(ctx, item)

		if err != nil || (result != nil && result.IsError) {
			errorMsgs = append(errorMsgs, extractErrorMessage(result, err))
			continue
		}

		if out != nil {
			results = append(results, out)
		}
	}

	return results, errorMsgs
}

// extractErrorMessage extracts a human-readable error message from MCP result or error.
func extractErrorMessage(result *mcp.CallToolResult, err error) string {
	if err != nil {
		return err.Error()
	}

	if result != nil && len(result.Content) > 0 {
		if textContent, ok := result.Content[0].(*mcp.TextContent); ok {
			return textContent.Text
		}
	}

	return "unknown error"
}

// FormatBatchResult creates an MCP result for batch operations. It is an error
// result if any item failed.
//
// Parameters:
//   - noun: what the items are, e.g. "targets"
//   - results: structured results of the successful items
//   - errorMsgs: error messages of the failed items
func FormatBatchResult(noun string, results []any, errorMsgs []string) (*mcp.CallToolResult, any) {
	if len(errorMsgs) > 0 {
		return ErrorResult(fmt.Sprintf("%d of %d %s failed:\n%s",
			len(errorMsgs), len(errorMsgs)+len(results), noun, strings.Join(errorMsgs, "\n"))), results
	}

	return SuccessResult(fmt.Sprintf("Successfully processed %d %s", len(results), noun)), results
}
