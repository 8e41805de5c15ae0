package mcputil

import (
	"fmt"
	"sort"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ValidateRequired returns an error result naming the first empty field, in
// alphabetical order, or nil if every field is set.
//
// Example usage:
//
//	if result := mcputil.ValidateRequired("Args failed", map[string]string{
//	    "configPath": input.ConfigPath,
//	}); result != nil {
//	    return result, nil, nil
//	}
func ValidateRequired(prefix string, fields map[string]string) *mcp.CallToolResult {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if fields[name] == "" {
			return ErrorResult(fmt.Sprintf("%s: missing required field '%s'", prefix, name))
		}
	}

	return nil
}
