// Package mcputil provides helpers for the MCP tools of fabrikt-generate:
// batch handling (HandleBatch, FormatBatchResult), input validation
// (ValidateRequired) and result creation (ErrorResult, SuccessResult,
// SuccessResultWithData).
package mcputil
