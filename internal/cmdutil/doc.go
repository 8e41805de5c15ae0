// Package cmdutil provides utilities for running a command with a merged environment.
//
// This package includes:
//   - ExecuteInput/ExecuteOutput types for command execution
//   - ExecuteCommand function for running a command and capturing its output
//   - LoadEnvFile function for loading environment variables from files
package cmdutil
