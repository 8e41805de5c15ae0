// Package cli bootstraps the fabrikt-generate command.
//
// It handles:
//   - Version information initialization from ldflags
//   - Version flag handling (--version, version)
//   - MCP server mode handling (--mcp flag)
//   - Standardized error handling and exit codes
//
// Example usage:
//
//	func main() {
//	    cli.Bootstrap(cli.Config{
//	        Name:           "fabrikt-generate",
//	        Version:        Version,
//	        CommitSHA:      CommitSHA,
//	        BuildTimestamp: BuildTimestamp,
//	        RunCLI:         run,
//	        RunMCP:         runMCPServer,
//	    })
//	}
package cli
