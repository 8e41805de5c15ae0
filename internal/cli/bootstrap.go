package cli

import (
	"io"
	"os"

	"github.com/alexandremahdhaoui/fabrikt-forge/internal/version"
	"k8s.io/klog/v2"
)

// Config holds the configuration for CLI bootstrap.
type Config struct {
	// Name is the command name, e.g. "fabrikt-generate".
	Name string

	// Version information (typically set via ldflags)
	Version        string
	CommitSHA      string
	BuildTimestamp string

	// RunCLI receives the command line arguments without the program name.
	RunCLI func(args []string) error

	// RunMCP runs the MCP server. If nil, --mcp fails.
	RunMCP func() error

	// SuccessHandler is called when RunCLI completes successfully (optional).
	SuccessHandler func()

	// FailureHandler is called with the error returned by RunCLI (optional).
	FailureHandler func(error)
}

// Bootstrap runs the command described by cfg with os.Args and exits.
//
// This function will call os.Exit and never return.
func Bootstrap(cfg Config) {
	os.Exit(Execute(cfg, os.Args[1:], os.Stdout))
}

// Execute runs the command described by cfg and returns its exit code.
// "version" as first argument, or --version anywhere, print the build
// information to stdout. -v is left to the command as the klog verbosity. --mcp runs the MCP server.
func Execute(cfg Config, args []string, stdout io.Writer) int {
	if isVersion(args) {
		info := version.New(cfg.Name)
		info.Version = cfg.Version
		info.CommitSHA = cfg.CommitSHA
		info.BuildTimestamp = cfg.BuildTimestamp
		info.Fprint(stdout)
		return 0
	}

	for _, arg := range args {
		if arg != "--mcp" {
			continue
		}
		if cfg.RunMCP == nil {
			klog.ErrorS(nil, "MCP mode not supported", "command", cfg.Name)
			return 1
		}
		if err := cfg.RunMCP(); err != nil {
			klog.ErrorS(err, "MCP server error", "command", cfg.Name)
			return 1
		}
		return 0
	}

	if err := cfg.RunCLI(args); err != nil {
		if cfg.FailureHandler != nil {
			cfg.FailureHandler(err)
		}
		return 1
	}

	if cfg.SuccessHandler != nil {
		cfg.SuccessHandler()
	}
	return 0
}

func isVersion(args []string) bool {
	if len(args) > 0 && args[0] == "version" {
		return true
	}
	for _, arg := range args {
		if arg == "--version" {
			return true
		}
	}
	return false
}
