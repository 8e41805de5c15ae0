package cmdutil

// ExecuteInput contains the parameters for command execution.
type ExecuteInput struct {
	Command string   // Command to execute
	Args    []string // Command arguments
	Env     []string // Additional environment variables as KEY=VALUE, appended to the system environment
	WorkDir string   // Working directory (optional)
}

// ExecuteOutput contains the result of command execution.
type ExecuteOutput struct {
	ExitCode int    // Command exit code, -1 if the command could not run
	Stdout   string // Standard output
	Stderr   string // Standard error
	Error    string // Error message if execution failed
}
