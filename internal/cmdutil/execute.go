package cmdutil

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
)

// ExecuteCommand runs a command and captures its output.
//
// The command inherits the system environment; input.Env entries are appended
// and therefore take precedence.
func ExecuteCommand(ctx context.Context, input ExecuteInput) ExecuteOutput {
	cmd := exec.CommandContext(ctx, input.Command, input.Args...)

	if input.WorkDir != "" {
		cmd.Dir = input.WorkDir
	}

	cmd.Env = append(os.Environ(), input.Env...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	output := ExecuteOutput{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		output.ExitCode = 0
	case errors.As(err, &exitErr):
		output.ExitCode = exitErr.ExitCode()
		output.Error = err.Error()
	default:
		output.ExitCode = -1
		output.Error = err.Error()
	}

	return output
}
