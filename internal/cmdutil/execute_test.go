//go:build unit

package cmdutil

import (
	"context"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}
}

func TestExecuteCommand_SimpleSuccess(t *testing.T) {
	skipOnWindows(t)

	output := ExecuteCommand(context.Background(), ExecuteInput{
		Command: "sh",
		Args:    []string{"-c", "echo hello; echo warning >&2"},
	})

	if output.ExitCode != 0 {
		t.Errorf("Expected exit code 0, got %d", output.ExitCode)
	}
	if !strings.Contains(output.Stdout, "hello") {
		t.Errorf("Expected stdout to contain 'hello', got: %q", output.Stdout)
	}
	if !strings.Contains(output.Stderr, "warning") {
		t.Errorf("Expected stderr to contain 'warning', got: %q", output.Stderr)
	}
	if output.Error != "" {
		t.Errorf("Expected no error, got: %s", output.Error)
	}
}

func TestExecuteCommand_NonZeroExit(t *testing.T) {
	skipOnWindows(t)

	output := ExecuteCommand(context.Background(), ExecuteInput{
		Command: "sh",
		Args:    []string{"-c", "exit 42"},
	})

	if output.ExitCode != 42 {
		t.Errorf("Expected exit code 42, got %d", output.ExitCode)
	}
	if output.Error == "" {
		t.Error("Expected error message for non-zero exit")
	}
}

func TestExecuteCommand_InvalidCommand(t *testing.T) {
	output := ExecuteCommand(context.Background(), ExecuteInput{
		Command: "nonexistentcommandthatdoesnotexist12345",
	})

	if output.ExitCode != -1 {
		t.Errorf("Expected exit code -1 for invalid command, got %d", output.ExitCode)
	}
	if output.Error == "" {
		t.Error("Expected error message for invalid command")
	}
}

func TestExecuteCommand_WithWorkDir(t *testing.T) {
	skipOnWindows(t)
	tmpDir := t.TempDir()

	output := ExecuteCommand(context.Background(), ExecuteInput{
		Command: "pwd",
		WorkDir: tmpDir,
	})

	if output.ExitCode != 0 {
		t.Errorf("Expected exit code 0, got %d (error: %s)", output.ExitCode, output.Error)
	}
	if !strings.Contains(output.Stdout, filepath.Base(tmpDir)) {
		t.Errorf("Expected stdout to contain temp dir, got: %q", output.Stdout)
	}
}

func TestExecuteCommand_EnvTakesPrecedenceOverSystem(t *testing.T) {
	skipOnWindows(t)
	t.Setenv("CMDUTIL_TEST_VAR", "system_value")

	output := ExecuteCommand(context.Background(), ExecuteInput{
		Command: "sh",
		Args:    []string{"-c", "echo $CMDUTIL_TEST_VAR"},
		Env:     []string{"CMDUTIL_TEST_VAR=inline_value"},
	})

	if output.ExitCode != 0 {
		t.Errorf("Expected exit code 0, got %d", output.ExitCode)
	}
	if !strings.Contains(output.Stdout, "inline_value") {
		t.Errorf("Expected stdout to contain 'inline_value', got: %q", output.Stdout)
	}
}

func TestExecuteCommand_CancelledContext(t *testing.T) {
	skipOnWindows(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	output := ExecuteCommand(ctx, ExecuteInput{
		Command: "sh",
		Args:    []string{"-c", "sleep 5"},
	})

	if output.ExitCode == 0 {
		t.Error("Expected non-zero exit code for cancelled context")
	}
}
