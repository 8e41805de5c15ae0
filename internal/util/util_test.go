//go:build unit

package util

import (
	"bytes"
	"os/exec"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExecutable(t *testing.T) {
	tests := []struct {
		executable string
		wantName   string
		wantArgs   []string
	}{
		{executable: "fabrikt", wantName: "fabrikt", wantArgs: []string{}},
		{executable: "java -jar  fabrikt.jar", wantName: "java", wantArgs: []string{"-jar", "fabrikt.jar"}},
		{executable: "   ", wantName: "", wantArgs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.executable, func(t *testing.T) {
			name, args := ParseExecutable(tt.executable)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestRunCmdWithPipes(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.Command("sh", "-c", "echo out; echo err >&2")

	require.NoError(t, RunCmdWithPipes(cmd, &stdout, &stderr))
	assert.Equal(t, "out\n", stdout.String())
	assert.Equal(t, "err\n", stderr.String())
}

func TestRunCmdWithPipes_NonZeroExit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.Command("sh", "-c", "echo failing >&2; exit 3")

	err := RunCmdWithPipes(cmd, &stdout, &stderr)

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 3, exitErr.ExitCode())
	assert.Equal(t, "failing\n", stderr.String())
}

type testEnvs struct {
	Executable string `env:"TEST_EXECUTABLE"`
	Config     string `env:"TEST_CONFIG_PATH" envDefault:"forge.yaml"`
	Token      string `env:"TEST_TOKEN,required"`
	NotFromEnv string
}

func TestFormatExpectedEnvList(t *testing.T) {
	out := FormatExpectedEnvList[testEnvs]()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "TEST_TOKEN")
	assert.Contains(t, lines[0], "[Required]")
	assert.Contains(t, lines[1], "TEST_EXECUTABLE")
	assert.NotContains(t, lines[1], "default")
	assert.Contains(t, lines[2], "(default: forge.yaml)")
}
