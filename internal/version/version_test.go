//go:build unit

package version_test

import (
	"bytes"
	"runtime"
	"strings"
	"testing"

	"github.com/alexandremahdhaoui/fabrikt-forge/internal/version"
)

func TestNew(t *testing.T) {
	info := version.New("fabrikt-generate")
	if info.ToolName != "fabrikt-generate" {
		t.Errorf("Expected ToolName 'fabrikt-generate', got '%s'", info.ToolName)
	}
	if info.Version != "dev" || info.CommitSHA != "unknown" || info.BuildTimestamp != "unknown" {
		t.Errorf("Expected placeholder values, got %+v", info)
	}
}

func TestGet_LdflagsTakePrecedence(t *testing.T) {
	info := version.New("fabrikt-generate")
	info.Version = "v1.0.0"
	info.CommitSHA = "abc1234"
	info.BuildTimestamp = "2025-01-01T00:00:00Z"

	v, c, ts := info.Get()
	if v != "v1.0.0" {
		t.Errorf("Expected version 'v1.0.0', got '%s'", v)
	}
	if c != "abc1234" {
		t.Errorf("Expected commit 'abc1234', got '%s'", c)
	}
	if ts != "2025-01-01T00:00:00Z" {
		t.Errorf("Expected timestamp '2025-01-01T00:00:00Z', got '%s'", ts)
	}
}

func TestGet_Defaults(t *testing.T) {
	v, c, ts := version.New("fabrikt-generate").Get()
	if v == "" || c == "" || ts == "" {
		t.Errorf("Expected non-empty values, got %q %q %q", v, c, ts)
	}
}

func TestString(t *testing.T) {
	info := version.New("fabrikt-generate")
	info.Version = "v1.2.3"

	if got := info.String(); got != "fabrikt-generate version v1.2.3" {
		t.Errorf("Expected 'fabrikt-generate version v1.2.3', got '%s'", got)
	}
}

func TestFprint(t *testing.T) {
	info := version.New("fabrikt-generate")
	info.Version = "v1.0.0"
	info.CommitSHA = "abc1234"

	buf := &bytes.Buffer{}
	info.Fprint(buf)

	out := buf.String()
	for _, want := range []string{
		"fabrikt-generate version v1.0.0\n",
		"commit:    abc1234",
		"go:        " + runtime.Version(),
		"platform:  " + runtime.GOOS + "/" + runtime.GOARCH,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out)
		}
	}
}
