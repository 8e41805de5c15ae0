// Package testutil provides helpers for tests that run fabrikt.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// TestingT is the subset of testing.T methods that we use.
// This allows for easier testing of the testutil package itself.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...interface{})
}

// Files written by FakeFabrikt into the output directory it is invoked with.
const (
	ArgsFile = "args.txt"
	EnvFile  = "env.txt"
)

// FakeFabriktEnvVar is recorded by FakeFabrikt in EnvFile.
const FakeFabriktEnvVar = "GREETING"

const fakeFabriktScript = `#!/bin/sh
out=""
prev=""
for a in "$@"; do
  if [ "$prev" = "--output-directory" ]; then out="$a"; fi
  prev="$a"
done
echo "$@" > "$out/%[1]s"
echo "$%[2]s" > "$out/%[3]s"
echo "generated $out"
echo "warning" >&2
exit %[4]d
`

// FakeFabrikt writes an executable into dir that behaves like fabrikt for
// tests: it records its arguments in ArgsFile and the value of
// FakeFabriktEnvVar in EnvFile, both in the output directory, prints to stdout
// and stderr, then exits with exitCode. It returns the path to the executable.
func FakeFabrikt(t TestingT, dir string, exitCode int) string {
	t.Helper()

	path := filepath.Join(dir, "fabrikt")
	script := fmt.Sprintf(fakeFabriktScript, ArgsFile, FakeFabriktEnvVar, EnvFile, exitCode)

	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("failed to write fake fabrikt: %v", err)
	}

	return path
}

// WriteFiles writes files, keyed by path relative to dir, creating parent
// directories as needed.
func WriteFiles(t TestingT, dir string, files map[string]string) {
	t.Helper()

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create directory for %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte(files[name]), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
}
