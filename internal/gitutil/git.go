package gitutil

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/alexandremahdhaoui/fabrikt-forge/pkg/flaterrors"
)

// UnknownVersion is recorded for artifacts generated outside of a git repository.
const UnknownVersion = "unknown"

var (
	errGettingCommitSHA = errors.New("getting git commit SHA")
	errEmptyCommitSHA   = errors.New("empty git commit SHA")
)

// CommitSHA returns the full commit SHA of HEAD in the repository containing dir.
//
// Returns an error if git fails, e.g. because dir is not in a git repository.
func CommitSHA(ctx context.Context, dir string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "HEAD")
	cmd.Dir = dir

	output, err := cmd.Output()
	if err != nil {
		return "", flaterrors.Join(err, errGettingCommitSHA)
	}

	sha := strings.TrimSpace(string(output))
	if sha == "" {
		return "", flaterrors.Join(errEmptyCommitSHA, errGettingCommitSHA)
	}

	return sha, nil
}

// VersionOf returns the commit SHA of dir, or UnknownVersion.
func VersionOf(ctx context.Context, dir string) string {
	sha, err := CommitSHA(ctx, dir)
	if err != nil {
		return UnknownVersion
	}
	return sha
}
