// Package generate runs fabrikt once per generation target.
package generate

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"
	"sync"

	"github.com/alexandremahdhaoui/fabrikt-forge/internal/apicheck"
	"github.com/alexandremahdhaoui/fabrikt-forge/internal/cmdutil"
	"github.com/alexandremahdhaoui/fabrikt-forge/internal/util"
	"github.com/alexandremahdhaoui/fabrikt-forge/pkg/fabrikt"
	"github.com/alexandremahdhaoui/fabrikt-forge/pkg/flaterrors"
	"github.com/alexandremahdhaoui/fabrikt-forge/pkg/forge"
	"github.com/go-logr/logr"
	"golang.org/x/sync/errgroup"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"
)

// DefaultExecutable is used when neither the environment nor forge.yaml name one.
const DefaultExecutable = "fabrikt"

var (
	errUnknownTarget        = errors.New("unknown generation target")
	errEmptyExecutable      = errors.New("fabrikt executable must not be empty")
	errGeneratingTarget     = errors.New("generating target")
	errComputingFingerprint = errors.New("computing fingerprint")
)

// Target is one generation target ready to be compiled.
type Target struct {
	Name          string
	Config        fabrikt.Configuration
	VerifyAPIFile bool

	// Paths and library fabrikt uses, defaults included.
	SourcesPath       string
	ResourcesPath     string
	ValidationLibrary fabrikt.ValidationLibrary
}

// Options configures a Runner.
type Options struct {
	// Executable runs fabrikt, e.g. "java -jar fabrikt.jar".
	Executable string
	// Env holds KEY=VALUE entries added to the environment of fabrikt.
	Env []string
	// Parallelism bounds the number of concurrent fabrikt processes. Values
	// below 1 mean 1.
	Parallelism int
	// Force regenerates targets that are up to date.
	Force bool
	// DryRun compiles the arguments without running fabrikt.
	DryRun bool
	// Capture collects the output of fabrikt in Result.Output instead of
	// copying it to Stdout and Stderr.
	Capture bool

	Stdout io.Writer
	Stderr io.Writer
}

// Result is the outcome of one target.
type Result struct {
	Target          string
	Args            []string
	OutputDirectory string
	Fingerprint     string
	// Skipped is true if the target was up to date.
	Skipped bool
	DryRun  bool
	// Output holds the combined output of fabrikt in capture mode.
	Output string
	// Err is the error of this target, also part of the error returned by Run.
	Err error
}

// Generated reports whether fabrikt ran successfully for the target.
func (r Result) Generated() bool {
	return r.Err == nil && !r.Skipped && !r.DryRun
}

// Runner invokes fabrikt for generation targets.
type Runner struct {
	opts Options
	log  logr.Logger

	// verify checks api files of targets with VerifyAPIFile set.
	verify func(ctx context.Context, path string) error
}

// New returns a Runner. Nil writers discard output.
func New(log logr.Logger, opts Options) *Runner {
	if opts.Stdout == nil {
		opts.Stdout = io.Discard
	}
	if opts.Stderr == nil {
		opts.Stderr = io.Discard
	}
	if opts.Parallelism < 1 {
		opts.Parallelism = 1
	}

	// Concurrent targets share the writers.
	mu := &sync.Mutex{}
	opts.Stdout = &lockedWriter{mu: mu, w: opts.Stdout}
	opts.Stderr = &lockedWriter{mu: mu, w: opts.Stderr}

	return &Runner{
		opts:   opts,
		log:    log,
		verify: apicheck.Verify,
	}
}

// ResolveExecutable returns the first non-empty executable of candidates, or
// DefaultExecutable.
func ResolveExecutable(candidates ...string) string {
	for _, c := range candidates {
		if strings.TrimSpace(c) != "" {
			return c
		}
	}
	return DefaultExecutable
}

// Targets returns the targets of config with the given names, in the order of
// config. No names selects every target.
func Targets(config forge.FabriktConfig, names ...string) ([]Target, error) {
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}

	out := make([]Target, 0, len(config.Generate))
	for _, g := range config.Generate {
		if len(names) > 0 && !wanted[g.Name] {
			continue
		}
		delete(wanted, g.Name)

		out = append(out, Target{
			Name:          g.Name,
			Config:        g.Configuration(),
			VerifyAPIFile: g.VerifyAPIFile,

			SourcesPath:       g.EffectiveSourcesPath(),
			ResourcesPath:     g.EffectiveResourcesPath(),
			ValidationLibrary: g.EffectiveValidationLibrary(),
		})
	}

	if len(wanted) > 0 {
		unknown := make([]string, 0, len(wanted))
		for n := range wanted {
			unknown = append(unknown, n)
		}
		sort.Strings(unknown)

		return nil, flaterrors.Join(fmt.Errorf("%s", strings.Join(unknown, ", ")), errUnknownTarget)
	}

	return out, nil
}

// Run generates every target. Targets run concurrently up to the configured
// parallelism; a failing target does not stop the others, a cancelled ctx
// does. The returned error
// aggregates the failures of every target. Targets whose fingerprint matches
// store are skipped unless Force is set.
func (r *Runner) Run(ctx context.Context, store forge.ArtifactStore, targets []Target) ([]Result, error) {
	if _, err := r.command(); err != nil {
		return nil, err
	}

	results := make([]Result, len(targets))
	errs := make([]error, len(targets))

	g := errgroup.Group{}
	g.SetLimit(r.opts.Parallelism)

	for i, t := range targets {
		g.Go(func() error {
			// Cancellation is reported once for every target that did not start.
			if err := ctx.Err(); err != nil {
				results[i] = Result{Target: t.Name, OutputDirectory: t.Config.OutputDirectory, Err: err}
				return nil
			}

			res, err := r.runTarget(ctx, store, t)
			if err != nil {
				res.Err = flaterrors.Join(err, fmt.Errorf("%w %q", errGeneratingTarget, t.Name))
			}
			results[i] = res
			errs[i] = res.Err
			return nil
		})
	}

	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		errs = append(errs, err)
	}

	return results, utilerrors.NewAggregate(errs)
}

func (r *Runner) runTarget(ctx context.Context, store forge.ArtifactStore, t Target) (Result, error) {
	log := r.log.WithValues("target", t.Name)
	res := Result{
		Target:          t.Name,
		Args:            fabrikt.Compile(t.Config),
		OutputDirectory: t.Config.OutputDirectory,
	}

	if t.VerifyAPIFile {
		log.V(1).Info("verifying api file", "path", t.Config.APIFile)
		if err := r.verify(ctx, t.Config.APIFile); err != nil {
			return res, err
		}
	}

	fingerprint, err := Fingerprint(r.opts.Executable, r.opts.Env, res.Args, t.Config.APIFile, t.Config.APIFragments...)
	if err != nil {
		return res, err
	}
	res.Fingerprint = fingerprint

	if r.opts.DryRun {
		res.DryRun = true
		_, _ = fmt.Fprintf(r.opts.Stdout, "%s: %s %s\n", t.Name, r.opts.Executable, strings.Join(res.Args, " "))
		return res, nil
	}

	if !r.opts.Force && forge.IsUpToDate(store, t.Name, fingerprint) {
		log.Info("target is up to date, skipping")
		res.Skipped = true
		return res, nil
	}

	if err := os.MkdirAll(t.Config.OutputDirectory, 0o755); err != nil {
		return res, err
	}

	log.Info("running fabrikt",
		"outputDirectory", t.Config.OutputDirectory,
		"sourcesPath", t.SourcesPath,
		"resourcesPath", t.ResourcesPath,
		"validationLibrary", t.ValidationLibrary)

	output, err := r.exec(ctx, res.Args)
	res.Output = output

	return res, err
}

func (r *Runner) command() ([]string, error) {
	name, prefix := util.ParseExecutable(r.opts.Executable)
	if name == "" {
		return nil, errEmptyExecutable
	}
	return append([]string{name}, prefix...), nil
}

func (r *Runner) exec(ctx context.Context, args []string) (string, error) {
	command, err := r.command()
	if err != nil {
		return "", err
	}
	fullArgs := append(command[1:], args...)

	if r.opts.Capture {
		out := cmdutil.ExecuteCommand(ctx, cmdutil.ExecuteInput{
			Command: command[0],
			Args:    fullArgs,
			Env:     r.opts.Env,
		})
		output := out.Stdout + out.Stderr
		if out.ExitCode != 0 {
			return output, fmt.Errorf("fabrikt failed with exit code %d: %s", out.ExitCode, strings.TrimSpace(out.Stderr+" "+out.Error))
		}
		return output, nil
	}

	cmd := exec.CommandContext(ctx, command[0], fullArgs...)
	cmd.Env = append(os.Environ(), r.opts.Env...)

	return "", util.RunCmdWithPipes(cmd, r.opts.Stdout, r.opts.Stderr)
}

// Fingerprint identifies the inputs of one fabrikt invocation: the executable,
// the extra environment, the arguments and the content of the api file and its
// fragments. The order of env does not matter.
func Fingerprint(executable string, env, args []string, apiFile string, fragments ...string) (string, error) {
	h := sha256.New()

	_, _ = io.WriteString(h, executable)

	sortedEnv := append([]string(nil), env...)
	sort.Strings(sortedEnv)
	for _, e := range sortedEnv {
		_, _ = io.WriteString(h, "\x00env:"+e)
	}

	for _, a := range args {
		_, _ = io.WriteString(h, "\x00"+a)
	}

	for _, path := range append([]string{apiFile}, fragments...) {
		b, err := os.ReadFile(path)
		if err != nil {
			return "", flaterrors.Join(err, errComputingFingerprint)
		}
		_, _ = io.WriteString(h, "\x00")
		_, _ = h.Write(b)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

type lockedWriter struct {
	mu *sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
