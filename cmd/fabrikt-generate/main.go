package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/alexandremahdhaoui/fabrikt-forge/internal/cli"
	"github.com/alexandremahdhaoui/fabrikt-forge/internal/cmdutil"
	"github.com/alexandremahdhaoui/fabrikt-forge/internal/generate"
	"github.com/alexandremahdhaoui/fabrikt-forge/internal/gitutil"
	"github.com/alexandremahdhaoui/fabrikt-forge/internal/util"
	"github.com/alexandremahdhaoui/fabrikt-forge/pkg/fabrikt"
	"github.com/alexandremahdhaoui/fabrikt-forge/pkg/flaterrors"
	"github.com/alexandremahdhaoui/fabrikt-forge/pkg/forge"
	"github.com/caarlos0/env/v11"
	"github.com/go-logr/logr"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"
)

const Name = "fabrikt-generate"

// Version information (set via ldflags during build)
var (
	Version        = "dev"
	CommitSHA      = "unknown"
	BuildTimestamp = "unknown"
)

// ----------------------------------------------------- MAIN ------------------------------------------------------- //

func main() {
	cli.Bootstrap(cli.Config{
		Name:           Name,
		Version:        Version,
		CommitSHA:      CommitSHA,
		BuildTimestamp: BuildTimestamp,
		RunCLI:         run,
		RunMCP:         runMCPServer,
		FailureHandler: printFailure,
	})
}

// ----------------------------------------------------- ENVS ------------------------------------------------------- //

// Envs holds the environment variables read by fabrikt-generate.
type Envs struct {
	// Executable overrides fabrikt.executable of forge.yaml.
	Executable string `env:"FABRIKT_EXECUTABLE"`
	// ConfigPath is the path to forge.yaml, overridden by --config.
	ConfigPath string `env:"FABRIKT_CONFIG_PATH" envDefault:"forge.yaml"`
	// Parallelism bounds the number of concurrent fabrikt processes.
	Parallelism int `env:"FABRIKT_PARALLELISM" envDefault:"1"`
	// EnvFile overrides fabrikt.envFile of forge.yaml.
	EnvFile string `env:"FABRIKT_ENV_FILE"`
}

var errParsingEnvs = errors.New("parsing environment variables")

func parseEnvs() (Envs, error) {
	envs := Envs{} //nolint:exhaustruct // unmarshal

	if err := env.Parse(&envs); err != nil {
		return Envs{}, flaterrors.Join(err, errParsingEnvs)
	}

	return envs, nil
}

// ----------------------------------------------------- RUN -------------------------------------------------------- //

var (
	errGenerating    = errors.New("generating fabrikt targets")
	errCompilingArgs = errors.New("compiling fabrikt arguments")
)

// run parses the command line and dispatches to the requested subcommand.
func run(args []string) error {
	fs := pflag.NewFlagSet(Name, pflag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	configPath := fs.String("config", "", "path to forge.yaml (default $FABRIKT_CONFIG_PATH or forge.yaml)")
	force := fs.Bool("force", false, "regenerate targets that are up to date")
	dryRun := fs.Bool("dry-run", false, "print the fabrikt arguments of each target without running fabrikt")

	goFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(goFlags)
	fs.AddGoFlagSet(goFlags)

	fs.Usage = func() { printUsage(os.Stderr, fs) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	envs, err := parseEnvs()
	if err != nil {
		return err
	}

	if *configPath == "" {
		*configPath = envs.ConfigPath
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log := klog.Background().WithName(Name)

	positional := fs.Args()
	if len(positional) > 0 {
		switch positional[0] {
		case "args":
			return printArgs(os.Stdout, *configPath, positional[1:])
		case "options":
			printOptions(os.Stdout)
			return nil
		case "help":
			printUsage(os.Stdout, fs)
			return nil
		}
	}

	results, err := generateTargets(ctx, log, envs, request{
		configPath: *configPath,
		targets:    positional,
		force:      *force,
		dryRun:     *dryRun,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
	})
	if err != nil {
		return err
	}

	printSummary(os.Stdout, results)

	return nil
}

// request describes one generation run, from the command line or from MCP.
type request struct {
	configPath string
	targets    []string
	force      bool
	dryRun     bool
	// capture collects the output of fabrikt instead of streaming it.
	capture bool
	stdout  io.Writer
	stderr  io.Writer
}

// generateTargets reads forge.yaml, runs fabrikt for the requested targets and
// records the generated targets in the artifact store.
func generateTargets(ctx context.Context, log logr.Logger, envs Envs, req request) ([]generate.Result, error) {
	// I. Read project configuration
	spec, err := forge.ReadSpecFromPath(req.configPath)
	if err != nil {
		return nil, flaterrors.Join(err, errGenerating)
	}

	targets, err := generate.Targets(spec.Fabrikt, req.targets...)
	if err != nil {
		return nil, flaterrors.Join(err, errGenerating)
	}

	// II. Read the environment of fabrikt
	envFile := spec.Fabrikt.EnvFile
	if envs.EnvFile != "" {
		envFile = envs.EnvFile
	}

	var fabriktEnv []string
	if envFile != "" {
		if fabriktEnv, err = cmdutil.LoadEnvFile(envFile); err != nil {
			return nil, flaterrors.Join(err, errGenerating)
		}
	}

	// III. Read artifact store
	store, err := forge.ReadOrCreateArtifactStore(spec.ArtifactStorePath)
	if err != nil {
		return nil, flaterrors.Join(err, errGenerating)
	}

	// IV. Run fabrikt
	runner := generate.New(log, generate.Options{
		Executable:  generate.ResolveExecutable(envs.Executable, spec.Fabrikt.Executable),
		Env:         fabriktEnv,
		Parallelism: envs.Parallelism,
		Force:       req.force,
		DryRun:      req.dryRun,
		Capture:     req.capture,
		Stdout:      req.stdout,
		Stderr:      req.stderr,
	})

	results, runErr := runner.Run(ctx, store, targets)

	// V. Record generated targets, including when other targets failed
	if err := recordArtifacts(ctx, filepath.Dir(req.configPath), spec, store, results); err != nil {
		return results, flaterrors.Join(runErr, err, errGenerating)
	}

	if runErr != nil {
		return results, flaterrors.Join(runErr, errGenerating)
	}

	return results, nil
}

// recordArtifacts stamps the generated targets with the commit of projectDir.
func recordArtifacts(ctx context.Context, projectDir string, spec forge.Spec, store forge.ArtifactStore, results []generate.Result) error {
	version := ""
	timestamp := time.Now().UTC().Format(time.RFC3339)

	recorded := 0
	for _, res := range results {
		if !res.Generated() {
			continue
		}

		if version == "" {
			version = gitutil.VersionOf(ctx, projectDir)
		}

		forge.AddOrUpdateArtifact(&store, forge.Artifact{
			Name:        res.Target,
			Type:        forge.ArtifactTypeGenerated,
			Location:    res.OutputDirectory,
			Timestamp:   timestamp,
			Version:     version,
			Fingerprint: res.Fingerprint,
		})
		recorded++
	}

	if recorded == 0 {
		return nil
	}

	return forge.WriteArtifactStore(spec.ArtifactStorePath, store)
}

// compileArgs returns the fabrikt arguments of the named targets, of every
// target if names is empty.
func compileArgs(configPath string, names []string) ([]generate.Target, error) {
	spec, err := forge.ReadSpecFromPath(configPath)
	if err != nil {
		return nil, flaterrors.Join(err, errCompilingArgs)
	}

	targets, err := generate.Targets(spec.Fabrikt, names...)
	if err != nil {
		return nil, flaterrors.Join(err, errCompilingArgs)
	}

	return targets, nil
}

// ----------------------------------------------------- PRINT HELPERS ----------------------------------------------- //

func printArgs(w io.Writer, configPath string, names []string) error {
	targets, err := compileArgs(configPath, names)
	if err != nil {
		return err
	}

	for _, t := range targets {
		_, _ = fmt.Fprintf(w, "%s: %s\n", t.Name, strings.Join(fabrikt.Compile(t.Config), " "))
	}

	return nil
}

func printOptions(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"SETTING", "VALUE", "FABRIKT", "DESCRIPTION"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)

	for _, e := range fabrikt.Vocabulary() {
		value := e.Value
		if value == "" {
			value = "-"
		}
		table.Append([]string{e.Setting, value, e.Name, e.Description})
	}

	table.Render()
}

func printSummary(w io.Writer, results []generate.Result) {
	for _, res := range results {
		switch {
		case res.DryRun:
		case res.Skipped:
			_, _ = fmt.Fprintf(w, "⏭️  %s is up to date\n", res.Target)
		default:
			_, _ = fmt.Fprintf(w, "✅ Generated %s into %s\n", res.Target, res.OutputDirectory)
		}
	}
}

func printUsage(w io.Writer, fs *pflag.FlagSet) {
	_, _ = fmt.Fprintf(w, `%[1]s - Generate Kotlin code from OpenAPI documents with fabrikt

Usage:
  %[1]s [flags] [target...]    Generate the given targets, all targets if none
  %[1]s args [target...]       Print the fabrikt arguments of the given targets
  %[1]s options                List the supported values of forge.yaml
  %[1]s version                Show version information
  %[1]s --mcp                  Run as MCP server

Flags:
%[2]s
Environment Variables:
%[3]s`, Name, fs.FlagUsages(), util.FormatExpectedEnvList[Envs]())
}

func printFailure(err error) {
	_, _ = fmt.Fprintf(os.Stderr, "❌ Error generating fabrikt targets\n%s\n", err.Error())
}
