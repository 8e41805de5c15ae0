package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexandremahdhaoui/fabrikt-forge/internal/generate"
	"github.com/alexandremahdhaoui/fabrikt-forge/internal/mcpserver"
	"github.com/alexandremahdhaoui/fabrikt-forge/pkg/fabrikt"
	"github.com/alexandremahdhaoui/fabrikt-forge/pkg/flaterrors"
	"github.com/alexandremahdhaoui/fabrikt-forge/pkg/forge"
	"github.com/alexandremahdhaoui/fabrikt-forge/pkg/mcptypes"
	"github.com/alexandremahdhaoui/fabrikt-forge/pkg/mcputil"
	"github.com/go-logr/logr"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"k8s.io/klog/v2"
)

// runMCPServer starts the fabrikt-generate MCP server with stdio transport.
func runMCPServer() error {
	envs, err := parseEnvs()
	if err != nil {
		return err
	}

	server := newMCPServer(klog.Background().WithName(Name), envs)

	return server.Run(context.Background())
}

// newMCPServer creates the MCP server and registers its tools.
func newMCPServer(log logr.Logger, envs Envs) *mcpserver.Server {
	server := mcpserver.New(log, Name, Version)
	tools := &mcpTools{log: log, envs: envs}

	mcpserver.RegisterTool(server, &mcp.Tool{
		Name:        "generate",
		Description: "Generate Kotlin code with fabrikt for the generation targets of forge.yaml",
	}, tools.handleGenerate)

	mcpserver.RegisterTool(server, &mcp.Tool{
		Name:        "args",
		Description: "Compile the fabrikt command line arguments of the generation targets of forge.yaml",
	}, tools.handleArgs)

	return server
}

type mcpTools struct {
	log  logr.Logger
	envs Envs
}

func (t *mcpTools) configPath(input string) string {
	if input != "" {
		return input
	}
	return t.envs.ConfigPath
}

// handleGenerate handles the "generate" tool call from MCP clients.
func (t *mcpTools) handleGenerate(
	ctx context.Context,
	req *mcp.CallToolRequest,
	input mcptypes.GenerateInput,
) (*mcp.CallToolResult, any, error) {
	configPath := t.configPath(input.ConfigPath)
	t.log.Info("generating fabrikt targets", "config", configPath, "targets", input.Targets)

	// Stdout carries JSON-RPC: fabrikt output is captured, dry runs are logged to stderr.
	results, err := generateTargets(ctx, t.log, t.envs, request{
		configPath: configPath,
		targets:    input.Targets,
		force:      input.Force,
		dryRun:     input.DryRun,
		capture:    true,
		stdout:     os.Stderr,
		stderr:     os.Stderr,
	})

	out := mcptypes.GenerateOutput{Results: make([]mcptypes.TargetResult, 0, len(results))}
	for _, res := range results {
		out.Results = append(out.Results, toTargetResult(res))
	}

	if err != nil {
		return mcputil.ErrorResult(fmt.Sprintf("Generation failed: %v", err)), out, nil
	}

	result, data := mcputil.SuccessResultWithData(generateMessage(results), out)
	return result, data, nil
}

func toTargetResult(res generate.Result) mcptypes.TargetResult {
	out := mcptypes.TargetResult{
		Target:      res.Target,
		Location:    res.OutputDirectory,
		Fingerprint: res.Fingerprint,
		Skipped:     res.Skipped,
		Output:      res.Output,
	}
	if res.Err != nil {
		out.Error = res.Err.Error()
	}
	return out
}

func generateMessage(results []generate.Result) string {
	generated, skipped, dryRun := 0, 0, 0
	for _, res := range results {
		switch {
		case res.DryRun:
			dryRun++
		case res.Skipped:
			skipped++
		case res.Generated():
			generated++
		}
	}

	if dryRun > 0 {
		return fmt.Sprintf("Compiled the arguments of %d targets without running fabrikt", dryRun)
	}
	return fmt.Sprintf("Generated %d targets, %d up to date", generated, skipped)
}

// handleArgs handles the "args" tool call from MCP clients.
func (t *mcpTools) handleArgs(
	ctx context.Context,
	req *mcp.CallToolRequest,
	input mcptypes.ArgsInput,
) (*mcp.CallToolResult, any, error) {
	spec, err := forge.ReadSpecFromPath(t.configPath(input.ConfigPath))
	if err != nil {
		return mcputil.ErrorResult(fmt.Sprintf("Args failed: %v", flaterrors.Join(err, errCompilingArgs))), nil, nil
	}

	names := input.Targets
	if len(names) == 0 {
		for _, g := range spec.Fabrikt.Generate {
			names = append(names, g.Name)
		}
	}

	// Unknown targets are reported one by one; known targets are still returned.
	results, errorMsgs := mcputil.HandleBatch(ctx, names,
		func(_ context.Context, name string) (*mcp.CallToolResult, any, error) {
			if result := mcputil.ValidateRequired("Args failed", map[string]string{"target": name}); result != nil {
				return result, nil, nil
			}

			target, ok := spec.Fabrikt.Target(name)
			if !ok {
				return mcputil.ErrorResult(fmt.Sprintf("Args failed: unknown generation target %q", name)), nil, nil
			}

			result, data := mcputil.SuccessResultWithData(name, mcptypes.TargetArgs{
				Target: name,
				Args:   fabrikt.Compile(target.Configuration()),
			})
			return result, data, nil
		})

	result, _ := mcputil.FormatBatchResult("targets", results, errorMsgs)

	out := mcptypes.ArgsOutput{Targets: make([]mcptypes.TargetArgs, 0, len(results))}
	for _, r := range results {
		out.Targets = append(out.Targets, r.(mcptypes.TargetArgs))
	}

	return result, out, nil
}
