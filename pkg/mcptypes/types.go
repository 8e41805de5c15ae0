// Package mcptypes holds the input and output types of the fabrikt-generate
// MCP tools.
package mcptypes

// GenerateInput is the input of the "generate" tool.
type GenerateInput struct {
	ConfigPath string   `json:"configPath,omitempty" jsonschema:"path to forge.yaml, defaults to FABRIKT_CONFIG_PATH or forge.yaml"`
	Targets    []string `json:"targets,omitempty" jsonschema:"names of the generation targets, all targets if empty"`
	Force      bool     `json:"force,omitempty" jsonschema:"regenerate targets that are up to date"`
	DryRun     bool     `json:"dryRun,omitempty" jsonschema:"compile the arguments without running fabrikt"`
}

// ArgsInput is the input of the "args" tool.
type ArgsInput struct {
	ConfigPath string   `json:"configPath,omitempty" jsonschema:"path to forge.yaml, defaults to FABRIKT_CONFIG_PATH or forge.yaml"`
	Targets    []string `json:"targets,omitempty" jsonschema:"names of the generation targets, all targets if empty"`
}

// TargetArgs is the fabrikt argument vector of one generation target.
type TargetArgs struct {
	Target string   `json:"target"`
	Args   []string `json:"args"`
}

// ArgsOutput is the structured output of the "args" tool.
type ArgsOutput struct {
	Targets []TargetArgs `json:"targets"`
}

// TargetResult is the outcome of generating one target.
type TargetResult struct {
	Target      string `json:"target"`
	Location    string `json:"location,omitempty"`
	Fingerprint string `json:"fingerprint,omitempty"`
	Skipped     bool   `json:"skipped,omitempty"`
	Output      string `json:"output,omitempty"`
	Error       string `json:"error,omitempty"`
}

// GenerateOutput is the structured output of the "generate" tool.
type GenerateOutput struct {
	Results []TargetResult `json:"results"`
}
