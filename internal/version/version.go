package version

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
)

// Info holds the build information of fabrikt-generate.
type Info struct {
	ToolName string
	// Version, CommitSHA and BuildTimestamp are set via ldflags. Unset values
	// fall back to the build info embedded by the go toolchain.
	Version        string
	CommitSHA      string
	BuildTimestamp string
}

// New returns an Info with placeholder values.
func New(toolName string) *Info {
	return &Info{
		ToolName:       toolName,
		Version:        "dev",
		CommitSHA:      "unknown",
		BuildTimestamp: "unknown",
	}
}

// Get returns the version, commit and build timestamp.
func (i *Info) Get() (version, commit, timestamp string) {
	version, commit, timestamp = i.Version, i.CommitSHA, i.BuildTimestamp

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version, commit, timestamp
	}

	if version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if commit == "unknown" && len(setting.Value) >= 7 {
				commit = setting.Value[:7]
			}
		case "vcs.time":
			if timestamp == "unknown" {
				timestamp = setting.Value
			}
		}
	}

	return version, commit, timestamp
}

// Fprint writes the build information to w.
func (i *Info) Fprint(w io.Writer) {
	version, commit, timestamp := i.Get()
	_, _ = fmt.Fprintf(w, "%s version %s\n", i.ToolName, version)
	_, _ = fmt.Fprintf(w, "  commit:    %s\n", commit)
	_, _ = fmt.Fprintf(w, "  built:     %s\n", timestamp)
	_, _ = fmt.Fprintf(w, "  go:        %s\n", runtime.Version())
	_, _ = fmt.Fprintf(w, "  platform:  %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

func (i *Info) String() string {
	version, _, _ := i.Get()
	return fmt.Sprintf("%s version %s", i.ToolName, version)
}
