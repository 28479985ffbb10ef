package version

import (
	"strings"

	"github.com/fatih/color"
)

// Version information for the bigcalc CLI.
// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	majorColor = color.New(color.FgYellow, color.Bold)
	minorColor = color.New(color.FgGreen, color.Bold)
	patchColor = color.New(color.FgBlue, color.Bold)
)

// Info is a snapshot of the build metadata.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

// Collect returns the trimmed build metadata; an empty version reads "dev".
func Collect() Info {
	v := strings.TrimSpace(Version)
	if v == "" {
		v = "dev"
	}
	return Info{
		Version:   v,
		GitCommit: strings.TrimSpace(GitCommit),
		BuildDate: strings.TrimSpace(BuildDate),
	}
}

// Colored renders major.minor.patch in three colours, keeping any
// pre-release suffix plain. Colour follows color.NoColor.
func (i Info) Colored() string {
	core, suffix, _ := strings.Cut(i.Version, "-")
	parts := strings.SplitN(core, ".", 3)
	if len(parts) != 3 {
		return i.Version
	}
	out := majorColor.Sprint(parts[0]) + "." + minorColor.Sprint(parts[1]) + "." + patchColor.Sprint(parts[2])
	if suffix != "" {
		out += "-" + suffix
	}
	return out
}
