package app

import (
	"fmt"
	"io"
	"runtime"
	"slices"

	"github.com/agbru/powkit/internal/cli"
)

// Build metadata, set with -ldflags "-X github.com/agbru/powkit/internal/app.Version=v1.0.0".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// HasVersionFlag reports whether args request the version, wherever the
// flag appears.
func HasVersionFlag(args []string) bool {
	return slices.ContainsFunc(args, func(arg string) bool {
		return arg == "--version" || arg == "-version" || arg == "-V"
	})
}

// VersionData is the machine-readable form of the build metadata.
type VersionData struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
	CPU       string `json:"cpu_features"`
}

// GetVersionInfo collects the build metadata and the runtime platform.
func GetVersionInfo() VersionData {
	return VersionData{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		CPU:       cli.CPUFeatures(),
	}
}

// PrintVersion writes the version information, as JSON when asJSON is set.
func PrintVersion(out io.Writer, asJSON bool) error {
	info := GetVersionInfo()
	if asJSON {
		return cli.WriteJSON(out, info)
	}
	_, err := fmt.Fprintf(out, "powkit %s\n  Commit:       %s\n  Built:        %s\n  Go version:   %s\n  Platform:     %s\n  CPU features: %s\n",
		info.Version, info.Commit, info.BuildDate, info.GoVersion, info.Platform, info.CPU)
	return err
}
