package cmd

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Set at link time, see the Makefile:
//
//	-ldflags "-X github.com/kamusis/skillscan/cmd.version=v1.2.0 ..."
var (
	version   = "dev"
	commit    = ""
	buildDate = ""
)

var flagVersionJSON bool

// BuildInfo describes the running skillscand binary.
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show skillscand version and build information",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().BoolVar(&flagVersionJSON, "json", false, "Print build information as JSON")
	daemonCmd.AddCommand(versionCmd)
}

// currentBuildInfo prefers values injected by -ldflags and falls back to the
// VCS stamp Go records for `go build` inside a checkout.
func currentBuildInfo() BuildInfo {
	info := BuildInfo{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.BuildDate == "" {
				info.BuildDate = s.Value
			}
		}
	}
	return info
}

func runVersion(cmd *cobra.Command, _ []string) error {
	info := currentBuildInfo()
	w := cmd.OutOrStdout()
	if flagVersionJSON {
		return writeJSON(w, info)
	}
	fmt.Fprintf(w, "skillscand %s\n", info.Version)
	fmt.Fprintf(w, "  commit:  %s\n", orNA(info.Commit))
	fmt.Fprintf(w, "  built:   %s\n", orNA(info.BuildDate))
	fmt.Fprintf(w, "  go:      %s (%s)\n", info.GoVersion, info.Platform)
	return nil
}

func orNA(s string) string {
	if s == "" {
		return "n/a"
	}
	return s
}
