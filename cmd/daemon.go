package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var daemonCmd = &cobra.Command{
	Use:          "skillscand",
	Short:        "skillscand — skill extraction over HTTP",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `skillscand serves the skillscan extractor over HTTP so other services
can extract skills and score applicants against jobs without spawning a process
per request. Settings live in ~/.skillscan/ (see 'skillscand init').`,
}

// ExecuteDaemon is called by cmd/skillscand.
func ExecuteDaemon() {
	if err := daemonCmd.Execute(); err != nil {
		printErr("", err.Error())
		os.Exit(1)
	}
}
