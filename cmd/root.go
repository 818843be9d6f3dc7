package cmd

import (
	"fmt"
	"os"

	"github.com/kamusis/skillscan/internal/extract"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skillscan [text]",
	Short: "skillscan — extract known skills from free-form text",
	Long: `skillscan prints the skills it recognizes in the given text (a resume,
a job description, ...) as a JSON array. Without text it prints [].

Every argument is treated as text; there are no flags. Only the first
argument is read.`,
	SilenceUsage:       true, // don't print usage on operational errors
	SilenceErrors:      true, // Execute prints them
	DisableFlagParsing: true,
	Args:               cobra.ArbitraryArgs,
	RunE:               runExtract,
}

// Execute is called by main.go.
func Execute() {
	if err := executeRoot(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// executeRoot runs skillscan with args. Cobra registers its hidden shell
// completion command whenever the first argument names it; skillscan has no
// subcommands, so those words are extracted like any other text.
func executeRoot(args []string) error {
	if len(args) > 0 && (args[0] == cobra.ShellCompRequestCmd || args[0] == cobra.ShellCompNoDescRequestCmd) {
		return runExtract(rootCmd, args)
	}
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func runExtract(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return writeJSON(cmd.OutOrStdout(), []string{})
	}
	ex, err := extract.NewDefault()
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), ex.Extract(args[0]))
}
