package cmd

import (
	"fmt"
	"os"

	"github.com/kamusis/skillscan/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default skillscand configuration",
	Long: `Create ~/.skillscan/ with a default skillscand.yaml and a .env template
for secrets. Existing files are left untouched.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	daemonCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	// ── 1. Resolve and create ~/.skillscan ───────────────────────────────────
	dir, err := config.StateDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", dir, err)
	}
	printOK(out, "", fmt.Sprintf("State directory ready: %s", dir))

	// ── 2. Write skillscand.yaml if missing ──────────────────────────────────
	cfgPath, err := config.ConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		if err := config.Save(config.DefaultConfig(), cfgPath); err != nil {
			return err
		}
		printOK(out, "", fmt.Sprintf("Config written: %s", cfgPath))
	} else if err != nil {
		return fmt.Errorf("cannot stat %s: %w", cfgPath, err)
	} else {
		printSkip(out, "", fmt.Sprintf("Config already exists: %s", cfgPath))
	}

	// ── 3. Write the .env template if missing ────────────────────────────────
	created, err := config.EnsureDotEnvTemplate()
	if err != nil {
		return err
	}
	envPath, err := config.DotEnvPath()
	if err != nil {
		return err
	}
	if created {
		printOK(out, "", fmt.Sprintf(".env template written: %s", envPath))
		printInfo(out, "", fmt.Sprintf("set %s to require bearer tokens on /api/v1/skills", config.EnvJWTSecret))
	} else {
		printSkip(out, "", fmt.Sprintf(".env already exists: %s", envPath))
	}
	return nil
}
