package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/gofrs/flock"
	"github.com/kamusis/skillscan/internal/catalog"
	"github.com/kamusis/skillscan/internal/config"
	"github.com/kamusis/skillscan/internal/extract"
	"github.com/kamusis/skillscan/internal/nlp"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run pre-flight environment checks",
	Long: `Check that skillscand's configuration, skill catalog and stopword list
load correctly, and report whether a service is already running.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	daemonCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	allOK := true
	failD := func(format string, args ...any) {
		printErr("", fmt.Sprintf(format, args...))
		allOK = false
	}

	printSection(out, "skillscand doctor")

	// ── Check 1: config ───────────────────────────────────────────────────────
	fmt.Fprintln(out, "[ skillscand.yaml ]")
	cfgPath, err := config.ConfigPath()
	if err != nil {
		failD("%v", err)
	} else if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		printSkip(out, "", fmt.Sprintf("%s not found, using defaults (run 'skillscand init' to create it)", cfgPath))
	}
	cfg, loadErr := config.Load("")
	if loadErr != nil {
		failD("cannot load config: %v", loadErr)
	} else {
		printOK(out, "", fmt.Sprintf("listen address %s, log level %s", cfg.Addr, cfg.LogLevel))
		if cfg.AuthEnabled() {
			printOK(out, "", "bearer auth enabled on /api/v1/skills")
		} else {
			printWarn(out, "", "bearer auth disabled, skill endpoints are public")
		}
	}
	fmt.Fprintln(out)

	// ── Check 2: skill catalog ────────────────────────────────────────────────
	fmt.Fprintln(out, "[ Skill catalog ]")
	if cat, err := catalog.Default(); err != nil {
		failD("cannot load catalog: %v", err)
	} else {
		printOK(out, "", fmt.Sprintf("%d skills in %d categories", cat.Len(), len(cat.Categories())))
	}
	fmt.Fprintln(out)

	// ── Check 3: stopwords ────────────────────────────────────────────────────
	fmt.Fprintln(out, "[ Stopwords ]")
	if stop, err := nlp.Stopwords(extract.StopwordLanguage); err != nil {
		failD("cannot load %s stopwords: %v", extract.StopwordLanguage, err)
	} else {
		printOK(out, "", fmt.Sprintf("%d %s stopwords", stop.Len(), extract.StopwordLanguage))
	}
	fmt.Fprintln(out)

	// ── Check 4: running service ──────────────────────────────────────────────
	fmt.Fprintln(out, "[ Service ]")
	checkServiceLock(out, failD)
	fmt.Fprintln(out)

	if !allOK {
		return fmt.Errorf("doctor found problems")
	}
	printOK(out, "", "all checks passed")
	return nil
}

func checkServiceLock(out io.Writer, failD func(string, ...any)) {
	lockPath, err := config.LockPath()
	if err != nil {
		failD("%v", err)
		return
	}
	if _, err := os.Stat(lockPath); os.IsNotExist(err) {
		printInfo(out, "", "skillscand is not running")
		return
	}
	l := flock.New(lockPath)
	locked, err := l.TryLock()
	if err != nil {
		failD("cannot inspect lock %s: %v", lockPath, err)
		return
	}
	if locked {
		_ = l.Unlock()
		printInfo(out, "", "skillscand is not running")
		return
	}
	printInfo(out, "", fmt.Sprintf("skillscand is running (lock held: %s)", lockPath))
}
