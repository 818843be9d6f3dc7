package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// writeJSON writes v as a single line of JSON. HTML characters are not escaped.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("cannot write result: %w", err)
	}
	return nil
}

// ── Unified output helpers ────────────────────────────────────────────────────
// skillscand commands use these for human-facing output.
//
// Icon semantics:
//   ✓  success / healthy
//   ✗  error / failure          (written to stderr)
//   ○  skipped / not applicable
//   ⚠  warning / degraded
//   ~  neutral info / state change

// printSection prints a top-level section header, e.g. "=== skillscand doctor ===".
func printSection(w io.Writer, title string) {
	fmt.Fprintf(w, "\n=== %s ===\n\n", title)
}

// printOK prints a success line.
//   name = "" → "  ✓  msg"
//   name set  → "  ✓  [name] msg"
func printOK(w io.Writer, name, msg string) {
	if name == "" {
		fmt.Fprintf(w, "  ✓  %s\n", msg)
	} else {
		fmt.Fprintf(w, "  ✓  [%s] %s\n", name, msg)
	}
}

// printErr prints an error line to stderr.
func printErr(name, msg string) {
	if name == "" {
		fmt.Fprintf(os.Stderr, "  ✗  %s\n", msg)
	} else {
		fmt.Fprintf(os.Stderr, "  ✗  [%s] %s\n", name, msg)
	}
}

// printWarn prints a warning line.
func printWarn(w io.Writer, name, msg string) {
	if name == "" {
		fmt.Fprintf(w, "  ⚠  %s\n", msg)
	} else {
		fmt.Fprintf(w, "  ⚠  [%s] %s\n", name, msg)
	}
}

// printSkip prints a skipped / not-applicable line.
func printSkip(w io.Writer, name, msg string) {
	if name == "" {
		fmt.Fprintf(w, "  ○  %s\n", msg)
	} else {
		fmt.Fprintf(w, "  ○  [%s] %s\n", name, msg)
	}
}

// printInfo prints a neutral informational / state-change line.
func printInfo(w io.Writer, name, msg string) {
	if name == "" {
		fmt.Fprintf(w, "  ~  %s\n", msg)
	} else {
		fmt.Fprintf(w, "  ~  [%s] %s\n", name, msg)
	}
}
