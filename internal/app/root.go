// Package app contains the Cobra command tree for locwatch.
package app

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/locwatch/internal/output"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
)

// logE is the shared log entry handed down to the scanner for diagnostics.
// It writes to stderr so the report on stdout stays clean.
var logE = logrus.NewEntry(newLogger())

func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	return logger
}

var rootCmd = &cobra.Command{
	Use:   "locwatch",
	Short: "Report oversized source files before they become unreviewable",
	Long: `locwatch walks your source trees, counts lines in web source files
(.js, .ts, .jsx, .tsx, .mjs, .cjs, .css, .html), and reports every file over
the configured warn and fail thresholds, worst first. Dependency caches and
VCS metadata (node_modules, .git) are pruned from the walk.

Run 'locwatch' with no arguments to scan the default roots and print the
report to stdout. Use 'locwatch report' to persist the report to a file, or
'locwatch track' to snapshot results and watch the trend over time.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			logE.Logger.SetLevel(logrus.DebugLevel)
		}
		if flagNoColor || !isTerminal(os.Stdout) {
			output.SetNoColor(true)
		}
	},
	RunE: runScan,
}

// isTerminal reports whether f is attached to a terminal, so colored output
// is only produced for interactive runs.
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}
