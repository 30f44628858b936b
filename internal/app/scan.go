package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/locwatch/internal/config"
	"github.com/blackwell-systems/locwatch/internal/output"
	"github.com/blackwell-systems/locwatch/internal/scanner"
)

var (
	scanFlagPaths   []string
	scanFlagWarn    int
	scanFlagFail    int
	scanFlagExts    []string
	scanFlagExclude []string
	scanFlagJSON    bool
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan the configured roots and print the large-file report",
	Long: `Scan walks each root directory, counts lines in matching source files,
and prints every file over the warn threshold, worst first. Files over the
fail threshold are labeled FAIL, the rest WARN. Unreadable files are reported
inline and never abort the scan.`,
	RunE: runScan,
}

func init() {
	addScanFlags(scanCmd)
	scanCmd.Flags().BoolVar(&scanFlagJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(scanCmd)
}

// addScanFlags registers the flags shared by scan and report.
func addScanFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&scanFlagPaths, "path", nil, "Root directory to scan (can be repeated; replaces defaults)")
	cmd.Flags().IntVar(&scanFlagWarn, "warn", 0, "Warn when a file has more than this many lines")
	cmd.Flags().IntVar(&scanFlagFail, "fail", 0, "Fail when a file has more than this many lines")
	cmd.Flags().StringSliceVar(&scanFlagExts, "ext", nil, "File suffix to include (can be repeated; replaces defaults)")
	cmd.Flags().StringSliceVar(&scanFlagExclude, "exclude", nil, "Directory name to prune (can be repeated; replaces defaults)")
}

// scanOptions merges configuration defaults with any flags set on the
// command line. Flags replace, not append, so a --path scan is scoped to
// exactly what was asked for.
func scanOptions(cfg *config.Config) scanner.Options {
	opts := scanner.Options{
		Roots:       cfg.Roots,
		WarnLimit:   cfg.WarnLimit,
		FailLimit:   cfg.FailLimit,
		Extensions:  cfg.Extensions,
		ExcludeDirs: cfg.ExcludeDirs,
	}
	if len(scanFlagPaths) > 0 {
		opts.Roots = scanFlagPaths
	}
	if scanFlagWarn > 0 {
		opts.WarnLimit = scanFlagWarn
	}
	if scanFlagFail > 0 {
		opts.FailLimit = scanFlagFail
	}
	if len(scanFlagExts) > 0 {
		opts.Extensions = scanFlagExts
	}
	if len(scanFlagExclude) > 0 {
		opts.ExcludeDirs = scanFlagExclude
	}
	return opts
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	res := scanner.Scan(afero.NewOsFs(), scanOptions(cfg), logE)

	if scanFlagJSON || flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	renderConsole(res)
	return nil
}

// renderConsole prints the report to stdout with styled status labels.
// The text matches report.Render byte for byte when color is disabled.
func renderConsole(res *scanner.Result) {
	fmt.Printf("Checking files in %v (Warn: %d, Fail: %d)\n", res.Roots, res.WarnLimit, res.FailLimit)

	for _, e := range res.Errors {
		fmt.Printf("Error reading %s: %s\n", e.Path, e.Detail)
	}

	fmt.Printf("\nResults:\n")
	for _, f := range res.Findings {
		fmt.Printf("[%s] %d lines: %s\n", output.StatusLabel(string(f.Status)), f.Lines, f.Path)
	}
}
