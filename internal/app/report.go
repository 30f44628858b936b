package app

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/locwatch/internal/config"
	"github.com/blackwell-systems/locwatch/internal/output"
	"github.com/blackwell-systems/locwatch/internal/report"
	"github.com/blackwell-systems/locwatch/internal/scanner"
)

var reportFlagOutput string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Scan and write the large-file report to a file",
	Long: `Report runs the same scan as 'locwatch scan' but writes the plain-text
report to a file, overwriting any previous report at that path.`,
	RunE: runReport,
}

func init() {
	addScanFlags(reportCmd)
	reportCmd.Flags().StringVar(&reportFlagOutput, "output", "", "Report file path (default: "+config.DefaultReportFile+")")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	fsys := afero.NewOsFs()
	res := scanner.Scan(fsys, scanOptions(cfg), logE)

	outPath := cfg.ReportFile
	if reportFlagOutput != "" {
		outPath = reportFlagOutput
	}

	if err := report.WriteFile(fsys, outPath, res); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	fmt.Printf("%s %s (%d findings, %d warn, %d fail)\n",
		output.StyleSuccess.Render("Report written to"),
		outPath, len(res.Findings), res.WarnCount(), res.FailCount())
	return nil
}
