package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/locwatch/internal/config"
	"github.com/blackwell-systems/locwatch/internal/output"
	"github.com/blackwell-systems/locwatch/internal/scanner"
	"github.com/blackwell-systems/locwatch/internal/store"
)

var (
	trackCompare int
	trackJSON    bool
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Snapshot scan results and compare against previous runs",
	Long: `Track runs a scan with the configured defaults, stores the findings and
summary metrics as a new snapshot, and shows how the numbers moved since the
previous snapshot. Snapshots only feed this comparison view; scans never read
from them.`,
	RunE: runTrack,
}

func init() {
	trackCmd.Flags().IntVar(&trackCompare, "compare", 1, "Compare against Nth previous snapshot (1 = most recent)")
	trackCmd.Flags().BoolVar(&trackJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(trackCmd)
}

func runTrack(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	res := scanner.Scan(afero.NewOsFs(), scanner.Options{
		Roots:       cfg.Roots,
		WarnLimit:   cfg.WarnLimit,
		FailLimit:   cfg.FailLimit,
		Extensions:  cfg.Extensions,
		ExcludeDirs: cfg.ExcludeDirs,
	}, logE)

	scanID, err := db.CreateScan(strings.Join(res.Roots, ","), res.WarnLimit, res.FailLimit, appVersion)
	if err != nil {
		return fmt.Errorf("creating snapshot: %w", err)
	}

	for _, f := range res.Findings {
		row := &store.FindingRow{
			ScanID: scanID,
			Path:   f.Path,
			Lines:  f.Lines,
			Status: string(f.Status),
		}
		if err := db.InsertFinding(row); err != nil {
			return fmt.Errorf("inserting finding: %w", err)
		}
	}

	for _, m := range buildMetrics(res) {
		if err := db.InsertMetric(scanID, m.Name, m.Value); err != nil {
			return fmt.Errorf("inserting metric %s: %w", m.Name, err)
		}
	}

	current, err := db.GetScan(scanID)
	if err != nil {
		return fmt.Errorf("loading current snapshot: %w", err)
	}

	// trackCompare=1 means compare against the immediate predecessor
	// (offset 2 from newest, since the new snapshot is already stored).
	previous, err := db.GetScanN(trackCompare + 1)
	if err != nil {
		return fmt.Errorf("loading previous snapshot: %w", err)
	}

	var diff *store.ScanDiff
	if previous != nil {
		prevMetrics, err := db.GetMetrics(previous.ID)
		if err != nil {
			return fmt.Errorf("loading previous metrics: %w", err)
		}
		currMetrics, err := db.GetMetrics(scanID)
		if err != nil {
			return fmt.Errorf("loading current metrics: %w", err)
		}
		diff = &store.ScanDiff{
			Previous: previous,
			Current:  current,
			Deltas:   computeDeltas(prevMetrics, currMetrics),
		}
	}

	if trackJSON || flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Scan *store.ScanRecord `json:"scan"`
			Diff *store.ScanDiff   `json:"diff,omitempty"`
		}{Scan: current, Diff: diff})
	}

	renderTrack(res, current, diff)
	return nil
}

// buildMetrics flattens a scan result into the summary metrics persisted per
// snapshot. Order is fixed so inserts and renders are deterministic.
func buildMetrics(res *scanner.Result) []store.MetricRow {
	return []store.MetricRow{
		{Name: "files_scanned", Value: float64(res.FilesScanned)},
		{Name: "findings_fail", Value: float64(res.FailCount())},
		{Name: "findings_total", Value: float64(len(res.Findings))},
		{Name: "findings_warn", Value: float64(res.WarnCount())},
		{Name: "max_lines", Value: float64(res.MaxLines())},
		{Name: "read_errors", Value: float64(len(res.Errors))},
	}
}

// computeDeltas pairs previous and current metrics by name. Metrics present
// on only one side are treated as zero on the other.
func computeDeltas(prev, curr []store.MetricRow) []store.MetricDelta {
	prevByName := make(map[string]float64, len(prev))
	for _, m := range prev {
		prevByName[m.Name] = m.Value
	}

	deltas := make([]store.MetricDelta, 0, len(curr))
	for _, m := range curr {
		p := prevByName[m.Name]
		deltas = append(deltas, store.MetricDelta{
			Name:     m.Name,
			Previous: p,
			Current:  m.Value,
			Delta:    m.Value - p,
		})
	}
	return deltas
}

func renderTrack(res *scanner.Result, current *store.ScanRecord, diff *store.ScanDiff) {
	fmt.Println(output.Section("Large-File Trend"))
	fmt.Println()

	if diff == nil {
		fmt.Printf(" First snapshot recorded (#%d).\n\n", current.ID)
		tbl := output.NewTable("Metric", "Value")
		for _, m := range buildMetrics(res) {
			tbl.AddRow(m.Name, fmt.Sprintf("%.0f", m.Value))
		}
		fmt.Print(tbl.Render())
		return
	}

	fmt.Printf(" Snapshot #%d vs #%d (%s)\n\n",
		current.ID, diff.Previous.ID,
		output.StyleMuted.Render(diff.Previous.TakenAt.Local().Format("2006-01-02 15:04")))

	tbl := output.NewTable("Metric", "Previous", "Current", "Trend")
	for _, d := range diff.Deltas {
		// Rising counts are regressions here, so downward deltas render green.
		tbl.AddRow(
			d.Name,
			fmt.Sprintf("%.0f", d.Previous),
			fmt.Sprintf("%.0f", d.Current),
			output.TrendArrow(d.Delta, false),
		)
	}
	fmt.Print(tbl.Render())
}
