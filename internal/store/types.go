// Package store provides SQLite persistence for locwatch scan history.
// History is write-and-compare only: 'locwatch track' records snapshots and
// diffs them, and the scanner itself never reads from here.
package store

import "time"

// ScanRecord is a point-in-time record of one tracked scan.
type ScanRecord struct {
	ID        int64     `json:"id"`
	TakenAt   time.Time `json:"taken_at"`
	Roots     string    `json:"roots"`
	WarnLimit int       `json:"warn_limit"`
	FailLimit int       `json:"fail_limit"`
	Version   string    `json:"version"`
}

// FindingRow is one persisted finding within a scan.
type FindingRow struct {
	ID     int64  `json:"id"`
	ScanID int64  `json:"scan_id"`
	Path   string `json:"path"`
	Lines  int    `json:"lines"`
	Status string `json:"status"`
}

// MetricRow is a named summary metric within a scan.
type MetricRow struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// ScanDiff is the comparison between two scans.
type ScanDiff struct {
	Previous *ScanRecord   `json:"previous"`
	Current  *ScanRecord   `json:"current"`
	Deltas   []MetricDelta `json:"deltas"`
}

// MetricDelta is the change in a single metric between scans.
type MetricDelta struct {
	Name     string  `json:"name"`
	Previous float64 `json:"previous"`
	Current  float64 `json:"current"`
	Delta    float64 `json:"delta"`
}
