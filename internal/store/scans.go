package store

import (
	"database/sql"
	"time"
)

// CreateScan inserts a new scan record and returns its ID.
func (db *DB) CreateScan(roots string, warnLimit, failLimit int, version string) (int64, error) {
	result, err := db.conn.Exec(
		"INSERT INTO scans (taken_at, roots, warn_limit, fail_limit, version) VALUES (?, ?, ?, ?, ?)",
		time.Now().UTC().Format(time.RFC3339), roots, warnLimit, failLimit, version,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// GetLatestScan returns the most recent scan record, or nil if none exist.
func (db *DB) GetLatestScan() (*ScanRecord, error) {
	row := db.conn.QueryRow(
		"SELECT id, taken_at, roots, warn_limit, fail_limit, version FROM scans ORDER BY id DESC LIMIT 1",
	)
	return scanRecord(row)
}

// GetScan returns a scan record by ID.
func (db *DB) GetScan(id int64) (*ScanRecord, error) {
	row := db.conn.QueryRow(
		"SELECT id, taken_at, roots, warn_limit, fail_limit, version FROM scans WHERE id = ?", id,
	)
	return scanRecord(row)
}

// GetScanN returns the Nth most recent scan (1 = latest, 2 = previous, etc.).
func (db *DB) GetScanN(n int) (*ScanRecord, error) {
	row := db.conn.QueryRow(
		"SELECT id, taken_at, roots, warn_limit, fail_limit, version FROM scans ORDER BY id DESC LIMIT 1 OFFSET ?",
		n-1,
	)
	return scanRecord(row)
}

func scanRecord(row *sql.Row) (*ScanRecord, error) {
	var s ScanRecord
	var takenAt string
	err := row.Scan(&s.ID, &takenAt, &s.Roots, &s.WarnLimit, &s.FailLimit, &s.Version)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
	return &s, nil
}

// InsertFinding inserts a finding row for a scan.
func (db *DB) InsertFinding(f *FindingRow) error {
	_, err := db.conn.Exec(
		"INSERT INTO findings (scan_id, path, lines, status) VALUES (?, ?, ?, ?)",
		f.ScanID, f.Path, f.Lines, f.Status,
	)
	return err
}

// InsertMetric inserts a summary metric for a scan.
func (db *DB) InsertMetric(scanID int64, name string, value float64) error {
	_, err := db.conn.Exec(
		"INSERT INTO scan_metrics (scan_id, metric_name, metric_value) VALUES (?, ?, ?)",
		scanID, name, value,
	)
	return err
}

// GetMetrics returns all summary metrics for a scan, ordered by name so
// rendering is deterministic.
func (db *DB) GetMetrics(scanID int64) ([]MetricRow, error) {
	rows, err := db.conn.Query(
		"SELECT metric_name, metric_value FROM scan_metrics WHERE scan_id = ? ORDER BY metric_name",
		scanID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var metrics []MetricRow
	for rows.Next() {
		var m MetricRow
		if err := rows.Scan(&m.Name, &m.Value); err != nil {
			return nil, err
		}
		metrics = append(metrics, m)
	}
	return metrics, rows.Err()
}

// GetFindings returns all findings for a scan, worst first.
func (db *DB) GetFindings(scanID int64) ([]FindingRow, error) {
	rows, err := db.conn.Query(
		"SELECT id, scan_id, path, lines, status FROM findings WHERE scan_id = ? ORDER BY lines DESC, id ASC",
		scanID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var findings []FindingRow
	for rows.Next() {
		var f FindingRow
		if err := rows.Scan(&f.ID, &f.ScanID, &f.Path, &f.Lines, &f.Status); err != nil {
			return nil, err
		}
		findings = append(findings, f)
	}
	return findings, rows.Err()
}
