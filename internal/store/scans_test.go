package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestOpen_CreatesDatabaseOnDisk(t *testing.T) {
	db, err := Open(t.TempDir() + "/history/locwatch.db")
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	// Migrations ran on open.
	latest, err := db.GetLatestScan()
	require.NoError(t, err)
	require.Nil(t, latest)
}

func TestCreateScan_RoundTrip(t *testing.T) {
	db := openTestDB(t)

	id, err := db.CreateScan("src,lib", 500, 700, "test")
	require.NoError(t, err)
	require.Greater(t, id, int64(0))

	s, err := db.GetScan(id)
	require.NoError(t, err)
	require.NotNil(t, s)
	require.Equal(t, "src,lib", s.Roots)
	require.Equal(t, 500, s.WarnLimit)
	require.Equal(t, 700, s.FailLimit)
	require.Equal(t, "test", s.Version)
	require.False(t, s.TakenAt.IsZero())
}

func TestGetLatestScan_Empty(t *testing.T) {
	db := openTestDB(t)

	s, err := db.GetLatestScan()
	require.NoError(t, err)
	require.Nil(t, s)
}

func TestGetScanN_WalksHistoryBackwards(t *testing.T) {
	db := openTestDB(t)

	first, err := db.CreateScan("src", 500, 700, "test")
	require.NoError(t, err)
	second, err := db.CreateScan("src", 500, 700, "test")
	require.NoError(t, err)

	latest, err := db.GetScanN(1)
	require.NoError(t, err)
	require.Equal(t, second, latest.ID)

	previous, err := db.GetScanN(2)
	require.NoError(t, err)
	require.Equal(t, first, previous.ID)

	missing, err := db.GetScanN(3)
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestInsertMetric_OrderedByName(t *testing.T) {
	db := openTestDB(t)

	id, err := db.CreateScan("src", 500, 700, "test")
	require.NoError(t, err)

	require.NoError(t, db.InsertMetric(id, "max_lines", 910))
	require.NoError(t, db.InsertMetric(id, "findings_total", 3))

	metrics, err := db.GetMetrics(id)
	require.NoError(t, err)
	require.Len(t, metrics, 2)
	require.Equal(t, "findings_total", metrics[0].Name)
	require.Equal(t, 3.0, metrics[0].Value)
	require.Equal(t, "max_lines", metrics[1].Name)
	require.Equal(t, 910.0, metrics[1].Value)
}

func TestInsertFinding_WorstFirst(t *testing.T) {
	db := openTestDB(t)

	id, err := db.CreateScan("src", 500, 700, "test")
	require.NoError(t, err)

	require.NoError(t, db.InsertFinding(&FindingRow{ScanID: id, Path: "src/b.ts", Lines: 512, Status: "WARN"}))
	require.NoError(t, db.InsertFinding(&FindingRow{ScanID: id, Path: "src/a.tsx", Lines: 910, Status: "FAIL"}))

	findings, err := db.GetFindings(id)
	require.NoError(t, err)
	require.Len(t, findings, 2)
	require.Equal(t, "src/a.tsx", findings[0].Path)
	require.Equal(t, 910, findings[0].Lines)
	require.Equal(t, "FAIL", findings[0].Status)
	require.Equal(t, "src/b.ts", findings[1].Path)
}

func TestGetMetrics_ScopedToScan(t *testing.T) {
	db := openTestDB(t)

	first, err := db.CreateScan("src", 500, 700, "test")
	require.NoError(t, err)
	second, err := db.CreateScan("src", 500, 700, "test")
	require.NoError(t, err)

	require.NoError(t, db.InsertMetric(first, "findings_total", 5))
	require.NoError(t, db.InsertMetric(second, "findings_total", 2))

	metrics, err := db.GetMetrics(second)
	require.NoError(t, err)
	require.Len(t, metrics, 1)
	require.Equal(t, 2.0, metrics[0].Value)
}
