// Package config provides configuration defaults and loading for locwatch.
package config

// DefaultRoots are the default directories to scan.
var DefaultRoots = []string{"src"}

// DefaultWarnLimit is the exclusive line-count boundary for WARN findings.
const DefaultWarnLimit = 500

// DefaultFailLimit is the exclusive line-count boundary for FAIL findings.
const DefaultFailLimit = 700

// DefaultExtensions are the file-name suffixes included in a scan.
var DefaultExtensions = []string{".js", ".ts", ".jsx", ".tsx", ".mjs", ".cjs", ".css", ".html"}

// DefaultExcludeDirs are directory names pruned from the walk. Dependency
// caches and VCS metadata are never worth counting.
var DefaultExcludeDirs = []string{"node_modules", ".git"}

// DefaultReportFile is the report path used by 'locwatch report'.
const DefaultReportFile = "large_files_report.txt"

// DefaultConfigDir is the directory holding locwatch's own data.
const DefaultConfigDir = "~/.config/locwatch"

// DefaultDBName is the filename for the scan-history SQLite database.
const DefaultDBName = "locwatch.db"
