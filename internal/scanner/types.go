// Package scanner implements the large-file scan: a single synchronous walk
// over the configured roots that counts lines in matching source files and
// classifies everything over the warn threshold.
package scanner

// Status labels a finding's severity. FAIL is strictly worse than WARN and
// means the fail threshold was exceeded, not just the warn threshold.
type Status string

const (
	// StatusWarn marks files over the warn limit but not the fail limit.
	StatusWarn Status = "WARN"

	// StatusFail marks files over the fail limit.
	StatusFail Status = "FAIL"
)

// Finding records one file whose line count exceeded the warn threshold.
type Finding struct {
	// Lines is the number of lines counted in the file.
	Lines int `json:"lines"`

	// Status is WARN or FAIL.
	Status Status `json:"status"`

	// Path is the file's path as traversed.
	Path string `json:"path"`
}

// ReadError records a file that could not be opened or read. The scan reports
// it alongside the findings and moves on; nothing is fatal at the per-file
// level.
type ReadError struct {
	Path   string `json:"path"`
	Detail string `json:"detail"`
}

// Options controls one scan. Everything that was a literal constant in early
// versions of this tool is injectable here; internal/config supplies the
// defaults. An empty Extensions list matches nothing.
type Options struct {
	// Roots are the directories to walk. A root that does not exist simply
	// contributes no files.
	Roots []string

	// WarnLimit is the exclusive line-count boundary for WARN findings.
	WarnLimit int

	// FailLimit is the exclusive line-count boundary for FAIL findings.
	// A file with exactly FailLimit lines is WARN, not FAIL.
	FailLimit int

	// Extensions are the file-name suffixes to include.
	Extensions []string

	// ExcludeDirs are directory names pruned from the walk before descent.
	ExcludeDirs []string
}

// Result is the outcome of one scan invocation. Findings are sorted from most
// to fewest lines; ties keep traversal order.
type Result struct {
	Roots        []string    `json:"roots"`
	WarnLimit    int         `json:"warn_limit"`
	FailLimit    int         `json:"fail_limit"`
	Findings     []Finding   `json:"findings"`
	Errors       []ReadError `json:"errors,omitempty"`
	FilesScanned int         `json:"files_scanned"`
}

// WarnCount returns the number of WARN findings.
func (r *Result) WarnCount() int {
	n := 0
	for _, f := range r.Findings {
		if f.Status == StatusWarn {
			n++
		}
	}
	return n
}

// FailCount returns the number of FAIL findings.
func (r *Result) FailCount() int {
	n := 0
	for _, f := range r.Findings {
		if f.Status == StatusFail {
			n++
		}
	}
	return n
}

// MaxLines returns the largest line count across all findings, or 0 when
// there are none. Findings are sorted worst-first, so this is the head.
func (r *Result) MaxLines() int {
	if len(r.Findings) == 0 {
		return 0
	}
	return r.Findings[0].Lines
}
