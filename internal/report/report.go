// Package report renders scan results as the plain-text large-file report.
// The format is deliberately stable: the same tree always renders to the same
// bytes, whether printed to a console or persisted to a file.
package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/afero"

	"github.com/blackwell-systems/locwatch/internal/scanner"
)

// Render writes the report for res to w: a header naming the roots and
// thresholds, one line per unreadable file, then the findings from most to
// fewest lines.
func Render(w io.Writer, res *scanner.Result) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Checking files in %v (Warn: %d, Fail: %d)\n", res.Roots, res.WarnLimit, res.FailLimit)

	for _, e := range res.Errors {
		fmt.Fprintf(bw, "Error reading %s: %s\n", e.Path, e.Detail)
	}

	fmt.Fprintf(bw, "\nResults:\n")
	for _, f := range res.Findings {
		fmt.Fprintf(bw, "[%s] %d lines: %s\n", f.Status, f.Lines, f.Path)
	}

	return bw.Flush()
}

// WriteFile renders the report to the named file, truncating any previous
// report at that path.
func WriteFile(fsys afero.Fs, path string, res *scanner.Result) error {
	f, err := fsys.Create(path)
	if err != nil {
		return err
	}
	if err := Render(f, res); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
