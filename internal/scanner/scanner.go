package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Scan walks every root in opts, counts lines in files whose names end with
// one of the configured extensions, and returns a finding for each file over
// the warn limit. Excluded directories are pruned before descent, so their
// contents are never visited. A file that cannot be read is recorded on the
// Result and skipped; the walk never aborts because of one file.
func Scan(fsys afero.Fs, opts Options, logE *logrus.Entry) *Result {
	res := &Result{
		Roots:     opts.Roots,
		WarnLimit: opts.WarnLimit,
		FailLimit: opts.FailLimit,
	}

	excluded := make(map[string]struct{}, len(opts.ExcludeDirs))
	for _, d := range opts.ExcludeDirs {
		excluded[d] = struct{}{}
	}

	for _, root := range opts.Roots {
		walkRoot(fsys, root, opts, excluded, res, logE)
	}

	// Most lines first. Ties keep traversal order so repeat runs over an
	// unchanged tree render identical reports.
	sort.SliceStable(res.Findings, func(i, j int) bool {
		return res.Findings[i].Lines > res.Findings[j].Lines
	})

	return res
}

// walkRoot scans a single root directory into res.
func walkRoot(fsys afero.Fs, root string, opts Options, excluded map[string]struct{}, res *Result, logE *logrus.Entry) {
	err := afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// A root that does not exist yields no files; unreadable
			// directories deeper in the tree are skipped the same way.
			logE.WithField("path", path).WithError(err).Debug("skipping unwalkable path")
			return nil
		}

		if info.IsDir() {
			// The root itself is never pruned, even if its name matches.
			if path != root {
				if _, ok := excluded[info.Name()]; ok {
					logE.WithField("dir", path).Debug("pruning excluded directory")
					return filepath.SkipDir
				}
			}
			return nil
		}

		if !matchesExtension(info.Name(), opts.Extensions) {
			return nil
		}

		res.FilesScanned++
		lines, err := countLines(fsys, path)
		if err != nil {
			logE.WithField("path", path).WithError(err).Debug("unreadable file")
			res.Errors = append(res.Errors, ReadError{Path: path, Detail: err.Error()})
			return nil
		}

		if lines > opts.WarnLimit {
			status := StatusWarn
			if lines > opts.FailLimit {
				status = StatusFail
			}
			res.Findings = append(res.Findings, Finding{Lines: lines, Status: status, Path: path})
		}
		return nil
	})
	if err != nil {
		logE.WithField("root", root).WithError(err).Debug("walk ended early")
	}
}

// matchesExtension reports whether name ends with one of the given suffixes.
func matchesExtension(name string, extensions []string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
