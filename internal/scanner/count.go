package scanner

import (
	"bytes"
	"io"

	"github.com/spf13/afero"
)

// countLines counts line-terminated records in the file at path: the number
// of newline bytes, plus one when a non-empty file does not end with a
// newline. Reading is byte-oriented, so malformed encodings count toward the
// total instead of failing the file.
func countLines(fsys afero.Fs, path string) (int, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return 0, err
	}
	defer func() { _ = f.Close() }()

	buf := make([]byte, 64*1024)
	lines := 0
	var last byte
	empty := true

	for {
		n, err := f.Read(buf)
		if n > 0 {
			empty = false
			lines += bytes.Count(buf[:n], []byte{'\n'})
			last = buf[n-1]
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
	}

	if !empty && last != '\n' {
		lines++
	}
	return lines, nil
}
