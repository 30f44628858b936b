package output

import (
	"strings"
	"testing"
)

func TestVisualLen_PlainText(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"hello", 5},
		{"", 0},
		{"abc def", 7},
	}

	for _, tc := range tests {
		got := visualLen(tc.input)
		if got != tc.want {
			t.Errorf("visualLen(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestVisualLen_StripsANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"bold", "\x1b[1mhello\x1b[0m", 5},
		{"color", "\x1b[31mred\x1b[0m", 3},
		{"multiple sequences", "\x1b[1m\x1b[34mblue bold\x1b[0m", 9},
		{"no ansi", "plain text", 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := visualLen(tc.input)
			if got != tc.want {
				t.Errorf("visualLen() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  int // expected length of output
	}{
		{"needs padding", "hi", 10, 10},
		{"exact width", "hello", 5, 5},
		{"over width", "toolong", 3, 7}, // no truncation
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := pad(tc.input, tc.width)
			if len(got) != tc.want {
				t.Errorf("pad(%q, %d) len = %d, want %d", tc.input, tc.width, len(got), tc.want)
			}
		})
	}
}

func TestTable_RenderAlignsColumns(t *testing.T) {
	SetNoColor(true)

	tbl := NewTable("Metric", "Value")
	tbl.AddRow("findings_total", "3")
	tbl.AddRow("max_lines", "910")

	lines := strings.Split(strings.TrimRight(tbl.Render(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header, separator, and 2 rows, got %d lines", len(lines))
	}

	// The first column is padded to the widest cell, so the second column
	// starts at the same offset in every data row.
	first := strings.Index(lines[2], "3")
	second := strings.Index(lines[3], "910")
	if first != second {
		t.Errorf("value column misaligned: offsets %d and %d\n%s", first, second, tbl.Render())
	}
}

func TestTable_MissingCellsRenderEmpty(t *testing.T) {
	SetNoColor(true)

	tbl := NewTable("A", "B", "C")
	tbl.AddRow("only-one")

	rendered := tbl.Render()
	if !strings.Contains(rendered, "only-one") {
		t.Errorf("expected row value in output:\n%s", rendered)
	}
}

func TestTable_EmptyHeaders(t *testing.T) {
	tbl := NewTable()
	if got := tbl.Render(); got != "" {
		t.Errorf("expected empty render for headerless table, got %q", got)
	}
}
