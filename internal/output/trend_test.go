package output

import (
	"strings"
	"testing"
)

func TestTrendArrow_Zero(t *testing.T) {
	SetNoColor(true)

	if got := TrendArrow(0, false); got != "─" {
		t.Errorf("TrendArrow(0) = %q, want dash", got)
	}
}

func TestTrendArrow_Directions(t *testing.T) {
	SetNoColor(true)

	tests := []struct {
		name  string
		delta float64
		want  string
	}{
		{"rising", 3, "▲ +3"},
		{"falling", -2, "▼ -2"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := TrendArrow(tc.delta, false)
			if got != tc.want {
				t.Errorf("TrendArrow(%v) = %q, want %q", tc.delta, got, tc.want)
			}
		})
	}
}

func TestStatusLabel(t *testing.T) {
	SetNoColor(true)

	if got := StatusLabel("FAIL"); got != "FAIL" {
		t.Errorf("StatusLabel(FAIL) = %q", got)
	}
	if got := StatusLabel("WARN"); got != "WARN" {
		t.Errorf("StatusLabel(WARN) = %q", got)
	}
}

func TestSection_ContainsTitle(t *testing.T) {
	SetNoColor(true)

	got := Section("Large-File Trend")
	if !strings.Contains(got, "Large-File Trend") {
		t.Errorf("Section missing title: %q", got)
	}
	if !strings.Contains(got, "─") {
		t.Errorf("Section missing rule: %q", got)
	}
}
