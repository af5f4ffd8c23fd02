package cli

import (
	"bytes"
	"strings"
	"testing"
)

// captureStdout redirects status output for the duration of the test.
func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = prev })
	return &buf
}

func TestPrintStats(t *testing.T) {
	tests := []struct {
		name     string
		items    int
		sections int
		overlaps int
		cached   bool
		want     []string
		notWant  []string
	}{
		{"fresh", 5, 2, 0, false, []string{"5 items", "2 sections", "fresh"}, []string{"overlapping"}},
		{"cached singular", 1, 1, 1, true, []string{"1 item ", "1 section ", "1 overlapping pair", "cached"}, []string{"fresh"}},
		{"overlaps", 4, 1, 3, false, []string{"3 overlapping pairs"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureStdout(t)
			printStats(tt.items, tt.sections, tt.overlaps, tt.cached)
			out := buf.String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output %q missing %q", out, w)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(out, w) {
					t.Errorf("output %q contains %q", out, w)
				}
			}
		})
	}
}

func TestStatusLines(t *testing.T) {
	buf := captureStdout(t)
	printSuccess("Rendered %s", "team")
	printWarning("only %d of %d", 1, 2)
	printFile("out/team.svg")
	printNextStep("Render", "ringlayout render team.toml")

	out := buf.String()
	for _, want := range []string{"Rendered team", "only 1 of 2", "out/team.svg", "ringlayout render team.toml"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if got := strings.Count(out, "\n"); got != 4 {
		t.Errorf("got %d lines, want 4", got)
	}
}
