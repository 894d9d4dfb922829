package calendar

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"tableflip.dev/evcal/pkg/grid"
	"tableflip.dev/evcal/pkg/tui/theme"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;:]*[A-Za-z~]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestRenderWeeksAndPlaceholders(t *testing.T) {
	today := time.Date(2026, time.October, 16, 0, 0, 0, 0, time.Local)
	m := grid.Build(today)
	opts := Options{Theme: theme.Default().Grid, CellWidth: 4, CellHeight: 1}

	out := stripANSI(Render(m, nil, today, today, opts))
	lines := strings.Split(out, "\n")
	if len(lines) != 6 {
		t.Fatalf("expected header plus 5 weeks, got %d:\n%s", len(lines), out)
	}
	if lines[0] != "Mon  Tue  Wed  Thu  Fri  Sat  Sun " {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if lines[1] != "28   29   30    1    2    3    4  " {
		t.Fatalf("unexpected first week %q", lines[1])
	}
	if lines[5] != "26   27   28   29   30   31    1  " {
		t.Fatalf("unexpected last week %q", lines[5])
	}
}

func TestRenderChips(t *testing.T) {
	today := time.Date(2026, time.October, 16, 0, 0, 0, 0, time.Local)
	m := grid.Build(today)
	chips := map[string][]Chip{
		"2026-10-14": {{Title: "work meeting", Color: "#ff0000"}},
		"2026-10-16": {
			{Title: "a", Color: "#ffffff"},
			{Title: "b", Color: "#ffffff"},
			{Title: "c", Color: "#ffffff"},
		},
		"2026-11-01": {{Title: "next month", Color: "nope"}},
	}
	opts := Options{Theme: theme.Default().Grid, CellWidth: 8, CellHeight: 3}

	out := stripANSI(Render(m, chips, today, today, opts))
	for _, want := range []string{" work m…", " next m…", " a      ", "+2 more"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, " c ") {
		t.Fatalf("third chip should be folded into the more line:\n%s", out)
	}
}

func TestFit(t *testing.T) {
	o := Fit(90, 31, 5, theme.Default().Grid)
	if o.CellWidth != 12 || o.CellHeight != 6 {
		t.Fatalf("unexpected fit %+v", o)
	}
	o = Fit(10, 3, 6, theme.Default().Grid)
	if o.CellWidth != minCellWidth || o.CellHeight != 1 {
		t.Fatalf("unexpected minimum fit %+v", o)
	}
}
