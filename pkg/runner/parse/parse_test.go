package parse

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/evcal/pkg/app"
	"tableflip.dev/evcal/pkg/group"
)

func testCalendar() *app.Calendar {
	return app.New(app.Options{
		Groups: []group.Group{{Name: "personal", Color: "#00ff00", Visible: true}},
		Now:    func() time.Time { return time.Date(2026, time.October, 16, 9, 0, 0, 0, time.Local) },
	})
}

func TestInputLines(t *testing.T) {
	tests := map[string]struct {
		in      Input
		want    []string
		wantErr error
	}{
		"args form one command": {
			in:   Input{Args: []string{"tom", "birthday", "party"}},
			want: []string{"tom birthday party"},
		},
		"piped lines skip blanks and comments": {
			in:   Input{In: strings.NewReader("wed standup\n\n// later\n  14 deadline  \n")},
			want: []string{"wed standup", "14 deadline"},
		},
		"args win over piped input": {
			in:   Input{Args: []string{"tod", "x"}, In: strings.NewReader("wed standup\n")},
			want: []string{"tod x"},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := tc.in.Lines()
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
			if strings.Join(got, "|") != strings.Join(tc.want, "|") {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRunCollectsFailures(t *testing.T) {
	cal := testCalendar()
	res := Run(cal, []string{"fri lunch #personal", "lunch", "xyz lunch", "31 halloween"})

	if len(res.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(res.Events))
	}
	if res.Events[0].GroupName != "personal" || res.Events[0].Date.String() != "2026-10-16" {
		t.Fatalf("unexpected first event %+v", res.Events[0])
	}
	if len(res.Failures) != 2 || res.Failures[0].Line != "lunch" || res.Failures[1].Line != "xyz lunch" {
		t.Fatalf("unexpected failures %+v", res.Failures)
	}
	if got := len(cal.Events()); got != 2 {
		t.Fatalf("expected calendar to hold 2 events, got %d", got)
	}
}

func TestDoPretty(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	p := &Parse{
		Input:    Input{Args: []string{"tom", "birthday", "party", "#personal"}},
		Calendar: testCalendar(),
		Out:      &buf,
	}
	if err := p.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Parsed - 1 event") {
		t.Fatalf("missing title:\n%s", out)
	}
	if !strings.Contains(out, "2026-10-17  #personal  birthday party") {
		t.Fatalf("missing event row:\n%s", out)
	}
}

func TestDoJSONReportsFailures(t *testing.T) {
	var buf bytes.Buffer
	p := &Parse{
		Input:    Input{In: strings.NewReader("wed standup\n99 nope\n")},
		Calendar: testCalendar(),
		Format:   "json",
		Out:      &buf,
	}
	err := p.Do(context.Background())
	if err == nil || !strings.Contains(err.Error(), "1 of 2") {
		t.Fatalf("expected failure count error, got %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"title": "standup"`) || !strings.Contains(out, `"line": "99 nope"`) {
		t.Fatalf("unexpected json:\n%s", out)
	}
}
