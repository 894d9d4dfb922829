package quick

import (
	"errors"
	"testing"
	"time"

	"tableflip.dev/evcal/pkg/group"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestParse(t *testing.T) {
	// Friday.
	today := time.Date(2026, time.October, 16, 15, 4, 5, 0, time.Local)

	tests := []struct {
		name      string
		line      string
		wantDate  time.Time
		wantTitle string
		wantGroup string
	}{{
		name:      "day later this month",
		line:      "20 deadline",
		wantDate:  day(2026, time.October, 20),
		wantTitle: "deadline",
		wantGroup: group.Default,
	}, {
		name:      "day already passed rolls to next month",
		line:      "14 deadline",
		wantDate:  day(2026, time.November, 14),
		wantTitle: "deadline",
		wantGroup: group.Default,
	}, {
		name:      "today's day number is today",
		line:      "16 standup",
		wantDate:  day(2026, time.October, 16),
		wantTitle: "standup",
		wantGroup: group.Default,
	}, {
		name:      "tod",
		line:      "tod lunch with sam",
		wantDate:  day(2026, time.October, 16),
		wantTitle: "lunch with sam",
		wantGroup: group.Default,
	}, {
		name:      "tom with group",
		line:      "tom birthday party #personal",
		wantDate:  day(2026, time.October, 17),
		wantTitle: "birthday party",
		wantGroup: "personal",
	}, {
		name:      "weekday later this week",
		line:      "sun brunch",
		wantDate:  day(2026, time.October, 18),
		wantTitle: "brunch",
		wantGroup: group.Default,
	}, {
		name:      "weekday already passed is next week",
		line:      "wed work meeting",
		wantDate:  day(2026, time.October, 21),
		wantTitle: "work meeting",
		wantGroup: group.Default,
	}, {
		name:      "weekday is today",
		line:      "Fri retro",
		wantDate:  day(2026, time.October, 16),
		wantTitle: "retro",
		wantGroup: group.Default,
	}, {
		name:      "weekday upper case",
		line:      "MON planning",
		wantDate:  day(2026, time.October, 19),
		wantTitle: "planning",
		wantGroup: group.Default,
	}, {
		name:      "only first tag is consumed",
		line:      "tom ship #work it #later",
		wantDate:  day(2026, time.October, 17),
		wantTitle: "ship it #later",
		wantGroup: "work",
	}, {
		name:      "extra whitespace collapses",
		line:      "  tom   a    b  ",
		wantDate:  day(2026, time.October, 17),
		wantTitle: "a b",
		wantGroup: group.Default,
	}, {
		name:      "bare hash keeps default group",
		line:      "tom call #",
		wantDate:  day(2026, time.October, 17),
		wantTitle: "call",
		wantGroup: group.Default,
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.line, today)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.line, err)
			}
			if !got.Date.Equal(tt.wantDate) {
				t.Errorf("date = %s, want %s", got.Date, tt.wantDate)
			}
			if got.Title != tt.wantTitle {
				t.Errorf("title = %q, want %q", got.Title, tt.wantTitle)
			}
			if got.Group != tt.wantGroup {
				t.Errorf("group = %q, want %q", got.Group, tt.wantGroup)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	today := time.Date(2026, time.October, 16, 12, 0, 0, 0, time.Local)

	tests := []struct {
		line string
		want error
	}{
		{line: "", want: ErrTooFewTokens},
		{line: "onlyone", want: ErrTooFewTokens},
		{line: "   tom   ", want: ErrTooFewTokens},
		{line: "someday later", want: ErrDateNotSpecified},
		{line: "wednesday meeting", want: ErrDateNotSpecified},
		{line: "32 nothing", want: ErrDayOutOfRange},
		{line: "0 nothing", want: ErrDayOutOfRange},
		{line: "-2 nothing", want: ErrDayOutOfRange},
		{line: "TOD standup", want: ErrDateNotSpecified},
		{line: "Tom party", want: ErrDateNotSpecified},
	}
	for _, tt := range tests {
		if _, err := Parse(tt.line, today); !errors.Is(err, tt.want) {
			t.Errorf("Parse(%q) error = %v, want %v", tt.line, err, tt.want)
		}
	}
}

func TestParseDayBeforeTodayUsesBeginningOfMonth(t *testing.T) {
	// Any date before the 14th targets the 14th of the same month.
	for d := 1; d < 14; d++ {
		today := time.Date(2026, time.February, d, 8, 0, 0, 0, time.Local)
		got, err := Parse("14 deadline", today)
		if err != nil {
			t.Fatalf("day %d: %v", d, err)
		}
		if !got.Date.Equal(day(2026, time.February, 14)) {
			t.Fatalf("day %d: got %s", d, got.Date)
		}
		if got.Group != group.Default || got.Title != "deadline" {
			t.Fatalf("day %d: unexpected %+v", d, got)
		}
	}
}

func TestParseDayMissingFromNextMonth(t *testing.T) {
	// January 31st, asking for the 30th rolls into February.
	today := time.Date(2027, time.January, 31, 9, 0, 0, 0, time.Local)
	if _, err := Parse("30 rent", today); !errors.Is(err, ErrDayOutOfRange) {
		t.Fatalf("expected ErrDayOutOfRange, got %v", err)
	}
	// 31 in a 30-day month.
	today = time.Date(2026, time.November, 2, 9, 0, 0, 0, time.Local)
	if _, err := Parse("31 rent", today); !errors.Is(err, ErrDayOutOfRange) {
		t.Fatalf("expected ErrDayOutOfRange, got %v", err)
	}
}

func TestResolveDateWeekdayOnSunday(t *testing.T) {
	// Sunday is the last day of a Monday-first week.
	sunday := time.Date(2026, time.October, 18, 10, 0, 0, 0, time.Local)
	got, err := ResolveDate("mon", sunday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := day(2026, time.October, 19); !got.Equal(want) {
		t.Fatalf("got %s, want %s", got, want)
	}
	got, err = ResolveDate("sun", sunday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(day(2026, time.October, 18)) {
		t.Fatalf("expected today, got %s", got)
	}
}

func TestResolveDateWeekCrossesMonth(t *testing.T) {
	// Friday October 30th; Sunday is November 1st.
	today := time.Date(2026, time.October, 30, 10, 0, 0, 0, time.Local)
	got, err := ResolveDate("sun", today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := day(2026, time.November, 1); !got.Equal(want) {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestParseDoesNotMutateInput(t *testing.T) {
	today := time.Date(2026, time.October, 16, 12, 0, 0, 0, time.Local)
	line := "tom a #g b"
	if _, err := Parse(line, today); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line != "tom a #g b" {
		t.Fatalf("input changed: %q", line)
	}
}
