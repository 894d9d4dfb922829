// Package quick parses the one-line quick-create syntax:
//
//	<date-token> <word>... [#<group>]
//
// for example "wed work meeting", "tom birthday party #personal" or
// "14 deadline".
package quick

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/evcal/pkg/event"
	"tableflip.dev/evcal/pkg/grid"
	"tableflip.dev/evcal/pkg/group"
)

var (
	// ErrTooFewTokens is returned for input with fewer than two tokens.
	ErrTooFewTokens = errors.New("too few arguments to process command (>=2 required)")
	// ErrDateNotSpecified is returned when the first token is not a date.
	ErrDateNotSpecified = errors.New("date not specified")
	// ErrDayOutOfRange is returned for a day number the target month lacks.
	ErrDayOutOfRange = errors.New("day out of range")
)

var weekdays = map[string]time.Weekday{
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
	"sun": time.Sunday,
}

// Command is a successfully parsed quick-create line.
type Command struct {
	Title string    `json:"title" yaml:"title"`
	Date  time.Time `json:"date" yaml:"date"`
	Group string    `json:"group" yaml:"group"`
}

// Event converts the command into a new event record.
func (c Command) Event() *event.Event {
	return event.New(c.Title, c.Date, c.Group)
}

// Parse resolves line against today. On error nothing about the input is
// consumed and the caller should leave its buffer untouched.
func Parse(line string, today time.Time) (Command, error) {
	args := strings.Fields(line)
	if len(args) < 2 {
		return Command{}, ErrTooFewTokens
	}

	date, err := ResolveDate(args[0], today)
	if err != nil {
		return Command{}, err
	}

	target := group.Default
	words := args[1:]
	for i, w := range words {
		if strings.HasPrefix(w, "#") {
			if tag := w[1:]; tag != "" {
				target = tag
			}
			words = append(words[:i:i], words[i+1:]...)
			break
		}
	}

	return Command{
		Title: strings.Join(words, " "),
		Date:  date,
		Group: target,
	}, nil
}

// ResolveDate turns a date token into a calendar day at local midnight.
//
// Integers name a day of the current month, or of the next month when that
// day already passed. "tod" and "tom" (lower case only) are today and
// tomorrow. Weekday
// abbreviations pick the day within the Monday-first week containing today,
// or the following week when that day already passed.
func ResolveDate(token string, today time.Time) (time.Time, error) {
	today = grid.Midnight(today)

	if d, err := strconv.Atoi(token); err == nil {
		return resolveDay(d, today)
	}

	switch token {
	case "tod":
		return today, nil
	case "tom":
		return today.AddDate(0, 0, 1), nil
	}

	wd, ok := weekdays[strings.ToLower(token)]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %q", ErrDateNotSpecified, token)
	}
	monday := today.AddDate(0, 0, -grid.WeekdayIndex(today.Weekday()))
	target := monday.AddDate(0, 0, grid.WeekdayIndex(wd))
	// Compares whole dates rather than day numbers, so a week that spans
	// two months still resolves to this week.
	if target.Before(today) {
		target = target.AddDate(0, 0, 7)
	}
	return target, nil
}

func resolveDay(d int, today time.Time) (time.Time, error) {
	month := grid.FirstOfMonth(today)
	if d < today.Day() {
		month = grid.AddMonths(month, 1)
	}
	if d < 1 || d > grid.DaysIn(month) {
		return time.Time{}, fmt.Errorf("%w: %d in %s", ErrDayOutOfRange, d, month.Format("January 2006"))
	}
	return time.Date(month.Year(), month.Month(), d, 0, 0, 0, 0, today.Location()), nil
}
