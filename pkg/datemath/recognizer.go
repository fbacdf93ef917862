package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Recognizer finds date/time phrases in free text and resolves them to
// absolute time.Time values in a fixed timezone.
type Recognizer struct {
	location *time.Location
}

// NewRecognizer creates a recognizer for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewRecognizer(timezone string) (*Recognizer, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Recognizer{location: loc}, nil
}

// Location returns the recognizer's timezone.
func (r *Recognizer) Location() *time.Location {
	return r.location
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Ordered most-specific-first: "day after tomorrow" must win over "tomorrow".
var datePhrases = []struct {
	re      *regexp.Regexp
	resolve func(r *Recognizer, m []string, base time.Time) (time.Time, bool)
}{
	{
		re: regexp.MustCompile(`\bday after tomorrow\b`),
		resolve: func(r *Recognizer, m []string, base time.Time) (time.Time, bool) {
			return r.startOfDay(base.AddDate(0, 0, 2)), true
		},
	},
	{
		re: regexp.MustCompile(`\btomorrow\b`),
		resolve: func(r *Recognizer, m []string, base time.Time) (time.Time, bool) {
			return r.startOfDay(base.AddDate(0, 0, 1)), true
		},
	},
	{
		re: regexp.MustCompile(`\b(?:today|tonight)\b`),
		resolve: func(r *Recognizer, m []string, base time.Time) (time.Time, bool) {
			return r.startOfDay(base), true
		},
	},
	{
		re: regexp.MustCompile(`\bin (\d+) (day|days|week|weeks|month|months)\b`),
		resolve: func(r *Recognizer, m []string, base time.Time) (time.Time, bool) {
			amount, _ := strconv.Atoi(m[1])
			switch {
			case strings.HasPrefix(m[2], "day"):
				return r.startOfDay(base.AddDate(0, 0, amount)), true
			case strings.HasPrefix(m[2], "week"):
				return r.startOfDay(base.AddDate(0, 0, amount*7)), true
			default:
				return r.startOfDay(base.AddDate(0, amount, 0)), true
			}
		},
	},
	{
		re: regexp.MustCompile(`\bnext (monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`),
		resolve: func(r *Recognizer, m []string, base time.Time) (time.Time, bool) {
			// "next friday" is always strictly after today
			return r.upcomingWeekday(base, weekdays[m[1]], true), true
		},
	},
	{
		re: regexp.MustCompile(`\b(?:on |this )?(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`),
		resolve: func(r *Recognizer, m []string, base time.Time) (time.Time, bool) {
			// bare weekday resolves to the nearest one, today included
			return r.upcomingWeekday(base, weekdays[m[1]], false), true
		},
	},
}

// clockRe matches "at 2pm", "2:30pm", "at 14:30". Meridiem variant first so
// "at 2pm" is not consumed as a bare 24h hour.
var clockRe = regexp.MustCompile(`\b(?:at\s+)?(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b|\bat\s+(\d{1,2})(?::(\d{2}))?\b`)

// Match is one recognized absolute time.
type Match struct {
	Start    time.Time
	HasClock bool // false when only a calendar day was recognized
}

// Extract scans lowercased text for the first recognizable date and/or clock
// phrase and resolves it against base. The first phrase in pattern order wins.
// Returns false when the text carries no temporal signal at all.
func (r *Recognizer) Extract(text string, base time.Time) (Match, bool) {
	text = strings.ToLower(text)
	base = base.In(r.location)

	day := r.startOfDay(base)
	dateFound := false
	for _, p := range datePhrases {
		if m := p.re.FindStringSubmatch(text); m != nil {
			if resolved, ok := p.resolve(r, m, base); ok {
				day = resolved
				dateFound = true
			}
			break
		}
	}

	hour, minute, clockFound := extractClock(text)
	if !dateFound && !clockFound {
		return Match{}, false
	}

	if !clockFound {
		return Match{Start: day, HasClock: false}, true
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, r.location)
	return Match{Start: start, HasClock: true}, true
}

func extractClock(text string) (hour, minute int, ok bool) {
	m := clockRe.FindStringSubmatch(text)
	if m == nil {
		return 0, 0, false
	}

	if m[1] != "" {
		hour, _ = strconv.Atoi(m[1])
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		if m[3] == "pm" && hour != 12 {
			hour += 12
		}
		if m[3] == "am" && hour == 12 {
			hour = 0
		}
	} else {
		hour, _ = strconv.Atoi(m[4])
		if m[5] != "" {
			minute, _ = strconv.Atoi(m[5])
		}
	}

	if hour > 23 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

// upcomingWeekday finds the next occurrence of target after base.
// When strict, a base falling on target jumps a full week ahead.
func (r *Recognizer) upcomingWeekday(base time.Time, target time.Weekday, strict bool) time.Time {
	daysUntil := int(target - base.Weekday())
	if daysUntil < 0 || (strict && daysUntil == 0) {
		daysUntil += 7
	}
	return r.startOfDay(base.AddDate(0, 0, daysUntil))
}

// startOfDay returns midnight at the start of the given day in the
// recognizer's timezone.
func (r *Recognizer) startOfDay(t time.Time) time.Time {
	t = t.In(r.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, r.location)
}

// EndOfDay returns 23:59:59 of the day containing t. Date-only matches use
// this as their effective deadline.
func (r *Recognizer) EndOfDay(t time.Time) time.Time {
	day := r.startOfDay(t)
	return day.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
