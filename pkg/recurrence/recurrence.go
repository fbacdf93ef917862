package recurrence

import (
	"fmt"
	"time"

	rrule "github.com/teambition/rrule-go"
)

// Options holds the rule fields the scheduler can produce from parsed text.
// Zero-valued fields are omitted from the generated rule.
type Options struct {
	Freq       string // DAILY | WEEKLY | MONTHLY | YEARLY
	Interval   int    // default 1
	ByWeekday  []time.Weekday
	ByMonth    []int
	ByMonthDay []int
	BySetPos   []int
	ByHour     []int
}

var frequencies = map[string]rrule.Frequency{
	"DAILY":   rrule.DAILY,
	"WEEKLY":  rrule.WEEKLY,
	"MONTHLY": rrule.MONTHLY,
	"YEARLY":  rrule.YEARLY,
}

var rruleWeekdays = map[time.Weekday]rrule.Weekday{
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
	time.Sunday:    rrule.SU,
}

// Build serializes Options into an RFC5545 RRULE string.
func Build(opt Options) (string, error) {
	freq, ok := frequencies[opt.Freq]
	if !ok {
		return "", fmt.Errorf("unknown frequency %q", opt.Freq)
	}

	ro := rrule.ROption{Freq: freq}
	if opt.Interval > 1 {
		ro.Interval = opt.Interval
	}
	for _, wd := range opt.ByWeekday {
		rw, ok := rruleWeekdays[wd]
		if !ok {
			return "", fmt.Errorf("unknown weekday %v", wd)
		}
		ro.Byweekday = append(ro.Byweekday, rw)
	}
	ro.Bymonth = opt.ByMonth
	ro.Bymonthday = opt.ByMonthDay
	ro.Bysetpos = opt.BySetPos
	ro.Byhour = opt.ByHour

	r, err := rrule.NewRRule(ro)
	if err != nil {
		return "", fmt.Errorf("build rule: %w", err)
	}
	return r.String(), nil
}

// Expand enumerates the occurrence timestamps of ruleStr anchored at from,
// through until. Both bounds are inclusive, results are chronological.
func Expand(ruleStr string, from, until time.Time) ([]time.Time, error) {
	if until.Before(from) {
		return nil, fmt.Errorf("until %v precedes from %v", until, from)
	}

	r, err := rrule.StrToRRule(ruleStr)
	if err != nil {
		return nil, fmt.Errorf("parse rule %q: %w", ruleStr, err)
	}
	r.DTStart(from)

	return r.Between(from, until, true), nil
}
