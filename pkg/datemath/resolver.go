package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	lastNPattern  = regexp.MustCompile(`^last\s+(\d+)\s+(day|week|month)s?`)
	rangePattern  = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})\s+to\s+(\d{4}-\d{2}-\d{2})`)
	datePattern   = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})`)
	sincePattern  = regexp.MustCompile(`^since\s+(\d{4}-\d{2}-\d{2})`)
	beforePattern = regexp.MustCompile(`^before\s+(\d{4}-\d{2}-\d{2})`)
)

// Resolver converts date filter expressions into calendar-day intervals.
// It holds no clock: the reference time is always passed in.
type Resolver struct {
	location *time.Location
}

// NewResolver creates a resolver for the given IANA timezone string, e.g. "Europe/Madrid".
func NewResolver(timezone string) (*Resolver, error) {
	if timezone == "" {
		timezone = "UTC"
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Resolver{location: loc}, nil
}

// Location returns the timezone calendar days are computed in.
func (r *Resolver) Location() *time.Location {
	return r.location
}

// Resolve maps expr to an interval relative to now. Unrecognized input yields the
// trailing 30 days ending at now.
func (r *Resolver) Resolve(expr string, now time.Time) Interval {
	iv, _ := r.ResolveForm(expr, now)
	return iv
}

// ResolveForm is Resolve plus the rule that matched.
func (r *Resolver) ResolveForm(expr string, now time.Time) (Interval, Form) {
	expr = strings.ToLower(strings.TrimSpace(expr))
	today := r.startOfDay(now)

	if iv, ok := r.keyword(expr, today); ok {
		return iv, FormKeyword
	}

	if m := lastNPattern.FindStringSubmatch(expr); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			if iv, ok := r.lastN(n, m[2], today); ok {
				return iv, FormLastN
			}
		}
	}

	if m := rangePattern.FindStringSubmatch(expr); m != nil {
		from, fromOK := r.parseDay(m[1])
		to, toOK := r.parseDay(m[2])
		if fromOK && toOK {
			return Interval{From: from, To: to}, FormRange
		}
	}

	if m := datePattern.FindStringSubmatch(expr); m != nil {
		if day, ok := r.parseDay(m[1]); ok {
			return Interval{From: day, To: day}, FormDate
		}
	}

	if m := sincePattern.FindStringSubmatch(expr); m != nil {
		if day, ok := r.parseDay(m[1]); ok {
			return Interval{From: day, To: today}, FormSince
		}
	}

	if m := beforePattern.FindStringSubmatch(expr); m != nil {
		if day, ok := r.parseDay(m[1]); ok {
			return Interval{From: today.AddDate(0, 0, -BeforeLookbackDays), To: day}, FormBefore
		}
	}

	return Interval{From: today.AddDate(0, 0, -FallbackLookbackDays), To: today}, FormFallback
}

// keyword handles the fixed vocabulary. Weeks start on Monday.
func (r *Resolver) keyword(expr string, today time.Time) (Interval, bool) {
	switch expr {
	case "today":
		return Interval{From: today, To: today}, true
	case "yesterday":
		y := today.AddDate(0, 0, -1)
		return Interval{From: y, To: y}, true
	case "this week":
		return Interval{From: today.AddDate(0, 0, -weekdayOffset(today)), To: today}, true
	case "last week":
		end := today.AddDate(0, 0, -(weekdayOffset(today) + 1))
		return Interval{From: end.AddDate(0, 0, -6), To: end}, true
	case "this month":
		return Interval{From: r.date(today.Year(), today.Month(), 1), To: today}, true
	case "last month":
		end := r.date(today.Year(), today.Month(), 1).AddDate(0, 0, -1)
		return Interval{From: r.date(end.Year(), end.Month(), 1), To: end}, true
	case "this year":
		return Interval{From: r.date(today.Year(), time.January, 1), To: today}, true
	case "last year":
		y := today.Year() - 1
		return Interval{From: r.date(y, time.January, 1), To: r.date(y, time.December, 31)}, true
	}
	return Interval{}, false
}

// lastN rejects counts reaching further back than MaxLookbackDays.
func (r *Resolver) lastN(n int, unit string, today time.Time) (Interval, bool) {
	var from time.Time
	switch unit {
	case "day":
		if n > MaxLookbackDays {
			return Interval{}, false
		}
		from = today.AddDate(0, 0, -n)
	case "week":
		if n > MaxLookbackDays/7 {
			return Interval{}, false
		}
		from = today.AddDate(0, 0, -7*n)
	case "month":
		if n > MaxLookbackDays/31 {
			return Interval{}, false
		}
		from = r.monthsBack(today, n)
	}
	return Interval{From: from, To: today}, true
}

// monthsBack steps n calendar months back, carrying one year per 12 months rolled
// past January. The day is clamped to the length of the target month.
func (r *Resolver) monthsBack(today time.Time, n int) time.Time {
	year := today.Year()
	month := int(today.Month()) - n
	if month <= 0 {
		years := -month/12 + 1
		month += 12 * years
		year -= years
	}

	day := today.Day()
	if last := daysIn(year, time.Month(month)); day > last {
		day = last
	}
	return r.date(year, time.Month(month), day)
}

func (r *Resolver) parseDay(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(DateLayout, s, r.location)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func (r *Resolver) date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, r.location)
}

// startOfDay returns midnight at the start of the given day in the resolver's timezone.
func (r *Resolver) startOfDay(t time.Time) time.Time {
	t = t.In(r.location)
	return r.date(t.Year(), t.Month(), t.Day())
}

// weekdayOffset counts days since Monday.
func weekdayOffset(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
