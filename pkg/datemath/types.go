package datemath

import "time"

// DateLayout is the calendar-day format used for every interval bound.
const DateLayout = "2006-01-02"

// Fixed windows used by the open-ended forms.
const (
	FallbackLookbackDays = 30
	BeforeLookbackDays   = 365

	// MaxLookbackDays bounds "last N <unit>" (about 1000 years). Longer spans fall back.
	MaxLookbackDays = 366000
)

// Form identifies which rule produced an Interval.
type Form string

const (
	FormKeyword  Form = "keyword"
	FormLastN    Form = "last_n"
	FormRange    Form = "range"
	FormDate     Form = "date"
	FormSince    Form = "since"
	FormBefore   Form = "before"
	FormFallback Form = "fallback"
)

// Interval is an inclusive range of calendar days. A zero bound means the bound is absent.
type Interval struct {
	From time.Time
	To   time.Time
}

// HasFrom reports whether the lower bound is present.
func (iv Interval) HasFrom() bool { return !iv.From.IsZero() }

// HasTo reports whether the upper bound is present.
func (iv Interval) HasTo() bool { return !iv.To.IsZero() }

// IsEmpty reports whether neither bound is present.
func (iv Interval) IsEmpty() bool { return !iv.HasFrom() && !iv.HasTo() }

// FromString returns the lower bound as YYYY-MM-DD, or "" when absent.
func (iv Interval) FromString() string {
	if !iv.HasFrom() {
		return ""
	}
	return iv.From.Format(DateLayout)
}

// ToString returns the upper bound as YYYY-MM-DD, or "" when absent.
func (iv Interval) ToString() string {
	if !iv.HasTo() {
		return ""
	}
	return iv.To.Format(DateLayout)
}

// Location is the zone the bounds were built in, UTC when neither bound is present.
func (iv Interval) Location() *time.Location {
	switch {
	case iv.HasFrom():
		return iv.From.Location()
	case iv.HasTo():
		return iv.To.Location()
	}
	return time.UTC
}

// Contains reports whether the calendar day of t, seen in the interval's location,
// falls inside the interval.
func (iv Interval) Contains(t time.Time) bool {
	day := dayKey(t.In(iv.Location()))
	if iv.HasFrom() && day < dayKey(iv.From) {
		return false
	}
	if iv.HasTo() && day > dayKey(iv.To) {
		return false
	}
	return true
}

func dayKey(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}
