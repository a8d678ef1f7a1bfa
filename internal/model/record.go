package model

import (
	"strings"
	"time"

	"github.com/go-openapi/strfmt"

	"azure-devops-mcp/pkg/datemath"
)

// Record is a decoded Azure DevOps JSON object (work item, repository, pipeline, pull request).
type Record map[string]any

// Lookup walks a dot-separated path. Azure DevOps field names contain dots themselves
// ("System.CreatedDate"), so at each level the longest run of remaining segments that
// exists as a key wins: "fields.System.CreatedDate" resolves fields -> System.CreatedDate.
func (r Record) Lookup(path string) (any, bool) {
	if path == "" {
		return nil, false
	}

	segs := strings.Split(path, ".")
	var cur any = map[string]any(r)
	for len(segs) > 0 {
		m, ok := asMap(cur)
		if !ok {
			return nil, false
		}

		matched := false
		for n := len(segs); n >= 1; n-- {
			if v, ok := m[strings.Join(segs[:n], ".")]; ok {
				cur = v
				segs = segs[n:]
				matched = true
				break
			}
		}
		if !matched {
			return nil, false
		}
	}
	return cur, true
}

// LookupString returns the value at path when it is a non-empty string.
func (r Record) LookupString(path string) (string, bool) {
	v, ok := r.Lookup(path)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// LookupDate parses the value at path as an RFC 3339 timestamp or a bare YYYY-MM-DD date.
func (r Record) LookupDate(path string) (time.Time, bool) {
	return r.LookupDateIn(path, time.UTC)
}

// LookupDateIn is LookupDate with bare dates placed at midnight in loc.
func (r Record) LookupDateIn(path string, loc *time.Location) (time.Time, bool) {
	s, ok := r.LookupString(path)
	if !ok {
		return time.Time{}, false
	}
	return ParseDateIn(s, loc)
}

// ParseDate accepts the timestamp shapes Azure DevOps emits plus plain calendar dates.
func ParseDate(s string) (time.Time, bool) {
	return ParseDateIn(s, time.UTC)
}

// ParseDateIn is ParseDate with bare dates placed at midnight in loc.
// Timestamps keep the offset they carry.
func ParseDateIn(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.ParseInLocation(datemath.DateLayout, s, loc); err == nil {
		return t, true
	}
	if dt, err := strfmt.ParseDateTime(s); err == nil {
		return time.Time(dt), true
	}
	return time.Time{}, false
}

// FilterByDate keeps the records whose date at path falls inside iv.
// Records with a missing, empty or unparseable date are dropped.
// Days are compared in the interval's location.
func FilterByDate(records []Record, path string, iv datemath.Interval) []Record {
	if iv.IsEmpty() {
		return records
	}

	loc := iv.Location()
	filtered := make([]Record, 0, len(records))
	for _, rec := range records {
		t, ok := rec.LookupDateIn(path, loc)
		if !ok {
			continue
		}
		if iv.Contains(t) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Record:
		return m, true
	}
	return nil, false
}
