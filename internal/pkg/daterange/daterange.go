// Package daterange resolves the named reporting presets used across the
// attendance and payroll surfaces into concrete instant intervals, and
// owns the fortnight arithmetic so every caller derives identical period
// boundaries.
package daterange

import "time"

// Honduras civil time. The country does not observe daylight saving, so a
// fixed offset is exact and keeps the resolver free of tzdata lookups.
var Tegucigalpa = time.FixedZone("America/Tegucigalpa", -6*60*60)

// Preset names accepted by Resolve.
const (
	PresetToday     = "today"
	PresetWeek      = "week"
	PresetFortnight = "fortnight"
	PresetMonth     = "month"
	PresetYear      = "year"
)

// Range is a half-open instant interval [From, To).
type Range struct {
	From time.Time
	To   time.Time
}

// IsZero reports whether the range is zero-width. Resolve returns a
// zero-width range for presets it does not recognize.
func (r Range) IsZero() bool {
	return !r.From.Before(r.To)
}

// Contains reports whether t falls inside [From, To).
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.From) && t.Before(r.To)
}

// Resolve maps a preset name and a reference instant to the interval
// covering that preset in Honduras civil time. Unknown presets resolve to
// the zero-width interval [reference, reference) instead of failing; the
// original system relied on that fallback and callers check IsZero when
// they want strictness.
func Resolve(preset string, reference time.Time) Range {
	ref := reference.In(Tegucigalpa)
	y, m, d := ref.Date()

	switch preset {
	case PresetToday:
		from := time.Date(y, m, d, 0, 0, 0, 0, Tegucigalpa)
		return Range{From: from, To: from.AddDate(0, 0, 1)}
	case PresetWeek:
		// Week starts Monday.
		offset := (int(ref.Weekday()) + 6) % 7
		from := time.Date(y, m, d-offset, 0, 0, 0, 0, Tegucigalpa)
		return Range{From: from, To: from.AddDate(0, 0, 7)}
	case PresetFortnight:
		if d <= 15 {
			from := time.Date(y, m, 1, 0, 0, 0, 0, Tegucigalpa)
			return Range{From: from, To: from.AddDate(0, 0, 15)}
		}
		from := time.Date(y, m, 16, 0, 0, 0, 0, Tegucigalpa)
		return Range{From: from, To: time.Date(y, m+1, 1, 0, 0, 0, 0, Tegucigalpa)}
	case PresetMonth:
		from := time.Date(y, m, 1, 0, 0, 0, 0, Tegucigalpa)
		return Range{From: from, To: from.AddDate(0, 1, 0)}
	case PresetYear:
		from := time.Date(y, 1, 1, 0, 0, 0, 0, Tegucigalpa)
		return Range{From: from, To: from.AddDate(1, 0, 0)}
	default:
		return Range{From: ref, To: ref}
	}
}

// Window is an inclusive calendar-date window [Start, End] as used by the
// payroll period queries.
type Window struct {
	Start time.Time
	End   time.Time
}

// ContainsDate reports whether the calendar date of t (in Honduras civil
// time) falls inside the window.
func (w Window) ContainsDate(t time.Time) bool {
	d := DateOnly(t)
	return !d.Before(w.Start) && !d.After(w.End)
}

// Fortnight resolves a payroll fortnight to its inclusive date window.
// Index 1 covers days 1-15; index 2 covers day 16 through the last
// calendar day of the month, whatever its length.
func Fortnight(year int, month time.Month, index int) Window {
	if index == 1 {
		return Window{
			Start: time.Date(year, month, 1, 0, 0, 0, 0, Tegucigalpa),
			End:   time.Date(year, month, 15, 0, 0, 0, 0, Tegucigalpa),
		}
	}
	return Window{
		Start: time.Date(year, month, 16, 0, 0, 0, 0, Tegucigalpa),
		// Day zero of the next month normalizes to the last day of this one.
		End: time.Date(year, month+1, 0, 0, 0, 0, 0, Tegucigalpa),
	}
}

// DateOnly truncates t to midnight of its calendar day in Honduras civil
// time.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.In(Tegucigalpa).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, Tegucigalpa)
}
