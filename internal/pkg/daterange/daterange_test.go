package daterange

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, Tegucigalpa)
}

func TestResolveToday(t *testing.T) {
	ref := time.Date(2024, 3, 7, 14, 25, 3, 0, Tegucigalpa)
	got := Resolve(PresetToday, ref)
	if !got.From.Equal(date(2024, 3, 7)) {
		t.Errorf("from = %v, want 2024-03-07T00:00", got.From)
	}
	if !got.To.Equal(date(2024, 3, 8)) {
		t.Errorf("to = %v, want 2024-03-08T00:00", got.To)
	}
}

func TestResolveWeekStartsMonday(t *testing.T) {
	cases := []struct {
		ref      time.Time
		wantFrom time.Time
	}{
		{date(2024, 3, 7), date(2024, 3, 4)},  // Thursday -> preceding Monday
		{date(2024, 3, 4), date(2024, 3, 4)},  // Monday -> itself
		{date(2024, 3, 10), date(2024, 3, 4)}, // Sunday belongs to the week that began Monday
	}
	for _, c := range cases {
		got := Resolve(PresetWeek, c.ref)
		if !got.From.Equal(c.wantFrom) {
			t.Errorf("Resolve(week, %v).From = %v, want %v", c.ref, got.From, c.wantFrom)
		}
		if !got.To.Equal(c.wantFrom.AddDate(0, 0, 7)) {
			t.Errorf("Resolve(week, %v).To = %v, want %v", c.ref, got.To, c.wantFrom.AddDate(0, 0, 7))
		}
	}
}

func TestResolveFortnightHalves(t *testing.T) {
	// First half: any day <= 15 resolves to [1st, 16th).
	got := Resolve(PresetFortnight, date(2024, 2, 15))
	if !got.From.Equal(date(2024, 2, 1)) || !got.To.Equal(date(2024, 2, 16)) {
		t.Errorf("first half = [%v, %v), want [2024-02-01, 2024-02-16)", got.From, got.To)
	}

	// Second half of a leap February spans through the 29th.
	got = Resolve(PresetFortnight, date(2024, 2, 16))
	if !got.From.Equal(date(2024, 2, 16)) || !got.To.Equal(date(2024, 3, 1)) {
		t.Errorf("second half = [%v, %v), want [2024-02-16, 2024-03-01)", got.From, got.To)
	}
}

func TestResolveMonthAndYear(t *testing.T) {
	got := Resolve(PresetMonth, date(2023, 12, 19))
	if !got.From.Equal(date(2023, 12, 1)) || !got.To.Equal(date(2024, 1, 1)) {
		t.Errorf("month = [%v, %v)", got.From, got.To)
	}

	got = Resolve(PresetYear, date(2023, 12, 19))
	if !got.From.Equal(date(2023, 1, 1)) || !got.To.Equal(date(2024, 1, 1)) {
		t.Errorf("year = [%v, %v)", got.From, got.To)
	}
}

func TestResolveUnknownPresetIsZeroWidth(t *testing.T) {
	ref := time.Date(2024, 5, 2, 9, 30, 0, 0, Tegucigalpa)
	got := Resolve("quarter", ref)
	if !got.IsZero() {
		t.Errorf("unknown preset = [%v, %v), want zero-width", got.From, got.To)
	}
	if !got.From.Equal(ref) {
		t.Errorf("unknown preset anchors at %v, want reference %v", got.From, ref)
	}
	if got.Contains(ref) {
		t.Error("zero-width range must not contain anything")
	}
}

func TestFortnightCoversEveryMonthLength(t *testing.T) {
	months := []struct {
		year  int
		month time.Month
		last  int
	}{
		{2023, time.February, 28},
		{2024, time.February, 29},
		{2024, time.April, 30},
		{2024, time.January, 31},
	}

	for _, m := range months {
		first := Fortnight(m.year, m.month, 1)
		second := Fortnight(m.year, m.month, 2)

		if !first.Start.Equal(date(m.year, m.month, 1)) || !first.End.Equal(date(m.year, m.month, 15)) {
			t.Errorf("%d-%02d Q1 = [%v, %v]", m.year, m.month, first.Start, first.End)
		}
		if !second.Start.Equal(date(m.year, m.month, 16)) {
			t.Errorf("%d-%02d Q2 starts %v, want day 16", m.year, m.month, second.Start)
		}
		if second.End.Day() != m.last {
			t.Errorf("%d-%02d Q2 ends day %d, want %d", m.year, m.month, second.End.Day(), m.last)
		}

		// No gap, no overlap: Q2 starts the day after Q1 ends, and the day
		// after Q2 ends is the first of the next month.
		if !second.Start.Equal(first.End.AddDate(0, 0, 1)) {
			t.Errorf("%d-%02d: gap between halves", m.year, m.month)
		}
		next := second.End.AddDate(0, 0, 1)
		if next.Day() != 1 {
			t.Errorf("%d-%02d: Q2 leaks into next month, ends %v", m.year, m.month, second.End)
		}
	}
}

func TestWindowContainsDateIgnoresTimeOfDay(t *testing.T) {
	w := Fortnight(2024, time.February, 2)
	if !w.ContainsDate(time.Date(2024, 2, 29, 23, 59, 0, 0, Tegucigalpa)) {
		t.Error("leap day must be inside the second fortnight")
	}
	if w.ContainsDate(date(2024, 3, 1)) {
		t.Error("first of next month must be outside")
	}
	if w.ContainsDate(date(2024, 2, 15)) {
		t.Error("day 15 belongs to the first fortnight")
	}
}
