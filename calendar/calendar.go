// Package calendar implements the ISO-week arithmetic that the rest of the
// time-vector engine is built on: detecting 53-week ISO years, locating the
// Monday that begins a given ISO or model week, and enumerating the week-53
// intervals that fall inside an arbitrary date range.
//
// Model time and ISO time share every week boundary except week 53: a model
// year is defined as always having exactly 52 weeks, beginning on the Monday
// that would be ISO week 1. Everything this package exports is phrased in
// terms of that shared Monday grid.
package calendar

import (
	"sort"
	"time"

	"github.com/imarsman/timevecengine/gregorian"
)

// IsLeapYear reports whether year is a Gregorian leap year. It has no
// bearing on ISO week length (that is governed by ISOYearLength) but is
// exposed because callers reasoning about day counts within a year need
// both facts.
func IsLeapYear(year int) bool {
	return gregorian.IsLeap(int64(year))
}

// ISOYearLength returns the number of ISO-8601 weeks in isoYear: 52 or 53.
//
// December 28th always falls in the last ISO week of its year (ISO week 1 is
// defined as the week containing January 4th, and by construction the week
// containing December 28th is always the mirror image of that week at the
// other end of the year), so the ISO week number of December 28th is both
// the year's week count and a one-line test for a 53-week year.
func ISOYearLength(isoYear int) int {
	t := time.Date(isoYear, time.December, 28, 0, 0, 0, 0, time.UTC)
	_, week := t.ISOWeek()
	return week
}

// ISOWeekMonday returns the Monday that begins ISO week `week` of `year`.
// week 1's Monday is the Monday of the week that contains January 4th, i.e.
// the Monday on or before it.
func ISOWeekMonday(year, week int) time.Time {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	// time.Monday == 1 ... time.Sunday == 0; shift Sunday to 7 so the
	// Monday-of-week-containing-jan4 computation is uniform.
	wd := int(jan4.Weekday())
	if wd == 0 {
		wd = 7
	}
	week1Monday := jan4.AddDate(0, 0, -(wd - 1))
	return week1Monday.AddDate(0, 0, (week-1)*7)
}

// ModelYearStart returns the Monday on which model year `year` begins. By
// definition this is the same instant as the Monday that begins ISO week 1
// of the same year number.
func ModelYearStart(year int) time.Time {
	return ISOWeekMonday(year, 1)
}

// ModelYearLength is the length, in weeks, of every model year: always 52.
const ModelYearLength = 52

// Week53Range returns the half-open [start, end) range of ISO week 53 of
// isoYear, and false if that year has only 52 weeks.
func Week53Range(isoYear int) (start, end time.Time, ok bool) {
	if ISOYearLength(isoYear) != 53 {
		return time.Time{}, time.Time{}, false
	}
	start = ISOWeekMonday(isoYear, 53)
	end = start.AddDate(0, 0, 7)
	return start, end, true
}

// Interval is a half-open [Start, End) range of instants.
type Interval struct {
	Start time.Time
	End   time.Time
}

// overlap returns the intersection of two half-open intervals and whether it
// is non-empty. The test is standard half-open interval intersection: it is
// inclusive of a touching left boundary and exclusive of a touching right
// boundary, so a period ending exactly where week 53 begins does not
// overlap it, but a period starting exactly where week 53 begins does.
func overlap(aStart, aEnd, bStart, bEnd time.Time) (time.Time, time.Time, bool) {
	s := aStart
	if bStart.After(s) {
		s = bStart
	}
	e := aEnd
	if bEnd.Before(e) {
		e = bEnd
	}
	if !s.Before(e) {
		return time.Time{}, time.Time{}, false
	}
	return s, e, true
}

// PeriodContainsWeek53 reports whether the half-open interval [start, end)
// intersects any ISO week-53 range.
func PeriodContainsWeek53(start, end time.Time) bool {
	return len(FindAllWeek53Periods(start, end)) > 0
}

// FindAllWeek53Periods returns, in chronological order, every sub-range of
// [start, end) that lies inside an ISO week 53, clipped to [start, end).
// Distinct ISO years each contribute at most one entry; the returned slice
// is empty if no week 53 is touched.
func FindAllWeek53Periods(start, end time.Time) []Interval {
	if !start.Before(end) {
		return nil
	}

	startYear, _ := start.ISOWeek()
	endYear, _ := end.ISOWeek()

	var out []Interval
	for y := startYear - 1; y <= endYear+1; y++ {
		w53Start, w53End, ok := Week53Range(y)
		if !ok {
			continue
		}
		s, e, hit := overlap(start, end, w53Start, w53End)
		if !hit {
			continue
		}
		out = append(out, Interval{Start: s, End: e})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out
}
