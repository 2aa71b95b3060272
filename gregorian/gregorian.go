// Package gregorian holds small, dependency-free calendar facts (leap years,
// month lengths) used by the calendar package to reason about ISO week
// years without reaching for time.Time for every lookup.
package gregorian

import "time"

// DaysInMonth gives the number of days in each month of a non-leap year,
// indexed by time.Month (so index 0 is unused).
var DaysInMonth = [...]int{
	0,
	31, // January
	28, // February
	31, // March
	30, // April
	31, // May
	30, // June
	31, // July
	31, // August
	30, // September
	31, // October
	30, // November
	31, // December
}

// AdjustYear maps astronomical year zero onto year 1, since the Gregorian
// calendar used by ISO 8601 has no year zero.
func AdjustYear(year int64) int64 {
	if year == 0 {
		return 1
	}
	return year
}

// IsLeap reports whether year is a leap year under the Gregorian calendar
// rule: divisible by 4, except centuries, unless also divisible by 400.
func IsLeap(year int64) bool {
	year = AdjustYear(year)
	if year < 0 {
		year = -year
	}
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn gives the number of days in the given month of year, according to
// the Gregorian calendar.
func DaysIn(year int64, month time.Month) int {
	if month == time.February && IsLeap(year) {
		return 29
	}
	return DaysInMonth[month]
}

// DaysInYear gives the number of days in the given year.
func DaysInYear(year int64) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}
