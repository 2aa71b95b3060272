// Copyright 2015 Rick Beton. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package isodate represents a calendar date under the proleptic Gregorian
// calendar as used by ISO 8601, discarding time-of-day information. It
// replaces the hand-rolled day arithmetic that used to live in this
// repository's date and date2 packages with a thin wrapper over time.Time,
// which already implements the Gregorian and ISO week calculations
// correctly.
package isodate

import (
	"errors"
	"time"

	"github.com/imarsman/timevecengine/period"
)

// PeriodOfDays describes a period of time measured in whole days. Negative
// values indicate days earlier than some mark.
type PeriodOfDays int64

// ZeroDays is the named zero value for PeriodOfDays.
const ZeroDays PeriodOfDays = 0

// Date represents a day under the Gregorian calendar, with no time-of-day
// component. Internally it is stored as midnight UTC on that day so that
// arithmetic between dates is always exact, regardless of daylight saving
// transitions in any particular zone.
//
// The zero value of Date is 1 January, year 1 (0001-01-01), which is also
// its IsZero sentinel.
type Date struct {
	t time.Time
}

// New returns the Date value corresponding to the given year, month and day.
// The month and day may be outside their usual ranges and will be normalised
// during the conversion, following the same rules as time.Date.
func New(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// NewAt returns the Date on which t falls, in t's own location.
func NewAt(t time.Time) Date {
	y, m, d := t.Date()
	return New(y, m, d)
}

// Today returns today's date according to the current local time.
func Today() Date {
	return NewAt(time.Now())
}

// Min returns the smallest representable Date.
func Min() Date {
	return Date{time.Date(-292277022399, time.January, 1, 0, 0, 0, 0, time.UTC)}
}

// Max returns the largest representable Date.
func Max() Date {
	return Date{time.Date(292277026596, time.December, 31, 0, 0, 0, 0, time.UTC)}
}

// Date returns the year, month and day of d, matching time.Time.Date.
func (d Date) Date() (year int, month time.Month, day int) {
	return d.t.Date()
}

// Year returns the year of d.
func (d Date) Year() int { y, _, _ := d.t.Date(); return y }

// Month returns the month of d.
func (d Date) Month() time.Month { _, m, _ := d.t.Date(); return m }

// Day returns the day-of-month of d, where the first day of the month is 1.
func (d Date) Day() int { _, _, day := d.t.Date(); return day }

// Weekday returns the day of the week specified by d.
func (d Date) Weekday() time.Weekday {
	return d.t.Weekday()
}

// ISOWeek returns the ISO 8601 year and week number in which d occurs. Week
// ranges from 1 to 53; Jan 1 to Jan 3 may belong to the last week of the
// previous year, and Dec 29 to Dec 31 may belong to week 1 of the next year.
func (d Date) ISOWeek() (year, week int) {
	return d.t.ISOWeek()
}

// YearDay returns the day of the year specified by d, in the range [1,365]
// for non-leap years and [1,366] for leap years.
func (d Date) YearDay() int {
	return d.t.YearDay()
}

// IsZero reports whether d is the zero Date (0001-01-01).
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Equal reports whether d and u represent the same date.
func (d Date) Equal(u Date) bool {
	return d.t.Equal(u.t)
}

// Before reports whether the date d is before u.
func (d Date) Before(u Date) bool {
	return d.t.Before(u.t)
}

// After reports whether the date d is after u.
func (d Date) After(u Date) bool {
	return d.t.After(u.t)
}

// Min returns the earlier of d and u.
func (d Date) Min(u Date) Date {
	if d.After(u) {
		return u
	}
	return d
}

// Max returns the later of d and u.
func (d Date) Max(u Date) Date {
	if d.Before(u) {
		return u
	}
	return d
}

// Add returns the date d plus the given number of days. The parameter may be
// negative.
func (d Date) Add(days PeriodOfDays) Date {
	return Date{d.t.AddDate(0, 0, int(days))}
}

// AddDate returns the date corresponding to adding the given number of
// years, months and days to d, following the same normalisation rules as
// time.Time.AddDate.
func (d Date) AddDate(years, months, days int) Date {
	return Date{d.t.AddDate(years, months, days)}
}

// AddPeriod returns the date corresponding to adding the given period. Any
// time-of-day component of the period (hours, minutes, seconds) is ignored;
// see period.Period.AddTo for handling of those.
func (d Date) AddPeriod(delta period.Period) Date {
	return d.AddDate(int(delta.Years()), int(delta.Months()), int(delta.Days()))
}

// Sub returns d-u as the number of days between the two dates.
func (d Date) Sub(u Date) PeriodOfDays {
	return PeriodOfDays(d.t.Sub(u.t).Hours() / 24)
}

// UTC returns midnight at the start of d, in UTC.
func (d Date) UTC() time.Time {
	return d.t
}

// In returns midnight at the start of d, in the given location.
func (d Date) In(loc *time.Location) time.Time {
	y, m, day := d.t.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, loc)
}

// String returns an ISO 8601 representation of d, e.g. "2020-12-28".
func (d Date) String() string {
	return d.t.Format("2006-01-02")
}

// ParseISO parses a date string in "2006-01-02" form (the subset of ISO 8601
// this repository's loaders are expected to hand in).
func ParseISO(value string) (Date, error) {
	if value == "" {
		return Date{}, errors.New("isodate.ParseISO: empty string")
	}
	t, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		return Date{}, err
	}
	return NewAt(t), nil
}
