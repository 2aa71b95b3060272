// Copyright 2015 Rick Beton. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timespan

import "time"

// TimeSpan represents a half-open span of time between two instants, held as
// a start instant plus a duration so that it can be shifted or extended
// without losing the original location information in start.
type TimeSpan struct {
	start    time.Time
	duration time.Duration
}

// NewTimeSpan assembles a TimeSpan between two instants. If end is before
// start, the two are swapped so the result always has a non-negative
// duration.
func NewTimeSpan(start, end time.Time) TimeSpan {
	if end.Before(start) {
		start, end = end, start
	}
	return TimeSpan{start, end.Sub(start)}
}

// Start returns the earlier instant of the span.
func (ts TimeSpan) Start() time.Time {
	return ts.start
}

// End returns the instant following the last instant in the span.
func (ts TimeSpan) End() time.Time {
	return ts.start.Add(ts.duration)
}

// Duration returns the length of the span.
func (ts TimeSpan) Duration() time.Duration {
	return ts.duration
}

// Contains reports whether t falls within the half-open span [Start, End).
func (ts TimeSpan) Contains(t time.Time) bool {
	return !t.Before(ts.start) && t.Before(ts.End())
}
