package interval

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/imarsman/timevecengine/isodate"
	"github.com/imarsman/timevecengine/period"
	"github.com/imarsman/timevecengine/timestamp"
)

// Interval an ISO-8601 interval
type Interval struct {
	Repeat       bool
	RepeatNumber int
	StartTime    *time.Time
	StartPeriod  *period.Period

	EndTime   *time.Time
	EndPeriod *period.Period
}

// IsRepeating is the interval repeating
func (i *Interval) IsRepeating() bool {
	return i.Repeat
}

// RepeatCount the number of repeats for the interval
func (i *Interval) RepeatCount() int {
	return i.RepeatNumber
}

// RepeatInfinite is the number of repeats infinite
func (i *Interval) RepeatInfinite() bool {
	return i.Repeat == true && i.RepeatNumber == 0
}

var intervalSeparator = regexp.MustCompile(`/|--`)

// Parse parses an ISO-8601 interval of the form start/end, start/period or
// period/end, where start and end are timestamps parseable by
// timestamp.ParseInUTC or isodate.ParseISO and period is an ISO-8601 duration.
func Parse(iString string) (Interval, error) {
	i := Interval{}

	parts := intervalSeparator.Split(iString, -1)
	if len(parts) != 2 {
		return Interval{}, errors.New("interval.Parse: expected exactly one separator between two parts")
	}

	if strings.HasPrefix(parts[0], "P") {
		p, err := period.Parse(parts[0], true)
		if err != nil {
			return Interval{}, err
		}
		i.StartPeriod = &p
	} else if t, err := timestamp.ParseInUTC(parts[0]); err == nil {
		i.StartTime = &t
	} else if dt, err := isodate.ParseISO(parts[0]); err == nil {
		t := dt.UTC()
		i.StartTime = &t
	} else {
		return Interval{}, err
	}

	if strings.HasPrefix(parts[1], "P") {
		p, err := period.Parse(parts[1], true)
		if err != nil {
			return Interval{}, err
		}
		i.EndPeriod = &p
	} else if t, err := timestamp.ParseInUTC(parts[1]); err == nil {
		i.EndTime = &t
	} else if dt, err := isodate.ParseISO(parts[1]); err == nil {
		t := dt.UTC()
		i.EndTime = &t
	} else {
		return Interval{}, err
	}

	if i.StartTime == nil && i.EndTime == nil {
		return Interval{}, errors.New("interval.Parse: one of start or end must be a time, not both periods")
	}
	if i.StartTime == nil {
		negated := i.StartPeriod.Abs()
		d, _, err := negated.Negate().Duration()
		if err != nil {
			return Interval{}, err
		}
		offset := i.EndTime.Add(d)
		i.StartTime = &offset
	}
	if i.EndTime == nil {
		abs := i.EndPeriod.Abs()
		d, _, err := abs.Duration()
		if err != nil {
			return Interval{}, err
		}
		offset := i.StartTime.Add(d)
		i.EndTime = &offset
	}

	return i, nil
}
