// Package timeindex implements the tagged-variant time index type: the
// different ways a time vector's samples can be laid out along the time
// axis (a single constant value, a uniform fixed-frequency grid, an
// explicit list of period boundaries, a multi-year profile, a one-year
// profile meant to be repeated, or a single model year), and the dispatch
// logic that converts data from one index to another.
package timeindex

import (
	"time"

	"github.com/imarsman/timevecengine/calendar"
	"github.com/imarsman/timevecengine/engineerrors"
	"github.com/imarsman/timevecengine/interval"
	"github.com/imarsman/timevecengine/period"
	"github.com/imarsman/timevecengine/timespan"
	"github.com/imarsman/timevecengine/vectorops"
)

// Kind identifies which concrete shape an Index has. Dispatch on Kind (via a
// type switch on the Index itself, since each Kind has exactly one Go type)
// replaces what would otherwise be a family of boolean "is X" flags.
type Kind int

const (
	KindConstant Kind = iota
	KindFixedFrequency
	KindList
	KindProfile
	KindOneYearProfile
	KindModelYear
)

func (k Kind) String() string {
	switch k {
	case KindConstant:
		return "constant"
	case KindFixedFrequency:
		return "fixed_frequency"
	case KindList:
		return "list"
	case KindProfile:
		return "profile"
	case KindOneYearProfile:
		return "one_year_profile"
	case KindModelYear:
		return "model_year"
	default:
		return "unknown"
	}
}

// Calendar identifies which of the two coexisting calendar conventions an
// index is expressed in.
type Calendar int

const (
	ISOTime Calendar = iota
	ModelTime
)

func (c Calendar) String() string {
	if c == ModelTime {
		return "model_time"
	}
	return "iso_time"
}

// week is the length of one ISO/model week.
const week = 7 * 24 * time.Hour

// OneYearProfileAnchor is the arbitrary, calendar-neutral year a
// OneYearProfile's samples are conceptually dated against before being
// tiled over a real range. 1981 has 53 ISO weeks (1 January 1981 is a
// Thursday), so an ISO-time OneYearProfile holds 53 weeks of samples; a
// model-time one holds 52.
const OneYearProfileAnchor = 1981

// ReferencePeriod is the year-based annotation an index's data claims to
// cover: num_years whole years starting at start_year, in the index's own
// calendar convention. It says nothing about sample count or resolution;
// see Anchor for the raw instant an index's data begins at.
type ReferencePeriod struct {
	StartYear int
	NumYears  int
}

// Index is implemented by every concrete index shape. NumPeriods, Calendar
// and IsOneYear are used by the dispatcher in WriteIntoFixedFrequency to
// decide which of its conversion cases applies; Anchor gives the raw
// instant an index's data begins at (used to build a FixedFrequency out of
// a non-uniform index); ReferencePeriod gives the whole-year annotation a
// caller asked for when the index happens to describe exactly that.
type Index interface {
	Kind() Kind
	// NumPeriods returns the number of samples this index describes, or -1
	// if the index is unbounded (Constant).
	NumPeriods() int
	// PeriodDuration returns the uniform spacing between samples, and false
	// if the index has no single uniform spacing (List, Constant).
	PeriodDuration() (time.Duration, bool)
	CalendarKind() Calendar
	// Anchor returns the instant this index's data begins at, and false if
	// the index has no fixed anchor in real time (Constant, OneYearProfile,
	// which are anchored only when tiled).
	Anchor() (time.Time, bool)
	// ReferencePeriod returns the {start_year, num_years} this index's data
	// spans, and false if that span is not expressible as a whole number of
	// years starting on a year boundary.
	ReferencePeriod() (ReferencePeriod, bool)
	// IsOneYear reports whether this index describes exactly one calendar
	// year's worth of data, making it eligible for cyclic repetition.
	IsOneYear() bool
}

// Constant describes data that has exactly one value, defined for all time.
type Constant struct{}

func (Constant) Kind() Kind                              { return KindConstant }
func (Constant) NumPeriods() int                          { return -1 }
func (Constant) PeriodDuration() (time.Duration, bool)    { return 0, false }
func (Constant) CalendarKind() Calendar                   { return ModelTime }
func (Constant) Anchor() (time.Time, bool)                { return time.Time{}, false }
func (Constant) ReferencePeriod() (ReferencePeriod, bool) { return ReferencePeriod{}, false }
func (Constant) IsOneYear() bool                          { return false }

// CopyWith returns c unchanged; Constant carries no fields to override.
func (c Constant) CopyWith() Constant { return c }

// FixedFrequency describes N samples taken at a uniform period duration
// starting at Start, in either ISO or model calendar time.
type FixedFrequency struct {
	Start            time.Time
	PeriodDur        time.Duration
	NumPeriodsValue  int
	Calendar         Calendar
	ExtrapolateFirst bool
	ExtrapolateLast  bool
}

func (f FixedFrequency) Kind() Kind                            { return KindFixedFrequency }
func (f FixedFrequency) NumPeriods() int                       { return f.NumPeriodsValue }
func (f FixedFrequency) PeriodDuration() (time.Duration, bool) { return f.PeriodDur, true }
func (f FixedFrequency) CalendarKind() Calendar                { return f.Calendar }
func (f FixedFrequency) Anchor() (time.Time, bool)             { return f.Start, true }

// End returns the instant one period past the last sample.
func (f FixedFrequency) End() time.Time {
	return f.Start.Add(time.Duration(f.NumPeriodsValue) * f.PeriodDur)
}

func (f FixedFrequency) ReferencePeriod() (ReferencePeriod, bool) {
	return referencePeriodFromWindow(f.Calendar, f.Start, f.End())
}

func (f FixedFrequency) IsOneYear() bool {
	y, wk := f.Start.ISOWeek()
	if wk != 1 || !f.Start.Equal(calendar.ISOWeekMonday(y, 1)) {
		return false
	}
	if f.Calendar == ModelTime {
		return f.NumPeriodsValue > 0 && time.Duration(f.NumPeriodsValue)*f.PeriodDur == week*calendar.ModelYearLength
	}
	return f.NumPeriodsValue > 0 &&
		time.Duration(f.NumPeriodsValue)*f.PeriodDur == week*time.Duration(calendar.ISOYearLength(y))
}

// FixedFrequencyOverrides carries the fields CopyWith may change on a
// FixedFrequency; a nil field leaves the corresponding field unchanged.
type FixedFrequencyOverrides struct {
	Start            *time.Time
	PeriodDur        *time.Duration
	NumPeriodsValue  *int
	Calendar         *Calendar
	ExtrapolateFirst *bool
	ExtrapolateLast  *bool
}

// CopyWith returns a copy of f with every non-nil field in o applied.
func (f FixedFrequency) CopyWith(o FixedFrequencyOverrides) FixedFrequency {
	if o.Start != nil {
		f.Start = *o.Start
	}
	if o.PeriodDur != nil {
		f.PeriodDur = *o.PeriodDur
	}
	if o.NumPeriodsValue != nil {
		f.NumPeriodsValue = *o.NumPeriodsValue
	}
	if o.Calendar != nil {
		f.Calendar = *o.Calendar
	}
	if o.ExtrapolateFirst != nil {
		f.ExtrapolateFirst = *o.ExtrapolateFirst
	}
	if o.ExtrapolateLast != nil {
		f.ExtrapolateLast = *o.ExtrapolateLast
	}
	return f
}

// List describes N periods whose boundaries are given explicitly as N+1
// instants, so periods need not be uniform in length.
type List struct {
	Boundaries       []time.Time
	Calendar         Calendar
	ExtrapolateFirst bool
	ExtrapolateLast  bool
}

func (l List) Kind() Kind { return KindList }

func (l List) NumPeriods() int {
	if len(l.Boundaries) < 2 {
		return 0
	}
	return len(l.Boundaries) - 1
}

func (l List) PeriodDuration() (time.Duration, bool) { return 0, false }
func (l List) CalendarKind() Calendar                { return l.Calendar }

func (l List) Anchor() (time.Time, bool) {
	if len(l.Boundaries) == 0 {
		return time.Time{}, false
	}
	return l.Boundaries[0], true
}

func (l List) ReferencePeriod() (ReferencePeriod, bool) {
	if len(l.Boundaries) < 2 {
		return ReferencePeriod{}, false
	}
	return referencePeriodFromWindow(l.Calendar, l.Boundaries[0], l.Boundaries[len(l.Boundaries)-1])
}

// DateRange describes the calendar-day span covered by l, discarding the
// time-of-day component of its boundaries. Used when reporting a List's
// coverage in diagnostics, since the day-level span reads better than raw
// timestamps.
func (l List) DateRange() (timespan.DateRange, bool) {
	if len(l.Boundaries) < 2 {
		return timespan.DateRange{}, false
	}
	start := l.Boundaries[0]
	end := l.Boundaries[len(l.Boundaries)-1]
	return timespan.NewDateRangeOf(start, end.Sub(start)), true
}

func (List) IsOneYear() bool { return false }

// ListOverrides carries the fields CopyWith may change on a List; a nil
// field leaves the corresponding field unchanged. Boundaries is replaced
// wholesale when non-nil, since individual boundaries are not addressable
// by override.
type ListOverrides struct {
	Boundaries       []time.Time
	Calendar         *Calendar
	ExtrapolateFirst *bool
	ExtrapolateLast  *bool
}

// CopyWith returns a copy of l with every non-nil field in o applied.
func (l List) CopyWith(o ListOverrides) List {
	if o.Boundaries != nil {
		l.Boundaries = o.Boundaries
	}
	if o.Calendar != nil {
		l.Calendar = *o.Calendar
	}
	if o.ExtrapolateFirst != nil {
		l.ExtrapolateFirst = *o.ExtrapolateFirst
	}
	if o.ExtrapolateLast != nil {
		l.ExtrapolateLast = *o.ExtrapolateLast
	}
	return l
}

// Profile describes a multi-year, whole-years index in one of the two
// calendars: NumYears years starting at StartYear, sampled at PeriodDur.
type Profile struct {
	StartYear int
	NumYears  int
	PeriodDur time.Duration
	Calendar  Calendar
}

func (p Profile) Kind() Kind                            { return KindProfile }
func (p Profile) PeriodDuration() (time.Duration, bool) { return p.PeriodDur, true }
func (p Profile) CalendarKind() Calendar                { return p.Calendar }

func (p Profile) NumPeriods() int {
	if p.Calendar == ModelTime {
		total := time.Duration(p.NumYears*calendar.ModelYearLength) * week
		return int(total / p.PeriodDur)
	}
	n := 0
	for y := p.StartYear; y < p.StartYear+p.NumYears; y++ {
		n += int(time.Duration(calendar.ISOYearLength(y)) * week / p.PeriodDur)
	}
	return n
}

func (p Profile) Anchor() (time.Time, bool) {
	if p.Calendar == ModelTime {
		return calendar.ModelYearStart(p.StartYear), true
	}
	return calendar.ISOWeekMonday(p.StartYear, 1), true
}

func (p Profile) ReferencePeriod() (ReferencePeriod, bool) {
	return ReferencePeriod{StartYear: p.StartYear, NumYears: p.NumYears}, true
}

func (p Profile) IsOneYear() bool { return p.NumYears == 1 }

// ProfileOverrides carries the fields CopyWith may change on a Profile; a
// nil field leaves the corresponding field unchanged.
type ProfileOverrides struct {
	StartYear *int
	NumYears  *int
	PeriodDur *time.Duration
	Calendar  *Calendar
}

// CopyWith returns a copy of p with every non-nil field in o applied.
func (p Profile) CopyWith(o ProfileOverrides) Profile {
	if o.StartYear != nil {
		p.StartYear = *o.StartYear
	}
	if o.NumYears != nil {
		p.NumYears = *o.NumYears
	}
	if o.PeriodDur != nil {
		p.PeriodDur = *o.PeriodDur
	}
	if o.Calendar != nil {
		p.Calendar = *o.Calendar
	}
	return p
}

// OneYearProfile describes exactly one generic year's worth of data,
// sampled at PeriodDur, with no fixed calendar anchor until it is tiled
// across a real range by a repeat operation.
type OneYearProfile struct {
	PeriodDur time.Duration
	Calendar  Calendar
}

func (o OneYearProfile) Kind() Kind                            { return KindOneYearProfile }
func (o OneYearProfile) PeriodDuration() (time.Duration, bool) { return o.PeriodDur, true }
func (o OneYearProfile) CalendarKind() Calendar                { return o.Calendar }
func (o OneYearProfile) Anchor() (time.Time, bool)             { return time.Time{}, false }

func (o OneYearProfile) NumPeriods() int {
	if o.Calendar == ModelTime {
		return int(time.Duration(calendar.ModelYearLength) * week / o.PeriodDur)
	}
	return int(time.Duration(calendar.ISOYearLength(OneYearProfileAnchor)) * week / o.PeriodDur)
}

func (o OneYearProfile) ReferencePeriod() (ReferencePeriod, bool) { return ReferencePeriod{}, false }
func (OneYearProfile) IsOneYear() bool                            { return true }

// OneYearProfileOverrides carries the fields CopyWith may change on a
// OneYearProfile; a nil field leaves the corresponding field unchanged.
type OneYearProfileOverrides struct {
	PeriodDur *time.Duration
	Calendar  *Calendar
}

// CopyWith returns a copy of o with every non-nil field in ov applied.
func (o OneYearProfile) CopyWith(ov OneYearProfileOverrides) OneYearProfile {
	if ov.PeriodDur != nil {
		o.PeriodDur = *ov.PeriodDur
	}
	if ov.Calendar != nil {
		o.Calendar = *ov.Calendar
	}
	return o
}

// ModelYear describes a single model year's worth of data anchored to a
// concrete year number.
type ModelYear struct {
	Year      int
	PeriodDur time.Duration
}

func (m ModelYear) Kind() Kind                            { return KindModelYear }
func (m ModelYear) PeriodDuration() (time.Duration, bool) { return m.PeriodDur, true }
func (m ModelYear) CalendarKind() Calendar                { return ModelTime }
func (m ModelYear) Anchor() (time.Time, bool)             { return calendar.ModelYearStart(m.Year), true }

func (m ModelYear) NumPeriods() int {
	return int(time.Duration(calendar.ModelYearLength) * week / m.PeriodDur)
}

func (m ModelYear) ReferencePeriod() (ReferencePeriod, bool) {
	return ReferencePeriod{StartYear: m.Year, NumYears: 1}, true
}

func (ModelYear) IsOneYear() bool { return true }

// ModelYearOverrides carries the fields CopyWith may change on a ModelYear;
// a nil field leaves the corresponding field unchanged.
type ModelYearOverrides struct {
	Year      *int
	PeriodDur *time.Duration
}

// CopyWith returns a copy of m with every non-nil field in o applied.
func (m ModelYear) CopyWith(o ModelYearOverrides) ModelYear {
	if o.Year != nil {
		m.Year = *o.Year
	}
	if o.PeriodDur != nil {
		m.PeriodDur = *o.PeriodDur
	}
	return m
}

// referencePeriodFromWindow returns the {start_year, num_years} annotation
// for the half-open window [start, end) expressed in cal's calendar
// convention, when that window begins on the Monday that opens ISO week 1
// of a year and spans whole years: a positive multiple of 52 weeks in model
// time, or up to the Monday that opens a later ISO year in ISO time; false
// otherwise.
func referencePeriodFromWindow(cal Calendar, start, end time.Time) (ReferencePeriod, bool) {
	if !end.After(start) {
		return ReferencePeriod{}, false
	}
	startYear, wk := start.ISOWeek()
	if wk != 1 || !start.Equal(calendar.ISOWeekMonday(startYear, 1)) {
		return ReferencePeriod{}, false
	}

	if cal == ModelTime {
		span := end.Sub(start)
		if span%week != 0 {
			return ReferencePeriod{}, false
		}
		numWeeks := int(span / week)
		numYears := numWeeks / calendar.ModelYearLength
		if numYears <= 0 || numWeeks != numYears*calendar.ModelYearLength {
			return ReferencePeriod{}, false
		}
		return ReferencePeriod{StartYear: startYear, NumYears: numYears}, true
	}

	cursor := start
	y := startYear
	numYears := 0
	for cursor.Before(end) {
		cursor = calendar.ISOWeekMonday(y+1, 1)
		y++
		numYears++
	}
	if !cursor.Equal(end) {
		return ReferencePeriod{}, false
	}
	return ReferencePeriod{StartYear: startYear, NumYears: numYears}, true
}

// ParsePeriodDuration parses an ISO-8601 duration string (as accepted by
// the period package, e.g. "P1D", "PT1H") into a time.Duration.
func ParsePeriodDuration(s string) (time.Duration, error) {
	p, err := period.Parse(s, true)
	if err != nil {
		return 0, engineerrors.InvalidConfiguration("could not parse period duration %q: %v", s, err)
	}
	d, precise, err := p.Duration()
	if err != nil {
		return 0, engineerrors.InvalidConfiguration("period duration %q: %v", s, err)
	}
	if !precise {
		return 0, engineerrors.InvalidConfiguration("period duration %q is calendar-relative (months/years) and has no fixed length", s)
	}
	return d, nil
}

// ParseReferenceWindow parses a loader-supplied reference window expressed
// as an ISO-8601 interval (start/end, start/period or period/end) into the
// [start, end) instants it denotes. This is the textual form a
// FixedFrequency's Start and PeriodDuration fields are typically configured
// from, e.g. "2020-01-01T00:00:00Z/P1Y" for a one-year window starting at
// midnight UTC on 2020-01-01.
func ParseReferenceWindow(s string) (start, end time.Time, err error) {
	iv, err := interval.Parse(s)
	if err != nil {
		return time.Time{}, time.Time{}, engineerrors.InvalidConfiguration("could not parse reference window %q: %v", s, err)
	}
	return *iv.StartTime, *iv.EndTime, nil
}

// WriteIntoFixedFrequency converts the samples described by src (with
// values srcValues) into dst's fixed-frequency grid, writing the result
// into dstValues (which must already be sized to dst.NumPeriods()).
//
// The dispatch order mirrors the component's six conversion cases: same
// convention and period duration is a direct copy; an integer-multiple
// period duration is an aggregate or disaggregate; otherwise a calendar
// conversion is applied and the result recursed on; a Constant broadcasts;
// a same-calendar FixedFrequency whose period duration is not an integer
// multiple of dst's (or vice versa) is averaged per destination period,
// length-weighted, via GetPeriodAverage. Any other index is first
// re-expressed as a FixedFrequency from its Anchor and PeriodDuration: an
// index with no anchor (OneYearProfile) returns IncompatibleResolution, and
// an index with no uniform period duration (List) is a precondition
// violation, so a List source is not averaged.
func WriteIntoFixedFrequency(src Index, srcValues []float64, dst FixedFrequency, dstValues []float64) error {
	if len(dstValues) != dst.NumPeriodsValue {
		engineerrors.Precondition("write_into_fixed_frequency: dstValues has length %d, expected %d", len(dstValues), dst.NumPeriodsValue)
	}

	switch s := src.(type) {
	case Constant:
		if len(srcValues) != 1 {
			engineerrors.Precondition("write_into_fixed_frequency: Constant index must carry exactly one value, got %d", len(srcValues))
		}
		for i := range dstValues {
			dstValues[i] = srcValues[0]
		}
		return nil

	case FixedFrequency:
		if s.Calendar == dst.Calendar && s.PeriodDur == dst.PeriodDur && s.Start.Equal(dst.Start) && s.NumPeriodsValue == dst.NumPeriodsValue {
			copy(dstValues, srcValues)
			return nil
		}
		if s.Calendar == dst.Calendar {
			if s.PeriodDur <= dst.PeriodDur && s.PeriodDur > 0 && dst.PeriodDur%s.PeriodDur == 0 {
				vectorops.Aggregate(srcValues, dstValues, false)
				return nil
			}
			if dst.PeriodDur <= s.PeriodDur && dst.PeriodDur > 0 && s.PeriodDur%dst.PeriodDur == 0 {
				vectorops.Disaggregate(srcValues, dstValues, true)
				return nil
			}
		}
		// Cross-calendar, or neither an aggregate nor a disaggregate
		// relationship: convert calendars first (at the source period
		// duration) and recurse against the converted index.
		if s.Calendar != dst.Calendar {
			if dst.Calendar == ISOTime {
				converted, err := vectorops.ConvertToIsoTime(srcValues, s.Start, s.PeriodDur)
				if err != nil {
					return err
				}
				newSrc := FixedFrequency{Start: s.Start, PeriodDur: s.PeriodDur, NumPeriodsValue: len(converted), Calendar: ISOTime}
				return WriteIntoFixedFrequency(newSrc, converted, dst, dstValues)
			}
			newStart, converted, err := vectorops.ConvertToModelTime(srcValues, s.Start, s.PeriodDur)
			if err != nil {
				return err
			}
			newSrc := FixedFrequency{Start: newStart, PeriodDur: s.PeriodDur, NumPeriodsValue: len(converted), Calendar: ModelTime}
			return WriteIntoFixedFrequency(newSrc, converted, dst, dstValues)
		}
		// Same calendar, non-commensurate period durations: fall back to a
		// length-weighted average per destination period.
		return writeByAveraging(s, srcValues, dst, dstValues)

	default:
		start, ok := src.Anchor()
		if !ok {
			return engineerrors.IncompatibleResolution("write_into_fixed_frequency: %s index has no fixed anchor to convert from", src.Kind())
		}
		fixed := FixedFrequency{Start: start, PeriodDur: mustDuration(src), NumPeriodsValue: src.NumPeriods(), Calendar: src.CalendarKind()}
		return WriteIntoFixedFrequency(fixed, srcValues, dst, dstValues)
	}
}

func mustDuration(src Index) time.Duration {
	d, ok := src.PeriodDuration()
	if !ok {
		engineerrors.Precondition("write_into_fixed_frequency: %s index has no uniform period duration", src.Kind())
	}
	return d
}

func writeByAveraging(src FixedFrequency, srcValues []float64, dst FixedFrequency, dstValues []float64) error {
	cursor := dst.Start
	request52WeekYears := dst.Calendar == ModelTime
	for i := range dstValues {
		avg, err := GetPeriodAverage(src, srcValues, cursor, dst.PeriodDur, request52WeekYears, src.ExtrapolateFirst, src.ExtrapolateLast)
		if err != nil {
			return err
		}
		dstValues[i] = avg
		cursor = cursor.Add(dst.PeriodDur)
	}
	return nil
}

// GetPeriodAverage computes the length-weighted time average of src's data
// (values srcValues) over the half-open window [requestStart, requestStart+
// requestDuration).
//
// request52WeekYears selects the calendar convention the request window
// itself is expressed in: true for model time (52-week years), false for
// real ISO time. When that differs from src's own convention, src is first
// translated onto the request's calendar via the same insertion/removal
// kernels (vectorops.ConvertToIsoTime / ConvertToModelTime) the rest of the
// engine uses for calendar conversion, so a request window touching an ISO
// week 53 sees the same duplicated (model -> ISO) or removed (ISO ->
// model) data a full conversion would produce, rather than the raw
// model-time offset.
//
// If the window extends past either end of src's own span, extrapolateFirst
// /extrapolateLast control whether the boundary value is held constant to
// cover the gap; when extrapolation is disallowed and the window extends
// past an edge, OutOfRange is returned.
func GetPeriodAverage(src FixedFrequency, srcValues []float64, requestStart time.Time, requestDuration time.Duration, request52WeekYears, extrapolateFirst, extrapolateLast bool) (float64, error) {
	if requestDuration <= 0 {
		engineerrors.Precondition("get_period_average: request duration must be positive")
	}

	effSrc, effValues, err := asCalendar(src, srcValues, request52WeekYears)
	if err != nil {
		return 0, err
	}

	requestEnd := requestStart.Add(requestDuration)

	var weighted, totalWeight float64
	cursor := requestStart
	idx := indexAt(effSrc, cursor)

	for cursor.Before(requestEnd) {
		periodStart := effSrc.Start.Add(time.Duration(idx) * effSrc.PeriodDur)
		periodEnd := periodStart.Add(effSrc.PeriodDur)

		segEnd := periodEnd
		if segEnd.After(requestEnd) {
			segEnd = requestEnd
		}
		weight := segEnd.Sub(cursor).Seconds()

		var value float64
		switch {
		case idx < 0:
			if !extrapolateFirst {
				return 0, engineerrors.OutOfRange("get_period_average: window starts before the indexed data and extrapolation is disallowed")
			}
			value = effValues[0]
		case idx >= len(effValues):
			if !extrapolateLast {
				return 0, engineerrors.OutOfRange("get_period_average: window extends past the indexed data and extrapolation is disallowed")
			}
			value = effValues[len(effValues)-1]
		default:
			value = effValues[idx]
		}

		weighted += value * weight
		totalWeight += weight
		cursor = segEnd
		idx++
	}

	if totalWeight == 0 {
		engineerrors.Precondition("get_period_average: zero-weight window")
	}
	return weighted / totalWeight, nil
}

// asCalendar returns src/srcValues expressed in the calendar convention
// request52WeekYears names (true == model time), converting via the
// vectorops week-53 insertion/removal kernels when src is not already in
// that convention. It returns src/srcValues unchanged when no conversion is
// needed.
func asCalendar(src FixedFrequency, srcValues []float64, request52WeekYears bool) (FixedFrequency, []float64, error) {
	srcIsModelTime := src.Calendar == ModelTime
	if request52WeekYears == srcIsModelTime {
		return src, srcValues, nil
	}
	if srcIsModelTime {
		converted, err := vectorops.ConvertToIsoTime(srcValues, src.Start, src.PeriodDur)
		if err != nil {
			return FixedFrequency{}, nil, err
		}
		return FixedFrequency{Start: src.Start, PeriodDur: src.PeriodDur, NumPeriodsValue: len(converted), Calendar: ISOTime}, converted, nil
	}
	newStart, converted, err := vectorops.ConvertToModelTime(srcValues, src.Start, src.PeriodDur)
	if err != nil {
		return FixedFrequency{}, nil, err
	}
	return FixedFrequency{Start: newStart, PeriodDur: src.PeriodDur, NumPeriodsValue: len(converted), Calendar: ModelTime}, converted, nil
}

// indexAt returns the index of the source period containing t, which may
// be negative or >= len of the data if t falls outside src's span.
func indexAt(src FixedFrequency, t time.Time) int {
	d := t.Sub(src.Start)
	idx := int(d / src.PeriodDur)
	if d < 0 && d%src.PeriodDur != 0 {
		// Integer division truncates toward zero; round down instead.
		idx--
	}
	return idx
}
