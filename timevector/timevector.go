// Package timevector implements the TimeVector value type: a unit-tagged
// series of samples paired with the time index (see package timeindex)
// that says what instant each sample belongs to.
//
// Three concrete shapes are provided: a ConstantTimeVector (one value for
// all time), a ListTimeVector (an explicit series against an explicit
// index) and a LoadedTimeVector (a ListTimeVector annotated with the
// source identifier it was read from, for loaders that need to detect
// duplicate IDs across sources). All three are immutable value objects;
// every method returns new state rather than mutating the receiver.
package timevector

import (
	"github.com/imarsman/timevecengine/engineerrors"
	"github.com/imarsman/timevecengine/fingerprint"
	"github.com/imarsman/timevecengine/timeindex"
)

// Unit tags a TimeVector with the physical unit its samples are measured
// in, e.g. "kWh", "MW", "EUR/MWh". Units are compared by exact name; the
// engine does not attempt unit conversion.
type Unit struct {
	Name string
}

func (u Unit) String() string { return u.Name }

func (u Unit) fingerprint() fingerprint.Fingerprint {
	return fingerprint.Of(u.Name)
}

// TimeVector is a unit-tagged series of samples against a time index.
type TimeVector interface {
	// Values returns the vector's samples. For a ConstantTimeVector this is
	// always a single-element slice.
	Values() []float64
	Index() timeindex.Index
	Unit() Unit
	// IsConstant reports whether every instant maps to the same value,
	// letting callers skip per-period work for broadcast vectors.
	IsConstant() bool
	Fingerprint() fingerprint.Fingerprint
	// WriteIntoFixedFrequency materialises this vector's data on dst's
	// fixed-frequency grid.
	WriteIntoFixedFrequency(dst timeindex.FixedFrequency) ([]float64, error)
}

// ConstantTimeVector is a TimeVector whose value is the same at every
// instant.
//
// IsMaxLevel and IsZeroOneProfile are semantic tags, not arithmetic: a
// max-level vector carries a magnitude ceiling, a zero-one profile carries
// a dimensionless [0,1] shape. Neither changes how the engine projects the
// vector's data, but both affect its fingerprint, since two vectors that
// differ only in these tags are not interchangeable to upstream components.
// ReferencePeriod is likewise annotation-only: the nominal years of
// coverage a vector claims, independent of how many samples it holds.
type ConstantTimeVector struct {
	Value            float64
	UnitValue        Unit
	IsMaxLevel       bool
	IsZeroOneProfile bool
	ReferencePeriod  timeindex.ReferencePeriod
}

func (c ConstantTimeVector) Values() []float64      { return []float64{c.Value} }
func (c ConstantTimeVector) Index() timeindex.Index { return timeindex.Constant{} }
func (c ConstantTimeVector) Unit() Unit              { return c.UnitValue }
func (c ConstantTimeVector) IsConstant() bool        { return true }

func (c ConstantTimeVector) Fingerprint() fingerprint.Fingerprint {
	return fingerprint.NewBuilder().
		String("constant").
		Float(c.Value).
		Fingerprint(c.UnitValue.fingerprint()).
		Bool(c.IsMaxLevel).
		Bool(c.IsZeroOneProfile).
		Int(int64(c.ReferencePeriod.StartYear)).
		Int(int64(c.ReferencePeriod.NumYears)).
		Build()
}

func (c ConstantTimeVector) WriteIntoFixedFrequency(dst timeindex.FixedFrequency) ([]float64, error) {
	out := make([]float64, dst.NumPeriodsValue)
	for i := range out {
		out[i] = c.Value
	}
	return out, nil
}

// ListTimeVector is a TimeVector with an explicit series of samples
// against an explicit index. IsMaxLevel and IsZeroOneProfile carry the same
// meaning as on ConstantTimeVector.
type ListTimeVector struct {
	ValuesList       []float64
	IndexValue       timeindex.Index
	UnitValue        Unit
	IsMaxLevel       bool
	IsZeroOneProfile bool
}

// NewListTimeVector validates that the sample count matches the index
// before returning a ListTimeVector; NumPeriods() == -1 (Constant) is
// never a valid index for a ListTimeVector.
func NewListTimeVector(values []float64, index timeindex.Index, unit Unit) ListTimeVector {
	if index.NumPeriods() < 0 {
		engineerrors.Precondition("timevector.NewListTimeVector: index kind %s has no bounded period count", index.Kind())
	}
	if len(values) != index.NumPeriods() {
		engineerrors.Precondition("timevector.NewListTimeVector: got %d values for an index of %d periods", len(values), index.NumPeriods())
	}
	return ListTimeVector{ValuesList: values, IndexValue: index, UnitValue: unit}
}

func (l ListTimeVector) Values() []float64      { return l.ValuesList }
func (l ListTimeVector) Index() timeindex.Index { return l.IndexValue }
func (l ListTimeVector) Unit() Unit              { return l.UnitValue }

func (l ListTimeVector) IsConstant() bool {
	if len(l.ValuesList) == 0 {
		return true
	}
	first := l.ValuesList[0]
	for _, v := range l.ValuesList[1:] {
		if v != first {
			return false
		}
	}
	return true
}

func (l ListTimeVector) Fingerprint() fingerprint.Fingerprint {
	b := fingerprint.NewBuilder().String("list").Fingerprint(l.UnitValue.fingerprint()).
		Bool(l.IsMaxLevel).Bool(l.IsZeroOneProfile)
	b = indexFingerprint(b, l.IndexValue)
	for _, v := range l.ValuesList {
		b = b.Float(v)
	}
	return b.Build()
}

func (l ListTimeVector) WriteIntoFixedFrequency(dst timeindex.FixedFrequency) ([]float64, error) {
	out := make([]float64, dst.NumPeriodsValue)
	if err := timeindex.WriteIntoFixedFrequency(l.IndexValue, l.ValuesList, dst, out); err != nil {
		return nil, err
	}
	return out, nil
}

// LoadedTimeVector is a ListTimeVector annotated with the identifier of the
// source it was read from, letting a Populator (see package model) report
// a DuplicateIDError that names every conflicting source.
type LoadedTimeVector struct {
	ListTimeVector
	SourceID string
}

// NewLoadedTimeVector validates and wraps values/index/unit exactly as
// NewListTimeVector does, additionally recording sourceID.
func NewLoadedTimeVector(values []float64, index timeindex.Index, unit Unit, sourceID string) LoadedTimeVector {
	return LoadedTimeVector{
		ListTimeVector: NewListTimeVector(values, index, unit),
		SourceID:       sourceID,
	}
}

func (l LoadedTimeVector) Fingerprint() fingerprint.Fingerprint {
	return fingerprint.NewBuilder().
		String("loaded").
		String(l.SourceID).
		Fingerprint(l.ListTimeVector.Fingerprint()).
		Build()
}

// indexFingerprint folds every field of idx that is not already reachable
// through the Index interface's other methods into b, so that two indexes
// differing only in an extrapolation flag or an interior List boundary
// still produce different fingerprints.
func indexFingerprint(b *fingerprint.Builder, idx timeindex.Index) *fingerprint.Builder {
	b = b.String(idx.Kind().String()).String(idx.CalendarKind().String())
	if d, ok := idx.PeriodDuration(); ok {
		b = b.Duration(d)
	} else {
		b = b.Nil()
	}
	if rp, ok := idx.ReferencePeriod(); ok {
		b = b.Int(int64(rp.StartYear)).Int(int64(rp.NumYears))
	} else {
		b = b.Nil()
	}
	if a, ok := idx.Anchor(); ok {
		b = b.Time(a)
	} else {
		b = b.Nil()
	}
	b = b.Bool(idx.IsOneYear())

	switch v := idx.(type) {
	case timeindex.FixedFrequency:
		b = b.Bool(v.ExtrapolateFirst).Bool(v.ExtrapolateLast)
	case timeindex.List:
		b = b.Bool(v.ExtrapolateFirst).Bool(v.ExtrapolateLast)
		b = b.Int(int64(len(v.Boundaries)))
		for _, t := range v.Boundaries {
			b = b.Time(t)
		}
	}
	return b
}

// GetVector returns v's underlying samples. It exists alongside Values()
// purely so callers working against the TimeVector interface and callers
// holding a concrete type share one accessor name, matching the engine's
// get_vector operation.
func GetVector(v TimeVector) []float64 { return v.Values() }

// GetVectorAsFloat32 returns v's samples narrowed to float32, for callers
// that need the smaller element type (e.g. to match a GPU or file format
// buffer) and accept the attendant precision loss.
func GetVectorAsFloat32(v TimeVector) []float32 {
	values := v.Values()
	out := make([]float32, len(values))
	for i, val := range values {
		out[i] = float32(val)
	}
	return out
}

// GetTimeIndex returns v's time index, matching the engine's
// get_timeindex operation.
func GetTimeIndex(v TimeVector) timeindex.Index { return v.Index() }

// GetUnit returns v's unit, matching the engine's get_unit operation.
func GetUnit(v TimeVector) Unit { return v.Unit() }

// IsConstant reports whether v is constant over time, matching the
// engine's is_constant operation.
func IsConstant(v TimeVector) bool { return v.IsConstant() }

// GetFingerprint returns v's stable content fingerprint, matching the
// engine's get_fingerprint operation.
func GetFingerprint(v TimeVector) fingerprint.Fingerprint { return v.Fingerprint() }
