package timevector_test

import (
	"testing"
	"time"

	"github.com/imarsman/timevecengine/timeindex"
	"github.com/imarsman/timevecengine/timevector"
	"github.com/matryer/is"
)

func TestConstantTimeVectorBroadcasts(t *testing.T) {
	is := is.New(t)

	v := timevector.ConstantTimeVector{Value: 4.5, UnitValue: timevector.Unit{Name: "kWh"}}
	is.True(v.IsConstant())

	dst := timeindex.FixedFrequency{
		Start:           time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
		PeriodDur:       24 * time.Hour,
		NumPeriodsValue: 3,
		Calendar:        timeindex.ModelTime,
	}
	out, err := v.WriteIntoFixedFrequency(dst)
	is.NoErr(err)
	is.Equal(out, []float64{4.5, 4.5, 4.5})
}

func TestListTimeVectorRejectsLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a precondition panic")
		}
	}()
	idx := timeindex.FixedFrequency{
		Start:           time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
		PeriodDur:       24 * time.Hour,
		NumPeriodsValue: 3,
		Calendar:        timeindex.ModelTime,
	}
	timevector.NewListTimeVector([]float64{1, 2}, idx, timevector.Unit{Name: "kWh"})
}

func TestListTimeVectorIsConstantWhenAllValuesEqual(t *testing.T) {
	is := is.New(t)

	idx := timeindex.FixedFrequency{
		Start:           time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
		PeriodDur:       24 * time.Hour,
		NumPeriodsValue: 2,
		Calendar:        timeindex.ModelTime,
	}
	v := timevector.NewListTimeVector([]float64{7, 7}, idx, timevector.Unit{Name: "kWh"})
	is.True(v.IsConstant())

	v2 := timevector.NewListTimeVector([]float64{7, 8}, idx, timevector.Unit{Name: "kWh"})
	is.True(!v2.IsConstant())
}

func TestFingerprintDistinguishesUnit(t *testing.T) {
	is := is.New(t)

	a := timevector.ConstantTimeVector{Value: 1, UnitValue: timevector.Unit{Name: "kWh"}}
	b := timevector.ConstantTimeVector{Value: 1, UnitValue: timevector.Unit{Name: "MWh"}}
	is.True(a.Fingerprint() != b.Fingerprint())
}

func TestLoadedTimeVectorFingerprintIncludesSourceID(t *testing.T) {
	is := is.New(t)

	idx := timeindex.FixedFrequency{
		Start:           time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
		PeriodDur:       24 * time.Hour,
		NumPeriodsValue: 1,
		Calendar:        timeindex.ModelTime,
	}
	a := timevector.NewLoadedTimeVector([]float64{1}, idx, timevector.Unit{Name: "kWh"}, "source-a")
	b := timevector.NewLoadedTimeVector([]float64{1}, idx, timevector.Unit{Name: "kWh"}, "source-b")
	is.True(a.Fingerprint() != b.Fingerprint())
}

func TestFingerprintStableAcrossCopyDistinctAcrossUnit(t *testing.T) {
	is := is.New(t)

	a := timevector.ConstantTimeVector{Value: 100.0, UnitValue: timevector.Unit{Name: "MW"}, IsMaxLevel: true}
	cp := a
	is.Equal(a.Fingerprint(), cp.Fingerprint())

	b := a
	b.UnitValue = timevector.Unit{Name: "GW"}
	is.True(a.Fingerprint() != b.Fingerprint())
}

func TestGetAccessorsMatchInterfaceMethods(t *testing.T) {
	is := is.New(t)

	v := timevector.ConstantTimeVector{Value: 2, UnitValue: timevector.Unit{Name: "kWh"}}
	is.Equal(timevector.GetVector(v), v.Values())
	is.Equal(timevector.GetUnit(v), v.Unit())
	is.True(timevector.IsConstant(v))
	is.Equal(timevector.GetFingerprint(v), v.Fingerprint())
}
