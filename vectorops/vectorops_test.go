package vectorops_test

import (
	"testing"
	"time"

	"github.com/imarsman/timevecengine/vectorops"
	"github.com/matryer/is"
)

func TestAggregateSumAndMean(t *testing.T) {
	is := is.New(t)

	in := []float64{1, 2, 3, 4, 5, 6}
	out := make([]float64, 3)

	vectorops.Aggregate(in, out, true)
	is.Equal(out, []float64{3, 7, 11})

	vectorops.Aggregate(in, out, false)
	is.Equal(out, []float64{1.5, 3.5, 5.5})
}

func TestAggregatePanicsOnBadShape(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a precondition panic")
		}
	}()
	vectorops.Aggregate([]float64{1, 2, 3}, make([]float64, 2), true)
}

func TestDisaggregateRepeatAndDivide(t *testing.T) {
	is := is.New(t)

	in := []float64{10, 20}
	out := make([]float64, 4)

	vectorops.Disaggregate(in, out, true)
	is.Equal(out, []float64{10, 10, 20, 20})

	vectorops.Disaggregate(in, out, false)
	is.Equal(out, []float64{5, 5, 10, 10})
}

func TestConvertToIsoTimeInsertsTrailingWeek53(t *testing.T) {
	is := is.New(t)

	input := make([]float64, 52)
	for i := range input {
		input[i] = float64(i)
	}
	start := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

	out, err := vectorops.ConvertToIsoTime(input, start, 7*24*time.Hour)
	is.NoErr(err)
	is.Equal(len(out), 53)
	is.Equal(out[51], float64(51))
	is.Equal(out[52], float64(51))
}

func TestConvertToModelTimeRemovesTrailingWeek53(t *testing.T) {
	is := is.New(t)

	input := make([]float64, 53)
	for i := range input {
		input[i] = float64(i)
	}
	start := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

	newStart, out, err := vectorops.ConvertToModelTime(input, start, 7*24*time.Hour)
	is.NoErr(err)
	is.Equal(newStart, start)
	is.Equal(len(out), 52)
	is.Equal(out[51], float64(51))
}

func TestConvertToModelTimeShiftsLeadingWeek53(t *testing.T) {
	is := is.New(t)

	input := make([]float64, 52)
	for i := range input {
		input[i] = float64(i)
	}
	start := time.Date(2026, time.December, 30, 0, 0, 0, 0, time.UTC)

	newStart, out, err := vectorops.ConvertToModelTime(input, start, 24*time.Hour)
	is.NoErr(err)
	is.Equal(newStart, time.Date(2027, time.January, 4, 0, 0, 0, 0, time.UTC))
	is.Equal(len(out), 47)
	is.Equal(out[0], float64(5))
	is.Equal(out[len(out)-1], float64(51))
}

func TestPeriodizeModelTimeUniformYearLength(t *testing.T) {
	is := is.New(t)

	periodsPerYear := 52
	input := make([]float64, periodsPerYear*4)
	for i := range input {
		input[i] = float64(i)
	}

	out, err := vectorops.PeriodizeModelTime(input, 2020, 4, 2021, 2, week())
	is.NoErr(err)
	is.Equal(len(out), periodsPerYear*2)
	is.Equal(out[0], float64(periodsPerYear))
}

func TestPeriodizeIsoTimeRespectsWeek53Years(t *testing.T) {
	is := is.New(t)

	// 2019 (52 weeks) then 2020 (53 weeks).
	input := make([]float64, 52+53)
	for i := range input {
		input[i] = float64(i)
	}

	out, err := vectorops.PeriodizeIsoTime(input, 2019, 2, 2020, 1, week())
	is.NoErr(err)
	is.Equal(len(out), 53)
	is.Equal(out[0], float64(52))
}

func TestRepeatOneYearModelTimeTilesCyclically(t *testing.T) {
	is := is.New(t)

	input := make([]float64, 52)
	for i := range input {
		input[i] = float64(i)
	}
	anchor := time.Date(1981, time.January, 5, 0, 0, 0, 0, time.UTC)

	out, err := vectorops.RepeatOneYearModelTime(input, anchor, week(), anchor, anchor.AddDate(0, 0, 14))
	is.NoErr(err)
	is.Equal(out, []float64{0, 1})
}

func week() time.Duration {
	return 7 * 24 * time.Hour
}
