package timestamp

import (
	"fmt"
	"testing"
	"time"

	"github.com/matryer/is"
)

// checkDate for use in parse checking
func checkDate(t *testing.T, input string, compare string) {
	is := is.New(t)

	v, err := ParseInUTC(input)
	is.NoErr(err)

	ts := ISO8601LongMsec(v)
	t.Logf("Input %s, Expecting %s, Got %s", input, compare, ts)
	is.Equal(ts, compare)
}

// TestParse parses every supported timestamp pattern and compares against
// the expected canonical value.
func TestParse(t *testing.T) {
	is := is.New(t)
	start := time.Now()

	// Get a unix timestamp we should not parse
	_, err := ParseInUTC("1")
	is.True(err != nil)

	// Get time value from parsed reference time
	unixBase, err := ParseInUTC("2006-01-02T15:04:05.000+00:00")
	is.NoErr(err)

	// Use parsed reference time to create unix timestamp and nanosecond timestamp
	checkDate(t, fmt.Sprint(unixBase.UnixNano()), "2006-01-02T15:04:05.000+00:00")
	checkDate(t, fmt.Sprint(unixBase.Unix()), "2006-01-02T15:04:05.000+00:00")

	// RFC7232 - used in HTTP protocol
	checkDate(t, "Mon, 02 Jan 2006 15:04:05 GMT", "2006-01-02T15:04:05.000+00:00")

	// Short ISO-8601 timestamps with numerical zone offsets
	checkDate(t, "20060102T150405-0700", "2006-01-02T22:04:05.000+00:00")
	checkDate(t, "20060102T150405-07", "2006-01-02T22:04:05.000+00:00")
	checkDate(t, "20060102T150405.000+0000", "2006-01-02T15:04:05.000+00:00")
	checkDate(t, "20060102T150405.000-0000", "2006-01-02T15:04:05.000+00:00")
	checkDate(t, "20060102T150405.000-0700", "2006-01-02T22:04:05.000+00:00")
	checkDate(t, "20060102T150405.000+0700", "2006-01-02T08:04:05.000+00:00")
	checkDate(t, "20060102T150405.000000-0700", "2006-01-02T22:04:05.000+00:00")
	checkDate(t, "20060102T150405.999999999-0700", "2006-01-02T22:04:05.999+00:00")

	// Long ISO-8601 timestamps with numerical zone offsets
	checkDate(t, "2006-01-02T15:04:05-07:00", "2006-01-02T22:04:05.000+00:00")
	checkDate(t, "2006-01-02T15:04:05-07", "2006-01-02T22:04:05.000+00:00")
	checkDate(t, "2006-01-02T15:04:05.000-07:00", "2006-01-02T22:04:05.000+00:00")
	checkDate(t, "2006-01-02T15:04:05.000-07", "2006-01-02T22:04:05.000+00:00")
	checkDate(t, "2006-01-02T15:04:05.000000-07:00", "2006-01-02T22:04:05.000+00:00")
	checkDate(t, "2006-01-02T15:04:05.001000-07", "2006-01-02T22:04:05.001+00:00")
	checkDate(t, "2006-01-02T15:04:05.001000000-07:00", "2006-01-02T22:04:05.001+00:00")
	checkDate(t, "2006-01-02T15:04:05.999999999-07", "2006-01-02T22:04:05.999+00:00")

	// Short ISO-8601 timestamps with UTC zone offsets
	checkDate(t, "20060102T150405Z", "2006-01-02T15:04:05.000+00:00")
	checkDate(t, "20060102T150405.000Z", "2006-01-02T15:04:05.000+00:00")
	checkDate(t, "20060102T150405.000000Z", "2006-01-02T15:04:05.000+00:00")
	checkDate(t, "20060102T150405.000000000Z", "2006-01-02T15:04:05.000+00:00")
	checkDate(t, "20060102T150405.001000000Z", "2006-01-02T15:04:05.001+00:00")
	checkDate(t, "20060102T150405.000100000Z", "2006-01-02T15:04:05.000+00:00")
	checkDate(t, "20060102T150405.999999999Z", "2006-01-02T15:04:05.999+00:00")

	// Long date time with UTC zone offsets
	checkDate(t, "2006-01-02T15:04:05Z", "2006-01-02T15:04:05.000+00:00")
	checkDate(t, "2006-01-02T15:04:05.000Z", "2006-01-02T15:04:05.000+00:00")
	checkDate(t, "2006-01-02T15:04:05.000000Z", "2006-01-02T15:04:05.000+00:00")
	checkDate(t, "2006-01-02T15:04:05.999999999Z", "2006-01-02T15:04:05.999+00:00")

	// Just in case
	checkDate(t, "2006-01-02 15-04-05", "2006-01-02T15:04:05.000+00:00")
	checkDate(t, "20060102150405", "2006-01-02T15:04:05.000+00:00")

	// Short ISO-8601 timestamps with no zone offset. Assume UTC.
	checkDate(t, "20060102T150405", "2006-01-02T15:04:05.000+00:00")
	checkDate(t, "20060102T150405.000", "2006-01-02T15:04:05.000+00:00")
	checkDate(t, "20060102T150405.000000", "2006-01-02T15:04:05.000+00:00")
	checkDate(t, "20060102T150405.999999999", "2006-01-02T15:04:05.999+00:00")

	// SQL
	checkDate(t, "2006-01-02 22:04:05", "2006-01-02T22:04:05.000+00:00")
	checkDate(t, "2006-01-02 22:04:05 -00", "2006-01-02T22:04:05.000+00:00")
	checkDate(t, "2006-01-02 22:04:05 +00", "2006-01-02T22:04:05.000+00:00")
	checkDate(t, "2006-01-02 22:04:05 -00:00", "2006-01-02T22:04:05.000+00:00")
	checkDate(t, "2006-01-02 22:04:05 +00:00", "2006-01-02T22:04:05.000+00:00")

	// Hopefully less likely to be found. Assume UTC.
	checkDate(t, "20060102", "2006-01-02T00:00:00.000+00:00")
	checkDate(t, "2006-01-02", "2006-01-02T00:00:00.000+00:00")
	checkDate(t, "2006/01/02", "2006-01-02T00:00:00.000+00:00")
	checkDate(t, "01/02/2006", "2006-01-02T00:00:00.000+00:00")
	checkDate(t, "1/2/2006", "2006-01-02T00:00:00.000+00:00")

	// Weird ones with improper separators
	checkDate(t, "2006-01-02T15-04-05-0700", "2006-01-02T22:04:05.000+00:00")
	checkDate(t, "2006-01-02T15-04-05.000-0700", "2006-01-02T22:04:05.000+00:00")
	checkDate(t, "2006-01-02T15-04-05.000000-0700", "2006-01-02T22:04:05.000+00:00")
	checkDate(t, "2006-01-02T15-04-05.999999999-0700", "2006-01-02T22:04:05.999+00:00")

	checkDate(t, "2006-01-02T15-04-05-07:00", "2006-01-02T22:04:05.000+00:00")
	checkDate(t, "2006-01-02T15-04-05.000-07:00", "2006-01-02T22:04:05.000+00:00")
	checkDate(t, "2006-01-02T15-04-05.000000-07:00", "2006-01-02T22:04:05.000+00:00")
	checkDate(t, "2006-01-02T15-04-05.999999999-07:00", "2006-01-02T22:04:05.999+00:00")

	t.Logf("Took %v to check", time.Since(start))
}

func TestOrdering(t *testing.T) {
	is := is.New(t)

	t1, err1 := ParseInUTC("20201210T223900-0500")
	is.NoErr(err1)

	t2, err2 := ParseInUTC("20201211T223900-0500")
	is.NoErr(err2)

	is.True(StartTimeIsBeforeEndTime(t1, t2))
	is.True(!StartTimeIsBeforeEndTime(t2, t1))
}
