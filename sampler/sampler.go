package sampler

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/tidepool-org/fakegen/chrono"
	"github.com/tidepool-org/fakegen/clock"
	errs "github.com/tidepool-org/fakegen/errors"
)

// DateRange is an inclusive range of instants. Naive and aware bounds can be mixed, naive
// bounds are local wall clocks.
type DateRange struct {
	Start chrono.Instant
	End   chrono.Instant
}

func NewDateRange(start, end chrono.Instant) (DateRange, error) {
	if start.Localize(time.UTC).Unix() > end.Localize(time.UTC).Unix() {
		return DateRange{}, fmt.Errorf("%w: range start %s is after end %s", errs.Value, start, end)
	}
	return DateRange{Start: start, End: end}, nil
}

// Between returns an instant uniformly distributed in [r.Start, r.End]. The result is aware
// only when loc is set, regardless of the awareness of the bounds. A naive result is a local
// wall clock, like every other naive instant.
func Between(rng *rand.Rand, r DateRange, loc *time.Location) chrono.Instant {
	var start, end int64
	if loc == nil {
		start, end = chrono.ToTimestamp(r.Start.Naive()), chrono.ToTimestamp(r.End.Naive())
	} else {
		start, end = chrono.ToTimestamp(r.Start.Localize(loc)), chrono.ToTimestamp(r.End.Localize(loc))
	}
	if end < start {
		start, end = end, start
	}
	timestamp := start + rng.Int63n(end-start+1)
	return chrono.FromTimestamp(timestamp, loc)
}

// Now reads the clock as an aware instant in loc, or as a naive local wall clock when loc is nil
func Now(clk clock.Clock, loc *time.Location) chrono.Instant {
	now := clk.Now()
	if loc != nil {
		return chrono.FromTime(now.In(loc), true)
	}
	return chrono.FromTime(now.In(time.Local), false)
}

// ThisPeriod returns a random instant within the calendar period containing now.
// beforeNow and afterNow select the part of the period on either side of now; when neither
// is set the current instant is returned.
func ThisPeriod(rng *rand.Rand, clk clock.Clock, period Period, beforeNow, afterNow bool, loc *time.Location) chrono.Instant {
	now := Now(clk, loc)
	start := period.Start(now)
	next := period.Next(start)

	switch {
	case beforeNow && afterNow:
		return Between(rng, DateRange{Start: start, End: next}, loc)
	case afterNow:
		return Between(rng, DateRange{Start: now, End: next}, loc)
	case beforeNow:
		return Between(rng, DateRange{Start: start, End: now}, loc)
	default:
		return now
	}
}
