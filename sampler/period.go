package sampler

import (
	"fmt"
	"strings"

	"github.com/tidepool-org/fakegen/chrono"
	errs "github.com/tidepool-org/fakegen/errors"
)

type Period int

const (
	Century Period = iota
	Decade
	Year
	Month
)

var periodNames = map[Period]string{
	Century: "century",
	Decade:  "decade",
	Year:    "year",
	Month:   "month",
}

func ParsePeriod(name string) (Period, error) {
	for period, n := range periodNames {
		if strings.EqualFold(n, name) {
			return period, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown period %q", errs.Value, name)
}

func (p Period) String() string {
	return periodNames[p]
}

// Start returns the first instant of the period containing now, with the same awareness as now
func (p Period) Start(now chrono.Instant) chrono.Instant {
	c := now.Civil()
	switch p {
	case Century:
		return chrono.NewInstant(c.Year-c.Year%100, 1, 1, 0, 0, 0, now.Location())
	case Decade:
		return chrono.NewInstant(c.Year-c.Year%10, 1, 1, 0, 0, 0, now.Location())
	case Year:
		return chrono.NewInstant(c.Year, 1, 1, 0, 0, 0, now.Location())
	default:
		return chrono.NewInstant(c.Year, c.Month, 1, 0, 0, 0, now.Location())
	}
}

// Next returns the first instant of the period following the one starting at start
func (p Period) Next(start chrono.Instant) chrono.Instant {
	c := start.Civil()
	switch p {
	case Century:
		return chrono.NewInstant(c.Year+100, 1, 1, 0, 0, 0, start.Location())
	case Decade:
		return chrono.NewInstant(c.Year+10, 1, 1, 0, 0, 0, start.Location())
	case Year:
		return chrono.NewInstant(c.Year+1, 1, 1, 0, 0, 0, start.Location())
	default:
		if c.Month == 12 {
			return chrono.NewInstant(c.Year+1, 1, 1, 0, 0, 0, start.Location())
		}
		return chrono.NewInstant(c.Year, c.Month+1, 1, 0, 0, 0, start.Location())
	}
}
