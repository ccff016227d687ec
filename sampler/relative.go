package sampler

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/tidepool-org/fakegen/chrono"
	errs "github.com/tidepool-org/fakegen/errors"
)

var timespanRegexp = regexp.MustCompile(`^([+-])?(?:(\d+)y)?(?:(\d+)M)?(?:(\d+)w)?(?:(\d+)d)?(?:(\d+)h)?(?:(\d+)m)?(?:(\d+)s)?$`)

// seconds per unit in the order of the timespan capture groups
var timespanUnits = []float64{
	365.24 * 86400,
	30.42 * 86400,
	7 * 86400,
	86400,
	3600,
	60,
	1,
}

// ParseRelative resolves a range bound against now. Accepted values are nil (now), an instant,
// a date, a time.Time, a unix timestamp, a duration offset or a string such as "now", "-30y"
// or "+1w2d".
func ParseRelative(value any, now chrono.Instant) (chrono.Instant, error) {
	switch v := value.(type) {
	case nil:
		return now, nil
	case chrono.Instant:
		return v, nil
	case *chrono.Instant:
		if v == nil {
			return now, nil
		}
		return *v, nil
	case chrono.Date:
		return v.Midnight(now.Location()), nil
	case time.Time:
		return chrono.FromTime(v, true), nil
	case time.Duration:
		return now.Add(v), nil
	case int:
		return chrono.FromTimestamp(int64(v), now.Location()), nil
	case int64:
		return chrono.FromTimestamp(v, now.Location()), nil
	case string:
		return parseTimespan(v, now)
	default:
		return chrono.Instant{}, fmt.Errorf("%w: can't use %T as a date bound", errs.Value, value)
	}
}

func parseTimespan(text string, now chrono.Instant) (chrono.Instant, error) {
	text = strings.TrimSpace(text)
	if text == "" || text == "now" || text == "today" {
		return now, nil
	}

	matches := timespanRegexp.FindStringSubmatch(text)
	if matches == nil || strings.TrimLeft(text, "+-") == "" {
		return chrono.Instant{}, fmt.Errorf("%w: can't parse date bound %q", errs.Value, text)
	}

	var seconds float64
	for i, unit := range timespanUnits {
		group := matches[i+2]
		if group == "" {
			continue
		}
		n, err := strconv.ParseInt(group, 10, 64)
		if err != nil {
			return chrono.Instant{}, fmt.Errorf("%w: %s", errs.Value, err)
		}
		seconds += float64(n) * unit
	}
	if matches[1] == "-" {
		seconds = -seconds
	}

	return chrono.FromTimestamp(now.Unix()+int64(math.Round(seconds)), now.Location()), nil
}
