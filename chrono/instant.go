package chrono

import (
	"fmt"
	"time"

	errs "github.com/tidepool-org/fakegen/errors"
)

// Instant is a point in time with second precision. An instant without a location is naive:
// its wall clock is stored as if it were UTC and it can't be compared with aware instants.
type Instant struct {
	seconds int64
	loc     *time.Location
}

// Zone wraps an optional location so formatter options can carry a timezone
type Zone struct {
	*time.Location
}

func ToTimestamp(i Instant) int64 {
	return i.seconds
}

func FromTimestamp(timestamp int64, loc *time.Location) Instant {
	return Instant{seconds: timestamp, loc: loc}
}

// NewInstant builds an instant from a wall clock reading. When loc is set the zone offset
// in effect at that wall clock is applied.
func NewInstant(year, month, day, hour, minute, second int, loc *time.Location) Instant {
	wall := wallSeconds(year, month, day, hour, minute, second)
	if loc == nil {
		return Instant{seconds: wall}
	}

	offset := zoneOffset(loc, wall)
	seconds := wall - offset
	if adjusted := zoneOffset(loc, seconds); adjusted != offset {
		seconds = wall - adjusted
	}
	return Instant{seconds: seconds, loc: loc}
}

// FromTime converts t into an instant. A naive instant keeps the wall clock of t.
func FromTime(t time.Time, aware bool) Instant {
	if aware {
		return Instant{seconds: t.Unix(), loc: t.Location()}
	}
	y, m, d := t.Date()
	h, mi, s := t.Clock()
	return NewInstant(y, int(m), d, h, mi, s, nil)
}

func (i Instant) Unix() int64 {
	return i.seconds
}

func (i Instant) Location() *time.Location {
	return i.loc
}

func (i Instant) IsAware() bool {
	return i.loc != nil
}

// In returns the same absolute instant in loc. Naive instants are treated as UTC.
func (i Instant) In(loc *time.Location) Instant {
	return Instant{seconds: i.seconds, loc: loc}
}

// Naive returns the local wall clock of an aware instant. Naive instants are returned unchanged.
func (i Instant) Naive() Instant {
	if i.loc == nil {
		return i
	}
	return FromTime(time.Unix(i.seconds, 0).In(time.Local), false)
}

// Localize returns the instant in loc. The wall clock of a naive instant is read in the
// local zone first.
func (i Instant) Localize(loc *time.Location) Instant {
	if i.loc == nil {
		c := i.Civil()
		i = NewInstant(c.Year, c.Month, c.Day, c.Hour, c.Minute, c.Second, time.Local)
	}
	return i.In(loc)
}

// Offset returns the UTC offset in seconds, zero for naive instants
func (i Instant) Offset() int64 {
	if i.loc == nil {
		return 0
	}
	return zoneOffset(i.loc, i.seconds)
}

// ZoneName returns the abbreviated zone name, empty for naive instants
func (i Instant) ZoneName() string {
	if i.loc == nil {
		return ""
	}
	name, _ := time.Unix(i.seconds, 0).In(i.loc).Zone()
	return name
}

// Civil returns the wall clock reading of the instant
func (i Instant) Civil() Civil {
	return civilFromSeconds(i.seconds + i.Offset())
}

func (i Instant) Date() Date {
	c := i.Civil()
	return Date{Year: c.Year, Month: c.Month, Day: c.Day}
}

func (i Instant) TimeOfDay() TimeOfDay {
	c := i.Civil()
	return TimeOfDay{Hour: c.Hour, Minute: c.Minute, Second: c.Second}
}

// Time converts the instant to a time.Time, naive instants are returned in UTC
func (i Instant) Time() time.Time {
	if i.loc == nil {
		return time.Unix(i.seconds, 0).UTC()
	}
	return time.Unix(i.seconds, 0).In(i.loc)
}

func (i Instant) Add(d time.Duration) Instant {
	return Instant{seconds: i.seconds + int64(d/time.Second), loc: i.loc}
}

// Truncate rounds the wall clock down to a multiple of d
func (i Instant) Truncate(d time.Duration) Instant {
	step := int64(d / time.Second)
	if step <= 0 {
		return i
	}
	offset := i.Offset()
	wall := i.seconds + offset
	wall -= floorMod(wall, step)
	return Instant{seconds: wall - offset, loc: i.loc}
}

// Compare returns -1, 0 or +1. Comparing naive and aware instants is an error.
func (i Instant) Compare(other Instant) (int, error) {
	if i.IsAware() != other.IsAware() {
		return 0, fmt.Errorf("%w: %s and %s", errs.Comparison, i.kind(), other.kind())
	}
	switch {
	case i.seconds < other.seconds:
		return -1, nil
	case i.seconds > other.seconds:
		return 1, nil
	default:
		return 0, nil
	}
}

func (i Instant) Before(other Instant) (bool, error) {
	c, err := i.Compare(other)
	return c < 0, err
}

func (i Instant) After(other Instant) (bool, error) {
	c, err := i.Compare(other)
	return c > 0, err
}

func (i Instant) Equal(other Instant) (bool, error) {
	c, err := i.Compare(other)
	return c == 0 && err == nil, err
}

// ISO8601 formats the instant as YYYY-MM-DDTHH:MM:SS with a +HH:MM suffix for aware instants
func (i Instant) ISO8601() string {
	return i.format("T")
}

func (i Instant) String() string {
	return i.format(" ")
}

func (i Instant) Strftime(layout string) (string, error) {
	return strftime(layout, i.Civil(), i)
}

func (i Instant) format(sep string) string {
	c := i.Civil()
	s := fmt.Sprintf("%04d-%02d-%02d%s%02d:%02d:%02d", c.Year, c.Month, c.Day, sep, c.Hour, c.Minute, c.Second)
	if i.IsAware() {
		s += formatOffset(i.Offset(), true)
	}
	return s
}

func (i Instant) kind() string {
	if i.IsAware() {
		return "offset-aware"
	}
	return "offset-naive"
}

func zoneOffset(loc *time.Location, seconds int64) int64 {
	_, offset := time.Unix(seconds, 0).In(loc).Zone()
	return int64(offset)
}

func formatOffset(offset int64, colon bool) string {
	sign := '+'
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	hours := offset / secondsPerHour
	minutes := offset % secondsPerHour / secondsPerMinute
	if colon {
		return fmt.Sprintf("%c%02d:%02d", sign, hours, minutes)
	}
	return fmt.Sprintf("%c%02d%02d", sign, hours, minutes)
}
