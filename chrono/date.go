package chrono

import (
	"fmt"
	"time"

	errs "github.com/tidepool-org/fakegen/errors"
)

// Date is a calendar date in the proleptic Gregorian calendar. Unlike most platform
// formatting routines it formats dates before 1900.
type Date struct {
	Year  int
	Month int
	Day   int
}

func NewDate(year, month, day int) (Date, error) {
	if year < 1 {
		return Date{}, fmt.Errorf("%w: year %d is out of range", errs.Value, year)
	}
	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("%w: month %d is out of range", errs.Value, month)
	}
	if day < 1 || day > DaysIn(year, month) {
		return Date{}, fmt.Errorf("%w: day %d is out of range for %04d-%02d", errs.Value, day, year, month)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// Days returns the number of days since 1970-01-01
func (d Date) Days() int64 {
	return DaysFromCivil(d.Year, d.Month, d.Day)
}

func (d Date) Weekday() time.Weekday {
	return WeekdayFromDays(d.Days())
}

func (d Date) YearDay() int {
	return YearDay(d.Year, d.Month, d.Day)
}

// Midnight returns the instant at the start of the day, naive when loc is nil
func (d Date) Midnight(loc *time.Location) Instant {
	return NewInstant(d.Year, d.Month, d.Day, 0, 0, 0, loc)
}

func (d Date) Strftime(layout string) (string, error) {
	c := Civil{
		Year:    d.Year,
		Month:   d.Month,
		Day:     d.Day,
		Weekday: d.Weekday(),
		YearDay: d.YearDay(),
	}
	return strftime(layout, c, d.Midnight(nil))
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}
