package chrono

import "time"

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour

	// days between 0000-03-01 and 1970-01-01
	epochShift = 719468
	daysPerEra = 146097
)

// IsLeap reports whether year is a leap year in the proleptic Gregorian calendar
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var daysBeforeMonth = [...]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// DaysIn returns the number of days in month of year
func DaysIn(year, month int) int {
	switch month {
	case 2:
		if IsLeap(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

// YearDay returns the 1-based ordinal day of the date within its year
func YearDay(year, month, day int) int {
	yday := daysBeforeMonth[month-1] + day
	if month > 2 && IsLeap(year) {
		yday++
	}
	return yday
}

// DaysFromCivil returns the number of days between 1970-01-01 and the given date.
// Years are counted from March so the leap day is the last day of the computational year.
func DaysFromCivil(year, month, day int) int64 {
	y := int64(year)
	if month <= 2 {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400
	mp := (int64(month) + 9) % 12
	doy := (153*mp+2)/5 + int64(day) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*daysPerEra + doe - epochShift
}

// CivilFromDays is the inverse of DaysFromCivil
func CivilFromDays(days int64) (year, month, day int) {
	z := days + epochShift
	era := floorDiv(z, daysPerEra)
	doe := z - era*daysPerEra
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153

	d := doy - (153*mp+2)/5 + 1
	m := mp + 3
	if mp >= 10 {
		m = mp - 9
	}
	y := yoe + era*400
	if m <= 2 {
		y++
	}
	return int(y), int(m), int(d)
}

// WeekdayFromDays returns the day of the week for a day count relative to 1970-01-01 (a Thursday)
func WeekdayFromDays(days int64) time.Weekday {
	return time.Weekday(floorMod(days+int64(time.Thursday), 7))
}

// Civil is a broken-down wall clock reading
type Civil struct {
	Year    int
	Month   int
	Day     int
	Hour    int
	Minute  int
	Second  int
	Weekday time.Weekday
	YearDay int
}

func civilFromSeconds(wall int64) Civil {
	days := floorDiv(wall, secondsPerDay)
	secs := floorMod(wall, secondsPerDay)
	y, m, d := CivilFromDays(days)
	return Civil{
		Year:    y,
		Month:   m,
		Day:     d,
		Hour:    int(secs / secondsPerHour),
		Minute:  int(secs % secondsPerHour / secondsPerMinute),
		Second:  int(secs % secondsPerMinute),
		Weekday: WeekdayFromDays(days),
		YearDay: YearDay(y, m, d),
	}
}

func wallSeconds(year, month, day, hour, minute, second int) int64 {
	return DaysFromCivil(year, month, day)*secondsPerDay +
		int64(hour)*secondsPerHour +
		int64(minute)*secondsPerMinute +
		int64(second)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}
