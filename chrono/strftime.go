package chrono

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	errs "github.com/tidepool-org/fakegen/errors"
)

// MinFormatYear is the first year for which %y and %s are supported
const MinFormatYear = 1900

func strftime(layout string, c Civil, instant Instant) (string, error) {
	var b strings.Builder
	for i := 0; i < len(layout); i++ {
		if layout[i] != '%' {
			b.WriteByte(layout[i])
			continue
		}
		if i+1 == len(layout) {
			b.WriteByte('%')
			break
		}
		i++
		verb := layout[i]
		switch verb {
		case 'Y':
			fmt.Fprintf(&b, "%04d", c.Year)
		case 'y':
			if c.Year < MinFormatYear {
				return "", unsupportedBefore1900(verb, c.Year)
			}
			fmt.Fprintf(&b, "%02d", c.Year%100)
		case 's':
			if c.Year < MinFormatYear {
				return "", unsupportedBefore1900(verb, c.Year)
			}
			b.WriteString(strconv.FormatInt(instant.Unix(), 10))
		case 'm':
			fmt.Fprintf(&b, "%02d", c.Month)
		case 'd':
			fmt.Fprintf(&b, "%02d", c.Day)
		case 'H':
			fmt.Fprintf(&b, "%02d", c.Hour)
		case 'I':
			hour := c.Hour % 12
			if hour == 0 {
				hour = 12
			}
			fmt.Fprintf(&b, "%02d", hour)
		case 'M':
			fmt.Fprintf(&b, "%02d", c.Minute)
		case 'S':
			fmt.Fprintf(&b, "%02d", c.Second)
		case 'p':
			if c.Hour < 12 {
				b.WriteString("AM")
			} else {
				b.WriteString("PM")
			}
		case 'A':
			b.WriteString(c.Weekday.String())
		case 'a':
			b.WriteString(c.Weekday.String()[:3])
		case 'w':
			b.WriteString(strconv.Itoa(int(c.Weekday)))
		case 'B':
			b.WriteString(time.Month(c.Month).String())
		case 'b':
			b.WriteString(time.Month(c.Month).String()[:3])
		case 'j':
			fmt.Fprintf(&b, "%03d", c.YearDay)
		case 'z':
			if instant.IsAware() {
				b.WriteString(formatOffset(instant.Offset(), false))
			}
		case 'Z':
			b.WriteString(instant.ZoneName())
		case '%':
			b.WriteByte('%')
		default:
			b.WriteByte('%')
			b.WriteByte(verb)
		}
	}
	return b.String(), nil
}

func unsupportedBefore1900(verb byte, year int) error {
	return fmt.Errorf("%w: %%%c is not supported for year %d (requires year >= %d)", errs.Format, verb, year, MinFormatYear)
}
