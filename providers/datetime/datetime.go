package datetime

import (
	"fmt"
	"strconv"
	"time"

	"github.com/tidepool-org/fakegen/chrono"
	"github.com/tidepool-org/fakegen/generator"
	"github.com/tidepool-org/fakegen/sampler"
)

// MinTimestamp is the first second of 0001-01-01
const MinTimestamp int64 = -62135596800

const defaultStartDate = "-30y"

var centuries = []string{
	"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X",
	"XI", "XII", "XIII", "XIV", "XV", "XVI", "XVII", "XVIII", "XIX", "XX", "XXI",
}

type Provider struct {
	*generator.Base
}

func New(g *generator.Generator) generator.Provider {
	return &Provider{Base: generator.NewBase(g)}
}

func (p *Provider) Name() string {
	return "date_time"
}

// Now returns the current instant in loc, naive when loc is nil
func (p *Provider) Now(loc *time.Location) chrono.Instant {
	return sampler.Now(p.Generator().Clock(), loc)
}

// UnixTime returns a random timestamp between the epoch and now
func (p *Provider) UnixTime() int64 {
	now := p.Generator().Clock().Now().Unix()
	if now < 0 {
		return 0
	}
	return p.Rand().Int63n(now + 1)
}

func (p *Provider) DateTime(loc *time.Location) chrono.Instant {
	return p.fromTimestamp(p.UnixTime(), loc)
}

// DateTimeAD returns a random instant between 0001-01-01 and now
func (p *Provider) DateTimeAD(loc *time.Location) chrono.Instant {
	now := p.Generator().Clock().Now().Unix()
	return p.fromTimestamp(MinTimestamp+p.Rand().Int63n(now-MinTimestamp+1), loc)
}

func (p *Provider) ISO8601(loc *time.Location) string {
	return p.DateTime(loc).ISO8601()
}

func (p *Provider) DateObject() chrono.Date {
	return p.DateTime(nil).Date()
}

func (p *Provider) TimeObject() chrono.TimeOfDay {
	return p.DateTime(nil).TimeOfDay()
}

// DateTimeBetween returns an instant between two bounds relative to now, see
// sampler.ParseRelative for the accepted values.
func (p *Provider) DateTimeBetween(startDate, endDate any, loc *time.Location) (chrono.Instant, error) {
	if startDate == nil {
		startDate = defaultStartDate
	}
	return p.between(startDate, endDate, loc)
}

// DateTimeBetweenDates returns an instant between two absolute bounds which default to now
func (p *Provider) DateTimeBetweenDates(start, end any, loc *time.Location) (chrono.Instant, error) {
	return p.between(start, end, loc)
}

func (p *Provider) ThisPeriod(period sampler.Period, beforeNow, afterNow bool, loc *time.Location) chrono.Instant {
	return sampler.ThisPeriod(p.Rand(), p.Generator().Clock(), period, beforeNow, afterNow, loc)
}

func (p *Provider) AmPm() string {
	s, _ := p.DateTime(nil).Strftime("%p")
	return s
}

func (p *Provider) DayOfMonth() string {
	return fmt.Sprintf("%02d", p.DateTime(nil).Civil().Day)
}

func (p *Provider) DayOfWeek() string {
	return p.DateTime(nil).Civil().Weekday.String()
}

func (p *Provider) Month() string {
	return fmt.Sprintf("%02d", p.DateTime(nil).Civil().Month)
}

func (p *Provider) MonthName() string {
	return time.Month(p.DateTime(nil).Civil().Month).String()
}

func (p *Provider) Year() string {
	return strconv.Itoa(p.DateTime(nil).Civil().Year)
}

func (p *Provider) Century() string {
	return p.RandomElement(centuries)
}

func (p *Provider) Timezone() string {
	return p.RandomElement(p.Generator().Data().Timezones)
}

func (p *Provider) between(start, end any, loc *time.Location) (chrono.Instant, error) {
	now := p.Now(loc)
	from, err := sampler.ParseRelative(start, now)
	if err != nil {
		return chrono.Instant{}, err
	}
	to, err := sampler.ParseRelative(end, now)
	if err != nil {
		return chrono.Instant{}, err
	}

	r, err := sampler.NewDateRange(from, to)
	if err != nil {
		return chrono.Instant{}, err
	}
	return sampler.Between(p.Rand(), r, loc), nil
}

// fromTimestamp returns the instant in loc, or its local wall clock when loc is nil
func (p *Provider) fromTimestamp(timestamp int64, loc *time.Location) chrono.Instant {
	if loc != nil {
		return chrono.FromTimestamp(timestamp, loc)
	}
	return chrono.FromTimestamp(timestamp, time.UTC).Naive()
}

type zoneOptions struct {
	TZInfo chrono.Zone `mapstructure:"tzinfo,omitnested"`
}

type patternOptions struct {
	Pattern string `mapstructure:"pattern"`
}

type betweenOptions struct {
	StartDate any         `mapstructure:"start_date"`
	EndDate   any         `mapstructure:"end_date"`
	TZInfo    chrono.Zone `mapstructure:"tzinfo,omitnested"`
}

type betweenDatesOptions struct {
	DatetimeStart any         `mapstructure:"datetime_start"`
	DatetimeEnd   any         `mapstructure:"datetime_end"`
	TZInfo        chrono.Zone `mapstructure:"tzinfo,omitnested"`
}

type periodOptions struct {
	BeforeNow bool        `mapstructure:"before_now"`
	AfterNow  bool        `mapstructure:"after_now"`
	TZInfo    chrono.Zone `mapstructure:"tzinfo,omitnested"`
}

func (p *Provider) Formatters() []generator.Formatter {
	formatters := []generator.Formatter{
		generator.Simple("unix_time", p.UnixTime),
		generator.WithOptions("date_time", zoneOptions{}, func(opts zoneOptions) (chrono.Instant, error) {
			return p.DateTime(opts.TZInfo.Location), nil
		}),
		generator.WithOptions("date_time_ad", zoneOptions{}, func(opts zoneOptions) (chrono.Instant, error) {
			return p.DateTimeAD(opts.TZInfo.Location), nil
		}),
		generator.WithOptions("iso8601", zoneOptions{}, func(opts zoneOptions) (string, error) {
			return p.ISO8601(opts.TZInfo.Location), nil
		}),
		generator.WithOptions("date", patternOptions{Pattern: "%Y-%m-%d"}, func(opts patternOptions) (string, error) {
			return p.DateTime(nil).Strftime(opts.Pattern)
		}),
		generator.WithOptions("time", patternOptions{Pattern: "%H:%M:%S"}, func(opts patternOptions) (string, error) {
			return p.DateTime(nil).Strftime(opts.Pattern)
		}),
		generator.Simple("date_object", p.DateObject),
		generator.Simple("time_object", p.TimeObject),
		generator.WithOptions("date_time_between", betweenOptions{}, func(opts betweenOptions) (chrono.Instant, error) {
			return p.DateTimeBetween(opts.StartDate, opts.EndDate, opts.TZInfo.Location)
		}),
		generator.WithOptions("date_time_between_dates", betweenDatesOptions{}, func(opts betweenDatesOptions) (chrono.Instant, error) {
			return p.DateTimeBetweenDates(opts.DatetimeStart, opts.DatetimeEnd, opts.TZInfo.Location)
		}),
		generator.Simple("am_pm", p.AmPm),
		generator.Simple("day_of_month", p.DayOfMonth),
		generator.Simple("day_of_week", p.DayOfWeek),
		generator.Simple("month", p.Month),
		generator.Simple("month_name", p.MonthName),
		generator.Simple("year", p.Year),
		generator.Simple("century", p.Century),
		generator.Simple("timezone", p.Timezone),
	}

	for _, period := range []sampler.Period{sampler.Century, sampler.Decade, sampler.Year, sampler.Month} {
		formatters = append(formatters, p.thisPeriod(period))
	}
	return formatters
}

func (p *Provider) thisPeriod(period sampler.Period) generator.Formatter {
	name := "date_time_this_" + period.String()
	return generator.WithOptions(name, periodOptions{BeforeNow: true}, func(opts periodOptions) (chrono.Instant, error) {
		return p.ThisPeriod(period, opts.BeforeNow, opts.AfterNow, opts.TZInfo.Location), nil
	})
}
