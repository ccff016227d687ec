package datetime_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/tidepool-org/fakegen/chrono"
	"github.com/tidepool-org/fakegen/clock"
	clockTest "github.com/tidepool-org/fakegen/clock/test"
	"github.com/tidepool-org/fakegen/config"
	errs "github.com/tidepool-org/fakegen/errors"
	"github.com/tidepool-org/fakegen/generator"
	"github.com/tidepool-org/fakegen/locales"
	"github.com/tidepool-org/fakegen/providers/datetime"
	"github.com/tidepool-org/fakegen/sampler"
	"github.com/tidepool-org/fakegen/test"
)

func format(g *generator.Generator, name string, args generator.Args) chrono.Instant {
	value, err := g.Format(name, args)
	Expect(err).ToNot(HaveOccurred())
	instant, ok := value.(chrono.Instant)
	Expect(ok).To(BeTrue())
	return instant
}

func utc() generator.Args {
	return generator.Named(map[string]any{"tzinfo": time.UTC})
}

var _ = Describe("Provider", func() {
	var g *generator.Generator

	BeforeEach(func() {
		g = generator.New(GinkgoRandomSeed())
		g.AddProvider(datetime.New(g))
	})

	It("returns naive instants unless a timezone is given", func() {
		Expect(format(g, "date_time", generator.Args{}).IsAware()).To(BeFalse())
		Expect(format(g, "date_time", utc()).Location()).To(Equal(time.UTC))
		Expect(format(g, "date_time", generator.Positional("UTC")).IsAware()).To(BeTrue())

		Expect(format(g, "date_time_ad", generator.Args{}).IsAware()).To(BeFalse())
		Expect(format(g, "date_time_ad", utc()).Location()).To(Equal(time.UTC))
	})

	It("rejects unknown timezones", func() {
		_, err := g.Format("date_time", generator.Positional("Mars/Olympus_Mons"))
		Expect(err).To(MatchError(errs.Value))
	})

	It("formats iso8601 with an offset only when aware", func() {
		for i := 0; i < 100; i++ {
			Expect(g.FormatString("iso8601", generator.Args{})).ToNot(HaveSuffix("+00:00"))
			Expect(g.FormatString("iso8601", utc())).To(HaveSuffix("+00:00"))
		}
	})

	It("returns date and time objects", func() {
		date, err := g.Format("date_object", generator.Args{})
		Expect(err).ToNot(HaveOccurred())
		Expect(date).To(BeAssignableToTypeOf(chrono.Date{}))

		timeOfDay, err := g.Format("time_object", generator.Args{})
		Expect(err).ToNot(HaveOccurred())
		Expect(timeOfDay).To(BeAssignableToTypeOf(chrono.TimeOfDay{}))
	})

	It("formats dates and times with patterns", func() {
		Expect(g.FormatString("date", generator.Args{})).To(MatchRegexp(`^\d{4}-\d{2}-\d{2}$`))
		Expect(g.FormatString("time", generator.Args{})).To(MatchRegexp(`^\d{2}:\d{2}:\d{2}$`))
		Expect(g.FormatString("date", generator.Positional("%d/%m/%y"))).To(MatchRegexp(`^\d{2}/\d{2}/\d{2}$`))
	})

	It("generates ad dates before 1900 which can be formatted", func() {
		provider := datetime.New(g).(*datetime.Provider)
		for i := 0; i < test.Trials; i++ {
			instant := provider.DateTimeAD(nil)
			Expect(instant.Unix()).To(BeNumerically(">=", datetime.MinTimestamp))
			_, err := instant.Strftime("%Y/%m/%d was a %A")
			Expect(err).ToNot(HaveOccurred())
		}
	})

	Describe("date_time_between_dates", func() {
		It("stays between naive bounds", func() {
			for i := 0; i < 100; i++ {
				timestamp := test.Rand.Int63n(2000000000)
				start := chrono.FromTimestamp(timestamp, nil)
				end := chrono.FromTimestamp(timestamp+1, nil)

				result := format(g, "date_time_between_dates", generator.Positional(start, end))
				Expect(result.Unix()).To(BeNumerically(">=", start.Unix()))
				Expect(result.Unix()).To(BeNumerically("<=", end.Unix()))
			}
		})

		It("returns naive instants for aware bounds without a timezone", func() {
			timestamp := test.Rand.Int63n(2000000000)
			start := chrono.FromTimestamp(timestamp, time.UTC)
			end := chrono.FromTimestamp(timestamp+1, time.UTC)

			naive := format(g, "date_time_between_dates", generator.Positional(start, end))
			_, err := start.Compare(naive)
			Expect(err).To(MatchError(errs.Comparison))

			aware := format(g, "date_time_between_dates", generator.Positional(start, end, time.UTC))
			cmp, err := start.Compare(aware)
			Expect(err).ToNot(HaveOccurred())
			Expect(cmp).To(BeNumerically("<=", 0))
			cmp, err = end.Compare(aware)
			Expect(err).ToNot(HaveOccurred())
			Expect(cmp).To(BeNumerically(">=", 0))
		})
	})

	Describe("date_time_between", func() {
		It("defaults to the last thirty years", func() {
			now := time.Now().Unix()
			for i := 0; i < 100; i++ {
				result := format(g, "date_time_between", utc())
				Expect(result.Unix()).To(BeNumerically("<=", now+60))
				Expect(result.Unix()).To(BeNumerically(">=", now-int64(30*365.25*86400)-60))
			}
		})

		It("accepts relative bounds", func() {
			now := time.Now().Unix()
			result := format(g, "date_time_between", generator.Positional("+1d", "+2d", "UTC"))
			Expect(result.Unix()).To(BeNumerically(">=", now+86400-60))
			Expect(result.Unix()).To(BeNumerically("<=", now+2*86400+60))
		})

		It("rejects reversed bounds", func() {
			_, err := g.Format("date_time_between", generator.Positional("now", "-1y"))
			Expect(err).To(MatchError(errs.Value))
		})

		It("rejects unparseable bounds", func() {
			_, err := g.Format("date_time_between", generator.Positional("last tuesday"))
			Expect(err).To(MatchError(errs.Value))
		})
	})

	Describe("this period", func() {
		periods := []string{"century", "decade", "year", "month"}

		It("is not after now by default", func() {
			for _, period := range periods {
				result := format(g, "date_time_this_"+period, utc())
				Expect(result.Unix()).To(BeNumerically("<=", time.Now().Unix()))
			}
		})

		It("is not before now when after now is requested", func() {
			ctrl := gomock.NewController(GinkgoT())
			clk := clockTest.NewMockClock(ctrl)
			clk.EXPECT().Now().Return(time.Date(2017, time.June, 15, 12, 30, 45, 0, time.UTC)).AnyTimes()

			mocked := generator.New(GinkgoRandomSeed(), generator.WithClock(clk))
			mocked.AddProvider(datetime.New(mocked))
			now := sampler.Now(clk, nil)
			for _, period := range periods {
				args := generator.Named(map[string]any{"before_now": false, "after_now": true})
				result := format(mocked, "date_time_this_"+period, args)
				Expect(result.IsAware()).To(BeFalse())
				Expect(result.Unix()).To(BeNumerically(">=", now.Unix()))
			}
		})

		It("is aware when a timezone is given", func() {
			for _, period := range periods {
				result := format(g, "date_time_this_"+period, utc())
				_, err := result.Compare(chrono.FromTime(time.Now(), false))
				Expect(err).To(MatchError(errs.Comparison))
			}
		})

		It("is now at minute granularity when neither side is requested", func() {
			for _, period := range []string{"decade", "year", "month"} {
				args := generator.Named(map[string]any{"before_now": "false", "after_now": "false", "tzinfo": "UTC"})
				result := format(g, "date_time_this_"+period, args)
				now := chrono.FromTime(time.Now().UTC(), true)
				Expect(result.Truncate(time.Minute).Unix()).To(BeNumerically("~", now.Truncate(time.Minute).Unix(), 60))
			}
		})

		It("follows the generator clock", func() {
			ctrl := gomock.NewController(GinkgoT())
			clk := clockTest.NewMockClock(ctrl)
			clk.EXPECT().Now().Return(time.Date(1999, time.December, 31, 23, 59, 59, 0, time.UTC)).AnyTimes()

			mocked := generator.New(GinkgoRandomSeed(), generator.WithClock(clk))
			mocked.AddProvider(datetime.New(mocked))
			for i := 0; i < 100; i++ {
				result := format(mocked, "date_time_this_year", utc())
				Expect(result.Civil().Year).To(Equal(1999))
			}
		})
	})

	It("returns calendar parts", func() {
		g = generator.New(GinkgoRandomSeed(), generator.WithClock(clock.Fixed(time.Now())))
		g.AddProvider(datetime.New(g))

		Expect(g.FormatString("am_pm", generator.Args{})).To(BeElementOf("AM", "PM"))
		Expect(g.FormatString("day_of_month", generator.Args{})).To(MatchRegexp(`^(0[1-9]|[12]\d|3[01])$`))
		Expect(g.FormatString("month", generator.Args{})).To(MatchRegexp(`^(0[1-9]|1[0-2])$`))
		Expect(g.FormatString("year", generator.Args{})).To(MatchRegexp(`^\d{4}$`))
		Expect(g.FormatString("century", generator.Args{})).To(MatchRegexp(`^[IVX]+$`))
		Expect(g.FormatString("month_name", generator.Args{})).ToNot(BeEmpty())
		Expect(g.FormatString("day_of_week", generator.Args{})).To(HaveSuffix("day"))
	})

	It("picks timezones from the locale data", func() {
		store, err := locales.NewStore(config.New(), zap.NewNop().Sugar())
		Expect(err).ToNot(HaveOccurred())
		data, err := store.Load(locales.DefaultLocale)
		Expect(err).ToNot(HaveOccurred())

		g = generator.New(GinkgoRandomSeed(), generator.WithLocale(locales.DefaultLocale, data))
		g.AddProvider(datetime.New(g))
		for i := 0; i < 20; i++ {
			tz, err := g.FormatString("timezone", generator.Args{})
			Expect(err).ToNot(HaveOccurred())
			_, err = time.LoadLocation(tz)
			Expect(err).ToNot(HaveOccurred())
		}
	})

	Describe("naive instants outside of utc", func() {
		var mocked *generator.Generator
		var provider *datetime.Provider
		instant := time.Date(2020, time.June, 15, 12, 0, 0, 0, time.UTC)

		BeforeEach(func() {
			local := time.Local
			time.Local = time.FixedZone("EST", -5*3600)
			DeferCleanup(func() {
				time.Local = local
			})

			ctrl := gomock.NewController(GinkgoT())
			clk := clockTest.NewMockClock(ctrl)
			clk.EXPECT().Now().Return(instant).AnyTimes()

			mocked = generator.New(GinkgoRandomSeed(), generator.WithClock(clk))
			provider = datetime.New(mocked).(*datetime.Provider)
			mocked.AddProvider(provider)
		})

		It("reads now as the local wall clock", func() {
			now := provider.Now(nil)
			Expect(now.IsAware()).To(BeFalse())
			Expect(now.Civil().Hour).To(Equal(7))
		})

		It("shares the local wall clock between aware and naive bounds", func() {
			aware := chrono.FromTime(instant, true)
			naive := provider.Now(nil)

			fromAware, err := provider.DateTimeBetweenDates(aware, aware, nil)
			Expect(err).ToNot(HaveOccurred())
			fromNaive, err := provider.DateTimeBetweenDates(naive, naive, nil)
			Expect(err).ToNot(HaveOccurred())

			Expect(fromAware.IsAware()).To(BeFalse())
			Expect(fromAware.Civil().Hour).To(Equal(7))
			Expect(fromAware).To(Equal(fromNaive))
			Expect(fromAware).To(Equal(naive))
		})

		It("reads naive bounds as local time when a timezone is given", func() {
			naive := provider.Now(nil)
			result, err := provider.DateTimeBetweenDates(naive, naive, time.UTC)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Unix()).To(Equal(instant.Unix()))
			Expect(result.Civil().Hour).To(Equal(12))
		})

		It("matches the naive current period anchor", func() {
			args := generator.Named(map[string]any{"before_now": false, "after_now": false})
			Expect(format(mocked, "date_time_this_month", args)).To(Equal(provider.Now(nil)))
		})

		It("generates naive timestamps in the local wall clock", func() {
			for i := 0; i < test.Trials; i++ {
				result := format(mocked, "date_time", generator.Args{})
				Expect(result.Unix()).To(BeNumerically("<=", provider.Now(nil).Unix()))
			}
		})
	})
})
