package person_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/tidepool-org/fakegen/config"
	"github.com/tidepool-org/fakegen/generator"
	"github.com/tidepool-org/fakegen/locales"
	"github.com/tidepool-org/fakegen/providers/person"
)

var _ = Describe("Provider", func() {
	var store *locales.Store

	newGenerator := func(locale string) *generator.Generator {
		data, err := store.Load(locale)
		Expect(err).ToNot(HaveOccurred())

		g := generator.New(GinkgoRandomSeed(), generator.WithLocale(locale, data))
		g.AddProvider(person.New(g))
		return g
	}

	BeforeEach(func() {
		var err error
		store, err = locales.NewStore(config.New(), zap.NewNop().Sugar())
		Expect(err).ToNot(HaveOccurred())
	})

	It("always returns string prefixes and suffixes", func() {
		for _, locale := range []string{"bg_BG", "dk_DK", "en_US", "ru_RU", "tr_TR"} {
			g := newGenerator(locale)
			for i := 0; i < 20; i++ {
				for _, name := range []string{"prefix", "suffix", "prefix_male", "suffix_female"} {
					value, err := g.Format(name, generator.Args{})
					Expect(err).ToNot(HaveOccurred())
					Expect(value).To(BeAssignableToTypeOf(""))
				}
			}
		}
	})

	It("uses the locale names", func() {
		g := newGenerator("hr_HR")
		data := g.Data()
		for i := 0; i < 20; i++ {
			Expect(g.FormatString("first_name", generator.Args{})).To(BeElementOf(data.FirstNames()))
			Expect(g.FormatString("last_name", generator.Args{})).To(BeElementOf(data.LastNames))
		}
	})

	It("uses gendered last names when the locale has them", func() {
		g := newGenerator("ru_RU")
		for i := 0; i < 20; i++ {
			Expect(g.FormatString("last_name_female", generator.Args{})).To(BeElementOf(g.Data().LastNamesFemale))
		}
	})

	It("falls back to the bundled names", func() {
		g := newGenerator("en_US")
		for i := 0; i < 20; i++ {
			Expect(g.FormatString("first_name", generator.Args{})).To(MatchRegexp(`^\S+$`))
			Expect(g.FormatString("last_name", generator.Args{})).ToNot(BeEmpty())
		}
	})

	It("formats full names", func() {
		for _, locale := range locales.Available() {
			g := newGenerator(locale)
			for i := 0; i < 20; i++ {
				name, err := g.FormatString("name", generator.Args{})
				Expect(err).ToNot(HaveOccurred())
				Expect(name).ToNot(BeEmpty())
				Expect(name).ToNot(ContainSubstring("{{"))
			}
		}
	})

	It("returns romanized names", func() {
		for _, locale := range []string{"ja_JP", "zh_CN", "ru_RU", "tr_TR", "en_US"} {
			g := newGenerator(locale)
			for i := 0; i < 20; i++ {
				Expect(g.FormatString("first_romanized_name", generator.Args{})).To(MatchRegexp(`^[A-Za-z' -]+$`))
				Expect(g.FormatString("last_romanized_name", generator.Args{})).To(MatchRegexp(`^[A-Za-z' -]+$`))
			}
		}

		g := newGenerator("ja_JP")
		Expect(g.FormatString("last_romanized_name", generator.Args{})).To(BeElementOf(g.Data().LastRomanizedNames))
	})
})
