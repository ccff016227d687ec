package internet_test

import (
	"regexp"

	"github.com/asaskevich/govalidator"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/tidepool-org/fakegen/config"
	errs "github.com/tidepool-org/fakegen/errors"
	"github.com/tidepool-org/fakegen/generator"
	"github.com/tidepool-org/fakegen/locales"
	"github.com/tidepool-org/fakegen/providers/internet"
	"github.com/tidepool-org/fakegen/providers/person"
	"github.com/tidepool-org/fakegen/test"
	"github.com/tidepool-org/fakegen/text"
)

var (
	ipv4Regexp        = regexp.MustCompile(`^(\d{1,3}\.){3}\d{1,3}$`)
	ipv4NetworkRegexp = regexp.MustCompile(`^(\d{1,3}\.){3}\d{1,3}/\d{1,2}$`)
	ipv6Regexp        = regexp.MustCompile(`^([0-9a-f]{0,4}:){2,7}[0-9a-f]{1,4}$`)
	ipv6NetworkRegexp = regexp.MustCompile(`^([0-9a-f]{0,4}:){2,7}[0-9a-f]{0,4}/\d{1,3}$`)
)

var _ = Describe("Provider", func() {
	var store *locales.Store

	newGenerator := func(locale string) *generator.Generator {
		data, err := store.Load(locale)
		Expect(err).ToNot(HaveOccurred())

		g := generator.New(GinkgoRandomSeed(), generator.WithLocale(locale, data))
		g.AddProvider(person.New(g))
		g.AddProvider(internet.New(g))
		return g
	}

	BeforeEach(func() {
		var err error
		store, err = locales.NewStore(config.New(), zap.NewNop().Sugar())
		Expect(err).ToNot(HaveOccurred())
	})

	Describe("ipv4", func() {
		It("returns addresses", func() {
			provider := internet.New(generator.New(GinkgoRandomSeed())).(*internet.Provider)
			for i := 0; i < test.Trials; i++ {
				address := provider.IPv4(false)
				Expect(len(address)).To(BeNumerically(">=", 7))
				Expect(len(address)).To(BeNumerically("<=", 15))
				Expect(ipv4Regexp.MatchString(address)).To(BeTrue(), address)
			}
		})

		It("returns networks", func() {
			provider := internet.New(generator.New(GinkgoRandomSeed())).(*internet.Provider)
			for i := 0; i < test.Trials; i++ {
				address := provider.IPv4(true)
				Expect(len(address)).To(BeNumerically(">=", 9))
				Expect(len(address)).To(BeNumerically("<=", 18))
				Expect(ipv4NetworkRegexp.MatchString(address)).To(BeTrue(), address)
			}
		})
	})

	Describe("ipv6", func() {
		It("returns addresses", func() {
			provider := internet.New(generator.New(GinkgoRandomSeed())).(*internet.Provider)
			for i := 0; i < test.Trials; i++ {
				address := provider.IPv6(false)
				Expect(len(address)).To(BeNumerically(">=", 3))
				Expect(len(address)).To(BeNumerically("<=", 39))
				Expect(ipv6Regexp.MatchString(address)).To(BeTrue(), address)
			}
		})

		It("returns networks", func() {
			provider := internet.New(generator.New(GinkgoRandomSeed())).(*internet.Provider)
			for i := 0; i < test.Trials; i++ {
				address := provider.IPv6(true)
				Expect(len(address)).To(BeNumerically(">=", 4))
				Expect(len(address)).To(BeNumerically("<=", 43))
				Expect(ipv6NetworkRegexp.MatchString(address)).To(BeTrue(), address)
			}
		})

		It("is available as a formatter", func() {
			g := newGenerator("en_US")
			address, err := g.FormatString("ipv6", generator.Named(map[string]any{"network": "true"}))
			Expect(err).ToNot(HaveOccurred())
			Expect(ipv6NetworkRegexp.MatchString(address)).To(BeTrue(), address)
		})
	})

	Describe("ja_JP", func() {
		It("derives domain words from romanized last names", func() {
			g := newGenerator("ja_JP")
			var slugs []string
			for _, name := range g.Data().LastRomanizedNames {
				slugs = append(slugs, text.Slug(name))
			}

			for i := 0; i < 20; i++ {
				Expect(g.FormatString("domain_word", generator.Args{})).To(BeElementOf(slugs))
				Expect(g.FormatString("user_name", generator.Args{})).To(MatchRegexp(`^[a-z0-9._-]+$`))
				Expect(g.FormatString("tld", generator.Args{})).ToNot(BeEmpty())
			}
		})
	})

	It("returns valid emails for every locale", func() {
		for _, locale := range locales.Available() {
			g := newGenerator(locale)
			for i := 0; i < 100; i++ {
				for _, name := range []string{"email", "safe_email", "free_email", "company_email"} {
					email, err := g.FormatString(name, generator.Args{})
					Expect(err).ToNot(HaveOccurred())
					Expect(email).To(ContainSubstring("@"))

					Expect(email).To(MatchRegexp(`^[\x21-\x7e]+$`))
					Expect(govalidator.IsEmail(email)).To(BeTrue(), email)
				}
			}
		}
	})

	It("returns safe emails at example domains", func() {
		g := newGenerator("en_US")
		Expect(g.FormatString("safe_email", generator.Args{})).To(MatchRegexp(`@example\.(org|com|net)$`))
	})

	It("returns multi level domain names", func() {
		g := newGenerator("en_US")
		domain, err := g.FormatString("domain_name", generator.Positional(3))
		Expect(err).ToNot(HaveOccurred())
		Expect(domain).To(MatchRegexp(`^([a-z0-9-]+\.){3}[a-z.]+$`))

		_, err = g.Format("domain_name", generator.Positional(0))
		Expect(err).To(MatchError(errs.Value))
	})

	It("returns urls", func() {
		g := newGenerator("pt_BR")
		for i := 0; i < 20; i++ {
			Expect(g.FormatString("url", generator.Args{})).To(MatchRegexp(`^https?://(www\.)?[a-z0-9.-]+/$`))
		}
	})

	It("returns mac addresses", func() {
		g := newGenerator("en_US")
		Expect(g.FormatString("mac_address", generator.Args{})).To(MatchRegexp(`^([0-9a-f]{2}:){5}[0-9a-f]{2}$`))
	})

	It("returns slugs", func() {
		g := newGenerator("en_US")
		Expect(g.FormatString("slug", generator.Positional("Hello World!"))).To(Equal("hello-world"))
		Expect(g.FormatString("slug", generator.Args{})).To(MatchRegexp(`^[a-z0-9-]+$`))
	})
})
