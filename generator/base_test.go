package generator_test

import (
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	errs "github.com/tidepool-org/fakegen/errors"
	"github.com/tidepool-org/fakegen/generator"
	"github.com/tidepool-org/fakegen/test"
)

var _ = Describe("Base", func() {
	var g *generator.Generator
	var base *generator.Base

	BeforeEach(func() {
		g = generator.New(GinkgoRandomSeed())
		base = generator.NewBase(g)
		g.AddProvider(base)
	})

	Describe("RandomElement", func() {
		It("picks from a list", func() {
			choices := []string{"a", "b", "c", "d"}
			for i := 0; i < 100; i++ {
				Expect(choices).To(ContainElement(base.RandomElement(choices)))
			}
		})

		It("picks from integer weights", func() {
			weights := map[string]float64{"a": 5, "b": 2, "c": 2, "d": 1}
			for i := 0; i < 100; i++ {
				Expect(weights).To(HaveKey(generator.RandomWeightedElement(test.Rand, weights)))
			}
		})

		It("picks from fractional weights", func() {
			weights := map[string]float64{"a": 0.5, "b": 0.2, "c": 0.2, "d": 0.1}
			for i := 0; i < 100; i++ {
				Expect(weights).To(HaveKey(generator.RandomWeightedElement(test.Rand, weights)))
			}
		})

		It("never picks zero weights", func() {
			weights := map[string]float64{"a": 1, "b": 0}
			for i := 0; i < 100; i++ {
				Expect(generator.RandomWeightedElement(test.Rand, weights)).To(Equal("a"))
			}
		})

		It("returns the zero value for empty lists", func() {
			Expect(generator.RandomElement[string](test.Rand, nil)).To(BeEmpty())
		})
	})

	Describe("RandomSampleUnique", func() {
		population := strings.Split("abcde", "")

		It("returns a subset of the requested size", func() {
			sample, err := generator.RandomSampleUnique(test.Rand, population, 3)
			Expect(err).ToNot(HaveOccurred())
			Expect(sample.Cardinality()).To(Equal(3))
			Expect(sample.IsSubset(mapset.NewSet(population...))).To(BeTrue())
		})

		It("returns the whole population", func() {
			sample, err := generator.RandomSampleUnique(test.Rand, population, 5)
			Expect(err).ToNot(HaveOccurred())
			Expect(sample.Equal(mapset.NewSet(population...))).To(BeTrue())
		})

		It("returns a single element", func() {
			sample, err := generator.RandomSampleUnique(test.Rand, population, 1)
			Expect(err).ToNot(HaveOccurred())
			Expect(sample.Cardinality()).To(Equal(1))
			Expect(sample.IsSubset(mapset.NewSet(population...))).To(BeTrue())
		})

		It("returns an empty set", func() {
			sample, err := generator.RandomSampleUnique(test.Rand, population, 0)
			Expect(err).ToNot(HaveOccurred())
			Expect(sample.Cardinality()).To(Equal(0))
		})

		It("fails when the sample is larger than the population", func() {
			_, err := generator.RandomSampleUnique(test.Rand, population, 6)
			Expect(err).To(MatchError(errs.Value))
		})
	})

	Describe("RandomNumber", func() {
		It("has exactly the requested number of digits", func() {
			for i := 0; i < 100; i++ {
				number, err := base.RandomNumber(10, true)
				Expect(err).ToNot(HaveOccurred())
				Expect(strconv.FormatInt(number, 10)).To(HaveLen(10))
			}
		})

		It("has at most the requested number of digits", func() {
			for i := 0; i < 100; i++ {
				number, err := base.RandomNumber(3, false)
				Expect(err).ToNot(HaveOccurred())
				Expect(number).To(BeNumerically("<", 1000))
			}
		})

		It("rejects impossible lengths", func() {
			_, err := base.RandomNumber(-1, false)
			Expect(err).To(MatchError(errs.Value))
			_, err = base.RandomNumber(0, true)
			Expect(err).To(MatchError(errs.Value))
			_, err = base.RandomNumber(generator.MaxDigits+1, false)
			Expect(err).To(MatchError(errs.Value))
		})

		It("is available as a formatter", func() {
			number, err := g.Format("random_number", generator.Positional("10", "true"))
			Expect(err).ToNot(HaveOccurred())
			Expect(strconv.FormatInt(number.(int64), 10)).To(HaveLen(10))
		})
	})

	Describe("placeholders", func() {
		It("numerifies", func() {
			for i := 0; i < 100; i++ {
				Expect(base.Numerify("###-%%%")).To(MatchRegexp(`^\d{3}-[1-9]{3}$`))
				Expect(base.Numerify("!@")).To(MatchRegexp(`^\d?[1-9]?$`))
			}
		})

		It("lexifies", func() {
			Expect(base.Lexify("??-??")).To(MatchRegexp(`^[a-zA-Z]{2}-[a-zA-Z]{2}$`))
		})

		It("bothifies", func() {
			Expect(base.Bothify("## ??")).To(MatchRegexp(`^\d{2} [a-zA-Z]{2}$`))
		})

		It("hexifies", func() {
			Expect(base.Hexify("^^:^^", false)).To(MatchRegexp(`^[0-9a-f]{2}:[0-9a-f]{2}$`))
			Expect(base.Hexify("^^^^", true)).To(MatchRegexp(`^[0-9A-F]{4}$`))
		})
	})

	Describe("formatters", func() {
		It("keeps defaults intact between calls", func() {
			value, err := g.Format("random_element", generator.Positional([]string{"x"}))
			Expect(err).ToNot(HaveOccurred())
			Expect(value).To(Equal("x"))

			for i := 0; i < 20; i++ {
				value, err = g.Format("random_element", generator.Args{})
				Expect(err).ToNot(HaveOccurred())
				Expect([]string{"a", "b", "c"}).To(ContainElement(value))
			}
		})

		It("validates random int bounds", func() {
			value, err := g.Format("random_int", generator.Named(map[string]any{"min": 5, "max": 5}))
			Expect(err).ToNot(HaveOccurred())
			Expect(value).To(Equal(5))

			_, err = g.Format("random_int", generator.Named(map[string]any{"min": 6, "max": 5}))
			Expect(err).To(MatchError(errs.Value))
		})

		It("decodes weakly typed arguments", func() {
			value, err := g.Format("random_int", generator.Positional("3", "3"))
			Expect(err).ToNot(HaveOccurred())
			Expect(value).To(Equal(3))
		})
	})
})
