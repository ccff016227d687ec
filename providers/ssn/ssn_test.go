package ssn_test

import (
	"strconv"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tidepool-org/fakegen/clock"
	"github.com/tidepool-org/fakegen/generator"
	"github.com/tidepool-org/fakegen/providers/ssn"
	"github.com/tidepool-org/fakegen/test"
)

var _ = Describe("SSN", func() {
	var g *generator.Generator

	BeforeEach(func() {
		g = generator.New(GinkgoRandomSeed())
	})

	Describe("en_US", func() {
		It("returns valid numbers", func() {
			provider := ssn.NewUS(g).(*ssn.USProvider)
			for i := 0; i < test.Trials; i++ {
				number := provider.SSN()
				Expect(number).To(HaveLen(11))
				Expect(number[0:1]).ToNot(Equal("9"))
				Expect(number[0:3]).ToNot(Equal("666"))
				Expect(number[0:3]).ToNot(Equal("000"))
				Expect(number[4:6]).ToNot(Equal("00"))
				Expect(number[7:11]).ToNot(Equal("0000"))
				Expect(ssn.ValidUS(number)).To(BeTrue(), number)
			}
		})

		It("rejects invalid numbers", func() {
			Expect(ssn.ValidUS("666-12-3456")).To(BeFalse())
			Expect(ssn.ValidUS("123-00-3456")).To(BeFalse())
			Expect(ssn.ValidUS("123-45-0000")).To(BeFalse())
			Expect(ssn.ValidUS("912-45-6789")).To(BeFalse())
			Expect(ssn.ValidUS("123456789")).To(BeFalse())
		})
	})

	Describe("nl_BE", func() {
		It("returns valid numbers", func() {
			provider := ssn.NewBE(g).(*ssn.BEProvider)
			for i := 0; i < test.Trials; i++ {
				number := provider.SSN()
				Expect(number).To(HaveLen(11))

				sequence, err := strconv.Atoi(number[6:9])
				Expect(err).ToNot(HaveOccurred())
				Expect(sequence).To(BeNumerically(">", 0))
				Expect(sequence).To(BeNumerically("<=", 998))

				below, err := strconv.ParseInt(number[0:9], 10, 64)
				Expect(err).ToNot(HaveOccurred())
				check, err := strconv.Atoi(number[9:11])
				Expect(err).ToNot(HaveOccurred())
				Expect(check).To(BeElementOf(int(97-below%97), int(97-(below+2000000000)%97)))

				Expect(ssn.ValidBE(number)).To(BeTrue(), number)
			}
		})

		It("checksums births after 2000 with a leading 2", func() {
			clocked := generator.New(GinkgoRandomSeed(), generator.WithClock(clock.Fixed(time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC))))
			provider := ssn.NewBE(clocked).(*ssn.BEProvider)
			seen := false
			for i := 0; i < test.Trials && !seen; i++ {
				number := provider.SSN()
				below, _ := strconv.ParseInt(number[0:9], 10, 64)
				check, _ := strconv.Atoi(number[9:11])
				seen = check == int(97-(below+2000000000)%97) && check != int(97-below%97)
			}
			Expect(seen).To(BeTrue())
		})

		It("rejects a wrong checksum", func() {
			Expect(ssn.ValidBE("85073100328")).To(BeTrue())
			Expect(ssn.ValidBE("85073100357")).To(BeTrue())
			Expect(ssn.ValidBE("85073100329")).To(BeFalse())
			Expect(ssn.ValidBE("850731000" + "00")).To(BeFalse())
		})
	})

	Describe("hr_HR", func() {
		It("returns valid numbers", func() {
			provider := ssn.NewHR(g).(*ssn.HRProvider)
			for i := 0; i < 100; i++ {
				number := provider.SSN()
				Expect(number).To(MatchRegexp(`^\d{11}$`))
				Expect(ssn.ValidHR(number)).To(BeTrue(), number)
			}
		})

		It("accepts known numbers", func() {
			Expect(ssn.ValidHR("00228269289")).To(BeTrue())
			Expect(ssn.ValidHR("00228269288")).To(BeFalse())
		})
	})

	Describe("pt_BR", func() {
		It("returns valid numbers", func() {
			provider := ssn.NewBR(g).(*ssn.BRProvider)
			for i := 0; i < 100; i++ {
				number := provider.SSN()
				Expect(number).To(MatchRegexp(`^\d{11}$`))
				Expect(ssn.ValidBR(number)).To(BeTrue(), number)
			}
		})

		It("returns formatted numbers", func() {
			provider := ssn.NewBR(g).(*ssn.BRProvider)
			for i := 0; i < 100; i++ {
				cpf := provider.CPF()
				Expect(cpf).To(MatchRegexp(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`))
				Expect(ssn.ValidBR(cpf)).To(BeTrue(), cpf)
			}
		})

		It("accepts known numbers", func() {
			Expect(ssn.ValidBR("88282165221")).To(BeTrue())
			Expect(ssn.ValidBR("882.821.652-21")).To(BeTrue())
			Expect(ssn.ValidBR("88282165220")).To(BeFalse())
		})
	})

	It("registers locale specific formatters", func() {
		g.AddProvider(ssn.NewUS(g))
		g.AddProvider(ssn.NewBR(g))
		Expect(g.FormatString("ssn", generator.Args{})).To(MatchRegexp(`^\d{11}$`))
		Expect(g.FormatString("cpf", generator.Args{})).To(MatchRegexp(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`))
	})
})
