package ssn

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tidepool-org/fakegen/checksum"
	"github.com/tidepool-org/fakegen/generator"
)

var cpfRegexp = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)

// BRProvider generates Brazilian individual taxpayer numbers (CPF)
type BRProvider struct {
	base
}

func NewBR(g *generator.Generator) generator.Provider {
	return &BRProvider{base{generator.NewBase(g)}}
}

// SSN returns nine distinct random digits followed by two check digits
func (p *BRProvider) SSN() string {
	digits := make(checksum.Digits, 0, 11)
	digits = append(digits, p.Rand().Perm(10)[:9]...)
	digits = digits.Append(checksum.DescendingMod11(digits))
	digits = digits.Append(checksum.DescendingMod11(digits))
	return digits.String()
}

// CPF returns an SSN formatted as XXX.XXX.XXX-YY
func (p *BRProvider) CPF() string {
	ssn := p.SSN()
	return fmt.Sprintf("%s.%s.%s-%s", ssn[:3], ssn[3:6], ssn[6:9], ssn[9:])
}

func (p *BRProvider) Formatters() []generator.Formatter {
	return []generator.Formatter{
		generator.Simple("ssn", p.SSN),
		generator.Simple("cpf", p.CPF),
	}
}

// ValidBR verifies both check digits of a bare or formatted CPF
func ValidBR(ssn string) bool {
	if cpfRegexp.MatchString(ssn) {
		ssn = strings.NewReplacer(".", "", "-", "").Replace(ssn)
	}
	if !elevenDigitsRegexp.MatchString(ssn) {
		return false
	}
	digits, err := checksum.ParseDigits(ssn)
	if err != nil {
		return false
	}
	return checksum.DescendingMod11(digits[:9]) == digits[9] && checksum.DescendingMod11(digits[:10]) == digits[10]
}
