package ssn

import (
	"github.com/tidepool-org/fakegen/checksum"
	"github.com/tidepool-org/fakegen/generator"
)

// HRProvider generates Croatian personal identification numbers (OIB)
type HRProvider struct {
	base
}

func NewHR(g *generator.Generator) generator.Provider {
	return &HRProvider{base{generator.NewBase(g)}}
}

// SSN returns ten random digits followed by their ISO 7064 MOD 11,10 check digit
func (p *HRProvider) SSN() string {
	digits := checksum.RandomDigits(p.Rand(), 10)
	return digits.Append(checksum.ISO7064Mod11_10(digits)).String()
}

func (p *HRProvider) Formatters() []generator.Formatter {
	return []generator.Formatter{
		generator.Simple("ssn", p.SSN),
	}
}

func ValidHR(ssn string) bool {
	if !elevenDigitsRegexp.MatchString(ssn) {
		return false
	}
	digits, err := checksum.ParseDigits(ssn)
	if err != nil {
		return false
	}
	return checksum.ISO7064Mod11_10(digits[:10]) == digits[10]
}
