package ssn

import (
	"fmt"
	"strconv"

	"github.com/tidepool-org/fakegen/checksum"
	"github.com/tidepool-org/fakegen/chrono"
	"github.com/tidepool-org/fakegen/generator"
	"github.com/tidepool-org/fakegen/sampler"
)

// births from 2000 onwards are checksummed with a leading 2
const millenniumOffset = 2000000000

// BEProvider generates Belgian national register numbers (rijksregisternummer)
type BEProvider struct {
	base
}

func NewBE(g *generator.Generator) generator.Provider {
	return &BEProvider{base{generator.NewBase(g)}}
}

// SSN returns YYMMDD followed by a three digit sequence in 001-998 and a two digit mod 97
// checksum.
func (p *BEProvider) SSN() string {
	birth := p.birthDate()
	sequence := p.RandomInt(1, 998)

	prefix := fmt.Sprintf("%02d%02d%02d%03d", birth.Year%100, birth.Month, birth.Day, sequence)
	number, _ := strconv.ParseInt(prefix, 10, 64)
	if birth.Year >= 2000 {
		number += millenniumOffset
	}
	return fmt.Sprintf("%s%02d", prefix, checksum.Mod97(number))
}

func (p *BEProvider) birthDate() chrono.Date {
	start := chrono.NewInstant(1900, 1, 1, 0, 0, 0, nil)
	now := sampler.Now(p.Generator().Clock(), nil)
	return sampler.Between(p.Rand(), sampler.DateRange{Start: start, End: now}, nil).Date()
}

func (p *BEProvider) Formatters() []generator.Formatter {
	return []generator.Formatter{
		generator.Simple("ssn", p.SSN),
	}
}

// ValidBE verifies the checksum of a national register number for a birth in either century
func ValidBE(ssn string) bool {
	if !elevenDigitsRegexp.MatchString(ssn) {
		return false
	}
	number, _ := strconv.ParseInt(ssn[:9], 10, 64)
	check, _ := strconv.Atoi(ssn[9:])
	sequence, _ := strconv.Atoi(ssn[6:9])
	if sequence < 1 || sequence > 998 {
		return false
	}
	return check == checksum.Mod97(number) || check == checksum.Mod97(number+millenniumOffset)
}
