package ssn

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/tidepool-org/fakegen/generator"
)

var usRegexp = regexp.MustCompile(`^(\d{3})-(\d{2})-(\d{4})$`)

// USProvider generates United States social security numbers
type USProvider struct {
	base
}

func NewUS(g *generator.Generator) generator.Provider {
	return &USProvider{base{generator.NewBase(g)}}
}

// SSN returns a number formatted as AAA-GG-SSSS. The area is never 000, 666 or 9xx, the group
// never 00 and the serial never 0000.
func (p *USProvider) SSN() string {
	area := p.RandomInt(1, 899)
	if area == 666 {
		area++
	}
	group := p.RandomInt(1, 99)
	serial := p.RandomInt(1, 9999)
	return fmt.Sprintf("%03d-%02d-%04d", area, group, serial)
}

func (p *USProvider) Formatters() []generator.Formatter {
	return []generator.Formatter{
		generator.Simple("ssn", p.SSN),
	}
}

func ValidUS(ssn string) bool {
	matches := usRegexp.FindStringSubmatch(ssn)
	if matches == nil {
		return false
	}
	area, _ := strconv.Atoi(matches[1])
	group, _ := strconv.Atoi(matches[2])
	serial, _ := strconv.Atoi(matches[3])
	return area > 0 && area < 900 && area != 666 && group > 0 && serial > 0
}
