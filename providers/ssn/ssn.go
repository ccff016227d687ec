// Package ssn generates national identification numbers. Every generated number passes the
// validation of its format.
package ssn

import (
	"regexp"

	"github.com/tidepool-org/fakegen/generator"
)

const providerName = "ssn"

var elevenDigitsRegexp = regexp.MustCompile(`^\d{11}$`)

type base struct {
	*generator.Base
}

func (b *base) Name() string {
	return providerName
}
