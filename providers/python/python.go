package python

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	errs "github.com/tidepool-org/fakegen/errors"
	"github.com/tidepool-org/fakegen/generator"
	"github.com/tidepool-org/fakegen/pointer"
)

// FloatDigits is the number of decimal digits a float64 represents without loss
const FloatDigits = 15

// Provider generates values shaped like python literals
type Provider struct {
	*generator.Base
}

func New(g *generator.Generator) generator.Provider {
	return &Provider{Base: generator.NewBase(g)}
}

func (p *Provider) Name() string {
	return "python"
}

// PyStr returns maxChars random letters, or between minChars and maxChars letters when minChars
// is set. A non positive maxChars without minChars gives an empty string.
func (p *Provider) PyStr(minChars *int, maxChars int) (string, error) {
	length := maxChars
	if minChars != nil {
		if maxChars < *minChars {
			return "", fmt.Errorf("%w: maximum length must be greater than or equal to minimum length", errs.Value)
		}
		length = p.RandomInt(*minChars, maxChars)
	}

	var b strings.Builder
	for i := 0; i < length; i++ {
		b.WriteString(p.RandomLetter())
	}
	return b.String(), nil
}

func (p *Provider) PyInt() int {
	return p.RandomInt(0, 9999)
}

func (p *Provider) PyBool() bool {
	return p.RandomInt(0, 1) == 1
}

// PyFloat returns a float with leftDigits digits before the decimal point and rightDigits
// after it. Nil digit counts are chosen at random.
func (p *Provider) PyFloat(leftDigits, rightDigits *int, positive bool) (float64, error) {
	if leftDigits != nil && *leftDigits < 0 {
		return 0, fmt.Errorf("%w: a float number cannot have less than 0 digits in its integer part", errs.Value)
	}
	if rightDigits != nil && *rightDigits < 0 {
		return 0, fmt.Errorf("%w: a float number cannot have less than 0 digits in its fractional part", errs.Value)
	}
	if leftDigits != nil && rightDigits != nil && *leftDigits == 0 && *rightDigits == 0 {
		return 0, fmt.Errorf("%w: a float number cannot have 0 digits in total", errs.Value)
	}

	left := pointer.Default(leftDigits, p.RandomInt(1, FloatDigits))
	right := pointer.Default(rightDigits, p.RandomInt(0, max(FloatDigits-left, 0)))

	sign := ""
	if !positive && p.PyBool() {
		sign = "-"
	}
	value, err := strconv.ParseFloat(sign+"0"+p.digits(left)+"."+p.digits(right)+"0", 64)
	if err != nil {
		return 0, err
	}

	// rounding to the nearest float64 can carry into an extra integer digit
	if limit := math.Pow10(left); math.Abs(value) >= limit {
		value = math.Copysign(math.Nextafter(limit, 0), value)
	}
	return value, nil
}

func (p *Provider) digits(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(byte('0' + p.RandomDigit()))
	}
	return b.String()
}

// PyList returns about nbElements random strings, integers, floats and booleans
func (p *Provider) PyList(nbElements int, variable bool) ([]any, error) {
	if variable && nbElements > 0 {
		nbElements = nbElements*p.RandomInt(60, 140)/100 + 1
	}

	values := make([]any, 0, max(nbElements, 0))
	for i := 0; i < nbElements; i++ {
		value, err := p.randomValue()
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}

// PyDict returns about nbElements random values keyed by random strings
func (p *Provider) PyDict(nbElements int, variable bool) (map[string]any, error) {
	values, err := p.PyList(nbElements, variable)
	if err != nil {
		return nil, err
	}

	minKey := 5
	result := make(map[string]any, len(values))
	for _, value := range values {
		key, err := p.PyStr(&minKey, 10)
		if err != nil {
			return nil, err
		}
		result[key] = value
	}
	return result, nil
}

func (p *Provider) randomValue() (any, error) {
	switch p.RandomInt(0, 5) {
	case 0, 1:
		return p.PyStr(nil, 20)
	case 2, 3:
		return p.PyInt(), nil
	case 4:
		return p.PyFloat(nil, nil, false)
	default:
		return p.PyBool(), nil
	}
}

type pystrOptions struct {
	MinChars *int `mapstructure:"min_chars"`
	MaxChars int  `mapstructure:"max_chars"`
}

type pyfloatOptions struct {
	LeftDigits  *int `mapstructure:"left_digits"`
	RightDigits *int `mapstructure:"right_digits"`
	Positive    bool `mapstructure:"positive"`
}

type pylistOptions struct {
	NbElements         int  `mapstructure:"nb_elements"`
	VariableNbElements bool `mapstructure:"variable_nb_elements"`
}

func (p *Provider) Formatters() []generator.Formatter {
	return []generator.Formatter{
		generator.WithOptions("pystr", pystrOptions{MaxChars: 20}, func(opts pystrOptions) (string, error) {
			return p.PyStr(opts.MinChars, opts.MaxChars)
		}),
		generator.Simple("pyint", p.PyInt),
		generator.Simple("pybool", p.PyBool),
		generator.WithOptions("pyfloat", pyfloatOptions{}, func(opts pyfloatOptions) (float64, error) {
			return p.PyFloat(opts.LeftDigits, opts.RightDigits, opts.Positive)
		}),
		generator.WithOptions("pylist", pylistOptions{NbElements: 10, VariableNbElements: true}, func(opts pylistOptions) ([]any, error) {
			return p.PyList(opts.NbElements, opts.VariableNbElements)
		}),
		generator.WithOptions("pydict", pylistOptions{NbElements: 10, VariableNbElements: true}, func(opts pylistOptions) (map[string]any, error) {
			return p.PyDict(opts.NbElements, opts.VariableNbElements)
		}),
	}
}
