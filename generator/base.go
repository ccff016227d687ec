package generator

import (
	"cmp"
	"fmt"
	"maps"
	"math/rand"
	"slices"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	errs "github.com/tidepool-org/fakegen/errors"
	"github.com/tidepool-org/fakegen/pointer"
)

const (
	letters   = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	hexDigits = "0123456789abcdef"

	// MaxDigits is the largest number of digits of a random number that fits an int64
	MaxDigits = 18
)

// Base carries the random helpers every provider builds on
type Base struct {
	g *Generator
}

func NewBase(g *Generator) *Base {
	return &Base{g: g}
}

func (b *Base) Generator() *Generator {
	return b.g
}

func (b *Base) Rand() *rand.Rand {
	return b.g.Rand()
}

// RandomInt returns an integer in [min, max]. Reversed bounds are swapped.
func (b *Base) RandomInt(min, max int) int {
	if min > max {
		min, max = max, min
	}
	return min + b.Rand().Intn(max-min+1)
}

func (b *Base) RandomDigit() int {
	return b.Rand().Intn(10)
}

func (b *Base) RandomDigitNotNull() int {
	return 1 + b.Rand().Intn(9)
}

// RandomDigitOrEmpty returns a digit or, with equal probability, an empty string
func (b *Base) RandomDigitOrEmpty() string {
	if b.Rand().Intn(2) == 0 {
		return ""
	}
	return strconv.Itoa(b.RandomDigit())
}

func (b *Base) RandomDigitNotNullOrEmpty() string {
	if b.Rand().Intn(2) == 0 {
		return ""
	}
	return strconv.Itoa(b.RandomDigitNotNull())
}

// RandomNumber returns a number of at most digits digits, or exactly digits digits when
// fixLen is set.
func (b *Base) RandomNumber(digits int, fixLen bool) (int64, error) {
	if digits < 0 || digits > MaxDigits {
		return 0, fmt.Errorf("%w: number of digits must be in [0, %d], got %d", errs.Value, MaxDigits, digits)
	}
	upper := pow10(digits)
	if fixLen {
		if digits == 0 {
			return 0, fmt.Errorf("%w: a fixed length number needs at least one digit", errs.Value)
		}
		lower := pow10(digits - 1)
		return lower + b.Rand().Int63n(upper-lower), nil
	}
	return b.Rand().Int63n(upper), nil
}

func (b *Base) RandomLetter() string {
	return string(letters[b.Rand().Intn(len(letters))])
}

func (b *Base) RandomElement(elements []string) string {
	return RandomElement(b.Rand(), elements)
}

// Numerify replaces '#' with a digit, '%' with a non zero digit, '!' with a digit or nothing
// and '@' with a non zero digit or nothing.
func (b *Base) Numerify(text string) string {
	var sb strings.Builder
	for _, r := range text {
		switch r {
		case '#':
			sb.WriteString(strconv.Itoa(b.RandomDigit()))
		case '%':
			sb.WriteString(strconv.Itoa(b.RandomDigitNotNull()))
		case '!':
			sb.WriteString(b.RandomDigitOrEmpty())
		case '@':
			sb.WriteString(b.RandomDigitNotNullOrEmpty())
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Lexify replaces every '?' with a random ASCII letter
func (b *Base) Lexify(text string) string {
	var sb strings.Builder
	for _, r := range text {
		if r == '?' {
			sb.WriteString(b.RandomLetter())
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func (b *Base) Bothify(text string) string {
	return b.Lexify(b.Numerify(text))
}

// Hexify replaces every '^' with a random hexadecimal digit
func (b *Base) Hexify(text string, upper bool) string {
	var sb strings.Builder
	for _, r := range text {
		if r == '^' {
			sb.WriteByte(hexDigits[b.Rand().Intn(len(hexDigits))])
		} else {
			sb.WriteRune(r)
		}
	}
	if upper {
		return strings.ToUpper(sb.String())
	}
	return sb.String()
}

// RandomElement returns a uniformly chosen element, or the zero value when elements is empty
func RandomElement[T any](rng *rand.Rand, elements []T) T {
	var zero T
	if len(elements) == 0 {
		return zero
	}
	return elements[rng.Intn(len(elements))]
}

// RandomWeightedElement returns a key of weights chosen with a probability proportional to
// its weight. Keys are visited in sorted order so that seeded results are reproducible.
func RandomWeightedElement[K cmp.Ordered](rng *rand.Rand, weights map[K]float64) K {
	var zero K
	keys := slices.Sorted(maps.Keys(weights))
	if len(keys) == 0 {
		return zero
	}

	var total float64
	for _, k := range keys {
		total += weights[k]
	}
	if total <= 0 {
		return RandomElement(rng, keys)
	}

	target := rng.Float64() * total
	for _, k := range keys {
		target -= weights[k]
		if target < 0 {
			return k
		}
	}
	return keys[len(keys)-1]
}

// RandomSampleUnique returns length distinct elements of elements
func RandomSampleUnique[T comparable](rng *rand.Rand, elements []T, length int) (mapset.Set[T], error) {
	population := mapset.NewSet[T](elements...)
	if length < 0 || length > population.Cardinality() {
		return nil, fmt.Errorf("%w: sample larger than population", errs.Value)
	}

	candidates := population.ToSlice()
	slices.SortFunc(candidates, func(a, b T) int {
		return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
	})
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	return mapset.NewSet[T](candidates[:length]...), nil
}

func pow10(n int) int64 {
	result := int64(1)
	for i := 0; i < n; i++ {
		result *= 10
	}
	return result
}

type randomIntOptions struct {
	Min int `mapstructure:"min"`
	Max int `mapstructure:"max"`
}

type randomNumberOptions struct {
	Digits *int `mapstructure:"digits"`
	FixLen bool `mapstructure:"fix_len"`
}

type elementsOptions struct {
	Elements []string `mapstructure:"elements"`
}

type sampleOptions struct {
	Elements []string `mapstructure:"elements"`
	Length   int      `mapstructure:"length"`
}

type textOptions struct {
	Text string `mapstructure:"text"`
}

type hexifyOptions struct {
	Text  string `mapstructure:"text"`
	Upper bool   `mapstructure:"upper"`
}

func (b *Base) Name() string {
	return "base"
}

func (b *Base) Formatters() []Formatter {
	return []Formatter{
		WithOptions("random_int", randomIntOptions{Min: 0, Max: 9999}, func(opts randomIntOptions) (int, error) {
			if opts.Min > opts.Max {
				return 0, fmt.Errorf("%w: min %d is greater than max %d", errs.Value, opts.Min, opts.Max)
			}
			return b.RandomInt(opts.Min, opts.Max), nil
		}),
		Simple("random_digit", b.RandomDigit),
		Simple("random_digit_not_null", b.RandomDigitNotNull),
		Simple("random_digit_or_empty", b.RandomDigitOrEmpty),
		WithOptions("random_number", randomNumberOptions{}, func(opts randomNumberOptions) (int64, error) {
			return b.RandomNumber(pointer.Default(opts.Digits, b.RandomDigit()), opts.FixLen)
		}),
		Simple("random_letter", b.RandomLetter),
		WithOptions("random_element", elementsOptions{Elements: []string{"a", "b", "c"}}, func(opts elementsOptions) (string, error) {
			return b.RandomElement(opts.Elements), nil
		}),
		WithOptions("random_sample_unique", sampleOptions{Elements: []string{"a", "b", "c"}, Length: 1}, func(opts sampleOptions) ([]string, error) {
			sample, err := RandomSampleUnique(b.Rand(), opts.Elements, opts.Length)
			if err != nil {
				return nil, err
			}
			result := sample.ToSlice()
			slices.Sort(result)
			return result, nil
		}),
		WithOptions("numerify", textOptions{Text: "###"}, func(opts textOptions) (string, error) {
			return b.Numerify(opts.Text), nil
		}),
		WithOptions("lexify", textOptions{Text: "????"}, func(opts textOptions) (string, error) {
			return b.Lexify(opts.Text), nil
		}),
		WithOptions("bothify", textOptions{Text: "## ??"}, func(opts textOptions) (string, error) {
			return b.Bothify(opts.Text), nil
		}),
		WithOptions("hexify", hexifyOptions{Text: "^^^^"}, func(opts hexifyOptions) (string, error) {
			return b.Hexify(opts.Text, opts.Upper), nil
		}),
	}
}
