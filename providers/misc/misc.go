package misc

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"

	errs "github.com/tidepool-org/fakegen/errors"
	"github.com/tidepool-org/fakegen/generator"
	"github.com/tidepool-org/fakegen/locales"
)

const (
	specialChars   = "!@#$%^&*()_+"
	digitChars     = "0123456789"
	upperCaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerCaseChars = "abcdefghijklmnopqrstuvwxyz"
)

type Provider struct {
	*generator.Base
}

func New(g *generator.Generator) generator.Provider {
	return &Provider{Base: generator.NewBase(g)}
}

func (p *Provider) Name() string {
	return "misc"
}

// Boolean returns true with a probability of chanceOfTrue percent
func (p *Provider) Boolean(chanceOfTrue int) bool {
	return p.RandomInt(1, 100) <= chanceOfTrue
}

// NullBoolean returns nil, true or false with equal probability
func (p *Provider) NullBoolean() *bool {
	var result *bool
	switch p.RandomInt(-1, 1) {
	case 1:
		result = new(bool)
		*result = true
	case -1:
		result = new(bool)
	}
	return result
}

func (p *Provider) Binary(length int) ([]byte, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: length must not be negative", errs.Value)
	}
	b := make([]byte, length)
	_, _ = p.Rand().Read(b)
	return b, nil
}

func (p *Provider) LanguageCode() string {
	codes := p.Generator().Data().LanguageCodes
	if len(codes) == 0 {
		return "en"
	}
	return p.RandomElement(codes)
}

func (p *Provider) Locale() string {
	all := p.Generator().Data().Locales
	if len(all) == 0 {
		return locales.DefaultLocale
	}
	return p.RandomElement(all)
}

// Password returns a password of length characters containing at least one character of each
// selected class.
func (p *Provider) Password(length int, special, digits, upperCase, lowerCase bool) (string, error) {
	var choices strings.Builder
	var required []byte
	for _, class := range []struct {
		enabled bool
		chars   string
	}{
		{special, specialChars},
		{digits, digitChars},
		{upperCase, upperCaseChars},
		{lowerCase, lowerCaseChars},
	} {
		if class.enabled {
			required = append(required, class.chars[p.Rand().Intn(len(class.chars))])
			choices.WriteString(class.chars)
		}
	}

	if len(required) == 0 {
		return "", fmt.Errorf("%w: at least one character class is required", errs.Value)
	}
	if len(required) > length {
		return "", fmt.Errorf("%w: required length %d is shorter than the %d required characters", errs.Value, length, len(required))
	}

	pool := choices.String()
	chars := make([]byte, length)
	positions := make([]int, length)
	for i := range chars {
		chars[i] = pool[p.Rand().Intn(len(pool))]
		positions[i] = i
	}

	sample, err := generator.RandomSampleUnique(p.Rand(), positions, len(required))
	if err != nil {
		return "", err
	}
	indexes := sample.ToSlice()
	slices.Sort(indexes)
	for i, index := range indexes {
		chars[index] = required[i]
	}
	return string(chars), nil
}

// UUID4 returns a random version 4 UUID drawn from the generator source
func (p *Provider) UUID4() (string, error) {
	id, err := uuid.NewRandomFromReader(p.Rand())
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func (p *Provider) MD5(raw bool) any {
	sum := md5.Sum(p.randomPayload())
	return digest(sum[:], raw)
}

func (p *Provider) SHA1(raw bool) any {
	sum := sha1.Sum(p.randomPayload())
	return digest(sum[:], raw)
}

func (p *Provider) SHA256(raw bool) any {
	sum := sha256.Sum256(p.randomPayload())
	return digest(sum[:], raw)
}

func (p *Provider) randomPayload() []byte {
	return []byte(strconv.FormatFloat(p.Rand().Float64(), 'g', -1, 64))
}

func digest(sum []byte, raw bool) any {
	if raw {
		return sum
	}
	return hex.EncodeToString(sum)
}

type booleanOptions struct {
	ChanceOfGettingTrue int `mapstructure:"chance_of_getting_true"`
}

type binaryOptions struct {
	Length int `mapstructure:"length"`
}

type passwordOptions struct {
	Length       int  `mapstructure:"length"`
	SpecialChars bool `mapstructure:"special_chars"`
	Digits       bool `mapstructure:"digits"`
	UpperCase    bool `mapstructure:"upper_case"`
	LowerCase    bool `mapstructure:"lower_case"`
}

type hashOptions struct {
	RawOutput bool `mapstructure:"raw_output"`
}

func (p *Provider) Formatters() []generator.Formatter {
	return []generator.Formatter{
		generator.WithOptions("boolean", booleanOptions{ChanceOfGettingTrue: 50}, func(opts booleanOptions) (bool, error) {
			return p.Boolean(opts.ChanceOfGettingTrue), nil
		}),
		generator.Simple("null_boolean", func() any {
			if b := p.NullBoolean(); b != nil {
				return *b
			}
			return nil
		}),
		generator.WithOptions("binary", binaryOptions{Length: 1024 * 1024}, func(opts binaryOptions) ([]byte, error) {
			return p.Binary(opts.Length)
		}),
		generator.Simple("language_code", p.LanguageCode),
		generator.Simple("locale", p.Locale),
		generator.WithOptions("password", passwordOptions{Length: 10, SpecialChars: true, Digits: true, UpperCase: true, LowerCase: true}, func(opts passwordOptions) (string, error) {
			return p.Password(opts.Length, opts.SpecialChars, opts.Digits, opts.UpperCase, opts.LowerCase)
		}),
		generator.SimpleErr("uuid4", p.UUID4),
		generator.WithOptions("md5", hashOptions{}, func(opts hashOptions) (any, error) {
			return p.MD5(opts.RawOutput), nil
		}),
		generator.WithOptions("sha1", hashOptions{}, func(opts hashOptions) (any, error) {
			return p.SHA1(opts.RawOutput), nil
		}),
		generator.WithOptions("sha256", hashOptions{}, func(opts hashOptions) (any, error) {
			return p.SHA256(opts.RawOutput), nil
		}),
	}
}
