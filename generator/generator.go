package generator

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"

	"github.com/jaswdr/faker"
	"go.uber.org/zap"

	"github.com/tidepool-org/fakegen/clock"
	errs "github.com/tidepool-org/fakegen/errors"
	"github.com/tidepool-org/fakegen/locales"
)

//go:generate mockgen --build_flags=--mod=mod -source=./generator.go -destination=./test/mock_provider.go -package test

var tokenRegexp = regexp.MustCompile(`\{\{(\s?)(\w+)(\s?)\}\}`)

// Provider is a named group of formatters
type Provider interface {
	Name() string
	Formatters() []Formatter
}

type Option func(g *Generator)

func WithLocale(locale string, data *locales.Data) Option {
	return func(g *Generator) {
		g.locale = locale
		g.data = data
	}
}

func WithClock(clk clock.Clock) Option {
	return func(g *Generator) {
		g.clock = clk
	}
}

func WithLogger(logger *zap.SugaredLogger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// Generator dispatches formatter calls to its providers. All providers share the same seeded
// random source, so a generator is not safe for concurrent use.
type Generator struct {
	seed       int64
	rand       *rand.Rand
	words      faker.Faker
	locale     string
	data       *locales.Data
	clock      clock.Clock
	logger     *zap.SugaredLogger
	providers  []Provider
	formatters map[string]Formatter
}

func New(seed int64, opts ...Option) *Generator {
	g := &Generator{
		locale:     locales.DefaultLocale,
		data:       &locales.Data{},
		clock:      clock.New(),
		logger:     zap.NewNop().Sugar(),
		formatters: make(map[string]Formatter),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.Seed(seed)
	return g
}

// Seed resets the random source shared by every provider
func (g *Generator) Seed(seed int64) {
	source := rand.NewSource(seed)
	g.seed = seed
	g.rand = rand.New(source)
	g.words = faker.NewWithSeed(source)
}

func (g *Generator) CurrentSeed() int64 {
	return g.seed
}

// Rand returns the shared random source. Callers must not keep it across calls to Seed.
func (g *Generator) Rand() *rand.Rand {
	return g.rand
}

// Words returns the word lists generator bound to the shared random source
func (g *Generator) Words() faker.Faker {
	return g.words
}

func (g *Generator) Locale() string {
	return g.locale
}

func (g *Generator) Data() *locales.Data {
	return g.data
}

func (g *Generator) Clock() clock.Clock {
	return g.clock
}

func (g *Generator) Logger() *zap.SugaredLogger {
	return g.logger
}

// AddProvider registers the formatters of p. Formatters of later providers take precedence
// over formatters with the same name.
func (g *Generator) AddProvider(p Provider) {
	g.providers = append([]Provider{p}, g.providers...)
	for _, f := range p.Formatters() {
		g.formatters[f.Name] = f
	}
	g.logger.Debugw("added provider", "provider", p.Name(), "locale", g.locale)
}

// Providers returns the registered providers, the most recently added first
func (g *Generator) Providers() []Provider {
	return append([]Provider(nil), g.providers...)
}

func (g *Generator) GetFormatter(name string) (Formatter, error) {
	if f, ok := g.formatters[name]; ok {
		return f, nil
	}
	return Formatter{}, fmt.Errorf("%w: unknown formatter %q", errs.NotFound, name)
}

func (g *Generator) Format(name string, args Args) (any, error) {
	f, err := g.GetFormatter(name)
	if err != nil {
		return nil, err
	}
	return f.Call(args)
}

// FormatString formats a value and renders it as text
func (g *Generator) FormatString(name string, args Args) (string, error) {
	value, err := g.Format(name, args)
	if err != nil {
		return "", err
	}
	return Stringify(value), nil
}

// Parse replaces every {{ formatter }} token of text with the output of the formatter. The
// whitespace inside the braces is kept.
func (g *Generator) Parse(text string) (string, error) {
	matches := tokenRegexp.FindAllStringSubmatchIndex(text, -1)
	if matches == nil {
		return text, nil
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		b.WriteString(text[last:m[0]])
		value, err := g.FormatString(text[m[4]:m[5]], Args{})
		if err != nil {
			return "", err
		}
		b.WriteString(text[m[2]:m[3]])
		b.WriteString(value)
		b.WriteString(text[m[6]:m[7]])
		last = m[1]
	}
	b.WriteString(text[last:])
	return b.String(), nil
}

// Stringify renders a formatter value the way it is printed
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return "None"
	case string:
		return v
	case []byte:
		return fmt.Sprintf("%q", v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
