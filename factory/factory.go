package factory

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/tidepool-org/fakegen/clock"
	"github.com/tidepool-org/fakegen/config"
	errs "github.com/tidepool-org/fakegen/errors"
	"github.com/tidepool-org/fakegen/generator"
	"github.com/tidepool-org/fakegen/locales"
)

// Factory builds generators for registered locales
type Factory struct {
	registry *Registry
	store    *locales.Store
	clock    clock.Clock
	logger   *zap.SugaredLogger
}

func NewFactory(registry *Registry, store *locales.Store, clk clock.Clock, logger *zap.SugaredLogger) *Factory {
	return &Factory{
		registry: registry,
		store:    store,
		clock:    clk,
		logger:   logger,
	}
}

// Create returns a generator for locale with every provider of the locale registered.
// A zero seed is replaced by one derived from the clock.
func (f *Factory) Create(locale string, seed int64) (*generator.Generator, error) {
	resolved, err := f.ResolveLocale(locale)
	if err != nil {
		return nil, err
	}
	constructors, _ := f.registry.Get(resolved)

	data, err := f.store.Load(resolved)
	if err != nil {
		return nil, err
	}

	if seed == 0 {
		seed = f.clock.Now().UnixNano()
	}

	g := generator.New(seed,
		generator.WithLocale(resolved, data),
		generator.WithClock(f.clock),
		generator.WithLogger(f.logger),
	)
	for _, constructor := range constructors {
		g.AddProvider(constructor(g))
	}

	f.logger.Debugw("created generator", "locale", resolved, "seed", seed, "providers", len(constructors))
	return g, nil
}

// ResolveLocale returns the registered locale matching locale. Names that are not registered
// as-is are matched by language and region, so "ja" resolves to "ja_JP" and "en-US" to "en_US".
func (f *Factory) ResolveLocale(locale string) (string, error) {
	if _, ok := f.registry.Get(locale); ok {
		return locale, nil
	}

	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return "", fmt.Errorf("%w: %q: %s", errs.InvalidLocale, locale, err)
	}

	registered := f.registry.List()
	supported := make([]language.Tag, 0, len(registered))
	names := make([]string, 0, len(registered))
	for _, name := range registered {
		t, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
		if err != nil {
			continue
		}
		supported = append(supported, t)
		names = append(names, name)
	}
	if len(supported) == 0 {
		return "", fmt.Errorf("%w: %q", errs.InvalidLocale, locale)
	}

	_, index, confidence := language.NewMatcher(supported).Match(tag)
	if confidence < language.High {
		return "", fmt.Errorf("%w: %q", errs.InvalidLocale, locale)
	}

	f.logger.Debugw("resolved locale", "requested", locale, "locale", names[index])
	return names[index], nil
}

// NewGenerator creates the generator described by the configuration
func NewGenerator(f *Factory, cfg *config.Config) (*generator.Generator, error) {
	return f.Create(cfg.Locale, cfg.Seed)
}
