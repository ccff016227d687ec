package factory

import (
	"slices"
	"sync"

	"github.com/tidepool-org/fakegen/generator"
	"github.com/tidepool-org/fakegen/locales"
	"github.com/tidepool-org/fakegen/providers/datetime"
	"github.com/tidepool-org/fakegen/providers/internet"
	"github.com/tidepool-org/fakegen/providers/lorem"
	"github.com/tidepool-org/fakegen/providers/misc"
	"github.com/tidepool-org/fakegen/providers/person"
	"github.com/tidepool-org/fakegen/providers/python"
	"github.com/tidepool-org/fakegen/providers/ssn"
)

// Constructor binds a provider to a generator
type Constructor func(g *generator.Generator) generator.Provider

func newBase(g *generator.Generator) generator.Provider {
	return generator.NewBase(g)
}

// CommonProviders are registered for every locale, in registration order
var CommonProviders = []Constructor{
	newBase,
	person.New,
	internet.New,
	lorem.New,
	misc.New,
	python.New,
	datetime.New,
}

var ssnProviders = map[string]Constructor{
	"hr_HR": ssn.NewHR,
	"nl_BE": ssn.NewBE,
	"pt_BR": ssn.NewBR,
}

// Registry maps locales onto the provider constructors used to build their generators
type Registry struct {
	constructors map[string][]Constructor
	mu           *sync.RWMutex
}

func NewRegistry() *Registry {
	r := &Registry{
		constructors: make(map[string][]Constructor),
		mu:           &sync.RWMutex{},
	}
	for _, locale := range locales.Available() {
		constructor, ok := ssnProviders[locale]
		if !ok {
			constructor = ssn.NewUS
		}
		r.Register(locale, append(slices.Clone(CommonProviders), constructor)...)
	}
	return r
}

// Register replaces the constructors of locale
func (r *Registry) Register(locale string, constructors ...Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.constructors[locale] = slices.Clone(constructors)
}

func (r *Registry) Get(locale string) ([]Constructor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	constructors, ok := r.constructors[locale]
	return slices.Clone(constructors), ok
}

// List returns the registered locales in sorted order
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]string, 0, len(r.constructors))
	for locale := range r.constructors {
		list = append(list, locale)
	}
	slices.Sort(list)
	return list
}
