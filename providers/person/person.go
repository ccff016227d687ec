package person

import (
	"github.com/tidepool-org/fakegen/generator"
	"github.com/tidepool-org/fakegen/text"
)

var defaultNameFormats = []string{"{{first_name}} {{last_name}}"}

// Provider generates person names from the locale data. Locales without their own name lists
// use the bundled English names.
type Provider struct {
	*generator.Base
}

func New(g *generator.Generator) generator.Provider {
	return &Provider{Base: generator.NewBase(g)}
}

func (p *Provider) Name() string {
	return "person"
}

func (p *Provider) FirstName() string {
	return p.pick(p.Generator().Data().FirstNames(), p.Generator().Words().Person().FirstName)
}

func (p *Provider) FirstNameMale() string {
	return p.pick(p.Generator().Data().FirstNamesMale, p.FirstName)
}

func (p *Provider) FirstNameFemale() string {
	return p.pick(p.Generator().Data().FirstNamesFemale, p.FirstName)
}

func (p *Provider) LastName() string {
	return p.pick(p.Generator().Data().AllLastNames(), p.Generator().Words().Person().LastName)
}

func (p *Provider) LastNameMale() string {
	return p.pick(p.Generator().Data().LastNamesMale, p.LastName)
}

func (p *Provider) LastNameFemale() string {
	return p.pick(p.Generator().Data().LastNamesFemale, p.LastName)
}

// FirstRomanizedName returns a first name in latin script
func (p *Provider) FirstRomanizedName() string {
	return p.romanized(p.Generator().Data().FirstRomanizedNames, p.FirstName, p.Generator().Words().Person().FirstName)
}

func (p *Provider) LastRomanizedName() string {
	return p.romanized(p.Generator().Data().LastRomanizedNames, p.LastName, p.Generator().Words().Person().LastName)
}

func (p *Provider) FullName() (string, error) {
	formats := p.Generator().Data().NameFormats
	if len(formats) == 0 {
		formats = defaultNameFormats
	}
	return p.Generator().Parse(p.RandomElement(formats))
}

func (p *Provider) RomanizedName() (string, error) {
	return p.Generator().Parse("{{last_romanized_name}} {{first_romanized_name}}")
}

func (p *Provider) Prefix() string {
	return p.RandomElement(p.Generator().Data().Prefixes())
}

func (p *Provider) PrefixMale() string {
	return p.RandomElement(p.Generator().Data().PrefixesMale)
}

func (p *Provider) PrefixFemale() string {
	return p.RandomElement(p.Generator().Data().PrefixesFemale)
}

func (p *Provider) Suffix() string {
	return p.RandomElement(p.Generator().Data().Suffixes())
}

func (p *Provider) SuffixMale() string {
	return p.RandomElement(p.Generator().Data().SuffixesMale)
}

func (p *Provider) SuffixFemale() string {
	return p.RandomElement(p.Generator().Data().SuffixesFemale)
}

func (p *Provider) pick(names []string, fallback func() string) string {
	if len(names) == 0 {
		return fallback()
	}
	return p.RandomElement(names)
}

// romanized prefers the romanized list of the locale, then an ASCII folding of a local name
func (p *Provider) romanized(names []string, local func() string, fallback func() string) string {
	if len(names) > 0 {
		return p.RandomElement(names)
	}
	if name := text.ASCII(local()); name != "" {
		return name
	}
	return fallback()
}

func (p *Provider) Formatters() []generator.Formatter {
	return []generator.Formatter{
		generator.Simple("first_name", p.FirstName),
		generator.Simple("first_name_male", p.FirstNameMale),
		generator.Simple("first_name_female", p.FirstNameFemale),
		generator.Simple("last_name", p.LastName),
		generator.Simple("last_name_male", p.LastNameMale),
		generator.Simple("last_name_female", p.LastNameFemale),
		generator.Simple("first_romanized_name", p.FirstRomanizedName),
		generator.Simple("last_romanized_name", p.LastRomanizedName),
		generator.SimpleErr("name", p.FullName),
		generator.SimpleErr("romanized_name", p.RomanizedName),
		generator.Simple("prefix", p.Prefix),
		generator.Simple("prefix_male", p.PrefixMale),
		generator.Simple("prefix_female", p.PrefixFemale),
		generator.Simple("suffix", p.Suffix),
		generator.Simple("suffix_male", p.SuffixMale),
		generator.Simple("suffix_female", p.SuffixFemale),
	}
}
