package locales

// Data holds the word lists and formats of a single locale, merged on top of the locale
// neutral base data.
type Data struct {
	Locale string `mapstructure:"locale"`

	FirstNamesMale      []string `mapstructure:"first_names_male"`
	FirstNamesFemale    []string `mapstructure:"first_names_female"`
	LastNames           []string `mapstructure:"last_names"`
	LastNamesMale       []string `mapstructure:"last_names_male"`
	LastNamesFemale     []string `mapstructure:"last_names_female"`
	FirstRomanizedNames []string `mapstructure:"first_romanized_names"`
	LastRomanizedNames  []string `mapstructure:"last_romanized_names"`
	NameFormats         []string `mapstructure:"name_formats"`
	PrefixesMale        []string `mapstructure:"prefixes_male"`
	PrefixesFemale      []string `mapstructure:"prefixes_female"`
	SuffixesMale        []string `mapstructure:"suffixes_male"`
	SuffixesFemale      []string `mapstructure:"suffixes_female"`

	Words []string `mapstructure:"words"`

	TLDs             []string `mapstructure:"tlds"`
	FreeEmailDomains []string `mapstructure:"free_email_domains"`
	SafeEmailDomains []string `mapstructure:"safe_email_domains"`
	UserNameFormats  []string `mapstructure:"user_name_formats"`
	EmailFormats     []string `mapstructure:"email_formats"`
	URLFormats       []string `mapstructure:"url_formats"`

	LanguageCodes []string `mapstructure:"language_codes"`
	Locales       []string `mapstructure:"locales"`
	Timezones     []string `mapstructure:"timezones"`
}

func (d *Data) FirstNames() []string {
	return concat(d.FirstNamesMale, d.FirstNamesFemale)
}

// AllLastNames returns the gender neutral last names followed by the gendered ones
func (d *Data) AllLastNames() []string {
	return concat(d.LastNames, d.LastNamesMale, d.LastNamesFemale)
}

func (d *Data) Prefixes() []string {
	return concat(d.PrefixesMale, d.PrefixesFemale)
}

func (d *Data) Suffixes() []string {
	return concat(d.SuffixesMale, d.SuffixesFemale)
}

func concat(lists ...[]string) []string {
	var result []string
	for _, list := range lists {
		result = append(result, list...)
	}
	return result
}
