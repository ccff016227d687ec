package internet

import (
	"fmt"
	"net/netip"
	"regexp"
	"strings"

	errs "github.com/tidepool-org/fakegen/errors"
	"github.com/tidepool-org/fakegen/generator"
	"github.com/tidepool-org/fakegen/text"
)

const fallbackDomainWord = "example"

var (
	repeatedDotsRegexp = regexp.MustCompile(`\.{2,}`)
	userNameRegexp     = regexp.MustCompile(`[^a-z0-9._-]`)

	defaultUserNameFormats = []string{"{{last_romanized_name}}.{{first_romanized_name}}"}
	defaultEmailFormats    = []string{"{{user_name}}@{{domain_name}}"}
	defaultURLFormats      = []string{"https://{{domain_name}}/"}
)

type Provider struct {
	*generator.Base
}

func New(g *generator.Generator) generator.Provider {
	return &Provider{Base: generator.NewBase(g)}
}

func (p *Provider) Name() string {
	return "internet"
}

// UserName returns a lower case ASCII user name, usable as the local part of an email address
func (p *Provider) UserName() (string, error) {
	parsed, err := p.Generator().Parse(p.RandomElement(orDefault(p.Generator().Data().UserNameFormats, defaultUserNameFormats)))
	if err != nil {
		return "", err
	}

	userName := cleanUserName(p.Bothify(parsed))
	if userName == "" {
		userName = cleanUserName(p.Generator().Words().Internet().User())
	}
	return userName, nil
}

func (p *Provider) Email() (string, error) {
	email, err := p.Generator().Parse(p.RandomElement(orDefault(p.Generator().Data().EmailFormats, defaultEmailFormats)))
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(email, " ", ""), nil
}

// SafeEmail returns an email address at a reserved example domain
func (p *Provider) SafeEmail() (string, error) {
	userName, err := p.UserName()
	if err != nil {
		return "", err
	}
	domains := orDefault(p.Generator().Data().SafeEmailDomains, []string{"example.com"})
	return userName + "@" + p.RandomElement(domains), nil
}

func (p *Provider) FreeEmail() (string, error) {
	userName, err := p.UserName()
	if err != nil {
		return "", err
	}
	return userName + "@" + p.FreeEmailDomain(), nil
}

func (p *Provider) CompanyEmail() (string, error) {
	userName, err := p.UserName()
	if err != nil {
		return "", err
	}
	domain, err := p.DomainName(1)
	if err != nil {
		return "", err
	}
	return userName + "@" + domain, nil
}

func (p *Provider) FreeEmailDomain() string {
	domains := p.Generator().Data().FreeEmailDomains
	if len(domains) == 0 {
		return p.Generator().Words().Internet().FreeEmailDomain()
	}
	return p.RandomElement(domains)
}

func (p *Provider) TLD() string {
	tlds := p.Generator().Data().TLDs
	if len(tlds) == 0 {
		return p.Generator().Words().Internet().TLD()
	}
	return p.RandomElement(tlds)
}

// DomainWord returns a single host label. Locales with romanized names use a romanized last
// name, the others the first word of a company name.
func (p *Provider) DomainWord() string {
	var word string
	if names := p.Generator().Data().LastRomanizedNames; len(names) > 0 {
		word = text.Slug(p.RandomElement(names))
	} else {
		company := strings.Fields(p.Generator().Words().Company().Name())
		if len(company) > 0 {
			word = text.Slug(company[0])
		}
	}

	if word == "" {
		return fallbackDomainWord
	}
	return word
}

// DomainName returns a host name with levels labels in front of the top level domain
func (p *Provider) DomainName(levels int) (string, error) {
	if levels < 1 {
		return "", fmt.Errorf("%w: levels must be greater than or equal to 1", errs.Value)
	}

	labels := make([]string, 0, levels+1)
	for i := 0; i < levels; i++ {
		labels = append(labels, p.DomainWord())
	}
	labels = append(labels, p.TLD())
	return strings.Join(labels, "."), nil
}

func (p *Provider) URL() (string, error) {
	return p.Generator().Parse(p.RandomElement(orDefault(p.Generator().Data().URLFormats, defaultURLFormats)))
}

// Slug slugifies value, or a few random words when value is empty
func (p *Provider) Slug(value string) string {
	if value == "" {
		value = strings.Join(p.Generator().Words().Lorem().Words(3), " ")
	}
	return text.Slug(value)
}

func (p *Provider) MACAddress() string {
	octets := make([]string, 6)
	for i := range octets {
		octets[i] = fmt.Sprintf("%02x", p.Rand().Intn(256))
	}
	return strings.Join(octets, ":")
}

// IPv4 returns a dotted quad address, or a network in CIDR notation with the host bits cleared
func (p *Provider) IPv4(network bool) string {
	var b [4]byte
	for i := range b {
		b[i] = byte(p.Rand().Intn(256))
	}
	addr := netip.AddrFrom4(b)
	if !network {
		return addr.String()
	}
	return netip.PrefixFrom(addr, p.Rand().Intn(addr.BitLen()+1)).Masked().String()
}

// IPv6 returns an address in its canonical text form, or a network in CIDR notation with the
// host bits cleared. IPv4 mapped addresses are never returned.
func (p *Provider) IPv6(network bool) string {
	var addr netip.Addr
	for {
		var b [16]byte
		for i := range b {
			b[i] = byte(p.Rand().Intn(256))
		}
		if addr = netip.AddrFrom16(b); !addr.Is4In6() {
			break
		}
	}
	if !network {
		return addr.String()
	}
	return netip.PrefixFrom(addr, p.Rand().Intn(addr.BitLen()+1)).Masked().String()
}

func cleanUserName(userName string) string {
	userName = text.DomainSlug(userName)
	userName = userNameRegexp.ReplaceAllString(userName, "")
	userName = repeatedDotsRegexp.ReplaceAllString(userName, ".")
	return strings.Trim(userName, ".")
}

func orDefault(values []string, defaults []string) []string {
	if len(values) == 0 {
		return defaults
	}
	return values
}

type networkOptions struct {
	Network bool `mapstructure:"network"`
}

type levelsOptions struct {
	Levels int `mapstructure:"levels"`
}

type slugOptions struct {
	Value string `mapstructure:"value"`
}

func (p *Provider) Formatters() []generator.Formatter {
	return []generator.Formatter{
		generator.SimpleErr("email", p.Email),
		generator.SimpleErr("safe_email", p.SafeEmail),
		generator.SimpleErr("free_email", p.FreeEmail),
		generator.SimpleErr("company_email", p.CompanyEmail),
		generator.Simple("free_email_domain", p.FreeEmailDomain),
		generator.SimpleErr("user_name", p.UserName),
		generator.WithOptions("domain_name", levelsOptions{Levels: 1}, func(opts levelsOptions) (string, error) {
			return p.DomainName(opts.Levels)
		}),
		generator.Simple("domain_word", p.DomainWord),
		generator.Simple("tld", p.TLD),
		generator.SimpleErr("url", p.URL),
		generator.WithOptions("slug", slugOptions{}, func(opts slugOptions) (string, error) {
			return p.Slug(opts.Value), nil
		}),
		generator.Simple("mac_address", p.MACAddress),
		generator.WithOptions("ipv4", networkOptions{}, func(opts networkOptions) (string, error) {
			return p.IPv4(opts.Network), nil
		}),
		generator.WithOptions("ipv6", networkOptions{}, func(opts networkOptions) (string, error) {
			return p.IPv6(opts.Network), nil
		}),
	}
}
