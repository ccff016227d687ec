package text

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonWordRegexp      = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)
	nonWordOrDotRegexp = regexp.MustCompile(`[^\p{L}\p{N}_.\s-]`)
	separatorRegexp    = regexp.MustCompile(`[-\s]+`)
	stripNonASCII      = runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII }))
)

// Slugify lowercases s, removes everything but word characters, whitespace and hyphens and
// collapses runs of whitespace and hyphens into a single hyphen. Accented letters are
// decomposed to ASCII unless allowUnicode is set.
func Slugify(s string, allowDots, allowUnicode bool) string {
	pattern := nonWordRegexp
	if allowDots {
		pattern = nonWordOrDotRegexp
	}

	if allowUnicode {
		s = norm.NFKC.String(s)
	} else {
		s = ASCII(s)
	}

	s = strings.ToLower(strings.TrimSpace(pattern.ReplaceAllString(s, "")))
	return separatorRegexp.ReplaceAllString(s, "-")
}

func Slug(s string) string {
	return Slugify(s, false, false)
}

// DomainSlug keeps dots so that the result can be used as a host name
func DomainSlug(s string) string {
	return Slugify(s, true, false)
}

func UnicodeSlug(s string) string {
	return Slugify(s, false, true)
}

// ASCII folds accented letters to their ASCII base letter and drops every other non ASCII rune
func ASCII(s string) string {
	t := transform.Chain(norm.NFKD, stripNonASCII)
	if ascii, _, err := transform.String(t, s); err == nil {
		return ascii
	}
	return ""
}
