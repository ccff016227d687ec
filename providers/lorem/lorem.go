package lorem

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	errs "github.com/tidepool-org/fakegen/errors"
	"github.com/tidepool-org/fakegen/generator"
)

const (
	wordConnector       = " "
	sentencePunctuation = "."

	// MinTextChars is the shortest text Text can produce
	MinTextChars = 5
)

type Provider struct {
	*generator.Base
	title cases.Caser
}

func New(g *generator.Generator) generator.Provider {
	return &Provider{
		Base:  generator.NewBase(g),
		title: cases.Title(language.English),
	}
}

func (p *Provider) Name() string {
	return "lorem"
}

// Word returns a word of extWords, of the locale word list or of the bundled lorem ipsum
func (p *Provider) Word(extWords []string) string {
	if len(extWords) > 0 {
		return p.RandomElement(extWords)
	}
	if words := p.Generator().Data().Words; len(words) > 0 {
		return p.RandomElement(words)
	}
	return p.Generator().Words().Lorem().Word()
}

func (p *Provider) Words(nb int, extWords []string) []string {
	words := make([]string, 0, max(nb, 0))
	for i := 0; i < nb; i++ {
		words = append(words, p.Word(extWords))
	}
	return words
}

// Sentence returns nbWords words, about nbWords when variable is set, starting with a capital
// letter and ending with a period. No words make an empty sentence.
func (p *Provider) Sentence(nbWords int, variable bool, extWords []string) string {
	if nbWords <= 0 {
		return ""
	}
	if variable {
		nbWords = p.RandomizeNbElements(nbWords)
	}

	words := p.Words(nbWords, extWords)
	words[0] = p.title.String(words[0])
	return strings.Join(words, wordConnector) + sentencePunctuation
}

func (p *Provider) Sentences(nb int) []string {
	sentences := make([]string, 0, max(nb, 0))
	for i := 0; i < nb; i++ {
		sentences = append(sentences, p.Sentence(6, true, nil))
	}
	return sentences
}

func (p *Provider) Paragraph(nbSentences int, variable bool) string {
	if nbSentences <= 0 {
		return ""
	}
	if variable {
		nbSentences = p.RandomizeNbElements(nbSentences)
	}
	return strings.Join(p.Sentences(nbSentences), " ")
}

func (p *Provider) Paragraphs(nb int) []string {
	paragraphs := make([]string, 0, max(nb, 0))
	for i := 0; i < nb; i++ {
		paragraphs = append(paragraphs, p.Paragraph(3, true))
	}
	return paragraphs
}

// Text returns at most maxChars characters of words, sentences or paragraphs depending on
// the requested size.
func (p *Provider) Text(maxChars int) (string, error) {
	if maxChars < MinTextChars {
		return "", fmt.Errorf("%w: text can only generate text of at least %d characters", errs.Value, MinTextChars)
	}

	var next func() string
	var separator string
	switch {
	case maxChars < 25:
		next = func() string { return p.Word(nil) }
		separator = " "
	case maxChars < 100:
		next = func() string { return p.Sentence(6, true, nil) }
		separator = " "
	default:
		next = func() string { return p.Paragraph(3, true) }
		separator = "\n"
	}

	var parts []string
	for len(parts) == 0 {
		size := 0
		for size < maxChars {
			part := next()
			if size > 0 {
				part = separator + part
			}
			parts = append(parts, part)
			size += len([]rune(part))
		}
		parts = parts[:len(parts)-1]
	}

	if maxChars < 25 {
		parts[0] = p.title.String(parts[0])
		parts[len(parts)-1] += sentencePunctuation
	}
	return strings.Join(parts, ""), nil
}

// RandomizeNbElements returns a number between 60% and 140% of number, plus one
func (p *Provider) RandomizeNbElements(number int) int {
	return number*p.RandomInt(60, 140)/100 + 1
}

type wordsOptions struct {
	Nb          int      `mapstructure:"nb"`
	ExtWordList []string `mapstructure:"ext_word_list"`
}

type wordOptions struct {
	ExtWordList []string `mapstructure:"ext_word_list"`
}

type sentenceOptions struct {
	NbWords         int      `mapstructure:"nb_words"`
	VariableNbWords bool     `mapstructure:"variable_nb_words"`
	ExtWordList     []string `mapstructure:"ext_word_list"`
}

type countOptions struct {
	Nb int `mapstructure:"nb"`
}

type paragraphOptions struct {
	NbSentences         int  `mapstructure:"nb_sentences"`
	VariableNbSentences bool `mapstructure:"variable_nb_sentences"`
}

type textOptions struct {
	MaxNbChars int `mapstructure:"max_nb_chars"`
}

func (p *Provider) Formatters() []generator.Formatter {
	return []generator.Formatter{
		generator.WithOptions("word", wordOptions{}, func(opts wordOptions) (string, error) {
			return p.Word(opts.ExtWordList), nil
		}),
		generator.WithOptions("words", wordsOptions{Nb: 3}, func(opts wordsOptions) ([]string, error) {
			return p.Words(opts.Nb, opts.ExtWordList), nil
		}),
		generator.WithOptions("sentence", sentenceOptions{NbWords: 6, VariableNbWords: true}, func(opts sentenceOptions) (string, error) {
			return p.Sentence(opts.NbWords, opts.VariableNbWords, opts.ExtWordList), nil
		}),
		generator.WithOptions("sentences", countOptions{Nb: 3}, func(opts countOptions) ([]string, error) {
			return p.Sentences(opts.Nb), nil
		}),
		generator.WithOptions("paragraph", paragraphOptions{NbSentences: 3, VariableNbSentences: true}, func(opts paragraphOptions) (string, error) {
			return p.Paragraph(opts.NbSentences, opts.VariableNbSentences), nil
		}),
		generator.WithOptions("paragraphs", countOptions{Nb: 3}, func(opts countOptions) ([]string, error) {
			return p.Paragraphs(opts.Nb), nil
		}),
		generator.WithOptions("text", textOptions{MaxNbChars: 200}, func(opts textOptions) (string, error) {
			return p.Text(opts.MaxNbChars)
		}),
	}
}
