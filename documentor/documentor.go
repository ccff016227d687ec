package documentor

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/tidepool-org/fakegen/chrono"
	errs "github.com/tidepool-org/fakegen/errors"
	"github.com/tidepool-org/fakegen/generator"
)

// formatters whose example output is not printed
var skippedExamples = map[string]string{
	"binary": "bytes(1048576)",
}

// PrintDoc writes one line per formatter of every provider of g, in registration order.
// A non empty filter restricts the output to the provider or the formatter with that name.
func PrintDoc(w io.Writer, g *generator.Generator, filter string) error {
	providers := g.Providers()
	slices.Reverse(providers)

	printed := false
	for _, provider := range providers {
		formatters := provider.Formatters()
		if filter != "" && filter != provider.Name() {
			formatters = slices.DeleteFunc(formatters, func(f generator.Formatter) bool {
				return f.Name != filter
			})
			if len(formatters) == 0 {
				continue
			}
		}

		if _, err := fmt.Fprintf(w, "### %s\n\n", provider.Name()); err != nil {
			return err
		}
		for _, formatter := range formatters {
			if _, err := fmt.Fprintf(w, "\t%s\n", Signature(formatter)+"  # "+example(g, formatter)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		printed = true
	}

	if filter != "" && !printed {
		return fmt.Errorf("%w: no provider or formatter named %q", errs.NotFound, filter)
	}
	return nil
}

// Signature renders the call of a formatter with its default arguments
func Signature(formatter generator.Formatter) string {
	values := generator.ParamValues(formatter.Defaults)
	args := make([]string, 0, len(formatter.Params))
	for _, name := range formatter.Params {
		args = append(args, name+"="+Literal(values[name]))
	}
	return fmt.Sprintf("fake.%s(%s)", formatter.Name, strings.Join(args, ", "))
}

// Literal renders a default argument value
func Literal(value any) string {
	switch v := value.(type) {
	case nil:
		return "None"
	case string:
		return strconv.Quote(v)
	case bool:
		if v {
			return "True"
		}
		return "False"
	case *int:
		if v == nil {
			return "None"
		}
		return strconv.Itoa(*v)
	case chrono.Zone:
		if v.Location == nil {
			return "None"
		}
		return strconv.Quote(v.String())
	case []string:
		quoted := make([]string, len(v))
		for i, s := range v {
			quoted[i] = strconv.Quote(s)
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	default:
		return generator.Stringify(v)
	}
}

func example(g *generator.Generator, formatter generator.Formatter) string {
	if placeholder, ok := skippedExamples[formatter.Name]; ok {
		return placeholder
	}
	value, err := formatter.Call(generator.Args{})
	if err != nil {
		g.Logger().Warnw("unable to render example", "formatter", formatter.Name, "error", err)
		return "error: " + err.Error()
	}
	return generator.Stringify(value)
}
