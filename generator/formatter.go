package generator

import (
	"strings"

	"github.com/fatih/structs"
)

const tagName = "mapstructure"

type FormatterFunc func(args Args) (any, error)

// Formatter is a named fake value producer. Defaults is the option struct the arguments are
// decoded into, or nil when the formatter takes no arguments.
type Formatter struct {
	Name     string
	Params   []string
	Defaults any
	Func     FormatterFunc
}

func (f Formatter) Call(args Args) (any, error) {
	return f.Func(args)
}

// Simple returns a formatter without arguments
func Simple[R any](name string, fn func() R) Formatter {
	return Formatter{
		Name: name,
		Func: func(args Args) (any, error) {
			if err := args.Decode(nil, &struct{}{}); err != nil {
				return nil, err
			}
			return fn(), nil
		},
	}
}

// SimpleErr returns a formatter without arguments which may fail
func SimpleErr[R any](name string, fn func() (R, error)) Formatter {
	return Formatter{
		Name: name,
		Func: func(args Args) (any, error) {
			if err := args.Decode(nil, &struct{}{}); err != nil {
				return nil, err
			}
			return fn()
		},
	}
}

// WithOptions returns a formatter whose arguments are decoded into a copy of defaults. The
// positional parameters follow the declaration order of the fields of T.
func WithOptions[T any, R any](name string, defaults T, fn func(opts T) (R, error)) Formatter {
	params := ParamNames(defaults)
	return Formatter{
		Name:     name,
		Params:   params,
		Defaults: defaults,
		Func: func(args Args) (any, error) {
			opts := defaults
			if err := args.Decode(params, &opts); err != nil {
				return nil, err
			}
			return fn(opts)
		},
	}
}

// ParamNames returns the argument names of an option struct, in declaration order
func ParamNames(options any) []string {
	if options == nil || !structs.IsStruct(options) {
		return nil
	}

	s := structs.New(options)
	s.TagName = tagName

	var names []string
	for _, field := range s.Fields() {
		if !field.IsExported() {
			continue
		}
		name := strings.Split(field.Tag(tagName), ",")[0]
		if name == "" {
			name = field.Name()
		}
		if name == "-" {
			continue
		}
		names = append(names, name)
	}
	return names
}

// ParamValues returns the values of an option struct keyed by argument name
func ParamValues(options any) map[string]any {
	if options == nil || !structs.IsStruct(options) {
		return nil
	}

	s := structs.New(options)
	s.TagName = tagName
	return s.Map()
}
