package generator

import (
	"fmt"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/tidepool-org/fakegen/chrono"
	errs "github.com/tidepool-org/fakegen/errors"
)

// Args are the arguments of a single formatter call
type Args struct {
	Positional []any
	Named      map[string]any
}

// Positional returns arguments made of the given positional values
func Positional(values ...any) Args {
	return Args{Positional: values}
}

// Named returns arguments made of the given named values
func Named(values map[string]any) Args {
	return Args{Named: values}
}

// With returns a copy of the arguments with an additional named value
func (a Args) With(name string, value any) Args {
	named := make(map[string]any, len(a.Named)+1)
	for k, v := range a.Named {
		named[k] = v
	}
	named[name] = value
	return Args{Positional: a.Positional, Named: named}
}

func (a Args) IsEmpty() bool {
	return len(a.Positional) == 0 && len(a.Named) == 0
}

// Decode maps the positional values onto params, in order, and decodes them together with
// the named values into dst. Fields of dst without a matching argument keep their value,
// fields given a nil value are reset.
func (a Args) Decode(params []string, dst any) error {
	if len(a.Positional) > len(params) {
		return fmt.Errorf("%w: takes %d positional arguments but %d were given", errs.Value, len(params), len(a.Positional))
	}

	input := make(map[string]any, len(a.Positional)+len(a.Named))
	for i, value := range a.Positional {
		input[params[i]] = value
	}
	for name, value := range a.Named {
		if _, ok := input[name]; ok {
			return fmt.Errorf("%w: got multiple values for argument %q", errs.Value, name)
		}
		input[name] = value
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			zoneHook,
			mapstructure.StringToTimeDurationHookFunc(),
		),
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		ZeroFields:       true,
		Result:           dst,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("%w: %s", errs.Value, err)
	}
	return nil
}

var zoneType = reflect.TypeOf(chrono.Zone{})

func zoneHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != zoneType {
		return data, nil
	}

	switch v := data.(type) {
	case *time.Location:
		return chrono.Zone{Location: v}, nil
	case string:
		if v == "" {
			return chrono.Zone{}, nil
		}
		loc, err := time.LoadLocation(v)
		if err != nil {
			return nil, fmt.Errorf("unknown timezone %q", v)
		}
		return chrono.Zone{Location: loc}, nil
	default:
		return data, nil
	}
}
