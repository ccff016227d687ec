package errors

import (
	"errors"
)

var (
	Format        = Error{KindFormat, errors.New("unsupported format")}
	Comparison    = Error{KindComparison, errors.New("can't compare offset-naive and offset-aware instants")}
	Value         = Error{KindValue, errors.New("invalid value")}
	NotFound      = Error{KindNotFound, errors.New("not found")}
	InvalidLocale = Error{KindInvalidLocale, errors.New("invalid locale")}
)

type Kind string

const (
	KindFormat        Kind = "format"
	KindComparison    Kind = "comparison"
	KindValue         Kind = "value"
	KindNotFound      Kind = "not_found"
	KindInvalidLocale Kind = "invalid_locale"
)

type Error struct {
	Kind Kind
	Err  error
}

func (e Error) Unwrap() error {
	return e.Err
}

func (e Error) Error() string {
	return e.Err.Error()
}
