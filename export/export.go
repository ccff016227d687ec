package export

import (
	"errors"
	"fmt"
	"io"
	"strings"

	errs "github.com/tidepool-org/fakegen/errors"
	"github.com/tidepool-org/fakegen/generator"
)

//go:generate mockgen --build_flags=--mod=mod -source=./export.go -destination=./test/mock_writer.go -package test

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Writer receives generated rows. Close flushes buffered output but does not close the
// underlying writer.
type Writer interface {
	WriteHeader(fields []string) error
	WriteRow(values []string) error
	Close() error
}

func NewWriter(format string, w io.Writer) (Writer, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}
	if strings.EqualFold(format, FormatXLSX) {
		return NewXLSXWriter(w, DefaultSheetName)
	}
	return NewCSVWriter(w), nil
}

func ValidateFormat(format string) error {
	switch strings.ToLower(format) {
	case FormatCSV, FormatXLSX:
		return nil
	default:
		return fmt.Errorf("%w: unsupported export format %q", errs.Value, format)
	}
}

// Validate checks the row count and that every field names a formatter of g or is a template
func Validate(g *generator.Generator, fields []string, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: row count must not be negative, got %d", errs.Value, n)
	}
	if len(fields) == 0 {
		return fmt.Errorf("%w: at least one field is required", errs.Value)
	}
	for _, field := range fields {
		if isTemplate(field) {
			continue
		}
		if _, err := g.GetFormatter(field); err != nil {
			return err
		}
	}
	return nil
}

// Rows writes a header and n rows to w. Each field is either the name of a formatter or a
// template such as "{{first_name}}.{{last_name}}". Nothing is written when the fields are
// invalid; once the header is written w is always closed.
func Rows(g *generator.Generator, fields []string, n int, w Writer) error {
	if err := Validate(g, fields, n); err != nil {
		return err
	}

	if err := writeRows(g, fields, n, w); err != nil {
		return errors.Join(err, w.Close())
	}

	g.Logger().Debugw("exported rows", "rows", n, "fields", fields)
	return w.Close()
}

func writeRows(g *generator.Generator, fields []string, n int, w Writer) error {
	if err := w.WriteHeader(fields); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		values := make([]string, len(fields))
		for j, field := range fields {
			value, err := render(g, field)
			if err != nil {
				return err
			}
			values[j] = value
		}
		if err := w.WriteRow(values); err != nil {
			return err
		}
	}
	return nil
}

func isTemplate(field string) bool {
	return strings.Contains(field, "{{")
}

func render(g *generator.Generator, field string) (string, error) {
	if isTemplate(field) {
		return g.Parse(field)
	}
	return g.FormatString(field, generator.Args{})
}
