package export

import (
	"encoding/csv"
	"io"
)

type csvWriter struct {
	w *csv.Writer
}

func NewCSVWriter(w io.Writer) Writer {
	return &csvWriter{w: csv.NewWriter(w)}
}

func (c *csvWriter) WriteHeader(fields []string) error {
	return c.w.Write(fields)
}

func (c *csvWriter) WriteRow(values []string) error {
	return c.w.Write(values)
}

func (c *csvWriter) Close() error {
	c.w.Flush()
	return c.w.Error()
}
