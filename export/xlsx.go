package export

import (
	"io"

	"github.com/tealeg/xlsx/v3"
)

const DefaultSheetName = "Fake Data"

type xlsxWriter struct {
	out   io.Writer
	file  *xlsx.File
	sheet *xlsx.Sheet
}

// NewXLSXWriter returns a writer which keeps the rows in a single sheet and writes the
// workbook to w on Close
func NewXLSXWriter(w io.Writer, sheetName string) (Writer, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(sheetName)
	if err != nil {
		return nil, err
	}
	return &xlsxWriter{
		out:   w,
		file:  file,
		sheet: sheet,
	}, nil
}

func (x *xlsxWriter) WriteHeader(fields []string) error {
	return x.WriteRow(fields)
}

func (x *xlsxWriter) WriteRow(values []string) error {
	row := x.sheet.AddRow()
	for _, value := range values {
		row.AddCell().SetString(value)
	}
	return nil
}

func (x *xlsxWriter) Close() error {
	return x.file.Write(x.out)
}
