package storage

import (
	"github.com/xuri/excelize/v2"

	"static-scraper/models"
)

// SheetName is the worksheet records are written to.
const SheetName = "Sheet1"

// XLSXWriter writes a RecordSet to a single-sheet xlsx workbook.
type XLSXWriter struct {
	path string
}

// NewXLSXWriter returns a writer for path. Nothing touches disk until Write.
func NewXLSXWriter(path string) *XLSXWriter {
	return &XLSXWriter{path: path}
}

// Write builds the workbook in memory and saves it over any existing file.
func (x *XLSXWriter) Write(rs *models.RecordSet) error {
	if err := ensureDir(x.path); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := setRow(f, 1, rs.Columns); err != nil {
		return &PersistenceError{Target: x.path, Op: "write header", Err: err}
	}
	for i, r := range rs.Records {
		if err := setRow(f, i+2, r.Values); err != nil {
			return &PersistenceError{Target: x.path, Op: "write row", Err: err}
		}
	}

	if err := f.SaveAs(x.path); err != nil {
		return &PersistenceError{Target: x.path, Op: "save workbook", Err: err}
	}
	return nil
}

func setRow(f *excelize.File, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return f.SetSheetRow(SheetName, cell, &cells)
}

// Close is a no-op; the workbook is released at the end of Write.
func (x *XLSXWriter) Close() error { return nil }
