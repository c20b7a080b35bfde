package storage

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"static-scraper/models"
)

// CSVWriter writes a RecordSet to a CSV file, header row first.
type CSVWriter struct {
	path string
}

// NewCSVWriter returns a writer for path. Nothing touches disk until Write.
func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{path: path}
}

// Write creates (or truncates) the file and writes the header plus one row
// per record. Intermediate directories are created automatically.
func (c *CSVWriter) Write(rs *models.RecordSet) error {
	if err := ensureDir(c.path); err != nil {
		return err
	}

	f, err := os.Create(c.path)
	if err != nil {
		return &PersistenceError{Target: c.path, Op: "create file", Err: err}
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(rs.Columns); err != nil {
		return &PersistenceError{Target: c.path, Op: "write header", Err: err}
	}
	for _, r := range rs.Records {
		if err := w.Write(r.Values); err != nil {
			return &PersistenceError{Target: c.path, Op: "write row", Err: err}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return &PersistenceError{Target: c.path, Op: "flush", Err: err}
	}
	if err := f.Close(); err != nil {
		return &PersistenceError{Target: c.path, Op: "close file", Err: err}
	}
	return nil
}

// Close is a no-op; the file is closed at the end of Write.
func (c *CSVWriter) Close() error { return nil }

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &PersistenceError{Target: dir, Op: "create output dir", Err: err}
	}
	return nil
}
