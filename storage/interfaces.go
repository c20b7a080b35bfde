package storage

import (
	"fmt"
	"path/filepath"
	"strings"

	"static-scraper/models"
)

// RecordWriter is the interface any storage backend must satisfy.
type RecordWriter interface {
	Write(rs *models.RecordSet) error
	Close() error
}

// PersistenceError reports a failed write to a storage backend.
type PersistenceError struct {
	Target string
	Op     string
	Err    error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist: %s %s: %v", e.Op, e.Target, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// NewFileWriter picks the tabular writer matching the file extension:
// ".csv" writes CSV, anything else an xlsx workbook.
func NewFileWriter(path string) RecordWriter {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return NewCSVWriter(path)
	}
	return NewXLSXWriter(path)
}
