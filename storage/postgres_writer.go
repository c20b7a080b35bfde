package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"static-scraper/models"
)

// PostgresWriter mirrors each run's records into PostgreSQL, one row per
// record with the fields stored as a JSONB object keyed by column name.
type PostgresWriter struct {
	db        *sql.DB
	sourceURL string
}

// NewPostgresWriter opens a connection to PostgreSQL, runs schema migrations,
// and returns a ready-to-use PostgresWriter. Records are tagged with sourceURL.
func NewPostgresWriter(dsn, sourceURL string) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, &PersistenceError{Target: "postgres", Op: "open", Err: err}
	}

	for i := 0; i < 5; i++ {
		if err = db.Ping(); err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	if err != nil {
		_ = db.Close()
		return nil, &PersistenceError{Target: "postgres", Op: "ping", Err: err}
	}

	pw := &PostgresWriter{db: db, sourceURL: sourceURL}
	if err := pw.migrate(); err != nil {
		_ = db.Close()
		return nil, &PersistenceError{Target: "postgres", Op: "migrate", Err: err}
	}

	return pw, nil
}

func (pw *PostgresWriter) migrate() error {
	_, err := pw.db.Exec(`
		CREATE TABLE IF NOT EXISTS scraped_records (
			id          SERIAL PRIMARY KEY,
			source_url  TEXT        NOT NULL,
			position    INTEGER     NOT NULL,
			fields      JSONB       NOT NULL,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (source_url, position)
		);

		CREATE INDEX IF NOT EXISTS idx_scraped_records_source ON scraped_records(source_url);
	`)
	return err
}

const clearQuery = "DELETE FROM scraped_records WHERE source_url = $1"

// recordTx is the subset of *sql.Tx used to replace a source's records.
type recordTx interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Commit() error
	Rollback() error
}

// Write replaces the stored records for the source URL with rs. The delete
// and every insert share one transaction, so a failure keeps the old rows.
func (pw *PostgresWriter) Write(rs *models.RecordSet) error {
	tx, err := pw.db.Begin()
	if err != nil {
		return &PersistenceError{Target: "postgres", Op: "begin", Err: err}
	}
	return replaceRecords(tx, pw.sourceURL, rs)
}

// replaceRecords runs the delete and batched inserts on tx, committing only
// if all of them succeed and rolling back otherwise.
func replaceRecords(tx recordTx, sourceURL string, rs *models.RecordSet) error {
	if err := execReplace(tx, sourceURL, rs); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return &PersistenceError{Target: "postgres", Op: "commit", Err: err}
	}
	return nil
}

func execReplace(tx recordTx, sourceURL string, rs *models.RecordSet) error {
	if _, err := tx.Exec(clearQuery, sourceURL); err != nil {
		return &PersistenceError{Target: "postgres", Op: "clear", Err: err}
	}

	const batchSize = 50
	for i := 0; i < rs.Len(); i += batchSize {
		end := i + batchSize
		if end > rs.Len() {
			end = rs.Len()
		}
		query, args, err := insertBatch(sourceURL, rs, i, end)
		if err != nil {
			return &PersistenceError{Target: "postgres", Op: "encode batch", Err: err}
		}
		if _, err := tx.Exec(query, args...); err != nil {
			return &PersistenceError{Target: "postgres", Op: "insert batch", Err: err}
		}
	}
	return nil
}

// insertBatch builds the multi-row INSERT for records [from, to).
func insertBatch(sourceURL string, rs *models.RecordSet, from, to int) (string, []interface{}, error) {
	valueStrings := make([]string, 0, to-from)
	valueArgs := make([]interface{}, 0, (to-from)*3)

	for idx := from; idx < to; idx++ {
		fields := make(map[string]string, len(rs.Columns))
		for c, col := range rs.Columns {
			fields[col] = rs.Records[idx].Values[c]
		}
		encoded, err := json.Marshal(fields)
		if err != nil {
			return "", nil, err
		}

		base := (idx - from) * 3
		valueStrings = append(valueStrings,
			fmt.Sprintf("($%d,$%d,$%d)", base+1, base+2, base+3))
		valueArgs = append(valueArgs, sourceURL, idx, string(encoded))
	}

	query := fmt.Sprintf(`
		INSERT INTO scraped_records (source_url, position, fields)
		VALUES %s
		ON CONFLICT (source_url, position) DO UPDATE SET fields = EXCLUDED.fields
	`, strings.Join(valueStrings, ","))

	return query, valueArgs, nil
}

func (pw *PostgresWriter) Close() error {
	return pw.db.Close()
}
