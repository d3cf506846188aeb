// Package load bulk-inserts exported CSV files into the relational store.
package load

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"storeseed/internal/database"
)

// ErrDataFormat marks a CSV value that cannot be cast to its declared
// column type, or a header that does not match the table schema.
var ErrDataFormat = errors.New("data format error")

type Loader struct {
	db *database.DB
}

func New(db *database.DB) *Loader {
	return &Loader{db: db}
}

// LoadTable reads the CSV at csvPath and bulk-inserts its rows into the
// table described by schema, preserving file row order. Values are cast
// per the schema's column types. An empty file yields zero rows.
func (l *Loader) LoadTable(schema database.TableSchema, csvPath string) (int, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", csvPath, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err == io.EOF {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read header of %s: %w", csvPath, err)
	}

	columns := make([]database.Column, len(header))
	for i, name := range header {
		col, ok := schema.Column(name)
		if !ok {
			return 0, fmt.Errorf("%w: table %s has no column %q", ErrDataFormat, schema.Name, name)
		}
		columns[i] = col
	}

	insertSQL := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		schema.Name,
		strings.Join(header, ", "),
		strings.TrimSuffix(strings.Repeat("?, ", len(header)), ", "),
	)

	tx, err := l.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction for %s: %w", schema.Name, err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(insertSQL)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert for %s: %w", schema.Name, err)
	}
	defer stmt.Close()

	inserted := 0
	values := make([]any, len(columns))
	for rowNum := 1; ; rowNum++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("failed to read %s row %d: %w", csvPath, rowNum, err)
		}
		for i, col := range columns {
			values[i], err = castValue(col.Type, record[i])
			if err != nil {
				return 0, fmt.Errorf("%w: table %s column %s row %d: %v",
					ErrDataFormat, schema.Name, col.Name, rowNum, err)
			}
		}
		if _, err := stmt.Exec(values...); err != nil {
			return 0, fmt.Errorf("failed to insert into %s row %d: %w", schema.Name, rowNum, err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit %s: %w", schema.Name, err)
	}
	return inserted, nil
}

// LoadAll loads every table from <dir>/<table>.csv in dependency order
// and returns the inserted row count per table.
func (l *Loader) LoadAll(dir string) (map[string]int, error) {
	counts := make(map[string]int)
	for _, schema := range database.TableSchemas {
		count, err := l.LoadTable(schema, filepath.Join(dir, schema.Name+".csv"))
		if err != nil {
			return nil, err
		}
		counts[schema.Name] = count
	}
	return counts, nil
}

func castValue(t database.ColumnType, s string) (any, error) {
	switch t {
	case database.ColumnInteger:
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("cannot cast %q to integer", s)
		}
		return v, nil
	case database.ColumnReal:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("cannot cast %q to real", s)
		}
		return v, nil
	default:
		return s, nil
	}
}
