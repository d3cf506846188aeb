// Package export serializes record collections to delimited files.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"storeseed/internal/models"
)

// WriteCSV writes a table to <dir>/<name>.csv: a header row in the
// table's declared field order followed by one row per record in input
// order. Missing directories are created. Returns the written path.
func WriteCSV(table models.Table, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, table.Name+".csv")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(table.Fields); err != nil {
		return "", fmt.Errorf("failed to write header for %s: %w", table.Name, err)
	}

	record := make([]string, len(table.Fields))
	for _, row := range table.Rows {
		for i, field := range table.Fields {
			record[i] = fmt.Sprint(row[field])
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("failed to write row for %s: %w", table.Name, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", path, err)
	}
	return path, nil
}

// WriteAll exports every table of the dataset and returns the written
// paths keyed by table name.
func WriteAll(dataset *models.Dataset, dir string) (map[string]string, error) {
	paths := make(map[string]string)
	for _, table := range dataset.Tables() {
		path, err := WriteCSV(table, dir)
		if err != nil {
			return nil, err
		}
		paths[table.Name] = path
	}
	return paths, nil
}
