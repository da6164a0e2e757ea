// Package csvfile reads the CSV inputs of a pipeline run: the zone alias
// table and the delivery-scan log. Both files carry a header row; columns are
// located by header name, matched case-insensitively, so column order does
// not matter. Short rows are padded with blanks instead of failing.
package csvfile

import (
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"dispatch/internal/pkg/errs"
)

// table holds a parsed CSV file: lower-cased trimmed headers and raw rows
// padded to the header width.
type table struct {
	index map[string]int
	rows  [][]string
}

// readTable parses a whole CSV file. An empty file (no header row) yields an
// empty table rather than an error, matching the tolerance of the rest of
// the pipeline.
func readTable(path string) (table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return table{}, errs.NewObjectNotFoundErrorWithCause("path", path, err)
		}
		return table{}, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return table{index: map[string]int{}}, nil
		}
		return table{}, errs.NewValueIsInvalidErrorWithCause(path, err)
	}

	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return table{}, errs.NewValueIsInvalidErrorWithCause(path, err)
		}

		if len(row) < len(headers) {
			padded := make([]string, len(headers))
			copy(padded, row)
			row = padded
		}
		rows = append(rows, row)
	}

	return table{index: index, rows: rows}, nil
}

// field returns the named column of a row, blank when the column is absent.
func (t table) field(row []string, name string) string {
	i, ok := t.index[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}
