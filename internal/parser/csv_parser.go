package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// byteOrderMark is dropped from the start of the header.
const byteOrderMark = "\ufeff"

// ParseResults reads a semicolon-delimited results file and binds the size,
// p and c columns by header name.
func ParseResults(filepath string) (*ResultsTable, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open results file: %w", err)
	}
	defer file.Close()

	table, err := ParseResultsFrom(file, Delimiter)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath, err)
	}
	return table, nil
}

// ParseResultsFrom reads a delimited results table from r. The first record
// is the header; every later record becomes one ResultRow in order.
func ParseResultsFrom(r io.Reader, delim rune) (*ResultsTable, error) {
	reader := csv.NewReader(r)
	reader.Comma = delim
	reader.ReuseRecord = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	index, err := bindColumns(header)
	if err != nil {
		return nil, err
	}

	table := NewResultsTable()
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read results data: %w", err)
		}
		line, _ := reader.FieldPos(0)

		var row ResultRow
		targets := [...]*float64{&row.Size, &row.P, &row.C}
		for i, name := range RequiredColumns {
			raw := record[index[name]]
			val, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d, column %q: %q", ErrInvalidValue, line, name, raw)
			}
			*targets[i] = val
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// bindColumns maps each required column name to its field index in header.
func bindColumns(header []string) (map[string]int, error) {
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], byteOrderMark)
	}
	index := make(map[string]int, len(RequiredColumns))
	for i, name := range header {
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}
	for _, name := range RequiredColumns {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}
	return index, nil
}
