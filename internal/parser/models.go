package parser

import "errors"

// Delimiter is the field separator of the results file.
const Delimiter = ';'

// Column names bound by header.
const (
	ColumnSize = "size"
	ColumnP    = "p"
	ColumnC    = "c"
)

// RequiredColumns lists the header names a results file must carry.
var RequiredColumns = []string{ColumnSize, ColumnP, ColumnC}

var (
	// ErrMissingColumn is returned when the header lacks one of RequiredColumns.
	ErrMissingColumn = errors.New("missing required column")
	// ErrInvalidValue is returned when a bound field is not a number.
	ErrInvalidValue = errors.New("invalid numeric value")
	// ErrEmptyInput is returned when the file has no header record.
	ErrEmptyInput = errors.New("no header record")
)

// ResultRow is one measurement: mean completeness C of N×N boards (N = Size)
// filled with probability P.
type ResultRow struct {
	Size float64
	P    float64
	C    float64
}

// ResultsTable holds the rows in file order.
type ResultsTable struct {
	Rows []ResultRow
}

// NewResultsTable returns an empty table.
func NewResultsTable() *ResultsTable {
	return &ResultsTable{
		Rows: make([]ResultRow, 0),
	}
}

// Len returns the number of rows.
func (t *ResultsTable) Len() int {
	return len(t.Rows)
}

// Sizes returns the size column in row order.
func (t *ResultsTable) Sizes() []float64 {
	return t.column(func(r ResultRow) float64 { return r.Size })
}

// Ps returns the p column in row order.
func (t *ResultsTable) Ps() []float64 {
	return t.column(func(r ResultRow) float64 { return r.P })
}

// Cs returns the c column in row order.
func (t *ResultsTable) Cs() []float64 {
	return t.column(func(r ResultRow) float64 { return r.C })
}

func (t *ResultsTable) column(get func(ResultRow) float64) []float64 {
	out := make([]float64, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = get(r)
	}
	return out
}
