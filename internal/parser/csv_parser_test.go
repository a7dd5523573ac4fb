package parser

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resultados.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestParseResults_WellFormed verifies N data rows load as N rows whose values equal the parsed source text.
func TestParseResults_WellFormed(t *testing.T) {
	t.Parallel()

	src := [][3]string{
		{"5", "0.1", "0.2"},
		{"5", "0.5", "0.6"},
		{"10", "0.1", "0.30000000000000004"},
		{"15", "1e-3", "0.999"},
	}
	var b strings.Builder
	b.WriteString("size;p;c\n")
	for _, r := range src {
		b.WriteString(strings.Join(r[:], ";") + "\n")
	}

	table, err := ParseResults(writeFile(t, b.String()))
	require.NoError(t, err)
	require.Equal(t, len(src), table.Len())

	want := make([]ResultRow, len(src))
	for i, r := range src {
		var vals [3]float64
		for j, s := range r {
			v, err := strconv.ParseFloat(s, 64)
			require.NoError(t, err)
			vals[j] = v
		}
		want[i] = ResultRow{Size: vals[0], P: vals[1], C: vals[2]}
	}
	if diff := cmp.Diff(want, table.Rows); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

// TestParseResults_ColumnsBoundByName verifies column order and extra columns do not matter.
func TestParseResults_ColumnsBoundByName(t *testing.T) {
	t.Parallel()

	table, err := ParseResults(writeFile(t, "c;extra;p;size\n0.7;x;0.25;20\n"))
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, ResultRow{Size: 20, P: 0.25, C: 0.7}, table.Rows[0])
}

// TestParseResults_MissingColumn verifies each required column is enforced.
func TestParseResults_MissingColumn(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"size": "p;c\n0.1;0.2\n",
		"p":    "size;c\n5;0.2\n",
		"c":    "size;p\n5;0.1\n",
	}
	for missing, content := range cases {
		t.Run(missing, func(t *testing.T) {
			t.Parallel()

			table, err := ParseResults(writeFile(t, content))
			require.Error(t, err)
			assert.Nil(t, table)
			assert.ErrorIs(t, err, ErrMissingColumn)
			assert.Contains(t, err.Error(), strconv.Quote(missing))
		})
	}
}

// TestParseResultsFrom_ByteOrderMark verifies a UTF-8 BOM before the header still binds size.
func TestParseResultsFrom_ByteOrderMark(t *testing.T) {
	t.Parallel()

	table, err := ParseResultsFrom(strings.NewReader("\ufeffsize;p;c\n5;0.1;0.2\n"), Delimiter)
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, ResultRow{Size: 5, P: 0.1, C: 0.2}, table.Rows[0])
}

// TestParseResults_NonExistentPath verifies a missing file is reported, not swallowed.
func TestParseResults_NonExistentPath(t *testing.T) {
	t.Parallel()

	_, err := ParseResults(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

// TestParseResults_WrongDelimiter verifies a comma file does not bind the columns.
func TestParseResults_WrongDelimiter(t *testing.T) {
	t.Parallel()

	_, err := ParseResults(writeFile(t, "size,p,c\n5,0.1,0.2\n"))
	assert.ErrorIs(t, err, ErrMissingColumn)
}

// TestParseResultsFrom_InvalidValue verifies a non-numeric field names its line and column.
func TestParseResultsFrom_InvalidValue(t *testing.T) {
	t.Parallel()

	_, err := ParseResultsFrom(strings.NewReader("size;p;c\n5;0.1;0.2\n5;half;0.3\n"), Delimiter)
	require.ErrorIs(t, err, ErrInvalidValue)
	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, err.Error(), `"p"`)
}

// TestParseResultsFrom_Malformed verifies ragged records fail instead of loading partially.
func TestParseResultsFrom_Malformed(t *testing.T) {
	t.Parallel()

	table, err := ParseResultsFrom(strings.NewReader("size;p;c\n5;0.1\n"), Delimiter)
	require.Error(t, err)
	assert.Nil(t, table)
}

// TestParseResultsFrom_EmptyInput verifies a file without header fails with ErrEmptyInput.
func TestParseResultsFrom_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := ParseResultsFrom(strings.NewReader(""), Delimiter)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

// TestParseResultsFrom_HeaderOnly verifies a header without rows loads as an empty table.
func TestParseResultsFrom_HeaderOnly(t *testing.T) {
	t.Parallel()

	table, err := ParseResultsFrom(strings.NewReader("size;p;c\n\n"), Delimiter)
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
}

// TestResultsTable_Columns verifies the column accessors keep row order.
func TestResultsTable_Columns(t *testing.T) {
	t.Parallel()

	table := &ResultsTable{Rows: []ResultRow{{5, 0.1, 0.2}, {10, 0.5, 0.6}}}
	assert.Equal(t, []float64{5, 10}, table.Sizes())
	assert.Equal(t, []float64{0.1, 0.5}, table.Ps())
	assert.Equal(t, []float64{0.2, 0.6}, table.Cs())
}

// TestWriteResults_ReadBack verifies generator output is accepted by the loader unchanged.
func TestWriteResults_ReadBack(t *testing.T) {
	t.Parallel()

	rows := []ResultRow{{15, 0, 1}, {15, 0.005, 0.98765}, {30, 1, 1}}
	var buf bytes.Buffer
	require.NoError(t, WriteResults(&buf, rows))
	assert.True(t, strings.HasPrefix(buf.String(), "size;p;c\n15;0;1\n"))

	table, err := ParseResultsFrom(&buf, Delimiter)
	require.NoError(t, err)
	if diff := cmp.Diff(rows, table.Rows); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}
