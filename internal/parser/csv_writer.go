package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteResults writes rows as a semicolon-delimited table with a size;p;c
// header, the format ParseResults reads back.
func WriteResults(w io.Writer, rows []ResultRow) error {
	writer := csv.NewWriter(w)
	writer.Comma = Delimiter

	if err := writer.Write(RequiredColumns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	record := make([]string, len(RequiredColumns))
	for _, row := range rows {
		record[0] = formatValue(row.Size)
		record[1] = formatValue(row.P)
		record[2] = formatValue(row.C)
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
