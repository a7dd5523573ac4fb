package nonogram

import (
	"strconv"
	"strings"
)

const (
	filledGlyph  = "██"
	emptyGlyph   = "░░"
	unknownGlyph = ".."
)

func (c Cell) String() string {
	switch c {
	case Filled:
		return filledGlyph
	case Empty:
		return emptyGlyph
	default:
		return unknownGlyph
	}
}

func (l Line) String() string {
	var sb strings.Builder
	for _, c := range l {
		sb.WriteString(c.String())
	}
	return sb.String()
}

// String draws the board with the row clues right-aligned in front of each row.
func (b *PaintedBoard) String() string {
	cells := make(Line, len(b.Cells))
	for i, filled := range b.Cells {
		cells[i] = CellOf(filled)
	}
	return formatGrid(cells, b.Width, b.Puzzle().Rows)
}

// String draws the board with the row clues right-aligned in front of each row.
func (b *Board) String() string {
	return formatGrid(b.Cells, b.Width, b.Puzzle.Rows)
}

func formatGrid(cells Line, width int, rows []Clues) string {
	prefixes := make([]string, len(rows))
	pad := 0
	for j, clues := range rows {
		var sb strings.Builder
		for _, n := range clues {
			sb.WriteString(strconv.Itoa(n))
			sb.WriteByte(' ')
		}
		prefixes[j] = sb.String()
		pad = max(pad, len(prefixes[j]))
	}

	var sb strings.Builder
	for j, prefix := range prefixes {
		if j > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(strings.Repeat(" ", pad-len(prefix)))
		sb.WriteString(prefix)
		sb.WriteString(cells[j*width : (j+1)*width].String())
	}
	return sb.String()
}
