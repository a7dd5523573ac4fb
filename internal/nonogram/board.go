package nonogram

import (
	"fmt"
	"math/rand/v2"
)

// PaintedBoard is a hidden solution: true cells are filled. Cells are stored
// row-major.
type PaintedBoard struct {
	Width  int
	Height int
	Cells  []bool
}

// NewRandomPaintedBoard fills each cell of a width×height board independently
// with probability p.
func NewRandomPaintedBoard(src rand.Source, width, height int, p float64) *PaintedBoard {
	return &PaintedBoard{
		Width:  width,
		Height: height,
		Cells:  RandomCells(src, width*height, p),
	}
}

// Row returns a copy of row j.
func (b *PaintedBoard) Row(j int) []bool {
	return append([]bool(nil), b.Cells[j*b.Width:(j+1)*b.Width]...)
}

// Column returns a copy of column i.
func (b *PaintedBoard) Column(i int) []bool {
	col := make([]bool, b.Height)
	for j := range col {
		col[j] = b.Cells[i+j*b.Width]
	}
	return col
}

// Puzzle holds the clues of every row and column.
type Puzzle struct {
	Rows    []Clues
	Columns []Clues
}

// Puzzle derives the clues a player would see.
func (b *PaintedBoard) Puzzle() Puzzle {
	pz := Puzzle{
		Rows:    make([]Clues, b.Height),
		Columns: make([]Clues, b.Width),
	}
	for j := range pz.Rows {
		pz.Rows[j] = CluesOf(b.Row(j))
	}
	for i := range pz.Columns {
		pz.Columns[i] = CluesOf(b.Column(i))
	}
	return pz
}

// Board is a puzzle being solved.
type Board struct {
	Width  int
	Height int
	Cells  []Cell
	Puzzle Puzzle
}

// NewBoard returns an all-Unknown board for pz.
func NewBoard(pz Puzzle) *Board {
	w, h := len(pz.Columns), len(pz.Rows)
	return &Board{
		Width:  w,
		Height: h,
		Cells:  NewLine(w*h, Unknown),
		Puzzle: pz,
	}
}

// Row returns a copy of row j.
func (b *Board) Row(j int) Line {
	return append(Line(nil), b.Cells[j*b.Width:(j+1)*b.Width]...)
}

// Column returns a copy of column i.
func (b *Board) Column(i int) Line {
	col := make(Line, b.Height)
	for j := range col {
		col[j] = b.Cells[i+j*b.Width]
	}
	return col
}

// SetRow overwrites row j.
func (b *Board) SetRow(j int, row Line) {
	copy(b.Cells[j*b.Width:(j+1)*b.Width], row)
}

// SetColumn overwrites column i.
func (b *Board) SetColumn(i int, col Line) {
	for j, c := range col {
		b.Cells[i+j*b.Width] = c
	}
}

// Solve runs line propagation: every row is fitted, then every column, and
// the passes repeat until the number of known cells stops growing.
func (b *Board) Solve() error {
	known := -1
	for {
		for j := 0; j < b.Height; j++ {
			row, err := Fit(b.Row(j), b.Puzzle.Rows[j])
			if err != nil {
				return fmt.Errorf("row %d: %w", j, err)
			}
			b.SetRow(j, row)
		}
		for i := 0; i < b.Width; i++ {
			col, err := Fit(b.Column(i), b.Puzzle.Columns[i])
			if err != nil {
				return fmt.Errorf("column %d: %w", i, err)
			}
			b.SetColumn(i, col)
		}

		n := Line(b.Cells).Known()
		if n == known {
			return nil
		}
		known = n
	}
}

// Completeness is the fraction of cells the solver has fixed.
func (b *Board) Completeness() float64 {
	return Line(b.Cells).Completeness()
}

// ConsistentWith reports whether every known cell matches the hidden board.
func (b *Board) ConsistentWith(painted *PaintedBoard) bool {
	return Line(b.Cells).ConsistentWith(painted.Cells)
}
