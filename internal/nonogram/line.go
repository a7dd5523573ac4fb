package nonogram

import (
	"errors"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// ErrContradiction is returned when no placement of the clues agrees with
// the known cells of a line.
var ErrContradiction = errors.New("clues contradict known cells")

// Cell is the solver's knowledge about one board cell.
type Cell uint8

const (
	Unknown Cell = iota
	Filled
	Empty
)

// CellOf converts a painted cell into a known Cell.
func CellOf(filled bool) Cell {
	if filled {
		return Filled
	}
	return Empty
}

// Line is a row or column of cells.
type Line []Cell

// NewLine returns a line of n cells set to c.
func NewLine(n int, c Cell) Line {
	l := make(Line, n)
	for i := range l {
		l[i] = c
	}
	return l
}

// Known returns the number of cells that are not Unknown.
func (l Line) Known() int {
	n := 0
	for _, c := range l {
		if c != Unknown {
			n++
		}
	}
	return n
}

// Completeness is the fraction of known cells.
func (l Line) Completeness() float64 {
	if len(l) == 0 {
		return 0
	}
	return float64(l.Known()) / float64(len(l))
}

// ConsistentWith reports whether every known cell matches truth.
func (l Line) ConsistentWith(truth []bool) bool {
	if len(truth) != len(l) {
		return false
	}
	for i, c := range l {
		if c != Unknown && c != CellOf(truth[i]) {
			return false
		}
	}
	return true
}

// Clues are the lengths of the runs of filled cells, in order.
type Clues []int

// CluesOf returns the clues of a painted line. An all-empty line has no clues.
func CluesOf(cells []bool) Clues {
	clues := Clues{}
	run := 0
	for _, filled := range cells {
		if filled {
			run++
			continue
		}
		if run > 0 {
			clues = append(clues, run)
			run = 0
		}
	}
	if run > 0 {
		clues = append(clues, run)
	}
	return clues
}

// RandomCells draws n cells, each filled with probability p.
func RandomCells(src rand.Source, n int, p float64) []bool {
	fill := distuv.Bernoulli{P: p, Src: src}
	cells := make([]bool, n)
	for i := range cells {
		cells[i] = fill.Rand() == 1
	}
	return cells
}

// RevealLine keeps each cell of truth with probability q and leaves the
// rest Unknown.
func RevealLine(src rand.Source, truth []bool, q float64) Line {
	keep := distuv.Bernoulli{P: q, Src: src}
	l := make(Line, len(truth))
	for i, filled := range truth {
		if keep.Rand() == 1 {
			l[i] = CellOf(filled)
		}
	}
	return l
}
