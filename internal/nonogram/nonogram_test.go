package nonogram

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseLine reads '#' as Filled, '.' as Empty and '?' as Unknown.
func parseLine(s string) Line {
	l := make(Line, len(s))
	for i, r := range s {
		switch r {
		case '#':
			l[i] = Filled
		case '.':
			l[i] = Empty
		}
	}
	return l
}

// TestCluesOf verifies run lengths of filled cells.
func TestCluesOf(t *testing.T) {
	t.Parallel()

	cases := []struct {
		cells []bool
		want  Clues
	}{
		{nil, Clues{}},
		{[]bool{false, false}, Clues{}},
		{[]bool{true, true, true}, Clues{3}},
		{[]bool{true, false, true, true, false, false, true}, Clues{1, 2, 1}},
		{[]bool{false, true, true, false}, Clues{2}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CluesOf(tc.cells), "cells %v", tc.cells)
	}
}

// TestFit verifies the intersection of all placements on small lines.
func TestFit(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		line  string
		clues Clues
		want  string
	}{
		{"no clues empties the line", "?????", Clues{}, "....."},
		{"full clue fills the line", "????", Clues{4}, "####"},
		{"overlap fixes the middle", "?????", Clues{3}, "??#??"},
		{"tight pair", "???", Clues{1, 1}, "#.#"},
		{"exact fit with separators", "???????", Clues{2, 1, 2}, "##.#.##"},
		{"no overlap stays unknown", "?????", Clues{2}, "?????"},
		{"known filled anchors the run", "#????", Clues{2}, "##..."},
		{"known empty splits the line", "??.??", Clues{2}, "??.??"},
		{"known empty forces the side", "?.???", Clues{3}, "..###"},
		{"two runs with an anchor", "??????#", Clues{1, 1}, "?????.#"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Fit(parseLine(tc.line), tc.clues)
			require.NoError(t, err)
			assert.Equal(t, parseLine(tc.want), got)
		})
	}
}

// TestFit_Contradiction verifies lines that admit no placement fail.
func TestFit_Contradiction(t *testing.T) {
	t.Parallel()

	cases := []struct {
		line  string
		clues Clues
	}{
		{"???", Clues{4}},
		{"???", Clues{2, 1}},
		{"?#?", Clues{}},
		{"#.#", Clues{2}},
		{"", Clues{1}},
	}
	for _, tc := range cases {
		_, err := Fit(parseLine(tc.line), tc.clues)
		assert.ErrorIs(t, err, ErrContradiction, "line %q clues %v", tc.line, tc.clues)
	}
}

// TestFit_InvalidClue verifies non-positive clues are rejected.
func TestFit_InvalidClue(t *testing.T) {
	t.Parallel()

	_, err := Fit(parseLine("???"), Clues{0})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrContradiction)
}

// TestFit_AgreesWithTruth verifies fitted cells never contradict the painted line they came from.
func TestFit_AgreesWithTruth(t *testing.T) {
	t.Parallel()

	src := rand.NewPCG(1, 2)
	for range 200 {
		truth := RandomCells(src, 12, 0.5)
		start := RevealLine(src, truth, 0.3)

		got, err := Fit(start, CluesOf(truth))
		require.NoError(t, err)
		assert.True(t, got.ConsistentWith(truth))
		assert.GreaterOrEqual(t, got.Known(), start.Known())
	}
}

// TestBoardSolve_Unique verifies a line-solvable board is fully recovered.
func TestBoardSolve_Unique(t *testing.T) {
	t.Parallel()

	// A plus sign: each row and column is solvable from its clues.
	painted := &PaintedBoard{
		Width:  3,
		Height: 3,
		Cells: []bool{
			false, true, false,
			true, true, true,
			false, true, false,
		},
	}
	board := NewBoard(painted.Puzzle())
	require.NoError(t, board.Solve())
	assert.Equal(t, 1.0, board.Completeness())
	assert.True(t, board.ConsistentWith(painted))
}

// TestBoardSolve_Ambiguous verifies a board with two solutions keeps its undecided cells unknown.
func TestBoardSolve_Ambiguous(t *testing.T) {
	t.Parallel()

	painted := &PaintedBoard{
		Width:  2,
		Height: 2,
		Cells:  []bool{true, false, false, true},
	}
	board := NewBoard(painted.Puzzle())
	require.NoError(t, board.Solve())
	assert.Equal(t, 0.0, board.Completeness())
	assert.True(t, board.ConsistentWith(painted))
}

// TestBoardSolve_Extremes verifies empty and full boards are solved outright.
func TestBoardSolve_Extremes(t *testing.T) {
	t.Parallel()

	src := rand.NewPCG(7, 7)
	for _, p := range []float64{0, 1} {
		painted := NewRandomPaintedBoard(src, 6, 6, p)
		board := NewBoard(painted.Puzzle())
		require.NoError(t, board.Solve())
		assert.Equal(t, 1.0, board.Completeness(), "p=%v", p)
	}
}

// TestBoardSolve_RandomConsistent verifies propagation never contradicts the hidden board.
func TestBoardSolve_RandomConsistent(t *testing.T) {
	t.Parallel()

	src := rand.NewPCG(3, 4)
	for range 25 {
		painted := NewRandomPaintedBoard(src, 10, 10, 0.6)
		board := NewBoard(painted.Puzzle())
		require.NoError(t, board.Solve())
		assert.True(t, board.ConsistentWith(painted))
	}
}

// TestPaintedBoard_RowsAndColumns verifies row-major access.
func TestPaintedBoard_RowsAndColumns(t *testing.T) {
	t.Parallel()

	b := &PaintedBoard{Width: 3, Height: 2, Cells: []bool{true, false, true, false, false, true}}
	assert.Equal(t, []bool{false, false, true}, b.Row(1))
	assert.Equal(t, []bool{true, true}, b.Column(2))

	pz := b.Puzzle()
	assert.Equal(t, []Clues{{1, 1}, {1}}, pz.Rows)
	assert.Equal(t, []Clues{{1}, {}, {2}}, pz.Columns)
}

// TestString verifies the glyphs and right-aligned row clues.
func TestString(t *testing.T) {
	t.Parallel()

	painted := &PaintedBoard{Width: 3, Height: 2, Cells: []bool{true, false, true, false, false, false}}
	want := strings.Join([]string{
		"1 1 ██░░██",
		"    ░░░░░░",
	}, "\n")
	assert.Equal(t, want, painted.String())

	board := NewBoard(painted.Puzzle())
	assert.Equal(t, "1 1 ......\n    ......", board.String())
}

// TestRevealLine verifies the reveal probability extremes.
func TestRevealLine(t *testing.T) {
	t.Parallel()

	src := rand.NewPCG(5, 6)
	truth := []bool{true, false, true, true}
	assert.Equal(t, 0, RevealLine(src, truth, 0).Known())

	all := RevealLine(src, truth, 1)
	assert.Equal(t, 1.0, all.Completeness())
	assert.True(t, all.ConsistentWith(truth))
}
