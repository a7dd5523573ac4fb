package analysis

import "errors"

// ErrInconsistentSolve is returned when the solver fixes a cell to a value
// that differs from the hidden board. It means the line solver is wrong.
var ErrInconsistentSolve = errors.New("solved cell disagrees with the hidden board")

// Generator defaults.
const (
	DefaultSize      = 15
	DefaultNumTest   = 50
	DefaultNumPTests = 200
)

// SweepConfig describes a completeness sweep over fill probabilities.
type SweepConfig struct {
	// Sizes are the board dimensions N to evaluate.
	Sizes []int
	// NumTest is the number of random boards averaged per point.
	NumTest int
	// NumPTests splits [0,1] into NumPTests steps, giving NumPTests+1 values of p.
	NumPTests int
	// Seed makes a sweep reproducible.
	Seed uint64
	// Workers bounds the concurrent points; zero means GOMAXPROCS.
	Workers int
}

// NewSweepConfig returns the generator defaults.
func NewSweepConfig() SweepConfig {
	return SweepConfig{
		Sizes:     []int{DefaultSize},
		NumTest:   DefaultNumTest,
		NumPTests: DefaultNumPTests,
	}
}

// sweepPoint is one (size, p) cell of the sweep.
type sweepPoint struct {
	index int
	size  int
	p     float64
}
