package analysis

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"

	"github.com/user/nonogram_go/internal/nonogram"
	"github.com/user/nonogram_go/internal/parser"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
)

func checkParams(size int, p float64, numTest int) error {
	if size <= 0 {
		return fmt.Errorf("board size must be positive, got %d", size)
	}
	if p < 0 || p > 1 {
		return fmt.Errorf("fill probability must be in [0,1], got %v", p)
	}
	if numTest <= 0 {
		return fmt.Errorf("number of tests must be positive, got %d", numTest)
	}
	return nil
}

// MeanBoardCompleteness solves numTest random size×size boards filled with
// probability p and returns the mean fraction of cells fixed by propagation.
func MeanBoardCompleteness(src rand.Source, size int, p float64, numTest int) (float64, error) {
	if err := checkParams(size, p, numTest); err != nil {
		return 0, err
	}

	rates := make([]float64, numTest)
	for i := range rates {
		painted := nonogram.NewRandomPaintedBoard(src, size, size, p)
		board := nonogram.NewBoard(painted.Puzzle())
		if err := board.Solve(); err != nil {
			return 0, fmt.Errorf("solving %dx%d board (p=%v): %w", size, size, p, err)
		}
		if !board.ConsistentWith(painted) {
			return 0, fmt.Errorf("%dx%d board (p=%v): %w", size, size, p, ErrInconsistentSolve)
		}
		rates[i] = board.Completeness()
	}
	return stat.Mean(rates, nil), nil
}

// MeanLineCompleteness fits numTest random lines of length size, each with
// its cells revealed with probability q, and returns the mean completeness of
// the fitted lines.
func MeanLineCompleteness(src rand.Source, size int, p, q float64, numTest int) (float64, error) {
	if err := checkParams(size, p, numTest); err != nil {
		return 0, err
	}
	if q < 0 || q > 1 {
		return 0, fmt.Errorf("reveal probability must be in [0,1], got %v", q)
	}

	rates := make([]float64, numTest)
	for i := range rates {
		truth := nonogram.RandomCells(src, size, p)
		line := nonogram.RevealLine(src, truth, q)
		fitted, err := nonogram.Fit(line, nonogram.CluesOf(truth))
		if err != nil {
			return 0, fmt.Errorf("fitting line of %d (p=%v, q=%v): %w", size, p, q, err)
		}
		if !fitted.ConsistentWith(truth) {
			return 0, fmt.Errorf("line of %d (p=%v, q=%v): %w", size, p, q, ErrInconsistentSolve)
		}
		rates[i] = fitted.Completeness()
	}
	return stat.Mean(rates, nil), nil
}

// Probabilities returns k/numPTests for k in 0..numPTests.
func Probabilities(numPTests int) []float64 {
	ps := make([]float64, numPTests+1)
	for k := range ps {
		ps[k] = float64(k) / float64(numPTests)
	}
	return ps
}

// Sweep evaluates MeanBoardCompleteness for every size and every p of
// Probabilities(cfg.NumPTests). Points run concurrently, each on its own
// source seeded by (cfg.Seed, point index), so the rows do not depend on
// scheduling. Rows are ordered by size, then p.
func Sweep(ctx context.Context, cfg SweepConfig) ([]parser.ResultRow, error) {
	if len(cfg.Sizes) == 0 {
		return nil, fmt.Errorf("no board sizes to sweep")
	}
	if cfg.NumPTests <= 0 {
		return nil, fmt.Errorf("number of p steps must be positive, got %d", cfg.NumPTests)
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	ps := Probabilities(cfg.NumPTests)
	points := make([]sweepPoint, 0, len(cfg.Sizes)*len(ps))
	for _, size := range cfg.Sizes {
		if err := checkParams(size, 0, cfg.NumTest); err != nil {
			return nil, err
		}
		for _, p := range ps {
			points = append(points, sweepPoint{index: len(points), size: size, p: p})
		}
	}

	rows := make([]parser.ResultRow, len(points))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, pt := range points {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			src := rand.NewPCG(cfg.Seed, uint64(pt.index))
			c, err := MeanBoardCompleteness(src, pt.size, pt.p, cfg.NumTest)
			if err != nil {
				return err
			}
			rows[pt.index] = parser.ResultRow{Size: float64(pt.size), P: pt.p, C: c}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}
