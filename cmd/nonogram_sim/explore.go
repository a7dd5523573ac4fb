package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/user/nonogram_go/internal/analysis"
	"github.com/user/nonogram_go/internal/nonogram"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type columnsOptions struct {
	size    int
	p, q    float64
	numTest int
	seed    uint64
}

func newColumnsCmd() *cobra.Command {
	opts := &columnsOptions{size: analysis.DefaultSize, p: 0.5, q: 0.5, numTest: analysis.DefaultNumTest}

	cmd := &cobra.Command{
		Use:   "columns",
		Short: "Mean completeness of single lines with some cells revealed",
		Long: `Draws --num-test random lines of --size cells filled with probability --p,
reveals each cell with probability --q, fits the line's clues against the
revealed cells and prints the mean fraction of known cells.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runColumns(cmd, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.size, "size", "s", opts.size, "Line length")
	cmd.Flags().Float64Var(&opts.p, "p", opts.p, "Fill probability")
	cmd.Flags().Float64Var(&opts.q, "q", opts.q, "Reveal probability")
	cmd.Flags().IntVarP(&opts.numTest, "num-test", "n", opts.numTest, "Random lines averaged")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Random seed (default: time based)")
	return cmd
}

func runColumns(cmd *cobra.Command, opts *columnsOptions) error {
	seed := seedFrom(cmd, opts.seed)
	logger.Debug("fitting lines", zap.Int("size", opts.size), zap.Float64("p", opts.p), zap.Float64("q", opts.q), zap.Uint64("seed", seed))

	c, err := analysis.MeanLineCompleteness(rand.NewPCG(seed, 0), opts.size, opts.p, opts.q, opts.numTest)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%g\n", c)
	return err
}

type boardOptions struct {
	size int
	p    float64
	seed uint64
}

func newBoardCmd() *cobra.Command {
	opts := &boardOptions{size: 10, p: 0.5}

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Solve one random board and show what propagation finds",
		Long: `Draws a random --size × --size board filled with probability --p, prints it,
solves its clues by line propagation and prints the solved board and its
completeness.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoard(cmd, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.size, "size", "s", opts.size, "Board size N")
	cmd.Flags().Float64Var(&opts.p, "p", opts.p, "Fill probability")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Random seed (default: time based)")
	return cmd
}

func runBoard(cmd *cobra.Command, opts *boardOptions) error {
	if opts.size <= 0 {
		return fmt.Errorf("board size must be positive, got %d", opts.size)
	}
	if opts.p < 0 || opts.p > 1 {
		return fmt.Errorf("fill probability must be in [0,1], got %v", opts.p)
	}
	seed := seedFrom(cmd, opts.seed)

	painted := nonogram.NewRandomPaintedBoard(rand.NewPCG(seed, 0), opts.size, opts.size, opts.p)
	board := nonogram.NewBoard(painted.Puzzle())
	if err := board.Solve(); err != nil {
		return fmt.Errorf("failed to solve board (seed %d): %w", seed, err)
	}
	if !board.ConsistentWith(painted) {
		return fmt.Errorf("board (seed %d): %w", seed, analysis.ErrInconsistentSolve)
	}
	logger.Debug("board solved", zap.Uint64("seed", seed), zap.Int("known", nonogram.Line(board.Cells).Known()))

	out := cmd.OutOrStdout()
	_, err := fmt.Fprintf(out, "%s\n\n%s\n\ncompleteness: %g\n", painted, board, board.Completeness())
	return err
}
