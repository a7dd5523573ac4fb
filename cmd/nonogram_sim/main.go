package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool

	// Logger
	logger *zap.Logger

	// buildLogger creates the logger at the given level; tests swap it.
	buildLogger = func(level zapcore.Level) (*zap.Logger, error) {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(level)
		return config.Build()
	}
)

// newRootCmd builds the command tree. Flags live on per-command option
// structs so a fresh tree parses from the defaults.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "nonogram_sim",
		Short: "Monte Carlo completeness of random nonograms",
		Long: `nonogram_sim draws random N×N nonograms, solves them by line propagation
from their clues alone, and measures the fraction of cells that become known.

The table command writes the size;p;c file read by nonogram_plot.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := zapcore.InfoLevel
			if verbose {
				level = zapcore.DebugLevel
			}
			var err error
			logger, err = buildLogger(level)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(newTableCmd())
	rootCmd.AddCommand(newColumnsCmd())
	rootCmd.AddCommand(newBoardCmd())
	return rootCmd
}

// run executes the command tree and returns the process exit code. A failed
// command is logged; before the logger exists it goes to stderr.
func run(ctx context.Context, rootCmd *cobra.Command) int {
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	if logger == nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return 1
	}
	logger.Error("command failed", zap.Error(err))
	_ = logger.Sync()
	return 1
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, newRootCmd())
	stop()
	os.Exit(code)
}
